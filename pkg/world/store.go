package world

// Store is the object graph: every object record plus an explicit
// insertion-ordered sibling list per container. Sibling order is part of the
// engine's contract (inventory listings and "take all" walk First/Next), so
// it is maintained on every Define, Move and Remove rather than left to map
// iteration order.
type Store struct {
	objects map[ObjID]*Object
	order   map[ObjID][]ObjID
}

// NewStore creates an empty object graph.
func NewStore() *Store {
	return &Store{
		objects: make(map[ObjID]*Object),
		order:   make(map[ObjID][]ObjID),
	}
}

// Options configures an object at definition time.
type Options struct {
	Parent     ObjID
	Desc       string
	LDesc      string
	FDesc      string
	Synonyms   []string
	Adjectives []string
	Flags      []Flag
	Action     Action
	Size       int
	Props      map[string]any
}

// Define creates the record for id, replacing any existing record with the
// same identity. Redefinition is a construction-time convenience, not an
// error: the old record is detached from its container and discarded.
func (s *Store) Define(id ObjID, opts Options) *Object {
	if old, ok := s.objects[id]; ok {
		s.detach(id, old.Parent)
	}
	obj := &Object{
		ID:         id,
		Parent:     opts.Parent,
		Desc:       opts.Desc,
		LDesc:      opts.LDesc,
		FDesc:      opts.FDesc,
		Synonyms:   opts.Synonyms,
		Adjectives: opts.Adjectives,
		Size:       opts.Size,
		Action:     opts.Action,
		Flags:      make(map[Flag]struct{}),
		Props:      make(map[string]any),
	}
	for _, f := range opts.Flags {
		obj.Flags[f] = struct{}{}
	}
	for k, v := range opts.Props {
		obj.Props[k] = v
	}
	s.objects[id] = obj
	s.order[opts.Parent] = append(s.order[opts.Parent], id)
	return obj
}

// Get returns the record for id.
func (s *Store) Get(id ObjID) (*Object, bool) {
	obj, ok := s.objects[id]
	return obj, ok
}

// Len returns the number of defined objects.
func (s *Store) Len() int {
	return len(s.objects)
}

// All returns every defined object id in definition order within each
// container, walking containers in no particular order. Intended for
// diagnostics and metrics, not game logic.
func (s *Store) All() []ObjID {
	ids := make([]ObjID, 0, len(s.objects))
	for _, siblings := range s.order {
		ids = append(ids, siblings...)
	}
	return ids
}

// Parent returns the container of id, one level up. Unknown objects and
// objects outside the graph both report Nothing.
func (s *Store) Parent(id ObjID) ObjID {
	if obj, ok := s.objects[id]; ok {
		return obj.Parent
	}
	return Nothing
}

// Locate walks levels containment steps upward from id, stopping early at
// the top of the chain. It returns the last ancestor reached, or Nothing
// when id has no container at all.
func (s *Store) Locate(id ObjID, levels int) ObjID {
	cur := id
	found := Nothing
	for i := 0; i < levels; i++ {
		next := s.Parent(cur)
		if next == Nothing {
			break
		}
		cur = next
		found = next
	}
	return found
}

// Move reparents id into newParent, preserving definition order bookkeeping.
// A move that would make id contain itself, or into a destination whose
// ancestor chain is already cyclic (a Define-time authoring mistake), is
// refused and reported as a CycleError; the caller may log it and continue.
// The ancestor walk tracks visited containers so a pre-existing cycle yields
// the diagnostic instead of looping forever. Moving an unknown id is a no-op.
func (s *Store) Move(id, newParent ObjID) error {
	obj, ok := s.objects[id]
	if !ok {
		return nil
	}
	seen := make(map[ObjID]struct{})
	for anc := newParent; anc != Nothing; anc = s.Parent(anc) {
		if anc == id {
			return &CycleError{ID: id, Dest: newParent}
		}
		if _, dup := seen[anc]; dup {
			return &CycleError{ID: id, Dest: newParent}
		}
		seen[anc] = struct{}{}
	}
	s.detach(id, obj.Parent)
	obj.Parent = newParent
	s.order[newParent] = append(s.order[newParent], id)
	return nil
}

// Remove takes id out of the containment graph. The record stays alive but
// is unreachable by traversal until a later Move puts it back.
func (s *Store) Remove(id ObjID) {
	s.Move(id, Nothing)
}

// HasFlag reports whether the flag is set on id.
func (s *Store) HasFlag(id ObjID, f Flag) bool {
	obj, ok := s.objects[id]
	return ok && obj.HasFlag(f)
}

// SetFlag sets the flag on id. Setting an already-set flag changes nothing.
func (s *Store) SetFlag(id ObjID, f Flag) {
	if obj, ok := s.objects[id]; ok {
		obj.Flags[f] = struct{}{}
	}
}

// ClearFlag clears the flag on id. Clearing an absent flag is a no-op.
func (s *Store) ClearFlag(id ObjID, f Flag) {
	if obj, ok := s.objects[id]; ok {
		delete(obj.Flags, f)
	}
}

// Prop returns the named property of id, or def when the object or property
// is missing.
func (s *Store) Prop(id ObjID, key string, def any) any {
	if obj, ok := s.objects[id]; ok {
		if v, ok := obj.Props[key]; ok {
			return v
		}
	}
	return def
}

// SetProp stores an author-defined property on id.
func (s *Store) SetProp(id ObjID, key string, value any) {
	if obj, ok := s.objects[id]; ok {
		obj.Props[key] = value
	}
}

// Children returns the objects contained directly in parent, in definition
// order (oldest arrival first). The returned slice is a copy.
func (s *Store) Children(parent ObjID) []ObjID {
	siblings := s.order[parent]
	out := make([]ObjID, len(siblings))
	copy(out, siblings)
	return out
}

// First returns the first object contained in parent, or Nothing.
func (s *Store) First(parent ObjID) ObjID {
	if siblings := s.order[parent]; len(siblings) > 0 {
		return siblings[0]
	}
	return Nothing
}

// Next returns the sibling following id in its container, or Nothing when id
// is last, unknown, or outside the graph.
func (s *Store) Next(id ObjID) ObjID {
	parent := s.Parent(id)
	if parent == Nothing {
		return Nothing
	}
	siblings := s.order[parent]
	for i, sib := range siblings {
		if sib == id && i+1 < len(siblings) {
			return siblings[i+1]
		}
	}
	return Nothing
}

// Visible reports whether id is in scope from location: either directly
// contained in it, or one level deep inside an intermediate container that
// is open or see-through. Deeper nesting is out of scope.
func (s *Store) Visible(id, location ObjID) bool {
	parent := s.Parent(id)
	if parent == Nothing {
		return false
	}
	if parent == location {
		return true
	}
	if s.Parent(parent) == location {
		return s.HasFlag(parent, FlagOpen) || s.HasFlag(parent, FlagTrans)
	}
	return false
}

// detach removes id from parent's sibling list.
func (s *Store) detach(id, parent ObjID) {
	siblings := s.order[parent]
	for i, sib := range siblings {
		if sib == id {
			s.order[parent] = append(siblings[:i], siblings[i+1:]...)
			return
		}
	}
}
