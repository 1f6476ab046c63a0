package world

// ObjID is the fundamental object identity in a game world. Objects are
// referred to by ID everywhere; the Store owns the records themselves.
type ObjID string

// Nothing is the "no container" sentinel. An object whose parent is Nothing
// is outside the containment graph (removed from play, or a top-level room).
const Nothing ObjID = ""

// Flag is a boolean-presence tag on an object.
type Flag string

// Well-known flags. Authors may define arbitrary additional flags; these are
// the ones the engine itself gives meaning to.
const (
	FlagOpen      Flag = "OPEN"      // container is open; contents are in scope
	FlagTrans     Flag = "TRANS"     // container is see-through
	FlagTake      Flag = "TAKE"      // object can be picked up
	FlagContainer Flag = "CONT"      // object can hold other objects
	FlagLight     Flag = "LIGHT"     // object provides light
	FlagInvisible Flag = "INVISIBLE" // object is hidden from listings
)

// Action is an event hook attached to an object. The engine invokes it with
// a message symbol ("look" on room entry, or the current action tag when the
// object is the direct object of a command).
type Action func(msg string)

// Object is a single record in the containment graph: a room, item,
// container, or actor.
type Object struct {
	ID     ObjID
	Parent ObjID

	Desc  string // short description, used by the DESC output directive
	LDesc string // long description, shown when the object is in a room
	FDesc string // first-time description, shown before the object is disturbed

	// Vocabulary for an external parser. The engine stores these but never
	// reads them.
	Synonyms   []string
	Adjectives []string

	Size   int    // carry weight
	Action Action // optional event hook

	Flags map[Flag]struct{}
	Props map[string]any
}

// HasFlag reports whether the flag is set on this object.
func (o *Object) HasFlag(f Flag) bool {
	_, ok := o.Flags[f]
	return ok
}

// PrintedName returns the object's description, falling back to its ID when
// no description is set.
func (o *Object) PrintedName() string {
	if o.Desc != "" {
		return o.Desc
	}
	return string(o.ID)
}

// CycleError is the authoring diagnostic returned when a Move would make an
// object contain itself, directly or transitively. It is recoverable: the
// move is refused and the graph is left unchanged.
type CycleError struct {
	ID   ObjID
	Dest ObjID
}

func (e *CycleError) Error() string {
	return "world: moving " + string(e.ID) + " into " + string(e.Dest) + " would create a containment cycle"
}
