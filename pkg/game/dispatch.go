package game

import (
	"github.com/crystal-mush/gozif/pkg/flow"
	"github.com/crystal-mush/gozif/pkg/world"
)

// VerbIs reports whether the current action (PRSA) matches the resolved tag
// of any candidate verb name.
func (g *Game) VerbIs(names ...string) bool {
	cur, ok := g.globals[VarPrsa].(string)
	if !ok || cur == "" {
		return false
	}
	for _, n := range names {
		if g.VerbTag(n) == cur {
			return true
		}
	}
	return false
}

// PrsoIs reports whether the current direct object is one of the candidates.
// Exact identity match, no resolution.
func (g *Game) PrsoIs(ids ...world.ObjID) bool {
	return g.globalObjIn(VarPrso, ids)
}

// PrsiIs reports whether the current indirect object is one of the
// candidates.
func (g *Game) PrsiIs(ids ...world.ObjID) bool {
	return g.globalObjIn(VarPrsi, ids)
}

// RoomIs reports whether HERE is one of the candidates.
func (g *Game) RoomIs(ids ...world.ObjID) bool {
	return g.globalObjIn(VarHere, ids)
}

func (g *Game) globalObjIn(name string, ids []world.ObjID) bool {
	cur := g.GlobalObj(name)
	if cur == world.Nothing {
		return false
	}
	for _, id := range ids {
		if id == cur {
			return true
		}
	}
	return false
}

// Outcome is the result of one dispatched command.
type Outcome struct {
	Term    *flow.Termination // non-nil when this command ended the session
	Result  flow.Result       // result of the verb routine, when one ran
	Handled bool              // an action handler or verb routine ran
}

// Ended reports whether the session terminated on this command.
func (o Outcome) Ended() bool {
	return o.Term != nil
}

// Perform dispatches one already-resolved command. It stores the action tag
// and objects into PRSA/PRSO/PRSI, counts the move, offers the action to the
// direct object's event hook, then invokes the routine registered under the
// action tag. The game-loop boundary here converts a death or victory
// transition into the returned outcome; nothing runs after the transition.
func (g *Game) Perform(action string, dobj, iobj world.ObjID) Outcome {
	var out Outcome
	out.Term = flow.CaptureTermination(func() {
		tag := g.VerbTag(action)
		g.SetG(VarPrsa, tag)
		g.SetG(VarPrso, dobj)
		g.SetG(VarPrsi, iobj)
		g.SetG(VarMoves, g.GlobalInt(VarMoves)+1)
		g.metrics.incCommands()

		if dobj != world.Nothing {
			if obj, ok := g.World.Get(dobj); ok && obj.Action != nil {
				obj.Action(tag)
				out.Handled = true
			}
		}
		if res, ok := g.Call(tag); ok {
			out.Result = res
			out.Handled = true
		}
	})
	// Gauges are published here, on the dispatching goroutine, so a metrics
	// scrape never has to read game state concurrently with a command.
	g.metrics.refresh()
	return out
}
