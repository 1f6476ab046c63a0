package game

import (
	"log"

	"github.com/crystal-mush/gozif/pkg/events"
	"github.com/crystal-mush/gozif/pkg/flow"
	"github.com/crystal-mush/gozif/pkg/output"
	"github.com/crystal-mush/gozif/pkg/world"
)

const (
	deathBanner = "    ****  You have died  ****"
	winBanner   = "    ****  You have won  ****"
)

// JigsUp ends the session in death: it writes the message, a blank line and
// the death banner, latches DEAD-FLAG and the instance death indicator, then
// unwinds past every active routine to the game-loop boundary with reason
// "died".
func (g *Game) JigsUp(message string) {
	g.Tell(message, output.Newline, output.Newline, deathBanner, output.Newline)
	g.SetG(VarDeadFlag, true)
	g.Dead = true
	g.metrics.incDeaths()
	g.Bus.Emit(events.Event{Type: events.EvDeath, Text: message})
	flow.Terminate(flow.ReasonDied, message)
}

// Finish ends the session in victory, the symmetric transition to JigsUp.
func (g *Game) Finish() {
	g.Tell(winBanner, output.Newline)
	g.SetG(VarWonFlag, true)
	g.metrics.incWins()
	g.Bus.Emit(events.Event{Type: events.EvWin})
	flow.Terminate(flow.ReasonWon, "")
}

// Goto moves the player: HERE becomes room, WINNER is reparented into it,
// and the room's event hook (if any) receives a "look" message.
func (g *Game) Goto(room world.ObjID) {
	g.SetG(VarHere, room)
	winner := g.GlobalObj(VarWinner)
	if winner != world.Nothing {
		if err := g.World.Move(winner, room); err != nil {
			log.Printf("gozif: goto %s: %v", room, err)
		}
	}
	g.Bus.Emit(events.Event{Type: events.EvRoom, Room: room})
	if obj, ok := g.World.Get(room); ok && obj.Action != nil {
		obj.Action("look")
	}
}
