package verbs

import (
	"github.com/crystal-mush/gozif/pkg/flow"
	"github.com/crystal-mush/gozif/pkg/game"
	"github.com/crystal-mush/gozif/pkg/output"
	"github.com/crystal-mush/gozif/pkg/world"
)

// directions maps movement verbs to the room property naming the exit.
// A room offers an exit by carrying the property with a destination id, e.g.
// north: VAULT. Authors gate an exit by setting or clearing the property.
var directions = []struct {
	Name  string
	Alias string
	Prop  string
}{
	{"NORTH", "N", "north"},
	{"SOUTH", "S", "south"},
	{"EAST", "E", "east"},
	{"WEST", "W", "west"},
	{"UP", "U", "up"},
	{"DOWN", "D", "down"},
}

// RegisterDirections installs the movement verbs. Moving walks through
// Goto, so the destination room's event hook fires, then the room is
// described.
func RegisterDirections(g *game.Game) {
	for _, d := range directions {
		prop := d.Prop
		g.RegisterVerb(d.Alias, d.Name)
		g.RegisterRoutine(d.Name, func(g *game.Game) {
			here := g.GlobalObj(game.VarHere)
			dest, _ := g.World.Prop(here, prop, "").(string)
			if dest == "" {
				g.Print("You can't go that way.")
				flow.RFalse()
			}
			g.Goto(world.ObjID(dest))
			g.Tell(output.Newline)
			g.Call(TagLook)
			flow.RTrue()
		})
	}
}
