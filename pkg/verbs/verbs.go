// Package verbs installs the standard verb set every game starts from:
// looking, taking, dropping, inventory, score. Games override or extend
// these by registering their own routines over the same tags.
package verbs

import (
	"log"

	"github.com/crystal-mush/gozif/pkg/flow"
	"github.com/crystal-mush/gozif/pkg/game"
	"github.com/crystal-mush/gozif/pkg/output"
	"github.com/crystal-mush/gozif/pkg/world"
)

// Canonical action tags for the standard verbs.
const (
	TagLook      = "LOOK"
	TagTake      = "TAKE"
	TagDrop      = "DROP"
	TagInventory = "INVENTORY"
	TagScore     = "SCORE"
	TagWait      = "WAIT"
)

// RegisterStandard installs the standard verbs and their synonyms on g.
func RegisterStandard(g *game.Game) {
	for name, tag := range map[string]string{
		"LOOK": TagLook, "L": TagLook,
		"TAKE": TagTake, "GET": TagTake, "GRAB": TagTake,
		"DROP":      TagDrop,
		"INVENTORY": TagInventory, "I": TagInventory,
		"SCORE": TagScore,
		"WAIT":  TagWait, "Z": TagWait,
	} {
		g.RegisterVerb(name, tag)
	}

	g.RegisterRoutine(TagLook, vLook)
	g.RegisterRoutine(TagTake, vTake)
	g.RegisterRoutine(TagDrop, vDrop)
	g.RegisterRoutine(TagInventory, vInventory)
	g.RegisterRoutine(TagScore, vScore)
	g.RegisterRoutine(TagWait, vWait)
}

func vLook(g *game.Game) {
	here := g.GlobalObj(game.VarHere)
	if here == world.Nothing {
		g.Print("You are nowhere in particular.")
		flow.RFalse()
	}
	g.Tell(output.Desc, here, output.Newline)
	if room, ok := g.World.Get(here); ok && room.LDesc != "" {
		g.Print(room.LDesc)
	}
	winner := g.GlobalObj(game.VarWinner)
	for id := g.World.First(here); id != world.Nothing; id = g.World.Next(id) {
		if id == winner || g.World.HasFlag(id, world.FlagInvisible) {
			continue
		}
		obj, _ := g.World.Get(id)
		if obj != nil && obj.FDesc != "" {
			g.Print(obj.FDesc)
			continue
		}
		g.Tell("There is a ", output.Desc, id, " here.", output.Newline)
	}
	flow.RTrue()
}

func vTake(g *game.Game) {
	prso := g.GlobalObj(game.VarPrso)
	if prso == world.Nothing {
		g.Print("Take what?")
		flow.RFalse()
	}
	here := g.GlobalObj(game.VarHere)
	winner := g.GlobalObj(game.VarWinner)
	if g.World.Parent(prso) != winner && !g.World.Visible(prso, here) {
		g.Print("You can't see that here.")
		flow.RFalse()
	}
	if g.World.Parent(prso) == winner {
		g.Print("You already have it.")
		flow.RFalse()
	}
	if !g.World.HasFlag(prso, world.FlagTake) {
		g.Print("You can't take that.")
		flow.RFalse()
	}
	obj, _ := g.World.Get(prso)
	if obj != nil && carriedWeight(g, winner)+obj.Size > g.GlobalInt(game.VarLoadAllowed) {
		g.Print("Your load is too heavy.")
		flow.RFatal()
	}
	if err := g.World.Move(prso, winner); err != nil {
		log.Printf("gozif: take %s: %v", prso, err)
		g.Print("You can't take that.")
		flow.RFalse()
	}
	// Taking an object disturbs it; the first-time description no longer
	// applies.
	if obj != nil {
		obj.FDesc = ""
	}
	g.Print("Taken.")
	flow.RTrue()
}

func vDrop(g *game.Game) {
	prso := g.GlobalObj(game.VarPrso)
	winner := g.GlobalObj(game.VarWinner)
	if prso == world.Nothing || g.World.Parent(prso) != winner {
		g.Print("You don't have that.")
		flow.RFalse()
	}
	if err := g.World.Move(prso, g.GlobalObj(game.VarHere)); err != nil {
		log.Printf("gozif: drop %s: %v", prso, err)
		g.Print("You can't put that there.")
		flow.RFalse()
	}
	g.Print("Dropped.")
	flow.RTrue()
}

func vInventory(g *game.Game) {
	winner := g.GlobalObj(game.VarWinner)
	first := g.World.First(winner)
	if first == world.Nothing {
		g.Print("You are empty-handed.")
		flow.RFalse()
	}
	g.Print("You are carrying:")
	for id := first; id != world.Nothing; id = g.World.Next(id) {
		g.Tell("  ", output.Desc, id, output.Newline)
	}
	flow.RTrue()
}

func vScore(g *game.Game) {
	g.Tell("Your score is ", output.Number, g.GlobalInt(game.VarScore),
		" in ", output.Number, g.GlobalInt(game.VarMoves), " moves.", output.Newline)
	flow.RTrue()
}

func vWait(g *game.Game) {
	g.Print("Time passes.")
	flow.RTrue()
}

// carriedWeight sums the sizes of everything winner carries, one level deep.
func carriedWeight(g *game.Game, winner world.ObjID) int {
	total := 0
	for id := g.World.First(winner); id != world.Nothing; id = g.World.Next(id) {
		if obj, ok := g.World.Get(id); ok {
			total += obj.Size
		}
	}
	return total
}
