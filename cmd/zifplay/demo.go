package main

import (
	"github.com/crystal-mush/gozif/pkg/flow"
	"github.com/crystal-mush/gozif/pkg/game"
	"github.com/crystal-mush/gozif/pkg/world"
)

// demoWorld builds the built-in three-room game: cross the troll bridge,
// steal the chalice from the vault, and get back out alive.
func demoWorld(g *game.Game) world.ObjID {
	w := g.World

	w.Define("ENTRANCE", world.Options{
		Desc:  "Cave Entrance",
		LDesc: "Sunlight reaches a few feet into the cave. A rope bridge leads north into darkness.",
		Props: map[string]any{"north": "BRIDGE"},
		Action: func(msg string) {
			if msg == "look" && g.World.Parent("CHALICE") == game.PlayerID {
				g.Print("You stumble back into daylight, the jeweled chalice under your arm!")
				g.AddScore(10)
				g.Finish()
			}
		},
	})

	w.Define("BRIDGE", world.Options{
		Desc:  "Rope Bridge",
		LDesc: "The bridge sways over a black chasm.",
		Props: map[string]any{"south": "ENTRANCE"},
		Action: func(msg string) {
			if msg == "look" && g.World.Parent("TROLL") == world.ObjID("BRIDGE") {
				g.Print("A surly troll blocks the far end, axe in hand.")
			}
		},
	})

	w.Define("VAULT", world.Options{
		Desc:  "Treasure Vault",
		LDesc: "Coins are scattered everywhere, but only one thing matters here.",
		Props: map[string]any{"south": "BRIDGE"},
	})

	w.Define("LAMP", world.Options{
		Parent: "ENTRANCE",
		Desc:   "brass lantern",
		FDesc:  "A brass lantern lies discarded by the cave mouth.",
		Flags:  []world.Flag{world.FlagTake, world.FlagLight},
		Size:   15,
	})

	w.Define("TROLL", world.Options{
		Parent:     "BRIDGE",
		Desc:       "surly troll",
		Synonyms:   []string{"MONSTER"},
		Adjectives: []string{"SURLY"},
	})

	w.Define("CHALICE", world.Options{
		Parent: "VAULT",
		Desc:   "jeweled chalice",
		Flags:  []world.Flag{world.FlagTake},
		Size:   10,
		Props:  map[string]any{"trophy-value": 10},
	})

	g.RegisterVerb("KILL", "ATTACK")
	g.RegisterVerb("FIGHT", "ATTACK")
	g.RegisterRoutine("ATTACK", func(g *game.Game) {
		if !g.PrsoIs("TROLL") || !g.RoomIs("BRIDGE") {
			g.Print("Violence isn't the answer to this one.")
			flow.RFalse()
		}
		if g.World.Parent("TROLL") != world.ObjID("BRIDGE") {
			g.Print("The troll is already gone.")
			flow.RFalse()
		}
		if g.Prob(40) {
			g.JigsUp("The troll's axe finds you before your fist finds the troll.")
		}
		g.World.Remove("TROLL")
		// The way north opens once the troll is gone.
		g.World.SetProp("BRIDGE", "north", "VAULT")
		g.Print("Your wild swing connects and the troll tumbles into the chasm!")
		g.AddScore(5)
		flow.RTrue()
	})

	return "ENTRANCE"
}
