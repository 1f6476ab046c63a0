// Command zifplay is the terminal front-end: it owns the input source and
// output sink, loads a world, and runs the command loop until the session
// terminates.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/crystal-mush/gozif/pkg/events"
	"github.com/crystal-mush/gozif/pkg/game"
	"github.com/crystal-mush/gozif/pkg/transcript"
	"github.com/crystal-mush/gozif/pkg/verbs"
	"github.com/crystal-mush/gozif/pkg/world"
	"github.com/crystal-mush/gozif/pkg/worldfile"
)

// consoleSub renders text events to stdout.
type consoleSub struct{}

func (consoleSub) Receive(ev events.Event) {
	if ev.Type == events.EvText {
		fmt.Print(ev.Text)
	}
}

func (consoleSub) Closed() bool { return false }

// readLine is the blocking input source: write the prompt, read one line.
func readLine(in *bufio.Scanner, prompt string) (string, bool) {
	fmt.Print(prompt)
	if !in.Scan() {
		return "", false
	}
	return in.Text(), true
}

func main() {
	worldPath := flag.String("world", "", "path to a YAML world file (default: built-in demo)")
	watch := flag.Bool("watch", false, "reload the world file when it changes on disk")
	transcriptPath := flag.String("transcript", "", "record the session to this transcript database")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	var g *game.Game
	if *seed != 0 {
		g = game.NewSeeded(*seed)
	} else {
		g = game.New()
	}
	g.Bus.Subscribe(consoleSub{})

	if *transcriptPath != "" {
		store, err := transcript.Open(*transcriptPath)
		if err != nil {
			log.Fatalf("zifplay: %v", err)
		}
		defer store.Close()
		rec := transcript.NewRecorder(store, time.Now().Format(time.RFC3339))
		defer rec.Close()
		g.Bus.Subscribe(rec)
	}

	start := setup(g, *worldPath)

	// Reloads are parked on a channel and applied between commands. The
	// watcher callback runs on its own goroutine and must not touch the game
	// while the main loop may be inside Perform.
	var pending chan *worldfile.Definition
	if *watch && *worldPath != "" {
		pending = make(chan *worldfile.Definition, 1)
		w, err := worldfile.Watch(*worldPath, func(def *worldfile.Definition, err error) {
			if err != nil {
				log.Printf("zifplay: reload: %v", err)
				return
			}
			queueReload(pending, def)
		})
		if err != nil {
			log.Printf("zifplay: %v", err)
		} else {
			defer w.Close()
		}
	}

	g.Goto(start)
	g.Perform(verbs.TagLook, world.Nothing, world.Nothing)

	in := bufio.NewScanner(os.Stdin)
	for {
		line, ok := readLine(in, "> ")
		if !ok {
			break
		}
		fields := strings.Fields(strings.ToUpper(line))
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "QUIT" || fields[0] == "Q" {
			break
		}
		applyReloads(g, pending)
		var dobj, iobj world.ObjID
		if len(fields) > 1 {
			dobj = world.ObjID(fields[1])
		}
		if len(fields) > 2 {
			iobj = world.ObjID(fields[2])
		}
		out := g.Perform(fields[0], dobj, iobj)
		if out.Ended() {
			fmt.Printf("\n[%s after %d moves]\n", out.Term.Reason, g.GlobalInt(game.VarMoves))
			return
		}
		if !out.Handled {
			g.Print("I don't know how to do that.")
		}
	}
}

// queueReload parks def for the main loop, replacing any reload already
// waiting. Called from the watcher goroutine; never blocks.
func queueReload(pending chan *worldfile.Definition, def *worldfile.Definition) {
	for {
		select {
		case pending <- def:
			return
		case <-pending:
		}
	}
}

// applyReloads applies a reload parked since the last command, if any. A nil
// channel means watching is off.
func applyReloads(g *game.Game, pending chan *worldfile.Definition) {
	select {
	case def := <-pending:
		def.Apply(g)
		g.Print("[world reloaded]")
	default:
	}
}

// setup registers the standard verbs, loads the world, and returns the
// starting room.
func setup(g *game.Game, path string) world.ObjID {
	verbs.RegisterStandard(g)
	verbs.RegisterDirections(g)
	if path == "" {
		return demoWorld(g)
	}
	def, err := worldfile.Load(path)
	if err != nil {
		log.Fatalf("zifplay: %v", err)
	}
	def.Apply(g)
	if def.Start == "" {
		log.Fatalf("zifplay: world %s has no start room", path)
	}
	return world.ObjID(def.Start)
}
