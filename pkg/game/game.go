// Package game ties the engine together: one Game instance owns the object
// graph, the global variable environment, the verb and routine registries,
// the random source, and the event bus its output flows through.
package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/crystal-mush/gozif/pkg/events"
	"github.com/crystal-mush/gozif/pkg/flow"
	"github.com/crystal-mush/gozif/pkg/output"
	"github.com/crystal-mush/gozif/pkg/world"
)

// PlayerID is the identity of the implicit player object, defined on every
// Reset. WINNER and PLAYER point at it by default.
const PlayerID world.ObjID = "PLAYER"

// Reserved global variable names, seeded at initialization and on Reset.
const (
	VarPrso        = "PRSO"
	VarPrsi        = "PRSI"
	VarPrsa        = "PRSA"
	VarWinner      = "WINNER"
	VarHere        = "HERE"
	VarPlayer      = "PLAYER"
	VarScore       = "SCORE"
	VarMoves       = "MOVES"
	VarVerbose     = "VERBOSE"
	VarSuperBrief  = "SUPER-BRIEF"
	VarWonFlag     = "WON-FLAG"
	VarDeadFlag    = "DEAD-FLAG"
	VarPCont       = "P-CONT"
	VarQuoteFlag   = "QUOTE-FLAG"
	VarPOflag      = "P-OFLAG"
	VarLoadMax     = "LOAD-MAX"
	VarLoadAllowed = "LOAD-ALLOWED"
)

// Routine is a named, invokable unit of game logic. It runs under its own
// non-local-exit boundary: flow.RTrue and friends called anywhere inside it
// unwind to the invocation in Call.
type Routine func(g *Game)

// Game is one game instance. All four state containers live here; there are
// no package-level singletons, so independent games can coexist in one
// process.
type Game struct {
	World *world.Store
	Bus   *events.Bus

	// Dead latches after a death transition until the next Reset. The
	// DEAD-FLAG global carries the same fact for game code.
	Dead bool

	renderer *output.Renderer
	globals  map[string]any
	verbs    map[string]string
	routines map[string]Routine
	rng      *rand.Rand
	metrics  *Metrics
}

// New creates a game with a time-seeded random source.
func New() *Game {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded creates a game with a deterministic random source, for tests and
// replays.
func NewSeeded(seed int64) *Game {
	g := &Game{
		Bus: events.NewBus(),
		rng: rand.New(rand.NewSource(seed)),
	}
	g.Reset()
	return g
}

// Reset rebuilds all four state containers: a fresh object graph holding
// only the player object, reseeded globals, and empty verb and routine
// tables. The new containers are built first and swapped in together, so no
// caller can observe a half-reset game.
func (g *Game) Reset() {
	w := world.NewStore()
	w.Define(PlayerID, world.Options{Desc: "you"})

	globals := map[string]any{
		VarPrso:        world.Nothing,
		VarPrsi:        world.Nothing,
		VarPrsa:        "",
		VarWinner:      PlayerID,
		VarHere:        world.Nothing,
		VarPlayer:      PlayerID,
		VarScore:       0,
		VarMoves:       0,
		VarVerbose:     false,
		VarSuperBrief:  false,
		VarWonFlag:     false,
		VarDeadFlag:    false,
		VarPCont:       world.Nothing,
		VarQuoteFlag:   false,
		VarPOflag:      world.Nothing,
		VarLoadMax:     100,
		VarLoadAllowed: 100,
	}

	g.World = w
	g.globals = globals
	g.verbs = make(map[string]string)
	g.routines = make(map[string]Routine)
	g.renderer = &output.Renderer{World: w, Sink: g.Bus.SinkOf()}
	g.Dead = false

	g.Bus.Emit(events.Event{Type: events.EvReset})
}

// SetG writes a global variable. Names and values are untyped; reserved
// names get no special treatment here.
func (g *Game) SetG(name string, value any) {
	g.globals[name] = value
}

// GetG reads a global variable.
func (g *Game) GetG(name string) (any, bool) {
	v, ok := g.globals[name]
	return v, ok
}

// GlobalObj reads a global holding an object identity. Unset or differently
// typed globals read as Nothing.
func (g *Game) GlobalObj(name string) world.ObjID {
	switch v := g.globals[name].(type) {
	case world.ObjID:
		return v
	case string:
		return world.ObjID(v)
	default:
		return world.Nothing
	}
}

// GlobalInt reads an integer global, defaulting to zero.
func (g *Game) GlobalInt(name string) int {
	if n, ok := g.globals[name].(int); ok {
		return n
	}
	return 0
}

// GlobalBool reads a boolean global, defaulting to false.
func (g *Game) GlobalBool(name string) bool {
	if b, ok := g.globals[name].(bool); ok {
		return b
	}
	return false
}

// RegisterVerb binds an author-facing verb name to a canonical action tag.
func (g *Game) RegisterVerb(name, tag string) {
	g.verbs[name] = tag
}

// VerbTag resolves a verb name to its action tag. An unregistered name is
// accepted as its own tag, never an error.
func (g *Game) VerbTag(name string) string {
	if tag, ok := g.verbs[name]; ok {
		return tag
	}
	return name
}

// RegisterRoutine binds a routine name to its callable.
func (g *Game) RegisterRoutine(name string, fn Routine) {
	g.routines[name] = fn
}

// Call invokes a registered routine under a fresh exit boundary. An unknown
// name reports ok=false with a zero result rather than failing the game.
// Termination signals raised inside the routine pass through to the
// game-loop boundary.
func (g *Game) Call(name string) (flow.Result, bool) {
	fn, ok := g.routines[name]
	if !ok {
		return flow.Result{}, false
	}
	g.metrics.incRoutines()
	return flow.Invoke(func() { fn(g) }), true
}

// Tell renders a token stream to the game's output. A malformed stream is an
// authoring bug: it is logged and play continues.
func (g *Game) Tell(tokens ...any) {
	if err := g.renderer.Render(tokens); err != nil {
		log.Printf("gozif: %v", err)
	}
}

// Print writes plain text followed by a line break.
func (g *Game) Print(text string) {
	g.Tell(text, output.Newline)
}

// AddScore adjusts SCORE and announces the change.
func (g *Game) AddScore(points int) {
	score := g.GlobalInt(VarScore) + points
	g.SetG(VarScore, score)
	g.Bus.Emit(events.Event{Type: events.EvScore, Score: score})
}
