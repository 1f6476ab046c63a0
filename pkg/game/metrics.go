package game

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus metric descriptors for one game instance. Each
// instance gets its own registry so several games can live in one process.
type Metrics struct {
	game *Game
	reg  *prometheus.Registry

	commandsTotal prometheus.Counter
	routinesTotal prometheus.Counter
	drawsTotal    prometheus.Counter
	deathsTotal   prometheus.Counter
	winsTotal     prometheus.Counter
	objectsTotal  prometheus.Gauge
	score         prometheus.Gauge
	moves         prometheus.Gauge
}

// NewMetrics creates and registers metrics for the game and attaches them so
// engine operations are counted from then on.
func NewMetrics(g *Game) *Metrics {
	m := &Metrics{
		game: g,
		reg:  prometheus.NewRegistry(),
		commandsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gozif_commands_total",
			Help: "Commands dispatched since the game started.",
		}),
		routinesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gozif_routine_calls_total",
			Help: "Routine invocations since the game started.",
		}),
		drawsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gozif_random_draws_total",
			Help: "Random number draws since the game started.",
		}),
		deathsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gozif_deaths_total",
			Help: "Death transitions since the game started.",
		}),
		winsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gozif_wins_total",
			Help: "Victory transitions since the game started.",
		}),
		objectsTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gozif_objects_total",
			Help: "Objects defined in the world.",
		}),
		score: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gozif_score",
			Help: "Current SCORE global.",
		}),
		moves: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gozif_moves",
			Help: "Current MOVES global.",
		}),
	}

	m.reg.MustRegister(
		m.commandsTotal,
		m.routinesTotal,
		m.drawsTotal,
		m.deathsTotal,
		m.winsTotal,
		m.objectsTotal,
		m.score,
		m.moves,
	)

	g.metrics = m
	return m
}

// Update refreshes gauge metrics from current game state. It reads the world
// and globals maps, so it must run on the goroutine driving the game; the
// engine calls it after every dispatched command.
func (m *Metrics) Update() {
	m.objectsTotal.Set(float64(m.game.World.Len()))
	m.score.Set(float64(m.game.GlobalInt(VarScore)))
	m.moves.Set(float64(m.game.GlobalInt(VarMoves)))
}

// Handler returns an http.Handler serving the game's registry. The handler
// never touches game state itself, so it is safe to serve from any goroutine
// while a session runs; gauges reflect the state as of the last Update.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// The inc helpers are nil-safe so a game without metrics pays nothing.

func (m *Metrics) incCommands() {
	if m != nil {
		m.commandsTotal.Inc()
	}
}

func (m *Metrics) refresh() {
	if m != nil {
		m.Update()
	}
}

func (m *Metrics) incRoutines() {
	if m != nil {
		m.routinesTotal.Inc()
	}
}

func (m *Metrics) incDraws() {
	if m != nil {
		m.drawsTotal.Inc()
	}
}

func (m *Metrics) incDeaths() {
	if m != nil {
		m.deathsTotal.Inc()
	}
}

func (m *Metrics) incWins() {
	if m != nil {
		m.winsTotal.Inc()
	}
}
