// Command zifserve exposes one game session over a WebSocket, plus the game
// metrics over /metrics. The engine has a single active call chain, so the
// seat is exclusive: a second connection is refused until the first ends.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/crystal-mush/gozif/pkg/events"
	"github.com/crystal-mush/gozif/pkg/game"
	"github.com/crystal-mush/gozif/pkg/verbs"
	"github.com/crystal-mush/gozif/pkg/world"
	"github.com/crystal-mush/gozif/pkg/worldfile"
)

// frame is the JSON wire format in both directions.
type frame struct {
	Type   string `json:"type,omitempty"`
	Text   string `json:"text,omitempty"`
	Room   string `json:"room,omitempty"`
	Score  int    `json:"score,omitempty"`
	Reason string `json:"reason,omitempty"`

	// Client fields
	Verb string `json:"verb,omitempty"`
	Dobj string `json:"dobj,omitempty"`
	Iobj string `json:"iobj,omitempty"`
}

// wsSub forwards engine events to the WebSocket client as JSON frames.
type wsSub struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

func (s *wsSub) Receive(ev events.Event) {
	var f frame
	switch ev.Type {
	case events.EvText:
		f = frame{Type: "text", Text: ev.Text}
	case events.EvRoom:
		f = frame{Type: "room", Room: string(ev.Room)}
	case events.EvScore:
		f = frame{Type: "score", Score: ev.Score}
	default:
		return
	}
	s.send(f)
}

func (s *wsSub) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *wsSub) send(f frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if err := s.conn.WriteJSON(f); err != nil {
		s.closed = true
	}
}

type server struct {
	worldPath string
	seed      int64
	upgrader  websocket.Upgrader

	mu      sync.Mutex
	busy    bool
	metrics *game.Metrics
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	worldPath := flag.String("world", "", "path to a YAML world file")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()
	if *worldPath == "" {
		log.Fatal("zifserve: -world is required")
	}
	// Fail fast on a bad world file before serving.
	if _, err := worldfile.Load(*worldPath); err != nil {
		log.Fatalf("zifserve: %v", err)
	}

	srv := &server{worldPath: *worldPath, seed: *seed}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.handleWS)
	mux.HandleFunc("/metrics", srv.handleMetrics)

	log.Printf("zifserve: listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}

func (s *server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("zifserve: upgrade: %v", err)
		return
	}
	defer conn.Close()

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		conn.WriteJSON(frame{Type: "error", Text: "a session is already in progress"})
		return
	}
	s.busy = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	g, start, err := s.newGame()
	if err != nil {
		conn.WriteJSON(frame{Type: "error", Text: err.Error()})
		return
	}
	sub := &wsSub{conn: conn}
	g.Bus.Subscribe(sub)

	g.Goto(start)
	g.Perform(verbs.TagLook, world.Nothing, world.Nothing)

	for {
		var f frame
		if err := conn.ReadJSON(&f); err != nil {
			return
		}
		verb := strings.ToUpper(strings.TrimSpace(f.Verb))
		if verb == "" || verb == "QUIT" {
			conn.WriteJSON(frame{Type: "end", Reason: "quit"})
			return
		}
		out := g.Perform(verb,
			world.ObjID(strings.ToUpper(f.Dobj)),
			world.ObjID(strings.ToUpper(f.Iobj)))
		if out.Ended() {
			sub.send(frame{Type: "end", Reason: out.Term.Reason})
			return
		}
		if !out.Handled {
			g.Print("I don't know how to do that.")
		}
	}
}

func (s *server) newGame() (*game.Game, world.ObjID, error) {
	var g *game.Game
	if s.seed != 0 {
		g = game.NewSeeded(s.seed)
	} else {
		g = game.New()
	}
	verbs.RegisterStandard(g)
	verbs.RegisterDirections(g)

	def, err := worldfile.Load(s.worldPath)
	if err != nil {
		return nil, world.Nothing, fmt.Errorf("load world: %w", err)
	}
	def.Apply(g)
	if def.Start == "" {
		return nil, world.Nothing, fmt.Errorf("world %s has no start room", s.worldPath)
	}

	s.mu.Lock()
	s.metrics = game.NewMetrics(g)
	s.mu.Unlock()

	return g, world.ObjID(def.Start), nil
}

func (s *server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	m := s.metrics
	s.mu.Unlock()
	if m == nil {
		http.Error(w, "no session yet", http.StatusServiceUnavailable)
		return
	}
	m.Handler().ServeHTTP(w, r)
}
