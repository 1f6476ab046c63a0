package events

import "github.com/crystal-mush/gozif/pkg/world"

// EventType classifies events for transport-specific encoding.
type EventType int

const (
	EvText  EventType = iota // Rendered output text (universal fallback)
	EvRoom                   // The player entered a room
	EvScore                  // Score changed
	EvDeath                  // Death termination
	EvWin                    // Victory termination
	EvReset                  // Game state was rebuilt
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EvText:
		return "text"
	case EvRoom:
		return "room"
	case EvScore:
		return "score"
	case EvDeath:
		return "death"
	case EvWin:
		return "win"
	case EvReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is a structured engine event. Transports decide how to encode each
// event: a terminal front-end uses Text, structured clients use the rest.
type Event struct {
	Type  EventType
	Text  string         // Rendered text (EvText, banners)
	Room  world.ObjID    // Room context (EvRoom)
	Score int            // New score (EvScore)
	Data  map[string]any // Structured extras for OOB clients
}
