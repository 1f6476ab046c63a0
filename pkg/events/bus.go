package events

import "sync"

// Subscriber receives events from the bus.
type Subscriber interface {
	Receive(ev Event)
	Closed() bool
}

// Bus fans engine events out to subscribers (terminal renderer, transcript
// recorder, websocket session). The engine itself is single-threaded, but
// transports may subscribe from other goroutines, so the bus keeps its own
// lock.
type Bus struct {
	mu   sync.RWMutex
	subs []Subscriber
}

// NewBus creates a new event bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a subscriber.
func (b *Bus) Subscribe(sub Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, sub)
}

// Unsubscribe removes a subscriber.
func (b *Bus) Unsubscribe(sub Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s == sub {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Emit delivers an event to every open subscriber.
func (b *Bus) Emit(ev Event) {
	b.mu.RLock()
	subs := b.subs
	b.mu.RUnlock()

	for _, s := range subs {
		if !s.Closed() {
			s.Receive(ev)
		}
	}
}

// SinkOf returns an output sink that emits each write as an EvText event,
// letting every subscriber see what the player sees.
func (b *Bus) SinkOf() BusSink {
	return BusSink{bus: b}
}

// BusSink adapts the bus to the engine's output sink capability.
type BusSink struct {
	bus *Bus
}

// Write emits the text as an EvText event.
func (s BusSink) Write(text string) {
	s.bus.Emit(Event{Type: EvText, Text: text})
}
