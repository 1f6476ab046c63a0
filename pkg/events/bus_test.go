package events

import (
	"sync"
	"testing"
)

// mockSubscriber implements Subscriber for testing.
type mockSubscriber struct {
	mu       sync.Mutex
	events   []Event
	isClosed bool
}

func (m *mockSubscriber) Receive(ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
}

func (m *mockSubscriber) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isClosed
}

func (m *mockSubscriber) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]Event, len(m.events))
	copy(cp, m.events)
	return cp
}

func TestBusEmit(t *testing.T) {
	bus := NewBus()
	sub := &mockSubscriber{}
	bus.Subscribe(sub)

	bus.Emit(Event{Type: EvRoom, Room: "LIVING-ROOM"})

	events := sub.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Type != EvRoom {
		t.Errorf("expected type EvRoom, got %v", events[0].Type)
	}
	if events[0].Room != "LIVING-ROOM" {
		t.Errorf("expected room %q, got %q", "LIVING-ROOM", events[0].Room)
	}
}

func TestBusFanOut(t *testing.T) {
	bus := NewBus()
	a := &mockSubscriber{}
	b := &mockSubscriber{}
	bus.Subscribe(a)
	bus.Subscribe(b)

	bus.Emit(Event{Type: EvText, Text: "Taken."})

	if len(a.Events()) != 1 || len(b.Events()) != 1 {
		t.Errorf("expected both subscribers to receive the event, got %d and %d",
			len(a.Events()), len(b.Events()))
	}
}

func TestBusSkipsClosedSubscriber(t *testing.T) {
	bus := NewBus()
	sub := &mockSubscriber{isClosed: true}
	bus.Subscribe(sub)

	bus.Emit(Event{Type: EvText, Text: "should not arrive"})

	if len(sub.Events()) != 0 {
		t.Errorf("closed subscriber must not receive events, got %d", len(sub.Events()))
	}
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()
	sub := &mockSubscriber{}
	bus.Subscribe(sub)
	bus.Unsubscribe(sub)

	bus.Emit(Event{Type: EvText, Text: "gone"})

	if len(sub.Events()) != 0 {
		t.Errorf("unsubscribed subscriber must not receive events, got %d", len(sub.Events()))
	}
}

func TestBusSink(t *testing.T) {
	bus := NewBus()
	sub := &mockSubscriber{}
	bus.Subscribe(sub)

	sink := bus.SinkOf()
	sink.Write("West of House\n")

	events := sub.Events()
	if len(events) != 1 || events[0].Type != EvText || events[0].Text != "West of House\n" {
		t.Errorf("expected one EvText event with the written text, got %+v", events)
	}
}
