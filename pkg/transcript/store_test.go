package transcript

import (
	"path/filepath"
	"testing"

	"github.com/crystal-mush/gozif/pkg/events"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "transcripts.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndLines(t *testing.T) {
	s := openTestStore(t)

	for _, line := range []string{"West of House", "Taken.", "It is pitch black."} {
		if err := s.Append("session-1", line); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := s.Append("session-2", "other game"); err != nil {
		t.Fatalf("append: %v", err)
	}

	lines, err := s.Lines("session-1")
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	want := []string{"West of House", "Taken.", "It is pitch black."}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}

	if lines, _ := s.Lines("nope"); len(lines) != 0 {
		t.Errorf("unknown session should read empty, got %v", lines)
	}

	sessions, err := s.Sessions()
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("expected 2 sessions, got %v", sessions)
	}
}

func TestRecorderBuffersLines(t *testing.T) {
	s := openTestStore(t)
	r := NewRecorder(s, "session-1")

	// Sink writes arrive in fragments; the recorder assembles lines.
	r.Receive(events.Event{Type: events.EvText, Text: "Score: "})
	r.Receive(events.Event{Type: events.EvText, Text: "42\nYou hear "})
	r.Receive(events.Event{Type: events.EvText, Text: "a grue.\n"})
	r.Close()

	lines, err := s.Lines("session-1")
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	want := []string{"Score: 42", "You hear a grue."}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
	if !r.Closed() {
		t.Error("expected the recorder closed")
	}
}

func TestRecorderMarksTermination(t *testing.T) {
	s := openTestStore(t)
	r := NewRecorder(s, "session-1")

	r.Receive(events.Event{Type: events.EvText, Text: "The troll kills you."})
	r.Receive(events.Event{Type: events.EvDeath, Text: "The troll kills you."})

	lines, _ := s.Lines("session-1")
	if len(lines) != 2 || lines[1] != "[session ended: died]" {
		t.Errorf("expected a death marker after the flushed line, got %v", lines)
	}
}
