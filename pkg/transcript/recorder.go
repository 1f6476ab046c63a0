package transcript

import (
	"log"
	"strings"

	"github.com/crystal-mush/gozif/pkg/events"
)

// Recorder is an event bus subscriber that appends everything the player
// sees to a session transcript. Text events arrive as raw sink writes, so
// the recorder buffers until a line break before appending whole lines.
type Recorder struct {
	store   *Store
	session string
	partial strings.Builder
	closed  bool
}

// NewRecorder creates a recorder for one session. Subscribe it to the
// game's bus to start recording.
func NewRecorder(store *Store, session string) *Recorder {
	return &Recorder{store: store, session: session}
}

// Receive implements events.Subscriber.
func (r *Recorder) Receive(ev events.Event) {
	switch ev.Type {
	case events.EvText:
		r.write(ev.Text)
	case events.EvDeath:
		r.flush()
		r.append("[session ended: died]")
	case events.EvWin:
		r.flush()
		r.append("[session ended: won]")
	}
}

// Closed implements events.Subscriber.
func (r *Recorder) Closed() bool {
	return r.closed
}

// Close flushes any buffered partial line and detaches the recorder.
func (r *Recorder) Close() {
	r.flush()
	r.closed = true
}

func (r *Recorder) write(text string) {
	for {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			r.partial.WriteString(text)
			return
		}
		r.partial.WriteString(text[:i])
		r.append(r.partial.String())
		r.partial.Reset()
		text = text[i+1:]
	}
}

func (r *Recorder) flush() {
	if r.partial.Len() > 0 {
		r.append(r.partial.String())
		r.partial.Reset()
	}
}

func (r *Recorder) append(line string) {
	if err := r.store.Append(r.session, line); err != nil {
		log.Printf("transcript: %v", err)
	}
}
