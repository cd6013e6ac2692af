package announce

import (
	"log/slog"
	"sync"

	"github.com/ayusman/mudra/internal/speech"
)

// Announcer hands utterances to a speech engine on a dedicated worker
// goroutine. The handoff holds a single pending utterance; a request
// arriving while the slot is full is dropped, never blocking the
// caller on playback.
type Announcer struct {
	engine    speech.Engine
	requests  chan string
	done      chan struct{}
	closeOnce sync.Once
}

// NewAnnouncer creates an Announcer and starts its worker.
func NewAnnouncer(engine speech.Engine) *Announcer {
	a := &Announcer{
		engine:   engine,
		requests: make(chan string, 1),
		done:     make(chan struct{}),
	}
	go a.run()
	return a
}

// Say queues the text for speaking. Returns false if the slot was
// full and the request was dropped.
func (a *Announcer) Say(text string) bool {
	select {
	case a.requests <- text:
		return true
	default:
		return false
	}
}

// Close stops accepting requests and waits for the worker to finish
// any in-flight utterance.
func (a *Announcer) Close() {
	a.closeOnce.Do(func() {
		close(a.requests)
	})
	<-a.done
}

func (a *Announcer) run() {
	defer close(a.done)
	for text := range a.requests {
		if err := a.engine.Speak(text); err != nil {
			// Speech is best-effort; counting and display go on.
			slog.Warn("speech output failed", "error", err)
		}
	}
}
