package testutil

import (
	"context"
	"sync"

	"github.com/skosovsky/toolcore/triggers"
)

// Recorder collects the events its handlers receive, tagged by handler name.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// Call is one recorded handler invocation.
type Call struct {
	Name  string
	Event triggers.Event
}

// Handler returns a handler that records under name and returns err.
func (r *Recorder) Handler(name string, err error) triggers.Handler {
	return func(_ context.Context, ev triggers.Event) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls = append(r.calls, Call{Name: name, Event: ev})
		return err
	}
}

// Calls returns the recorded invocations in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Names returns the handler names in invocation order.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		out = append(out, c.Name)
	}
	return out
}
