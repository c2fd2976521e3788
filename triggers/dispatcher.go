// Package triggers fans incoming trigger events out to filtered handlers.
//
// A Dispatcher holds (filter, handler) registrations. Dispatch runs, in registration
// order, every handler whose filter matches the event metadata. Dispatch is synchronous;
// the receive loop that feeds events belongs to the caller.
package triggers

import (
	"context"
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"sync"

	"github.com/skosovsky/toolcore/metrics"
)

// Event is one incoming trigger event.
type Event struct {
	Metadata map[string]any `json:"metadata"`
	Payload  map[string]any `json:"payload"`
}

// Filter maps metadata attributes to their expected values. An empty filter matches
// every event.
type Filter map[string]any

// Handler processes a matching event.
type Handler func(ctx context.Context, ev Event) error

// ID identifies a registration for Unregister.
type ID uint64

type registration struct {
	id      ID
	filter  Filter
	handler Handler
}

// Dispatcher holds registrations for its whole lifetime. Safe for concurrent use;
// registrations made during a Dispatch take effect on the next one.
type Dispatcher struct {
	mu          sync.RWMutex
	regs        []registration
	nextID      ID
	middlewares []Middleware
	logger      *slog.Logger
	metrics     *metrics.Collector
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMetrics counts events, skipped registrations and handler results in m.
func WithMetrics(m *metrics.Collector) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// New creates an empty Dispatcher.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{logger: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Use adds middlewares applied to every handler at dispatch time. The first middleware
// is the outermost.
func (d *Dispatcher) Use(middlewares ...Middleware) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.middlewares = append(d.middlewares, middlewares...)
}

// Register adds a registration and returns its ID. The filter is copied.
func (d *Dispatcher) Register(filter Filter, handler Handler) ID {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	d.regs = append(d.regs, registration{id: d.nextID, filter: maps.Clone(filter), handler: handler})
	return d.nextID
}

// Unregister removes a registration and reports whether it existed.
func (d *Dispatcher) Unregister(id ID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	i := slices.IndexFunc(d.regs, func(r registration) bool { return r.id == id })
	if i < 0 {
		return false
	}
	d.regs = slices.Delete(d.regs, i, i+1)
	return true
}

// Len returns the number of registrations.
func (d *Dispatcher) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.regs)
}

// Dispatch invokes every matching handler in registration order. The first handler
// error stops the dispatch and is returned; panics propagate unless WithRecovery is used.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) error {
	d.mu.RLock()
	regs := slices.Clone(d.regs)
	mws := slices.Clone(d.middlewares)
	d.mu.RUnlock()

	d.metrics.RecordEvent()
	for _, r := range regs {
		if key, ok := mismatch(r.filter, ev.Metadata); !ok {
			d.logger.Debug("trigger skipped", "registration", r.id, "key", key)
			d.metrics.RecordSkip()
			continue
		}
		h := r.handler
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		err := h(ctx, ev)
		d.metrics.RecordHandler(err)
		if err != nil {
			d.logger.Error("trigger handler failed", "registration", r.id, "error", err)
			return err
		}
	}
	return nil
}

// mismatch returns the first filter key (in sorted order) that metadata does not
// satisfy, and false. It returns "", true when every key matches.
func mismatch(filter Filter, metadata map[string]any) (string, bool) {
	for _, k := range slices.Sorted(maps.Keys(filter)) {
		got, ok := metadata[k]
		if !ok || !equal(filter[k], got) {
			return k, false
		}
	}
	return "", true
}

// equal compares two metadata values. Numbers compare by value across kinds, so a
// filter of int 1 matches a decoded JSON float64 1.
func equal(want, got any) bool {
	if a, ok := number(want); ok {
		b, ok := number(got)
		return ok && a == b
	}
	return reflect.DeepEqual(want, got)
}

func number(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
