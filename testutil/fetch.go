// Package testutil provides test doubles for toolcore: fetch and catalogue stubs for
// enums.Cache and a recording trigger handler.
package testutil

import (
	"context"
	"maps"
	"sync"

	"github.com/skosovsky/toolcore/enums"
)

// FetchStub is a configurable enums.FetchFunc that counts its calls.
type FetchStub struct {
	mu    sync.Mutex
	Data  map[enums.Namespace]map[string]map[string]any
	Err   error
	calls int
}

// Set stores the metadata returned for (ns, slug). slug must be canonical.
func (f *FetchStub) Set(ns enums.Namespace, slug string, meta map[string]any) *FetchStub {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Data == nil {
		f.Data = make(map[enums.Namespace]map[string]map[string]any)
	}
	if f.Data[ns] == nil {
		f.Data[ns] = make(map[string]map[string]any)
	}
	f.Data[ns][slug] = meta
	return f
}

// Fetch implements enums.FetchFunc. It returns Err when set, or enums.ErrEnumNotFound
// for unknown slugs.
func (f *FetchStub) Fetch(_ context.Context, ns enums.Namespace, slug string) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.Err != nil {
		return nil, f.Err
	}
	meta, ok := f.Data[ns][slug]
	if !ok {
		return nil, enums.ErrEnumNotFound
	}
	return maps.Clone(meta), nil
}

// Catalogue implements enums.CatalogueFunc over the same data.
func (f *FetchStub) Catalogue(_ context.Context, ns enums.Namespace) (map[string]map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.Err != nil {
		return nil, f.Err
	}
	return maps.Clone(f.Data[ns]), nil
}

// Calls returns how many times Fetch or Catalogue ran.
func (f *FetchStub) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
