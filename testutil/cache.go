package testutil

import (
	"testing"

	"github.com/skosovsky/toolcore/enums"
)

// NewTestCache returns an enums.Cache rooted in a temporary directory, wired to stub
// for both fetch and catalogue refresh. Extra opts are applied last.
func NewTestCache(tb testing.TB, stub *FetchStub, opts ...enums.Option) *enums.Cache {
	tb.Helper()
	base := []enums.Option{enums.WithCacheDir(tb.TempDir()), enums.WithRemoteFetch(true)}
	if stub != nil {
		base = append(base, enums.WithFetch(stub.Fetch), enums.WithCatalogue(stub.Catalogue))
	}
	c, err := enums.New(append(base, opts...)...)
	if err != nil {
		tb.Fatalf("enums.New: %v", err)
	}
	return c
}
