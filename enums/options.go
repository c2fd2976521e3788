package enums

import (
	"context"
	"log/slog"

	"github.com/skosovsky/toolcore/metrics"
)

// FetchFunc resolves one slug remotely. It is the only blocking call of a Cache; any
// timeout is the function's own business and surfaces as a fetch error.
type FetchFunc func(ctx context.Context, ns Namespace, slug string) (map[string]any, error)

// CatalogueFunc returns the full remote catalogue of ns keyed by slug.
type CatalogueFunc func(ctx context.Context, ns Namespace) (map[string]map[string]any, error)

// Option configures a Cache.
type Option func(*options)

type options struct {
	root      string
	remote    bool
	fetch     FetchFunc
	catalogue CatalogueFunc
	runtime   *Runtime
	logger    *slog.Logger
	metrics   *metrics.Collector
}

// WithConfig applies an environment Config (cache dir and remote switch).
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if cfg.CacheDir != "" {
			o.root = cfg.CacheDir
		}
		o.remote = !cfg.NoRemoteEnumFetching
	}
}

// WithCacheDir sets the cache root.
func WithCacheDir(dir string) Option {
	return func(o *options) {
		o.root = dir
	}
}

// WithRemoteFetch enables or disables the remote fetch and catalogue refresh. When
// disabled, misses fail fast with EnumStringNotFoundError.
func WithRemoteFetch(enabled bool) Option {
	return func(o *options) {
		o.remote = enabled
	}
}

// WithFetch sets the function used for single-slug remote resolution.
func WithFetch(fn FetchFunc) Option {
	return func(o *options) {
		o.fetch = fn
	}
}

// WithCatalogue sets the function used for full-catalogue refreshes.
func WithCatalogue(fn CatalogueFunc) Option {
	return func(o *options) {
		o.catalogue = fn
	}
}

// WithRuntime shares a runtime registry with the cache. Defaults to a private one.
func WithRuntime(r *Runtime) Option {
	return func(o *options) {
		o.runtime = r
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics records resolutions, misses, stale entries and refreshes in m.
func WithMetrics(m *metrics.Collector) Option {
	return func(o *options) {
		o.metrics = m
	}
}
