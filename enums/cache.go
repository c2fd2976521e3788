package enums

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"github.com/skosovsky/toolcore/metrics"
)

// Cache resolves (namespace, slug) pairs to entities: runtime registry, then disk, then
// the remote fetch. Construct one per process and pass it by reference. Load and All
// hold the cache lock for their whole duration, including the remote call.
type Cache struct {
	store     diskStore
	runtime   *Runtime
	fetch     FetchFunc
	catalogue CatalogueFunc
	remote    bool
	logger    *slog.Logger
	metrics   *metrics.Collector

	mu        sync.Mutex
	memo      map[entityKey]*Entity
	refreshed map[Namespace]bool
}

type entityKey struct {
	ns   Namespace
	slug string
}

// New creates a Cache. Settings are read from the environment first (see LoadConfig)
// and then overridden by opts.
func New(opts ...Option) (*Cache, error) {
	cfg, err := parseConfig()
	if err != nil {
		return nil, err
	}
	o := options{remote: true, logger: slog.Default()}
	WithConfig(cfg)(&o)
	for _, opt := range opts {
		opt(&o)
	}
	if o.root == "" {
		if o.root, err = DefaultCacheDir(); err != nil {
			return nil, err
		}
	}
	if o.runtime == nil {
		o.runtime = NewRuntime()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if _, err := metadataSchemas(); err != nil {
		return nil, err
	}
	return &Cache{
		store:     diskStore{root: o.root},
		runtime:   o.runtime,
		fetch:     o.fetch,
		catalogue: o.catalogue,
		remote:    o.remote,
		logger:    o.logger,
		metrics:   o.metrics,
		memo:      make(map[entityKey]*Entity),
		refreshed: make(map[Namespace]bool),
	}, nil
}

// Runtime returns the runtime registry consulted by the cache.
func (c *Cache) Runtime() *Runtime { return c.runtime }

// Root returns the cache root directory.
func (c *Cache) Root() string { return c.store.root }

// Path returns the cache file path of a canonical slug.
func (c *Cache) Path(ns Namespace, slug string) string { return c.store.path(ns, slug) }

// Resolve is Load for an identifier that may be a string, an entity or a fmt.Stringer.
// Any other value is an InvalidEnumError.
func (c *Cache) Resolve(ctx context.Context, ns Namespace, id any) (*Entity, error) {
	slug, err := Canonicalize(id)
	if err != nil {
		return nil, err
	}
	return c.Load(ctx, ns, slug)
}

// Load resolves slug (case-insensitive) in ns. The first successful resolution is
// memoized; later calls return the same *Entity without touching disk or network.
func (c *Cache) Load(ctx context.Context, ns Namespace, slug string) (*Entity, error) {
	if err := ns.check(); err != nil {
		return nil, err
	}
	slug, err := canonicalSlug(slug)
	if err != nil {
		return nil, err
	}
	key := entityKey{ns: ns, slug: slug}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.memo[key]; ok {
		return e, nil
	}
	e, err := c.resolve(ctx, ns, slug)
	if err != nil {
		return nil, err
	}
	c.metrics.RecordResolution(string(ns), e.Source.String())
	c.memo[key] = e
	return e, nil
}

func (c *Cache) resolve(ctx context.Context, ns Namespace, slug string) (*Entity, error) {
	e := &Entity{Namespace: ns, Slug: slug, Path: c.store.path(ns, slug)}

	if meta, ok := c.runtime.Lookup(ns, slug); ok {
		c.logger.Debug("enum resolved", "namespace", ns, "slug", slug, "source", SourceRuntime)
		e.Source, e.metadata = SourceRuntime, meta
		return e, nil
	}

	meta, err := c.readDisk(ns, slug)
	if err != nil {
		return nil, err
	}
	if meta != nil {
		c.logger.Debug("enum resolved", "namespace", ns, "slug", slug, "source", SourceDisk)
		e.Source, e.metadata = SourceDisk, meta
		return e, nil
	}

	if !c.remote || c.fetch == nil {
		return nil, c.notFound(ns, slug, nil)
	}
	start := time.Now()
	fetched, err := c.fetch(ctx, ns, slug)
	c.metrics.ObserveFetch(string(ns), time.Since(start).Seconds())
	if err != nil {
		return nil, c.notFound(ns, slug, fmt.Errorf("fetch: %w", err))
	}
	data, err := json.Marshal(fetched)
	if err != nil {
		return nil, c.notFound(ns, slug, fmt.Errorf("encode fetched metadata: %w", err))
	}
	if meta, err = decodeMetadata(ns, data); err != nil {
		return nil, c.notFound(ns, slug, err)
	}
	if err := c.store.write(ns, slug, data); err != nil {
		return nil, fmt.Errorf("persist %s %s: %w", ns, slug, err)
	}
	c.logger.Debug("enum resolved", "namespace", ns, "slug", slug, "source", SourceRemote)
	e.Source, e.metadata = SourceRemote, meta
	return e, nil
}

// readDisk returns the disk entry of slug, or nil when there is none. A stale or
// undecodable entry is deleted and reported as missing.
func (c *Cache) readDisk(ns Namespace, slug string) (map[string]any, error) {
	data, err := c.store.read(ns, slug)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", ns, slug, err)
	}
	meta, err := decodeMetadata(ns, data)
	if err == nil {
		return meta, nil
	}
	c.logger.Info("removing stale enum cache entry", "namespace", ns, "slug", slug, "error", err)
	c.metrics.RecordStale(string(ns))
	if err := c.store.remove(ns, slug); err != nil {
		return nil, fmt.Errorf("remove stale %s %s: %w", ns, slug, err)
	}
	return nil, nil
}

func (c *Cache) notFound(ns Namespace, slug string, cause error) error {
	c.metrics.RecordMiss(string(ns))
	return &EnumStringNotFoundError{
		Namespace:  ns,
		Slug:       slug,
		Candidates: c.candidates(ns),
		Err:        cause,
	}
}

// candidates lists what ns can resolve right now without a refresh.
func (c *Cache) candidates(ns Namespace) []string {
	onDisk, _, err := c.store.list(ns)
	if err != nil {
		c.logger.Warn("list enum cache", "namespace", ns, "error", err)
	}
	return mergeSlugs(c.runtime.Slugs(ns), onDisk)
}

// All lists the resolvable slugs of ns: runtime registrations plus the disk cache. When
// the namespace directory does not exist yet, a one-time catalogue refresh is attempted
// first; if the directory is still absent the result holds runtime slugs only.
func (c *Cache) All(ctx context.Context, ns Namespace) ([]string, error) {
	if err := ns.check(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	onDisk, exists, err := c.store.list(ns)
	if err != nil {
		return nil, err
	}
	if !exists && c.remote && c.catalogue != nil && !c.refreshed[ns] {
		if err := c.refreshLocked(ctx, ns); err != nil {
			c.logger.Warn("enum catalogue refresh failed", "namespace", ns, "error", err)
		}
		if onDisk, _, err = c.store.list(ns); err != nil {
			return nil, err
		}
	}
	return mergeSlugs(c.runtime.Slugs(ns), onDisk), nil
}

// Refresh downloads the full catalogue of each namespace (all of them when none are
// given) and rewrites the disk cache. Entries that fail their metadata schema are
// skipped. Memoized entities are kept; use Forget to drop one.
func (c *Cache) Refresh(ctx context.Context, namespaces ...Namespace) error {
	if len(namespaces) == 0 {
		namespaces = Namespaces
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	var errs []error
	for _, ns := range namespaces {
		if err := ns.check(); err != nil {
			errs = append(errs, err)
			continue
		}
		if err := c.refreshLocked(ctx, ns); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Cache) refreshLocked(ctx context.Context, ns Namespace) (err error) {
	if c.catalogue == nil {
		return errors.New("no catalogue function configured")
	}
	c.refreshed[ns] = true
	defer func() { c.metrics.RecordRefresh(string(ns), err) }()
	entries, err := c.catalogue(ctx, ns)
	if err != nil {
		return fmt.Errorf("refresh %s catalogue: %w", ns, err)
	}
	if err := c.store.ensureDir(ns); err != nil {
		return err
	}
	written := 0
	for id, meta := range entries {
		slug, err := canonicalSlug(id)
		if err != nil {
			c.logger.Warn("skipping catalogue entry", "namespace", ns, "slug", id, "error", err)
			continue
		}
		data, err := json.Marshal(meta)
		if err != nil {
			c.logger.Warn("skipping catalogue entry", "namespace", ns, "slug", slug, "error", err)
			continue
		}
		if err := validateMetadata(ns, data); err != nil {
			c.logger.Warn("skipping catalogue entry", "namespace", ns, "slug", slug, "error", err)
			continue
		}
		if err := c.store.write(ns, slug, data); err != nil {
			return fmt.Errorf("refresh %s catalogue: %w", ns, err)
		}
		written++
	}
	c.logger.Debug("enum catalogue refreshed", "namespace", ns, "entries", written)
	return nil
}

// Forget drops the memoized entity of slug so the next Load resolves it again.
func (c *Cache) Forget(ns Namespace, slug string) bool {
	slug, err := canonicalSlug(slug)
	if err != nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	key := entityKey{ns: ns, slug: slug}
	if _, ok := c.memo[key]; !ok {
		return false
	}
	delete(c.memo, key)
	return true
}

func mergeSlugs(lists ...[]string) []string {
	out := []string{}
	for _, l := range lists {
		out = append(out, l...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// LoadAs loads slug and decodes its metadata into T.
func LoadAs[T any](ctx context.Context, c *Cache, ns Namespace, slug string) (T, error) {
	var out T
	e, err := c.Load(ctx, ns, slug)
	if err != nil {
		return out, err
	}
	if err := e.Decode(&out); err != nil {
		return out, fmt.Errorf("decode %s %s: %w", ns, e.Slug, err)
	}
	return out, nil
}

// App loads the metadata of an app slug.
func (c *Cache) App(ctx context.Context, slug string) (AppMetadata, error) {
	return LoadAs[AppMetadata](ctx, c, NamespaceApp, slug)
}

// Action loads the metadata of an action slug.
func (c *Cache) Action(ctx context.Context, slug string) (ActionMetadata, error) {
	return LoadAs[ActionMetadata](ctx, c, NamespaceAction, slug)
}

// Tag loads the metadata of a tag slug.
func (c *Cache) Tag(ctx context.Context, slug string) (TagMetadata, error) {
	return LoadAs[TagMetadata](ctx, c, NamespaceTag, slug)
}

// Trigger loads the metadata of a trigger slug.
func (c *Cache) Trigger(ctx context.Context, slug string) (TriggerMetadata, error) {
	return LoadAs[TriggerMetadata](ctx, c, NamespaceTrigger, slug)
}
