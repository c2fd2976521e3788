// Package enums resolves opaque slugs (apps, actions, tags, triggers) to metadata.
//
// A Cache looks a (namespace, slug) pair up in three places, in order: the in-process
// Runtime registry (tools and triggers that have no remote catalogue), the on-disk cache
// at {root}/{namespace dir}/{SLUG}, and finally an injected FetchFunc whose result is
// persisted before it is returned. Resolved entities are memoized per Cache, so a slug
// touches disk or network at most once.
//
// Disk entries that no longer satisfy the metadata schema of their namespace (a field
// the current record requires is missing) are stale: they are deleted and resolution
// falls through to the remote fetch.
//
// The cache root comes from TOOLCORE_CACHE_DIR and defaults to ~/.toolcore/cache;
// TOOLCORE_NO_REMOTE_ENUM_FETCHING=true makes misses fail fast with
// EnumStringNotFoundError instead of calling the fetch function.
package enums
