package enums

import (
	"maps"

	json "github.com/goccy/go-json"
)

// Source tells where an entity's metadata was resolved from.
type Source int

const (
	SourceRuntime Source = iota + 1
	SourceDisk
	SourceRemote
)

func (s Source) String() string {
	switch s {
	case SourceRuntime:
		return "runtime"
	case SourceDisk:
		return "disk"
	case SourceRemote:
		return "remote"
	}
	return "unknown"
}

// Entity is a resolved (namespace, slug) pair. Path is the cache file of the pair, set
// even for runtime entities that are never written to disk.
type Entity struct {
	Namespace Namespace
	Slug      string
	Path      string
	Source    Source

	metadata map[string]any
}

func (e *Entity) String() string { return e.Slug }

// Metadata returns a shallow copy of the resolved metadata.
func (e *Entity) Metadata() map[string]any { return maps.Clone(e.metadata) }

// Decode decodes the metadata into out (e.g. *ActionMetadata).
func (e *Entity) Decode(out any) error {
	data, err := json.Marshal(e.metadata)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
