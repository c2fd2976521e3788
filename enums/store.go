package enums

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// diskStore is the key-path cache: one file per canonical slug under one directory per
// namespace. It assumes a single writer; concurrent refreshes from several processes may
// interleave.
type diskStore struct {
	root string
}

func (s diskStore) dir(ns Namespace) string { return filepath.Join(s.root, ns.Dir()) }

func (s diskStore) path(ns Namespace, slug string) string {
	return filepath.Join(s.dir(ns), slug)
}

// read returns the raw entry; a missing entry wraps fs.ErrNotExist.
func (s diskStore) read(ns Namespace, slug string) ([]byte, error) {
	return os.ReadFile(s.path(ns, slug))
}

// write stores data via a temp file and rename so readers never see a partial entry.
func (s diskStore) write(ns Namespace, slug string, data []byte) error {
	if err := s.ensureDir(ns); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir(ns), "."+slug+".*")
	if err != nil {
		return fmt.Errorf("create cache entry: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(ns, slug)); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

func (s diskStore) remove(ns Namespace, slug string) error {
	if err := os.Remove(s.path(ns, slug)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s diskStore) ensureDir(ns Namespace) error {
	if err := os.MkdirAll(s.dir(ns), 0o750); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	return nil
}

// list returns the sorted slugs stored for ns. exists is false when the namespace
// directory has never been created.
func (s diskStore) list(ns Namespace) (slugs []string, exists bool, err error) {
	entries, err := os.ReadDir(s.dir(ns))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("list cache dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		slugs = append(slugs, e.Name())
	}
	slices.Sort(slugs)
	return slugs, true, nil
}
