package enums

import (
	"fmt"
	"strings"
)

// Namespace is one of the enum categories.
type Namespace string

const (
	NamespaceApp     Namespace = "app"
	NamespaceAction  Namespace = "action"
	NamespaceTag     Namespace = "tag"
	NamespaceTrigger Namespace = "trigger"
)

// Namespaces lists every namespace in a stable order.
var Namespaces = []Namespace{NamespaceApp, NamespaceAction, NamespaceTag, NamespaceTrigger}

// Valid reports whether n is a known namespace.
func (n Namespace) Valid() bool {
	switch n {
	case NamespaceApp, NamespaceAction, NamespaceTag, NamespaceTrigger:
		return true
	}
	return false
}

// Dir returns the cache subdirectory of the namespace ("apps", "actions", ...).
func (n Namespace) Dir() string { return string(n) + "s" }

func (n Namespace) check() error {
	if !n.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownNamespace, string(n))
	}
	return nil
}

// Canonicalize returns the canonical slug of id. Strings, entities and fmt.Stringer
// values are accepted; anything else is an InvalidEnumError.
func Canonicalize(id any) (string, error) {
	var s string
	switch v := id.(type) {
	case string:
		s = v
	case *Entity:
		if v == nil {
			return "", &InvalidEnumError{Value: id, Reason: "nil entity"}
		}
		s = v.Slug
	case Entity:
		s = v.Slug
	case fmt.Stringer:
		s = v.String()
	default:
		return "", &InvalidEnumError{Value: id, Reason: fmt.Sprintf("expected a string, got %T", id)}
	}
	return canonicalSlug(s)
}

// canonicalSlug upper-cases s and rejects values that cannot name a cache file.
func canonicalSlug(s string) (string, error) {
	slug := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case slug == "":
		return "", &InvalidEnumError{Value: s, Reason: "empty slug"}
	case slug == "." || slug == ".." || strings.ContainsAny(slug, `/\`) || strings.HasPrefix(slug, "."):
		return "", &InvalidEnumError{Value: s, Reason: "slug is not a valid file name"}
	}
	return slug, nil
}
