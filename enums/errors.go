package enums

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for enums. Use errors.Is to check.
var (
	ErrEnumNotFound     = errors.New("enum string not found")
	ErrInvalidEnum      = errors.New("invalid enum value")
	ErrUnknownNamespace = errors.New("unknown enum namespace")
)

// maxCandidatesShown bounds the candidate list rendered in error messages; the full list
// stays available in EnumStringNotFoundError.Candidates.
const maxCandidatesShown = 10

// EnumStringNotFoundError reports a slug that neither the runtime registry, the disk
// cache nor the remote fetch could resolve. Err holds the fetch failure, if any.
type EnumStringNotFoundError struct {
	Namespace  Namespace
	Slug       string
	Candidates []string
	Err        error
}

func (e *EnumStringNotFoundError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %q not found", e.Namespace, e.Slug)
	if e.Err != nil {
		fmt.Fprintf(&b, " (%v)", e.Err)
	}
	switch n := len(e.Candidates); {
	case n == 0:
		b.WriteString("; no resolvable values")
	case n <= maxCandidatesShown:
		fmt.Fprintf(&b, "; resolvable values: %s", strings.Join(e.Candidates, ", "))
	default:
		fmt.Fprintf(&b, "; resolvable values: %s, ... (%d more)",
			strings.Join(e.Candidates[:maxCandidatesShown], ", "), n-maxCandidatesShown)
	}
	return b.String()
}

// Unwrap matches ErrEnumNotFound and the underlying fetch error.
func (e *EnumStringNotFoundError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrEnumNotFound}
	}
	return []error{ErrEnumNotFound, e.Err}
}

// InvalidEnumError reports an identifier that cannot be used as a slug.
type InvalidEnumError struct {
	Value  any
	Reason string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid enum value %#v: %s", e.Value, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidEnum) match.
func (e *InvalidEnumError) Unwrap() error { return ErrInvalidEnum }
