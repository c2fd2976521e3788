package toolcore

import (
	"errors"
	"fmt"
)

// Sentinel errors for toolcore. Use errors.Is to check.
var (
	ErrUnsupportedSchemaType = errors.New("unsupported schema type")
	ErrMissingTitle          = errors.New("model schema has no title")
	ErrValidation            = errors.New("validation failed")
)

// UnsupportedSchemaTypeError reports a schema node whose type has no native mapping.
// Path is a JSON pointer to the offending node ("#" for the root) when known.
type UnsupportedSchemaTypeError struct {
	Type string
	Path string
}

func (e *UnsupportedSchemaTypeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unsupported schema type %q", e.Type)
	}
	return fmt.Sprintf("unsupported schema type %q at %s", e.Type, e.Path)
}

// Unwrap lets errors.Is(err, ErrUnsupportedSchemaType) match.
func (e *UnsupportedSchemaTypeError) Unwrap() error { return ErrUnsupportedSchemaType }

// ClientError is a construction or validation failure caused by the supplied values
// (missing required field, wrong type, invalid JSON). The message is safe to send back
// to an LLM for self-correction.
// Err optionally wraps a sentinel (e.g. ErrValidation) for errors.Is/errors.As.
type ClientError struct {
	Reason string
	Err    error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("invalid tool input: %s", e.Reason)
}

// Unwrap supports errors.Is/errors.As on wrapped chains (e.g. errors.Is(err, ErrValidation)).
func (e *ClientError) Unwrap() error { return e.Err }

// IsClientError returns true if err is or wraps a ClientError.
func IsClientError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce)
}

// wrapJSONParseError returns a ClientError for JSON unmarshal failures.
func wrapJSONParseError(err error) error {
	return &ClientError{Reason: "json parse error: " + err.Error(), Err: ErrValidation}
}
