package toolcore

import (
	"encoding/json"
	"errors"
)

// schemaValidator validates a JSON-like value (e.g. map[string]any from json.Unmarshal).
// *jsonschema.Resolved implements it.
type schemaValidator interface {
	Validate(v any) error
}

var errNotCompiled = errors.New("model was not produced by a Compiler")

// validateAgainstSchema runs schema validation on already-normalized value v.
func validateAgainstSchema(validate schemaValidator, v any) error {
	if validate == nil {
		return errNotCompiled
	}
	if err := validate.Validate(v); err != nil {
		return &ClientError{Reason: err.Error(), Err: ErrValidation}
	}
	return nil
}

// normalize converts v to the JSON data model (map[string]any, []any, float64, string,
// bool, nil) so that validation sees the same shapes a decoded request would have.
func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
