package toolcore

import "encoding/json"

// ParseJSON decodes argsJSON (e.g. tool-call arguments produced by an LLM) and constructs
// a validated Instance. Invalid JSON, non-object payloads and schema violations are
// ClientErrors, so the caller can pass the message back for self-correction.
func (m *Model) ParseJSON(argsJSON []byte) (*Instance, error) {
	var v any
	if err := json.Unmarshal(argsJSON, &v); err != nil {
		return nil, wrapJSONParseError(err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &ClientError{Reason: "arguments must be a JSON object", Err: ErrValidation}
	}
	return m.New(obj)
}
