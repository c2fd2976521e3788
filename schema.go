package toolcore

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// render produces the JSON Schema of the model keyed by original property names. Unions
// render as anyOf so that a value matching any one member validates.
func (m *Model) render() map[string]any {
	props := make(map[string]any, len(m.Fields))
	var required []any
	for _, f := range m.Fields {
		p := f.Type.render()
		if f.Description != "" {
			p["description"] = f.Description
		}
		if _, ok := p["enum"]; !ok && len(f.Enum) > 0 {
			p["enum"] = f.Enum
		}
		props[f.Key()] = p
		if f.Required {
			required = append(required, f.Key())
		}
	}
	s := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if m.Name != "" {
		s["title"] = m.Name
	}
	if m.Description != "" {
		s["description"] = m.Description
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func (t Type) render() map[string]any {
	s := t.renderShape()
	if len(t.Enum) > 0 {
		s["enum"] = t.Enum
	}
	return s
}

func (t Type) renderShape() map[string]any {
	switch t.Kind {
	case KindAny:
		return map[string]any{}
	case KindArray:
		s := map[string]any{"type": "array"}
		if t.Elem != nil && (t.Elem.Kind != KindAny || len(t.Elem.Enum) > 0) {
			s["items"] = t.Elem.render()
		}
		return s
	case KindObject:
		if t.Model == nil {
			return map[string]any{"type": "object"}
		}
		return t.Model.render()
	case KindUnion:
		members := make([]any, len(t.Members))
		for i, member := range t.Members {
			members[i] = member.render()
		}
		return map[string]any{"anyOf": members}
	default:
		return map[string]any{"type": t.Kind.String()}
	}
}

// walkSchema recursively visits every map node in the schema tree.
func walkSchema(schemaMap map[string]any, visit func(map[string]any)) {
	if schemaMap == nil {
		return
	}
	visit(schemaMap)
	for key, val := range schemaMap {
		if key == "enum" {
			continue
		}
		switch v := val.(type) {
		case map[string]any:
			walkSchema(v, visit)
		case []any:
			for _, item := range v {
				if m2, ok := item.(map[string]any); ok {
					walkSchema(m2, visit)
				}
			}
		}
	}
}

// applyStrictMode sets additionalProperties: false for every object with declared properties.
func applyStrictMode(schemaMap map[string]any) {
	walkSchema(schemaMap, func(n map[string]any) {
		if _, isObj := n["properties"].(map[string]any); isObj && n["type"] == "object" {
			n["additionalProperties"] = false
		}
	})
}

// compileRawSchema compiles a raw JSON Schema map into a resolved validator. The map is not mutated.
func compileRawSchema(schemaMap map[string]any) (*jsonschema.Resolved, error) {
	data, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, err
	}
	var s jsonschema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s.Resolve(nil)
}

// resolve attaches the validator for the model's current rendering.
func (m *Model) resolve() error {
	resolved, err := compileRawSchema(m.JSONSchema())
	if err != nil {
		return fmt.Errorf("resolve model %q: %w", m.Name, err)
	}
	m.validator = resolved
	return nil
}
