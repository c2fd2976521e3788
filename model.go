package toolcore

import (
	"encoding/json"
	"math"
	"reflect"
)

type noDefault struct{}

func (noDefault) String() string { return "<no default>" }

// NoDefault marks a field or parameter without a default value. It is distinct from nil,
// which is a legal default ("default": null).
var NoDefault any = noDefault{}

// IsNoDefault reports whether v is the NoDefault sentinel.
func IsNoDefault(v any) bool {
	_, ok := v.(noDefault)
	return ok
}

// Field is one compiled property of a Model.
type Field struct {
	// Name is identifier-safe. When it differs from the property name, Alias holds the
	// original and is what Dump and the validation schema use.
	Name  string
	Alias string

	Type     Type
	Required bool
	Default  any // NoDefault when absent

	Title       string
	Description string
	Examples    []any
	Enum        []any

	FileUploadable   bool
	FileDownloadable bool

	fallback bool // Default is a type fallback, not taken from the schema
}

// HasDefault reports whether the field carries a default.
func (f Field) HasDefault() bool { return !IsNoDefault(f.Default) }

// Key returns the serialized (original) property name.
func (f Field) Key() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// Model is a compiled object schema: an ordered field list plus the validator resolved
// from its JSON Schema rendering. Models are immutable once compiled.
type Model struct {
	Name        string
	Description string
	Fields      []Field

	strict    bool
	validator schemaValidator
}

// Field returns the field with the given name or alias.
func (m *Model) Field(name string) (Field, bool) {
	for _, f := range m.Fields {
		if f.Name == name || (f.Alias != "" && f.Alias == name) {
			return f, true
		}
	}
	return Field{}, false
}

// JSONSchema returns a fresh JSON Schema rendering of the model, keyed by original
// property names. Strict models render additionalProperties: false on every object.
func (m *Model) JSONSchema() map[string]any {
	s := m.render()
	if m.strict {
		applyStrictMode(s)
	}
	return s
}

// Validate checks v (a map, an *Instance or anything that marshals to a JSON object)
// against the model. Failures are ClientErrors wrapping ErrValidation.
func (m *Model) Validate(v any) error {
	data, err := normalize(v)
	if err != nil {
		return wrapJSONParseError(err)
	}
	return validateAgainstSchema(m.validator, data)
}

// New constructs a validated Instance from values keyed by field name or alias. Nested
// objects may be given as maps or *Instance values. Missing optional fields take their
// defaults; unknown keys are dropped unless the model is strict, in which case they fail
// validation. A value given under both the field name and its alias takes the alias.
func (m *Model) New(values map[string]any) (*Instance, error) {
	data, err := normalize(m.rekey(values))
	if err != nil {
		return nil, wrapJSONParseError(err)
	}
	if err := validateAgainstSchema(m.validator, data); err != nil {
		return nil, err
	}
	obj, ok := data.(map[string]any)
	if !ok {
		return nil, &ClientError{Reason: "expected an object", Err: ErrValidation}
	}
	return m.build(obj), nil
}

// rekey maps field names to original property names, recursing into nested models.
// When a value is given under both the field name and its alias, the alias wins.
func (m *Model) rekey(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		f, ok := m.Field(k)
		if !ok {
			out[k] = v
			continue
		}
		if k != f.Key() {
			if _, both := values[f.Key()]; both {
				continue
			}
		}
		out[f.Key()] = rekeyValue(f.Type, v)
	}
	return out
}

func rekeyValue(t Type, v any) any {
	switch val := v.(type) {
	case *Instance:
		return val.Dump()
	case map[string]any:
		if t.Kind == KindObject && t.Model != nil {
			return t.Model.rekey(val)
		}
		if t.Kind == KindUnion {
			for _, member := range t.Members {
				if member.Kind == KindObject && member.Model != nil && member.Model.knowsKeys(val) {
					return member.Model.rekey(val)
				}
			}
		}
	case []any:
		if t.Kind == KindArray && t.Elem != nil {
			out := make([]any, len(val))
			for i, e := range val {
				out[i] = rekeyValue(*t.Elem, e)
			}
			return out
		}
	}
	return v
}

// knowsKeys reports whether every key of values names a field of m.
func (m *Model) knowsKeys(values map[string]any) bool {
	for k := range values {
		if _, ok := m.Field(k); !ok {
			return false
		}
	}
	return true
}

// build assembles an Instance from already-validated JSON data, filling defaults.
func (m *Model) build(data map[string]any) *Instance {
	inst := &Instance{model: m, values: make(map[string]any, len(m.Fields))}
	for _, f := range m.Fields {
		v, ok := data[f.Key()]
		if !ok {
			if !f.HasDefault() || (f.fallback && !f.Type.matches(f.Default)) {
				continue
			}
			v = cloneValue(f.Default)
		}
		inst.values[f.Name] = buildValue(f.Type, v)
	}
	return inst
}

func buildValue(t Type, v any) any {
	switch t.Kind {
	case KindInteger:
		if n, ok := v.(float64); ok && n == math.Trunc(n) {
			return int(n)
		}
	case KindObject:
		if obj, ok := v.(map[string]any); ok && t.Model != nil {
			return t.Model.build(obj)
		}
	case KindArray:
		if list, ok := v.([]any); ok && t.Elem != nil {
			out := make([]any, len(list))
			for i, e := range list {
				out[i] = buildValue(*t.Elem, e)
			}
			return out
		}
	case KindUnion:
		for _, member := range t.Members {
			if member.matches(v) {
				return buildValue(member, v)
			}
		}
	}
	return v
}

// matches reports whether JSON data v belongs to t. Used to pick a union member and to
// drop fallback defaults the field's schema would reject.
func (t Type) matches(v any) bool {
	if len(t.Enum) > 0 && !enumContains(t.Enum, v) {
		return false
	}
	switch t.Kind {
	case KindAny:
		return true
	case KindString:
		_, ok := v.(string)
		return ok
	case KindInteger:
		switch n := v.(type) {
		case float64:
			return n == math.Trunc(n)
		case int:
			return true
		}
		return false
	case KindNumber:
		switch v.(type) {
		case float64, int:
			return true
		}
		return false
	case KindBoolean:
		_, ok := v.(bool)
		return ok
	case KindNull:
		return v == nil
	case KindArray:
		_, ok := v.([]any)
		return ok
	case KindObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return false
		}
		return t.Model == nil || t.Model.Validate(obj) == nil
	case KindUnion:
		for _, member := range t.Members {
			if member.matches(v) {
				return true
			}
		}
	}
	return false
}

func enumContains(enum []any, v any) bool {
	got, err := normalize(v)
	if err != nil {
		return false
	}
	for _, e := range enum {
		want, err := normalize(e)
		if err == nil && reflect.DeepEqual(want, got) {
			return true
		}
	}
	return false
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// Instance is a constructed, validated value of a Model.
type Instance struct {
	model  *Model
	values map[string]any // keyed by Field.Name
}

// Model returns the model the instance was built from.
func (i *Instance) Model() *Model { return i.model }

// Get returns the value of the field with the given name or alias. Nested objects are
// *Instance values; integers are int.
func (i *Instance) Get(name string) (any, bool) {
	f, ok := i.model.Field(name)
	if !ok {
		return nil, false
	}
	v, ok := i.values[f.Name]
	return v, ok
}

// Dump returns the instance as plain JSON data keyed by original property names.
func (i *Instance) Dump() map[string]any {
	out := make(map[string]any, len(i.values))
	for _, f := range i.model.Fields {
		if v, ok := i.values[f.Name]; ok {
			out[f.Key()] = dumpValue(v)
		}
	}
	return out
}

func dumpValue(v any) any {
	switch val := v.(type) {
	case *Instance:
		return val.Dump()
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = dumpValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = dumpValue(e)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON serializes the instance with original property names.
func (i *Instance) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.Dump())
}
