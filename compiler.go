package toolcore

import (
	"errors"
	"fmt"
	"strings"
)

// Compiler turns SchemaNodes into native types, models and parameter lists. It holds only
// options: every call compiles from scratch and nothing is cached between calls.
type Compiler struct {
	opts compileOptions
}

// NewCompiler creates a Compiler with the given options.
func NewCompiler(opts ...CompileOption) *Compiler {
	return &Compiler{opts: newCompileOptions(opts)}
}

// CompileType compiles node into its native type. Object nodes with properties become
// models named by their title (or "Model" when untitled).
func (c *Compiler) CompileType(node *SchemaNode) (Type, error) {
	return c.compileNode(node, "Model", "#")
}

// CompileModel compiles a named top-level object schema. The node must carry a title.
func (c *Compiler) CompileModel(node *SchemaNode) (*Model, error) {
	if node == nil {
		return nil, errors.New("compile model: schema must not be nil")
	}
	if node.Title == "" {
		return nil, ErrMissingTitle
	}
	return c.compileModel(node, node.Title, "#")
}

func (c *Compiler) compileNode(node *SchemaNode, hint, path string) (Type, error) {
	if node == nil {
		return AnyType, nil
	}
	t, err := c.compileShape(node, hint, path)
	if err != nil {
		return Type{}, err
	}
	if len(node.Enum) > 0 {
		t.Enum = node.Enum
	}
	return t, nil
}

func (c *Compiler) compileShape(node *SchemaNode, hint, path string) (Type, error) {
	if len(node.OneOf) > 0 {
		return c.compileUnion(node.OneOf, hint, path+"/oneOf")
	}
	if len(node.AnyOf) > 0 {
		return c.compileUnion(node.AnyOf, hint, path+"/anyOf")
	}
	if len(node.Types) > 0 {
		members := make([]Type, 0, len(node.Types))
		for _, name := range node.Types {
			t, err := c.compileTyped(node, name, hint, path)
			if err != nil {
				return Type{}, err
			}
			members = append(members, t)
		}
		return UnionOf(members...), nil
	}
	return c.compileTyped(node, node.Type, hint, path)
}

func (c *Compiler) compileTyped(node *SchemaNode, typeName, hint, path string) (Type, error) {
	switch {
	case typeName == "array" || (typeName == "" && node.Items != nil && node.Properties == nil):
		if node.Items == nil {
			return ArrayOf(AnyType), nil
		}
		elem, err := c.compileNode(node.Items, hint+"Item", path+"/items")
		if err != nil {
			return Type{}, err
		}
		return ArrayOf(elem), nil
	case typeName == "object" || (typeName == "" && node.Properties != nil):
		if node.Properties == nil {
			return ObjectOf(nil), nil
		}
		name := node.Title
		if name == "" {
			name = hint
		}
		m, err := c.compileModel(node, name, path)
		if err != nil {
			return Type{}, err
		}
		return ObjectOf(m), nil
	case typeName == "":
		c.opts.logger.Debug("schema node has no type, using string", "path", path)
		return StringType, nil
	}
	t, err := MapPrimitive(typeName)
	if err != nil {
		var unsupported *UnsupportedSchemaTypeError
		if errors.As(err, &unsupported) {
			unsupported.Path = path
		}
		return Type{}, err
	}
	return t, nil
}

func (c *Compiler) compileUnion(nodes []*SchemaNode, hint, path string) (Type, error) {
	members := make([]Type, 0, len(nodes))
	for i, n := range nodes {
		t, err := c.compileNode(n, fmt.Sprintf("%sOption%d", hint, i+1), fmt.Sprintf("%s/%d", path, i))
		if err != nil {
			return Type{}, err
		}
		members = append(members, t)
	}
	return UnionOf(members...), nil
}

func (c *Compiler) compileModel(node *SchemaNode, name, path string) (*Model, error) {
	fields, err := c.compileFields(node, path)
	if err != nil {
		return nil, err
	}
	m := &Model{
		Name:        name,
		Description: node.Description,
		Fields:      fields,
		strict:      c.opts.strict,
	}
	if err := m.resolve(); err != nil {
		return nil, err
	}
	return m, nil
}

// compileFields compiles the direct properties of node in document order. Whether a
// field is required depends only on node.Required, never on the property's own schema.
func (c *Compiler) compileFields(node *SchemaNode, path string) ([]Field, error) {
	if node.Properties == nil {
		return nil, nil
	}
	required := node.requiredSet()
	taken := make(map[string]bool, node.Properties.Len())
	for pair := node.Properties.Oldest(); pair != nil; pair = pair.Next() {
		taken[pair.Key] = true
	}
	fields := make([]Field, 0, node.Properties.Len())
	for pair := node.Properties.Oldest(); pair != nil; pair = pair.Next() {
		key, prop := pair.Key, pair.Value
		t, err := c.compileNode(prop, modelName(key), path+"/properties/"+key)
		if err != nil {
			return nil, err
		}
		f := Field{
			Name:     key,
			Type:     t,
			Required: required[key],
			Default:  NoDefault,
		}
		if name, remapped := c.opts.fieldName(key, taken); remapped {
			f.Name, f.Alias = name, key
		}
		if prop != nil {
			f.Title = prop.Title
			f.Description = prop.Description
			f.Examples = prop.Examples
			f.Enum = prop.Enum
			f.FileUploadable = prop.FileUploadable
			f.FileDownloadable = prop.FileDownloadable
			if f.Description == "" {
				f.Description = unionDescription(prop)
			}
			if prop.HasDefault {
				f.Default = prop.Default
			}
		}
		if !f.Required && !f.HasDefault() && !c.opts.skipDefaults {
			f.Default = t.fallback()
			f.fallback = true
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// unionDescription joins the non-empty descriptions of a union node's members.
func unionDescription(node *SchemaNode) string {
	members := node.OneOf
	if len(members) == 0 {
		members = node.AnyOf
	}
	var parts []string
	for _, m := range members {
		if m != nil && m.Description != "" {
			parts = append(parts, m.Description)
		}
	}
	return strings.Join(parts, UnionDescriptionSeparator)
}
