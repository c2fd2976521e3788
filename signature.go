package toolcore

// Parameter is one entry of a synthesized callable signature.
type Parameter struct {
	Name        string // identifier-safe name
	Alias       string // original property name when Name was remapped
	Type        Type
	Required    bool
	Default     any // NoDefault for parameters without a default
	Description string
}

// HasDefault reports whether the parameter carries a default.
func (p Parameter) HasDefault() bool { return !IsNoDefault(p.Default) }

// BuildSignature turns the top-level properties of node into an ordered parameter list:
// parameters without a default come first, then the defaulted ones, each group in
// property order. Required parameters never carry a default, so without
// WithSkipDefaults the split is exactly required versus optional.
func (c *Compiler) BuildSignature(node *SchemaNode) ([]Parameter, error) {
	if node == nil {
		return nil, nil
	}
	fields, err := c.compileFields(node, "#")
	if err != nil {
		return nil, err
	}
	head := make([]Parameter, 0, len(fields))
	var tail []Parameter
	for _, f := range fields {
		p := Parameter{
			Name:        f.Name,
			Alias:       f.Alias,
			Type:        f.Type,
			Required:    f.Required,
			Default:     NoDefault,
			Description: f.Description,
		}
		if !f.Required {
			p.Default = f.Default
		}
		if p.HasDefault() {
			tail = append(tail, p)
		} else {
			head = append(head, p)
		}
	}
	return append(head, tail...), nil
}
