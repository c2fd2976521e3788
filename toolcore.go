package toolcore

// Compile compiles node into its native type with a one-off Compiler.
func Compile(node *SchemaNode, opts ...CompileOption) (Type, error) {
	return NewCompiler(opts...).CompileType(node)
}

// CompileModel compiles a titled top-level object schema into a Model.
func CompileModel(node *SchemaNode, opts ...CompileOption) (*Model, error) {
	return NewCompiler(opts...).CompileModel(node)
}

// BuildSignature returns the ordered parameter list for node's top-level properties.
func BuildSignature(node *SchemaNode, opts ...CompileOption) ([]Parameter, error) {
	return NewCompiler(opts...).BuildSignature(node)
}
