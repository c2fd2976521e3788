package toolcore

import "log/slog"

// UnionDescriptionSeparator joins union member descriptions when the union node has none.
const UnionDescriptionSeparator = " | "

// compileOptions hold optional compiler settings (skip defaults, strict, reserved words).
type compileOptions struct {
	skipDefaults bool
	strict       bool
	reserved     map[string]struct{}
	logger       *slog.Logger
}

// CompileOption configures a Compiler (e.g. WithSkipDefaults, WithStrict).
type CompileOption func(*compileOptions)

// WithSkipDefaults disables fallback defaults for optional fields without an explicit
// schema default. Such fields keep NoDefault; they stay optional for validation and sort
// with the no-default group in signatures.
func WithSkipDefaults() CompileOption {
	return func(o *compileOptions) {
		o.skipDefaults = true
	}
}

// WithStrict sets additionalProperties: false for every object of the compiled model's
// validation schema, so unknown keys are rejected instead of ignored.
func WithStrict() CompileOption {
	return func(o *compileOptions) {
		o.strict = true
	}
}

// WithReservedWords adds identifiers that property names must not collide with, on top of
// the Go keywords. Colliding properties are renamed and keep their original name as alias.
func WithReservedWords(words ...string) CompileOption {
	return func(o *compileOptions) {
		if o.reserved == nil {
			o.reserved = make(map[string]struct{}, len(words))
		}
		for _, w := range words {
			o.reserved[w] = struct{}{}
		}
	}
}

// WithLogger sets the logger for non-fatal compile fallbacks. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) CompileOption {
	return func(o *compileOptions) {
		o.logger = logger
	}
}

func newCompileOptions(opts []CompileOption) compileOptions {
	var o compileOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}
