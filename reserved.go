package toolcore

import (
	"go/token"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// isReserved reports whether name collides with a Go keyword or a configured reserved word.
func (o *compileOptions) isReserved(name string) bool {
	if token.IsKeyword(name) {
		return true
	}
	_, ok := o.reserved[name]
	return ok
}

// fieldName returns the identifier-safe name for property key. A reserved key gets "_"
// appended until it is free in taken; the result is recorded in taken.
func (o *compileOptions) fieldName(key string, taken map[string]bool) (name string, remapped bool) {
	if !o.isReserved(key) {
		taken[key] = true
		return key, false
	}
	name = key + "_"
	for taken[name] || o.isReserved(name) {
		name += "_"
	}
	taken[name] = true
	return name, true
}

// modelName derives a model name from a property key ("billing_address" -> "BillingAddress").
func modelName(key string) string {
	parts := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
	caser := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(caser.String(p))
	}
	if b.Len() == 0 {
		return "Model"
	}
	return b.String()
}
