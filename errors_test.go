package toolcore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientError(t *testing.T) {
	tests := []struct {
		name   string
		err    *ClientError
		expect string
	}{
		{"with reason", &ClientError{Reason: "bad enum"}, "invalid tool input: bad enum"},
		{"empty reason", &ClientError{Reason: ""}, "invalid tool input: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.err.Error())
		})
	}
}

func TestUnsupportedSchemaTypeError(t *testing.T) {
	bare := &UnsupportedSchemaTypeError{Type: "date"}
	assert.Equal(t, `unsupported schema type "date"`, bare.Error())
	located := &UnsupportedSchemaTypeError{Type: "date", Path: "#/properties/when"}
	assert.Equal(t, `unsupported schema type "date" at #/properties/when`, located.Error())
	assert.ErrorIs(t, located, ErrUnsupportedSchemaType)
}

func TestErrorsIs_As(t *testing.T) {
	wrapped := fmt.Errorf("compile tool: %w", &ClientError{Reason: "x", Err: ErrValidation})
	assert.True(t, IsClientError(wrapped))
	assert.ErrorIs(t, wrapped, ErrValidation)
	assert.False(t, IsClientError(errors.New("plain")))
	assert.False(t, IsClientError(nil))
}

func TestMapPrimitive(t *testing.T) {
	tests := []struct {
		name string
		want Type
	}{
		{"string", StringType},
		{"integer", IntegerType},
		{"number", NumberType},
		{"boolean", BooleanType},
		{"null", NullType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapPrimitive(tt.name)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	for _, bad := range []string{"object", "array", "date", ""} {
		_, err := MapPrimitive(bad)
		var unsupported *UnsupportedSchemaTypeError
		if assert.ErrorAs(t, err, &unsupported, bad) {
			assert.Equal(t, bad, unsupported.Type)
		}
	}
}
