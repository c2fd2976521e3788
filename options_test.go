package toolcore

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompileOptions_Defaults(t *testing.T) {
	o := newCompileOptions(nil)
	assert.False(t, o.skipDefaults)
	assert.False(t, o.strict)
	assert.Empty(t, o.reserved)
	assert.Same(t, slog.Default(), o.logger)
}

func TestWithReservedWords(t *testing.T) {
	o := newCompileOptions([]CompileOption{WithReservedWords("self"), WithReservedWords("cls", "self")})
	assert.Len(t, o.reserved, 2)
	assert.True(t, o.isReserved("cls"))
	assert.True(t, o.isReserved("func"))
	assert.False(t, o.isReserved("name"))

	m, err := CompileModel(mustParse(t, `{"title":"M","properties":{"self":{"type":"string"}}}`),
		WithReservedWords("self"))
	require.NoError(t, err)
	f, ok := m.Field("self")
	require.True(t, ok)
	assert.Equal(t, "self_", f.Name)
	assert.Equal(t, "self", f.Alias)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := CompileModel(mustParse(t, `{"title":"M","properties":{"x":{}}}`), WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "schema node has no type")
}
