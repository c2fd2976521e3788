package triggers_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skosovsky/toolcore/triggers"
)

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	h := triggers.WithLogging(logger)(func(context.Context, triggers.Event) error { return nil })
	require.NoError(t, h(context.Background(), event(map[string]any{"id": "log_me"})))
	logStr := buf.String()
	assert.Contains(t, logStr, "trigger start")
	assert.Contains(t, logStr, "trigger end")
	assert.Contains(t, logStr, "log_me")
}

func TestWithLogging_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	boom := errors.New("boom")
	h := triggers.WithLogging(logger)(func(context.Context, triggers.Event) error { return boom })
	require.ErrorIs(t, h(context.Background(), event(nil)), boom)
	assert.Contains(t, buf.String(), "trigger error")
}

func TestWithRecovery(t *testing.T) {
	h := triggers.WithRecovery()(func(context.Context, triggers.Event) error { panic("test panic") })
	err := h(context.Background(), event(nil))
	var pe *triggers.PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "test panic", pe.Value)
	assert.Contains(t, err.Error(), "panic")
}

func TestDispatcher_Use(t *testing.T) {
	var order []string
	mw := func(name string) triggers.Middleware {
		return func(next triggers.Handler) triggers.Handler {
			return func(ctx context.Context, ev triggers.Event) error {
				order = append(order, name)
				return next(ctx, ev)
			}
		}
	}
	d := triggers.New()
	d.Use(mw("outer"), mw("inner"))
	d.Use(triggers.WithRecovery())
	d.Register(nil, func(context.Context, triggers.Event) error {
		order = append(order, "handler")
		panic("recovered")
	})

	err := d.Dispatch(context.Background(), event(nil))
	var pe *triggers.PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}
