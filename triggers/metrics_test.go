package triggers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skosovsky/toolcore/metrics"
	"github.com/skosovsky/toolcore/triggers"
)

func TestDispatcher_Metrics(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	d := triggers.New(triggers.WithMetrics(m))
	boom := errors.New("boom")
	d.Register(triggers.Filter{"id": "A"}, func(context.Context, triggers.Event) error { return nil })
	d.Register(triggers.Filter{"id": "B"}, func(context.Context, triggers.Event) error { return nil })
	d.Register(nil, func(context.Context, triggers.Event) error { return boom })

	require.ErrorIs(t, d.Dispatch(context.Background(), event(map[string]any{"id": "A"})), boom)

	assert.InDelta(t, 1, testutil.ToFloat64(m.TriggerEvents), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.TriggerSkipped), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.TriggerHandlers.WithLabelValues("ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.TriggerHandlers.WithLabelValues("error")), 0)
}
