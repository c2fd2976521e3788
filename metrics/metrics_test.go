package metrics_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/skosovsky/toolcore/metrics"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)
	require.NotNil(t, m)

	m.RecordResolution("action", "disk")
	m.RecordResolution("action", "disk")
	m.RecordMiss("app")
	m.RecordStale("action")
	m.RecordRefresh("tag", nil)
	m.RecordRefresh("tag", errors.New("offline"))
	m.ObserveFetch("app", 0.2)
	m.RecordEvent()
	m.RecordHandler(nil)
	m.RecordSkip()

	assert.InDelta(t, 2, testutil.ToFloat64(m.EnumResolutions.WithLabelValues("action", "disk")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.EnumMisses.WithLabelValues("app")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.EnumStaleEntries.WithLabelValues("action")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CatalogueRefreshes.WithLabelValues("tag", "error")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.TriggerEvents), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.TriggerHandlers.WithLabelValues("ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.TriggerSkipped), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.FetchDuration))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Positive(t, count)
}

func TestNilCollector(t *testing.T) {
	var m *metrics.Collector
	assert.NotPanics(t, func() {
		m.RecordResolution("app", "runtime")
		m.RecordMiss("app")
		m.RecordStale("app")
		m.RecordRefresh("app", nil)
		m.ObserveFetch("app", 1)
		m.RecordEvent()
		m.RecordHandler(errors.New("x"))
		m.RecordSkip()
	})
}
