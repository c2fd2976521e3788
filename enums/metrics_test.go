package enums_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skosovsky/toolcore/enums"
	"github.com/skosovsky/toolcore/metrics"
	toolcoretest "github.com/skosovsky/toolcore/testutil"
)

func TestCache_Metrics(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	stub := (&toolcoretest.FetchStub{}).Set(enums.NamespaceApp, "GITHUB", map[string]any{"name": "github", "is_local": false})
	c := toolcoretest.NewTestCache(t, stub, enums.WithMetrics(m))

	stale := map[string]any{"name": "github"}
	writeEntry(t, c, enums.NamespaceApp, "GITHUB", stale)
	_, err := c.Load(context.Background(), enums.NamespaceApp, "GITHUB")
	require.NoError(t, err)
	_, err = c.Load(context.Background(), enums.NamespaceApp, "GITHUB")
	require.NoError(t, err)
	_, err = c.Load(context.Background(), enums.NamespaceApp, "SLACK")
	require.Error(t, err)
	_, err = c.All(context.Background(), enums.NamespaceTag)
	require.NoError(t, err)

	assert.InDelta(t, 1, testutil.ToFloat64(m.EnumResolutions.WithLabelValues("app", "remote")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.EnumStaleEntries.WithLabelValues("app")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.EnumMisses.WithLabelValues("app")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CatalogueRefreshes.WithLabelValues("tag", "ok")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.FetchDuration))
}
