package metrics

import (
	"net/http/httptest"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegistry_GaugesRecordValues(t *testing.T) {
	r := New()
	r.TBoxSize.Set(42)
	r.ABoxSize.Set(1000)
	r.PartitionsBypassed.Set(3)
	r.WorkerUtilization.WithLabelValues("0").Set(0.75)

	require.Equal(t, float64(42), testutil.ToFloat64(r.TBoxSize))
	require.Equal(t, float64(1000), testutil.ToFloat64(r.ABoxSize))
	require.Equal(t, float64(3), testutil.ToFloat64(r.PartitionsBypassed))
	require.Equal(t, float64(0.75), testutil.ToFloat64(r.WorkerUtilization.WithLabelValues("0")))
}

func TestRegistry_FlushLatencyObserves(t *testing.T) {
	r := New()
	r.FlushLatency.Observe(0.25)

	var m dto.Metric
	require.NoError(t, r.FlushLatency.Write(&m))
	require.Equal(t, uint64(1), m.GetHistogram().GetSampleCount())
}

func TestRegistry_HandlerServesMetrics(t *testing.T) {
	r := New()
	r.TBoxSize.Set(7)
	require.NotNil(t, r.Handler())

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Contains(t, rec.Body.String(), "rdflow_tbox_trace_size 7")
}
