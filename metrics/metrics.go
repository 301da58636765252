package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the gauges/histogram cmd/rdflow reports a run's sizes
// and flush timings into, registered against its own prometheus.Registry so
// a test or a second Registry in the same process never collides with
// another's metric names.
type Registry struct {
	reg *prometheus.Registry

	TBoxSize          prometheus.Gauge
	ABoxSize          prometheus.Gauge
	PartitionsBypassed prometheus.Gauge
	FlushLatency      prometheus.Histogram
	WorkerUtilization *prometheus.GaugeVec
}

// New constructs a Registry with every metric registered.
func New() *Registry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	r := &Registry{
		reg: reg,
		TBoxSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "rdflow",
			Name:      "tbox_trace_size",
			Help:      "Number of distinct triples in the closed T-Box trace.",
		}),
		ABoxSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "rdflow",
			Name:      "abox_trace_size",
			Help:      "Number of distinct triples in the closed A-Box trace.",
		}),
		PartitionsBypassed: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "rdflow",
			Name:      "owl2rl_partitions_bypassed",
			Help:      "Number of per-IRI OWL 2 RL partitions routed to the generic bypass rule.",
		}),
		FlushLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rdflow",
			Name:      "batch_flush_seconds",
			Help:      "Wall-clock time spent materializing one flushed A-Box batch.",
			Buckets:   prometheus.DefBuckets,
		}),
		WorkerUtilization: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "rdflow",
			Name:      "worker_utilization_ratio",
			Help:      "Fraction of the last scheduling window a worker spent stepping operators (0-1).",
		}, []string{"worker"}),
	}
	return r
}

// Handler returns the HTTP handler to mount at /metrics.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
