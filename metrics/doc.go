// Package metrics registers the Prometheus instrumentation spec.md §5 and
// SPEC_FULL.md §5 call for: gauges tracking T-Box/A-Box trace sizes and
// worker utilization, and a histogram of batch flush latency. cmd/rdflow
// exposes these on an optional `/metrics` endpoint when --metrics-addr is
// set; nothing in reasoner/ingest/owl2rl depends on this package directly,
// matching spec §1's "logging sinks" and related observability concerns
// being external collaborators, not core behavior.
package metrics
