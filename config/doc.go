// Package config parses the CLI surface of spec §6 via alecthomas/kong:
// `tbox_path abox_path expressivity workers batch_size step_count
// [--encode]`, plus the ambient `--metrics-addr` and `--log-level`
// additions SPEC_FULL.md §6 layers on top. It has no dependency on
// reasoner/ingest/metrics — cmd/rdflow is the only package that wires this
// package's output into the rest of the system.
package config
