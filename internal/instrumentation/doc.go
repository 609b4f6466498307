// Package instrumentation provides OpenTelemetry metrics for the extraction
// pipeline.
//
// Two exporters are supported: the Prometheus pull exporter (used by the
// serve command's /metrics endpoint) and the stdout exporter (used by
// one-shot extract runs, which dump final counter values on shutdown).
// A disabled provider returns a no-op metrics recorder, so callers never
// need nil checks.
package instrumentation
