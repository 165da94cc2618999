// Package metrics defines the records and sink interfaces the planner
// emits. Concrete Prometheus and InfluxDB adapters live under
// infra/metrics so the core stays free of exporter dependencies.
package metrics
