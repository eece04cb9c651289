// Package metrics defines interfaces for collecting balance metrics.
// Sinks like PromSink and InfluxSink record events such as finished
// distributions or optimizer passes and can be combined with
// NewMultiSink. The factory helpers return a MultiSink automatically
// when multiple sinks are configured.
package metrics
