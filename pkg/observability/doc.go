// Package observability collects engine counters through lifecycle hooks.
//
// It is side-car instrumentation: the engine stays unaware of Prometheus,
// and sessions run unchanged when no hooks are attached.
package observability
