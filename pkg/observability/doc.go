// Package observability provides Prometheus instrumentation for sort runs.
//
// This is the "watching" side of Sortviz: nothing here influences a trace,
// it only observes completed runs.
package observability
