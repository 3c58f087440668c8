// Package domain contains the core value types of Sortviz: steps, traces
// and the lifecycle hooks used for observability.
//
// Types here are pure data. They carry no behavior beyond snapshotting and
// trace inspection, so they can cross any boundary (HTTP, Redis, files,
// MCP) without dragging engine internals along.
package domain
