/*
Package sortviz is an instrumented sorting engine designed for step-by-step
visualization and teaching tools.

It runs a classic bubble sort (with early exit) over a copy of the input
and records an ordered trace of every comparison, swap and pass completion.
Each step carries an independent snapshot of the working array, so the
trace can be replayed at any pace, anywhere: in a terminal, over an HTTP
stream, or by an AI agent through MCP.

# Concept

Sortviz separates the computation (the sort) from the presentation (the
replay). The engine produces a fully materialized trace and then steps out
of the way; frontends consume the trace without ever touching engine
internals. This keeps the core pure and deterministic: same input, same
trace, every time.

# Key Features

  - Deterministic Execution: the trace for a given input is always reproducible.
  - Independent Snapshots: every step owns a value copy of the array; later
    mutation never rewrites history.
  - Pluggable Frontends: CLI replay, HTTP/SSE streaming, Redis persistence,
    Prometheus metrics, MCP tooling.
  - Caller Safety: the input slice is never mutated.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/sortviz/sortviz"
	)

	func main() {
		eng := sortviz.New()

		trace, err := eng.Sort(context.Background(), []int{64, 34, 25, 12, 22, 11, 90})
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Number of steps: %d\n", len(trace))
		fmt.Printf("Sorted: %v\n", trace.Final())
	}
*/
package sortviz
