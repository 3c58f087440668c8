package domain

import "errors"

// ErrNotComparable is returned when an input element cannot be interpreted
// as a sortable number.
var ErrNotComparable = errors.New("element is not comparable")

// ErrTraceNotFound is returned when a trace ID cannot be found in a store.
var ErrTraceNotFound = errors.New("trace not found")
