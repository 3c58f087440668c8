package domain

import "fmt"

// StepType defines the category of a recorded step.
type StepType string

const (
	StepCompare      StepType = "compare"
	StepSwap         StepType = "swap"
	StepPassComplete StepType = "pass_complete"
)

// Valid reports whether t is one of the known step types.
func (t StepType) Valid() bool {
	switch t {
	case StepCompare, StepSwap, StepPassComplete:
		return true
	}
	return false
}

// Step is one atomic event captured during a sort: a comparison, a swap,
// or the completion of a pass. Steps are immutable once recorded.
type Step struct {
	// Type selects the shape of the step.
	Type StepType `json:"type"`

	// Indices holds the one or two array positions this step refers to.
	// Compare and swap steps carry the adjacent pair [j, j+1]; a
	// pass_complete step carries the single index that just settled into
	// its final position.
	Indices []int `json:"indices"`

	// Array is an independent snapshot of the working array at the moment
	// the step was recorded. Later mutation of the working array never
	// changes it.
	Array []int `json:"array"`

	// Message is a human readable description. Purely presentational.
	Message string `json:"message"`
}

// Snapshot returns an independent copy of arr. Steps must never alias the
// working array, so every Array field goes through here.
func Snapshot(arr []int) []int {
	cp := make([]int, len(arr))
	copy(cp, arr)
	return cp
}

// ParseElements converts loosely typed values (as produced by JSON or YAML
// decoding) into the element type the engine sorts. Any value that is not
// a whole number fails with ErrNotComparable; callers get the error before
// any sorting happens, so no partial trace escapes.
func ParseElements(values []any) ([]int, error) {
	out := make([]int, len(values))
	for i, v := range values {
		switch n := v.(type) {
		case int:
			out[i] = n
		case int64:
			out[i] = int(n)
		case float64:
			if n != float64(int(n)) {
				return nil, fmt.Errorf("element %d (%v): %w", i, v, ErrNotComparable)
			}
			out[i] = int(n)
		default:
			return nil, fmt.Errorf("element %d (%T): %w", i, v, ErrNotComparable)
		}
	}
	return out, nil
}
