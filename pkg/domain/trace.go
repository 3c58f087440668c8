package domain

// Trace is the ordered sequence of steps recorded during one sort run.
// Insertion order is chronological order. A trace is append-only while the
// engine runs and immutable once returned.
type Trace []Step

// Final returns a copy of the array snapshot of the last step, which for a
// completed run is the sorted array. Returns nil for an empty trace (the
// input had fewer than two elements, so it was already sorted).
func (t Trace) Final() []int {
	if len(t) == 0 {
		return nil
	}
	return Snapshot(t[len(t)-1].Array)
}

// Count returns how many steps of the given type the trace contains.
func (t Trace) Count(typ StepType) int {
	n := 0
	for _, s := range t {
		if s.Type == typ {
			n++
		}
	}
	return n
}

// Passes returns the number of completed passes in the trace.
func (t Trace) Passes() int {
	return t.Count(StepPassComplete)
}
