package domain

import "context"

// LifecycleHooks defines callbacks for engine observability.
// Hooks fire synchronously as steps are recorded, in trace order. They
// receive the already-snapshotted step, so holding on to it is safe.
// Hooks must not assume they can influence the sort; the trace is the
// single source of truth.
type LifecycleHooks struct {
	OnCompare      func(context.Context, Step)
	OnSwap         func(context.Context, Step)
	OnPassComplete func(context.Context, Step)
}

// Merge returns hooks that invoke h and then other for each event.
// Nil callbacks on either side are skipped.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnCompare:      chain(h.OnCompare, other.OnCompare),
		OnSwap:         chain(h.OnSwap, other.OnSwap),
		OnPassComplete: chain(h.OnPassComplete, other.OnPassComplete),
	}
}

func chain(a, b func(context.Context, Step)) func(context.Context, Step) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, s Step) {
		a(ctx, s)
		b(ctx, s)
	}
}
