package term

import (
	"github.com/halvorsen-lang/dparse/forest"
	"github.com/halvorsen-lang/dparse/term/fixpoint"
)

// ref is a non-generic facade over a *Node[T, A], letting the
// (necessarily non-generic) fixpoint and forest packages walk and
// update a term graph without ever seeing the value-type parameters.
// Every Node owns exactly one ref, constructed alongside it.
type ref struct {
	id          uint64
	label       string
	initialized bool

	// childrenFn is re-evaluated on every call rather than cached,
	// since a Recursion's children depend on whether it has been
	// bound yet.
	childrenFn func() []*ref

	// recomputeFn is nil for statically-attributed variants (Empty,
	// Epsilon, Terminal, Rep); Recompute is then a no-op, matching
	// spec §4.3's "no update; attributes fixed".
	recomputeFn func() bool

	// unboundFn is non-nil only for a Recursion ref; it reports
	// ErrUnboundRecursion until the recursion has been bound.
	unboundFn func() error

	// readyFn overrides Initialized for a DerivativeFuture ref: it
	// must keep reporting false, forcing a resweep on every query,
	// until the future has resolved its delegate (see recursion.go).
	// Left nil everywhere else.
	readyFn func() bool
}

func (r *ref) ID() uint64    { return r.id }
func (r *ref) Label() string { return r.label }

func (r *ref) Initialized() bool {
	if r.readyFn != nil && !r.readyFn() {
		return false
	}
	return r.initialized
}

func (r *ref) MarkInitialized() { r.initialized = true }

func (r *ref) Recompute() bool {
	if r.recomputeFn == nil {
		return false
	}
	return r.recomputeFn()
}

func (r *ref) Children() []fixpoint.Attributed {
	kids := r.childrenFn()
	out := make([]fixpoint.Attributed, len(kids))
	for i, k := range kids {
		out[i] = k
	}
	return out
}

func (r *ref) Successors() []forest.Walkable {
	kids := r.childrenFn()
	out := make([]forest.Walkable, len(kids))
	for i, k := range kids {
		out[i] = k
	}
	return out
}

// pendingReachable reports whether an unresolved DerivativeFuture is
// reachable from r. Combinators consult this before querying the
// emptiness of a freshly derived node: a future's true attributes are
// unknowable until it resolves, and fixpoint.Init latches Initialized
// permanently on first visit, so querying too early would freeze in a
// wrong answer that resolution can no longer correct. A visited set
// keeps this finite over the same cycles checkReady guards against.
func pendingReachable(r *ref) bool {
	return pendingReachableSeen(r, make(map[uint64]bool))
}

func pendingReachableSeen(r *ref, seen map[uint64]bool) bool {
	if seen[r.id] {
		return false
	}
	seen[r.id] = true
	if r.readyFn != nil && !r.readyFn() {
		return true
	}
	for _, c := range r.childrenFn() {
		if pendingReachableSeen(c, seen) {
			return true
		}
	}
	return false
}

// checkReady walks the term graph reachable from r looking for an
// unbound Recursion, failing deterministically before any derivative
// or attribute computation is attempted (spec §4.6, §7). A visited
// set keeps this finite over cyclic graphs.
func checkReady(r *ref) error {
	return checkReadySeen(r, make(map[uint64]bool))
}

func checkReadySeen(r *ref, seen map[uint64]bool) error {
	if seen[r.id] {
		return nil
	}
	seen[r.id] = true
	if r.unboundFn != nil {
		if err := r.unboundFn(); err != nil {
			return err
		}
	}
	for _, c := range r.childrenFn() {
		if err := checkReadySeen(c, seen); err != nil {
			return err
		}
	}
	return nil
}
