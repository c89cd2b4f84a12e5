package term

import (
	"fmt"

	"github.com/halvorsen-lang/dparse/forest"
	"github.com/halvorsen-lang/dparse/registry"
)

// Recursion reserves a term identity before its body exists — the
// only way to build a cyclic term graph (spec §4.6, §9). A freshly
// constructed Recursion's Node is unusable: every operation on it
// fails with ErrUnboundRecursion until Bind supplies the body. The
// body itself is kept in defaultSlots rather than as a direct field
// reachable from the node's ref, per spec §9's side-table option for
// avoiding a raw self-referential pointer.
type Recursion[T comparable, A any] struct {
	node  *Node[T, A]
	id    registry.ID
	bound bool
}

// NewRecursion reserves a slot and returns a Recursion wrapping it.
// Call Node to get the *Node[T, A] to embed in other combinators
// before the body is known, then Bind once it is.
func NewRecursion[T comparable, A any]() *Recursion[T, A] {
	r := &Recursion[T, A]{node: newDynamicNode[T, A](), id: idAlloc.Next()}

	r.node.ref = &ref{
		id:    r.id.Uint64(),
		label: forest.LabelRecursiveParser,
		childrenFn: func() []*ref {
			body := r.body()
			if body == nil {
				return nil
			}
			return []*ref{body.ref}
		},
		recomputeFn: func() bool {
			body := r.body()
			if body == nil {
				return false
			}
			return recomputeDelegate(r.node, body)
		},
		unboundFn: func() error {
			if !r.bound {
				return fmt.Errorf("%w: recursion %d has no bound body", ErrUnboundRecursion, r.id)
			}
			return nil
		},
	}

	// futureMemo breaks the infinite regress a naive left-recursive
	// derivative would fall into: the memo entry for t is created and
	// stored before body.Derive(t) runs, so a reentrant call to
	// r.node.Derive(t) reached through the body's own structure finds
	// the (still unresolved) future here instead of recursing again.
	futureMemo := make(map[T]*Node[T, A])
	r.node.deriveFn = func(t T) (*Node[T, A], error) {
		if f, ok := futureMemo[t]; ok {
			return f, nil
		}
		f := derivativeFuture[T, A](idAlloc.Next().Uint64())
		futureMemo[t] = f
		resolved, err := r.body().Derive(t)
		if err != nil {
			return nil, err
		}
		f.resolved = resolved
		return f, nil
	}
	return r
}

// Node returns the recursion's term.
func (r *Recursion[T, A]) Node() *Node[T, A] {
	return r.node
}

// body resolves the recursion's body through defaultSlots, the one
// hop spec §9's side-table option calls for: nothing in Recursion
// holds a direct pointer to its own body.
func (r *Recursion[T, A]) body() *Node[T, A] {
	v, ok := defaultSlots.Lookup(r.id)
	if !ok {
		return nil
	}
	return v.(*Node[T, A])
}

// Bind supplies the body a Recursion stands for. It may be called
// exactly once.
func (r *Recursion[T, A]) Bind(body *Node[T, A]) error {
	if body == nil {
		return fmt.Errorf("%w: recursion %d bound to a nil body", ErrTypeMismatch, r.id)
	}
	if err := defaultSlots.Bind(r.id, body); err != nil {
		return fmt.Errorf("term: binding recursion %d: %w", r.id, err)
	}
	r.bound = true
	return nil
}

// derivativeFuture builds the placeholder node a Recursion's
// derivative resolves to. Its attributes stay at the dynamic bottom
// and its Initialized status stays false — forcing a resweep on every
// query — until resolved is set by the deriveFn that created it (the
// Recursion's in NewRecursion, or another future's), at which point
// it delegates entirely to resolved (spec §4.6).
//
// A future sits on a cycle of the derivative graph, so deriving it
// can reach its own Derive(next) again before that call returns. Its
// deriveFn therefore uses the same placeholder scheme as a Recursion:
// a new future for next is memoized before resolved.Derive(next) runs.
func derivativeFuture[T comparable, A any](id uint64) *Node[T, A] {
	f := newDynamicNode[T, A]()
	f.ref = &ref{
		id:    id,
		label: forest.LabelDerivativeFuture,
		childrenFn: func() []*ref {
			if f.resolved == nil {
				return nil
			}
			return []*ref{f.resolved.ref}
		},
		recomputeFn: func() bool {
			if f.resolved == nil {
				return false
			}
			return recomputeDelegate(f, f.resolved)
		},
		readyFn: func() bool { return f.resolved != nil },
	}
	futureMemo := make(map[T]*Node[T, A])
	f.deriveFn = func(next T) (*Node[T, A], error) {
		if g, ok := futureMemo[next]; ok {
			return g, nil
		}
		g := derivativeFuture[T, A](idAlloc.Next().Uint64())
		futureMemo[next] = g
		resolved, err := f.resolved.Derive(next)
		if err != nil {
			return nil, err
		}
		g.resolved = resolved
		return g, nil
	}
	return f
}

// isPending reports whether an unresolved DerivativeFuture is
// reachable from n, directly or through structure built on top of it
// (spec §4.6). Compaction rules that would otherwise collapse a
// derivative to Empty, or query its emptiness at all, must not fire
// on such a node: its true attributes are not yet knowable, and
// fixpoint.Init latches its answer permanently on first visit, so
// asking too early bakes in a wrong answer resolution can no longer
// correct.
func isPending[T comparable, A any](n *Node[T, A]) bool {
	return pendingReachable(n.ref)
}

func recomputeDelegate[T comparable, A any](n, delegate *Node[T, A]) bool {
	changed := n.empty != delegate.empty || n.nullable != delegate.nullable || !n.parseNull.Equal(delegate.parseNull)
	n.empty, n.nullable, n.parseNull = delegate.empty, delegate.nullable, delegate.parseNull
	return changed
}
