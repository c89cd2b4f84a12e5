package term

import (
	"github.com/halvorsen-lang/dparse/forest"
	"github.com/halvorsen-lang/dparse/registry"
	"github.com/halvorsen-lang/dparse/term/fixpoint"
	"github.com/halvorsen-lang/dparse/term/hashset"
)

// idAlloc hands out identities for every constructed node, library
// wide. Identity is deliberately independent of structure: two
// structurally-equal terms built from separate constructor calls
// receive distinct identities (spec §3).
var idAlloc = registry.NewAllocator()

// defaultSlots holds every Recursion's body, keyed by its reserved
// identity, so a Recursion node itself never holds a raw
// self-referential pointer (spec §9's "explicit weak edge").
var defaultSlots = registry.NewRecursionSlots()

// Node is a parser term over terminal type T and semantic value type
// A. Every constructor in this package returns a *Node[T, A]; Node
// itself carries the identity, derivative memo, and cached attributes
// spec §3 requires of every term variant.
type Node[T comparable, A any] struct {
	ref *ref

	memo map[T]*Node[T, A]

	// empty starts true, nullable starts false, and parseNull starts
	// empty for every dynamically-attributed variant, matching the
	// monotone lattice spec §4.3 describes; statically-attributed
	// variants (Empty, Epsilon, Terminal, Rep) set these once at
	// construction and never touch them again.
	empty     bool
	nullable  bool
	parseNull *hashset.Set[A]

	deriveFn func(T) (*Node[T, A], error)

	// resolved is set only on a DerivativeFuture node, once the
	// recursive derivative it stands in for has actually been
	// computed. It is nil from construction until then; see
	// recursion.go.
	resolved *Node[T, A]
}

// newDynamicNode allocates a Node whose attributes require the
// fixed-point sweep (Alt, Con, Red, Recursion, DerivativeFuture). Per
// spec §4.3's lattice, empty starts at true and decreases, nullable
// starts at false and increases, and parseNull starts empty and
// grows — the opposite of Go's zero value for empty, which is why it
// is set explicitly here rather than left at its zero value.
func newDynamicNode[T comparable, A any]() *Node[T, A] {
	return &Node[T, A]{
		empty:     true,
		nullable:  false,
		parseNull: hashset.New[A](),
	}
}

// Derive returns the (memoized) derivative of n with respect to t.
// Two calls with equal t always return the identical *Node[T, A]
// (spec §8 invariant 3), which is what keeps cyclic derivative graphs
// finite: repeated derivation of a Recursion's expansion converges
// onto the same cached objects instead of growing forever.
func (n *Node[T, A]) Derive(t T) (*Node[T, A], error) {
	if err := checkReady(n.ref); err != nil {
		return nil, err
	}
	if d, ok := n.memo[t]; ok {
		tracer().Debugf("derive %d: memo hit -> %d", n.ref.id, d.ref.id)
		return d, nil
	}
	d, err := n.deriveFn(t)
	if err != nil {
		return nil, err
	}
	if n.memo == nil {
		n.memo = make(map[T]*Node[T, A])
	}
	n.memo[t] = d
	tracer().Debugf("derive %d: computed -> %d", n.ref.id, d.ref.id)
	return d, nil
}

// IsEmpty reports whether n's language is the empty set. It always
// runs the fixed-point sweep first (spec §4.3's short-circuit rule),
// so it is safe to call before any other query.
func (n *Node[T, A]) IsEmpty() (bool, error) {
	if err := checkReady(n.ref); err != nil {
		return false, err
	}
	tracer().Debugf("triggering fixpoint sweep for %d", n.ref.id)
	fixpoint.Init(n.ref)
	return n.empty, nil
}

// IsNullable reports whether the empty string is in n's language. A
// term whose language is empty is never nullable, even if a stale
// sweep would otherwise suggest so — spec §4.3 calls this out
// explicitly as a correctness guard.
func (n *Node[T, A]) IsNullable() (bool, error) {
	empty, err := n.IsEmpty()
	if err != nil {
		return false, err
	}
	if empty {
		return false, nil
	}
	return n.nullable, nil
}

// ParseNull returns the set of values n assigns to the empty string.
// It is non-empty if and only if IsNullable reports true (spec §3).
func (n *Node[T, A]) ParseNull() (*hashset.Set[A], error) {
	empty, err := n.IsEmpty()
	if err != nil {
		return nil, err
	}
	if empty {
		return hashset.New[A](), nil
	}
	return n.parseNull, nil
}

// ID returns n's identity, stable for the lifetime of the process.
func (n *Node[T, A]) ID() uint64 {
	return n.ref.id
}

// Label returns the variant label spec §6 assigns to n's kind
// (Empty_Set, Empty_String, TerminalParser, Union, Concatenation,
// ReductionOperation, Kleene, RecursiveParser, or DerivativeFuture).
func (n *Node[T, A]) Label() string {
	return n.ref.label
}

// Walkable returns n's graph-walk facade, suitable for forest.Walk.
// The facade is non-generic, since forest cannot depend on the value
// type A.
func (n *Node[T, A]) Walkable() forest.Walkable {
	return n.ref
}
