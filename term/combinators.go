package term

import (
	"fmt"

	"github.com/halvorsen-lang/dparse/forest"
	"github.com/halvorsen-lang/dparse/term/hashset"
)

// Alt constructs the union of children: the language recognizing any
// string recognized by at least one of them. children is treated as a
// set — order is not part of the term's identity or its behavior.
func Alt[T comparable, A any](children ...*Node[T, A]) (*Node[T, A], error) {
	for i, c := range children {
		if c == nil {
			return nil, fmt.Errorf("%w: alt child %d is nil", ErrTypeMismatch, i)
		}
	}
	kids := append([]*Node[T, A]{}, children...)

	n := newDynamicNode[T, A]()
	n.ref = &ref{
		id:    idAlloc.Next().Uint64(),
		label: forest.LabelUnion,
		childrenFn: func() []*ref {
			refs := make([]*ref, len(kids))
			for i, k := range kids {
				refs[i] = k.ref
			}
			return refs
		},
		recomputeFn: func() bool { return recomputeAlt(n, kids) },
	}
	n.deriveFn = func(t T) (*Node[T, A], error) { return deriveAlt(kids, t) }
	return n, nil
}

func recomputeAlt[T comparable, A any](n *Node[T, A], kids []*Node[T, A]) bool {
	allEmpty := true
	anyNullable := false
	pn := hashset.New[A]()
	for _, k := range kids {
		if !k.empty {
			allEmpty = false
		}
		if k.nullable {
			anyNullable = true
		}
		pn = pn.Union(k.parseNull)
	}
	nullable := !allEmpty && anyNullable
	changed := n.empty != allEmpty || n.nullable != nullable || !n.parseNull.Equal(pn)
	n.empty, n.nullable, n.parseNull = allEmpty, nullable, pn
	return changed
}

// deriveAlt implements spec §4.1's Alt derivative, including its
// compaction: children already known empty are dropped before being
// derived at all, a singleton result collapses to its lone element,
// and an all-empty result collapses to Empty.
func deriveAlt[T comparable, A any](kids []*Node[T, A], t T) (*Node[T, A], error) {
	var live []*Node[T, A]
	seen := make(map[uint64]bool)
	for _, k := range kids {
		empty, err := k.IsEmpty()
		if err != nil {
			return nil, err
		}
		if empty {
			continue
		}
		d, err := k.Derive(t)
		if err != nil {
			return nil, err
		}
		if seen[d.ID()] {
			continue
		}
		seen[d.ID()] = true
		live = append(live, d)
	}
	switch len(live) {
	case 0:
		return Empty[T, A](), nil
	case 1:
		return live[0], nil
	default:
		return Alt(live...)
	}
}

// Con constructs the concatenation of left and right: the language of
// strings splitting into a left part recognized by left followed by a
// right part recognized by right. Its value type is the pair of
// left's and right's values.
func Con[T comparable, A, B any](left *Node[T, A], right *Node[T, B]) (*Node[T, Pair[A, B]], error) {
	if left == nil || right == nil {
		return nil, fmt.Errorf("%w: con requires a non-nil left and right", ErrTypeMismatch)
	}
	n := newDynamicNode[T, Pair[A, B]]()
	n.ref = &ref{
		id:          idAlloc.Next().Uint64(),
		label:       forest.LabelConcatenation,
		childrenFn:  func() []*ref { return []*ref{left.ref, right.ref} },
		recomputeFn: func() bool { return recomputeCon(n, left, right) },
	}
	n.deriveFn = func(t T) (*Node[T, Pair[A, B]], error) { return deriveCon(left, right, t) }
	return n, nil
}

func recomputeCon[T comparable, A, B any](n *Node[T, Pair[A, B]], left *Node[T, A], right *Node[T, B]) bool {
	empty := left.empty || right.empty
	nullable := !empty && left.nullable && right.nullable
	pn := hashset.New[Pair[A, B]]()
	for _, a := range left.parseNull.Values() {
		for _, b := range right.parseNull.Values() {
			pn.Add(Pair[A, B]{First: a, Second: b})
		}
	}
	changed := n.empty != empty || n.nullable != nullable || !n.parseNull.Equal(pn)
	n.empty, n.nullable, n.parseNull = empty, nullable, pn
	return changed
}

// deriveCon implements spec §4.1's Con derivative precisely, including
// every compaction case in §4.5: eliding the left disjunct when it
// derives to Empty, eliding the epsilon-bridge to the right when left
// is not nullable, and collapsing to Empty when both sides vanish.
func deriveCon[T comparable, A, B any](left *Node[T, A], right *Node[T, B], t T) (*Node[T, Pair[A, B]], error) {
	ld, err := left.Derive(t)
	if err != nil {
		return nil, err
	}
	ldPending := isPending(ld)
	var ldEmpty bool
	if !ldPending {
		ldEmpty, err = ld.IsEmpty()
		if err != nil {
			return nil, err
		}
	}

	var first *Node[T, Pair[A, B]]
	if !ldPending && ldEmpty {
		first = Empty[T, Pair[A, B]]()
	} else {
		first, err = Con(ld, right)
		if err != nil {
			return nil, err
		}
	}

	lNullable, err := left.IsNullable()
	if err != nil {
		return nil, err
	}
	if !lNullable {
		return first, nil
	}

	lParse, err := left.ParseNull()
	if err != nil {
		return nil, err
	}
	nullableEps := Epsilon[T, A](lParse.Values()...)

	rd, err := right.Derive(t)
	if err != nil {
		return nil, err
	}
	rdPending := isPending(rd)
	var rdEmpty bool
	if !rdPending {
		rdEmpty, err = rd.IsEmpty()
		if err != nil {
			return nil, err
		}
	}

	switch {
	case !ldPending && !rdPending && ldEmpty && rdEmpty:
		return Empty[T, Pair[A, B]](), nil
	case !ldPending && ldEmpty:
		return Con(nullableEps, rd)
	default:
		bridge, err := Con(nullableEps, rd)
		if err != nil {
			return nil, err
		}
		return Alt(first, bridge)
	}
}

// Red constructs a term that recognizes exactly what child recognizes
// but transforms every value with f. Its value type is f's result
// type.
func Red[T comparable, A, B any](child *Node[T, A], f func(A) B) (*Node[T, B], error) {
	if child == nil || f == nil {
		return nil, fmt.Errorf("%w: red requires a non-nil child and function", ErrTypeMismatch)
	}
	n := newDynamicNode[T, B]()
	n.ref = &ref{
		id:          idAlloc.Next().Uint64(),
		label:       forest.LabelReductionOp,
		childrenFn:  func() []*ref { return []*ref{child.ref} },
		recomputeFn: func() bool { return recomputeRed(n, child, f) },
	}
	n.deriveFn = func(t T) (*Node[T, B], error) { return deriveRed(child, f, t) }
	return n, nil
}

func recomputeRed[T comparable, A, B any](n *Node[T, B], child *Node[T, A], f func(A) B) bool {
	pn := hashset.New[B]()
	for _, a := range child.parseNull.Values() {
		pn.Add(f(a))
	}
	empty := child.empty
	nullable := child.nullable
	changed := n.empty != empty || n.nullable != nullable || !n.parseNull.Equal(pn)
	n.empty, n.nullable, n.parseNull = empty, nullable, pn
	return changed
}

func deriveRed[T comparable, A, B any](child *Node[T, A], f func(A) B, t T) (*Node[T, B], error) {
	pd, err := child.Derive(t)
	if err != nil {
		return nil, err
	}
	if !isPending(pd) {
		pdEmpty, err := pd.IsEmpty()
		if err != nil {
			return nil, err
		}
		if pdEmpty {
			return Empty[T, B](), nil
		}
	}
	return Red(pd, f)
}

// Rep constructs the Kleene star of child: zero or more repetitions of
// whatever child recognizes, with values collected into a sequence in
// match order. Rep's attributes are static (spec §3): it is always
// non-empty and always nullable, regardless of child, since zero
// repetitions is always a valid parse.
func Rep[T comparable, A any](child *Node[T, A]) (*Node[T, []A], error) {
	if child == nil {
		return nil, fmt.Errorf("%w: rep requires a non-nil child", ErrTypeMismatch)
	}
	n := &Node[T, []A]{
		empty:     false,
		nullable:  true,
		parseNull: hashset.Of([]A{}),
	}
	n.ref = &ref{
		id:         idAlloc.Next().Uint64(),
		label:      forest.LabelKleene,
		childrenFn: func() []*ref { return []*ref{child.ref} },
		// recomputeFn intentionally left nil: Rep's attributes never
		// change once constructed (spec §4.3's "no update" variants).
	}
	n.deriveFn = func(t T) (*Node[T, []A], error) {
		pd, err := child.Derive(t)
		if err != nil {
			return nil, err
		}
		tail, err := Con(pd, n)
		if err != nil {
			return nil, err
		}
		return Red(tail, prepend[A])
	}
	return n, nil
}

func prepend[A any](p Pair[A, []A]) []A {
	out := make([]A, 0, len(p.Second)+1)
	out = append(out, p.First)
	out = append(out, p.Second...)
	return out
}
