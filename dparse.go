package dparse

import (
	"github.com/halvorsen-lang/dparse/term"
	"github.com/halvorsen-lang/dparse/term/hashset"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dparse'
func tracer() tracing.Trace {
	return tracing.Select("dparse")
}

// ParseFull derives p across every terminal of input in turn and
// returns the values p assigns to the empty string once input is
// fully consumed. An empty, non-nil result set (rather than an error)
// signals that input is not in p's language.
func ParseFull[T comparable, A any](p *term.Node[T, A], input []T) (*hashset.Set[A], error) {
	cur := p
	for _, t := range input {
		next, err := cur.Derive(t)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur.ParseNull()
}

// Parse returns every (value, remaining-suffix) pair obtainable by
// consuming some prefix of input: the values p assigns to the empty
// prefix, paired with all of input still unconsumed, plus — when
// input is non-empty — everything reachable by consuming its first
// terminal and recursing on the tail with p's derivative.
func Parse[T comparable, A any](p *term.Node[T, A], input []T) (*hashset.Set[term.Pair[A, []T]], error) {
	result := hashset.New[term.Pair[A, []T]]()
	pn, err := p.ParseNull()
	if err != nil {
		return nil, err
	}
	for _, a := range pn.Values() {
		result.Add(term.Pair[A, []T]{First: a, Second: input})
	}
	if len(input) == 0 {
		return result, nil
	}
	d, err := p.Derive(input[0])
	if err != nil {
		return nil, err
	}
	tail, err := Parse(d, input[1:])
	if err != nil {
		return nil, err
	}
	result = result.Union(tail)
	tracer().Debugf("parse step over %v: %d result(s) so far", input[0], result.Len())
	return result, nil
}
