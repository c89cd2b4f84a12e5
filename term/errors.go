package term

import "errors"

// ErrUnboundRecursion is returned by any attribute or derivative query
// that reaches a Recursion whose body has not yet been bound (spec
// §4.6, §7). The operation is refused before touching any other
// state, so the term graph is never left in a partially-evaluated
// state by an unbound query.
var ErrUnboundRecursion = errors.New("term: recursion body not bound")

// ErrTypeMismatch is returned by a combinator constructor when it is
// handed a nil child or nil function, the closest runtime analogue
// available in Go to spec §7's construction-time type check (Go's
// generics reject a genuine value-type mismatch at compile time
// already).
var ErrTypeMismatch = errors.New("term: type mismatch at construction")
