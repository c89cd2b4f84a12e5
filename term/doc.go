/*
Package term implements the parser term algebra: the nine variants
(Empty, Epsilon, Terminal, Alt, Con, Red, Rep, Recursion,
DerivativeFuture), Brzozowski's derivative rule for each, the
compaction rewrites that keep derivative graphs bounded, and the
memoized, error-checked query surface (Derive, IsEmpty, IsNullable,
ParseNull) built on top of package fixpoint.

Where gorgo's lr package builds a graph of grammar Items and Symbols
and computes LR closure/goto sets over it, term builds a graph of
Parser terms and computes derivative and attribute sets over it — the
graph-of-small-objects-with-memoized-derived-state shape is the same;
the algorithm sitting on top is Brzozowski derivatives instead of
LR(0)/SLR table construction.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package term

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dparse.term'.
func tracer() tracing.Trace {
	return tracing.Select("dparse.term")
}
