/*
Package dparse implements parsing by Brzozowski derivatives of
context-free languages.

A grammar is built as a graph of terms in package term — Empty,
Epsilon, Terminal, Alt, Con, Red, Rep, and Recursion — combined the
way combinator libraries usually are, by ordinary function calls
returning further terms. Parsing an input sequence is nothing more
than walking that graph, deriving it one terminal at a time; this
package supplies the two entry points that drive the walk and collect
results: Parse and ParseFull.

Package structure is as follows:

■ term: the term graph itself — construction, derivation, and the
lazily-computed attribute lattice (empty?, nullable?, parseNull) each
term carries.

■ term/fixpoint: the small fixed-point engine term uses to resolve
attributes over cyclic graphs.

■ term/hashset: a content-hashed set, needed because Con and Rep
produce values (pairs, slices) that are not valid Go map keys.

■ forest: a graph-walk facade over a term graph, for diagnostics and
the debug REPL.

■ registry: identity allocation and the recursion side-table that lets
Recursion avoid a raw self-referential pointer.

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dparse
