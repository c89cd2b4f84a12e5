/*
Package registry implements identity allocation and a Recursion body
side-table, adapted from gorgo's runtime symbol-table/scope machinery.

Where a symbol table maps names to declarations within nested lexical
scopes, this package maps small integer identities to two different
kinds of payload used by package term: the identity every constructed
term needs (so that structurally-equal siblings never collapse into
the same object), and the body a Recursion term is bound to after
construction. Storing a Recursion's body behind an integer key rather
than a raw self-referential pointer gives the term graph an explicit,
single break-point for the cycles Recursion introduces.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package registry
