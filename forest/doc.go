/*
Package forest implements the graph-inspection surface spec §6
describes: a traversal that yields, for every term reachable from a
root, a record of its identity, its variant label, and the identities
of its children.

The name and shape are borrowed from gorgo's lr/sppf ("Shared Packed
Parse Forest"): a packed representation letting an ambiguous grammar's
many parse trees share common structure. Here the "forest" being
walked is the derivative term graph itself rather than a set of
completed parse trees, but the underlying concern — presenting a
possibly-cyclic, sharing-heavy graph as a flat, inspectable structure —
is the same one lr/sppf solves for Earley/GLR parse results.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package forest
