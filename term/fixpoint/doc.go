/*
Package fixpoint implements the bottom-up, monotone fixed-point sweep
used to compute a term's empty/nullable/parseNull attributes over a
possibly cyclic term graph.

This package is the
descendant of gorgo's lr/iteratable idea (documented there, not
present as source in the retrieved copy of that repository): a
destructive, once-per-sweep visited set driving a worklist walk. Here
the walk is specialized to one job — recompute attributes until a full
sweep changes nothing — rather than iteratable's general-purpose
closure/goto set algebra.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package fixpoint
