/*
Package hashset implements a generic set for values which need not
satisfy Go's comparable constraint.

Spec §3 requires the semantic value type A to be "equality-comparable
and hashable"; but Con builds pairs and Rep builds sequences, and Go
slices and many struct shapes are not valid map keys. Rather than push
a comparable constraint onto every combinator (which would make Con
and Rep unusable for slice-valued grammars), this package hashes an
arbitrary value into a stable string digest with
github.com/cnf/structhash and buckets values under that digest.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package hashset
