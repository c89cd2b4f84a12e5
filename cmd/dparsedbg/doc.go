/*
Command dparsedbg is an interactive sandbox for experimenting with
dparse term graphs, in the spirit of TeREx's T.REPL. It builds a small
demo grammar — a comma-separated list of lowercase letters, the
canonical left-recursive example — and lets a user feed it lines of
input, inspecting both full matches and every prefix split.

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dparse.dparsedbg'
func tracer() tracing.Trace {
	return tracing.Select("dparse.dparsedbg")
}
