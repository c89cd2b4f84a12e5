package registry

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dparse.registry'.
func tracer() tracing.Trace {
	return tracing.Select("dparse.registry")
}

// ID identifies a term or a recursion slot. IDs are never reused within
// the lifetime of an Allocator.
type ID uint64

// Uint64 returns id as a plain uint64, for consumers (like package
// term's graph-walk facade) that need a primitive identity rather
// than a distinct registry type.
func (id ID) Uint64() uint64 { return uint64(id) }

// ErrAlreadyBound is returned by RecursionSlots.Bind when a slot has
// already received a body.
var ErrAlreadyBound = errors.New("registry: recursion slot already bound")

// Allocator hands out monotonically increasing identities. It never
// reuses a freed slot, mirroring the way gorgo's NewTag always
// constructs a fresh tag rather than recycling one.
//
// The library is single-threaded by contract (see the concurrency
// model documented on the module), so no synchronization is provided
// here; a caller sharing an Allocator across goroutines must
// serialize access itself.
type Allocator struct {
	next uint64
}

// NewAllocator creates an empty identity allocator.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns a fresh, never-before-issued ID.
func (a *Allocator) Next() ID {
	a.next++
	tracer().Debugf("allocated id %d", a.next)
	return ID(a.next)
}

// RecursionSlots is a side table from ID to an arbitrary body value,
// used by package term to store a Recursion's body out-of-line. A
// Recursion node keeps only its ID; the actual body pointer lives
// here, one hop away, instead of embedded directly in the node.
type RecursionSlots struct {
	table map[ID]any
}

// NewRecursionSlots creates an empty slot table.
func NewRecursionSlots() *RecursionSlots {
	return &RecursionSlots{table: make(map[ID]any)}
}

// Bind assigns body to id. It fails if id has already been bound; a
// Recursion's body may be set at most once.
func (s *RecursionSlots) Bind(id ID, body any) error {
	if _, ok := s.table[id]; ok {
		tracer().Debugf("bind %d rejected: already bound", id)
		return ErrAlreadyBound
	}
	s.table[id] = body
	tracer().Debugf("bind %d", id)
	return nil
}

// Lookup returns the body bound to id, if any.
func (s *RecursionSlots) Lookup(id ID) (any, bool) {
	v, ok := s.table[id]
	tracer().Debugf("lookup %d found=%v", id, ok)
	return v, ok
}
