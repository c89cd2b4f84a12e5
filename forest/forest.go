package forest

import (
	"sort"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/slices"
)

// tracer traces with key 'dparse.forest'.
func tracer() tracing.Trace {
	return tracing.Select("dparse.forest")
}

// Fixed variant labels, named exactly as spec §6 specifies.
const (
	LabelEmptySet          = "Empty_Set"
	LabelEmptyString       = "Empty_String"
	LabelTerminalParser    = "TerminalParser"
	LabelUnion             = "Union"
	LabelConcatenation     = "Concatenation"
	LabelReductionOp       = "ReductionOperation"
	LabelKleene            = "Kleene"
	LabelRecursiveParser   = "RecursiveParser"
	LabelDerivativeFuture  = "DerivativeFuture"
)

// Walkable is implemented by term nodes so that forest can traverse
// them without importing package term (which would create an import
// cycle, since term already depends on forest for these labels via
// its own graph-walk glue).
type Walkable interface {
	ID() uint64
	Label() string
	Successors() []Walkable
}

// NodeRecord describes one reachable term for external inspection:
// its identity, its variant label, and the identities of its
// children. Textual rendering of identities is left to the consumer,
// per spec §6.
type NodeRecord struct {
	Identity uint64
	Label    string
	Children []uint64
}

// Walk traverses every term reachable from root exactly once
// (identity-keyed, so cyclic Recursion structures terminate) and
// returns one NodeRecord per node. Records are ordered by identity,
// and each record's Children slice is sorted, so that two calls over
// the same graph produce byte-identical output — useful for golden
// tests and for diffing debug dumps, even though the underlying
// term-graph semantics never depend on this order (spec §5).
func Walk(root Walkable) []NodeRecord {
	seen := make(map[uint64]bool)
	var records []NodeRecord

	var visit func(n Walkable)
	visit = func(n Walkable) {
		if seen[n.ID()] {
			return
		}
		seen[n.ID()] = true
		children := n.Successors()
		ids := make([]uint64, len(children))
		for i, c := range children {
			ids[i] = c.ID()
		}
		slices.Sort(ids)
		tracer().Debugf("visit %d (%s) -> %v", n.ID(), n.Label(), ids)
		records = append(records, NodeRecord{
			Identity: n.ID(),
			Label:    n.Label(),
			Children: ids,
		})
		for _, c := range children {
			visit(c)
		}
	}
	visit(root)

	sort.Slice(records, func(i, j int) bool {
		return records[i].Identity < records[j].Identity
	})
	tracer().Debugf("walk from %d collected %d record(s)", root.ID(), len(records))
	return records
}
