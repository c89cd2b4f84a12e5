package fixpoint

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dparse.fixpoint'.
func tracer() tracing.Trace {
	return tracing.Select("dparse.fixpoint")
}

// Attributed is implemented by every term node that participates in
// the fixed-point sweep. Children returns every node this one's
// attributes depend on; Recompute derives this node's attributes from
// its children's *current* attribute values and reports whether
// anything changed.
type Attributed interface {
	ID() uint64
	Initialized() bool
	MarkInitialized()
	Children() []Attributed
	Recompute() bool
}

// ChangeCell tracks progress across a single sweep: whether any node's
// attributes changed, and which node identities have already had
// their one-shot child traversal performed this sweep. All set
// operations on cell.seen are destructive, in the spirit of
// gorgo's iteratable.Set.
type ChangeCell struct {
	changed bool
	seen    *treeset.Set
}

func newChangeCell() *ChangeCell {
	return &ChangeCell{seen: treeset.NewWith(utils.UInt64Comparator)}
}

// updateChildBasedAttributes implements spec §4.3's two-phase update:
// a one-shot phase, run at most once per node per sweep, that recurses
// into children so every reachable node is touched; and an
// all-iterations phase, run unconditionally, that recomputes this
// node's attributes from its children's current values.
func updateChildBasedAttributes(n Attributed, cell *ChangeCell) {
	if !cell.seen.Contains(n.ID()) {
		cell.seen.Add(n.ID())
		for _, child := range n.Children() {
			updateChildBasedAttributes(child, cell)
		}
		n.MarkInitialized()
	}
	if n.Recompute() {
		cell.changed = true
	}
}

// Init drives sweeps over the graph reachable from root until a full
// sweep leaves every attribute unchanged. It is a no-op if root has
// already converged from a prior call — attributes on an already
// converged, immutable graph cannot change again, so repeat callers
// pay nothing beyond the initial check.
func Init(root Attributed) {
	if root.Initialized() {
		return
	}
	sweeps := 0
	for {
		cell := newChangeCell()
		updateChildBasedAttributes(root, cell)
		sweeps++
		if !cell.changed {
			break
		}
	}
	tracer().Debugf("fixpoint converged for root=%d after %d sweep(s)", root.ID(), sweeps)
}
