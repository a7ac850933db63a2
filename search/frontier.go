package search

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/katalvlaran/blockstack/ostree"
)

// queueOrder selects the priority used by a frontier.
type queueOrder int

const (
	// byCost ranks nodes by (G, state key). Used by UCS.
	byCost queueOrder = iota
	// byEstimate ranks nodes by (F, state key). Used by both A* variants.
	byEstimate
)

// frontierKey is the tree key of one live entry. id is payload and does not
// take part in the comparison.
type frontierKey struct {
	primary int64
	state   string
	id      NodeID
}

func compareKeys(a, b frontierKey) int {
	if c := cmp.Compare(a.primary, b.primary); c != 0 {
		return c
	}

	return strings.Compare(a.state, b.state)
}

// bestKnown is the side-index entry for a state currently in the frontier.
// Both g and h are kept so the previous tree key can be rebuilt exactly.
type bestKnown struct {
	g, h int64
	id   NodeID
}

// frontier is a decrease-key priority queue over arena nodes. It holds at
// most one entry per state: the best one offered so far. The ordered tree
// and the state index always agree on membership and key.
type frontier struct {
	order queueOrder
	arena *arena
	tree  *ostree.Tree[frontierKey]
	index map[string]bestKnown
}

func newFrontier(order queueOrder, a *arena) *frontier {
	return &frontier{
		order: order,
		arena: a,
		tree:  ostree.New(compareKeys),
		index: make(map[string]bestKnown),
	}
}

func (f *frontier) key(state string, g, h int64, id NodeID) frontierKey {
	primary := g
	if f.order == byEstimate {
		primary = g + h
	}

	return frontierKey{primary: primary, state: state, id: id}
}

// improves reports whether a node with (g, h) beats the recorded entry.
func (f *frontier) improves(g, h int64, old bestKnown) bool {
	if f.order == byCost {
		return g < old.g
	}
	nf, of := g+h, old.g+old.h

	return nf < of || (nf == of && g < old.g)
}

// Insert offers node id to the frontier. An unseen state is added; a state
// already present is replaced only if the new node is strictly better,
// otherwise the call is a no-op. accepted reports whether id is now live.
func (f *frontier) Insert(id NodeID) (accepted bool, err error) {
	n := f.arena.get(id)
	sk := n.State.Key()

	if old, seen := f.index[sk]; seen {
		if !f.improves(n.G, n.H, old) {
			return false, nil
		}
		if err := f.tree.Delete(f.key(sk, old.g, old.h, old.id)); err != nil {
			return false, fmt.Errorf("%w: remove stale entry for %q: %v", ErrFrontierCorrupted, sk, err)
		}
	}

	if err := f.tree.Insert(f.key(sk, n.G, n.H, id)); err != nil {
		delete(f.index, sk)
		return false, fmt.Errorf("%w: insert entry for %q: %v", ErrFrontierCorrupted, sk, err)
	}
	f.index[sk] = bestKnown{g: n.G, h: n.H, id: id}

	return true, nil
}

// ExtractMin removes and returns the node with the smallest key.
func (f *frontier) ExtractMin() (NodeID, error) {
	k, err := f.tree.ExtractMin()
	if err != nil {
		return NoParent, ErrFrontierEmpty
	}
	if cur, ok := f.index[k.state]; !ok || cur.id != k.id {
		return NoParent, fmt.Errorf("%w: minimum %q has no matching index entry", ErrFrontierCorrupted, k.state)
	}
	delete(f.index, k.state)

	return k.id, nil
}

// Len returns the number of live entries.
func (f *frontier) Len() int { return f.tree.Len() }

// IsEmpty reports whether no entries remain.
func (f *frontier) IsEmpty() bool { return f.tree.IsEmpty() }
