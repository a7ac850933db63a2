package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_PathAndSnapshot(t *testing.T) {
	a := &arena{}
	root := a.add(keyState("s"), NoParent, 0, 4, 0)
	mid := a.add(keyState("m"), root, 2, 1, 2)
	leaf := a.add(keyState("g"), mid, 5, 0, 3)

	assert.Equal(t, []NodeID{root, mid, leaf}, a.path(leaf))
	assert.Equal(t, int64(3), a.get(mid).F, "F is derived from G and H")

	sol := a.snapshot(leaf, time.Second)
	require.Equal(t, 3, sol.Len())
	assert.Equal(t, int64(5), sol.Cost)
	assert.Equal(t, time.Second, sol.Elapsed)
	assert.Equal(t, Step{Index: 2, State: keyState("m"), G: 2, H: 1, Cost: 2}, sol.Steps[1])
	assert.Equal(t, keyState("g"), sol.Final())
}

func TestArena_CorrectKeepsSnapshotsIntact(t *testing.T) {
	a := &arena{}
	root := a.add(keyState("s"), NoParent, 0, 0, 0)
	far := a.add(keyState("a"), root, 5, 1, 5)
	sol := a.snapshot(far, 0)

	near := a.add(keyState("b"), root, 1, 0, 1)
	a.correct(far, near, 2, 1)

	n := a.get(far)
	assert.Equal(t, near, n.Parent)
	assert.Equal(t, int64(2), n.G)
	assert.Equal(t, int64(3), n.F)
	assert.Equal(t, int64(1), n.Cost)
	assert.Equal(t, []NodeID{root, near, far}, a.path(far))

	assert.Equal(t, int64(5), sol.Cost, "earlier solutions are snapshots")
	assert.Equal(t, 2, sol.Len())
}

func TestArena_DropLastAndTruncate(t *testing.T) {
	a := &arena{}
	root := a.add(keyState("s"), NoParent, 0, 0, 0)
	x := a.add(keyState("x"), root, 1, 0, 1)
	y := a.add(keyState("y"), root, 1, 0, 1)

	a.dropLast(x) // not the last node
	assert.Len(t, a.nodes, 3)
	a.dropLast(y)
	assert.Len(t, a.nodes, 2)

	a.truncate(1)
	assert.Len(t, a.nodes, 1)
	assert.Equal(t, NodeID(1), a.add(keyState("z"), root, 1, 0, 1))
}

func TestTracker(t *testing.T) {
	tr := NewTracker()
	s := keyState("s")

	assert.False(t, tr.IsDiscovered(s))
	tr.MarkDiscovered(s)
	assert.True(t, tr.IsDiscovered(s))
	assert.False(t, tr.IsProcessed(s), "discovered does not imply processed")

	tr.MarkProcessed(keyState("s")) // membership is by key
	assert.True(t, tr.IsProcessed(s))

	tr.Reset()
	assert.False(t, tr.IsDiscovered(s))
	assert.False(t, tr.IsProcessed(s))
}
