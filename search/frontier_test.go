package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keyState is a bare State identified by its key.
type keyState string

func (k keyState) Key() string              { return string(k) }
func (k keyState) IsGoal() bool             { return false }
func (k keyState) Successors() []Transition { return nil }

func TestFrontier_EmptyExtract(t *testing.T) {
	f := newFrontier(byCost, &arena{})
	assert.True(t, f.IsEmpty())

	_, err := f.ExtractMin()
	assert.ErrorIs(t, err, ErrFrontierEmpty)
}

func TestFrontier_DecreaseKey(t *testing.T) {
	a := &arena{}
	f := newFrontier(byCost, a)

	first := a.add(keyState("x"), NoParent, 5, 0, 0)
	ok, err := f.Insert(first)
	require.NoError(t, err)
	assert.True(t, ok)

	// worse and equal offers are no-ops
	for _, g := range []int64{7, 5} {
		ok, err = f.Insert(a.add(keyState("x"), NoParent, g, 0, 0))
		require.NoError(t, err)
		assert.False(t, ok, "g=%d must not replace g=5", g)
	}

	better := a.add(keyState("x"), NoParent, 3, 0, 0)
	ok, err = f.Insert(better)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, f.Len(), "a state occurs at most once")

	got, err := f.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, better, got)
	assert.True(t, f.IsEmpty())
	assert.Empty(t, f.index)
}

func TestFrontier_EstimateOrderPrefersLowerG(t *testing.T) {
	a := &arena{}
	f := newFrontier(byEstimate, a)

	_, err := f.Insert(a.add(keyState("y"), NoParent, 4, 2, 0))
	require.NoError(t, err)

	// same f, lower g
	lowG := a.add(keyState("y"), NoParent, 3, 3, 0)
	ok, err := f.Insert(lowG)
	require.NoError(t, err)
	assert.True(t, ok)

	// identical f and g
	ok, err = f.Insert(a.add(keyState("y"), NoParent, 3, 3, 0))
	require.NoError(t, err)
	assert.False(t, ok)

	// higher f, even with lower g
	ok, err = f.Insert(a.add(keyState("y"), NoParent, 1, 9, 0))
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := f.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, lowG, got)
}

func TestFrontier_TiesBrokenByStateKey(t *testing.T) {
	a := &arena{}
	f := newFrontier(byCost, a)
	for _, k := range []string{"c", "a", "b"} {
		_, err := f.Insert(a.add(keyState(k), NoParent, 1, 0, 0))
		require.NoError(t, err)
	}
	_, err := f.Insert(a.add(keyState("z"), NoParent, 0, 0, 0))
	require.NoError(t, err)

	var order []string
	for !f.IsEmpty() {
		id, err := f.ExtractMin()
		require.NoError(t, err)
		order = append(order, a.get(id).State.Key())
	}
	assert.Equal(t, []string{"z", "a", "b", "c"}, order)
}

func TestFrontier_ReinsertAfterExtract(t *testing.T) {
	a := &arena{}
	f := newFrontier(byCost, a)

	_, err := f.Insert(a.add(keyState("x"), NoParent, 1, 0, 0))
	require.NoError(t, err)
	_, err = f.ExtractMin()
	require.NoError(t, err)

	// once extracted the state is unknown again, so even a worse node is accepted
	ok, err := f.Insert(a.add(keyState("x"), NoParent, 9, 0, 0))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, f.Len())
}

func TestFrontier_IndexMatchesTree(t *testing.T) {
	a := &arena{}
	f := newFrontier(byEstimate, a)
	keys := []string{"p", "q", "r", "s"}
	for round := int64(10); round > 0; round-- {
		for i, k := range keys {
			_, err := f.Insert(a.add(keyState(k), NoParent, round+int64(i), round%3, 0))
			require.NoError(t, err)
		}
		require.Equal(t, len(f.index), f.Len())
		f.tree.Ascend(func(k frontierKey) bool {
			cur, ok := f.index[k.state]
			assert.True(t, ok)
			assert.Equal(t, cur.id, k.id)
			return true
		})
	}
}
