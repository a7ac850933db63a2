package heuristic_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockstack/heuristic"
	"github.com/katalvlaran/blockstack/puzzle"
	"github.com/katalvlaran/blockstack/search"
)

// layout builds a state from per-stack weights, bottom first. Capacities are
// large enough never to matter.
func layout(stacks ...[]int64) *puzzle.State {
	out := make([]puzzle.Stack, len(stacks))
	name := 'a'
	for i, ws := range stacks {
		for _, w := range ws {
			out[i] = append(out[i], puzzle.Block{Name: string(name), Weight: w, Capacity: 100})
			name++
		}
	}

	return puzzle.NewState(out...)
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name  string
		state *puzzle.State
		want  map[heuristic.Kind]int64
	}{
		{
			name:  "one tall stack",
			state: layout([]int64{1, 2, 3}, nil, nil),
			want: map[heuristic.Kind]int64{
				heuristic.Trivial:      1,
				heuristic.Admissible1:  1,
				heuristic.Admissible2:  5,
				heuristic.Inadmissible: 5,
			},
		},
		{
			name:  "surplus border block",
			state: layout([]int64{1, 5}, []int64{1, 2}, nil),
			want: map[heuristic.Kind]int64{
				heuristic.Trivial:      1,
				heuristic.Admissible1:  1,
				heuristic.Admissible2:  2, // lightest border block
				heuristic.Inadmissible: 5, // first border block in stack order
			},
		},
		{
			name:  "goal",
			state: layout([]int64{4, 4}, []int64{4}, []int64{4}),
			want: map[heuristic.Kind]int64{
				heuristic.Trivial:      0,
				heuristic.Admissible1:  0,
				heuristic.Admissible2:  0,
				heuristic.Inadmissible: 0,
			},
		},
		{
			name:  "everything on one of four stacks",
			state: layout([]int64{1, 2, 3, 4, 5}, nil, nil, nil),
			want: map[heuristic.Kind]int64{
				heuristic.Trivial:      1,
				heuristic.Admissible1:  1,
				heuristic.Admissible2:  12,
				heuristic.Inadmissible: 12,
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, want := range tc.want {
				assert.Equal(t, want, k.Evaluate(tc.state), k.String())
				assert.Equal(t, want, k.Estimator()(tc.state), k.String())
			}
		})
	}
}

func TestEvaluate_NoStacks(t *testing.T) {
	empty := puzzle.NewState()
	for _, k := range []heuristic.Kind{heuristic.Admissible1, heuristic.Admissible2, heuristic.Inadmissible} {
		assert.Zero(t, k.Evaluate(empty), k.String())
	}
	assert.Zero(t, heuristic.Kind(99).Evaluate(layout([]int64{1, 1})))
}

// opaque is a State that does not expose a Layout.
type opaque bool

func (o opaque) Key() string                     { return fmt.Sprint(bool(o)) }
func (o opaque) IsGoal() bool                    { return bool(o) }
func (o opaque) Successors() []search.Transition { return nil }

func TestEstimator_OpaqueState(t *testing.T) {
	assert.Equal(t, int64(1), heuristic.Trivial.Estimator()(opaque(false)))
	assert.Equal(t, int64(0), heuristic.Trivial.Estimator()(opaque(true)))
	assert.Equal(t, int64(0), heuristic.Admissible2.Estimator()(opaque(false)))
}

// reachable enumerates every state reachable from start.
func reachable(start *puzzle.State) []*puzzle.State {
	seen := map[string]bool{start.Key(): true}
	out := []*puzzle.State{start}
	for i := 0; i < len(out); i++ {
		for _, tr := range out[i].Successors() {
			if next := tr.State.(*puzzle.State); !seen[next.Key()] {
				seen[next.Key()] = true
				out = append(out, next)
			}
		}
	}

	return out
}

func TestAdmissibleBounds(t *testing.T) {
	starts := []*puzzle.State{
		layout([]int64{3, 1, 2}, nil, nil),
		layout([]int64{1, 2}, []int64{3, 4}, nil),
		puzzle.NewState(
			puzzle.Stack{{Name: "a", Weight: 2, Capacity: 5}, {Name: "b", Weight: 1, Capacity: 3}, {Name: "c", Weight: 1, Capacity: 1}},
			puzzle.Stack{},
			puzzle.Stack{{Name: "d", Weight: 3, Capacity: 0}},
		),
	}
	for _, start := range starts {
		for _, s := range reachable(start) {
			moves, err := search.BFS(s)
			require.NoError(t, err)
			cheapest, err := search.UCS(s)
			require.NoError(t, err)
			if len(cheapest.Solutions) == 0 {
				continue
			}
			minMoves := int64(moves.Solutions[0].Len() - 1)
			minCost := cheapest.Solutions[0].Cost

			assert.LessOrEqual(t, heuristic.Admissible1.Evaluate(s), minMoves, s.Key())
			assert.LessOrEqual(t, heuristic.Admissible2.Evaluate(s), minCost, s.Key())
			if !s.IsGoal() {
				assert.LessOrEqual(t, heuristic.Trivial.Evaluate(s), minMoves, s.Key())
			}
		}
	}
}

// admissibleKinds are the estimates that never exceed the true remaining cost.
var admissibleKinds = []heuristic.Kind{heuristic.Trivial, heuristic.Admissible1, heuristic.Admissible2}

func TestAStar_AdmissibleIsOptimal(t *testing.T) {
	start := layout([]int64{3, 1, 2, 2}, []int64{1}, nil)
	ucs, err := search.UCS(start)
	require.NoError(t, err)
	require.NotEmpty(t, ucs.Solutions)

	best := ucs.Solutions[0].Cost
	for _, k := range admissibleKinds {
		naive, err := search.AStarNaive(start, search.WithEstimator(k.Estimator()))
		require.NoError(t, err, k.String())
		require.NotEmpty(t, naive.Solutions, k.String())
		assert.Equal(t, best, naive.Solutions[0].Cost, k.String())

		opt, err := search.AStar(start, search.WithEstimator(k.Estimator()))
		require.NoError(t, err, k.String())
		require.NotEmpty(t, opt.Solutions, k.String())
		assert.Equal(t, best, opt.Solutions[0].Cost, k.String())
	}
}

// randomLayout spreads 2-5 blocks with weights 1-5 over 2-3 stacks.
func randomLayout(rng *rand.Rand) *puzzle.State {
	stacks := make([]puzzle.Stack, 2+rng.IntN(2))
	for i, n := 0, 2+rng.IntN(4); i < n; i++ {
		j := rng.IntN(len(stacks))
		stacks[j] = append(stacks[j], puzzle.Block{
			Name:     string(rune('a' + i)),
			Weight:   int64(1 + rng.IntN(5)),
			Capacity: int64(rng.IntN(12)),
		})
	}

	return puzzle.NewState(stacks...)
}

func TestAStar_MatchesUCSOnRandomLayouts(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 150; i++ {
		start := randomLayout(rng)
		if !start.IsValid() {
			continue
		}
		ucs, err := search.UCS(start)
		require.NoError(t, err, start.Key())

		for _, k := range admissibleKinds {
			opt, err := search.AStar(start, search.WithEstimator(k.Estimator()))
			require.NoError(t, err, start.Key())
			require.Len(t, opt.Solutions, len(ucs.Solutions), "%s %s", k, start.Key())
			if len(ucs.Solutions) > 0 {
				assert.Equal(t, ucs.Solutions[0].Cost, opt.Solutions[0].Cost, "%s %s", k, start.Key())
			}
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range heuristic.Kinds() {
		got, err := heuristic.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := heuristic.ParseKind(" Admissible-1")
	require.NoError(t, err)
	assert.Equal(t, heuristic.Admissible1, got)

	_, err = heuristic.ParseKind("manhattan")
	assert.ErrorIs(t, err, heuristic.ErrUnknownKind)

	assert.Equal(t, "admissible heuristic 2", heuristic.Admissible2.Title())
	assert.Equal(t, "heuristic(9)", heuristic.Kind(9).String())
}
