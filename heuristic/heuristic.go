package heuristic

import (
	"slices"

	"github.com/katalvlaran/blockstack/search"
)

// Evaluate returns the estimate of k for l. Unknown kinds evaluate to 0.
func (k Kind) Evaluate(l Layout) int64 {
	switch k {
	case Trivial:
		return trivial(l)
	case Admissible1:
		return moves(l)
	case Admissible2:
		return weights(l, true)
	case Inadmissible:
		return weights(l, false)
	default:
		return 0
	}
}

// Estimator adapts k to the search engine.
func (k Kind) Estimator() search.Estimator {
	return func(s search.State) int64 {
		if l, ok := s.(Layout); ok {
			return k.Evaluate(l)
		}
		if k == Trivial && !s.IsGoal() {
			return 1
		}

		return 0
	}
}

func trivial(l Layout) int64 {
	if l.IsGoal() {
		return 0
	}

	return 1
}

// balance returns n and m for the total block count of l.
func balance(l Layout) (n, m int, ok bool) {
	stacks := l.NumStacks()
	if stacks == 0 {
		return 0, 0, false
	}
	total := 0
	for i := 0; i < stacks; i++ {
		total += l.Height(i)
	}

	return total / stacks, total % stacks, true
}

// moves counts one move per stack taller than n+1 and one per block still
// missing from short stacks that those stacks cannot cover.
func moves(l Layout) int64 {
	n, _, ok := balance(l)
	if !ok {
		return 0
	}

	var missing, cost int64
	for i := 0; i < l.NumStacks(); i++ {
		missing += int64(max(0, n-l.Height(i)))
	}
	for i := 0; i < l.NumStacks(); i++ {
		if h := l.Height(i); h > n+1 {
			cost++
			missing -= int64(h - (n + 1))
		}
	}

	return cost + max(0, missing-cost)
}

// weights sums the blocks above index n+1 and, when more than m stacks
// reach index n, the weights of the surplus blocks at index n: the lightest
// ones if cheapest is set, otherwise the first ones in stack order.
func weights(l Layout, cheapest bool) int64 {
	n, m, ok := balance(l)
	if !ok {
		return 0
	}

	var cost int64
	var border []int64
	for i := 0; i < l.NumStacks(); i++ {
		h := l.Height(i)
		for j := n + 1; j < h; j++ {
			cost += l.Weight(i, j)
		}
		if h >= n+1 {
			border = append(border, l.Weight(i, n))
		}
	}

	if surplus := len(border) - m; surplus > 0 {
		if cheapest {
			slices.Sort(border)
		}
		for _, w := range border[:surplus] {
			cost += w
		}
	}

	return cost
}
