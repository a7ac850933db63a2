// Package search runs uninformed and informed traversals over implicit state
// graphs and reports every solution path as an immutable snapshot.
//
// What
//
//   - BFS:        FIFO frontier, discovered-on-enqueue, goal test at dequeue.
//   - DFS:        explicit stack, first unexplored successor first, bounded by MaxDepth.
//   - IDDFS:      depth-bounded DFS for bounds 1, 2, 3, ... with a fresh visited set per bound.
//   - UCS:        cost-ordered decrease-key frontier, each state expanded once.
//   - AStarNaive: f-ordered decrease-key frontier, states may be re-expanded.
//   - AStar:      f-ordered frontier plus an expanded map; cheaper routes to
//     already expanded states correct the expanded node in place.
//
// Any type implementing State can be searched: it supplies a canonical Key,
// a goal test and its weighted successors. The frontier of UCS and A* is a
// priority queue backed by an order-statistic tree (package
// ostree) plus a state index, so a state occurs at most once and an offer of
// a better node replaces the worse one (decrease-key).
//
// Nodes
//
//	Every traversal owns an arena of Node values addressed by NodeID. A node
//	refers to its parent by handle; paths are rebuilt by following handles
//	back to the root. Reported Solutions copy the path out of the arena, so
//	later corrections or truncations never alter a Solution already handed
//	to the caller.
//
// Determinism
//
//	Successors are explored in the order State.Successors returns them, and
//	frontier ties on priority are broken by state key, so runs are
//	reproducible.
//
// Limits and cancellation
//
//   - WithContext: cancellation and deadlines, checked once per extraction.
//   - WithSolutions(n): stop after n solutions.
//   - WithMaxDepth(d): DFS and IDDFS return ErrDepthExceeded past depth d.
//
// When a traversal stops early the partial *Result is returned together
// with the error, so solutions found so far are never lost.
//
// Usage
//
//	res, err := search.Run(search.StrategyAStar, start,
//	    search.WithContext(ctx),
//	    search.WithSolutions(3),
//	    search.WithEstimator(h),
//	    search.WithOnSolution(func(sol search.Solution) error {
//	        return w.Solution(sol)
//	    }),
//	)
//
// Errors
//
//   - ErrNilStart, ErrOptionViolation: invalid input, no Result.
//   - ErrUnknownStrategy: Run or ParseStrategy given an unknown strategy.
//   - ErrDepthExceeded: DFS/IDDFS hit MaxDepth.
//   - context errors (wrapped): the deadline expired or the caller cancelled.
//   - ErrFrontierCorrupted: internal inconsistency, never expected.
package search
