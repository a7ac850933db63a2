package search

// AStarNaive runs A* with an estimate-ordered decrease-key frontier and no
// record of expanded states: a state may be popped and expanded again
// whenever it re-enters the frontier, at any g. Goal tests happen at pop
// time.
//
// With an inconsistent heuristic, or when more than one solution is
// requested, the traversal may keep re-expanding states until the context
// expires.
func AStarNaive(start State, opts ...Option) (*Result, error) {
	t, err := newTraversal(StrategyAStarNaive, start, opts)
	if err != nil {
		return nil, err
	}
	defer t.finish()

	f := newFrontier(byEstimate, &t.arena)
	if _, err := f.Insert(t.root(start)); err != nil {
		return t.res, err
	}
	t.observe(f.Len())

	for !f.IsEmpty() {
		if err := t.cancelled(); err != nil {
			return t.res, err
		}

		id, err := f.ExtractMin()
		if err != nil {
			return t.res, err
		}
		if t.arena.get(id).State.IsGoal() {
			done, err := t.report(id)
			if err != nil || done {
				return t.res, err
			}
		}

		for _, tr := range t.expand(id) {
			if err := t.offer(f, id, tr); err != nil {
				return t.res, err
			}
		}
		t.observe(f.Len())
	}

	return t.res, nil
}

// AStar runs A* keeping an expanded map from state key to the node that was
// expanded for it.
//
// A successor whose state was never expanded goes to the frontier. A
// successor whose state was already expanded is never re-inserted; if it
// reaches the state more cheaply, the expanded node is corrected in place
// (G, F, Parent and edge Cost), so paths through that node observe the
// cheaper route without the frontier re-surfacing it.
func AStar(start State, opts ...Option) (*Result, error) {
	t, err := newTraversal(StrategyAStar, start, opts)
	if err != nil {
		return nil, err
	}
	defer t.finish()

	f := newFrontier(byEstimate, &t.arena)
	if _, err := f.Insert(t.root(start)); err != nil {
		return t.res, err
	}
	t.observe(f.Len())
	expanded := make(map[string]NodeID)

	for !f.IsEmpty() {
		if err := t.cancelled(); err != nil {
			return t.res, err
		}

		id, err := f.ExtractMin()
		if err != nil {
			return t.res, err
		}
		n := t.arena.get(id)
		if n.State.IsGoal() {
			done, err := t.report(id)
			if err != nil || done {
				return t.res, err
			}
		}
		expanded[n.State.Key()] = id

		for _, tr := range t.expand(id) {
			prev, seen := expanded[tr.State.Key()]
			if !seen {
				if err := t.offer(f, id, tr); err != nil {
					return t.res, err
				}
				continue
			}
			if g := n.G + tr.Cost; g < t.arena.get(prev).G {
				t.arena.correct(prev, id, g, tr.Cost)
			}
		}
		t.observe(f.Len())
	}

	return t.res, nil
}
