package search

// UCS runs uniform-cost search with a cost-ordered decrease-key frontier.
//
// Every popped node is goal-tested. A state is expanded at most once: a
// popped state that was already processed is not expanded again, and
// successors whose state is already processed are not admitted.
func UCS(start State, opts ...Option) (*Result, error) {
	t, err := newTraversal(StrategyUCS, start, opts)
	if err != nil {
		return nil, err
	}
	defer t.finish()

	f := newFrontier(byCost, &t.arena)
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
		n := t.arena.get(id)

		if n.State.IsGoal() {
			done, err := t.report(id)
			if err != nil || done {
				return t.res, err
			}
		}
		if t.tracker.IsProcessed(n.State) {
			continue
		}
		t.tracker.MarkProcessed(n.State)

		for _, tr := range t.expand(id) {
			if t.tracker.IsProcessed(tr.State) {
				continue
			}
			if err := t.offer(f, id, tr); err != nil {
				return t.res, err
			}
		}
		t.observe(f.Len())
	}

	return t.res, nil
}

// offer wraps tr in a node and inserts it; rejected nodes are discarded
// from the arena straight away.
func (t *traversal) offer(f *frontier, parent NodeID, tr Transition) error {
	id := t.child(parent, tr)
	accepted, err := f.Insert(id)
	if err != nil {
		return err
	}
	if !accepted {
		t.arena.dropLast(id)
	}

	return nil
}
