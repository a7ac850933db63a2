package search

// BFS runs breadth-first search from start with a FIFO frontier.
//
// A state is marked discovered when it is enqueued, so every state enters
// the queue at most once. Goal tests happen at dequeue time; a goal node is
// still expanded when more solutions are wanted.
//
// Returns ErrNilStart or ErrOptionViolation for invalid input, a wrapped
// context error on cancellation, or the OnSolution hook's error.
func BFS(start State, opts ...Option) (*Result, error) {
	t, err := newTraversal(StrategyBFS, start, opts)
	if err != nil {
		return nil, err
	}
	defer t.finish()

	queue := []NodeID{t.root(start)}
	t.tracker.MarkDiscovered(start)
	t.observe(len(queue))

	for len(queue) > 0 {
		if err := t.cancelled(); err != nil {
			return t.res, err
		}

		id := queue[0]
		queue = queue[1:]

		if t.arena.get(id).State.IsGoal() {
			done, err := t.report(id)
			if err != nil || done {
				return t.res, err
			}
		}

		for _, tr := range t.expand(id) {
			if t.tracker.IsDiscovered(tr.State) {
				continue
			}
			t.tracker.MarkDiscovered(tr.State)
			queue = append(queue, t.child(id, tr))
		}
		t.observe(len(queue))
	}

	return t.res, nil
}
