package search

import "fmt"

// frame is one level of the explicit DFS stack: the node being explored,
// its successors and the index of the next successor to try.
type frame struct {
	id    NodeID
	succ  []Transition
	next  int
	depth int
}

// dfsWalker holds the explicit stack shared by DFS and IDDFS.
type dfsWalker struct {
	t     *traversal
	stack []frame
}

// DFS runs depth-first search from start, following the first unexplored
// successor of every node before backtracking. It finds solutions greedily
// along the first path, not shortest ones.
//
// States are marked discovered before they are entered, so each state is
// entered at most once. The stack is bounded by MaxDepth: descending past
// it stops the traversal with ErrDepthExceeded and the partial Result.
func DFS(start State, opts ...Option) (*Result, error) {
	t, err := newTraversal(StrategyDFS, start, opts)
	if err != nil {
		return nil, err
	}
	defer t.finish()

	w := &dfsWalker{t: t}
	t.tracker.MarkDiscovered(start)
	if done, err := w.enter(t.root(start), 0); err != nil || done {
		return t.res, err
	}

	for len(w.stack) > 0 {
		if err := t.cancelled(); err != nil {
			return t.res, err
		}

		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.succ) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		tr := top.succ[top.next]
		top.next++
		if t.tracker.IsDiscovered(tr.State) {
			continue
		}
		t.tracker.MarkDiscovered(tr.State)

		parent, depth := top.id, top.depth+1
		if done, err := w.enter(t.child(parent, tr), depth); err != nil || done {
			return t.res, err
		}
	}

	return t.res, nil
}

// enter goal-tests node id and pushes a frame with its successors.
func (w *dfsWalker) enter(id NodeID, depth int) (done bool, err error) {
	if depth >= w.t.opts.MaxDepth {
		return false, fmt.Errorf("%w: limit %d", ErrDepthExceeded, w.t.opts.MaxDepth)
	}
	if w.t.arena.get(id).State.IsGoal() {
		if done, err := w.t.report(id); err != nil || done {
			return done, err
		}
	}
	w.stack = append(w.stack, frame{id: id, succ: w.t.expand(id), depth: depth})
	w.t.observe(len(w.stack))

	return false, nil
}

// IDDFS runs iterative-deepening depth-first search: depth-bounded DFS with
// bounds 1, 2, 3, ... and the discovered set reset before each iteration.
// A goal is reported only when it sits exactly at the current bound, so a
// solution is never reported twice by successive iterations.
//
// The traversal ends when the quota is met, when an iteration never reaches
// its bound (deeper bounds would repeat it), or when the bound would exceed
// MaxDepth, which yields ErrDepthExceeded with the partial Result.
func IDDFS(start State, opts ...Option) (*Result, error) {
	t, err := newTraversal(StrategyIDDFS, start, opts)
	if err != nil {
		return nil, err
	}
	defer t.finish()

	w := &dfsWalker{t: t}
	root := t.root(start)
	for bound := 1; ; bound++ {
		if bound > t.opts.MaxDepth {
			return t.res, fmt.Errorf("%w: limit %d", ErrDepthExceeded, t.opts.MaxDepth)
		}
		t.tracker.Reset()
		t.tracker.MarkDiscovered(start)
		// nodes of earlier iterations are unreachable; solutions are snapshots
		t.arena.truncate(int(root) + 1)

		reached, done, err := w.bounded(root, bound)
		if err != nil || done {
			return t.res, err
		}
		if !reached {
			return t.res, nil
		}
	}
}

// bounded runs one depth-limited pass. A node entered with remaining == 1
// sits on the bound: it is goal-tested but not expanded. reached reports
// whether any node sat on the bound.
func (w *dfsWalker) bounded(root NodeID, bound int) (reached, done bool, err error) {
	t := w.t
	w.stack = w.stack[:0]

	visit := func(id NodeID, remaining int) (bool, error) {
		if remaining == 1 {
			reached = true
			if t.arena.get(id).State.IsGoal() {
				return t.report(id)
			}
			return false, nil
		}
		w.stack = append(w.stack, frame{id: id, succ: t.expand(id), depth: bound - remaining})
		t.observe(len(w.stack))

		return false, nil
	}

	if done, err = visit(root, bound); err != nil || done {
		return reached, done, err
	}
	for len(w.stack) > 0 {
		if err = t.cancelled(); err != nil {
			return reached, false, err
		}

		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.succ) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		tr := top.succ[top.next]
		top.next++
		if t.tracker.IsDiscovered(tr.State) {
			continue
		}
		t.tracker.MarkDiscovered(tr.State)

		parent, remaining := top.id, bound-top.depth-1
		if done, err = visit(t.child(parent, tr), remaining); err != nil || done {
			return reached, done, err
		}
	}

	return reached, false, nil
}
