package search

import (
	"fmt"
	"log/slog"
	"time"
)

// NodeID addresses a Node inside the arena of one traversal.
type NodeID int

// NoParent is the Parent of a root node.
const NoParent NodeID = -1

// Node is one vertex of the traversal tree.
//
// Parent is a read-only back-reference: children never modify their
// parent, and a node's Parent always precedes it in the traversal, so the
// parent links form a tree.
type Node struct {
	State  State
	Parent NodeID
	G      int64 // path cost from the root
	H      int64 // heuristic estimate to a goal
	F      int64 // G + H
	Cost   int64 // cost of the edge from Parent
}

// arena owns every node created by one traversal.
type arena struct {
	nodes []Node
}

// add appends a node and returns its handle; F is derived from g and h.
func (a *arena) add(s State, parent NodeID, g, h, cost int64) NodeID {
	a.nodes = append(a.nodes, Node{State: s, Parent: parent, G: g, H: h, F: g + h, Cost: cost})

	return NodeID(len(a.nodes) - 1)
}

// get returns a copy of the node. Copies stay valid across later appends.
func (a *arena) get(id NodeID) Node { return a.nodes[id] }

// dropLast discards id if it is the most recently added node.
func (a *arena) dropLast(id NodeID) {
	if int(id) == len(a.nodes)-1 {
		a.nodes[id] = Node{}
		a.nodes = a.nodes[:id]
	}
}

// truncate keeps only the first n nodes.
func (a *arena) truncate(n int) {
	clear(a.nodes[n:])
	a.nodes = a.nodes[:n]
}

// correct re-parents an existing node onto a cheaper path, keeping
// F == G + H and the edge cost consistent with the new parent.
func (a *arena) correct(id, parent NodeID, g, cost int64) {
	n := &a.nodes[id]
	n.Parent = parent
	n.G = g
	n.F = g + n.H
	n.Cost = cost
}

// path returns the handles from the root to id.
func (a *arena) path(id NodeID) []NodeID {
	var rev []NodeID
	for cur := id; cur != NoParent; cur = a.nodes[cur].Parent {
		rev = append(rev, cur)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// snapshot copies the path ending at id into a Solution.
func (a *arena) snapshot(id NodeID, elapsed time.Duration) Solution {
	ids := a.path(id)
	sol := Solution{Elapsed: elapsed, Steps: make([]Step, len(ids))}
	for i, nid := range ids {
		n := a.nodes[nid]
		sol.Steps[i] = Step{Index: i + 1, State: n.State, G: n.G, H: n.H, Cost: n.Cost}
		sol.Cost += n.Cost
	}

	return sol
}

// traversal is the context threaded through every strategy: options,
// node arena, visited sets and the result being built.
type traversal struct {
	opts      Options
	arena     arena
	tracker   *Tracker
	res       *Result
	startedAt time.Time
	remaining int
	log       *slog.Logger
}

// newTraversal applies opts and validates the start state.
func newTraversal(strategy Strategy, start State, opts []Option) (*traversal, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start == nil {
		return nil, ErrNilStart
	}

	t := &traversal{
		opts:      o,
		tracker:   NewTracker(),
		res:       &Result{Strategy: strategy},
		startedAt: time.Now(),
		remaining: o.Solutions,
		log:       o.Logger.With(slog.String("strategy", strategy.String())),
	}
	t.log.Debug("traversal started", slog.Int("solutions", o.Solutions))

	return t, nil
}

// root creates the root node for s. Only informed strategies estimate the
// root; the others start it at h = 0.
func (t *traversal) root(s State) NodeID {
	var h int64
	if t.res.Strategy.Informed() {
		h = t.opts.Estimator(s)
	}

	return t.arena.add(s, NoParent, 0, h, 0)
}

// child creates the node reached from parent through tr.
func (t *traversal) child(parent NodeID, tr Transition) NodeID {
	g := t.arena.nodes[parent].G + tr.Cost

	return t.arena.add(tr.State, parent, g, t.opts.Estimator(tr.State), tr.Cost)
}

// cancelled returns a wrapped context error once the context is done.
func (t *traversal) cancelled() error {
	select {
	case <-t.opts.Ctx.Done():
		return fmt.Errorf("search: %s aborted: %w", t.res.Strategy, t.opts.Ctx.Err())
	default:
		return nil
	}
}

// expand generates the successors of id and updates the counters.
func (t *traversal) expand(id NodeID) []Transition {
	succ := t.arena.nodes[id].State.Successors()
	t.res.Expanded++
	t.res.Generated += len(succ)

	return succ
}

// observe records the current frontier size.
func (t *traversal) observe(size int) {
	t.res.MaxFrontier = max(t.res.MaxFrontier, size)
}

// report snapshots the path to id, hands it to OnSolution and decrements
// the remaining quota. done is true once the quota is exhausted.
func (t *traversal) report(id NodeID) (done bool, err error) {
	sol := t.arena.snapshot(id, time.Since(t.startedAt))
	t.res.Solutions = append(t.res.Solutions, sol)
	t.log.Debug("solution found",
		slog.Int("length", sol.Len()),
		slog.Int64("cost", sol.Cost),
		slog.Duration("elapsed", sol.Elapsed))
	if err := t.opts.OnSolution(sol); err != nil {
		return true, fmt.Errorf("search: OnSolution hook: %w", err)
	}
	t.remaining--

	return t.remaining <= 0, nil
}

// finish stamps the elapsed time and returns the result.
func (t *traversal) finish() *Result {
	t.res.Elapsed = time.Since(t.startedAt)
	t.log.Debug("traversal finished",
		slog.Int("solutions", len(t.res.Solutions)),
		slog.Int("expanded", t.res.Expanded),
		slog.Duration("elapsed", t.res.Elapsed))

	return t.res
}
