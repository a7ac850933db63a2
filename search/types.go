package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Sentinel errors for search execution.
var (
	// ErrNilStart is returned when a traversal is started without a state.
	ErrNilStart = errors.New("search: start state is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownStrategy is returned by Run and ParseStrategy for
	// unrecognised strategies.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrDepthExceeded is returned by DFS and IDDFS when the traversal would
	// descend past the configured maximum depth. The accompanying Result
	// holds every solution reported before the limit was hit.
	ErrDepthExceeded = errors.New("search: maximum recursion depth exceeded")

	// ErrFrontierEmpty is returned by frontier.ExtractMin on an empty frontier.
	ErrFrontierEmpty = errors.New("search: frontier is empty")

	// ErrFrontierCorrupted signals that the frontier's state index and its
	// ordered tree disagree. It never occurs in correct operation.
	ErrFrontierCorrupted = errors.New("search: frontier index and tree out of sync")
)

// DefaultMaxDepth bounds the explicit stack of DFS and IDDFS.
const DefaultMaxDepth = 1000

// State is one vertex of an implicit search graph. Implementations must be
// immutable once handed to a traversal.
type State interface {
	// Key returns the canonical string form of the state. Equal states
	// have equal keys; keys also break ties between equal priorities.
	Key() string

	// IsGoal reports whether the state is terminal.
	IsGoal() bool

	// Successors returns the states reachable in one move, with the
	// non-negative cost of each move.
	Successors() []Transition
}

// Transition is one outgoing edge of a State.
type Transition struct {
	State State
	Cost  int64
}

// Estimator computes the heuristic estimate h of the remaining cost from a
// state to a goal.
type Estimator func(s State) int64

// zeroEstimator turns A* into uniform-cost search.
func zeroEstimator(State) int64 { return 0 }

// Strategy enumerates the available traversals.
type Strategy int

const (
	StrategyBFS Strategy = iota
	StrategyDFS
	StrategyIDDFS
	StrategyUCS
	StrategyAStarNaive
	StrategyAStar
)

var strategyNames = [...]string{
	StrategyBFS:        "bfs",
	StrategyDFS:        "dfs",
	StrategyIDDFS:      "iddfs",
	StrategyUCS:        "ucs",
	StrategyAStarNaive: "astar-naive",
	StrategyAStar:      "astar",
}

var strategyTitles = [...]string{
	StrategyBFS:        "BFS",
	StrategyDFS:        "DFS",
	StrategyIDDFS:      "IDDFS",
	StrategyUCS:        "UCS",
	StrategyAStarNaive: "A* (naive)",
	StrategyAStar:      "A* (optimized)",
}

// Strategies returns every strategy in the order the driver runs them.
func Strategies() []Strategy {
	return []Strategy{StrategyBFS, StrategyDFS, StrategyIDDFS, StrategyUCS, StrategyAStarNaive, StrategyAStar}
}

// ParseStrategy maps a strategy name (as returned by String) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

func (s Strategy) valid() bool { return s >= 0 && int(s) < len(strategyNames) }

// String returns the short machine name, e.g. "astar-naive".
func (s Strategy) String() string {
	if !s.valid() {
		return fmt.Sprintf("strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// Title returns the human-readable name used in report headers.
func (s Strategy) Title() string {
	if !s.valid() {
		return s.String()
	}

	return strategyTitles[s]
}

// Informed reports whether the strategy orders its frontier by f = g + h.
func (s Strategy) Informed() bool {
	return s == StrategyAStarNaive || s == StrategyAStar
}

// Option configures a traversal via functional arguments. Invalid values
// are recorded and surfaced as ErrOptionViolation when the traversal starts.
type Option func(*Options)

// Options holds the parameters of one traversal.
type Options struct {
	// Ctx carries cancellation and the wall-clock deadline. It is checked
	// once per frontier extraction.
	Ctx context.Context

	// Solutions is the number of solutions to report before stopping.
	Solutions int

	// Estimator computes h for every node. Defaults to zero.
	Estimator Estimator

	// MaxDepth bounds the explicit stack of DFS and IDDFS.
	MaxDepth int

	// OnSolution is called with a snapshot of every reported solution.
	// Returning an error aborts the traversal with that error.
	OnSolution func(sol Solution) error

	// Logger receives debug-level progress records.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - one requested solution
//   - the zero estimator
//   - DefaultMaxDepth
//   - a no-op OnSolution hook
//   - a logger that discards everything
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Solutions:  1,
		Estimator:  zeroEstimator,
		MaxDepth:   DefaultMaxDepth,
		OnSolution: func(Solution) error { return nil },
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// WithContext sets the context used for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSolutions sets how many solutions to report; n must be at least 1.
func WithSolutions(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Solutions must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Solutions = n
	}
}

// WithEstimator sets the heuristic used to compute h.
func WithEstimator(fn Estimator) Option {
	return func(o *Options) {
		if fn != nil {
			o.Estimator = fn
		}
	}
}

// WithMaxDepth bounds the depth reached by DFS and IDDFS; d must be at least 1.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 1 {
			o.err = fmt.Errorf("%w: MaxDepth must be positive (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnSolution registers a callback for every reported solution.
func WithOnSolution(fn func(sol Solution) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSolution = fn
		}
	}
}

// WithLogger sets the logger for debug-level progress records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Step is one node of a reported path, copied at report time.
type Step struct {
	Index int // 1-based position in the path
	State State
	G     int64
	H     int64
	Cost  int64 // cost of the edge leading into this node; 0 for the root
}

// Solution is an immutable snapshot of a path from the start to a goal.
type Solution struct {
	// Elapsed is the time since the traversal started.
	Elapsed time.Duration
	Steps   []Step
	// Cost is the sum of edge costs along Steps.
	Cost int64
}

// Len returns the number of nodes on the path, including the start.
func (s Solution) Len() int { return len(s.Steps) }

// Final returns the goal state at the end of the path.
func (s Solution) Final() State {
	if len(s.Steps) == 0 {
		return nil
	}

	return s.Steps[len(s.Steps)-1].State
}

// Result collects the outcome of one traversal.
type Result struct {
	Strategy  Strategy
	Solutions []Solution

	// Expanded counts successor generations; a state expanded twice counts twice.
	Expanded int
	// Generated counts successor states produced by expansions.
	Generated int
	// MaxFrontier is the largest frontier (queue, stack or priority queue) size seen.
	MaxFrontier int

	Elapsed time.Duration
}
