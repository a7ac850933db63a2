package runner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/blockstack/heuristic"
	"github.com/katalvlaran/blockstack/search"
)

var (
	// ErrMissingDir is returned by New when the input or output directory
	// does not exist.
	ErrMissingDir = errors.New("runner: directory does not exist")

	// ErrInvalidInitialState is returned when an input layout already
	// violates a block's capacity.
	ErrInvalidInitialState = errors.New("runner: initial state is invalid")
)

// Outcome classifies how one strategy run ended.
type Outcome string

const (
	// OutcomeSolved: the requested number of solutions was reported.
	OutcomeSolved Outcome = "solved"
	// OutcomeExhausted: the search space ran out first.
	OutcomeExhausted Outcome = "exhausted"
	// OutcomeTimeout: the per-run deadline expired.
	OutcomeTimeout Outcome = "timeout"
	// OutcomeDepthExceeded: DFS or IDDFS reached the depth ceiling.
	OutcomeDepthExceeded Outcome = "depth-exceeded"
)

// Run is one entry of the per-file plan.
type Run struct {
	Strategy  search.Strategy
	Heuristic heuristic.Kind
}

// Title is the section header of the run in the report.
func (r Run) Title() string {
	if !r.Strategy.Informed() {
		return r.Strategy.Title()
	}

	return fmt.Sprintf(" %s - %s ", r.Strategy.Title(), r.Heuristic.Title())
}

// HeuristicLabel names the heuristic driving the search order, or "none".
func (r Run) HeuristicLabel() string {
	if !r.Strategy.Informed() {
		return "none"
	}

	return r.Heuristic.String()
}

// Estimator returns the estimator for the run. Uninformed strategies still
// get the trivial estimate so reports show h for every node; it never
// affects their order.
func (r Run) Estimator() search.Estimator {
	if !r.Strategy.Informed() {
		return heuristic.Trivial.Estimator()
	}

	return r.Heuristic.Estimator()
}

// Plan expands strategies and heuristics into the ordered list of runs
// performed for every file.
func Plan(strategies []search.Strategy, kinds []heuristic.Kind) []Run {
	var plan []Run
	for _, s := range strategies {
		if !s.Informed() {
			plan = append(plan, Run{Strategy: s, Heuristic: heuristic.Trivial})
			continue
		}
		for _, k := range kinds {
			plan = append(plan, Run{Strategy: s, Heuristic: k})
		}
	}

	return plan
}
