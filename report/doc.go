// Package report writes search results as the plain-text solution files of
// the block-stacking solver.
//
// A report is a sequence of sections, one per strategy run. Each section
// holds the solutions found by that run, in the order they were reported,
// and optional notes (depth exhaustion, timeouts). A solution is written as
//
//	Time to find solution: 0.000412s
//	Path length: 2
//	Path cost: 1
//	1)
//	g = 0
//	h = 0
//	<rendered state>
//	2)
//	...
//	________________________________
//
// where the closing rule is 16 underscores per stack.
package report
