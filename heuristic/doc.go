// Package heuristic estimates the remaining cost from a block-stacking
// layout to a balanced goal layout.
//
// Four estimators are provided as a closed enumeration (Kind):
//
//   - Trivial:      1 for any non-goal layout, 0 for a goal.
//   - Admissible1:  a lower bound on the number of moves still needed.
//   - Admissible2:  a lower bound on the weight still to be moved.
//   - Inadmissible: Admissible2 without the cheapest-first choice of border
//     blocks; it may overestimate.
//
// With T blocks over S stacks, n = T / S and m = T mod S: a layout is a goal
// when every stack holds n or n+1 blocks. Each block above index n+1 must
// move at least once. Of the stacks holding at least n+1 blocks (the border
// stacks) no more than m may keep their block at index n.
//
// Kind.Estimator adapts a Kind to search.Estimator; states that do not
// expose a Layout are estimated as 0 (or by their goal test for Trivial).
package heuristic
