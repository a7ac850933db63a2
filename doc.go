// Package blockstack is a solver for the weighted block-stacking puzzle: a
// number of stacks hold named blocks, each with a weight and a load
// capacity, and blocks are moved one at a time from the top of one stack to
// the top of another, never loading a block beyond its capacity, until all
// stacks have (almost) equal height.
//
// The module is organised as:
//
//   - ostree:    order-statistic size-balanced search tree.
//   - search:    BFS, DFS, IDDFS, UCS and two A* variants over any State,
//     with a decrease-key frontier built on ostree.
//   - heuristic: four estimators of the remaining cost.
//   - puzzle:    the block-stacking domain (parsing, moves, goal test).
//   - report:    plain-text solution reports.
//   - config:    flags, YAML file and environment settings.
//   - runner:    per-directory driver with metrics and a YAML summary.
//   - cmd/blockstack: the command-line entry point.
package blockstack
