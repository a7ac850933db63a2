// Package runner drives the solver over a directory of puzzle files.
//
// For every regular file in the input directory it parses the initial
// layout, checks that no block is overloaded, and runs the configured plan
// (every uninformed strategy once, every A* variant once per heuristic)
// writing all reported solutions into <name>.out in the output directory.
// Each run gets its own wall-clock deadline; depth exhaustion and timeouts
// are noted in the report and do not stop the remaining runs.
//
// Files are solved concurrently up to config.Config.Parallel. An invalid
// initial layout is fatal and cancels the files still in flight, matching
// the exit status contract of the command.
//
// When configured, a Prometheus text dump of the run's metrics and a YAML
// summary are written once all files are done.
package runner
