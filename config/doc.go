// Package config loads solver settings from command-line flags, an optional
// YAML file and BLOCKSTACK_* environment variables, in that order of
// precedence, through a viper instance bound to a cobra command.
//
// Keys are dotted and map onto YAML sections:
//
//	search:
//	  solutions: 3
//	  timeout: 30s
//	  strategies: [bfs, ucs, astar]
//	  heuristics: [admissible-2]
//	  max_depth: 1000
//	run:
//	  parallel: 4
//	log:
//	  level: debug
//	  format: json
//	metrics:
//	  file: out/metrics.prom
//	summary:
//	  file: out/summary.yaml
//
// The environment variable for a key is its upper-cased form with dots
// replaced by underscores, e.g. BLOCKSTACK_SEARCH_TIMEOUT.
package config
