// Command blockstack solves every block-stacking puzzle in a directory with
// BFS, DFS, IDDFS, UCS and two A* variants, writing one report per puzzle.
//
// Usage:
//
//	blockstack <input-dir> <output-dir> [solutions] [timeout-seconds] [flags]
//
// The exit status is 1 when a directory is missing, an initial layout is
// invalid or the run otherwise fails, and 0 on success.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
