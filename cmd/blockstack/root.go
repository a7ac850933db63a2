package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/blockstack/config"
	"github.com/katalvlaran/blockstack/runner"
)

func newRootCmd(logOut io.Writer) *cobra.Command {
	v := config.NewViper()
	cmd := &cobra.Command{
		Use:   "blockstack <input-dir> <output-dir> [solutions] [timeout-seconds]",
		Short: "Balance stacks of load-bearing blocks with uninformed and heuristic search",
		Long: `blockstack reads every puzzle file of <input-dir>, one stack per line
with blocks written as name,weight,capacity and separated by '|' ('_' marks an
empty stack), and writes <name>.out into <output-dir> with the solutions found
by every configured strategy.

The optional positional [solutions] and [timeout-seconds] override the
corresponding --search.* flags.`,
		Args:         cobra.RangeArgs(2, 4),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := positional(v, args[2:]); err != nil {
				return err
			}
			cfg, err := config.Load(v, args[0], args[1])
			if err != nil {
				return err
			}
			log := cfg.NewLogger(logOut)

			r, err := runner.New(cfg, log)
			if err != nil {
				log.Error("cannot start", slog.Any("error", err))
				return err
			}
			sum, err := r.Run(cmd.Context())
			if err != nil {
				log.Error("run failed", slog.String("run_id", r.ID().String()), slog.Any("error", err))
				return err
			}
			log.Info("run complete",
				slog.String("run_id", sum.RunID),
				slog.Int("files", len(sum.Files)),
				slog.String("elapsed", sum.Elapsed))

			return nil
		},
	}
	config.RegisterFlags(cmd, v)

	return cmd
}

// positional applies the optional [solutions] and [timeout-seconds]
// arguments on top of every other configuration source.
func positional(v *viper.Viper, args []string) error {
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: solutions %q: %v", config.ErrInvalidConfig, args[0], err)
		}
		v.Set(config.CfgSolutions, n)
	}
	if len(args) > 1 {
		secs, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: timeout %q: %v", config.ErrInvalidConfig, args[1], err)
		}
		v.Set(config.CfgTimeout, time.Duration(secs)*time.Second)
	}

	return nil
}
