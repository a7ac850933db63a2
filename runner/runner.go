package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/blockstack/config"
	"github.com/katalvlaran/blockstack/puzzle"
	"github.com/katalvlaran/blockstack/report"
	"github.com/katalvlaran/blockstack/search"
)

// outputExt replaces the extension of an input file name.
const outputExt = ".out"

// Runner solves every file of an input directory.
type Runner struct {
	cfg     *config.Config
	log     *slog.Logger
	metrics *Metrics
	plan    []Run
	id      uuid.UUID
}

// New checks that both directories exist and prepares a run.
func New(cfg *config.Config, log *slog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, dir := range []string{cfg.InputDir, cfg.OutputDir} {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMissingDir, dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%w: %s is not a directory", ErrMissingDir, dir)
		}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	id := uuid.New()

	return &Runner{
		cfg:     cfg,
		log:     log.With(slog.String("run_id", id.String())),
		metrics: NewMetrics(),
		plan:    Plan(cfg.Strategies, cfg.Heuristics),
		id:      id,
	}, nil
}

// ID returns the identifier attached to logs and the summary.
func (r *Runner) ID() uuid.UUID { return r.id }

// Metrics returns the metrics collected so far.
func (r *Runner) Metrics() *Metrics { return r.metrics }

// Run solves every input file and writes the configured metrics and summary
// files. The summary is returned even when a file fails.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	started := time.Now()
	sum := &Summary{RunID: r.id.String(), StartedAt: started.UTC()}

	files, err := r.inputs()
	if err != nil {
		return sum, err
	}
	r.log.Info("solving",
		slog.Int("files", len(files)),
		slog.Int("runs_per_file", len(r.plan)),
		slog.Int("parallel", r.cfg.Parallel))

	sum.Files = make([]FileSummary, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Parallel)
	for i, name := range files {
		g.Go(func() error {
			fs, err := r.SolveFile(gctx,
				filepath.Join(r.cfg.InputDir, name),
				filepath.Join(r.cfg.OutputDir, OutputName(name)))
			sum.Files[i] = fs
			return err
		})
	}
	err = g.Wait()
	sum.Elapsed = time.Since(started).String()

	return sum, errors.Join(err, r.writeArtifacts(sum))
}

func (r *Runner) writeArtifacts(sum *Summary) error {
	var errs []error
	if r.cfg.MetricsFile != "" {
		errs = append(errs, r.metrics.WriteFile(r.cfg.MetricsFile))
	}
	if r.cfg.SummaryFile != "" {
		errs = append(errs, sum.WriteFile(r.cfg.SummaryFile))
	}

	return errors.Join(errs...)
}

// inputs lists the regular, non-hidden files of the input directory by name.
func (r *Runner) inputs() ([]string, error) {
	entries, err := os.ReadDir(r.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("runner: list %s: %w", r.cfg.InputDir, err)
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && !strings.HasPrefix(e.Name(), ".") {
			names = append(names, e.Name())
		}
	}

	return names, nil
}

// OutputName maps an input file name to its report file name.
func OutputName(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + outputExt
}

// SolveFile runs the whole plan on one file and writes its report to out.
//
// A file that cannot be parsed is logged and skipped. A layout that starts
// out invalid yields ErrInvalidInitialState.
func (r *Runner) SolveFile(ctx context.Context, in, out string) (FileSummary, error) {
	log := r.log.With(slog.String("file", filepath.Base(in)))
	fs := FileSummary{Input: in}
	if err := ctx.Err(); err != nil {
		return fs, err
	}

	start, err := puzzle.ParseFile(in, puzzle.WithOnMalformed(func(line int, record string, err error) {
		log.Warn("skipping malformed block",
			slog.Int("line", line),
			slog.String("record", record),
			slog.Any("error", err))
	}))
	if err != nil {
		log.Error("cannot parse input", slog.Any("error", err))
		fs.Error = err.Error()
		return fs, nil
	}
	fs.Stacks, fs.Blocks = start.NumStacks(), start.TotalBlocks()
	if !start.IsValid() {
		fs.Error = ErrInvalidInitialState.Error()
		return fs, fmt.Errorf("%w: %s", ErrInvalidInitialState, in)
	}

	f, err := os.Create(out)
	if err != nil {
		return fs, fmt.Errorf("runner: create %s: %w", out, err)
	}
	fs.Output = out
	bw := bufio.NewWriter(f)
	w := report.NewWriter(bw)

	runErr := r.runPlan(ctx, start, w, log, &fs)
	if err := bw.Flush(); err != nil && runErr == nil {
		runErr = fmt.Errorf("runner: flush %s: %w", out, err)
	}
	if err := f.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("runner: close %s: %w", out, err)
	}
	log.Info("file done", slog.Int("runs", len(fs.Runs)), slog.Bool("ok", runErr == nil))

	return fs, runErr
}

func (r *Runner) runPlan(ctx context.Context, start *puzzle.State, w *report.Writer, log *slog.Logger, fs *FileSummary) error {
	for _, run := range r.plan {
		if err := ctx.Err(); err != nil {
			return err
		}
		rs, err := r.solve(ctx, start, run, w, log)
		fs.Runs = append(fs.Runs, rs)
		if err != nil {
			return err
		}
	}

	return nil
}

// solve performs one run under its own deadline. Depth exhaustion and the
// per-run timeout are written as notes and reported through the outcome;
// any other failure is returned.
func (r *Runner) solve(ctx context.Context, start *puzzle.State, run Run, w *report.Writer, log *slog.Logger) (RunSummary, error) {
	rs := RunSummary{Strategy: run.Strategy.String(), Heuristic: run.HeuristicLabel()}
	if err := w.Section(run.Title()); err != nil {
		return rs, err
	}

	runCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()
	res, err := search.Run(run.Strategy, start,
		search.WithContext(runCtx),
		search.WithSolutions(r.cfg.Solutions),
		search.WithMaxDepth(r.cfg.MaxDepth),
		search.WithEstimator(run.Estimator()),
		search.WithLogger(log.With(slog.String("heuristic", rs.Heuristic))),
		search.WithOnSolution(w.Solution),
	)

	switch {
	case err == nil && len(res.Solutions) >= r.cfg.Solutions:
		rs.Outcome = OutcomeSolved
	case err == nil:
		rs.Outcome = OutcomeExhausted
	case errors.Is(err, search.ErrDepthExceeded):
		rs.Outcome = OutcomeDepthExceeded
		err = w.Note(err.Error())
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		rs.Outcome = OutcomeTimeout
		err = w.Note(fmt.Sprintf("timed out after %s", r.cfg.Timeout))
	default:
		return rs, err
	}

	r.metrics.Observe(run, res, rs.Outcome)
	if res != nil {
		for _, sol := range res.Solutions {
			rs.Costs = append(rs.Costs, sol.Cost)
		}
		rs.Expanded, rs.Generated, rs.MaxFrontier = res.Expanded, res.Generated, res.MaxFrontier
		rs.Elapsed = res.Elapsed.String()
	}
	log.Debug("run finished",
		slog.String("strategy", rs.Strategy),
		slog.String("heuristic", rs.Heuristic),
		slog.String("outcome", string(rs.Outcome)),
		slog.Int("solutions", len(rs.Costs)),
		slog.Int("expanded", rs.Expanded))

	return rs, err
}
