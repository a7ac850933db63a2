package config_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockstack/config"
	"github.com/katalvlaran/blockstack/heuristic"
	"github.com/katalvlaran/blockstack/search"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.NewViper(), "in", "out")
	require.NoError(t, err)

	want := config.Default()
	want.InputDir, want.OutputDir = "in", "out"
	assert.Equal(t, &want, cfg)
}

func TestLoad_Flags(t *testing.T) {
	v := config.NewViper()
	cmd := &cobra.Command{Use: "blockstack"}
	config.RegisterFlags(cmd, v)
	require.NoError(t, cmd.Flags().Parse([]string{
		"--search.solutions=3",
		"--search.strategies=bfs,astar",
		"--search.heuristics=admissible-2",
		"--search.timeout=250ms",
		"--run.parallel=4",
		"--log.level=debug",
	}))

	cfg, err := config.Load(v, "in", "out")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Solutions)
	assert.Equal(t, []search.Strategy{search.StrategyBFS, search.StrategyAStar}, cfg.Strategies)
	assert.Equal(t, []heuristic.Kind{heuristic.Admissible2}, cfg.Heuristics)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.Equal(t, 4, cfg.Parallel)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, search.DefaultMaxDepth, cfg.MaxDepth)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockstack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
search:
  solutions: 2
  timeout: 30s
  strategies: [ucs, astar-naive]
  max_depth: 50
log:
  format: json
summary:
  file: summary.yaml
`), 0o644))

	v := config.NewViper()
	v.Set(config.CfgConfigFile, path)
	cfg, err := config.Load(v, "in", "out")
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Solutions)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, []search.Strategy{search.StrategyUCS, search.StrategyAStarNaive}, cfg.Strategies)
	assert.Equal(t, heuristic.Kinds(), cfg.Heuristics)
	assert.Equal(t, 50, cfg.MaxDepth)
	assert.Equal(t, config.LogFormatJSON, cfg.LogFormat)
	assert.Equal(t, "summary.yaml", cfg.SummaryFile)
}

func TestLoad_MissingFile(t *testing.T) {
	v := config.NewViper()
	v.Set(config.CfgConfigFile, filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := config.Load(v, "in", "out")
	assert.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("BLOCKSTACK_SEARCH_TIMEOUT", "2s")
	t.Setenv("BLOCKSTACK_SEARCH_STRATEGIES", "dfs,iddfs")

	cfg, err := config.Load(config.NewViper(), "in", "out")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, []search.Strategy{search.StrategyDFS, search.StrategyIDDFS}, cfg.Strategies)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]struct {
		key   string
		value any
	}{
		"unknown strategy":  {config.CfgStrategies, []string{"greedy"}},
		"unknown heuristic": {config.CfgHeuristics, []string{"manhattan"}},
		"zero solutions":    {config.CfgSolutions, 0},
		"negative timeout":  {config.CfgTimeout, "-1s"},
		"zero depth":        {config.CfgMaxDepth, 0},
		"zero parallel":     {config.CfgParallel, 0},
		"bad level":         {config.CfgLogLevel, "loud"},
		"bad format":        {config.CfgLogFormat, "xml"},
		"no strategies":     {config.CfgStrategies, []string{}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			v := config.NewViper()
			v.Set(tc.key, tc.value)
			_, err := config.Load(v, "in", "out")
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig, "directories are required")

	cfg.InputDir, cfg.OutputDir = "in", "out"
	require.NoError(t, cfg.Validate())

	cfg.Heuristics = nil
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig, "A* needs a heuristic")

	cfg.Strategies = []search.Strategy{search.StrategyBFS}
	assert.NoError(t, cfg.Validate())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.LogFormat = config.LogFormatJSON
	cfg.LogLevel = slog.LevelWarn

	log := cfg.NewLogger(&buf)
	log.Info("dropped")
	log.Warn("kept", slog.String("file", "a.txt"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "a.txt", rec["file"])
}

func TestNewLogger_AutoFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.LogFormat = config.LogFormatAuto

	// a buffer is not a terminal
	cfg.NewLogger(&buf).Info("hello")
	assert.True(t, json.Valid(buf.Bytes()), buf.String())
}
