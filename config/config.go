package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/blockstack/heuristic"
	"github.com/katalvlaran/blockstack/search"
)

const (
	CfgConfigFile = "config"

	CfgSolutions  = "search.solutions"
	CfgTimeout    = "search.timeout"
	CfgStrategies = "search.strategies"
	CfgHeuristics = "search.heuristics"
	CfgMaxDepth   = "search.max_depth"

	CfgParallel = "run.parallel"

	CfgLogLevel  = "log.level"
	CfgLogFormat = "log.format"

	CfgMetricsFile = "metrics.file"
	CfgSummaryFile = "summary.file"

	envPrefix = "BLOCKSTACK"
)

// Log formats accepted by CfgLogFormat. LogFormatAuto picks text on a
// terminal and JSON otherwise.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
	LogFormatAuto = "auto"
)

var validate = validator.New()

// ErrInvalidConfig is returned when a loaded setting is out of range or
// cannot be parsed.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved configuration of one solver run.
type Config struct {
	InputDir  string `validate:"required"`
	OutputDir string `validate:"required"`

	Solutions  int               `validate:"min=1"`
	Timeout    time.Duration     `validate:"gt=0"`
	Strategies []search.Strategy `validate:"min=1"`
	Heuristics []heuristic.Kind
	MaxDepth   int `validate:"min=1"`

	Parallel int `validate:"min=1"`

	LogLevel  slog.Level
	LogFormat string `validate:"oneof=text json auto"`

	MetricsFile string
	SummaryFile string
}

// Default returns a Config with:
//   - one solution per strategy
//   - a 10 second timeout per strategy
//   - every strategy and every heuristic
//   - search.DefaultMaxDepth
//   - one file at a time
//   - info-level text logging
func Default() Config {
	return Config{
		Solutions:  1,
		Timeout:    10 * time.Second,
		Strategies: search.Strategies(),
		Heuristics: heuristic.Kinds(),
		MaxDepth:   search.DefaultMaxDepth,
		Parallel:   1,
		LogLevel:   slog.LevelInfo,
		LogFormat:  LogFormatText,
	}
}

func names[T fmt.Stringer](xs []T) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.String()
	}

	return out
}

// NewViper returns a viper instance with defaults and environment
// overrides configured.
func NewViper() *viper.Viper {
	d := Default()
	v := viper.New()
	v.SetDefault(CfgSolutions, d.Solutions)
	v.SetDefault(CfgTimeout, d.Timeout)
	v.SetDefault(CfgStrategies, names(d.Strategies))
	v.SetDefault(CfgHeuristics, names(d.Heuristics))
	v.SetDefault(CfgMaxDepth, d.MaxDepth)
	v.SetDefault(CfgParallel, d.Parallel)
	v.SetDefault(CfgLogLevel, d.LogLevel.String())
	v.SetDefault(CfgLogFormat, d.LogFormat)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// RegisterFlags registers the configuration flags with the provided command
// and binds them to v.
func RegisterFlags(cmd *cobra.Command, v *viper.Viper) {
	d := Default()
	if !cmd.Flags().Parsed() {
		cmd.Flags().String(CfgConfigFile, "", "YAML configuration file")

		cmd.Flags().Int(CfgSolutions, d.Solutions, "Number of solutions to report per strategy")
		cmd.Flags().Duration(CfgTimeout, d.Timeout, "Wall-clock limit of every strategy run")
		cmd.Flags().StringSlice(CfgStrategies, names(d.Strategies), "Strategies to run, in order")
		cmd.Flags().StringSlice(CfgHeuristics, names(d.Heuristics), "Heuristics used by the A* strategies")
		cmd.Flags().Int(CfgMaxDepth, d.MaxDepth, "Maximum depth of DFS and IDDFS")

		cmd.Flags().Int(CfgParallel, d.Parallel, "Number of input files solved concurrently")

		cmd.Flags().String(CfgLogLevel, d.LogLevel.String(), "Log level (debug, info, warn, error)")
		cmd.Flags().String(CfgLogFormat, d.LogFormat, "Log format (text, json, auto)")

		cmd.Flags().String(CfgMetricsFile, "", "Write Prometheus metrics to this file when done")
		cmd.Flags().String(CfgSummaryFile, "", "Write a YAML run summary to this file when done")
	}

	for _, k := range []string{
		CfgConfigFile,

		CfgSolutions,
		CfgTimeout,
		CfgStrategies,
		CfgHeuristics,
		CfgMaxDepth,

		CfgParallel,

		CfgLogLevel,
		CfgLogFormat,

		CfgMetricsFile,
		CfgSummaryFile,
	} {
		v.BindPFlag(k, cmd.Flags().Lookup(k)) // nolint: errcheck
	}
}

// Load resolves the configuration for the given directories from v, reading
// the YAML file named by CfgConfigFile first when one is set.
func Load(v *viper.Viper, inputDir, outputDir string) (*Config, error) {
	if path := v.GetString(CfgConfigFile); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{
		InputDir:    inputDir,
		OutputDir:   outputDir,
		Solutions:   v.GetInt(CfgSolutions),
		Timeout:     v.GetDuration(CfgTimeout),
		MaxDepth:    v.GetInt(CfgMaxDepth),
		Parallel:    v.GetInt(CfgParallel),
		LogFormat:   strings.ToLower(v.GetString(CfgLogFormat)),
		MetricsFile: v.GetString(CfgMetricsFile),
		SummaryFile: v.GetString(CfgSummaryFile),
	}

	for _, name := range list(v.GetStringSlice(CfgStrategies)) {
		s, err := search.ParseStrategy(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, CfgStrategies, err)
		}
		cfg.Strategies = append(cfg.Strategies, s)
	}
	for _, name := range list(v.GetStringSlice(CfgHeuristics)) {
		k, err := heuristic.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, CfgHeuristics, err)
		}
		cfg.Heuristics = append(cfg.Heuristics, k)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(CfgLogLevel))); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, CfgLogLevel, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// list splits comma-separated entries that arrive as a single string from
// the environment and drops blanks.
func list(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}

// Validate checks every setting and returns ErrInvalidConfig describing the
// violations.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for _, s := range c.Strategies {
		if s.Informed() && len(c.Heuristics) == 0 {
			return fmt.Errorf("%w: %s is empty but %s needs a heuristic", ErrInvalidConfig, CfgHeuristics, s)
		}
	}

	return nil
}

// NewLogger builds the process logger described by c, writing to w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	format := c.LogFormat
	if format == LogFormatAuto {
		format = LogFormatJSON
		if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			format = LogFormatText
		}
	}
	if format == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
