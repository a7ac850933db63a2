package runner

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Summary is the machine-readable account of one solver run.
type Summary struct {
	RunID     string        `yaml:"run_id"`
	StartedAt time.Time     `yaml:"started_at"`
	Elapsed   string        `yaml:"elapsed"`
	Files     []FileSummary `yaml:"files"`
}

// FileSummary describes one input file.
type FileSummary struct {
	Input  string       `yaml:"input"`
	Output string       `yaml:"output,omitempty"`
	Stacks int          `yaml:"stacks"`
	Blocks int          `yaml:"blocks"`
	Error  string       `yaml:"error,omitempty"`
	Runs   []RunSummary `yaml:"runs,omitempty"`
}

// RunSummary describes one strategy run on one file.
type RunSummary struct {
	Strategy    string  `yaml:"strategy"`
	Heuristic   string  `yaml:"heuristic"`
	Outcome     Outcome `yaml:"outcome"`
	Costs       []int64 `yaml:"costs,flow"`
	Expanded    int     `yaml:"expanded"`
	Generated   int     `yaml:"generated"`
	MaxFrontier int     `yaml:"max_frontier"`
	Elapsed     string  `yaml:"elapsed"`
}

// WriteFile stores s as YAML at path.
func (s *Summary) WriteFile(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("runner: encode summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("runner: write summary %s: %w", path, err)
	}

	return nil
}
