package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/blockstack/search"
)

const (
	headerRule  = "=========================="
	ruleUnit    = 16
	defaultRule = 1
)

// Renderer is implemented by states that draw themselves on several lines.
// Other states are written by their key.
type Renderer interface {
	Render() string
}

// stackCounter sizes the closing rule of a solution.
type stackCounter interface {
	NumStacks() int
}

// Writer formats sections, solutions and notes onto an io.Writer. The first
// write error is sticky: later calls are no-ops returning it.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Err returns the first write error, if any.
func (w *Writer) Err() error { return w.err }

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	if _, err := fmt.Fprintf(w.w, format, args...); err != nil {
		w.err = fmt.Errorf("report: write: %w", err)
	}
}

// Section starts a new section titled title.
func (w *Writer) Section(title string) error {
	w.printf("\n%s%s%s\n", headerRule, title, headerRule)

	return w.err
}

// Solution writes one reported path.
func (w *Writer) Solution(sol search.Solution) error {
	w.printf("Time to find solution: %.6fs\n", sol.Elapsed.Seconds())
	w.printf("Path length: %d\n", sol.Len())
	w.printf("Path cost: %d\n", sol.Cost)
	for _, st := range sol.Steps {
		w.printf("%d)\ng = %d\nh = %d\n%s", st.Index, st.G, st.H, render(st.State))
	}
	w.printf("%s\n", strings.Repeat("_", ruleUnit*stacks(sol.Final())))

	return w.err
}

// Note writes a free-form line, such as a timeout notice.
func (w *Writer) Note(msg string) error {
	w.printf("%s\n", strings.TrimRight(msg, "\n"))

	return w.err
}

func render(s search.State) string {
	out := ""
	if r, ok := s.(Renderer); ok {
		out = r.Render()
	} else if s != nil {
		out = s.Key()
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}

	return out
}

func stacks(s search.State) int {
	if c, ok := s.(stackCounter); ok && c.NumStacks() > 0 {
		return c.NumStacks()
	}

	return defaultRule
}
