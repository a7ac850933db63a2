package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/blockstack/search"
)

// State is one configuration of all stacks. States are immutable once
// constructed; Successors returns fresh states.
type State struct {
	stacks []Stack
	key    string
}

// NewState builds a state from the given stacks. The stacks are copied.
func NewState(stacks ...Stack) *State {
	cp := make([]Stack, len(stacks))
	for i, s := range stacks {
		cp[i] = append(Stack(nil), s...)
	}

	return newState(cp)
}

// newState takes ownership of stacks and computes the canonical key.
func newState(stacks []Stack) *State {
	var sb strings.Builder
	for _, s := range stacks {
		sb.WriteString(s.key())
		sb.WriteByte('|')
	}

	return &State{stacks: stacks, key: sb.String()}
}

// Parse reads a state description, one stack per line. Blank lines are
// ignored. It returns ErrNoStacks if no stack line is present.
func Parse(r io.Reader, opts ...ParseOption) (*State, error) {
	o := parseOptions{onMalformed: func(int, string, error) {}}
	for _, opt := range opts {
		opt(&o)
	}

	var stacks []Stack
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		stacks = append(stacks, parseStack(line, lineNo, o.onMalformed))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("puzzle: read description: %w", err)
	}
	if len(stacks) == 0 {
		return nil, ErrNoStacks
	}

	return newState(stacks), nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string, opts ...ParseOption) (*State, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: open %q: %w", path, err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// parseStack decodes one stack line, skipping malformed block records.
func parseStack(line string, lineNo int, onMalformed func(int, string, error)) Stack {
	if line == emptyStack {
		return Stack{}
	}
	records := strings.Split(line, "|")
	s := make(Stack, 0, len(records))
	for _, rec := range records {
		b, err := parseBlock(rec)
		if err != nil {
			onMalformed(lineNo, rec, err)
			continue
		}
		s = append(s, b)
	}

	return s
}

func parseBlock(rec string) (Block, error) {
	fields := strings.Split(rec, ",")
	if len(fields) != 3 {
		return Block{}, fmt.Errorf("%w: want name,weight,capacity, got %d fields", ErrMalformedBlock, len(fields))
	}
	name := strings.TrimSpace(fields[0])
	if name == "" {
		return Block{}, fmt.Errorf("%w: empty block name", ErrMalformedBlock)
	}
	w, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
	if err != nil {
		return Block{}, fmt.Errorf("%w: weight: %v", ErrMalformedBlock, err)
	}
	c, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	if err != nil {
		return Block{}, fmt.Errorf("%w: capacity: %v", ErrMalformedBlock, err)
	}
	if w <= 0 {
		return Block{}, fmt.Errorf("%w: weight must be positive", ErrMalformedBlock)
	}
	if c < 0 {
		return Block{}, fmt.Errorf("%w: negative capacity", ErrMalformedBlock)
	}

	return Block{Name: name, Weight: w, Capacity: c}, nil
}

// Key returns the canonical string of the state: each stack's block names
// (comma-terminated, or "_" when empty) followed by '|'. Two states are equal
// iff their keys are equal.
func (s *State) Key() string { return s.key }

// String implements fmt.Stringer with the canonical key.
func (s *State) String() string { return s.key }

// NumStacks returns the number of stacks.
func (s *State) NumStacks() int { return len(s.stacks) }

// Height returns the number of blocks in stack i.
func (s *State) Height(i int) int { return len(s.stacks[i]) }

// Weight returns the weight of block j (0 = bottom) in stack i.
func (s *State) Weight(i, j int) int64 { return s.stacks[i][j].Weight }

// Stack returns a copy of stack i.
func (s *State) Stack(i int) Stack { return append(Stack(nil), s.stacks[i]...) }

// TotalBlocks returns the number of blocks across all stacks.
func (s *State) TotalBlocks() int {
	total := 0
	for _, st := range s.stacks {
		total += len(st)
	}

	return total
}

// IsValid reports whether every stack respects its blocks' capacities.
func (s *State) IsValid() bool {
	for _, st := range s.stacks {
		if !st.Valid() {
			return false
		}
	}

	return true
}

// IsGoal reports whether every stack height lies in {n, n+1} where
// n = TotalBlocks() / NumStacks().
func (s *State) IsGoal() bool {
	if len(s.stacks) == 0 {
		return false
	}
	n := s.TotalBlocks() / len(s.stacks)
	for _, st := range s.stacks {
		if h := len(st); h < n || h > n+1 {
			return false
		}
	}

	return true
}

// Successors moves the top block of every non-empty stack i onto every
// other stack j (i, j ascending), keeping only moves whose destination stays
// valid. The cost of a move is the weight of the moved block.
func (s *State) Successors() []search.Transition {
	var out []search.Transition
	for i, src := range s.stacks {
		if len(src) == 0 {
			continue
		}
		top := src[len(src)-1]
		for j, dst := range s.stacks {
			if j == i {
				continue
			}
			moved := append(append(make(Stack, 0, len(dst)+1), dst...), top)
			if !moved.Valid() {
				continue
			}
			next := make([]Stack, len(s.stacks))
			copy(next, s.stacks)
			next[i] = slices.Clip(src[:len(src)-1])
			next[j] = moved
			out = append(out, search.Transition{State: newState(next), Cost: top.Weight})
		}
	}

	return out
}

// Render draws the stacks side by side, top row first, each cell padded to
// the widest block and terminated by a tab.
func (s *State) Render() string {
	maxHeight, width := 0, 0
	for _, st := range s.stacks {
		maxHeight = max(maxHeight, len(st))
		for _, b := range st {
			width = max(width, len(b.String()))
		}
	}

	var sb strings.Builder
	for h := maxHeight - 1; h >= 0; h-- {
		for _, st := range s.stacks {
			cell := ""
			if len(st) > h {
				cell = st[h].String()
			}
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteByte('\t')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
