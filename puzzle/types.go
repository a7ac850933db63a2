package puzzle

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for puzzle parsing and validation.
var (
	// ErrNoStacks is returned when a description contains no stack lines.
	ErrNoStacks = errors.New("puzzle: state has no stacks")

	// ErrMalformedBlock describes a block record that could not be parsed,
	// including one with a weight below 1 or a negative capacity. Every move
	// costs at least 1, which the move-counting heuristics rely on. It is passed to the WithOnMalformed callback, never returned by Parse.
	ErrMalformedBlock = errors.New("puzzle: malformed block record")
)

// emptyStack is the textual marker of a stack without blocks.
const emptyStack = "_"

// Block is a single named block.
type Block struct {
	Name     string
	Weight   int64
	Capacity int64 // maximum total weight that may rest on this block
}

// String renders the block as [name/weight/capacity].
func (b Block) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(b.Name)
	sb.WriteByte('/')
	sb.WriteString(strconv.FormatInt(b.Weight, 10))
	sb.WriteByte('/')
	sb.WriteString(strconv.FormatInt(b.Capacity, 10))
	sb.WriteByte(']')

	return sb.String()
}

// Stack is a sequence of blocks, bottom first.
type Stack []Block

// Valid reports whether no block in the stack carries more than its capacity.
func (s Stack) Valid() bool {
	var load int64
	for i := len(s) - 1; i >= 0; i-- {
		if load > s[i].Capacity {
			return false
		}
		load += s[i].Weight
	}

	return true
}

// key is the canonical form of the stack: block names each followed by a
// comma, or "_" when empty.
func (s Stack) key() string {
	if len(s) == 0 {
		return emptyStack
	}
	var sb strings.Builder
	for _, b := range s {
		sb.WriteString(b.Name)
		sb.WriteByte(',')
	}

	return sb.String()
}

// ParseOption configures Parse.
type ParseOption func(*parseOptions)

type parseOptions struct {
	onMalformed func(line int, record string, err error)
}

// WithOnMalformed registers a callback invoked for every skipped block
// record with its 1-based line number, the raw record and the cause
// (wrapping ErrMalformedBlock).
func WithOnMalformed(fn func(line int, record string, err error)) ParseOption {
	return func(o *parseOptions) {
		if fn != nil {
			o.onMalformed = fn
		}
	}
}
