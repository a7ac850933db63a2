package heuristic

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for unrecognised names.
var ErrUnknownKind = errors.New("heuristic: unknown kind")

// Kind enumerates the available estimators.
type Kind int

const (
	Trivial Kind = iota
	Admissible1
	Admissible2
	Inadmissible
)

var kindNames = [...]string{
	Trivial:      "trivial",
	Admissible1:  "admissible-1",
	Admissible2:  "admissible-2",
	Inadmissible: "inadmissible",
}

var kindTitles = [...]string{
	Trivial:      "trivial heuristic",
	Admissible1:  "admissible heuristic 1",
	Admissible2:  "admissible heuristic 2",
	Inadmissible: "inadmissible heuristic",
}

// Kinds returns every Kind in report order.
func Kinds() []Kind { return []Kind{Trivial, Admissible1, Admissible2, Inadmissible} }

// ParseKind maps a name such as "admissible-2" to its Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func (k Kind) valid() bool { return k >= 0 && int(k) < len(kindNames) }

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("heuristic(%d)", int(k))
	}

	return kindNames[k]
}

// Title is the label used in report section headers.
func (k Kind) Title() string {
	if !k.valid() {
		return k.String()
	}

	return kindTitles[k]
}

// Layout is the read-only view of a state the estimators need.
type Layout interface {
	NumStacks() int
	Height(i int) int
	// Weight returns the weight of block j (0 = bottom) of stack i.
	Weight(i, j int) int64
	IsGoal() bool
}
