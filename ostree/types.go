package ostree

import (
	"cmp"
	"errors"
)

// Sentinel errors returned by Tree operations.
var (
	// ErrDuplicateKey indicates that an equal key is already stored.
	ErrDuplicateKey = errors.New("ostree: duplicate key")

	// ErrKeyNotFound indicates that no stored key compares equal to the argument.
	ErrKeyNotFound = errors.New("ostree: key not found")

	// ErrEmptyTree indicates a Min/Max/ExtractMin call on an empty tree.
	ErrEmptyTree = errors.New("ostree: tree is empty")

	// ErrIndexOutOfRange indicates a Select index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("ostree: index out of range")
)

// Compare is a three-way comparator defining a total order over keys.
// It returns a negative number when a < b, zero when a == b and a positive
// number when a > b.
type Compare[K any] func(a, b K) int

// Ordered returns the natural comparator for an ordered type.
func Ordered[K cmp.Ordered]() Compare[K] {
	return func(a, b K) int { return cmp.Compare(a, b) }
}

// node is a single tree node; size counts the node and all its descendants.
type node[K any] struct {
	key         K
	left, right *node[K]
	size        int
}

// sizeOf returns the subtree size of n, treating nil as an empty subtree.
func sizeOf[K any](n *node[K]) int {
	if n == nil {
		return 0
	}

	return n.size
}
