// Package ostree implements an ordered, order-statistic binary search tree
// holding unique comparable keys.
//
// The tree is a size-balanced tree (SBT): every node records the size of its
// subtree, and the balance invariant requires each child subtree to be at
// least as large as either child of its sibling. The invariant keeps the
// height logarithmic, and the size fields give order statistics for free.
//
// What:
//
//   - Insert / Delete by key under a caller-supplied total order
//   - Min / Max / ExtractMin
//   - Select(i) (i-th smallest key) and Rank(k) (number of smaller keys)
//   - Ascend for in-order iteration
//
// Why:
//
//   - Backs priority queues that need arbitrary-key deletion (decrease-key)
//     in addition to minimum extraction, which container/heap cannot provide
//     without tracking element indices.
//
// Complexity:
//
//   - Insert, Delete, Min, Max, ExtractMin, Select, Rank, Contains: O(log n)
//   - Ascend: O(n)
//   - Memory: O(n)
//
// Errors:
//
//   - ErrDuplicateKey     if Insert is given a key equal to a stored one.
//   - ErrKeyNotFound      if Delete is given a key that is not stored.
//   - ErrEmptyTree        if Min, Max or ExtractMin is called on an empty tree.
//   - ErrIndexOutOfRange  if Select is called with i outside [0, Len()).
//
// Keys are compared only through the comparator: two keys for which it
// returns 0 are the same key, and a key must be deleted with a value that
// compares equal under the comparator used when it was inserted.
//
// A Tree is not safe for concurrent mutation.
package ostree
