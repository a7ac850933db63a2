package ostree

// Tree is a size-balanced binary search tree over unique keys of type K.
// The zero value is not usable; construct trees with New.
type Tree[K any] struct {
	root *node[K]
	cmp  Compare[K]
}

// New returns an empty tree ordered by cmp.
// It panics if cmp is nil, since no operation is meaningful without an order.
func New[K any](cmp Compare[K]) *Tree[K] {
	if cmp == nil {
		panic("ostree: nil comparator")
	}

	return &Tree[K]{cmp: cmp}
}

// Len returns the number of stored keys.
func (t *Tree[K]) Len() int { return sizeOf(t.root) }

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool { return t.root == nil }

// Contains reports whether a key equal to k is stored.
func (t *Tree[K]) Contains(k K) bool {
	_, ok := t.find(k)

	return ok
}

// Get returns the stored key equal to k, which may carry payload that the
// comparator ignores.
func (t *Tree[K]) Get(k K) (K, bool) {
	return t.find(k)
}

// Insert adds k to the tree. It returns ErrDuplicateKey, leaving the tree
// unchanged, if an equal key is already stored.
func (t *Tree[K]) Insert(k K) error {
	if t.Contains(k) {
		return ErrDuplicateKey
	}
	t.root = t.insert(t.root, k)

	return nil
}

// Delete removes the stored key equal to k. It returns ErrKeyNotFound if no
// such key exists.
func (t *Tree[K]) Delete(k K) error {
	if !t.Contains(k) {
		return ErrKeyNotFound
	}
	t.root = t.remove(t.root, k)

	return nil
}

// Min returns the smallest key without removing it.
func (t *Tree[K]) Min() (K, error) {
	var zero K
	if t.root == nil {
		return zero, ErrEmptyTree
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.key, nil
}

// Max returns the largest key without removing it.
func (t *Tree[K]) Max() (K, error) {
	var zero K
	if t.root == nil {
		return zero, ErrEmptyTree
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.key, nil
}

// ExtractMin removes and returns the smallest key.
func (t *Tree[K]) ExtractMin() (K, error) {
	var zero K
	if t.root == nil {
		return zero, ErrEmptyTree
	}
	var m *node[K]
	t.root, m = removeMin(t.root)

	return m.key, nil
}

// Select returns the i-th smallest key, counting from zero.
func (t *Tree[K]) Select(i int) (K, error) {
	var zero K
	if i < 0 || i >= t.Len() {
		return zero, ErrIndexOutOfRange
	}
	n := t.root
	for n != nil {
		ls := sizeOf(n.left)
		switch {
		case i < ls:
			n = n.left
		case i == ls:
			return n.key, nil
		default:
			i -= ls + 1
			n = n.right
		}
	}

	// unreachable while sizes are consistent
	return zero, ErrIndexOutOfRange
}

// Rank returns the number of stored keys strictly smaller than k.
// k itself need not be stored.
func (t *Tree[K]) Rank(k K) int {
	r := 0
	n := t.root
	for n != nil {
		if t.cmp(k, n.key) <= 0 {
			n = n.left
			continue
		}
		r += sizeOf(n.left) + 1
		n = n.right
	}

	return r
}

// Ascend calls fn for every key in ascending order until fn returns false.
func (t *Tree[K]) Ascend(fn func(k K) bool) {
	ascend(t.root, fn)
}

func ascend[K any](n *node[K], fn func(k K) bool) bool {
	if n == nil {
		return true
	}
	if !ascend(n.left, fn) {
		return false
	}
	if !fn(n.key) {
		return false
	}

	return ascend(n.right, fn)
}

// find walks from the root looking for a key equal to k.
func (t *Tree[K]) find(k K) (K, bool) {
	n := t.root
	for n != nil {
		c := t.cmp(k, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.key, true
		}
	}
	var zero K

	return zero, false
}

// insert places k below n; k must not already be present.
func (t *Tree[K]) insert(n *node[K], k K) *node[K] {
	if n == nil {
		return &node[K]{key: k, size: 1}
	}
	n.size++
	if t.cmp(k, n.key) < 0 {
		n.left = t.insert(n.left, k)

		return maintain(n, false)
	}
	n.right = t.insert(n.right, k)

	return maintain(n, true)
}

// remove deletes k from the subtree rooted at n; k must be present.
func (t *Tree[K]) remove(n *node[K], k K) *node[K] {
	c := t.cmp(k, n.key)
	switch {
	case c < 0:
		n.left = t.remove(n.left, k)
		n.size--

		return maintain(n, true)
	case c > 0:
		n.right = t.remove(n.right, k)
		n.size--

		return maintain(n, false)
	}

	// n holds k
	if n.left == nil {
		return n.right
	}
	if n.right == nil {
		return n.left
	}
	var succ *node[K]
	n.right, succ = removeMin(n.right)
	n.key = succ.key
	n.size--

	return maintain(n, false)
}

// removeMin detaches the leftmost node of the subtree rooted at n and
// returns the new subtree root together with the detached node.
func removeMin[K any](n *node[K]) (*node[K], *node[K]) {
	if n.left == nil {
		rest := n.right
		n.right = nil
		n.size = 1

		return rest, n
	}
	var m *node[K]
	n.left, m = removeMin(n.left)
	n.size--

	return maintain(n, true), m
}

func rotateRight[K any](n *node[K]) *node[K] {
	l := n.left
	n.left = l.right
	l.right = n
	l.size = n.size
	n.size = sizeOf(n.left) + sizeOf(n.right) + 1

	return l
}

func rotateLeft[K any](n *node[K]) *node[K] {
	r := n.right
	n.right = r.left
	r.left = n
	r.size = n.size
	n.size = sizeOf(n.left) + sizeOf(n.right) + 1

	return r
}

// maintain restores the size-balance invariant at n after one of its
// subtrees changed by a single key. rightHeavy selects which side may now
// outweigh the other: true checks the right child's children against the
// left subtree, false the mirror case.
func maintain[K any](n *node[K], rightHeavy bool) *node[K] {
	if n == nil {
		return nil
	}
	if rightHeavy {
		if n.right == nil {
			return n
		}
		switch {
		case sizeOf(n.right.right) > sizeOf(n.left):
			n = rotateLeft(n)
		case sizeOf(n.right.left) > sizeOf(n.left):
			n.right = rotateRight(n.right)
			n = rotateLeft(n)
		default:
			return n
		}
	} else {
		if n.left == nil {
			return n
		}
		switch {
		case sizeOf(n.left.left) > sizeOf(n.right):
			n = rotateRight(n)
		case sizeOf(n.left.right) > sizeOf(n.right):
			n.left = rotateLeft(n.left)
			n = rotateRight(n)
		default:
			return n
		}
	}
	n.left = maintain(n.left, false)
	n.right = maintain(n.right, true)
	n = maintain(n, false)

	return maintain(n, true)
}
