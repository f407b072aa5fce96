package interval

// color is the red-black node color.
type color uint8

const (
	black color = iota
	red
)

// node wraps one run with red-black bookkeeping and the max-end augmentation.
type node[T any] struct {
	run    Run[T]
	maxEnd int
	c      color

	parent, left, right *node[T]
}

// Tree is a self-balancing interval tree: a red-black BST keyed by
// (Start, End) where every node also tracks the maximum End in its subtree.
// The augmentation prunes overlap and containment queries to O(log n + k).
//
// The implementation follows the textbook red-black procedures with a shared
// sentinel standing in for nil leaves and the root's parent.
//
// A Tree is not safe for concurrent use.
type Tree[T any] struct {
	root     *node[T]
	sentinel *node[T]
	size     int
	equals   func(a, b T) bool
}

// TreeOption configures a Tree during creation.
type TreeOption[T any] func(*Tree[T])

// WithEquals sets the data-equality function used by exact-match Delete.
// The default compares with ==, which requires a comparable data type.
func WithEquals[T any](eq func(a, b T) bool) TreeOption[T] {
	return func(t *Tree[T]) {
		if eq != nil {
			t.equals = eq
		}
	}
}

// NewTree creates an empty interval tree.
func NewTree[T any](opts ...TreeOption[T]) *Tree[T] {
	sentinel := &node[T]{c: black, maxEnd: NegUnbounded}
	sentinel.parent = sentinel
	sentinel.left = sentinel
	sentinel.right = sentinel

	t := &Tree[T]{
		root:     sentinel,
		sentinel: sentinel,
		equals:   func(a, b T) bool { return any(a) == any(b) },
	}

	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Len returns the number of runs in the tree.
func (t *Tree[T]) Len() int {
	return t.size
}

// less orders runs by Start, ties broken by End.
func less[T any](a, b Run[T]) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.End < b.End
}

// Insert adds a run to the tree. Degenerate runs (Start >= End) are ignored:
// they span no characters and must not persist.
func (t *Tree[T]) Insert(r Run[T]) {
	if r.IsEmpty() {
		return
	}

	z := &node[T]{
		run:    r,
		maxEnd: r.End,
		c:      red,
		parent: t.sentinel,
		left:   t.sentinel,
		right:  t.sentinel,
	}

	y := t.sentinel
	x := t.root
	for x != t.sentinel {
		y = x
		if less(z.run, x.run) {
			x = x.left
		} else {
			x = x.right
		}
	}

	z.parent = y
	if y == t.sentinel {
		t.root = z
	} else if less(z.run, y.run) {
		y.left = z
	} else {
		y.right = z
	}

	t.updateMax(y)
	t.insertFixup(z)
	t.size++
}

// insertFixup restores the red-black properties after an insertion using the
// canonical red-uncle / triangle / line cases.
func (t *Tree[T]) insertFixup(z *node[T]) {
	for z.parent.c == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if y.c == red {
				z.parent.c = black
				y.c = black
				z.parent.parent.c = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.rotateLeft(z)
				}
				z.parent.c = black
				z.parent.parent.c = red
				t.rotateRight(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if y.c == red {
				z.parent.c = black
				y.c = black
				z.parent.parent.c = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.c = black
				z.parent.parent.c = red
				t.rotateLeft(z.parent.parent)
			}
		}
	}
	t.root.c = black
}

// Delete removes the run matching (Start, End, Data) exactly, returning true
// if a node was removed.
func (t *Tree[T]) Delete(r Run[T]) bool {
	z := t.findExact(t.root, r)
	if z == nil {
		return false
	}

	y := z
	yColor := y.c

	var x *node[T]
	switch {
	case z.left == t.sentinel:
		x = z.right
		t.transplant(z, z.right)
	case z.right == t.sentinel:
		x = z.left
		t.transplant(z, z.left)
	default:
		y = t.minimum(z.right)
		yColor = y.c
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.c = z.c
	}

	// Refresh the augmentation bottom-up from the splice point; the chain
	// through x's ancestors passes every node whose subtree changed.
	t.updateMax(x.parent)

	if yColor == black {
		t.deleteFixup(x)
	}

	// The sentinel's parent may have been scribbled on during splicing.
	t.sentinel.parent = t.sentinel

	t.size--
	return true
}

// deleteFixup restores black-height balance after a deletion using the
// canonical sibling-recoloring and rotation cases.
func (t *Tree[T]) deleteFixup(x *node[T]) {
	for x != t.root && x.c == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.c == red {
				w.c = black
				x.parent.c = red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w.left.c == black && w.right.c == black {
				w.c = red
				x = x.parent
			} else {
				if w.right.c == black {
					w.left.c = black
					w.c = red
					t.rotateRight(w)
					w = x.parent.right
				}
				w.c = x.parent.c
				x.parent.c = black
				w.right.c = black
				t.rotateLeft(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.c == red {
				w.c = black
				x.parent.c = red
				t.rotateRight(x.parent)
				w = x.parent.left
			}
			if w.right.c == black && w.left.c == black {
				w.c = red
				x = x.parent
			} else {
				if w.left.c == black {
					w.right.c = black
					w.c = red
					t.rotateLeft(w)
					w = x.parent.left
				}
				w.c = x.parent.c
				x.parent.c = black
				w.left.c = black
				t.rotateRight(x.parent)
				x = t.root
			}
		}
	}
	x.c = black
}

// transplant replaces the subtree rooted at u with the subtree rooted at v.
func (t *Tree[T]) transplant(u, v *node[T]) {
	if u.parent == t.sentinel {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

// minimum returns the leftmost node of the subtree rooted at x.
func (t *Tree[T]) minimum(x *node[T]) *node[T] {
	for x.left != t.sentinel {
		x = x.left
	}
	return x
}

// recompute refreshes a single node's maxEnd from its run and children.
func (t *Tree[T]) recompute(x *node[T]) {
	m := x.run.End
	if x.left != t.sentinel && x.left.maxEnd > m {
		m = x.left.maxEnd
	}
	if x.right != t.sentinel && x.right.maxEnd > m {
		m = x.right.maxEnd
	}
	x.maxEnd = m
}

// updateMax refreshes maxEnd for a node and every ancestor up to the root.
// Deletion can leave two distinct nodes on the chain stale (the splice point
// and the successor's new position), so the walk never stops early.
func (t *Tree[T]) updateMax(x *node[T]) {
	for x != t.sentinel {
		t.recompute(x)
		x = x.parent
	}
}

// rotateLeft moves x below its right child. Rotation is the unit of
// re-augmentation: both rotated subtree roots refresh maxEnd before the
// structure settles.
func (t *Tree[T]) rotateLeft(x *node[T]) {
	y := x.right
	x.right = y.left
	if y.left != t.sentinel {
		y.left.parent = x
	}

	y.parent = x.parent
	if x.parent == t.sentinel {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}

	y.left = x
	x.parent = y

	t.recompute(x)
	t.recompute(y)
}

// rotateRight moves x below its left child.
func (t *Tree[T]) rotateRight(x *node[T]) {
	y := x.left
	x.left = y.right
	if y.right != t.sentinel {
		y.right.parent = x
	}

	y.parent = x.parent
	if x.parent == t.sentinel {
		t.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}

	y.right = x
	x.parent = y

	t.recompute(x)
	t.recompute(y)
}

// findExact locates the node matching (Start, End, Data) exactly. Nodes with
// an equal (Start, End) key may sit on either side after rebalancing, so both
// subtrees are searched on a key tie.
func (t *Tree[T]) findExact(x *node[T], r Run[T]) *node[T] {
	if x == t.sentinel {
		return nil
	}
	if r.Start == x.run.Start && r.End == x.run.End && t.equals(r.Data, x.run.Data) {
		return x
	}
	if less(r, x.run) {
		return t.findExact(x.left, r)
	}
	if less(x.run, r) {
		return t.findExact(x.right, r)
	}
	if n := t.findExact(x.left, r); n != nil {
		return n
	}
	return t.findExact(x.right, r)
}

// FindOverlapping returns, in ascending order, every run sharing at least
// one character with [start, end). Runs that only touch a boundary are not
// included.
func (t *Tree[T]) FindOverlapping(start, end int) []Run[T] {
	var out []Run[T]
	t.overlapping(t.root, start, end, &out)
	return out
}

func (t *Tree[T]) overlapping(x *node[T], start, end int, out *[]Run[T]) {
	// No run in this subtree ends past the query start.
	if x == t.sentinel || x.maxEnd <= start {
		return
	}

	t.overlapping(x.left, start, end, out)

	if x.run.Start < end && start < x.run.End {
		*out = append(*out, x.run)
	}

	// Right-subtree starts are >= this node's start.
	if x.run.Start < end {
		t.overlapping(x.right, start, end, out)
	}
}

// FindTouching returns, in ascending order, every run overlapping [start, end]
// with closed boundaries: runs meeting the query exactly at an endpoint are
// included. Style managers use this to detect adjacent runs for merging.
func (t *Tree[T]) FindTouching(start, end int) []Run[T] {
	var out []Run[T]
	t.touching(t.root, start, end, &out)
	return out
}

func (t *Tree[T]) touching(x *node[T], start, end int, out *[]Run[T]) {
	if x == t.sentinel || x.maxEnd < start {
		return
	}

	t.touching(x.left, start, end, out)

	if x.run.Start <= end && start <= x.run.End {
		*out = append(*out, x.run)
	}

	if x.run.Start <= end {
		t.touching(x.right, start, end, out)
	}
}

// FindContaining returns every run containing the point: Start <= p < End.
func (t *Tree[T]) FindContaining(p int) []Run[T] {
	return t.FindOverlapping(p, p+1)
}

// FindInRange returns every run with Start >= lo and End <= hi, in ascending
// order. Pass Unbounded for hi to collect every run starting at or after lo.
func (t *Tree[T]) FindInRange(lo, hi int) []Run[T] {
	var out []Run[T]
	t.inRange(t.root, lo, hi, &out)
	return out
}

func (t *Tree[T]) inRange(x *node[T], lo, hi int, out *[]Run[T]) {
	if x == t.sentinel {
		return
	}

	// Left-subtree starts are <= this node's start.
	if x.run.Start >= lo {
		t.inRange(x.left, lo, hi, out)
	}

	if x.run.Start >= lo && x.run.End <= hi {
		*out = append(*out, x.run)
	}

	// Right-subtree starts are >= this node's start; a run starting past hi
	// cannot end at or before it.
	if x.run.Start <= hi {
		t.inRange(x.right, lo, hi, out)
	}
}

// All returns every run in ascending order.
func (t *Tree[T]) All() []Run[T] {
	out := make([]Run[T], 0, t.size)
	t.inOrder(t.root, &out)
	return out
}

func (t *Tree[T]) inOrder(x *node[T], out *[]Run[T]) {
	if x == t.sentinel {
		return
	}
	t.inOrder(x.left, out)
	*out = append(*out, x.run)
	t.inOrder(x.right, out)
}
