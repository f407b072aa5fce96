package interval

import (
	"errors"
	"fmt"
)

// ErrTreeInvalid is wrapped by every Validate failure.
var ErrTreeInvalid = errors.New("interval tree invalid")

// Validate audits the whole tree against the red-black properties and the
// max-end augmentation, reporting the first inconsistency found. It is a
// correctness oracle for tests, not a production path.
func (t *Tree[T]) Validate() error {
	if t.root != t.sentinel && t.root.c != black {
		return fmt.Errorf("root %v is red: %w", t.root.run, ErrTreeInvalid)
	}

	_, _, count, err := t.audit(t.root)
	if err != nil {
		return err
	}

	if count != t.size {
		return fmt.Errorf("tree holds %d runs but size is %d: %w", count, t.size, ErrTreeInvalid)
	}
	return nil
}

// audit returns the black-height, true subtree max end, and node count of
// the subtree rooted at x.
func (t *Tree[T]) audit(x *node[T]) (blackHeight, maxEnd, count int, err error) {
	if x == t.sentinel {
		return 1, NegUnbounded, 0, nil
	}

	if x.c == red && (x.left.c == red || x.right.c == red) {
		return 0, 0, 0, fmt.Errorf("red node %v has a red child: %w", x.run, ErrTreeInvalid)
	}

	if x.left != t.sentinel && less(x.run, x.left.run) {
		return 0, 0, 0, fmt.Errorf("left child %v ordered after %v: %w", x.left.run, x.run, ErrTreeInvalid)
	}
	if x.right != t.sentinel && less(x.right.run, x.run) {
		return 0, 0, 0, fmt.Errorf("right child %v ordered before %v: %w", x.right.run, x.run, ErrTreeInvalid)
	}

	lh, lmax, lcount, err := t.audit(x.left)
	if err != nil {
		return 0, 0, 0, err
	}
	rh, rmax, rcount, err := t.audit(x.right)
	if err != nil {
		return 0, 0, 0, err
	}

	if lh != rh {
		return 0, 0, 0, fmt.Errorf("black-height mismatch at %v: left %d, right %d: %w", x.run, lh, rh, ErrTreeInvalid)
	}

	trueMax := x.run.End
	if lmax > trueMax {
		trueMax = lmax
	}
	if rmax > trueMax {
		trueMax = rmax
	}
	if x.maxEnd != trueMax {
		return 0, 0, 0, fmt.Errorf("stale maxEnd at %v: stored %d, true %d: %w", x.run, x.maxEnd, trueMax, ErrTreeInvalid)
	}

	height := lh
	if x.c == black {
		height++
	}
	return height, trueMax, lcount + rcount + 1, nil
}
