package Trees

import (
	"fmt"
	"strings"
)

// The validators recompute each structural invariant from scratch and
// return a CorruptError naming the first violated rule. They hold read-only
// access for the duration of the call.

// ValidateLinks checks the adjacency invariant: the root has no parent and
// every child points back at the node owning its slot. The other validators
// rely on sane links, so run this one first. Recursive.
func ValidateLinks[K any, H comparable, A Accessor[H, K]](a A, root H) error {
	if a.IsNil(root) {
		return nil
	}
	if !a.IsNil(a.Parent(root)) {
		return CorruptError{"adjacency", fmt.Sprintf("root %v has a parent", a.Key(root))}
	}
	return checkLinks[K](a, root)
}

func checkLinks[K any, H comparable, A Accessor[H, K]](a A, n H) error {
	if l := a.Left(n); !a.IsNil(l) {
		if a.Parent(l) != n {
			return CorruptError{"adjacency", fmt.Sprintf("left child %v does not point back at %v", a.Key(l), a.Key(n))}
		}
		if err := checkLinks[K](a, l); err != nil {
			return err
		}
	}
	if r := a.Right(n); !a.IsNil(r) {
		if a.Parent(r) != n {
			return CorruptError{"adjacency", fmt.Sprintf("right child %v does not point back at %v", a.Key(r), a.Key(n))}
		}
		if err := checkLinks[K](a, r); err != nil {
			return err
		}
	}
	return nil
}

// ValidateOrder checks that the in-order sequence is strictly ascending
// under cmp, which covers both the search-order invariant and key
// uniqueness. Requires sane links.
func ValidateOrder[K any, H comparable, A Accessor[H, K]](a A, root H, cmp func(K, K) int) error {
	var err error
	var prev K
	first := true
	Walk(a, root, func(n H) bool {
		k := a.Key(n)
		if !first && cmp(prev, k) >= 0 {
			err = CorruptError{"order", fmt.Sprintf("%v not greater than %v in in-order sequence", k, prev)}
			return false
		}
		prev, first = k, false
		return true
	})
	return err
}

// ValidateHeights recomputes every height bottom-up, comparing against the
// stored values and checking the balance factors stay within one. Recursive.
func ValidateHeights[K any, H comparable, A HeightAccessor[H, K]](a A, root H) error {
	_, err := checkHeight[K](a, root)
	return err
}

func checkHeight[K any, H comparable, A HeightAccessor[H, K]](a A, n H) (int32, error) {
	if a.IsNil(n) {
		return 0, nil
	}
	lh, err := checkHeight[K](a, a.Left(n))
	if err != nil {
		return 0, err
	}
	rh, err := checkHeight[K](a, a.Right(n))
	if err != nil {
		return 0, err
	}
	h := lh + 1
	if rh > lh {
		h = rh + 1
	}
	if got := a.Height(n); got != h {
		return 0, CorruptError{"height", fmt.Sprintf("node %v stores height %d, recomputed %d", a.Key(n), got, h)}
	}
	if d := lh - rh; d < -1 || d > 1 {
		return 0, CorruptError{"balance", fmt.Sprintf("node %v has balance factor %d", a.Key(n), lh-rh)}
	}
	return h, nil
}

// ValidateColors checks the Red-Black rules: no red node has a red child
// and both subtrees of every node have the same black-height, counting nil
// as one. Recursive.
func ValidateColors[K any, H comparable, A ColorAccessor[H, K]](a A, root H) error {
	_, err := checkBlack[K](a, root)
	return err
}

func checkBlack[K any, H comparable, A ColorAccessor[H, K]](a A, n H) (int32, error) {
	if a.IsNil(n) {
		return 1, nil
	}
	l, r := a.Left(n), a.Right(n)
	if a.Color(n) == Red && (a.Color(l) == Red || a.Color(r) == Red) {
		return 0, CorruptError{"color", fmt.Sprintf("red node %v has a red child", a.Key(n))}
	}
	lb, err := checkBlack[K](a, l)
	if err != nil {
		return 0, err
	}
	rb, err := checkBlack[K](a, r)
	if err != nil {
		return 0, err
	}
	if lb != rb {
		return 0, CorruptError{"color", fmt.Sprintf("node %v has black-heights %d and %d", a.Key(n), lb, rb)}
	}
	if a.Color(n) == Black {
		lb++
	}
	return lb, nil
}

// Render the tree as a compact parenthesized string, nil subtrees as dots.
// tag, when non-nil, appends a per-node annotation right after the key; the
// output doubles as a reproduction seed in fuzzer failure reports.
func Render[K any, H comparable, A Accessor[H, K]](a A, root H, tag func(H) string) string {
	var sb strings.Builder
	var rec func(H)
	rec = func(n H) {
		if a.IsNil(n) {
			sb.WriteByte('.')
			return
		}
		sb.WriteByte('(')
		rec(a.Left(n))
		fmt.Fprintf(&sb, " %v", a.Key(n))
		if tag != nil {
			sb.WriteString(tag(n))
		}
		sb.WriteByte(' ')
		rec(a.Right(n))
		sb.WriteByte(')')
	}
	rec(root)
	return sb.String()
}
