package Trees

// Search the tree from root for k under cmp (see cmp.Compare for the
// contract). On a hit the result carries the matching handle; on a miss it
// carries the hint: the last node visited and the child direction the key
// would occupy, so a following insert links in O(1).
// Time: O(D); Space: O(1)
func Search[K any, H comparable, A Accessor[H, K]](a A, root H, k K, cmp func(K, K) int) SearchResult[H] {
	var r SearchResult[H]
	r.Node, r.Hint = a.Nil(), a.Nil()
	for cur := root; !a.IsNil(cur); {
		if o := cmp(k, a.Key(cur)); o < 0 {
			r.Hint, r.Right = cur, false
			cur = a.Left(cur)
		} else if o > 0 {
			r.Hint, r.Right = cur, true
			cur = a.Right(cur)
		} else {
			r.Node = cur
			return r
		}
	}
	return r
}

// Minimum of the subtree rooted at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func Minimum[H comparable, A Topology[H]](a A, n H) H {
	for !a.IsNil(a.Left(n)) {
		n = a.Left(n)
	}
	return n
}

// Maximum of the subtree rooted at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func Maximum[H comparable, A Topology[H]](a A, n H) H {
	for !a.IsNil(a.Right(n)) {
		n = a.Right(n)
	}
	return n
}

// Successor of n in in-order: the minimum of the right subtree when there
// is one, otherwise the first ancestor reached from a left branch; nil when
// n holds the greatest key.
// Time: O(D); Space: O(1)
func Successor[H comparable, A Topology[H]](a A, n H) H {
	if r := a.Right(n); !a.IsNil(r) {
		return Minimum(a, r)
	}
	p := a.Parent(n)
	for !a.IsNil(p) && a.Right(p) == n {
		n, p = p, a.Parent(p)
	}
	return p
}

// Predecessor is the mirror of Successor.
// Time: O(D); Space: O(1)
func Predecessor[H comparable, A Topology[H]](a A, n H) H {
	if l := a.Left(n); !a.IsNil(l) {
		return Maximum(a, l)
	}
	p := a.Parent(n)
	for !a.IsNil(p) && a.Left(p) == n {
		n, p = p, a.Parent(p)
	}
	return p
}

// Walk the tree in-order, calling f on every handle until f returns false.
// Uses the parent back-references, so it allocates nothing and the tree
// mustn't be mutated while walking.
func Walk[H comparable, A Topology[H]](a A, root H, f func(H) bool) {
	if a.IsNil(root) {
		return
	}
	for n := Minimum(a, root); !a.IsNil(n); n = Successor(a, n) {
		if !f(n) {
			return
		}
	}
}

// Insert k into the tree. If the key is already present nothing is built
// and the existing handle is returned. Otherwise a node is built and linked
// as the hinted child of the hint node with its parent reference set, or
// becomes the root of an empty tree.
// Time: O(D)
func Insert[K any, H comparable, A Accessor[H, K]](a A, root H, k K, cmp func(K, K) int) InsertResult[H] {
	sr := Search(a, root, k, cmp)
	if !a.IsNil(sr.Node) {
		return InsertResult[H]{root, sr.Node, false}
	}
	n := a.Build(k)
	if a.IsNil(sr.Hint) {
		return InsertResult[H]{n, n, true}
	}
	if sr.Right {
		a.SetRight(sr.Hint, n)
	} else {
		a.SetLeft(sr.Hint, n)
	}
	a.SetParent(n, sr.Hint)
	return InsertResult[H]{root, n, true}
}

// shift replaces the subtree rooted at u with the one rooted at v in u's
// parent slot, updating v's parent back-reference when v is non-nil.
// Returns the tree root, changed when u was the root.
func shift[H comparable, A Topology[H]](a A, root, u, v H) H {
	if p := a.Parent(u); a.IsNil(p) {
		root = v
	} else if a.Left(p) == u {
		a.SetLeft(p, v)
	} else {
		a.SetRight(p, v)
	}
	if !a.IsNil(v) {
		a.SetParent(v, a.Parent(u))
	}
	return root
}

// Delete the node n from the tree. n mustn't be nil. The result's Anchor is
// the parent of the node that was physically displaced, which is where the
// balanced variants resume their repair walks; the plain tree ignores it.
// Time: O(D); Space: O(1)
func Delete[H comparable, A Topology[H]](a A, root, n H) DeleteResult[H] {
	var anchor H
	if a.IsNil(a.Left(n)) {
		anchor = a.Parent(n)
		root = shift(a, root, n, a.Right(n))
	} else if a.IsNil(a.Right(n)) {
		anchor = a.Parent(n)
		root = shift(a, root, n, a.Left(n))
	} else {
		y := Minimum(a, a.Right(n))
		if a.Parent(y) != n {
			anchor = a.Parent(y)
			root = shift(a, root, y, a.Right(y))
			a.SetRight(y, a.Right(n))
			a.SetParent(a.Right(y), y)
		} else {
			anchor = y
		}
		root = shift(a, root, n, y)
		a.SetLeft(y, a.Left(n))
		a.SetParent(a.Left(y), y)
	}
	return DeleteResult[H]{root, anchor}
}

// rotateLeft pivots the subtree rooted at n one level to the left and
// rewires n's former parent slot to the new subtree root, which it returns.
// n's right child mustn't be nil.
func rotateLeft[H comparable, A Topology[H]](a A, n H) H {
	s := a.Right(n)
	if a.IsNil(s) {
		panic("Trees: rotateLeft with nil right child")
	}
	p := a.Parent(n)
	inner := a.Left(s)
	a.SetRight(n, inner)
	if !a.IsNil(inner) {
		a.SetParent(inner, n)
	}
	a.SetLeft(s, n)
	a.SetParent(n, s)
	a.SetParent(s, p)
	if !a.IsNil(p) {
		if a.Left(p) == n {
			a.SetLeft(p, s)
		} else {
			a.SetRight(p, s)
		}
	}
	return s
}

// rotateRight is the mirror of rotateLeft. n's left child mustn't be nil.
func rotateRight[H comparable, A Topology[H]](a A, n H) H {
	s := a.Left(n)
	if a.IsNil(s) {
		panic("Trees: rotateRight with nil left child")
	}
	p := a.Parent(n)
	inner := a.Right(s)
	a.SetLeft(n, inner)
	if !a.IsNil(inner) {
		a.SetParent(inner, n)
	}
	a.SetRight(s, n)
	a.SetParent(n, s)
	a.SetParent(s, p)
	if !a.IsNil(p) {
		if a.Left(p) == n {
			a.SetLeft(p, s)
		} else {
			a.SetRight(p, s)
		}
	}
	return s
}

// RotateLeft rotates at n and returns the tree root, updated when the
// rotation displaced it.
func RotateLeft[H comparable, A Topology[H]](a A, root, n H) H {
	if s := rotateLeft(a, n); root == n {
		return s
	}
	return root
}

// RotateRight rotates at n and returns the tree root, updated when the
// rotation displaced it.
func RotateRight[H comparable, A Topology[H]](a A, root, n H) H {
	if s := rotateRight(a, n); root == n {
		return s
	}
	return root
}
