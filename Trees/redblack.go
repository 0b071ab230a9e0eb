package Trees

// The Red-Black layer. The two fixup loops below keep three rules intact:
// nil nodes are black, a red node has no red child, and every root-to-nil
// path crosses the same number of black nodes. The color accessors report
// Black for nil handles, so neither loop special-cases missing nephews or
// uncles.

// InsertRB inserts k and repairs the color rules. A duplicate key changes
// nothing. The new node is painted red, which can only violate the red-red
// rule, and the violation is walked up in the classic six cases: black
// parent terminates, a red uncle recolors and ascends, a red parent that
// is the root is painted black, an inner grandchild is straightened with a
// pre-rotation, and an outer grandchild resolves with a rotation at the
// grandparent.
// Time: O(D)
func InsertRB[K any, H comparable, A ColorAccessor[H, K]](a A, root H, k K, cmp func(K, K) int) InsertResult[H] {
	r := Insert(a, root, k, cmp)
	if !r.Inserted {
		return r
	}
	n := r.Node
	a.SetColor(n, Red)
	for {
		p := a.Parent(n)
		if a.IsNil(p) || a.Color(p) == Black {
			break
		}
		g := a.Parent(p)
		if a.IsNil(g) {
			// red parent is the root
			a.SetColor(p, Black)
			break
		}
		pLeft := a.Left(g) == p
		var u H
		if pLeft {
			u = a.Right(g)
		} else {
			u = a.Left(g)
		}
		if a.Color(u) == Red {
			a.SetColor(p, Black)
			a.SetColor(u, Black)
			a.SetColor(g, Red)
			n = g
			continue
		}
		// uncle black: rotate the red pair outward, then lift it
		if pLeft {
			if a.Right(p) == n {
				rotateLeft(a, p)
				p = n
			}
			s := rotateRight(a, g)
			a.SetColor(p, Black)
			a.SetColor(g, Red)
			if g == r.Root {
				r.Root = s
			}
		} else {
			if a.Left(p) == n {
				rotateRight(a, p)
				p = n
			}
			s := rotateLeft(a, g)
			a.SetColor(p, Black)
			a.SetColor(g, Red)
			if g == r.Root {
				r.Root = s
			}
		}
		break
	}
	return r
}

// swapWithSuccessor exchanges the positions and colors of n and its in-order
// successor y, relinking all six pointer fields involved. y must be the
// minimum of n's right subtree and n must have two non-nil children.
func swapWithSuccessor[H comparable, A Colors[H]](a A, root, n, y H) H {
	cn, cy := a.Color(n), a.Color(y)
	pn, py := a.Parent(n), a.Parent(y)
	ln, rn := a.Left(n), a.Right(n)
	ry := a.Right(y) // y has no left child

	if a.IsNil(pn) {
		root = y
	} else if a.Left(pn) == n {
		a.SetLeft(pn, y)
	} else {
		a.SetRight(pn, y)
	}
	a.SetParent(y, pn)
	a.SetLeft(y, ln)
	a.SetParent(ln, y)
	if y == rn {
		a.SetRight(y, n)
		a.SetParent(n, y)
	} else {
		a.SetRight(y, rn)
		a.SetParent(rn, y)
		a.SetLeft(py, n)
		a.SetParent(n, py)
	}
	a.SetLeft(n, a.Nil())
	a.SetRight(n, ry)
	if !a.IsNil(ry) {
		a.SetParent(ry, n)
	}
	a.SetColor(n, cy)
	a.SetColor(y, cn)
	return root
}

// DeleteRB deletes the node n and repairs the color rules. A node with two
// children first swaps places with its successor, reducing the problem to a
// node with at most one child. A red node or a node with a (necessarily
// red) child splices out directly; a black leaf leaves its side of the
// parent one black short and enters the fixup loop.
// Time: O(D)
func DeleteRB[H comparable, A Colors[H]](a A, root, n H) H {
	if !a.IsNil(a.Left(n)) && !a.IsNil(a.Right(n)) {
		root = swapWithSuccessor(a, root, n, Minimum(a, a.Right(n)))
	}
	child := a.Left(n)
	if a.IsNil(child) {
		child = a.Right(n)
	}
	if a.Color(n) == Red {
		// a red node here has no child at all
		return shift(a, root, n, a.Nil())
	}
	if !a.IsNil(child) {
		root = shift(a, root, n, child)
		a.SetColor(child, Black)
		return root
	}
	p := a.Parent(n)
	if a.IsNil(p) {
		// black root leaf; the tree empties
		return a.Nil()
	}
	left := a.Left(p) == n
	root = shift(a, root, n, a.Nil())
	return fixDelete(a, root, p, left)
}

// fixDelete restores the equal-black-height rule after a black leaf was
// removed from the given side of p. Each iteration selects one of the
// deletion cases: a red sibling rotates into reach of the others, a red
// distant nephew terminates with a rotation at the parent, a red close
// nephew is rotated outward first, a red parent recolors against a fully
// black sibling family, and the all-black configuration pushes the deficit
// one level up. Nephews are re-fetched after the red-sibling rotation
// before the close/distant tests.
func fixDelete[H comparable, A Colors[H]](a A, root, p H, left bool) H {
	for {
		var s H
		if left {
			s = a.Right(p)
		} else {
			s = a.Left(p)
		}
		if a.Color(s) == Red {
			// red sibling: parent is black, both nephews are black
			var ns H
			if left {
				ns = rotateLeft(a, p)
			} else {
				ns = rotateRight(a, p)
			}
			a.SetColor(s, Black)
			a.SetColor(p, Red)
			if root == p {
				root = ns
			}
			if left {
				s = a.Right(p)
			} else {
				s = a.Left(p)
			}
		}
		var close, distant H
		if left {
			close, distant = a.Left(s), a.Right(s)
		} else {
			close, distant = a.Right(s), a.Left(s)
		}
		if a.Color(distant) == Red {
			var ns H
			if left {
				ns = rotateLeft(a, p)
			} else {
				ns = rotateRight(a, p)
			}
			a.SetColor(s, a.Color(p))
			a.SetColor(p, Black)
			a.SetColor(distant, Black)
			if root == p {
				root = ns
			}
			return root
		}
		if a.Color(close) == Red {
			// straighten so the red lands distant, then resolve above
			if left {
				rotateRight(a, s)
			} else {
				rotateLeft(a, s)
			}
			a.SetColor(s, Red)
			a.SetColor(close, Black)
			continue
		}
		if a.Color(p) == Red {
			a.SetColor(s, Red)
			a.SetColor(p, Black)
			return root
		}
		// parent, sibling and nephews all black: one level up is short too
		a.SetColor(s, Red)
		g := a.Parent(p)
		if a.IsNil(g) {
			return root
		}
		left = a.Left(g) == p
		p = g
	}
}
