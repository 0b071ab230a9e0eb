// Package TreeSet provides ordered sets backed by the Trees kernel: an
// unbalanced BST set, an AVL set and a Red-Black set. Every variant is
// generic over the node store, so each comes in a pointer-linked and an
// array-packed flavor from the same code.
package TreeSet

import (
	"cmp"
	"fmt"

	"github.com/g-m-twostay/search-trees/Sets"
	"github.com/g-m-twostay/search-trees/Trees"
	"golang.org/x/exp/constraints"
)

// core is the variant-independent part of a tree set: the store, the
// comparator, the root handle and the count. The variants embed it and add
// their own Put/Remove/Validate.
type core[K any, H comparable, A Trees.Accessor[H, K]] struct {
	a       A
	cmp     func(K, K) int
	root    H
	sz      uint
	recycle func(H)
	reset   func()
}

func makeCore[K any, H comparable, A Trees.Accessor[H, K]](a A, f func(K, K) int) core[K, H, A] {
	c := core[K, H, A]{a: a, cmp: f, root: a.Nil()}
	if r, ok := any(a).(interface{ Recycle(H) }); ok {
		c.recycle = r.Recycle
	}
	if r, ok := any(a).(interface{ Reset() }); ok {
		c.reset = r.Reset
	}
	return c
}

// Size of the set.
// Time: O(1)
func (u *core[K, H, A]) Size() uint { return u.sz }

// Has reports whether v is in the set.
// Time: O(D); Space: O(1)
func (u *core[K, H, A]) Has(v K) bool {
	return !u.a.IsNil(Trees.Search(u.a, u.root, v, u.cmp).Node)
}

// Minimum element of the set.
// Time: O(D); Space: O(1)
func (u *core[K, H, A]) Minimum() (K, bool) {
	if u.a.IsNil(u.root) {
		var zero K
		return zero, false
	}
	return u.a.Key(Trees.Minimum(u.a, u.root)), true
}

// Maximum element of the set.
// Time: O(D); Space: O(1)
func (u *core[K, H, A]) Maximum() (K, bool) {
	if u.a.IsNil(u.root) {
		var zero K
		return zero, false
	}
	return u.a.Key(Trees.Maximum(u.a, u.root)), true
}

// Predecessor returns the greatest element less than v.
// Time: O(D); Space: O(1)
func (u *core[K, H, A]) Predecessor(v K) (K, bool) {
	cur, p := u.root, u.a.Nil()
	for !u.a.IsNil(cur) {
		if u.cmp(v, u.a.Key(cur)) <= 0 {
			cur = u.a.Left(cur)
		} else {
			p = cur
			cur = u.a.Right(cur)
		}
	}
	if u.a.IsNil(p) {
		var zero K
		return zero, false
	}
	return u.a.Key(p), true
}

// Successor returns the smallest element greater than v.
// Time: O(D); Space: O(1)
func (u *core[K, H, A]) Successor(v K) (K, bool) {
	cur, p := u.root, u.a.Nil()
	for !u.a.IsNil(cur) {
		if u.cmp(v, u.a.Key(cur)) < 0 {
			p = cur
			cur = u.a.Left(cur)
		} else {
			cur = u.a.Right(cur)
		}
	}
	if u.a.IsNil(p) {
		var zero K
		return zero, false
	}
	return u.a.Key(p), true
}

// Range calls f on every element in ascending order until f returns false.
// The set mustn't be mutated during the walk.
func (u *core[K, H, A]) Range(f func(K) bool) {
	Trees.Walk(u.a, u.root, func(n H) bool { return f(u.a.Key(n)) })
}

// InOrder returns an iterator closure over the elements in ascending order.
// Calling it is like calling Next: val is meaningful only while valid is
// true, and valid can't turn true again after it became false. The set
// mustn't be mutated during the iteration.
func (u *core[K, H, A]) InOrder() func() (K, bool) {
	cur := u.root
	if !u.a.IsNil(cur) {
		cur = Trees.Minimum(u.a, cur)
	}
	return func() (K, bool) {
		if u.a.IsNil(cur) {
			var zero K
			return zero, false
		}
		k := u.a.Key(cur)
		cur = Trees.Successor(u.a, cur)
		return k, true
	}
}

// Take an arbitrary element, currently the root's. Returns the zero value
// on an empty set.
func (u *core[K, H, A]) Take() K {
	if u.a.IsNil(u.root) {
		var zero K
		return zero
	}
	return u.a.Key(u.root)
}

// Clear drops all elements. Resets the backing store of an array-packed
// set; a linked set just unhooks the root.
func (u *core[K, H, A]) Clear() {
	if u.reset != nil {
		u.reset()
	}
	u.root = u.a.Nil()
	u.sz = 0
}

func (u *core[K, H, A]) String() string {
	return Trees.Render[K](u.a, u.root, nil)
}

// BST is the unbalanced set. The shape of the tree, and therefore D,
// depends entirely on the order of Put and Remove calls.
type BST[K any, H comparable, A Trees.Accessor[H, K]] struct {
	core[K, H, A]
}

// NewBST set of naturally ordered keys over linked nodes.
func NewBST[K cmp.Ordered]() *BST[K, *Trees.Node[K], Trees.Linked[K]] {
	return NewBSTFunc[K](cmp.Compare[K])
}

// NewBSTFunc set with a custom comparator over linked nodes. f returns a
// negative number if first < second, 0 if equal, positive otherwise; see
// cmp.Compare for an example.
func NewBSTFunc[K any](f func(K, K) int) *BST[K, *Trees.Node[K], Trees.Linked[K]] {
	return NewBSTIn[K, *Trees.Node[K]](Trees.Linked[K]{}, f)
}

// NewArrBST set of naturally ordered keys over an array-packed store with
// room for hint nodes.
func NewArrBST[K cmp.Ordered, S constraints.Signed](hint S) *BST[K, S, *Trees.Packed[K, S]] {
	return NewBSTIn[K, S](Trees.NewPacked[K, S](hint), cmp.Compare[K])
}

// NewBSTIn set over an existing store, for example a Packed with its free
// list enabled.
func NewBSTIn[K any, H comparable, A Trees.Accessor[H, K]](a A, f func(K, K) int) *BST[K, H, A] {
	return &BST[K, H, A]{makeCore[K, H](a, f)}
}

// Put [Sets.Set.Put].
// Time: O(D)
func (u *BST[K, H, A]) Put(v K) bool {
	r := Trees.Insert(u.a, u.root, v, u.cmp)
	u.root = r.Root
	if r.Inserted {
		u.sz++
	}
	return r.Inserted
}

// Remove [Sets.Set.Remove].
// Time: O(D)
func (u *BST[K, H, A]) Remove(v K) bool {
	n := Trees.Search(u.a, u.root, v, u.cmp).Node
	if u.a.IsNil(n) {
		return false
	}
	u.root = Trees.Delete(u.a, u.root, n).Root
	u.sz--
	if u.recycle != nil {
		u.recycle(n)
	}
	return true
}

// Validate the structure: adjacency and strict in-order.
func (u *BST[K, H, A]) Validate() error {
	if err := Trees.ValidateLinks[K](u.a, u.root); err != nil {
		return err
	}
	return Trees.ValidateOrder(u.a, u.root, u.cmp)
}

// AVL is the height-balanced set. D is at most ~1.44*log2(n+2).
type AVL[K any, H comparable, A Trees.HeightAccessor[H, K]] struct {
	core[K, H, A]
}

// NewAVL set of naturally ordered keys over linked nodes.
func NewAVL[K cmp.Ordered]() *AVL[K, *Trees.Node[K], Trees.Linked[K]] {
	return NewAVLFunc[K](cmp.Compare[K])
}

// NewAVLFunc set with a custom comparator over linked nodes.
func NewAVLFunc[K any](f func(K, K) int) *AVL[K, *Trees.Node[K], Trees.Linked[K]] {
	return NewAVLIn[K, *Trees.Node[K]](Trees.Linked[K]{}, f)
}

// NewArrAVL set of naturally ordered keys over an array-packed store.
func NewArrAVL[K cmp.Ordered, S constraints.Signed](hint S) *AVL[K, S, *Trees.Packed[K, S]] {
	return NewAVLIn[K, S](Trees.NewPacked[K, S](hint), cmp.Compare[K])
}

// NewAVLIn set over an existing store.
func NewAVLIn[K any, H comparable, A Trees.HeightAccessor[H, K]](a A, f func(K, K) int) *AVL[K, H, A] {
	return &AVL[K, H, A]{makeCore[K, H](a, f)}
}

// Put [Sets.Set.Put].
// Time: O(D)
func (u *AVL[K, H, A]) Put(v K) bool {
	r := Trees.InsertAVL(u.a, u.root, v, u.cmp)
	u.root = r.Root
	if r.Inserted {
		u.sz++
	}
	return r.Inserted
}

// Remove [Sets.Set.Remove].
// Time: O(D)
func (u *AVL[K, H, A]) Remove(v K) bool {
	n := Trees.Search(u.a, u.root, v, u.cmp).Node
	if u.a.IsNil(n) {
		return false
	}
	u.root = Trees.DeleteAVL(u.a, u.root, n)
	u.sz--
	if u.recycle != nil {
		u.recycle(n)
	}
	return true
}

// Validate the structure: adjacency, strict in-order, stored heights and
// balance factors.
func (u *AVL[K, H, A]) Validate() error {
	if err := Trees.ValidateLinks[K](u.a, u.root); err != nil {
		return err
	}
	if err := Trees.ValidateOrder(u.a, u.root, u.cmp); err != nil {
		return err
	}
	return Trees.ValidateHeights[K](u.a, u.root)
}

func (u *AVL[K, H, A]) String() string {
	return Trees.Render[K](u.a, u.root, func(n H) string { return fmt.Sprintf(":%d", u.a.Height(n)) })
}

// RB is the Red-Black set. D is at most 2*log2(n+1).
type RB[K any, H comparable, A Trees.ColorAccessor[H, K]] struct {
	core[K, H, A]
}

// NewRB set of naturally ordered keys over linked nodes.
func NewRB[K cmp.Ordered]() *RB[K, *Trees.Node[K], Trees.Linked[K]] {
	return NewRBFunc[K](cmp.Compare[K])
}

// NewRBFunc set with a custom comparator over linked nodes.
func NewRBFunc[K any](f func(K, K) int) *RB[K, *Trees.Node[K], Trees.Linked[K]] {
	return NewRBIn[K, *Trees.Node[K]](Trees.Linked[K]{}, f)
}

// NewArrRB set of naturally ordered keys over an array-packed store.
func NewArrRB[K cmp.Ordered, S constraints.Signed](hint S) *RB[K, S, *Trees.Packed[K, S]] {
	return NewRBIn[K, S](Trees.NewPacked[K, S](hint), cmp.Compare[K])
}

// NewRBIn set over an existing store.
func NewRBIn[K any, H comparable, A Trees.ColorAccessor[H, K]](a A, f func(K, K) int) *RB[K, H, A] {
	return &RB[K, H, A]{makeCore[K, H](a, f)}
}

// Put [Sets.Set.Put].
// Time: O(D)
func (u *RB[K, H, A]) Put(v K) bool {
	r := Trees.InsertRB(u.a, u.root, v, u.cmp)
	u.root = r.Root
	if r.Inserted {
		u.sz++
	}
	return r.Inserted
}

// Remove [Sets.Set.Remove].
// Time: O(D)
func (u *RB[K, H, A]) Remove(v K) bool {
	n := Trees.Search(u.a, u.root, v, u.cmp).Node
	if u.a.IsNil(n) {
		return false
	}
	u.root = Trees.DeleteRB(u.a, u.root, n)
	u.sz--
	if u.recycle != nil {
		u.recycle(n)
	}
	return true
}

// Validate the structure: adjacency, strict in-order, red-red freedom and
// equal black-heights.
func (u *RB[K, H, A]) Validate() error {
	if err := Trees.ValidateLinks[K](u.a, u.root); err != nil {
		return err
	}
	if err := Trees.ValidateOrder(u.a, u.root, u.cmp); err != nil {
		return err
	}
	return Trees.ValidateColors[K](u.a, u.root)
}

func (u *RB[K, H, A]) String() string {
	return Trees.Render[K](u.a, u.root, func(n H) string { return u.a.Color(n).String() })
}

var (
	_ Sets.Set[int] = (*BST[int, *Trees.Node[int], Trees.Linked[int]])(nil)
	_ Sets.Set[int] = (*AVL[int, *Trees.Node[int], Trees.Linked[int]])(nil)
	_ Sets.Set[int] = (*RB[int, int32, *Trees.Packed[int, int32]])(nil)
)
