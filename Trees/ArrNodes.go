package Trees

import "golang.org/x/exp/constraints"

// Packed stores nodes in parallel arrays indexed by the handle. A handle is
// a signed index of type S and the nil handle is the sentinel -1, so S must
// be wide enough for the largest tree plus the sentinel. Build appends to
// the arrays; deleted indexes are not reused unless a free list is enabled
// with WithFreeList, in which case Recycle returns a slot to the list the
// way the caller of the delete algorithms sees fit.
type Packed[K any, S constraints.Signed] struct {
	ks     []K
	ls, rs []S
	ps     []S
	hs     []int32
	cs     []Color
	free   []S
	reuse  bool
}

// NewPacked store with capacity for hint nodes before the arrays regrow.
func NewPacked[K any, S constraints.Signed](hint S) *Packed[K, S] {
	return &Packed[K, S]{
		ks: make([]K, 0, hint),
		ls: make([]S, 0, hint),
		rs: make([]S, 0, hint),
		ps: make([]S, 0, hint),
		hs: make([]int32, 0, hint),
		cs: make([]Color, 0, hint),
	}
}

// WithFreeList makes Recycle record freed slots for Build to fill before
// appending. Without it the store keeps the historical behavior of leaking
// the indexes of deleted nodes.
func (u *Packed[K, S]) WithFreeList() *Packed[K, S] {
	u.reuse = true
	return u
}

func (u *Packed[K, S]) Nil() S         { return -1 }
func (u *Packed[K, S]) IsNil(i S) bool { return i < 0 }

func (u *Packed[K, S]) Left(i S) S      { return u.ls[i] }
func (u *Packed[K, S]) Right(i S) S     { return u.rs[i] }
func (u *Packed[K, S]) SetLeft(n, c S)  { u.ls[n] = c }
func (u *Packed[K, S]) SetRight(n, c S) { u.rs[n] = c }

func (u *Packed[K, S]) Parent(i S) S     { return u.ps[i] }
func (u *Packed[K, S]) SetParent(n, p S) { u.ps[n] = p }

func (u *Packed[K, S]) Key(i S) K { return u.ks[i] }

func (u *Packed[K, S]) Build(k K) S {
	if n := len(u.free); n > 0 {
		i := u.free[n-1]
		u.free = u.free[:n-1]
		u.ks[i], u.ls[i], u.rs[i], u.ps[i], u.hs[i], u.cs[i] = k, -1, -1, -1, 1, Red
		return i
	}
	u.ks = append(u.ks, k)
	u.ls = append(u.ls, -1)
	u.rs = append(u.rs, -1)
	u.ps = append(u.ps, -1)
	u.hs = append(u.hs, 1)
	u.cs = append(u.cs, Red)
	return S(len(u.ks) - 1)
}

func (u *Packed[K, S]) Height(i S) int32 {
	if i < 0 {
		return 0
	}
	return u.hs[i]
}
func (u *Packed[K, S]) SetHeight(i S, h int32) { u.hs[i] = h }

func (u *Packed[K, S]) Color(i S) Color {
	if i < 0 {
		return Black
	}
	return u.cs[i]
}
func (u *Packed[K, S]) SetColor(i S, c Color) { u.cs[i] = c }

// Recycle the slot of a node that left the tree. A no-op unless the free
// list is enabled.
func (u *Packed[K, S]) Recycle(i S) {
	if u.reuse {
		u.free = append(u.free, i)
	}
}

// Slots currently backed by the arrays, live or leaked.
func (u *Packed[K, S]) Slots() int { return len(u.ks) }

// Reset the store to empty without releasing the arrays.
func (u *Packed[K, S]) Reset() {
	u.ks, u.ls, u.rs, u.ps = u.ks[:0], u.ls[:0], u.rs[:0], u.ps[:0]
	u.hs, u.cs, u.free = u.hs[:0], u.cs[:0], u.free[:0]
}
