package Trees

// A node in a linked tree. Each node is an independently allocated record;
// child and parent references are nullable pointers and the nil handle is
// the nil pointer. Children are the owning edges; p is a back-reference
// repaired by every mutation.
type Node[K any] struct {
	k       K
	l, r, p *Node[K]
	h       int32
	c       Color
}

// Linked is the pointer-backed node store. It is zero-sized and carries no
// state: all structure lives in the nodes themselves, so copies of a Linked
// are interchangeable.
type Linked[K any] struct{}

func (Linked[K]) Nil() *Node[K]         { return nil }
func (Linked[K]) IsNil(n *Node[K]) bool { return n == nil }

func (Linked[K]) Left(n *Node[K]) *Node[K]  { return n.l }
func (Linked[K]) Right(n *Node[K]) *Node[K] { return n.r }
func (Linked[K]) SetLeft(n, c *Node[K])     { n.l = c }
func (Linked[K]) SetRight(n, c *Node[K])    { n.r = c }

func (Linked[K]) Parent(n *Node[K]) *Node[K] { return n.p }
func (Linked[K]) SetParent(n, p *Node[K])    { n.p = p }

func (Linked[K]) Key(n *Node[K]) K { return n.k }

func (Linked[K]) Build(k K) *Node[K] { return &Node[K]{k: k, h: 1} }

func (Linked[K]) Height(n *Node[K]) int32 {
	if n == nil {
		return 0
	}
	return n.h
}
func (Linked[K]) SetHeight(n *Node[K], h int32) { n.h = h }

func (Linked[K]) Color(n *Node[K]) Color {
	if n == nil {
		return Black
	}
	return n.c
}
func (Linked[K]) SetColor(n *Node[K], c Color) { n.c = c }
