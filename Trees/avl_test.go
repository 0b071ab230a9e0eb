package Trees

import (
	"cmp"
	"testing"
)

func insertAllAVL(t *testing.T, a Linked[int], keys ...int) *Node[int] {
	t.Helper()
	root := a.Nil()
	for _, k := range keys {
		r := InsertAVL(a, root, k, cmp.Compare[int])
		if !r.Inserted {
			t.Fatalf("failed to insert key %v", k)
		}
		root = r.Root
	}
	return root
}

func checkAVL[H comparable, A HeightAccessor[H, int]](t *testing.T, a A, root H) {
	t.Helper()
	if err := ValidateLinks[int](a, root); err != nil {
		t.Fatal(err)
	}
	if err := ValidateOrder(a, root, cmp.Compare[int]); err != nil {
		t.Fatal(err)
	}
	if err := ValidateHeights[int](a, root); err != nil {
		t.Fatal(err)
	}
}

func TestAVLTriples(t *testing.T) {
	var a Linked[int]
	for _, keys := range [][]int{
		{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1},
	} {
		root := insertAllAVL(t, a, keys...)
		if root.k != 2 || root.l == nil || root.l.k != 1 || root.r == nil || root.r.k != 3 {
			t.Errorf("inserting %v built %s, want 2 over 1 and 3", keys, Render[int](a, root, nil))
		}
		if root.h != 2 || root.l.h != 1 || root.r.h != 1 {
			t.Errorf("inserting %v left heights %d/%d/%d", keys, root.l.h, root.h, root.r.h)
		}
		checkAVL(t, a, root)
	}
}

// link builds an AVL node with the given children and a correct height.
func link(k int, l, r *Node[int]) *Node[int] {
	var a Linked[int]
	n := a.Build(k)
	n.l, n.r = l, r
	h := int32(0)
	if l != nil {
		l.p = n
		h = l.h
	}
	if r != nil {
		r.p = n
		if r.h > h {
			h = r.h
		}
	}
	n.h = h + 1
	return n
}

func TestAVLZigZagInsert(t *testing.T) {
	var a Linked[int]
	root := link(20,
		link(4, link(3, nil, nil), link(9, nil, nil)),
		link(26, nil, nil))
	checkAVL(t, a, root)

	r := InsertAVL(a, root, 15, cmp.Compare[int])
	if !r.Inserted {
		t.Fatal("failed to insert 15")
	}
	root = r.Root
	checkAVL(t, a, root)
	want := "((( 3 ) 4 ) 9 (( 15 ) 20 ( 26 )))"
	if got := renderBare(a, root); got != want {
		t.Errorf("zig-zag insert built %s, want %s", got, want)
	}
}

// renderBare strips the dots so the expected shapes above stay readable.
func renderBare[H comparable, A Accessor[H, int]](a A, root H) string {
	out := []byte(Render[int](a, root, nil))
	kept := out[:0]
	for _, c := range out {
		if c != '.' {
			kept = append(kept, c)
		}
	}
	return string(kept)
}

func testAVLRandom[H comparable, A HeightAccessor[H, int]](t *testing.T, a A) {
	t.Helper()
	const n, valRange = 400, 1200
	root := a.Nil()
	content := make(map[int]struct{})
	for i := 0; i < n; i++ {
		k := rg.Intn(valRange)
		_, in := content[k]
		r := InsertAVL(a, root, k, cmp.Compare[int])
		if r.Inserted == in {
			t.Fatalf("insert of key %v returned %v", k, r.Inserted)
		}
		root = r.Root
		content[k] = struct{}{}
		checkAVL(t, a, root)
	}
	for k := range content {
		sr := Search(a, root, k, cmp.Compare[int])
		if a.IsNil(sr.Node) {
			t.Fatalf("tree does not have key %v", k)
		}
		root = DeleteAVL(a, root, sr.Node)
		delete(content, k)
		checkAVL(t, a, root)
	}
	if !a.IsNil(root) {
		t.Error("tree is not empty after deleting everything")
	}
}

func TestAVLRandom(t *testing.T) {
	t.Run("linked", func(t *testing.T) { testAVLRandom[*Node[int]](t, Linked[int]{}) })
	t.Run("packed", func(t *testing.T) { testAVLRandom[int32](t, NewPacked[int, int32](0)) })
}
