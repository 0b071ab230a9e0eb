package Trees

import (
	"cmp"
	"errors"
	"testing"
)

func wantRule(t *testing.T, err error, rule string) {
	t.Helper()
	var ce CorruptError
	if err == nil || !errors.As(err, &ce) {
		t.Fatalf("got %v, want a CorruptError", err)
	}
	if ce.Rule != rule {
		t.Errorf("got rule %q (%v), want %q", ce.Rule, err, rule)
	}
}

func TestValidateLinks(t *testing.T) {
	var a Linked[int]
	root := insertAll(t, a, 2, 1, 3)
	if err := ValidateLinks[int](a, root); err != nil {
		t.Fatal(err)
	}
	root.l.p = root.r
	wantRule(t, ValidateLinks[int](a, root), "adjacency")
	root.l.p = root

	root.p = root.l
	wantRule(t, ValidateLinks[int](a, root), "adjacency")
	root.p = nil
}

func TestValidateOrder(t *testing.T) {
	var a Linked[int]
	root := insertAll(t, a, 2, 1, 3)
	if err := ValidateOrder(a, root, cmp.Compare[int]); err != nil {
		t.Fatal(err)
	}
	// graft an out-of-place key under 3
	bad := a.Build(0)
	root.r.l, bad.p = bad, root.r
	wantRule(t, ValidateOrder(a, root, cmp.Compare[int]), "order")

	// duplicates are an order violation too
	root = insertAll(t, a, 2, 1)
	dup := a.Build(2)
	root.r, dup.p = dup, root
	wantRule(t, ValidateOrder(a, root, cmp.Compare[int]), "order")
}

func TestValidateHeights(t *testing.T) {
	var a Linked[int]
	root := insertAllAVL(t, a, 2, 1, 3)
	if err := ValidateHeights[int](a, root); err != nil {
		t.Fatal(err)
	}
	root.l.h = 7
	wantRule(t, ValidateHeights[int](a, root), "height")
	root.l.h = 1

	// a correct-height chain that is simply too deep
	root = link(3, link(2, link(1, nil, nil), nil), nil)
	wantRule(t, ValidateHeights[int](a, root), "balance")
}

func TestValidateColors(t *testing.T) {
	var a Linked[int]
	root := insertAllRB(t, a, 2, 1, 3)
	if err := ValidateColors[int](a, root); err != nil {
		t.Fatal(err)
	}
	// red root with a red child
	root.c = Red
	wantRule(t, ValidateColors[int](a, root), "color")
	root.c = Black

	// unbalanced black counts
	root.l.c = Black
	wantRule(t, ValidateColors[int](a, root), "color")
}

func TestRender(t *testing.T) {
	var a Linked[int]
	if got := Render[int](a, a.Nil(), nil); got != "." {
		t.Errorf("empty tree renders %q", got)
	}
	root := insertAll(t, a, 2, 1, 3)
	if got := Render[int](a, root, nil); got != "((. 1 .) 2 (. 3 .))" {
		t.Errorf("tree renders %q", got)
	}
	if got := Render[int](a, root, a.tag()); got != "((. 1r .) 2r (. 3r .))" {
		t.Errorf("tagged tree renders %q", got)
	}
}
