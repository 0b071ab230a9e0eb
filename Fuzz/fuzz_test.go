package Fuzz

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/search-trees/Sets/TreeSet"
	"github.com/g-m-twostay/search-trees/Trees"
)

func variants() map[string]func() Checked[int] {
	return map[string]func() Checked[int]{
		"bst":     func() Checked[int] { return TreeSet.NewBST[int]() },
		"avl":     func() Checked[int] { return TreeSet.NewAVL[int]() },
		"rb":      func() Checked[int] { return TreeSet.NewRB[int]() },
		"arr-bst": func() Checked[int] { return TreeSet.NewArrBST[int, int32](128) },
		"arr-avl": func() Checked[int] { return TreeSet.NewArrAVL[int, int32](128) },
		"arr-rb":  func() Checked[int] { return TreeSet.NewArrRB[int, int32](128) },
		"freelist-rb": func() Checked[int] {
			return TreeSet.NewRBIn[int, int32](Trees.NewPacked[int, int32](128).WithFreeList(),
				func(x, y int) int { return x - y })
		},
	}
}

func epochs(t *testing.T) int {
	if testing.Short() {
		return 20
	}
	return 1000
}

func TestFuzzVariants(t *testing.T) {
	for name, mk := range variants() {
		t.Run(name, func(t *testing.T) {
			cfg := Config{MaxElems: 100, Epochs: epochs(t), Seed: 1, Log: zerolog.Nop()}
			require.NoError(t, Ints(cfg, mk))
		})
	}
}

func TestFuzzHaxOracle(t *testing.T) {
	cfg := Config{MaxElems: 100, Epochs: epochs(t) / 10, Seed: 2, Log: zerolog.Nop()}
	err := Run(cfg, func() Checked[int] { return TreeSet.NewRB[int]() }, NewHaxOracle(),
		func(rg *rand.Rand) int { return rg.Intn(4 * cfg.MaxElems) })
	require.NoError(t, err)
}

// A tree whose Put lies about whether the key was new must be caught as a
// mismatch; this guards the harness itself.
type lyingSet struct{ Checked[int] }

func (u lyingSet) Put(v int) bool {
	u.Checked.Put(v)
	return false
}

func TestFuzzCatchesMismatch(t *testing.T) {
	cfg := Config{MaxElems: 4, Epochs: 1, Seed: 3, Log: zerolog.Nop()}
	err := Ints(cfg, func() Checked[int] { return lyingSet{TreeSet.NewRB[int]()} })
	require.Error(t, err)
	require.Contains(t, err.Error(), "mismatch")
}
