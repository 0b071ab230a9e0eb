// Package Fuzz is the differential fuzz harness for the tree sets. It
// drives a tree-under-test and a reference oracle set through identical
// randomized workloads, asserting that every operation agrees and that the
// tree's structural validator passes after every mutation. The harness is
// variant-agnostic: it only sees the Checked surface, so the same loop
// certifies the BST, AVL and Red-Black sets over either node store.
package Fuzz

import (
	"math/rand"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// Checked is the surface the harness drives: a set that can validate its
// own structure and render itself for failure reports.
type Checked[K any] interface {
	Put(K) bool
	Has(K) bool
	Remove(K) bool
	Size() uint
	Clear()
	Range(func(K) bool)
	Validate() error
	String() string
}

// Oracle is the reference set the tree is checked against.
type Oracle[K any] interface {
	Put(K) bool
	Has(K) bool
	Remove(K) bool
	Size() uint
	Clear()
	Range(func(K) bool)
}

// Config of a fuzz run.
type Config struct {
	//MaxElems is the element count an epoch grows the tree to before
	//shrinking it back to empty. Keys are drawn from [0, 4*MaxElems).
	MaxElems int
	//Epochs to run; 0 means until a failure or forever.
	Epochs int
	Seed   int64
	Log    zerolog.Logger
}

// Run the fuzz loop: per epoch, grow a fresh tree to MaxElems elements and
// shrink it back to empty, mirroring every operation on the oracle. After
// each mutation the tree is validated and its content compared against the
// oracle. Returns nil after all epochs, or the first failure wrapped with
// the epoch, step, operation and the pre-operation snapshot.
func Run[K any](cfg Config, mk func() Checked[K], oracle Oracle[K], draw func(*rand.Rand) K) error {
	rg := rand.New(rand.NewSource(cfg.Seed))
	for epoch := 0; cfg.Epochs == 0 || epoch < cfg.Epochs; epoch++ {
		t := mk()
		oracle.Clear()
		if err := t.Validate(); err != nil {
			return errors.Wrapf(err, "epoch %d: fresh tree", epoch)
		}
		step := 0
		for int(t.Size()) < cfg.MaxElems {
			if err := mutate(t, oracle, "put", draw(rg), Checked[K].Put, Oracle[K].Put, epoch, step); err != nil {
				return err
			}
			step++
		}
		for t.Size() > 0 {
			if err := mutate(t, oracle, "remove", draw(rg), Checked[K].Remove, Oracle[K].Remove, epoch, step); err != nil {
				return err
			}
			step++
		}
		if epoch%100 == 0 {
			cfg.Log.Info().Int("epoch", epoch).Msg("fuzzing")
		}
	}
	return nil
}

func mutate[K any](t Checked[K], o Oracle[K], op string, k K,
	tf func(Checked[K], K) bool, of func(Oracle[K], K) bool, epoch, step int) error {
	snap := t.String()
	tb, ob := tf(t, k), of(o, k)
	if tb != ob {
		return errors.Newf("fuzz mismatch: epoch %d step %d: %s %v returned %t on the tree, %t on the oracle\nbefore: %s",
			epoch, step, op, k, tb, ob, snap)
	}
	if err := t.Validate(); err != nil {
		return errors.Wrapf(err, "epoch %d step %d: after %s %v\nbefore: %s", epoch, step, op, k, snap)
	}
	if err := content(t, o); err != nil {
		return errors.Wrapf(err, "epoch %d step %d: after %s %v\nbefore: %s", epoch, step, op, k, snap)
	}
	return nil
}

// content checks set equivalence both ways: every tree key is in the
// oracle and every oracle key is in the tree.
func content[K any](t Checked[K], o Oracle[K]) error {
	var excess, missing []K
	t.Range(func(k K) bool {
		if !o.Has(k) {
			excess = append(excess, k)
		}
		return true
	})
	o.Range(func(k K) bool {
		if !t.Has(k) {
			missing = append(missing, k)
		}
		return true
	})
	if len(excess) > 0 || len(missing) > 0 {
		return errors.Newf("content: tree has excess keys %v, is missing keys %v", excess, missing)
	}
	if tn, on := t.Size(), o.Size(); tn != on {
		return errors.Newf("content: tree reports size %d, oracle %d", tn, on)
	}
	return nil
}

// Ints runs the harness over int keys with the default hashset oracle.
func Ints(cfg Config, mk func() Checked[int]) error {
	return Run(cfg, mk, NewHashOracle(), func(rg *rand.Rand) int { return rg.Intn(4 * cfg.MaxElems) })
}

// Forever fuzzes one variant until a failure or an external interrupt,
// reporting progress every 100 epochs on stderr.
func Forever(maxElems int, mk func() Checked[int]) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	err := Ints(Config{MaxElems: maxElems, Log: log}, mk)
	if err != nil {
		log.Error().Err(err).Msg("fuzzing failed")
	}
	return err
}
