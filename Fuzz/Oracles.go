package Fuzz

import (
	"github.com/alphadose/haxmap"
	"github.com/emirpasic/gods/sets/hashset"
)

// hashOracle adapts the gods hashset to the Oracle surface. gods' Add and
// Remove don't report prior membership, so it is probed with Contains
// first.
type hashOracle struct {
	s *hashset.Set
}

// NewHashOracle is the default int oracle, backed by a gods hashset.
func NewHashOracle() Oracle[int] {
	return &hashOracle{hashset.New()}
}

func (u *hashOracle) Put(v int) bool {
	if u.s.Contains(v) {
		return false
	}
	u.s.Add(v)
	return true
}

func (u *hashOracle) Has(v int) bool { return u.s.Contains(v) }

func (u *hashOracle) Remove(v int) bool {
	if !u.s.Contains(v) {
		return false
	}
	u.s.Remove(v)
	return true
}

func (u *hashOracle) Size() uint { return uint(u.s.Size()) }
func (u *hashOracle) Clear()     { u.s.Clear() }

func (u *hashOracle) Range(f func(int) bool) {
	for _, v := range u.s.Values() {
		if !f(v.(int)) {
			return
		}
	}
}

// haxOracle is an alternative oracle over a haxmap with unit values, so the
// harness itself can be cross-checked against two unrelated hash
// implementations. The count is tracked here since Put/Remove need the
// membership delta anyway.
type haxOracle struct {
	m  *haxmap.Map[int, struct{}]
	sz uint
}

// NewHaxOracle is an int oracle backed by a haxmap.
func NewHaxOracle() Oracle[int] {
	return &haxOracle{m: haxmap.New[int, struct{}]()}
}

func (u *haxOracle) Put(v int) bool {
	if _, in := u.m.Get(v); in {
		return false
	}
	u.m.Set(v, struct{}{})
	u.sz++
	return true
}

func (u *haxOracle) Has(v int) bool {
	_, in := u.m.Get(v)
	return in
}

func (u *haxOracle) Remove(v int) bool {
	if _, in := u.m.Get(v); !in {
		return false
	}
	u.m.Del(v)
	u.sz--
	return true
}

func (u *haxOracle) Size() uint { return u.sz }

func (u *haxOracle) Clear() {
	u.m = haxmap.New[int, struct{}]()
	u.sz = 0
}

func (u *haxOracle) Range(f func(int) bool) {
	u.m.ForEach(func(k int, _ struct{}) bool { return f(k) })
}
