// Copyright (c) 2025 Visvasity LLC

package bytevec

import (
	"fmt"
	"sort"
)

// sortHelper adapts index based callbacks to sort.Interface.
type sortHelper struct {
	lenFunc     func() int
	swapFunc    func(int, int)
	compareFunc func(int, int) int
}

func (s *sortHelper) Len() int {
	return s.lenFunc()
}

func (s *sortHelper) Swap(i, j int) {
	s.swapFunc(i, j)
}

func (s *sortHelper) Less(i, j int) bool {
	return s.compareFunc(i, j) < 0
}

// SwapItems exchanges the elements at indices i and j. Panics if either index
// is not in [0, Len).
func (v *Vector) SwapItems(i, j int) {
	v.mustLive()
	if i < 0 || i >= v.count {
		panic(indexError("SwapItems", i, v.count, v.capacity))
	}
	if j < 0 || j >= v.count {
		panic(indexError("SwapItems", j, v.count, v.capacity))
	}
	if i == j || v.elemSize == 0 {
		return
	}
	a, b := v.slot(i), v.slot(j)
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}
}

// SortFunc sorts the elements in place, ordered by cmp. The sort is not
// stable. Elements passed to cmp are views into the storage and must not be
// retained.
func (v *Vector) SortFunc(cmp func(a, b Elem) int) {
	v.mustLive()
	helper := sortHelper{
		lenFunc:     v.Len,
		swapFunc:    v.SwapItems,
		compareFunc: func(i, j int) int { return cmp(v.slot(i), v.slot(j)) },
	}
	sort.Sort(&helper)
}

// FindFunc performs a binary search over elements sorted in the order of cmp,
// where cmp(e) reports the target's order relative to e. It returns the
// smallest index i at which cmp(At(i)) <= 0, and whether cmp returned 0 for
// that element.
func (v *Vector) FindFunc(cmp func(e Elem) int) (int, bool) {
	v.mustLive()
	return sort.Find(v.count, func(i int) int { return cmp(v.slot(i)) })
}

func (v *Vector) String() string {
	if v.released {
		return "bytevec.Vector{released}"
	}
	return fmt.Sprintf("bytevec.Vector{len=%d cap=%d elemSize=%d}", v.count, v.capacity, v.elemSize)
}
