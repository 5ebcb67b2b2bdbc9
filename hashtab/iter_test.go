package hashtab_test

import (
	"slices"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/rogpeppe/rwcore/hashtab"
)

func TestIterateAll(t *testing.T) {
	s := hashtab.NewSet[int](7, intHasher{})
	s.InsertSeq(slices.Values([]int{5, 1, 4, 2, 3}))
	var got []int
	for it := s.Begin(); !it.Equal(s.End()); it = it.Next() {
		got = append(got, it.Value())
	}
	qt.Assert(t, qt.DeepEquals(got, slices.Collect(s.All())))
	qt.Assert(t, qt.CmpEquals(got, []int{1, 2, 3, 4, 5}, cmpopts.SortSlices(func(x, y int) bool {
		return x < y
	})))
}

func TestIterEmpty(t *testing.T) {
	s := hashtab.NewSet[int](3, intHasher{})
	qt.Assert(t, qt.IsTrue(s.Begin().AtEnd()))
	qt.Assert(t, qt.IsTrue(s.Begin().Equal(s.End())))
	qt.Assert(t, qt.PanicMatches(func() {
		s.End().Next()
	}, `hashtab: Next called on end iterator`))
	qt.Assert(t, qt.PanicMatches(func() {
		s.End().Value()
	}, `hashtab: dereference of end iterator`))
}

func TestIterEndWithEmptyLastBucket(t *testing.T) {
	// All values land in one bucket, so the last one stays empty.
	s := hashtab.NewSet[int](4, sameHasher{})
	s.InsertSeq(slices.Values([]int{1, 2, 3}))
	it := s.Begin()
	for range 3 {
		qt.Assert(t, qt.IsFalse(it.AtEnd()))
		it = it.Next()
	}
	qt.Assert(t, qt.IsTrue(it.AtEnd()))
	qt.Assert(t, qt.IsTrue(it.Equal(s.End())))
}

func TestIterDifferentTables(t *testing.T) {
	a := hashtab.NewSet[int](3, intHasher{})
	b := hashtab.NewSet[int](3, intHasher{})
	qt.Assert(t, qt.IsFalse(a.End().Equal(b.End())))
}

func TestIterPtrUpdatesMap(t *testing.T) {
	m := hashtab.NewMap[int, int](4, intHasher{})
	for i := range 8 {
		m.Insert(hashtab.Pair[int, int]{i, 0})
	}
	for it := m.Begin(); !it.AtEnd(); it = it.Next() {
		it.Ptr().Val = it.Value().Key * 10
	}
	for i := range 8 {
		v, ok := hashtab.Lookup(m, i)
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.Equals(v, i*10))
	}
}
