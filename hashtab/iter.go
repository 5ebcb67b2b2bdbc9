package hashtab

// Iterator is a position in a [Table]. It hides bucket boundaries:
// advancing from the last value of one bucket moves to the first
// value of the next non-empty bucket.
//
// The end position is the end of the last bucket. Iterators are
// invalidated by removing the value they refer to and by
// [Table.Resize]. Comparing iterators from different tables
// reports false.
type Iterator[V any] struct {
	st *store[V]
	b  int
	n  *node[V]
}

// Begin returns an iterator at the first value,
// or [Table.End] if the table is empty.
func (t *Table[V, K, H, D, KP]) Begin() Iterator[V] {
	it := Iterator[V]{st: t.st, n: t.st.buckets[0].head}
	return it.skipEmpty()
}

// End returns the end iterator.
func (t *Table[V, K, H, D, KP]) End() Iterator[V] {
	return Iterator[V]{st: t.st, b: len(t.st.buckets) - 1}
}

// skipEmpty moves past the end of empty buckets, but never
// past the last bucket.
func (it Iterator[V]) skipEmpty() Iterator[V] {
	last := len(it.st.buckets) - 1
	for it.n == nil && it.b < last {
		it.b++
		it.n = it.st.buckets[it.b].head
	}
	return it
}

// Next returns an iterator at the value after it.
// It panics if it is at the end.
func (it Iterator[V]) Next() Iterator[V] {
	if it.n == nil {
		panic("hashtab: Next called on end iterator")
	}
	it.n = it.n.next
	return it.skipEmpty()
}

// AtEnd reports whether it is an end iterator.
func (it Iterator[V]) AtEnd() bool {
	return it.n == nil
}

// Value returns the value at it. It panics at the end.
func (it Iterator[V]) Value() V {
	return *it.Ptr()
}

// Ptr returns a pointer to the value at it. It panics at the end.
// Changing the key through the pointer corrupts the table; for maps
// only the Val field may be changed.
func (it Iterator[V]) Ptr() *V {
	if it.n == nil {
		panic("hashtab: dereference of end iterator")
	}
	return &it.n.val
}

// Equal reports whether it and other are the same position
// in the same table.
func (it Iterator[V]) Equal(other Iterator[V]) bool {
	return it.st == other.st && it.b == other.b && it.n == other.n
}
