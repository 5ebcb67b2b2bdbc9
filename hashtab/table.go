// Package hashtab implements a chained hash table whose
// treatment of duplicate keys and whose notion of a key are
// chosen by type parameters.
//
// A [Table] is parameterized by its value type V, key type K,
// a [Hasher] for keys, a [Duplicates] policy ([Unique] or [Multi])
// and a [KeyPolicy] ([ValueKey] or [PairKey]). The four common
// combinations have aliases: [Set], [MultiSet], [Map] and [MultiMap].
//
// The table never resizes itself; call [Table.Resize] to change
// the number of buckets. Iteration order is unspecified and changes
// when the table is resized.
//
// A Table is not safe for concurrent mutation.
package hashtab

import (
	"hash/maphash"
	"iter"
)

// DefaultBuckets is the number of buckets used when a
// table is created with a non-positive bucket count.
const DefaultBuckets = 64

// Table is a hash table holding values of type V.
// It must be created with [New] or one of the
// alias constructors such as [NewSet] before values are added.
//
// A nil *Table, like the zero Table, is a valid empty table
// for Len, Empty and All.
type Table[V, K any, H Hasher[K], D Duplicates[V], KP KeyPolicy[V, K]] struct {
	st     *store[V]
	hasher H
	seed   maphash.Seed
	dups   D
	keys   KP
}

// store holds the buckets of a table. Iterators refer to the
// store, so they follow the elements when tables are swapped.
type store[V any] struct {
	// buckets is never empty.
	buckets []bucket[V]
	size    int
}

// Set is a table of unique values.
type Set[T any, H Hasher[T]] = Table[T, T, H, Unique[T], ValueKey[T]]

// MultiSet is a table of values that may repeat.
type MultiSet[T any, H Hasher[T]] = Table[T, T, H, Multi[T], ValueKey[T]]

// Map is a table of key-value pairs with unique keys.
type Map[K, M any, H Hasher[K]] = Table[Pair[K, M], K, H, Unique[Pair[K, M]], PairKey[K, M]]

// MultiMap is a table of key-value pairs in which
// a key may appear more than once.
type MultiMap[K, M any, H Hasher[K]] = Table[Pair[K, M], K, H, Multi[Pair[K, M]], PairKey[K, M]]

// New returns an empty table with the given number of buckets,
// or [DefaultBuckets] if buckets is not positive.
func New[V, K any, H Hasher[K], D Duplicates[V], KP KeyPolicy[V, K]](buckets int, h H) *Table[V, K, H, D, KP] {
	if buckets <= 0 {
		buckets = DefaultBuckets
	}
	return &Table[V, K, H, D, KP]{
		st: &store[V]{
			buckets: make([]bucket[V], buckets),
		},
		hasher: h,
		seed:   maphash.MakeSeed(),
	}
}

// FromSeq returns a table holding the values of seq,
// inserted in order.
func FromSeq[V, K any, H Hasher[K], D Duplicates[V], KP KeyPolicy[V, K]](seq iter.Seq[V], buckets int, h H) *Table[V, K, H, D, KP] {
	t := New[V, K, H, D, KP](buckets, h)
	t.InsertSeq(seq)
	return t
}

// NewSet returns an empty [Set].
func NewSet[T any, H Hasher[T]](buckets int, h H) *Set[T, H] {
	return New[T, T, H, Unique[T], ValueKey[T]](buckets, h)
}

// NewMultiSet returns an empty [MultiSet].
func NewMultiSet[T any, H Hasher[T]](buckets int, h H) *MultiSet[T, H] {
	return New[T, T, H, Multi[T], ValueKey[T]](buckets, h)
}

// NewMap returns an empty [Map].
func NewMap[K, M any, H Hasher[K]](buckets int, h H) *Map[K, M, H] {
	return New[Pair[K, M], K, H, Unique[Pair[K, M]], PairKey[K, M]](buckets, h)
}

// NewMultiMap returns an empty [MultiMap].
func NewMultiMap[K, M any, H Hasher[K]](buckets int, h H) *MultiMap[K, M, H] {
	return New[Pair[K, M], K, H, Multi[Pair[K, M]], PairKey[K, M]](buckets, h)
}

// Len returns the number of values in the table.
func (t *Table[V, K, H, D, KP]) Len() int {
	if t == nil || t.st == nil {
		return 0
	}
	return t.st.size
}

// Empty reports whether the table holds no values.
func (t *Table[V, K, H, D, KP]) Empty() bool {
	return t.Len() == 0
}

// Capacity returns the number of buckets.
func (t *Table[V, K, H, D, KP]) Capacity() int {
	return len(t.st.buckets)
}

// FillRatio returns the mean number of values per bucket.
func (t *Table[V, K, H, D, KP]) FillRatio() float64 {
	return float64(t.st.size) / float64(len(t.st.buckets))
}

func (t *Table[V, K, H, D, KP]) hashKey(k K) uint64 {
	var h maphash.Hash
	h.SetSeed(t.seed)
	t.hasher.Hash(&h, k)
	return h.Sum64()
}

func (t *Table[V, K, H, D, KP]) bucketOf(k K) int {
	return int(t.hashKey(k) % uint64(len(t.st.buckets)))
}

func (t *Table[V, K, H, D, KP]) matchKey(k K) func(V) bool {
	return func(v V) bool {
		return t.hasher.Equal(k, t.keys.Key(v))
	}
}

// Insert inserts v. If the table rejects duplicates and already
// holds a value with v's key, the table is unchanged and Insert
// returns an iterator at the existing value and false. Otherwise
// it returns an iterator at the new value and true.
func (t *Table[V, K, H, D, KP]) Insert(v V) (Iterator[V], bool) {
	k := t.keys.Key(v)
	i := t.bucketOf(k)
	n, ok := t.dups.insert(&t.st.buckets[i], v, t.matchKey(k))
	if ok {
		t.st.size++
	}
	return Iterator[V]{st: t.st, b: i, n: n}, ok
}

// InsertHint is like [Table.Insert]. The hint is not used;
// it exists for symmetry with ordered containers.
func (t *Table[V, K, H, D, KP]) InsertHint(hint Iterator[V], v V) Iterator[V] {
	it, _ := t.Insert(v)
	return it
}

// InsertSeq inserts all the values of seq and returns
// the number actually inserted.
func (t *Table[V, K, H, D, KP]) InsertSeq(seq iter.Seq[V]) int {
	n := 0
	for v := range seq {
		if _, ok := t.Insert(v); ok {
			n++
		}
	}
	return n
}

// Find returns an iterator at the first value with key k,
// or [Table.End] if there is none.
func (t *Table[V, K, H, D, KP]) Find(k K) Iterator[V] {
	i := t.bucketOf(k)
	n := *t.st.buckets[i].find(t.matchKey(k))
	if n == nil {
		return t.End()
	}
	return Iterator[V]{st: t.st, b: i, n: n}
}

// Contains reports whether the table holds a value with key k.
func (t *Table[V, K, H, D, KP]) Contains(k K) bool {
	return !t.Find(k).AtEnd()
}

// Count returns the number of values with key k.
func (t *Table[V, K, H, D, KP]) Count(k K) int {
	i := t.bucketOf(k)
	return t.dups.count(&t.st.buckets[i], t.matchKey(k))
}

// EqualRange returns the range [first, last) of the values with
// key k. Both are [Table.End] if there are none.
func (t *Table[V, K, H, D, KP]) EqualRange(k K) (first, last Iterator[V]) {
	first = t.Find(k)
	if first.AtEnd() {
		return first, first
	}
	last = Iterator[V]{
		st: t.st,
		b:  first.b,
		n:  t.dups.nextNotEqual(first.n, t.matchKey(k)),
	}
	return first, last.skipEmpty()
}

// Erase removes the values with key k and returns
// how many were removed.
func (t *Table[V, K, H, D, KP]) Erase(k K) int {
	i := t.bucketOf(k)
	n := t.dups.erase(&t.st.buckets[i], t.matchKey(k))
	t.st.size -= n
	return n
}

// EraseAt removes the value at it and returns an iterator at the
// value that followed it. It panics if it is an end iterator or
// belongs to another table.
func (t *Table[V, K, H, D, KP]) EraseAt(it Iterator[V]) Iterator[V] {
	if it.st != t.st {
		panic("hashtab: EraseAt with iterator from another table")
	}
	if it.n == nil {
		panic("hashtab: EraseAt at end")
	}
	b := &t.st.buckets[it.b]
	link := b.linkOf(it.n)
	if link == nil {
		panic("hashtab: EraseAt with stale iterator")
	}
	next := Iterator[V]{st: t.st, b: it.b, n: it.n.next}
	b.removeAt(link)
	t.st.size--
	return next.skipEmpty()
}

// EraseRange removes the values in [first, last) and returns last.
func (t *Table[V, K, H, D, KP]) EraseRange(first, last Iterator[V]) Iterator[V] {
	for !first.Equal(last) {
		first = t.EraseAt(first)
	}
	return first
}

// Clear removes all values, keeping the bucket count.
func (t *Table[V, K, H, D, KP]) Clear() {
	clear(t.st.buckets)
	t.st.size = 0
}

// Resize rehashes the table into n buckets. It does nothing if n
// is not positive or is the current bucket count.
//
// Each node is moved, not copied, to the end of its new bucket in
// the order it is found, so values with equal keys stay adjacent
// and keep their relative order.
func (t *Table[V, K, H, D, KP]) Resize(n int) {
	if n <= 0 || n == len(t.st.buckets) {
		return
	}
	old := t.st.buckets
	t.st.buckets = make([]bucket[V], n)
	tails := make([]*node[V], n)
	for i := range old {
		for nd := old[i].popFront(); nd != nil; nd = old[i].popFront() {
			j := t.bucketOf(t.keys.Key(nd.val))
			t.st.buckets[j].appendAfter(tails[j], nd)
			tails[j] = nd
		}
	}
}

// Swap exchanges the contents, hashers and seeds of t and u.
// No values are moved. Iterators stay with their values.
func (t *Table[V, K, H, D, KP]) Swap(u *Table[V, K, H, D, KP]) {
	t.st, u.st = u.st, t.st
	t.hasher, u.hasher = u.hasher, t.hasher
	t.seed, u.seed = u.seed, t.seed
}

// All returns an iterator over all values in unspecified order.
//
// The table must not be changed during iteration.
func (t *Table[V, K, H, D, KP]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		if t == nil || t.st == nil {
			return
		}
		for i := range t.st.buckets {
			for n := t.st.buckets[i].head; n != nil; n = n.next {
				if !yield(n.val) {
					return
				}
			}
		}
	}
}

// Lookup returns the value associated with k in a map
// and reports whether it was found. For a multimap it
// returns the first value with key k.
func Lookup[K, M any, H Hasher[K], D Duplicates[Pair[K, M]]](t *Table[Pair[K, M], K, H, D, PairKey[K, M]], k K) (M, bool) {
	it := t.Find(k)
	if it.AtEnd() {
		return *new(M), false
	}
	return it.Value().Val, true
}
