package hashtab

// KeyPolicy extracts the key that a stored value is hashed
// and compared by. Implementations are stateless: the zero
// value is used.
type KeyPolicy[V, K any] interface {
	Key(V) K
}

// ValueKey is the [KeyPolicy] of sets: a value is its own key.
type ValueKey[V any] struct{}

func (ValueKey[V]) Key(v V) V { return v }

// Pair is the value type of maps.
type Pair[K, M any] struct {
	Key K
	Val M
}

// PairKey is the [KeyPolicy] of maps: the key of a
// pair is its Key field.
type PairKey[K, M any] struct{}

func (PairKey[K, M]) Key(p Pair[K, M]) K { return p.Key }

// Duplicates decides what happens when a value is inserted
// into a bucket that already holds values with the same key.
// It is implemented only by [Unique] and [Multi].
//
// Each method is passed a predicate that reports whether a
// value has the key in question.
type Duplicates[V any] interface {
	// insert inserts v and returns its node and true, or returns
	// an existing node and false if v must not be inserted.
	insert(b *bucket[V], v V, match func(V) bool) (*node[V], bool)

	// nextNotEqual returns the first node after n, which
	// must match, that does not belong to n's run of
	// matching nodes.
	nextNotEqual(n *node[V], match func(V) bool) *node[V]

	count(b *bucket[V], match func(V) bool) int
	erase(b *bucket[V], match func(V) bool) int
}

// Unique rejects a value whose key is already present,
// giving set and map semantics.
type Unique[V any] struct{}

func (Unique[V]) insert(b *bucket[V], v V, match func(V) bool) (*node[V], bool) {
	if n := *b.find(match); n != nil {
		return n, false
	}
	n := &node[V]{val: v}
	b.pushFront(n)
	return n, true
}

func (Unique[V]) nextNotEqual(n *node[V], match func(V) bool) *node[V] {
	return n.next
}

func (Unique[V]) count(b *bucket[V], match func(V) bool) int {
	if *b.find(match) != nil {
		return 1
	}
	return 0
}

func (Unique[V]) erase(b *bucket[V], match func(V) bool) int {
	link := b.find(match)
	if *link == nil {
		return 0
	}
	b.removeAt(link)
	return 1
}

// Multi accepts any number of values with the same key,
// giving multiset and multimap semantics. Values with equal
// keys are kept next to each other in insertion order.
type Multi[V any] struct{}

func (Multi[V]) insert(b *bucket[V], v V, match func(V) bool) (*node[V], bool) {
	n := &node[V]{val: v}
	last := *b.find(match)
	if last == nil {
		b.pushFront(n)
		return n, true
	}
	for last.next != nil && match(last.next.val) {
		last = last.next
	}
	b.insertAfter(last, n)
	return n, true
}

func (Multi[V]) nextNotEqual(n *node[V], match func(V) bool) *node[V] {
	for n = n.next; n != nil && match(n.val); n = n.next {
	}
	return n
}

func (Multi[V]) count(b *bucket[V], match func(V) bool) int {
	k := 0
	for n := *b.find(match); n != nil && match(n.val); n = n.next {
		k++
	}
	return k
}

func (Multi[V]) erase(b *bucket[V], match func(V) bool) int {
	k := 0
	for link := b.find(match); *link != nil && match((*link).val); k++ {
		b.removeAt(link)
	}
	return k
}
