package hashtab

// node is an element of a bucket.
type node[V any] struct {
	val  V
	next *node[V]
}

// bucket is a singly linked sequence of nodes.
// Nodes move between buckets by splicing; they are never copied.
type bucket[V any] struct {
	head *node[V]
	len  int
}

func (b *bucket[V]) pushFront(n *node[V]) {
	n.next = b.head
	b.head = n
	b.len++
}

// insertAfter links n into b immediately after prev,
// which must be in b.
func (b *bucket[V]) insertAfter(prev, n *node[V]) {
	n.next = prev.next
	prev.next = n
	b.len++
}

// appendAfter links n onto the end of b, where tail is the
// current last node of b or nil if b is empty.
func (b *bucket[V]) appendAfter(tail, n *node[V]) {
	n.next = nil
	if tail == nil {
		b.head = n
	} else {
		tail.next = n
	}
	b.len++
}

func (b *bucket[V]) popFront() *node[V] {
	n := b.head
	if n == nil {
		return nil
	}
	b.head = n.next
	n.next = nil
	b.len--
	return n
}

// find returns the link that points to the first node
// whose value satisfies match. If there is none, the link
// points to nil.
func (b *bucket[V]) find(match func(V) bool) **node[V] {
	link := &b.head
	for *link != nil && !match((*link).val) {
		link = &(*link).next
	}
	return link
}

// linkOf returns the link that points to n, or nil
// if n is not in b.
func (b *bucket[V]) linkOf(n *node[V]) **node[V] {
	for link := &b.head; *link != nil; link = &(*link).next {
		if *link == n {
			return link
		}
	}
	return nil
}

// removeAt unlinks and returns the node that link points to.
func (b *bucket[V]) removeAt(link **node[V]) *node[V] {
	n := *link
	*link = n.next
	n.next = nil
	b.len--
	return n
}
