package hashtab

// EqualFunc reports whether t and u hold the same values,
// using eq to compare values with equal keys. For each key the
// values under it in t must match those under it in u one to one,
// in any order.
func (t *Table[V, K, H, D, KP]) EqualFunc(u *Table[V, K, H, D, KP], eq func(x, y V) bool) bool {
	if t.Len() != u.Len() {
		return false
	}
	var left, right []V
	for i := range t.st.buckets {
		for n := t.st.buckets[i].head; n != nil; {
			k := t.keys.Key(n.val)
			end := t.dups.nextNotEqual(n, t.matchKey(k))
			left = left[:0]
			for ; n != end; n = n.next {
				left = append(left, n.val)
			}
			right = right[:0]
			first, last := u.EqualRange(k)
			for it := first; !it.Equal(last); it = it.Next() {
				right = append(right, it.Value())
			}
			if !matchAll(left, right, eq) {
				return false
			}
		}
	}
	return true
}

// Equal reports whether a and b hold the same values.
// See [Table.EqualFunc].
func Equal[V comparable, K any, H Hasher[K], D Duplicates[V], KP KeyPolicy[V, K]](a, b *Table[V, K, H, D, KP]) bool {
	return a.EqualFunc(b, func(x, y V) bool {
		return x == y
	})
}

// matchAll reports whether there is a one to one correspondence
// between left and right under eq, which must be an
// equivalence relation.
func matchAll[V any](left, right []V, eq func(x, y V) bool) bool {
	if len(left) != len(right) {
		return false
	}
	used := make([]bool, len(right))
outer:
	for _, x := range left {
		for j, y := range right {
			if !used[j] && eq(x, y) {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}
