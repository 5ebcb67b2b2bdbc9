package hashtab

import "hash/maphash"

// A Hasher hashes and compares the keys of a [Table]. The key of a
// stored value is chosen by the table's [KeyPolicy]: a set hashes
// whole values, a map hashes only the Key field of each [Pair].
//
// Hash and Equal must agree: if Equal(x, y) then Hash must write
// the same data for x and y. A Hasher that breaks this is not
// detected; lookups simply miss.
//
// Hashers are stateless. The table seeds the hash itself.
type Hasher[K any] interface {
	Hash(*maphash.Hash, K)
	Equal(x, y K) bool
}

// ComparableHasher hashes and compares keys of a comparable type
// with maphash and ==, the same way a built-in map would.
type ComparableHasher[K comparable] struct {
	// Keeps ComparableHasher[X] distinct from ComparableHasher[Y].
	_ [0]func(K)
}

func (ComparableHasher[K]) Hash(h *maphash.Hash, k K) { maphash.WriteComparable(h, k) }

func (ComparableHasher[K]) Equal(x, y K) bool { return x == y }
