package cowstr

import "hash/maphash"

// Hasher hashes and compares strings by content. It satisfies
// the hasher constraint of the hashtab package, so *String values
// can be used as hash table keys. Strings used as keys must not be
// changed while they are in a table.
type Hasher[E Char] struct{}

func (Hasher[E]) Hash(h *maphash.Hash, s *String[E]) { maphash.WriteComparable(h, s.Hash()) }
func (Hasher[E]) Equal(x, y *String[E]) bool         { return x.Equal(y) }
