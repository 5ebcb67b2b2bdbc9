// Package cowstr implements copy-on-write strings backed by
// reference-counted buffers.
//
// A [String] is a handle to a shared buffer. Cloning a String
// ([String.Clone], [String.Assign]) shares the buffer and is O(1);
// the buffer is copied only when a handle that shares it is about
// to be changed. Views ([SubString], [ConstSubString]) are windows
// onto the current buffer of the string that created them.
//
// Go has no copy constructors or destructors, so a String is always
// used through a pointer: [String.Clone] takes the place of a copy and
// [String.Release] takes the place of a destructor. Copying a String
// value directly bypasses the reference count and breaks
// copy-on-write; go vet reports such copies.
//
// NOTE reference counts are not atomic. Strings that share a buffer
// must not be used concurrently from different goroutines without
// external synchronization, even if every goroutine only reads
// through [String.Ref] or other methods that may copy.
package cowstr

import (
	"slices"

	"golang.org/x/text/collate"
)

// NotFound is the start offset of a view that does not refer to
// any part of its string, such as the result of a failed match.
const NotFound = -1

// noCopy makes go vet's copylocks check report copies of
// the struct that contains it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// String is a copy-on-write string of E elements.
//
// The zero value is an empty string ready to use. A nil *String
// behaves as an empty string for read-only methods.
type String[E Char] struct {
	_ noCopy
	r *stringRef[E]
}

// Bytes is a narrow string.
type Bytes = String[byte]

// Wide is a wide string holding one code point per element.
type Wide = String[rune]

var resizeIncrement = 16

// SetResizeIncrement sets the granularity to which buffer
// capacities are rounded up when a string grows, and returns
// the previous value. It panics if n is not positive.
//
// It is not safe to call concurrently with any other function in
// this package.
func SetResizeIncrement(n int) int {
	if n <= 0 {
		panic("cowstr: non-positive resize increment")
	}
	old := resizeIncrement
	resizeIncrement = n
	return old
}

func adjustCapacity(n int) int {
	return (n + resizeIncrement - 1) / resizeIncrement * resizeIncrement
}

// New returns a narrow string holding the bytes of s.
func New(s string) *Bytes {
	return FromSlice(Lit[byte](s))
}

// NewWide returns a wide string holding the code points of s.
func NewWide(s string) *Wide {
	return FromSlice(Lit[rune](s))
}

// Empty returns a new empty string.
func Empty[E Char]() *String[E] {
	return &String[E]{}
}

// FromSlice returns a string holding a copy of data.
// Its capacity is exactly len(data).
func FromSlice[E Char](data []E) *String[E] {
	if len(data) == 0 {
		return Empty[E]()
	}
	r := allocRef[E](len(data), len(data))
	copy(r.buf, data)
	return &String[E]{r: r}
}

// Fill returns a string holding n copies of c.
func Fill[E Char](n int, c E) *String[E] {
	if n < 0 {
		panic(&BoundsError{Op: "Fill", Index: n, Len: 0})
	}
	if n == 0 {
		return Empty[E]()
	}
	r := allocRef[E](n, n)
	for i := range n {
		r.buf[i] = c
	}
	return &String[E]{r: r}
}

// WithCapacity returns an empty string with room for
// at least n elements.
func WithCapacity[E Char](n int) *String[E] {
	if n <= 0 {
		return Empty[E]()
	}
	return &String[E]{r: allocRef[E](adjustCapacity(n), 0)}
}

// Concat returns a string holding the elements of a followed
// by those of b. If either is empty, the result shares the
// other's buffer.
func Concat[E Char](a, b *String[E]) *String[E] {
	if a.Len() == 0 {
		return b.Clone()
	}
	return concat(a.ref(), b.Data())
}

// ConcatSlice is like [Concat] but takes the second operand
// as a slice.
func ConcatSlice[E Char](a *String[E], data []E) *String[E] {
	return concat(a.ref(), data)
}

// concat is the only place that allocates for a concatenation.
func concat[E Char](a *stringRef[E], data []E) *String[E] {
	if len(data) == 0 {
		a.link()
		return &String[E]{r: a}
	}
	n := a.length + len(data)
	r := allocRef[E](n, n)
	copy(r.buf, a.data())
	copy(r.buf[a.length:], data)
	return &String[E]{r: r}
}

// ref returns the buffer s refers to without attaching the
// empty buffer to the zero String.
func (s *String[E]) ref() *stringRef[E] {
	if s == nil || s.r == nil {
		return emptyRef[E]()
	}
	return s.r
}

// Clone returns a new handle sharing s's buffer.
func (s *String[E]) Clone() *String[E] {
	r := s.ref()
	r.link()
	return &String[E]{r: r}
}

// Assign makes s share other's buffer, releasing
// whatever s referred to before.
func (s *String[E]) Assign(other *String[E]) {
	r := other.ref()
	if r == s.ref() {
		return
	}
	r.link()
	s.ref().unlink()
	s.r = r
}

// MoveFrom moves src's content into s without touching any
// reference count. src is left holding s's previous content;
// it remains valid and should be released as usual.
func (s *String[E]) MoveFrom(src *String[E]) {
	s.Swap(src)
}

// Swap exchanges the contents of s and other in O(1).
func (s *String[E]) Swap(other *String[E]) {
	s.r, other.r = other.r, s.r
}

// Release drops s's reference to its buffer, leaving s empty.
// The buffer is freed when its last handle is released.
func (s *String[E]) Release() {
	s.ref().unlink()
	s.r = nil
}

// Len returns the number of elements in s.
func (s *String[E]) Len() int {
	return s.ref().length
}

// Cap returns the number of elements s can hold
// before its buffer must be reallocated.
func (s *String[E]) Cap() int {
	return s.ref().capacity()
}

// IsNull reports whether s is empty. There is no distinct
// unassigned state.
func (s *String[E]) IsNull() bool {
	return s.Len() == 0
}

// Data returns the elements of s. The result aliases the
// buffer, which may be shared: it must not be modified, and
// it is only valid until the next change to s.
func (s *String[E]) Data() []E {
	return s.ref().data()
}

// String returns s as a Go string. See [Lit] for the encoding.
func (s *String[E]) String() string {
	return toString(s.Data())
}

// Hash returns a hash of the elements of s that is
// stable across processes.
func (s *String[E]) Hash() uint64 {
	return s.ref().hash()
}

// Index returns the index of the first occurrence of pat in s,
// or -1 if there is none.
func (s *String[E]) Index(pat []E) int {
	return s.ref().index(pat)
}

// IndexElem returns the index of the first c in s, or -1.
func (s *String[E]) IndexElem(c E) int {
	return s.ref().indexElem(c)
}

// LastIndexElem returns the index of the last c in s, or -1.
func (s *String[E]) LastIndexElem(c E) int {
	return s.ref().lastIndexElem(c)
}

// Contains reports whether pat occurs in s.
func (s *String[E]) Contains(pat []E) bool {
	return s.Index(pat) >= 0
}

// Equal reports whether s and other hold the same elements.
func (s *String[E]) Equal(other *String[E]) bool {
	a, b := s.ref(), other.ref()
	if a.length != b.length {
		return false
	}
	return a == b || slices.Equal(a.data(), b.data())
}

// Compare compares s and other element by element, returning
// -1, 0 or +1. It is consistent with [String.Equal].
func (s *String[E]) Compare(other *String[E]) int {
	return slices.Compare(s.Data(), other.Data())
}

// Collate compares s and other using the given collator,
// returning -1, 0 or +1. A nil collator uses the root locale.
// Collators are not safe for concurrent use.
func (s *String[E]) Collate(other *String[E], c *collate.Collator) int {
	return s.ref().collate(other.ref(), c)
}

// Get returns the element at index i. It panics with a
// *BoundsError if i is out of range. It never copies.
func (s *String[E]) Get(i int) E {
	r := s.ref()
	checkIndex("Get", i, r.length)
	return r.at(i)
}

// Set sets the element at index i to c, copying
// the buffer first if it is shared.
// It panics with a *BoundsError if i is out of range.
func (s *String[E]) Set(i int, c E) {
	checkIndex("Set", i, s.Len())
	s.cow()
	s.r.buf[i] = c
}

// Ref returns a pointer to the element at index i.
// Because the element may be written through the pointer, Ref
// always makes s's buffer private first, even when the caller
// only reads. The pointer is valid until the next change to s.
// It panics with a *BoundsError if i is out of range.
func (s *String[E]) Ref(i int) *E {
	checkIndex("Ref", i, s.Len())
	s.cow()
	return &s.r.buf[i]
}

// Elem is like [String.Ref] but performs no range check unless
// the package is built with the cowstr_boundscheck tag. Without
// the check, an index between Len and Cap inclusive yields a pointer
// into unused storage; larger indexes panic in the runtime.
func (s *String[E]) Elem(i int) *E {
	if boundsCheck {
		checkIndex("Elem", i, s.Len())
	}
	s.cow()
	return &s.r.buf[i]
}

// cow makes s's buffer private to s.
func (s *String[E]) cow() {
	s.cowN(s.Len())
}

// cowN makes s's buffer private to s with room for
// at least n elements. It is the only place that decides
// between in-place change and copying for callers that
// mutate elements in place.
func (s *String[E]) cowN(n int) {
	r := s.ref()
	if r.exclusive() && r.capacity() >= n {
		return
	}
	nr := allocRef[E](adjustCapacity(max(n, r.length)), r.length)
	copy(nr.buf, r.data())
	r.unlink()
	s.r = nr
}
