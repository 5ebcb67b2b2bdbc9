package cowstr

import (
	"sync"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Char is the set of element types a [String] can hold:
// bytes for narrow strings, runes for wide strings
// and uint16 for UTF-16 code units.
type Char interface {
	~byte | ~uint16 | ~rune
}

// stringRef is the shared, reference-counted buffer behind one
// or more String handles.
//
// buf always has capacity+1 elements and buf[length] is always
// the zero element.
//
// The reference count is deliberately a plain int: link and
// unlink are not synchronized, so handles sharing a buffer must
// not be used from more than one goroutine without external locking.
type stringRef[E Char] struct {
	buf    []E
	length int
	refs   int

	// immortal is set only for the per-type empty buffer.
	// Its reference count is never changed.
	immortal bool
}

// allocRef returns a new buffer holding a reference count of one.
// The first length elements are zero.
func allocRef[E Char](capacity, length int) *stringRef[E] {
	if length > capacity {
		panic("cowstr: allocRef length exceeds capacity")
	}
	return &stringRef[E]{
		buf:    make([]E, capacity+1),
		length: length,
		refs:   1,
	}
}

type emptyKey[E Char] struct{}

// emptyKey[E] -> *stringRef[E]
var empties sync.Map

// emptyRef returns the zero-length buffer for element type E,
// creating it on first use. It lives for the rest of the process
// and is never mutated.
func emptyRef[E Char]() *stringRef[E] {
	key := emptyKey[E]{}
	if r, ok := empties.Load(key); ok {
		return r.(*stringRef[E])
	}
	r, _ := empties.LoadOrStore(key, &stringRef[E]{
		buf:      make([]E, 1),
		refs:     1,
		immortal: true,
	})
	return r.(*stringRef[E])
}

func (r *stringRef[E]) link() {
	if r.immortal {
		return
	}
	if r.refs <= 0 {
		panic("cowstr: link of released buffer")
	}
	r.refs++
}

func (r *stringRef[E]) unlink() {
	if r.immortal {
		return
	}
	if r.refs <= 0 {
		panic("cowstr: unlink of released buffer")
	}
	r.refs--
	if r.refs == 0 {
		r.buf = nil
		r.length = 0
	}
}

// exclusive reports whether the caller holds the only reference,
// which is the condition for mutating the buffer in place.
func (r *stringRef[E]) exclusive() bool {
	return !r.immortal && r.refs == 1
}

func (r *stringRef[E]) capacity() int {
	return len(r.buf) - 1
}

func (r *stringRef[E]) setLength(n int) {
	r.length = n
	r.buf[n] = 0
}

func (r *stringRef[E]) data() []E {
	return r.buf[:r.length:r.length]
}

func (r *stringRef[E]) at(i int) E {
	return r.buf[i]
}

func (r *stringRef[E]) indexElem(c E) int {
	for i, x := range r.data() {
		if x == c {
			return i
		}
	}
	return -1
}

func (r *stringRef[E]) lastIndexElem(c E) int {
	d := r.data()
	for i := len(d) - 1; i >= 0; i-- {
		if d[i] == c {
			return i
		}
	}
	return -1
}

// index returns the position of the first occurrence of pat,
// or -1. The empty pattern matches at zero.
func (r *stringRef[E]) index(pat []E) int {
	d := r.data()
	n := len(pat)
	if n == 0 {
		return 0
	}
outer:
	for i := 0; i+n <= len(d); i++ {
		if d[i] != pat[0] {
			continue
		}
		for j := 1; j < n; j++ {
			if d[i+j] != pat[j] {
				continue outer
			}
		}
		return i
	}
	return -1
}

// hash returns the xxhash of the little-endian encoding of the
// elements, which is the same in every process.
func (r *stringRef[E]) hash() uint64 {
	d := r.data()
	if elemSize[E]() == 1 {
		return xxhash.Sum64(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(d))), len(d)))
	}
	h := xxhash.New()
	var chunk [256]byte
	for len(d) > 0 {
		n := min(len(d), len(chunk)/elemSize[E]())
		h.Write(appendLE(chunk[:0], d[:n]))
		d = d[n:]
	}
	return h.Sum64()
}

func (r *stringRef[E]) collate(other *stringRef[E], c *collate.Collator) int {
	if c == nil {
		c = collate.New(language.Und)
	}
	return c.CompareString(toString(r.data()), toString(other.data()))
}
