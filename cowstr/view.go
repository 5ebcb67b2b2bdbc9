package cowstr

import "slices"

// SubString is a writable window onto part of a [String].
// It is created by [String.Sub] or [String.Match].
//
// A view does not keep its string's buffer alive or stable: it
// stays meaningful only while the string is not changed by any
// other route. In particular, assigning through one view may move
// the string's buffer, which leaves the slices returned earlier by
// StartData on every other view of the same string stale.
type SubString[E Char] struct {
	s      *String[E]
	start  int
	extent int
}

// ConstSubString is a read-only window onto part of a [String].
// It is created by [String.ConstSub] or [String.ConstMatch] and
// has the same lifetime rules as [SubString].
type ConstSubString[E Char] struct {
	s      *String[E]
	start  int
	extent int
}

func (s *String[E]) checkView(op string, start, n int) {
	l := s.Len()
	checkPos(op, start, l)
	// n is reported against the room left after start.
	if n < 0 || n > l-start {
		panic(&BoundsError{Op: op, Index: n, Len: l - start})
	}
}

// Sub returns a writable view of the n elements of s starting
// at start. It panics with a *BoundsError unless
// 0 <= start and start+n <= s.Len().
func (s *String[E]) Sub(start, n int) *SubString[E] {
	s.checkView("Sub", start, n)
	return &SubString[E]{s: s, start: start, extent: n}
}

// ConstSub is like [String.Sub] but returns a read-only view.
func (s *String[E]) ConstSub(start, n int) *ConstSubString[E] {
	s.checkView("ConstSub", start, n)
	return &ConstSubString[E]{s: s, start: start, extent: n}
}

// Match returns a writable view of the first occurrence of pat in s.
// If there is none, the view is null: its start is [NotFound].
func (s *String[E]) Match(pat []E) *SubString[E] {
	i := s.Index(pat)
	if i < 0 {
		return &SubString[E]{s: s, start: NotFound}
	}
	return &SubString[E]{s: s, start: i, extent: len(pat)}
}

// ConstMatch is like [String.Match] but returns a read-only view.
func (s *String[E]) ConstMatch(pat []E) *ConstSubString[E] {
	i := s.Index(pat)
	if i < 0 {
		return &ConstSubString[E]{s: s, start: NotFound}
	}
	return &ConstSubString[E]{s: s, start: i, extent: len(pat)}
}

// Start returns the offset of the view in its string,
// or [NotFound].
func (v *SubString[E]) Start() int { return v.start }

// Len returns the number of elements in the view.
func (v *SubString[E]) Len() int { return v.extent }

// IsNull reports whether the view came from a failed match.
func (v *SubString[E]) IsNull() bool { return v.start == NotFound }

// StartData returns the viewed elements as a slice of the
// string's current buffer, or nil for a null view. The slice
// must not be modified and is invalidated by any change to the
// string, including changes made through this or another view.
func (v *SubString[E]) StartData() []E {
	return startData(v.s, v.start, v.extent)
}

// Get returns the i'th element of the view.
// It panics with a *BoundsError if i is out of range.
func (v *SubString[E]) Get(i int) E {
	checkIndex("SubString.Get", i, v.extent)
	return v.s.Get(v.start + i)
}

// Set sets the i'th element of the view to c, through the
// string's copy-on-write path.
// It panics with a *BoundsError if i is out of range.
func (v *SubString[E]) Set(i int, c E) {
	checkIndex("SubString.Set", i, v.extent)
	v.s.replace("SubString.Set", v.start+i, 1, []E{c})
}

// Assign replaces the viewed elements with data. The view then
// covers the new elements. It panics if the view is null.
func (v *SubString[E]) Assign(data []E) {
	if v.IsNull() {
		panic("cowstr: Assign to null SubString")
	}
	v.s.replace("SubString.Assign", v.start, v.extent, data)
	v.extent = len(data)
}

// AssignString is like [SubString.Assign] but takes a Go string.
func (v *SubString[E]) AssignString(str string) {
	v.Assign(Lit[E](str))
}

// Copy returns a new string holding a copy of the viewed elements.
func (v *SubString[E]) Copy() *String[E] {
	return FromSlice(v.StartData())
}

// String returns the viewed elements as a Go string.
func (v *SubString[E]) String() string {
	return toString(v.StartData())
}

// Equal reports whether the view holds exactly the elements of data.
func (v *SubString[E]) Equal(data []E) bool {
	return slices.Equal(v.StartData(), data)
}

// Start returns the offset of the view in its string,
// or [NotFound].
func (v *ConstSubString[E]) Start() int { return v.start }

// Len returns the number of elements in the view.
func (v *ConstSubString[E]) Len() int { return v.extent }

// IsNull reports whether the view came from a failed match.
func (v *ConstSubString[E]) IsNull() bool { return v.start == NotFound }

// StartData is like [SubString.StartData].
func (v *ConstSubString[E]) StartData() []E {
	return startData(v.s, v.start, v.extent)
}

// Get returns the i'th element of the view.
// It panics with a *BoundsError if i is out of range.
func (v *ConstSubString[E]) Get(i int) E {
	checkIndex("ConstSubString.Get", i, v.extent)
	return v.s.Get(v.start + i)
}

// Copy returns a new string holding a copy of the viewed elements.
func (v *ConstSubString[E]) Copy() *String[E] {
	return FromSlice(v.StartData())
}

// String returns the viewed elements as a Go string.
func (v *ConstSubString[E]) String() string {
	return toString(v.StartData())
}

// Equal reports whether the view holds exactly the elements of data.
func (v *ConstSubString[E]) Equal(data []E) bool {
	return slices.Equal(v.StartData(), data)
}

func startData[E Char](s *String[E], start, n int) []E {
	if start == NotFound {
		return nil
	}
	d := s.Data()
	// The string may have shrunk since the view was made.
	start = min(start, len(d))
	return d[start:min(start+n, len(d))]
}
