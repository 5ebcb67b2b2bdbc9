package cowstr

import "slices"

// replace replaces the n1 elements of s at pos with data.
// Every operation that changes the length of s goes through here.
//
// pos must be in [0, s.Len()]; n1 is clamped to the elements
// available after pos. The check happens before any buffer
// is touched, so a failed call leaves s unchanged.
func (s *String[E]) replace(op string, pos, n1 int, data []E) {
	r := s.ref()
	checkPos(op, pos, r.length)
	if n1 < 0 {
		panic(&BoundsError{Op: op, Index: n1, Len: r.length - pos})
	}
	n1 = min(n1, r.length-pos)
	n2 := len(data)
	if n1 == 0 && n2 == 0 {
		return
	}
	total := r.length - n1 + n2
	rest := r.length - pos - n1

	if r.exclusive() && r.capacity() >= total {
		if overlaps(r.buf, data) {
			data = slices.Clone(data)
		}
		if n1 != n2 {
			copy(r.buf[pos+n2:], r.buf[pos+n1:pos+n1+rest])
		}
		copy(r.buf[pos:], data)
		r.setLength(total)
		return
	}
	nr := allocRef[E](adjustCapacity(total), total)
	copy(nr.buf, r.buf[:pos])
	copy(nr.buf[pos:], data)
	copy(nr.buf[pos+n2:], r.buf[pos+n1:pos+n1+rest])
	r.unlink()
	s.r = nr
}

// Replace replaces the n elements of s starting at pos with data.
// If fewer than n elements follow pos, all of them are replaced.
// It panics with a *BoundsError if pos is outside [0, s.Len()].
func (s *String[E]) Replace(pos, n int, data []E) {
	s.replace("Replace", pos, n, data)
}

// ReplaceString is like [String.Replace] but takes a Go string.
func (s *String[E]) ReplaceString(pos, n int, str string) {
	s.replace("Replace", pos, n, Lit[E](str))
}

// AssignSlice sets the content of s to a copy of data.
func (s *String[E]) AssignSlice(data []E) {
	s.replace("Assign", 0, s.Len(), data)
}

// AssignString sets the content of s to the elements of str.
func (s *String[E]) AssignString(str string) {
	s.replace("Assign", 0, s.Len(), Lit[E](str))
}

// Append appends data to s.
func (s *String[E]) Append(data []E) {
	s.replace("Append", s.Len(), 0, data)
}

// AppendString appends the elements of str to s.
func (s *String[E]) AppendString(str string) {
	s.replace("Append", s.Len(), 0, Lit[E](str))
}

// AppendFrom appends the content of other to s.
// other may be s itself.
func (s *String[E]) AppendFrom(other *String[E]) {
	s.replace("Append", s.Len(), 0, other.Data())
}

// Prepend inserts data at the start of s.
func (s *String[E]) Prepend(data []E) {
	s.replace("Prepend", 0, 0, data)
}

// PrependString inserts the elements of str at the start of s.
func (s *String[E]) PrependString(str string) {
	s.replace("Prepend", 0, 0, Lit[E](str))
}

// Insert inserts data before the element at pos.
// It panics with a *BoundsError if pos is outside [0, s.Len()].
func (s *String[E]) Insert(pos int, data []E) {
	s.replace("Insert", pos, 0, data)
}

// InsertString is like [String.Insert] but takes a Go string.
func (s *String[E]) InsertString(pos int, str string) {
	s.replace("Insert", pos, 0, Lit[E](str))
}

// Remove removes all elements from pos onwards.
// It panics with a *BoundsError if pos is outside [0, s.Len()].
func (s *String[E]) Remove(pos int) {
	s.replace("Remove", pos, s.Len(), nil)
}

// RemoveN removes up to n elements starting at pos.
// It panics with a *BoundsError if pos is outside [0, s.Len()].
func (s *String[E]) RemoveN(pos, n int) {
	s.replace("Remove", pos, n, nil)
}

// Resize truncates s to n elements, or pads it
// with blanks to n elements.
func (s *String[E]) Resize(n int) {
	if n < 0 {
		panic(&BoundsError{Op: "Resize", Index: n, Len: s.Len()})
	}
	switch l := s.Len(); {
	case n < l:
		s.replace("Resize", n, l-n, nil)
	case n > l:
		pad := make([]E, n-l)
		for i := range pad {
			pad[i] = ' '
		}
		s.replace("Resize", l, 0, pad)
	}
}

// Reserve makes sure s can grow to n elements without
// reallocating and returns the resulting capacity.
// A shared buffer is copied only if it is too small.
func (s *String[E]) Reserve(n int) int {
	if n > s.Cap() {
		s.cowN(n)
	}
	return s.Cap()
}

// Shrink reallocates s's buffer to fit its content exactly when
// s is the buffer's only user and the buffer has spare room.
func (s *String[E]) Shrink() {
	r := s.ref()
	if !r.exclusive() || r.capacity() == r.length {
		return
	}
	nr := allocRef[E](r.length, r.length)
	copy(nr.buf, r.data())
	r.unlink()
	s.r = nr
}
