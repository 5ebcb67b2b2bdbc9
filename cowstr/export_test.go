package cowstr

import "unsafe"

// DataAddr returns the address of s's buffer without
// going through copy-on-write.
func DataAddr[E Char](s *String[E]) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(s.ref().buf)))
}

// Refs returns the reference count of s's buffer.
func Refs[E Char](s *String[E]) int {
	return s.ref().refs
}

// Terminator returns the element just past the end of s.
func Terminator[E Char](s *String[E]) E {
	r := s.ref()
	return r.buf[r.length]
}

const BoundsCheck = boundsCheck
