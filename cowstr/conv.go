package cowstr

import (
	"unicode/utf16"
	"unsafe"
)

func elemSize[E Char]() int {
	var e E
	return int(unsafe.Sizeof(e))
}

// Lit converts the Go string s to a slice of elements:
// bytes are copied verbatim, uint16 elements hold UTF-16
// code units and rune elements hold code points.
func Lit[E Char](s string) []E {
	switch elemSize[E]() {
	case 1:
		out := make([]E, len(s))
		for i := 0; i < len(s); i++ {
			out[i] = E(s[i])
		}
		return out
	case 2:
		u := utf16.Encode([]rune(s))
		out := make([]E, len(u))
		for i, c := range u {
			out[i] = E(c)
		}
		return out
	}
	out := make([]E, 0, len(s))
	for _, c := range s {
		out = append(out, E(c))
	}
	return out
}

// toString is the inverse of Lit.
func toString[E Char](data []E) string {
	switch elemSize[E]() {
	case 1:
		b := make([]byte, len(data))
		for i, c := range data {
			b[i] = byte(c)
		}
		return string(b)
	case 2:
		u := make([]uint16, len(data))
		for i, c := range data {
			u[i] = uint16(c)
		}
		return string(utf16.Decode(u))
	}
	rs := make([]rune, len(data))
	for i, c := range data {
		rs[i] = rune(c)
	}
	return string(rs)
}

// appendLE appends the little-endian encoding of data to dst.
func appendLE[E Char](dst []byte, data []E) []byte {
	size := elemSize[E]()
	for _, c := range data {
		v := uint32(c)
		for j := 0; j < size; j++ {
			dst = append(dst, byte(v>>(8*j)))
		}
	}
	return dst
}

// fromLE decodes elements encoded by appendLE.
// The length of b must be a multiple of the element size.
func fromLE[E Char](b []byte) []E {
	size := elemSize[E]()
	out := make([]E, len(b)/size)
	for i := range out {
		var v uint32
		for j := 0; j < size; j++ {
			v |= uint32(b[i*size+j]) << (8 * j)
		}
		out[i] = E(v)
	}
	return out
}

// overlaps reports whether a and b share any backing memory.
func overlaps[E Char](a, b []E) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	size := uintptr(elemSize[E]())
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return a0 < b0+uintptr(len(b))*size && b0 < a0+uintptr(len(a))*size
}
