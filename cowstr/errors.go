package cowstr

import "fmt"

// BoundsError is the panic value for an index or position outside
// the valid range of a string or view. Nothing is modified by
// an operation that fails this way.
type BoundsError struct {
	// Op names the method that failed.
	Op string
	// Index holds the offending index or position.
	Index int
	// Len holds the length that Index was checked against.
	Len int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cowstr: %s: index %d out of range [0:%d]", e.Op, e.Index, e.Len)
}

// checkIndex panics unless 0 <= i < n.
func checkIndex(op string, i, n int) {
	if i < 0 || i >= n {
		panic(&BoundsError{Op: op, Index: i, Len: n})
	}
}

// checkPos panics unless 0 <= pos <= n.
func checkPos(op string, pos, n int) {
	if pos < 0 || pos > n {
		panic(&BoundsError{Op: op, Index: pos, Len: n})
	}
}
