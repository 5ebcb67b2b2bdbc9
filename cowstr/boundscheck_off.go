//go:build !cowstr_boundscheck

package cowstr

// boundsCheck enables index checking in String.Elem.
// Build with the cowstr_boundscheck tag to turn it on.
const boundsCheck = false
