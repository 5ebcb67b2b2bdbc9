//go:build cowstr_boundscheck

package cowstr

const boundsCheck = true
