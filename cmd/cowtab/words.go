package main

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/rogpeppe/rwcore/cowstr"
	"github.com/rogpeppe/rwcore/hashtab"
)

type (
	wordHasher = cowstr.Hasher[byte]
	wordSet    = hashtab.Set[*cowstr.Bytes, wordHasher]
	wordBag    = hashtab.MultiSet[*cowstr.Bytes, wordHasher]
	countMap   = hashtab.Map[*cowstr.Bytes, int, wordHasher]
	wordCount  = hashtab.Pair[*cowstr.Bytes, int]
)

// maxToken is the longest run of non-space text scanWords accepts.
const maxToken = 1 << 20

// scanWords calls f with each lower-cased word read from r.
// A word is a maximal run of letters and digits.
func scanWords(r io.Reader, f func(w string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxToken)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		fields := strings.FieldsFunc(sc.Text(), func(c rune) bool {
			return !unicode.IsLetter(c) && !unicode.IsDigit(c)
		})
		for _, w := range fields {
			f(strings.ToLower(w))
		}
	}
	return errors.Wrap(sc.Err(), "cannot read words")
}

// intern returns the interned copy of w, adding it to the set if needed.
// The result shares its buffer with the set's entry; the caller owns it.
func intern(set *wordSet, w string) *cowstr.Bytes {
	s := cowstr.New(w)
	it, ok := set.Insert(s)
	if !ok {
		s.Release()
	}
	return it.Value().Clone()
}
