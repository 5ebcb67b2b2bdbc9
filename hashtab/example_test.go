package hashtab_test

import (
	"fmt"
	"strings"

	"github.com/rogpeppe/rwcore/cowstr"
	"github.com/rogpeppe/rwcore/hashtab"
)

func Example() {
	counts := hashtab.NewMap[*cowstr.Bytes, int](0, cowstr.Hasher[byte]{})
	for _, w := range strings.Fields("the cat sat on the mat the end") {
		it, _ := counts.Insert(hashtab.Pair[*cowstr.Bytes, int]{Key: cowstr.New(w)})
		it.Ptr().Val++
	}
	n, _ := hashtab.Lookup(counts, cowstr.New("the"))
	fmt.Println(counts.Len(), n)
	// Output:
	// 6 3
}

func ExampleMultiMap() {
	m := hashtab.NewMultiMap[string, int](0, hashtab.ComparableHasher[string]{})
	m.Insert(hashtab.Pair[string, int]{"a", 1})
	m.Insert(hashtab.Pair[string, int]{"b", 2})
	m.Insert(hashtab.Pair[string, int]{"a", 3})
	first, last := m.EqualRange("a")
	for it := first; !it.Equal(last); it = it.Next() {
		fmt.Println(it.Value().Val)
	}
	// Output:
	// 1
	// 3
}
