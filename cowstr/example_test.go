package cowstr_test

import (
	"fmt"

	"github.com/rogpeppe/rwcore/cowstr"
)

func Example() {
	s := cowstr.New("hello")
	t := s.Clone() // shares s's buffer
	t.AppendString(" world")

	v := t.Sub(0, 5)
	v.AssignString("HELLO")

	fmt.Println(s)
	fmt.Println(t)
	fmt.Println(cowstr.Concat(s, t).Len())
	// Output:
	// hello
	// HELLO world
	// 16
}

func ExampleString_Match() {
	s := cowstr.NewWide("größer als")
	if m := s.Match([]rune("als")); !m.IsNull() {
		m.AssignString("than")
	}
	fmt.Println(s, s.Len())
	// Output:
	// größer than 11
}
