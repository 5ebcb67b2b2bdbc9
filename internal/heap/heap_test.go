// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"math/rand"
	"slices"
	"testing"
)

func intLess(a, b int) bool {
	return a < b
}

func verifyHeap(t *testing.T, h *Heap[int], i int) {
	t.Helper()
	n := len(h.Items)
	for _, j := range []int{2*i + 1, 2*i + 2} {
		if j >= n {
			continue
		}
		if h.Items[j] < h.Items[i] {
			t.Errorf("heap invariant invalidated [%d] = %d > [%d] = %d", i, h.Items[i], j, h.Items[j])
			return
		}
		verifyHeap(t, h, j)
	}
}

func TestPushPop(t *testing.T) {
	var items []int
	for i := 20; i > 10; i-- {
		items = append(items, i)
	}
	h := New(items, intLess)
	verifyHeap(t, h, 0)

	for i := 10; i > 0; i-- {
		h.Push(i)
		verifyHeap(t, h, 0)
	}

	for i := 1; h.Len() > 0; i++ {
		x := h.Pop()
		if i < 20 {
			h.Push(20 + i)
		}
		verifyHeap(t, h, 0)
		if x != i {
			t.Errorf("%d.th pop got %d; want %d", i, x, i)
		}
	}
}

func TestAllEqual(t *testing.T) {
	h := New(make([]int, 10), intLess)
	verifyHeap(t, h, 0)
	for i := 1; h.Len() > 0; i++ {
		if x := h.Pop(); x != 0 {
			t.Errorf("%d.th pop got %d; want 0", i, x)
		}
		verifyHeap(t, h, 0)
	}
}

func TestReplaceMin(t *testing.T) {
	h := New(nil, intLess)
	for i := 200; i > 0; i -= 10 {
		h.Push(i)
	}
	if h.Items[0] != 10 {
		t.Fatalf("expected head to be 10, was %d", h.Items[0])
	}
	for i := 0; i < 100; i++ {
		h.ReplaceMin(rand.Intn(300))
		verifyHeap(t, h, 0)
	}
	if h.Len() != 20 {
		t.Fatalf("got %d items; want 20", h.Len())
	}
}

func TestTop(t *testing.T) {
	items := rand.Perm(100)
	for _, k := range []int{1, 5, 100, 150} {
		got := Top(slices.Values(items), k, intLess)
		want := min(k, 100)
		if len(got) != want {
			t.Fatalf("Top %d returned %d items; want %d", k, len(got), want)
		}
		for i, x := range got {
			if x != 99-i {
				t.Errorf("Top %d: item %d is %d; want %d", k, i, x, 99-i)
			}
		}
	}
	all := Top(slices.Values(items), 0, intLess)
	if len(all) != 100 || all[0] != 99 || all[99] != 0 {
		t.Errorf("Top 0 returned %d items from %v to %v", len(all), all[0], all[len(all)-1])
	}
	if got := Top(slices.Values([]int(nil)), 3, intLess); len(got) != 0 {
		t.Errorf("Top of empty sequence returned %v", got)
	}
}
