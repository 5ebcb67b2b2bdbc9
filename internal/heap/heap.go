// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap provides a binary min-heap over a slice and a
// bounded selection of the largest values of a sequence.
package heap

import (
	"iter"
	"slices"
)

// Heap is a binary min-heap ordered by a less function.
type Heap[E any] struct {
	// Items holds all the items in the heap. The first item is
	// not greater than any other.
	Items []E
	less  func(E, E) bool
}

// New returns a heap holding items, which it takes ownership of.
// The complexity is O(n) where n = len(items).
func New[E any](items []E, less func(E, E) bool) *Heap[E] {
	h := &Heap[E]{
		Items: items,
		less:  less,
	}
	n := len(h.Items)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
	return h
}

// Len returns the number of items in the heap.
func (h *Heap[E]) Len() int {
	return len(h.Items)
}

// Push adds x to the heap in O(log n).
func (h *Heap[E]) Push(x E) {
	h.Items = append(h.Items, x)
	h.up(len(h.Items) - 1)
}

// Pop removes and returns the least item in O(log n).
// It panics if the heap is empty.
func (h *Heap[E]) Pop() E {
	n := len(h.Items) - 1
	h.Items[0], h.Items[n] = h.Items[n], h.Items[0]
	h.down(0, n)
	x := h.Items[n]
	h.Items = h.Items[:n]
	return x
}

// ReplaceMin replaces the least item with x and restores
// the heap order. It is cheaper than Pop followed by Push.
// It panics if the heap is empty.
func (h *Heap[E]) ReplaceMin(x E) {
	h.Items[0] = x
	h.down(0, len(h.Items))
}

func (h *Heap[E]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !h.less(h.Items[j], h.Items[i]) {
			break
		}
		h.Items[i], h.Items[j] = h.Items[j], h.Items[i]
		j = i
	}
}

func (h *Heap[E]) down(i, n int) {
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			return
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.less(h.Items[j2], h.Items[j1]) {
			j = j2 // right child
		}
		if !h.less(h.Items[j], h.Items[i]) {
			return
		}
		h.Items[i], h.Items[j] = h.Items[j], h.Items[i]
		i = j
	}
}

// Top returns the k greatest values of seq according to less,
// greatest first. It keeps at most k values in memory. If k is
// not positive, all of seq is returned, sorted.
func Top[E any](seq iter.Seq[E], k int, less func(E, E) bool) []E {
	if k <= 0 {
		all := slices.Collect(seq)
		slices.SortFunc(all, func(a, b E) int {
			switch {
			case less(b, a):
				return -1
			case less(a, b):
				return 1
			}
			return 0
		})
		return all
	}
	h := New(make([]E, 0, k), less)
	for x := range seq {
		switch {
		case h.Len() < k:
			h.Push(x)
		case less(h.Items[0], x):
			h.ReplaceMin(x)
		}
	}
	top := make([]E, h.Len())
	for i := len(top) - 1; i >= 0; i-- {
		top[i] = h.Pop()
	}
	return top
}
