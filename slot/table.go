// SPDX-License-Identifier: MIT

package slot

import (
	"iter"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// Table is a sparse array of *T. A nil entry is a free slot.
type Table[T any] struct {
	items []*T
	free  *redblacktree.Tree // tombstoned indices < len(items)
	count int
}

// New returns an empty Table.
func New[T any]() *Table[T] {
	return &Table[T]{free: redblacktree.NewWithIntComparator()}
}

// Len reports the length of the table, tombstones included.
func (t *Table[T]) Len() int { return len(t.items) }

// Count reports the number of live entries.
func (t *Table[T]) Count() int { return t.count }

// Has reports whether index i holds a live value.
func (t *Table[T]) Has(i int) bool {
	return i >= 0 && i < len(t.items) && t.items[i] != nil
}

// At returns the live value stored at i, or nil when i is free or out of range.
// The returned pointer stays valid until Clear(i).
func (t *Table[T]) At(i int) *T {
	if !t.Has(i) {
		return nil
	}
	return t.items[i]
}

// Get returns a copy of the value at i and whether it was live.
func (t *Table[T]) Get(i int) (T, bool) {
	if !t.Has(i) {
		var zero T
		return zero, false
	}
	return *t.items[i], true
}

// Set stores v at i, growing the table with tombstones when i >= Len.
// Panics if i is negative.
func (t *Table[T]) Set(i int, v T) {
	if i < 0 {
		panic("slot: negative index")
	}
	t.Grow(i + 1)
	if t.items[i] == nil {
		t.free.Remove(i)
		t.count++
	}
	t.items[i] = &v
}

// Append stores v at Len and returns its index. Tombstones are not reused;
// call EmptySlot first for that.
func (t *Table[T]) Append(v T) int {
	i := len(t.items)
	t.Set(i, v)
	return i
}

// Clear tombstones index i. Clearing a free or out-of-range index is a no-op.
// Len is unchanged.
func (t *Table[T]) Clear(i int) {
	if !t.Has(i) {
		return
	}
	t.items[i] = nil
	t.free.Put(i, struct{}{})
	t.count--
}

// Grow extends the table to length n with tombstones. It never shrinks.
func (t *Table[T]) Grow(n int) {
	for j := len(t.items); j < n; j++ {
		t.items = append(t.items, nil)
		t.free.Put(j, struct{}{})
	}
}

// EmptySlot returns the lowest free index, which is Len when there are no
// tombstones. It does not reserve the index.
func (t *Table[T]) EmptySlot() int {
	if node := t.free.Left(); node != nil {
		return node.Key.(int)
	}
	return len(t.items)
}

// EmptySlots returns the n lowest free indices in ascending order:
// tombstones first, then indices past the end. Nothing is reserved.
func (t *Table[T]) EmptySlots(n int) []int {
	slots := make([]int, 0, n)
	it := t.free.Iterator()
	for len(slots) < n && it.Next() {
		slots = append(slots, it.Key().(int))
	}
	for next := len(t.items); len(slots) < n; next++ {
		slots = append(slots, next)
	}
	return slots
}

// All yields every live (index, value) pair in index order.
func (t *Table[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i, v := range t.items {
			if v == nil {
				continue
			}
			if !yield(i, v) {
				return
			}
		}
	}
}
