// SPDX-License-Identifier: MIT

// Package slot provides Table, a sparse index-addressed array.
//
// A position of a Table is either live (it holds a value) or free. Free
// positions below Len are tombstones left behind by Clear; they are handed
// out again by EmptySlot/EmptySlots before the table grows, lowest index
// first. The free positions are kept in an ordered red-black tree so the
// lowest tombstone is found in O(log n) instead of a linear scan.
//
// Index stability:
//
//	t := slot.New[string]()
//	a := t.Append("a")     // 0
//	b := t.Append("b")     // 1
//	t.Clear(a)             // 0 becomes a tombstone, Len stays 2
//	t.EmptySlot()          // 0
//	t.EmptySlots(2)        // [0 2]
//
// Tables are not safe for concurrent use.
package slot
