// SPDX-License-Identifier: MIT

// Package seqset provides a set of ordered int sequences.
//
// Sequences are bucketed by the XOR of their elements, which ignores order,
// so [1,2] and [2,1] share a bucket; membership inside a bucket requires an
// exact, element-by-element match. Stored sequences are defensive copies.
//
// A Set is not safe for concurrent use.
package seqset

import (
	"iter"
	"slices"
)

// seed is the initial XOR key.
const seed = 0xfff

// Set is a set of int sequences where order matters.
type Set struct {
	buckets map[int][][]int
	count   int
}

// New returns an empty Set.
func New() *Set {
	return &Set{buckets: make(map[int][][]int)}
}

func hash(seq []int) int {
	key := seed
	for _, x := range seq {
		key ^= x
	}
	return key
}

func (s *Set) find(seq []int) (key, pos int) {
	key = hash(seq)
	for i, x := range s.buckets[key] {
		if slices.Equal(x, seq) {
			return key, i
		}
	}
	return key, -1
}

// Add inserts a copy of seq. It reports whether seq was new.
func (s *Set) Add(seq []int) bool {
	key, pos := s.find(seq)
	if pos >= 0 {
		return false
	}
	s.buckets[key] = append(s.buckets[key], slices.Clone(seq))
	s.count++
	return true
}

// Has reports whether a sequence equal to seq is stored.
func (s *Set) Has(seq []int) bool {
	_, pos := s.find(seq)
	return pos >= 0
}

// Delete removes seq and returns the stored copy, or (nil, false) when
// no equal sequence was present.
func (s *Set) Delete(seq []int) ([]int, bool) {
	key, pos := s.find(seq)
	if pos < 0 {
		return nil, false
	}
	bucket := s.buckets[key]
	stored := bucket[pos]
	bucket = slices.Delete(bucket, pos, pos+1)
	if len(bucket) == 0 {
		delete(s.buckets, key)
	} else {
		s.buckets[key] = bucket
	}
	s.count--
	return stored, true
}

// Len returns the number of stored sequences.
func (s *Set) Len() int { return s.count }

// All yields every stored sequence once, in unspecified order. The yielded
// slices are the stored copies and must not be modified.
func (s *Set) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for _, bucket := range s.buckets {
			for _, seq := range bucket {
				if !yield(seq) {
					return
				}
			}
		}
	}
}
