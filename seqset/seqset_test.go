// SPDX-License-Identifier: MIT

package seqset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/archimesh/seqset"
)

func TestSet_AddHas(t *testing.T) {
	s := seqset.New()
	assert.True(t, s.Add([]int{1, 2, 3}))
	assert.False(t, s.Add([]int{1, 2, 3}))
	assert.Equal(t, 1, s.Len())

	assert.True(t, s.Add([]int{1, 2}))
	assert.True(t, s.Has([]int{1, 2}))
	assert.False(t, s.Has([]int{1, 1}))
	assert.False(t, s.Has([]int{1, 2, 3, 4}))
	assert.Equal(t, 2, s.Len())
}

// TestSet_OrderMatters stores two orderings that share a bucket.
func TestSet_OrderMatters(t *testing.T) {
	s := seqset.New()
	s.Add([]int{1, 2})
	s.Add([]int{2, 1})
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has([]int{2, 1}))

	stored, ok := s.Delete([]int{2, 1})
	require.True(t, ok)
	assert.Equal(t, []int{2, 1}, stored)
	assert.False(t, s.Has([]int{2, 1}))
	assert.True(t, s.Has([]int{1, 2}))
	assert.Equal(t, 1, s.Len())
}

func TestSet_DeleteMissing(t *testing.T) {
	s := seqset.New()
	s.Add([]int{4, 4})
	got, ok := s.Delete([]int{1, 1})
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Equal(t, 1, s.Len())
}

// TestSet_DefensiveCopy checks that the caller's slice is not retained.
func TestSet_DefensiveCopy(t *testing.T) {
	s := seqset.New()
	seq := []int{3, 4, 6}
	s.Add(seq)
	seq[0] = 12
	assert.True(t, s.Has([]int{3, 4, 6}))
	assert.False(t, s.Has(seq))
}

func TestSet_All(t *testing.T) {
	s := seqset.New()
	s.Add([]int{1, 2, 3})
	s.Add([]int{1, 2, 3})
	s.Add([]int{3, 2, 1})
	s.Add(nil)

	var got [][]int
	for seq := range s.All() {
		got = append(got, seq)
	}
	assert.ElementsMatch(t, [][]int{{1, 2, 3}, {3, 2, 1}, nil}, got)

	n := 0
	for range s.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}
