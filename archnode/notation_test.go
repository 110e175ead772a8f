// SPDX-License-Identifier: MIT

package archnode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/archimesh/archnode"
)

func TestParseNotation(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"3^2.4.3.4", []int{3, 3, 4, 3, 4}},
		{"3.4.6.4", []int{3, 4, 6, 4}},
		{"(3.12^2)", []int{3, 12, 12}},
		{" 4 . 8 ^2 ", []int{4, 8, 8}},
		{"3^6", []int{3, 3, 3, 3, 3, 3}},
		{"(3^4.6)", []int{3, 3, 3, 3, 6}},
		{"6", []int{6}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := archnode.ParseNotation(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseNotation_Errors(t *testing.T) {
	for _, in := range []string{
		"", "3..4", "2.4.4", "3^0", "3.4.x", "-3", "3.4)(",
		"(3.4.6.4", "3.4.6.4)", "((3.4.6.4))", "()",
		"3^7", "3^100000", "3^2000000000", "3.3.3.3.3.3.3", "3^4.4^3",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := archnode.ParseNotation(in)
			assert.ErrorIs(t, err, archnode.ErrBadNotation)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "3^2.4.3.4", archnode.Format([]int{3, 3, 4, 3, 4}))
	assert.Equal(t, "3.12^2", archnode.Format([]int{3, 12, 12}))
	assert.Equal(t, "3^6", archnode.Format([]int{3, 3, 3, 3, 3, 3}))
	assert.Equal(t, "", archnode.Format(nil))

	for _, a := range archnode.Catalog {
		got, err := archnode.ParseNotation(archnode.Format(a))
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
}

func TestLookup(t *testing.T) {
	seq, err := archnode.ParseNotation("3^2.4.3.4")
	require.NoError(t, err)
	idx := archnode.Lookup(seq)
	require.Equal(t, []int{17}, idx)
	assert.Equal(t, "U", archnode.Letter(idx[0]))

	assert.Equal(t, []int{17}, archnode.Lookup([]int{4, 3, 3, 4, 3}))
	assert.Equal(t, []int{0, 1}, archnode.Lookup([]int{12, 12, 3}))
	assert.Empty(t, archnode.Lookup([]int{3, 3, 3, 3}))

	idx, err = archnode.LookupNotation("3.3.3.3.3.3")
	require.NoError(t, err)
	assert.Equal(t, []int{19}, idx)

	_, err = archnode.LookupNotation("5.5.10")
	assert.ErrorIs(t, err, archnode.ErrUnknownNode)
	_, err = archnode.LookupNotation("5..")
	assert.ErrorIs(t, err, archnode.ErrBadNotation)
}
