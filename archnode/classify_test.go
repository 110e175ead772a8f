// SPDX-License-Identifier: MIT

package archnode_test

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/archimesh/archnode"
	"github.com/katalvlaran/archimesh/hds"
)

func TestCatalog_Aligned(t *testing.T) {
	require.Len(t, archnode.Letters, len(archnode.Catalog))
	for i, a := range archnode.Catalog {
		// The angles around a uniform node add up to 360 degrees:
		// sum over faces of (n-2)/n == 2.
		var num, den = 0, 1
		for _, n := range a {
			num = num*n + (n-2)*den
			den *= n
		}
		assert.Equal(t, 2*den, num, "entry %d %v", i, a)
	}
	assert.Equal(t, "U", archnode.Letter(17))
	assert.Equal(t, "", archnode.Letter(20))
	assert.Equal(t, "", archnode.Letter(-1))

	idx, err := archnode.ByLetter("N")
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11}, idx)
	_, err = archnode.ByLetter("Z")
	assert.ErrorIs(t, err, archnode.ErrUnknownNode)
}

func TestSubCirculation(t *testing.T) {
	cases := []struct {
		name string
		a, b []int
		want int
	}{
		{"rotated run", []int{3, 4, 3, 12}, []int{4, 3, 12}, 1},
		{"absent", []int{3, 4, 3, 12}, []int{4, 4}, -1},
		{"wraps around", []int{3, 4, 3, 12}, []int{12, 3}, 3},
		{"whole", []int{6, 6, 6}, []int{6, 6, 6}, 0},
		{"longer probe", []int{6, 6, 6}, []int{6, 6, 6, 6}, -1},
		{"empty probe", []int{4, 8, 8}, nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, archnode.SubCirculation(tc.a, tc.b))
		})
	}
}

func TestNodeCode(t *testing.T) {
	assert.Equal(t, 2, archnode.NodeCode([]int{4, 6, 12}))
	assert.Equal(t, 2, archnode.NodeCode([]int{6, 12, 4}))
	assert.Equal(t, 15, archnode.NodeCode([]int{4, 4, 4, 4}))
	assert.Equal(t, -1, archnode.NodeCode([]int{0, 4, 4}))
	assert.Equal(t, -1, archnode.NodeCode([]int{5, 5, 10}))
	assert.Equal(t, -1, archnode.NodeCode(nil))
}

func TestArchMatch(t *testing.T) {
	assert.Equal(t, []int{18, 19}, archnode.ArchMatch([]int{3, 3, 3, 3}))
	assert.Equal(t, []int{18, 19}, archnode.ArchMatch([]int{0, 3, 3, 3, 3}))
	assert.Contains(t, archnode.ArchMatch([]int{0, 3, 3, 3, 3}), 19)
	assert.Empty(t, archnode.ArchMatch([]int{5}))
}

func TestCompletionAlternatives(t *testing.T) {
	t.Run("square pair", func(t *testing.T) {
		matches, completions := archnode.CompletionAlternatives([]int{0, 4, 4})
		assert.Equal(t, []int{10, 11, 15, 16}, matches)
		assert.Equal(t, [][]int{{6, 3}, {3, 6}, {4, 4}, {3, 3, 3}}, completions)
	})
	t.Run("duplicate completion dropped", func(t *testing.T) {
		matches, completions := archnode.CompletionAlternatives([]int{0, 12, 12})
		assert.Equal(t, []int{0}, matches)
		assert.Equal(t, [][]int{{3}}, completions)
	})
	t.Run("already complete", func(t *testing.T) {
		matches, completions := archnode.CompletionAlternatives([]int{0, 3, 12, 12})
		require.Equal(t, []int{0}, matches)
		require.Len(t, completions, 1)
		assert.Empty(t, completions[0])
	})
	t.Run("no gap", func(t *testing.T) {
		matches, completions := archnode.CompletionAlternatives([]int{3, 4})
		assert.Empty(t, matches)
		assert.Empty(t, completions)
	})
	t.Run("unreachable", func(t *testing.T) {
		matches, completions := archnode.CompletionAlternatives([]int{0, 5})
		assert.Empty(t, matches)
		assert.Empty(t, completions)
	})
}

// grid is four unit squares around vertex 4.
func grid(t *testing.T) *hds.Mesh {
	t.Helper()
	var pts []orb.Point
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			pts = append(pts, orb.Point{float64(c), float64(r)})
		}
	}
	var faces [][]int
	for _, v := range []int{0, 1, 3, 4} {
		faces = append(faces, []int{v, v + 1, v + 4, v + 3})
	}
	m, err := hds.New(faces, pts)
	require.NoError(t, err)
	return m
}

func TestVertexNodeType(t *testing.T) {
	m := grid(t)

	h, _ := m.VertexHalfedge(4)
	vtype, err := archnode.VertexNodeType(m, h, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4, 4, 4}, vtype)
	assert.Equal(t, "S", archnode.Letter(archnode.NodeCode(vtype)))

	for _, v := range []int{1, 3, 5, 7} {
		h, _ := m.VertexHalfedge(v)
		vtype, err := archnode.VertexNodeType(m, h, nil)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 4, 4}, vtype, "vertex %d", v)
	}

	h, _ = m.VertexHalfedge(0)
	vtype, err = archnode.VertexNodeType(m, h, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4}, vtype)

	// A caller-provided side function replaces the face count.
	h, _ = m.VertexHalfedge(4)
	vtype, err = archnode.VertexNodeType(m, h, func(int) (int, error) { return 3, nil })
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 3, 3}, vtype)
}

// TestVertexNodeType_SidesError verifies that a face that fails to circulate
// is reported instead of being read as a border gap.
func TestVertexNodeType_SidesError(t *testing.T) {
	m := grid(t)
	broken, err := hds.FromSnapshot(m.Snapshot(), hds.WithFaceCirculationLimit(3))
	require.NoError(t, err)

	h, _ := broken.VertexHalfedge(4)
	_, err = archnode.VertexNodeType(broken, h, nil)
	assert.ErrorIs(t, err, hds.ErrStructuralCorruption)

	_, err = archnode.MeshSides(broken)(h)
	assert.ErrorIs(t, err, hds.ErrStructuralCorruption)

	// Border faces still read as 0 without circulating.
	c, _ := broken.VertexHalfedge(0)
	for e := range broken.VertexCirculator(c) {
		if broken.IsBorder(e) {
			n, err := archnode.MeshSides(broken)(e)
			require.NoError(t, err)
			assert.Zero(t, n)
		}
	}

	errSides := errors.New("no sides")
	_, err = archnode.VertexNodeType(m, h, func(int) (int, error) { return 0, errSides })
	assert.ErrorIs(t, err, errSides)
}
