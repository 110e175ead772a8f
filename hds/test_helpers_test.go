// SPDX-License-Identifier: MIT

package hds_test

import (
	"math"
	"sort"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/archimesh/hds"
)

// regular returns the corners of a unit-radius regular n-gon, counterclockwise.
func regular(n int) ([][]int, []orb.Point) {
	face := make([]int, n)
	pts := make([]orb.Point, n)
	for i := range face {
		face[i] = i
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = orb.Point{math.Cos(a), math.Sin(a)}
	}
	return [][]int{face}, pts
}

// twoTriangles is the unit square cut along the 0-2 diagonal.
//
//	3───2
//	│ ╱ │
//	0───1
func twoTriangles() ([][]int, []orb.Point) {
	return [][]int{{0, 1, 2}, {0, 2, 3}},
		[]orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

// grid2x2 is four unit squares around vertex 4.
//
//	6───7───8
//	│   │   │
//	3───4───5
//	│   │   │
//	0───1───2
func grid2x2() ([][]int, []orb.Point) {
	var faces [][]int
	var pts []orb.Point
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			pts = append(pts, orb.Point{float64(c), float64(r)})
		}
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			v := r*3 + c
			faces = append(faces, []int{v, v + 1, v + 4, v + 3})
		}
	}
	return faces, pts
}

func mustNew(t *testing.T, faces [][]int, pts []orb.Point) *hds.Mesh {
	t.Helper()
	m, err := hds.New(faces, pts)
	require.NoError(t, err)
	requireInvariants(t, m)
	return m
}

// mustBuild constructs the mesh described by a fixture.
func mustBuild(t *testing.T, fixture func() ([][]int, []orb.Point)) *hds.Mesh {
	t.Helper()
	faces, pts := fixture()
	return mustNew(t, faces, pts)
}

// requireInvariants checks every structural invariant, both through Validate
// and independently through the public navigation API.
func requireInvariants(t *testing.T, m *hds.Mesh) {
	t.Helper()
	require.NoError(t, m.Validate())

	for e := range m.AllEdges() {
		for _, h := range []int{e, m.Opposite(e)} {
			require.Equal(t, h, m.Opposite(m.Opposite(h)), "involution at %d", h)
			require.Equal(t, h, m.Index(h))

			fc, err := m.FaceCycle(h)
			require.NoError(t, err)
			for _, x := range fc {
				require.Equal(t, m.FaceID(h), m.FaceID(x))
			}
			vc, err := m.VertexCycle(h)
			require.NoError(t, err)
			for _, x := range vc {
				require.Equal(t, m.VertexID(h), m.VertexID(x))
			}
		}
	}
	for h := range m.AllVertices() {
		_, ok := m.Payload(m.VertexID(h))
		require.True(t, ok)
	}
}

// faceVertexSet returns the sorted vertex ids around h's face.
func faceVertexSet(t *testing.T, m *hds.Mesh, h int) []int {
	t.Helper()
	cycle, err := m.FaceCycle(h)
	require.NoError(t, err)
	ids := make([]int, 0, len(cycle))
	for _, e := range cycle {
		ids = append(ids, m.VertexID(e))
	}
	sort.Ints(ids)
	return ids
}

// neighborSet returns the sorted ids of the vertices adjacent to h's vertex.
func neighborSet(t *testing.T, m *hds.Mesh, h int) []int {
	t.Helper()
	cycle, err := m.VertexCycle(h)
	require.NoError(t, err)
	ids := make([]int, 0, len(cycle))
	for _, e := range cycle {
		ids = append(ids, m.VertexID(m.Opposite(e)))
	}
	sort.Ints(ids)
	return ids
}

// interiorFaceSets returns the sorted vertex sets of all interior faces, sorted.
func interiorFaceSets(t *testing.T, m *hds.Mesh) [][]int {
	t.Helper()
	var sets [][]int
	for h := range m.AllFaces() {
		sets = append(sets, faceVertexSet(t, m, h))
	}
	sort.Slice(sets, func(i, j int) bool {
		for k := 0; k < len(sets[i]) && k < len(sets[j]); k++ {
			if sets[i][k] != sets[j][k] {
				return sets[i][k] < sets[j][k]
			}
		}
		return len(sets[i]) < len(sets[j])
	})
	return sets
}
