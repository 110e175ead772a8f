// SPDX-License-Identifier: MIT

package archnode

import (
	"slices"

	"github.com/katalvlaran/archimesh/hds"
	"github.com/katalvlaran/archimesh/seqset"
)

// SubCirculation returns the rotation of the cyclic sequence a at which b
// occurs as a contiguous run, or -1 when it does not occur. An empty b
// matches at 0.
//
// Complexity: O(len(a)·len(b)).
func SubCirculation(a, b []int) int {
	n := len(a)
	if n < len(b) {
		return -1
	}
	for i := 0; i < n; i++ {
		match := true
		for j, x := range b {
			if x != a[(i+j)%n] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// MeshSides returns a side-count function for VertexNodeType that reports
// the number of sides of the face of a halfedge, and 0 for border faces.
// A face that does not circulate is reported as an error, never as a gap.
func MeshSides(m *hds.Mesh) func(h int) (int, error) {
	return func(h int) (int, error) {
		if m.IsBorder(h) {
			return 0, nil
		}
		return m.FaceSides(h)
	}
}

// VertexNodeType reads the side counts of the faces around the vertex h
// points to, in circulation order, rotated so that a border gap (0) comes
// first. sides maps a halfedge to the side count of its face, 0 for a border
// face; when nil, MeshSides(m) is used.
func VertexNodeType(m *hds.Mesh, h int, sides func(int) (int, error)) ([]int, error) {
	if sides == nil {
		sides = MeshSides(m)
	}
	cycle, err := m.VertexCycle(h)
	if err != nil {
		return nil, err
	}
	vtype := make([]int, len(cycle))
	for i, e := range cycle {
		if vtype[i], err = sides(e); err != nil {
			return nil, err
		}
	}
	if z := slices.Index(vtype, 0); z > 0 {
		vtype = slices.Concat(vtype[z:], vtype[:z])
	}
	return vtype, nil
}

// NodeCode returns the first catalog index matching a complete vertex type,
// or -1 when vtype has a border gap or matches nothing.
func NodeCode(vtype []int) int {
	if len(vtype) == 0 || vtype[0] == 0 {
		return -1
	}
	for i, a := range Catalog {
		if SubCirculation(a, vtype) >= 0 {
			return i
		}
	}
	return -1
}

// ArchMatch returns every catalog index whose cyclic sequence contains
// vtype, with border gaps removed, as a contiguous run.
func ArchMatch(vtype []int) []int {
	probe := gapless(vtype)
	var out []int
	for i, a := range Catalog {
		if SubCirculation(a, probe) >= 0 {
			out = append(out, i)
		}
	}
	return out
}

func gapless(vtype []int) []int {
	out := make([]int, 0, len(vtype))
	for _, x := range vtype {
		if x != 0 {
			out = append(out, x)
		}
	}
	return out
}

// CompletionAlternatives lists the ways a border vertex of type vtype (gap
// first, as returned by VertexNodeType) can be completed into a catalog node.
// completions[i] is the run of polygon sizes that, attached in circulation
// order after the existing faces, turns the vertex into Catalog[matches[i]].
// Matches that would need the same completion as an earlier match are
// dropped. A vtype without a leading gap yields no alternatives.
func CompletionAlternatives(vtype []int) (matches []int, completions [][]int) {
	if len(vtype) == 0 || vtype[0] != 0 {
		return nil, nil
	}
	b := gapless(vtype)
	seen := seqset.New()
	for _, i := range ArchMatch(vtype) {
		a := Catalog[i]
		k := SubCirculation(a, b) + len(b)
		c := slices.Concat(a, a)[k : k+len(a)-len(b)]
		if !seen.Add(c) {
			continue
		}
		matches = append(matches, i)
		completions = append(completions, slices.Clone(c))
	}
	return matches, completions
}
