// SPDX-License-Identifier: MIT

package tiling

import (
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/archimesh/hds"
)

// Centroid returns the average of the corners of h's face.
func (t *Tiling) Centroid(h int) orb.Point {
	c, _ := planar.CentroidArea(orb.MultiPoint(t.mesh.FaceVertices(h)))
	return c
}

// Dual returns the dual tiling: one vertex at the centroid of every interior
// face, and one face around every vertex whose faces are all interior.
// Vertex ids of the dual are the face ids of t. A centroid shared by dual
// faces that do not meet along an edge gets one extra vertex per additional
// fan; those copies take ids past the largest face id.
func (t *Tiling) Dual() (*Tiling, error) {
	m := t.mesh
	var centroids []orb.Point
	interior := make(map[int]bool)
	for h := range m.AllFaces() {
		f := m.FaceID(h)
		for len(centroids) <= f {
			centroids = append(centroids, orb.Point{})
		}
		centroids[f] = t.Centroid(h)
		interior[f] = true
	}

	var faces [][]int
	for h := range m.AllVertices() {
		cycle, err := m.VertexCycle(h)
		if err != nil {
			return nil, err
		}
		face := make([]int, 0, len(cycle))
		for _, e := range cycle {
			if !interior[m.FaceID(e)] {
				face = nil
				break
			}
			face = append(face, m.FaceID(e))
		}
		if face == nil {
			continue
		}
		// Vertex circulation runs clockwise; faces are stored counterclockwise.
		slices.Reverse(face)
		faces = append(faces, face)
	}

	centroids = splitPinched(faces, centroids)
	dual, err := hds.New(faces, centroids)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("tiling: dual has %d faces and %d vertices", dual.NumFaces(), dual.NumVertices())
	return &Tiling{mesh: dual, opts: t.opts}, nil
}

// splitPinched rewrites faces so that the corners around each vertex form a
// single fan connected by shared edges. Every fan after the first is moved to
// a new vertex holding a copy of the payload. It returns the grown payloads.
func splitPinched(faces [][]int, pts []orb.Point) []orb.Point {
	type corner struct{ face, pos int }
	around := make([][]corner, len(pts))
	for i, f := range faces {
		for j, v := range f {
			around[v] = append(around[v], corner{i, j})
		}
	}
	prev := func(c corner) int {
		f := faces[c.face]
		return f[(c.pos+len(f)-1)%len(f)]
	}
	next := func(c corner) int {
		f := faces[c.face]
		return f[(c.pos+1)%len(f)]
	}

	for v, corners := range around {
		group := make([]int, len(corners))
		for i := range group {
			group[i] = -1
		}
		fans := 0
		for i := range corners {
			if group[i] >= 0 {
				continue
			}
			group[i] = fans
			for queue := []int{i}; len(queue) > 0; {
				a := corners[queue[0]]
				queue = queue[1:]
				for j, b := range corners {
					if group[j] < 0 && (next(a) == prev(b) || prev(a) == next(b)) {
						group[j] = fans
						queue = append(queue, j)
					}
				}
			}
			fans++
		}
		if fans < 2 {
			continue
		}
		ids := make([]int, fans)
		ids[0] = v
		for k := 1; k < fans; k++ {
			ids[k] = len(pts)
			pts = append(pts, pts[v])
		}
		for i, c := range corners {
			faces[c.face][c.pos] = ids[group[i]]
		}
		klog.V(1).Infof("tiling: dual vertex %d split into %d fans", v, fans)
	}
	return pts
}
