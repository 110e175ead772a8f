// SPDX-License-Identifier: MIT

package hds

import (
	"iter"
	"sort"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// he returns the live record for h and panics on a stale id: navigating
// through a removed halfedge is a programming error.
func (m *Mesh) he(h int) *Halfedge {
	e := m.halfedges.At(h)
	if e == nil {
		panic(errors.Wrapf(ErrStaleHalfedge, "halfedge %d", h))
	}
	return e
}

// Live reports whether h is a live halfedge id.
func (m *Mesh) Live(h int) bool { return m.halfedges.Has(h) }

// Halfedge returns a copy of the record for h and whether h is live.
func (m *Mesh) Halfedge(h int) (Halfedge, bool) { return m.halfedges.Get(h) }

// Opposite returns the id of h's opposite halfedge.
func (m *Mesh) Opposite(h int) int { return m.he(h).Opp }

// Next returns the id of the halfedge following h around its face.
func (m *Mesh) Next(h int) int { return m.he(h).Nxt }

// Prev returns the id of the halfedge preceding h around its face.
func (m *Mesh) Prev(h int) int { return m.he(h).Prv }

// VertexID returns the id of the vertex h points to.
func (m *Mesh) VertexID(h int) int { return m.he(h).Vtx }

// FaceID returns the id of h's face.
func (m *Mesh) FaceID(h int) int { return m.he(h).Fac }

// Vertex returns the payload of the vertex h points to.
func (m *Mesh) Vertex(h int) orb.Point {
	p, _ := m.vertices.Get(m.he(h).Vtx)
	return p
}

// Index returns h's own id, recovered as opposite(opposite(h)). It panics
// when the involution does not hold.
func (m *Mesh) Index(h int) int {
	e := m.he(h)
	if m.he(e.Opp).Opp != h {
		panic(errors.Wrapf(ErrStructuralCorruption, "opposite of opposite of halfedge %d is not itself", h))
	}
	return m.he(e.Opp).Opp
}

// IsBorder reports whether h bounds a border face.
func (m *Mesh) IsBorder(h int) bool { return m.IsBorderFace(m.he(h).Fac) }

// IsBorderFace reports whether face f is a synthetic border face.
func (m *Mesh) IsBorderFace(f int) bool {
	_, ok := m.border[f]
	return ok
}

// Payload returns the payload stored for vertex v.
func (m *Mesh) Payload(v int) (orb.Point, bool) { return m.vertices.Get(v) }

// SetPayload replaces the payload of a live vertex.
func (m *Mesh) SetPayload(v int, p orb.Point) error {
	if !m.vertices.Has(v) {
		return errors.Wrapf(ErrPrecondition, "vertex %d is not live", v)
	}
	m.vertices.Set(v, p)
	return nil
}

// FaceHalfedge returns the representative halfedge of face f.
func (m *Mesh) FaceHalfedge(f int) (int, bool) { return m.faceh.Get(f) }

// VertexHalfedge returns the representative halfedge of vertex v.
func (m *Mesh) VertexHalfedge(v int) (int, bool) { return m.vertexh.Get(v) }

// FaceVertices returns the payloads of the vertices around h's face.
func (m *Mesh) FaceVertices(h int) []orb.Point {
	var pts []orb.Point
	for e := range m.FaceCirculator(h) {
		pts = append(pts, m.Vertex(e))
	}
	return pts
}

// EdgeVertices returns the payloads of the vertex h points to and of the
// vertex it leaves.
func (m *Mesh) EdgeVertices(h int) [2]orb.Point {
	return [2]orb.Point{m.Vertex(h), m.Vertex(m.Opposite(h))}
}

// FindHalfedge returns the halfedge going from vertex src to vertex dst.
func (m *Mesh) FindHalfedge(src, dst int) (int, bool) {
	rep, ok := m.vertexh.Get(dst)
	if !ok {
		return Nil, false
	}
	for h := range m.VertexCirculator(rep) {
		if m.he(m.he(h).Opp).Vtx == src {
			return h, true
		}
	}
	return Nil, false
}

// AllVertices yields one representative halfedge per live vertex, in vertex id order.
func (m *Mesh) AllVertices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, h := range m.vertexh.All() {
			if !yield(*h) {
				return
			}
		}
	}
}

// AllFaces yields one representative halfedge per interior face.
func (m *Mesh) AllFaces() iter.Seq[int] { return m.faces(false) }

// AllBorderFaces yields one representative halfedge per border face.
func (m *Mesh) AllBorderFaces() iter.Seq[int] { return m.faces(true) }

func (m *Mesh) faces(border bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		for f, h := range m.faceh.All() {
			if m.IsBorderFace(f) != border {
				continue
			}
			if !yield(*h) {
				return
			}
		}
	}
}

// AllEdges yields one halfedge per edge: the one with the smaller id.
func (m *Mesh) AllEdges() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, h := range m.halfedges.All() {
			if h.Opp < i {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}

// NumVertices returns the number of live vertices.
func (m *Mesh) NumVertices() int { return m.vertexh.Count() }

// NumHalfedges returns the number of live halfedges.
func (m *Mesh) NumHalfedges() int { return m.halfedges.Count() }

// NumFaces returns the number of live interior faces.
func (m *Mesh) NumFaces() int { return m.faceh.Count() - len(m.border) }

// NumBorderFaces returns the number of border faces.
func (m *Mesh) NumBorderFaces() int { return len(m.border) }

// BorderFaces returns the border face ids in ascending order.
func (m *Mesh) BorderFaces() []int {
	ids := make([]int, 0, len(m.border))
	for f := range m.border {
		ids = append(ids, f)
	}
	sort.Ints(ids)
	return ids
}
