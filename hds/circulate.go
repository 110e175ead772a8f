// SPDX-License-Identifier: MIT

package hds

import (
	"iter"

	"github.com/pkg/errors"
)

// walk visits the face (vertex == false) or vertex (vertex == true)
// circulation that starts at h, stopping early when visit returns false.
// It fails when a step lands on a dead slot, leaves the circulation, or the
// configured limit is exceeded.
func (m *Mesh) walk(h int, vertex bool, visit func(int) bool) error {
	first := m.halfedges.At(h)
	if first == nil {
		return errors.Wrapf(ErrStaleHalfedge, "halfedge %d", h)
	}
	kind, limit, key := "face", m.faceLimit, first.Fac
	if vertex {
		kind, limit, key = "vertex", m.vertexLimit, first.Vtx
	}
	for cur, steps := h, 0; ; steps++ {
		if steps >= limit {
			return errors.Wrapf(ErrStructuralCorruption,
				"%s circulation from halfedge %d exceeds %d steps", kind, h, limit)
		}
		e := m.halfedges.At(cur)
		if e == nil {
			return errors.Wrapf(ErrStructuralCorruption,
				"%s circulation from halfedge %d reaches dead halfedge %d", kind, h, cur)
		}
		if (vertex && e.Vtx != key) || (!vertex && e.Fac != key) {
			return errors.Wrapf(ErrStructuralCorruption,
				"%s circulation from halfedge %d leaves %s %d at halfedge %d", kind, h, kind, key, cur)
		}
		if !visit(cur) {
			return nil
		}
		next := e.Nxt
		if vertex {
			ne := m.halfedges.At(next)
			if ne == nil {
				return errors.Wrapf(ErrStructuralCorruption,
					"vertex circulation from halfedge %d reaches dead halfedge %d", h, next)
			}
			next = ne.Opp
		}
		if next == h {
			return nil
		}
		cur = next
	}
}

// FaceCirculator yields the halfedges of h's face, starting at h and
// following next. It panics with an error wrapping ErrStructuralCorruption
// (or ErrStaleHalfedge) when the circulation is broken. The mesh must not be
// edited while the sequence is being consumed.
func (m *Mesh) FaceCirculator(h int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if err := m.walk(h, false, yield); err != nil {
			panic(err)
		}
	}
}

// VertexCirculator yields the halfedges pointing to h's vertex, starting at h
// and following next then opposite. Failure behaviour matches FaceCirculator.
func (m *Mesh) VertexCirculator(h int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if err := m.walk(h, true, yield); err != nil {
			panic(err)
		}
	}
}

// FaceCycle returns h's face circulation as a slice.
func (m *Mesh) FaceCycle(h int) ([]int, error) {
	var cycle []int
	err := m.walk(h, false, func(i int) bool {
		cycle = append(cycle, i)
		return true
	})
	if err != nil {
		return nil, err
	}
	return cycle, nil
}

// VertexCycle returns h's vertex circulation as a slice.
func (m *Mesh) VertexCycle(h int) ([]int, error) {
	var cycle []int
	err := m.walk(h, true, func(i int) bool {
		cycle = append(cycle, i)
		return true
	})
	if err != nil {
		return nil, err
	}
	return cycle, nil
}

// FaceSides returns the number of sides of h's face.
func (m *Mesh) FaceSides(h int) (int, error) {
	n := 0
	err := m.walk(h, false, func(int) bool { n++; return true })
	return n, err
}

// Degree returns the number of edges incident to h's vertex.
func (m *Mesh) Degree(h int) (int, error) {
	n := 0
	err := m.walk(h, true, func(int) bool { n++; return true })
	return n, err
}
