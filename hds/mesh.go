// SPDX-License-Identifier: MIT

package hds

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// directedEdge keys the construction dictionary.
type directedEdge struct{ from, to int }

// New builds a Mesh from consistently wound faces (each a cycle of vertex
// ids) and the vertex payloads those ids index.
//
// Implementation:
//   - Stage 1: For every face, allocate one halfedge per vertex in a
//     contiguous block, linked next/prev around the face. Halfedges are paired
//     through a dictionary of directed edges; seeing the same directed edge
//     twice fails with ErrNonManifold.
//   - Stage 2: Close every open boundary loop with a synthetic border face
//     (see closeBoundaries).
//   - Stage 3: Reject vertices whose halfedges do not form one circulation.
//
// Payloads of vertices that no face references are not kept; their ids are
// free slots of the new mesh.
//
// Errors:
//   - ErrInvalidVertex, ErrInvalidFace, ErrNonManifold for bad input,
//     including pinched vertices and boundary loops.
//   - ErrStructuralCorruption if a boundary loop cannot be traced.
//
// Complexity: O(H) for H halfedges plus O(H·B) for the boundary pass with
// B boundary loops.
func New(faces [][]int, vertices []orb.Point, opts ...Option) (*Mesh, error) {
	m := newEmpty(opts)

	referenced := make([]bool, len(vertices))
	edges := make(map[directedEdge]int)
	for iface, f := range faces {
		n := len(f)
		if n < 3 {
			return nil, errors.Wrapf(ErrInvalidFace, "face %d has %d vertices", iface, n)
		}
		base := m.halfedges.Len()
		vprev := f[n-1]
		for iv, v := range f {
			if v < 0 || v >= len(vertices) {
				return nil, errors.Wrapf(ErrInvalidVertex, "face %d vertex %d", iface, v)
			}
			if v == vprev {
				return nil, errors.Wrapf(ErrInvalidFace, "face %d repeats vertex %d", iface, v)
			}
			ihe := base + iv
			opp := Nil
			if o, ok := edges[directedEdge{v, vprev}]; ok {
				opp = o
				m.halfedges.At(o).Opp = ihe
			}
			key := directedEdge{vprev, v}
			if _, ok := edges[key]; ok {
				return nil, errors.Wrapf(ErrNonManifold, "directed edge %d->%d used twice", vprev, v)
			}
			edges[key] = ihe

			prv, nxt := ihe-1, ihe+1
			if iv == 0 {
				prv = base + n - 1
			}
			if iv == n-1 {
				nxt = base
			}
			m.halfedges.Set(ihe, Halfedge{Vtx: v, Opp: opp, Nxt: nxt, Prv: prv, Fac: iface})
			m.vertexh.Set(v, ihe)
			referenced[v] = true
			vprev = v
		}
		m.faceh.Set(iface, m.halfedges.Len()-1)
	}

	m.vertexh.Grow(len(vertices))
	for i, p := range vertices {
		if referenced[i] {
			m.vertices.Set(i, p)
		}
	}
	m.vertices.Grow(len(vertices))

	if err := m.closeBoundaries(); err != nil {
		return nil, err
	}
	if err := m.checkManifoldVertices(); err != nil {
		return nil, err
	}
	return m, nil
}

// checkManifoldVertices rejects vertices whose halfedges fall into more than
// one circulation, e.g. two faces touching only at a corner.
func (m *Mesh) checkManifoldVertices() error {
	counts := make(map[int]int)
	for _, h := range m.halfedges.All() {
		counts[h.Vtx]++
	}
	for v, rep := range m.vertexh.All() {
		deg, err := m.Degree(*rep)
		if err != nil {
			return err
		}
		if deg != counts[v] {
			return errors.Wrapf(ErrNonManifold, "vertex %d is pinched: %d of %d halfedges circulate", v, deg, counts[v])
		}
	}
	return nil
}

// closeBoundaries pairs every unpaired halfedge with a synthetic border
// halfedge, one border face per boundary loop.
//
// A loop is traced from an unpaired halfedge by following next; whenever next
// is already paired the walk turns around the shared vertex (opposite, next)
// until it reaches the following unpaired halfedge. The border halfedges are
// linked in reverse traversal order so the border face winds opposite to the
// loop.
func (m *Mesh) closeBoundaries() error {
	for {
		start := Nil
		for i, h := range m.halfedges.All() {
			if h.Opp == Nil {
				start = i
				break
			}
		}
		if start == Nil {
			return nil
		}

		loop := []int{start}
		inLoop := map[int]bool{start: true}
		for he := start; ; {
			next := m.halfedges.At(he).Nxt
			for hops := 0; m.halfedges.At(next).Opp != Nil; hops++ {
				if hops >= m.vertexLimit {
					return errors.Wrapf(ErrStructuralCorruption,
						"boundary walk around vertex %d does not reach an open halfedge", m.halfedges.At(he).Vtx)
				}
				next = m.halfedges.At(m.halfedges.At(next).Opp).Nxt
			}
			if inLoop[next] {
				if next != start {
					return errors.Wrapf(ErrNonManifold,
						"boundary loop from halfedge %d pinches at halfedge %d", start, next)
				}
				break
			}
			if len(loop) > m.halfedges.Len() {
				return errors.Wrapf(ErrStructuralCorruption, "boundary loop from halfedge %d does not close", start)
			}
			loop = append(loop, next)
			inLoop[next] = true
			he = next
		}

		n := m.halfedges.Len()
		face := m.faceh.Len()
		for i, ihe := range loop {
			nexti := (i + 1) % len(loop)
			previ := (i + len(loop) - 1) % len(loop)
			m.halfedges.At(ihe).Opp = n + i
			m.halfedges.Set(n+i, Halfedge{
				Vtx: m.halfedges.At(loop[previ]).Vtx,
				Opp: ihe,
				Nxt: n + previ,
				Prv: n + nexti,
				Fac: face,
			})
		}
		m.border[face] = struct{}{}
		m.faceh.Set(face, n)
	}
}
