// SPDX-License-Identifier: MIT

package hds

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// Editors are not atomic: a failure part way through (only possible on an
// already corrupt mesh) may leave the structure partially edited. Take a
// Snapshot first when the edit must be undoable.

func (m *Mesh) live2(h, g int) error {
	if !m.halfedges.Has(h) {
		return errors.Wrapf(ErrStaleHalfedge, "halfedge %d", h)
	}
	if !m.halfedges.Has(g) {
		return errors.Wrapf(ErrStaleHalfedge, "halfedge %d", g)
	}
	return nil
}

// repairFace points e.Fac's representative at a live halfedge of that face
// when the current one was removed. e is a removed halfedge whose links are
// still meaningful.
func (m *Mesh) repairFace(e Halfedge) error {
	if rep, ok := m.faceh.Get(e.Fac); ok && m.halfedges.Has(rep) {
		return nil
	}
	if p := m.halfedges.At(e.Prv); p != nil && p.Fac == e.Fac {
		m.faceh.Set(e.Fac, e.Prv)
		return nil
	}
	if n := m.halfedges.At(e.Nxt); n != nil && n.Fac == e.Fac {
		m.faceh.Set(e.Fac, e.Nxt)
		return nil
	}
	return errors.Wrapf(ErrStructuralCorruption, "no replacement halfedge for face %d", e.Fac)
}

// repairVertex is repairFace for e.Vtx's representative.
func (m *Mesh) repairVertex(e Halfedge) error {
	if rep, ok := m.vertexh.Get(e.Vtx); ok && m.halfedges.Has(rep) {
		return nil
	}
	if n := m.halfedges.At(e.Nxt); n != nil {
		if c := m.halfedges.At(n.Opp); c != nil && c.Vtx == e.Vtx {
			m.vertexh.Set(e.Vtx, n.Opp)
			return nil
		}
	}
	if o := m.halfedges.At(e.Opp); o != nil {
		if c := m.halfedges.At(o.Prv); c != nil && c.Vtx == e.Vtx {
			m.vertexh.Set(e.Vtx, o.Prv)
			return nil
		}
	}
	return errors.Wrapf(ErrStructuralCorruption, "no replacement halfedge for vertex %d", e.Vtx)
}

// repair runs the representative repairs for two removed halfedges.
func (m *Mesh) repair(h, g Halfedge) error {
	for _, fn := range []func(Halfedge) error{m.repairFace, m.repairVertex} {
		if err := fn(h); err != nil {
			return err
		}
		if err := fn(g); err != nil {
			return err
		}
	}
	return nil
}

// JoinFace removes the edge {h, opposite(h)}, merging the two faces it
// separates. The merged face keeps h's face id; every halfedge of the
// absorbed face is relabelled. If either face was a border face the merged
// face is one.
//
// Returns the halfedge that followed h, which lies on the merged face.
//
// Errors:
//   - ErrStaleHalfedge if h is not live.
//   - ErrDegenerateJoin if the edge has the same face on both sides.
//   - ErrStructuralCorruption if the absorbed face does not circulate or
//     no replacement representative exists.
//
// Complexity: O(sides of the absorbed face).
func (m *Mesh) JoinFace(h int) (int, error) {
	if !m.halfedges.Has(h) {
		return Nil, errors.Wrapf(ErrStaleHalfedge, "halfedge %d", h)
	}
	g := m.he(h).Opp
	face, absorbed := m.he(h).Fac, m.he(g).Fac
	if face == absorbed {
		return Nil, errors.Wrapf(ErrDegenerateJoin, "edge %d/%d bounds face %d on both sides", h, g, face)
	}
	cycle, err := m.FaceCycle(g)
	if err != nil {
		return Nil, err
	}
	for _, e := range cycle {
		m.he(e).Fac = face
	}

	H, G := *m.he(h), *m.he(g)
	m.he(G.Prv).Nxt = H.Nxt
	m.he(H.Prv).Nxt = G.Nxt
	m.he(G.Nxt).Prv = H.Prv
	m.he(H.Nxt).Prv = G.Prv
	m.halfedges.Clear(h)
	m.halfedges.Clear(g)
	m.faceh.Clear(absorbed)
	if m.IsBorderFace(absorbed) {
		delete(m.border, absorbed)
		m.border[face] = struct{}{}
	}

	if err := m.repair(H, G); err != nil {
		return Nil, err
	}
	return H.Nxt, nil
}

// SplitFace cuts the face shared by h and g with a new edge from the vertex
// h points to, to the vertex g points to. The halfedges from next(h) through
// g move to a new face; the new face is never a border face.
//
// Returns the new halfedge on the new face's side (pointing to h's vertex).
//
// Errors:
//   - ErrStaleHalfedge if h or g is not live.
//   - ErrFacesNotEqual if h and g bound different faces.
//   - ErrDegenerateSplit if h == g.
//   - ErrStructuralCorruption if g cannot be reached from h.
//
// Complexity: O(sides of the face) plus O(log n) slot allocation.
func (m *Mesh) SplitFace(h, g int) (int, error) {
	if err := m.live2(h, g); err != nil {
		return Nil, err
	}
	H, G := *m.he(h), *m.he(g)
	if H.Fac != G.Fac {
		return Nil, errors.Wrapf(ErrFacesNotEqual, "halfedge %d on face %d, halfedge %d on face %d", h, H.Fac, g, G.Fac)
	}
	if h == g {
		return Nil, errors.Wrapf(ErrDegenerateSplit, "halfedge %d", h)
	}

	var run []int
	err := m.walk(H.Nxt, false, func(e int) bool {
		run = append(run, e)
		return e != g
	})
	if err != nil {
		return Nil, err
	}
	if run[len(run)-1] != g {
		return Nil, errors.Wrapf(ErrStructuralCorruption, "halfedge %d not reached from halfedge %d", g, h)
	}

	newFace := m.faceh.EmptySlot()
	slots := m.halfedges.EmptySlots(2)
	i, j := slots[0], slots[1]
	m.halfedges.Set(i, Halfedge{Vtx: G.Vtx, Opp: j, Nxt: G.Nxt, Prv: h, Fac: H.Fac})
	m.halfedges.Set(j, Halfedge{Vtx: H.Vtx, Opp: i, Nxt: H.Nxt, Prv: g, Fac: newFace})
	for _, e := range run {
		m.he(e).Fac = newFace
	}
	m.he(G.Nxt).Prv = i
	m.he(g).Nxt = j
	m.he(H.Nxt).Prv = j
	m.he(h).Nxt = i

	m.faceh.Set(newFace, j)
	m.faceh.Set(H.Fac, i)
	m.vertexh.Set(G.Vtx, i)
	m.vertexh.Set(H.Vtx, j)
	return j, nil
}

// JoinVertex collapses the edge {h, opposite(h)}: the vertex h points to is
// merged into the vertex opposite(h) points to, and the edge and the merged
// vertex are removed.
//
// Returns prev(h), which points to the surviving vertex.
//
// Errors:
//   - ErrStaleHalfedge if h is not live.
//   - ErrDegenerateJoin if opposite(h) == prev(h) or opposite(h) == next(h),
//     i.e. one endpoint has no other edge.
//   - ErrStructuralCorruption if the merged vertex does not circulate.
//
// Complexity: O(degree of the merged vertex).
func (m *Mesh) JoinVertex(h int) (int, error) {
	if !m.halfedges.Has(h) {
		return Nil, errors.Wrapf(ErrStaleHalfedge, "halfedge %d", h)
	}
	g := m.he(h).Opp
	if g == m.he(h).Prv || g == m.he(h).Nxt {
		return Nil, errors.Wrapf(ErrDegenerateJoin, "edge %d/%d has a dangling endpoint", h, g)
	}
	oldVtx, newVtx := m.he(h).Vtx, m.he(g).Vtx
	if oldVtx == newVtx {
		return Nil, errors.Wrapf(ErrDegenerateJoin, "edge %d/%d is a loop at vertex %d", h, g, oldVtx)
	}
	cycle, err := m.VertexCycle(h)
	if err != nil {
		return Nil, err
	}
	for _, e := range cycle {
		m.he(e).Vtx = newVtx
	}

	H, G := *m.he(h), *m.he(g)
	m.he(H.Prv).Nxt = H.Nxt
	m.he(H.Nxt).Prv = H.Prv
	m.he(G.Prv).Nxt = G.Nxt
	m.he(G.Nxt).Prv = G.Prv

	klog.V(2).Infof("hds: removing vertex %d and halfedges %d, %d", oldVtx, h, g)
	m.vertexh.Clear(oldVtx)
	m.vertices.Clear(oldVtx)
	m.halfedges.Clear(h)
	m.halfedges.Clear(g)

	if err := m.repair(H, G); err != nil {
		return Nil, err
	}
	return H.Prv, nil
}

// SplitVertex splits the vertex W shared by h and g into W and a new vertex
// carrying payload, joined by a new edge. Walking from h around W (opposite,
// then prev), every halfedge before g is moved to the new vertex.
//
// Returns the new halfedge pointing from W to the new vertex.
//
// Errors:
//   - ErrStaleHalfedge if h or g is not live.
//   - ErrVerticesNotEqual if h and g point to different vertices.
//   - ErrDegenerateSplit if h == g.
//   - ErrStructuralCorruption if g is not reached within the vertex bound.
//
// Complexity: O(degree of W) plus O(log n) slot allocation.
func (m *Mesh) SplitVertex(h, g int, payload orb.Point) (int, error) {
	if err := m.live2(h, g); err != nil {
		return Nil, err
	}
	H, G := *m.he(h), *m.he(g)
	if H.Vtx != G.Vtx {
		return Nil, errors.Wrapf(ErrVerticesNotEqual, "halfedge %d to vertex %d, halfedge %d to vertex %d", h, H.Vtx, g, G.Vtx)
	}
	if h == g {
		return Nil, errors.Wrapf(ErrDegenerateSplit, "halfedge %d", h)
	}

	var moved []int
	for e := h; e != g; e = m.he(m.he(e).Opp).Prv {
		if len(moved) >= m.vertexLimit {
			return Nil, errors.Wrapf(ErrStructuralCorruption,
				"halfedge %d not reached around vertex %d from halfedge %d", g, H.Vtx, h)
		}
		moved = append(moved, e)
	}

	newVtx := m.vertexh.EmptySlot()
	m.vertices.Set(newVtx, payload)
	m.vertexh.Set(H.Vtx, g)
	m.vertexh.Set(newVtx, h)
	for _, e := range moved {
		m.he(e).Vtx = newVtx
	}

	slots := m.halfedges.EmptySlots(2)
	i, j := slots[0], slots[1]
	m.halfedges.Set(i, Halfedge{Vtx: G.Vtx, Opp: j, Nxt: H.Nxt, Prv: h, Fac: H.Fac})
	m.halfedges.Set(j, Halfedge{Vtx: newVtx, Opp: i, Nxt: G.Nxt, Prv: g, Fac: G.Fac})
	m.he(H.Nxt).Prv = i
	m.he(G.Nxt).Prv = j
	m.he(h).Nxt = i
	m.he(g).Nxt = j
	return j, nil
}

// FillBorderFace turns border face f into an interior face, closing the hole
// it bounded. The topology is unchanged.
//
// Errors:
//   - ErrPrecondition if f is not a border face.
func (m *Mesh) FillBorderFace(f int) error {
	if !m.IsBorderFace(f) {
		return errors.Wrapf(ErrPrecondition, "face %d is not a border face", f)
	}
	delete(m.border, f)
	klog.V(2).Infof("hds: filled border face %d", f)
	return nil
}
