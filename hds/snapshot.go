// SPDX-License-Identifier: MIT

package hds

import (
	"encoding/json"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Snapshot is the flat, serializable form of a Mesh. Tombstoned slots are
// encoded as nil (JSON null) so ids and free positions survive a round trip.
// The JSON field names are those of the tiling editor's saved files, but
// vertex payloads encode as orb.Point arrays [x, y], not {x, y} objects, so
// files holding object payloads are rejected with ErrBadSnapshot.
type Snapshot struct {
	FaceRep     []*int       `json:"faceh"`
	VertexRep   []*int       `json:"vertexh"`
	Halfedges   []*Halfedge  `json:"halfedge"`
	Vertices    []*orb.Point `json:"vertex"`
	BorderFaces []int        `json:"borderFaces"`
}

func intSlots(n int, get func(int) (int, bool)) []*int {
	out := make([]*int, n)
	for i := range out {
		if v, ok := get(i); ok {
			out[i] = &v
		}
	}
	return out
}

// Snapshot returns a deep copy of m's tables.
func (m *Mesh) Snapshot() *Snapshot {
	s := &Snapshot{
		FaceRep:     intSlots(m.faceh.Len(), m.faceh.Get),
		VertexRep:   intSlots(m.vertexh.Len(), m.vertexh.Get),
		Halfedges:   make([]*Halfedge, m.halfedges.Len()),
		Vertices:    make([]*orb.Point, m.vertices.Len()),
		BorderFaces: m.BorderFaces(),
	}
	for i, h := range m.halfedges.All() {
		c := *h
		s.Halfedges[i] = &c
	}
	for i, p := range m.vertices.All() {
		c := *p
		s.Vertices[i] = &c
	}
	return s
}

// FromSnapshot rebuilds a Mesh with the same ids and tombstones as the mesh
// s was taken from. Every live reference in s must name a live slot;
// otherwise ErrBadSnapshot is returned. Run Validate for a full invariant check.
func FromSnapshot(s *Snapshot, opts ...Option) (*Mesh, error) {
	if s == nil {
		return nil, errors.Wrap(ErrBadSnapshot, "nil snapshot")
	}
	m := newEmpty(opts)
	m.faceh.Grow(len(s.FaceRep))
	m.vertexh.Grow(len(s.VertexRep))
	m.halfedges.Grow(len(s.Halfedges))
	m.vertices.Grow(len(s.Vertices))
	for i, h := range s.FaceRep {
		if h != nil {
			m.faceh.Set(i, *h)
		}
	}
	for i, h := range s.VertexRep {
		if h != nil {
			m.vertexh.Set(i, *h)
		}
	}
	for i, h := range s.Halfedges {
		if h != nil {
			m.halfedges.Set(i, *h)
		}
	}
	for i, p := range s.Vertices {
		if p != nil {
			m.vertices.Set(i, *p)
		}
	}
	for _, f := range s.BorderFaces {
		m.border[f] = struct{}{}
	}
	if err := m.checkReferences(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mesh) checkReferences() error {
	for i, h := range m.halfedges.All() {
		for _, ref := range [...]int{h.Opp, h.Nxt, h.Prv} {
			if !m.halfedges.Has(ref) {
				return errors.Wrapf(ErrBadSnapshot, "halfedge %d links to missing halfedge %d", i, ref)
			}
		}
		if !m.vertices.Has(h.Vtx) {
			return errors.Wrapf(ErrBadSnapshot, "halfedge %d points to missing vertex %d", i, h.Vtx)
		}
		if !m.faceh.Has(h.Fac) {
			return errors.Wrapf(ErrBadSnapshot, "halfedge %d bounds missing face %d", i, h.Fac)
		}
	}
	for f, h := range m.faceh.All() {
		if !m.halfedges.Has(*h) {
			return errors.Wrapf(ErrBadSnapshot, "face %d represented by missing halfedge %d", f, *h)
		}
	}
	for v, h := range m.vertexh.All() {
		if !m.halfedges.Has(*h) {
			return errors.Wrapf(ErrBadSnapshot, "vertex %d represented by missing halfedge %d", v, *h)
		}
	}
	for f := range m.border {
		if !m.faceh.Has(f) {
			return errors.Wrapf(ErrBadSnapshot, "border face %d is not live", f)
		}
	}
	return nil
}

// MarshalJSON encodes m as its Snapshot.
func (m *Mesh) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Snapshot())
}

// UnmarshalJSON replaces m with the mesh encoded by a Snapshot. Circulation
// limits are kept when m was already configured.
func (m *Mesh) UnmarshalJSON(data []byte) error {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(ErrBadSnapshot, err.Error())
	}
	var opts []Option
	if m.faceLimit > 0 {
		opts = append(opts, WithFaceCirculationLimit(m.faceLimit), WithVertexCirculationLimit(m.vertexLimit))
	}
	restored, err := FromSnapshot(&s, opts...)
	if err != nil {
		return err
	}
	*m = *restored
	return nil
}

// Clone returns an independent copy of m with identical ids.
func (m *Mesh) Clone() *Mesh {
	c, err := FromSnapshot(m.Snapshot(), WithFaceCirculationLimit(m.faceLimit), WithVertexCirculationLimit(m.vertexLimit))
	if err != nil {
		// m's own snapshot is always self-consistent.
		panic(err)
	}
	return c
}
