// SPDX-License-Identifier: MIT

// Package hds implements an indexed halfedge data structure for planar
// polygonal meshes (tilings), with local topology editors that keep its
// invariants.
//
// Every entity is addressed by an int id into a table owned by the Mesh:
//
//	halfedges  id -> Halfedge{Vtx, Opp, Nxt, Prv, Fac}
//	vertices   id -> orb.Point payload
//	faceh      face id -> representative halfedge
//	vertexh    vertex id -> representative halfedge (pointing to the vertex)
//	border     set of synthetic face ids closing open boundaries
//
// Invariants after every completed operation:
//
//   - opposite(opposite(h)) == h for every live h.
//   - Following next from h returns to h after exactly the face's side
//     count; all visited halfedges share Fac.
//   - Following next then opposite from h returns to h after exactly the
//     vertex degree; all visited halfedges share Vtx.
//   - Every live face and vertex has a live representative on it.
//   - The border set tags exactly the faces synthesized by New to close
//     boundary loops (and the faces they are merged into).
//
// Construction:
//
//	m, err := hds.New([][]int{{0, 1, 2}, {0, 2, 3}}, pts)
//
// builds the two interior faces and one border face around the quad.
//
// Editors:
//
//	JoinFace(h)            remove edge h, merging its two faces
//	SplitFace(h, g)        add an edge across the face of h and g
//	JoinVertex(h)          collapse edge h, merging its two vertices
//	SplitVertex(h, g, p)   add an edge splitting the vertex of h and g
//
// JoinFace/SplitFace and JoinVertex/SplitVertex are inverses up to id
// assignment. Freed ids are reused lowest first, so removed ids must be
// treated as invalid the moment an editor returns.
//
// Iteration uses Go iterators:
//
//	for h := range m.FaceCirculator(f) { ... }
//	for h := range m.AllEdges() { ... }
//
// A Mesh is a single-owner value: it holds no locks and no global state, and
// must not be edited while one of its circulators is being consumed.
//
// Snapshot/FromSnapshot (and MarshalJSON/UnmarshalJSON) convert to and from a
// flat form that keeps ids and tombstones, which is what undo stacks and
// files store.
//
// Errors:
//
//	ErrStructuralCorruption - circulation failed to close, or a representative
//	                          could not be replaced.
//	ErrPrecondition         - an editor was misused (ErrFacesNotEqual,
//	                          ErrVerticesNotEqual, ErrDegenerateJoin,
//	                          ErrDegenerateSplit, ErrStaleHalfedge).
//	ErrNonManifold          - construction input reuses a directed edge or has
//	                          a pinched boundary (ErrInvalidVertex, ErrInvalidFace).
//	ErrBadSnapshot          - snapshot references missing slots.
package hds
