// SPDX-License-Identifier: MIT

package hds

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/archimesh/slot"
)

// Nil marks a missing index, e.g. the opposite of a halfedge that has not
// been paired yet during construction.
const Nil = -1

// Default circulation bounds. They only guard against corrupt structures.
const (
	DefaultFaceCirculationLimit   = 2000
	DefaultVertexCirculationLimit = 30
)

// Halfedge is one directed half of an edge. All fields are indices into
// tables owned by a Mesh:
//
//	Vtx - vertex the halfedge points to
//	Opp - opposite halfedge
//	Nxt - next halfedge around the same face
//	Prv - previous halfedge around the same face
//	Fac - incident face
//
// A Halfedge carries no reference to its Mesh; navigate with the Mesh methods.
type Halfedge struct {
	Vtx int `json:"vtx"`
	Opp int `json:"opp"`
	Nxt int `json:"nxt"`
	Prv int `json:"prv"`
	Fac int `json:"fac"`
}

// Mesh is an indexed halfedge data structure for planar polygonal meshes.
//
// Faces are not materialized: a face id keys faceh (face -> representative
// halfedge) and may be a member of border, the set of synthetic faces that
// close open boundary loops. Vertices are orb.Point payloads keyed by id,
// with vertexh (vertex -> representative halfedge pointing to it).
//
// A Mesh is not safe for concurrent use. Removing an entity tombstones its
// slot; the id may be handed out again by the next split.
type Mesh struct {
	faceh     *slot.Table[int]
	vertexh   *slot.Table[int]
	halfedges *slot.Table[Halfedge]
	vertices  *slot.Table[orb.Point]
	border    map[int]struct{}

	faceLimit   int
	vertexLimit int
}

// Option configures a Mesh before it is built.
type Option func(m *Mesh)

// WithFaceCirculationLimit sets the number of steps after which a face
// circulation is treated as corrupt. Non-positive values are ignored.
func WithFaceCirculationLimit(n int) Option {
	return func(m *Mesh) {
		if n > 0 {
			m.faceLimit = n
		}
	}
}

// WithVertexCirculationLimit sets the number of steps after which a vertex
// circulation is treated as corrupt. Non-positive values are ignored.
func WithVertexCirculationLimit(n int) Option {
	return func(m *Mesh) {
		if n > 0 {
			m.vertexLimit = n
		}
	}
}

func newEmpty(opts []Option) *Mesh {
	m := &Mesh{
		faceh:       slot.New[int](),
		vertexh:     slot.New[int](),
		halfedges:   slot.New[Halfedge](),
		vertices:    slot.New[orb.Point](),
		border:      make(map[int]struct{}),
		faceLimit:   DefaultFaceCirculationLimit,
		vertexLimit: DefaultVertexCirculationLimit,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
