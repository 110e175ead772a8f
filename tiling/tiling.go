// SPDX-License-Identifier: MIT

package tiling

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/archimesh/archnode"
	"github.com/katalvlaran/archimesh/hds"
)

// seedSides are the polygons that occur in uniform tilings.
var seedSides = map[int]bool{3: true, 4: true, 6: true, 8: true, 12: true}

// Tiling is a mesh of regular polygons plus the tolerances used to edit it.
type Tiling struct {
	mesh *hds.Mesh
	opts Options
}

// New wraps an existing mesh. Zero fields of opts take their defaults.
func New(m *hds.Mesh, opts Options) *Tiling {
	return &Tiling{mesh: m, opts: opts.withDefaults()}
}

// Seed returns a tiling holding one regular n-gon of side opts.SideLength
// centred at c, with its first side parallel to the x axis.
func Seed(n int, c orb.Point, opts Options) (*Tiling, error) {
	if !seedSides[n] {
		return nil, errors.Wrapf(ErrPolygonSides, "seed with %d sides", n)
	}
	opts = opts.withDefaults()
	face := make([]int, n)
	for i := range face {
		face[i] = i
	}
	m, err := hds.New([][]int{face}, PolyFromCenter(c, n, opts.SideLength, orb.Point{1, 0}))
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("tiling: seeded a %d-gon", n)
	return &Tiling{mesh: m, opts: opts}, nil
}

// Mesh returns the underlying mesh. Edits made through it are visible to t.
func (t *Tiling) Mesh() *hds.Mesh { return t.mesh }

// Options returns the tolerances of t.
func (t *Tiling) Options() Options { return t.opts }

// Sides returns the number of sides of h's face, or 0 for a border face.
func (t *Tiling) Sides(h int) (int, error) {
	return archnode.MeshSides(t.mesh)(h)
}

// FaceAngle returns the signed angle at the vertex h points to, between h
// and next(h), measured on the left of h. See the package documentation.
func (t *Tiling) FaceAngle(h int) float64 {
	m := t.mesh
	return turn(m.Vertex(m.Prev(h)), m.Vertex(h), m.Vertex(m.Next(h)))
}

// BorderHalfedge returns the border halfedge pointing to the vertex h points to.
func (t *Tiling) BorderHalfedge(h int) (int, error) {
	cycle, err := t.mesh.VertexCycle(h)
	if err != nil {
		return hds.Nil, err
	}
	for _, e := range cycle {
		if t.mesh.IsBorder(e) {
			return e, nil
		}
	}
	return hds.Nil, errors.Wrapf(ErrNoBorderHalfedge, "vertex %d", t.mesh.VertexID(h))
}

// IsBorderVertex reports whether the vertex h points to touches a border face.
func (t *Tiling) IsBorderVertex(h int) bool {
	_, err := t.BorderHalfedge(h)
	return err == nil
}

// NodeType returns the archnode vertex type of the vertex h points to.
func (t *Tiling) NodeType(h int) ([]int, error) {
	return archnode.VertexNodeType(t.mesh, h, t.Sides)
}

// NodeCode returns the catalog index of the vertex h points to, or -1 when
// the vertex is on the border or is not a uniform node.
func (t *Tiling) NodeCode(h int) (int, error) {
	vtype, err := t.NodeType(h)
	if err != nil {
		return -1, err
	}
	return archnode.NodeCode(vtype), nil
}
