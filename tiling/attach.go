// SPDX-License-Identifier: MIT

package tiling

import (
	"math"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/archimesh/hds"
)

// Cavity returns the run of border halfedges around h whose joints are
// gaps of angle ang: starting from h it walks back while the gap at the tail
// matches, then forward while the gap at the head matches. With ang <= 0 any
// positive gap that is not a straight angle matches. The run is never
// empty and never visits the start vertex twice.
func (t *Tiling) Cavity(h int, ang float64) ([]int, error) {
	m := t.mesh
	if !m.Live(h) {
		return nil, errors.Wrapf(hds.ErrStaleHalfedge, "halfedge %d", h)
	}
	if !m.IsBorder(h) {
		return nil, errors.Wrapf(ErrNotBorder, "halfedge %d", h)
	}
	sides, err := m.FaceSides(h)
	if err != nil {
		return nil, err
	}
	tol := t.opts.AngleTolerance
	pass := func(e int) bool {
		a := t.FaceAngle(e)
		if ang > 0 {
			return a > 0 && math.Abs(a-ang) < tol
		}
		return a > 0 && math.Abs(math.Pi-a) > tol
	}

	vtx := m.VertexID(h)
	for k := 0; k < sides && pass(m.Prev(h)) && m.VertexID(m.Prev(h)) != vtx; k++ {
		h = m.Prev(h)
	}
	run := []int{h}
	vtx = m.VertexID(h)
	for len(run) < sides && pass(h) && m.VertexID(m.Next(h)) != vtx {
		h = m.Next(h)
		run = append(run, h)
	}
	return run, nil
}

// FitsCavity reports whether a regular n-gon fits the border at h: none of
// the positive gaps it would cover is narrower than the polygon's internal
// angle (within FitTolerance).
func (t *Tiling) FitsCavity(h, n int) (bool, error) {
	if n < 3 {
		return false, errors.Wrapf(ErrPolygonSides, "%d sides", n)
	}
	run, err := t.Cavity(h, 0)
	if err != nil {
		return false, err
	}
	theta := InternalAngle(n)
	for i, e := range run {
		if i >= n {
			break
		}
		a := t.FaceAngle(e)
		if a <= 0 {
			break
		}
		if a+t.opts.FitTolerance < theta {
			return false, nil
		}
	}
	return true, nil
}

// AttachPolygon glues a regular n-gon onto the border at halfedge h. The
// polygon takes the side of h (extended over any cavity of matching
// angle) and its new corners are placed geometrically. Returns a halfedge
// on the new face.
//
// Errors:
//   - ErrPolygonSides if n < 3.
//   - ErrNotBorder if h is not a border halfedge.
//   - errors from the hds editors on a corrupt mesh.
func (t *Tiling) AttachPolygon(h, n int) (int, error) {
	if n < 3 {
		return hds.Nil, errors.Wrapf(ErrPolygonSides, "%d sides", n)
	}
	m := t.mesh
	c, err := t.Cavity(h, InternalAngle(n))
	if err != nil {
		return hds.Nil, err
	}
	if len(c) > n {
		c = c[:n]
	}
	first, last := c[0], c[len(c)-1]
	g := m.Prev(first)
	if g == last {
		// The cavity is the whole hole: the polygon fills it.
		f := m.FaceID(first)
		if len(c) != n {
			return hds.Nil, errors.Wrapf(ErrPolygonSides, "hole of %d sides cannot take a %d-gon", len(c), n)
		}
		if err := m.FillBorderFace(f); err != nil {
			return hds.Nil, err
		}
		klog.V(1).Infof("tiling: filled a %d-sided hole", n)
		return first, nil
	}

	q, p := m.Vertex(m.Opposite(first)), m.Vertex(first)
	u := sub(p, q)
	corners := PolyFromSide(q, n, norm(u), u)

	j, err := m.SplitFace(g, last)
	if err != nil {
		return hds.Nil, err
	}
	if len(c) == n {
		// The run already closes the polygon: j joins two coincident corners.
		if _, err := m.JoinVertex(j); err != nil {
			return hds.Nil, err
		}
	} else {
		e := last
		for k := len(c) + 1; k < n; k++ {
			if e, err = m.SplitVertex(m.Opposite(m.Next(e)), e, corners[k]); err != nil {
				return hds.Nil, err
			}
		}
	}
	klog.V(1).Infof("tiling: attached a %d-gon along %d border edges", n, len(c))
	return last, nil
}
