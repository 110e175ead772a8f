// SPDX-License-Identifier: MIT

package tiling

import (
	"github.com/paulmach/orb/planar"
	"github.com/plan-systems/klog"
)

// closeCut looks for one border spike a->b->c whose outer corners a and c
// coincide, and stitches its two edges into one. It reports whether a cut
// was closed.
func (t *Tiling) closeCut() (bool, error) {
	m := t.mesh
	for f := range m.AllBorderFaces() {
		cycle, err := m.FaceCycle(f)
		if err != nil {
			return false, err
		}
		for _, g := range cycle {
			prev, next := m.Prev(g), m.Next(g)
			if prev == next || m.VertexID(prev) == m.VertexID(next) {
				continue
			}
			if planar.Distance(m.Vertex(prev), m.Vertex(next)) >= t.opts.CutDistance {
				continue
			}
			e, err := m.SplitFace(prev, next)
			if err != nil {
				return false, err
			}
			if e, err = m.JoinVertex(e); err != nil {
				return false, err
			}
			if _, err = m.JoinFace(e); err != nil {
				return false, err
			}
			klog.V(1).Infof("tiling: closed cut at vertex %d", m.VertexID(g))
			return true, nil
		}
	}
	return false, nil
}

// CloseCuts stitches every pair of coincident consecutive border edges and
// returns the number of cuts closed.
func (t *Tiling) CloseCuts() (int, error) {
	n := 0
	for {
		closed, err := t.closeCut()
		if err != nil || !closed {
			return n, err
		}
		n++
	}
}
