// SPDX-License-Identifier: MIT

package hds

import "github.com/pkg/errors"

// Validate checks the structural invariants of m:
//   - opposite(opposite(h)) == h and h never opposes itself;
//   - every face and vertex circulation closes within its bound and stays on
//     one face (vertex);
//   - every live face and vertex has a live representative on it;
//   - every border face id is a live face.
//
// The first violation is returned wrapped in ErrStructuralCorruption.
//
// Complexity: O(H·k) where k is the longest circulation.
func (m *Mesh) Validate() error {
	for i, h := range m.halfedges.All() {
		o := m.halfedges.At(h.Opp)
		if o == nil || o.Opp != i || h.Opp == i {
			return errors.Wrapf(ErrStructuralCorruption, "halfedge %d breaks the opposite involution", i)
		}
		if n := m.halfedges.At(h.Nxt); n == nil || n.Prv != i {
			return errors.Wrapf(ErrStructuralCorruption, "prev(next(%d)) != %d", i, i)
		}
		if _, err := m.FaceCycle(i); err != nil {
			return err
		}
		if _, err := m.VertexCycle(i); err != nil {
			return err
		}
		if !m.vertices.Has(h.Vtx) {
			return errors.Wrapf(ErrStructuralCorruption, "halfedge %d points to dead vertex %d", i, h.Vtx)
		}
		if !m.faceh.Has(h.Fac) {
			return errors.Wrapf(ErrStructuralCorruption, "halfedge %d bounds dead face %d", i, h.Fac)
		}
	}
	for f, rep := range m.faceh.All() {
		e := m.halfedges.At(*rep)
		if e == nil || e.Fac != f {
			return errors.Wrapf(ErrStructuralCorruption, "face %d has a bad representative %d", f, *rep)
		}
	}
	for v, rep := range m.vertexh.All() {
		e := m.halfedges.At(*rep)
		if e == nil || e.Vtx != v {
			return errors.Wrapf(ErrStructuralCorruption, "vertex %d has a bad representative %d", v, *rep)
		}
	}
	for v := range m.vertices.All() {
		if !m.vertexh.Has(v) {
			return errors.Wrapf(ErrStructuralCorruption, "vertex %d has no representative", v)
		}
	}
	for f := range m.border {
		if !m.faceh.Has(f) {
			return errors.Wrapf(ErrStructuralCorruption, "border face %d is not live", f)
		}
	}
	return nil
}
