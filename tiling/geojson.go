// SPDX-License-Identifier: MIT

package tiling

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/archimesh/archnode"
)

// FeatureCollection exports t as GeoJSON: one Polygon feature per face, with
// "face", "sides" and "border" properties, followed by one Point feature per
// vertex with "vertex", "border" and "node" properties. "node" is the
// vertex configuration in notation form, and "letter" its node letter when
// the vertex is a complete uniform node.
func (t *Tiling) FeatureCollection() (*geojson.FeatureCollection, error) {
	m := t.mesh
	fc := geojson.NewFeatureCollection()

	addFace := func(h int, border bool) error {
		cycle, err := m.FaceCycle(h)
		if err != nil {
			return err
		}
		ring := make(orb.Ring, 0, len(cycle)+1)
		for _, e := range cycle {
			ring = append(ring, m.Vertex(e))
		}
		ring = append(ring, ring[0])
		f := geojson.NewFeature(orb.Polygon{ring})
		f.Properties["face"] = m.FaceID(h)
		f.Properties["sides"] = len(cycle)
		f.Properties["border"] = border
		fc.Append(f)
		return nil
	}
	for h := range m.AllFaces() {
		if err := addFace(h, false); err != nil {
			return nil, err
		}
	}
	for h := range m.AllBorderFaces() {
		if err := addFace(h, true); err != nil {
			return nil, err
		}
	}

	for h := range m.AllVertices() {
		vtype, err := t.NodeType(h)
		if err != nil {
			return nil, err
		}
		f := geojson.NewFeature(m.Vertex(h))
		f.Properties["vertex"] = m.VertexID(h)
		f.Properties["border"] = t.IsBorderVertex(h)
		f.Properties["node"] = archnode.Format(vtype)
		if code := archnode.NodeCode(vtype); code >= 0 {
			f.Properties["letter"] = archnode.Letter(code)
		}
		fc.Append(f)
	}
	return fc, nil
}
