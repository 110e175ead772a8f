// SPDX-License-Identifier: MIT

// Package tiling grows planar tilings of regular polygons on top of an
// hds.Mesh.
//
// A Tiling starts from a single seed polygon (Seed) and is extended by
// gluing regular polygons onto its border (AttachPolygon). Every edit is a
// composition of the four hds editors, so the mesh invariants hold after
// each step. Vertices are classified with archnode: Alternatives lists the
// uniform nodes a border vertex can still become and MakeNode attaches the
// polygons that turn it into one.
//
// Geometry lives in the vertex payloads (orb.Point). Angles are measured on
// border halfedges: FaceAngle is positive where the border turns left, i.e.
// where the mesh leaves a gap of less than a half turn at the vertex.
//
// Attaching polygons around a vertex can leave a cut: two border edges that
// lie on top of each other. CloseCuts stitches such edges together.
//
// Dual builds the dual tiling and FeatureCollection exports faces and
// vertices as GeoJSON.
package tiling
