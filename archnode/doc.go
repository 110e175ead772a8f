// SPDX-License-Identifier: MIT

// Package archnode classifies mesh vertices against the vertex types of the
// uniform (Archimedean) tilings.
//
// A vertex type is the cyclic sequence of polygon side counts met while
// circulating a vertex, e.g. [3,4,6,4] for the rhombitrihexagonal node.
// Catalog lists every such sequence that occurs in a uniform tiling, mirrored
// rotations included; Letters names each entry with its node letter.
//
// A probe is a vertex type read from a partially built mesh. Border gaps are
// encoded as 0 and rotated to the front by VertexNodeType, so that
//
//	[0, 3, 4]   // a border vertex touching a triangle then a square
//
// can be matched against the catalog (ArchMatch) and completed
// (CompletionAlternatives): for each reachable node the exact run of
// polygons still needed to close the vertex is reported.
//
// ParseNotation reads the usual vertex configuration notation ("3.4.6.4",
// "3^2.4.3.4", "(3.12^2)") and Format writes it back.
package archnode
