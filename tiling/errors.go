// SPDX-License-Identifier: MIT

package tiling

import "github.com/pkg/errors"

var (
	// ErrNotBorder indicates a halfedge that does not bound a border face.
	ErrNotBorder = errors.New("tiling: halfedge is not on the border")

	// ErrPolygonSides indicates an unsupported number of polygon sides.
	ErrPolygonSides = errors.New("tiling: unsupported polygon side count")

	// ErrNoBorderHalfedge indicates a vertex with no incident border halfedge.
	ErrNoBorderHalfedge = errors.New("tiling: vertex is not on the border")

	// ErrNoCompletion indicates that no border vertex can be completed as requested.
	ErrNoCompletion = errors.New("tiling: no completion available")
)
