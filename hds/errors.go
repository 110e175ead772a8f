// SPDX-License-Identifier: MIT

package hds

import "github.com/pkg/errors"

// Sentinel errors for mesh construction and editing. Every error returned by
// this package matches exactly one of the first four with errors.Is.
var (
	// ErrStructuralCorruption indicates a broken invariant: a circulation did
	// not close within its bound, or no live replacement representative could
	// be found after a deletion.
	ErrStructuralCorruption = errors.New("hds: structural corruption")

	// ErrPrecondition indicates an operator was called on halfedges that
	// violate its contract.
	ErrPrecondition = errors.New("hds: operator precondition violated")

	// ErrNonManifold indicates construction input that traverses a directed
	// edge twice or whose boundary does not form simple loops.
	ErrNonManifold = errors.New("hds: non-manifold input")

	// ErrBadSnapshot indicates a snapshot that references missing slots.
	ErrBadSnapshot = errors.New("hds: malformed snapshot")
)

// Precondition errors. Each wraps ErrPrecondition.
var (
	// ErrStaleHalfedge indicates a halfedge id that is out of range or tombstoned.
	ErrStaleHalfedge = errors.Wrap(ErrPrecondition, "hds: stale halfedge")

	// ErrFacesNotEqual is returned by SplitFace when h and g bound different faces.
	ErrFacesNotEqual = errors.Wrap(ErrPrecondition, "hds: halfedges are not on the same face")

	// ErrVerticesNotEqual is returned by SplitVertex when h and g point to different vertices.
	ErrVerticesNotEqual = errors.Wrap(ErrPrecondition, "hds: halfedges do not share a vertex")

	// ErrDegenerateJoin is returned by JoinVertex when merging would collapse a
	// two-edge loop, and by JoinFace when the edge has the same face on both sides.
	ErrDegenerateJoin = errors.Wrap(ErrPrecondition, "hds: join would collapse a degenerate loop")

	// ErrDegenerateSplit is returned by SplitFace/SplitVertex when h == g.
	ErrDegenerateSplit = errors.Wrap(ErrPrecondition, "hds: split needs two distinct halfedges")
)

// Construction input errors. Each wraps ErrNonManifold.
var (
	// ErrInvalidVertex indicates a face referencing a vertex id outside the payload list.
	ErrInvalidVertex = errors.Wrap(ErrNonManifold, "hds: face references an unknown vertex")

	// ErrInvalidFace indicates a face with fewer than three vertices or a repeated
	// consecutive vertex.
	ErrInvalidFace = errors.Wrap(ErrNonManifold, "hds: degenerate face")
)
