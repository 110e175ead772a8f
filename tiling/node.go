// SPDX-License-Identifier: MIT

package tiling

import (
	"slices"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/archimesh/archnode"
)

// Alternatives returns the catalog nodes the vertex h points to can still
// become and, index aligned, the polygons each one needs. Interior vertices
// have no alternatives.
func (t *Tiling) Alternatives(h int) (matches []int, completions [][]int, err error) {
	vtype, err := t.NodeType(h)
	if err != nil {
		return nil, nil, err
	}
	matches, completions = archnode.CompletionAlternatives(vtype)
	return matches, completions, nil
}

// MakeNode attaches the polygons of completion, in order, in the border gap
// at the vertex h points to, then closes any cuts this leaves. Returns the
// id of the completed vertex.
func (t *Tiling) MakeNode(h int, completion []int) (int, error) {
	for _, n := range completion {
		b, err := t.BorderHalfedge(h)
		if err != nil {
			return -1, err
		}
		if _, err := t.AttachPolygon(b, n); err != nil {
			return -1, err
		}
	}
	// Attaching only removes halfedges it created, so h is still live.
	v := t.mesh.VertexID(h)
	cuts, err := t.CloseCuts()
	if err != nil {
		return -1, err
	}
	klog.V(1).Infof("tiling: completed vertex %d with %v, %d cuts closed", v, completion, cuts)
	return v, nil
}

// CompleteNode finds the first border vertex, in vertex id order, that can
// become a node with the given letter and completes it. Returns the id of
// the completed vertex.
func (t *Tiling) CompleteNode(letter string) (int, error) {
	want, err := archnode.ByLetter(letter)
	if err != nil {
		return -1, err
	}
	for h := range t.mesh.AllVertices() {
		matches, completions, err := t.Alternatives(h)
		if err != nil {
			return -1, err
		}
		for i, idx := range matches {
			if !slices.Contains(want, idx) {
				continue
			}
			return t.MakeNode(h, completions[i])
		}
	}
	return -1, errors.Wrapf(ErrNoCompletion, "node %s", letter)
}
