// SPDX-License-Identifier: MIT

package archnode

import "github.com/pkg/errors"

// Catalog holds the polygon side counts around each uniform-tiling node.
// Chiral nodes appear once per mirror image.
var Catalog = [][]int{
	{3, 12, 12}, {12, 3, 12},     // G
	{4, 6, 12}, {4, 12, 6},       // H
	{4, 8, 8}, {8, 4, 8},         // J
	{6, 6, 6},                    // K
	{3, 3, 4, 12}, {3, 3, 12, 4}, // L
	{3, 4, 3, 12},                // M
	{3, 4, 4, 6}, {6, 4, 4, 3},   // N
	{3, 4, 6, 4},                 // P
	{3, 3, 6, 6},                 // Q
	{3, 6, 3, 6},                 // R
	{4, 4, 4, 4},                 // S
	{3, 3, 3, 4, 4},              // T
	{3, 3, 4, 3, 4},              // U
	{3, 3, 3, 3, 6},              // V
	{3, 3, 3, 3, 3, 3},           // W
}

// MaxNodeLength is the most polygons that fit around a vertex: each corner
// takes at least 60 degrees.
const MaxNodeLength = 6

// Letters is the node letter of each Catalog entry.
var Letters = []string{"G", "G", "H", "H", "J", "J", "K", "L", "L", "M", "N", "N", "P", "Q", "R", "S", "T", "U", "V", "W"}

// Letter returns the node letter of catalog entry i, or "" when i is out of range.
func Letter(i int) string {
	if i < 0 || i >= len(Letters) {
		return ""
	}
	return Letters[i]
}

// ByLetter returns the catalog indices carrying the given node letter.
func ByLetter(letter string) ([]int, error) {
	var out []int
	for i, l := range Letters {
		if l == letter {
			out = append(out, i)
		}
	}
	if len(out) == 0 {
		return nil, errors.Wrapf(ErrUnknownNode, "letter %q", letter)
	}
	return out, nil
}
