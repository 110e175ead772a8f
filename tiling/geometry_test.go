// SPDX-License-Identifier: MIT

package tiling_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/archimesh/tiling"
)

const eps = 1e-9

func assertPoint(t *testing.T, want, got orb.Point) {
	t.Helper()
	assert.InDelta(t, want[0], got[0], eps)
	assert.InDelta(t, want[1], got[1], eps)
}

func TestInternalAngle(t *testing.T) {
	assert.InDelta(t, math.Pi/3, tiling.InternalAngle(3), eps)
	assert.InDelta(t, math.Pi/2, tiling.InternalAngle(4), eps)
	assert.InDelta(t, 2*math.Pi/3, tiling.InternalAngle(6), eps)
	assert.InDelta(t, 5*math.Pi/6, tiling.InternalAngle(12), eps)
}

func TestPolyFromSide(t *testing.T) {
	sq := tiling.PolyFromSide(orb.Point{0, 0}, 4, 2, orb.Point{5, 0})
	require.Len(t, sq, 4)
	for i, want := range []orb.Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}} {
		assertPoint(t, want, sq[i])
	}

	// Zero direction means the x axis.
	tri := tiling.PolyFromSide(orb.Point{1, 1}, 3, 1, orb.Point{})
	assertPoint(t, orb.Point{2, 1}, tri[1])
	assertPoint(t, orb.Point{1.5, 1 + math.Sqrt(3)/2}, tri[2])
}

func TestPolyFromCenter(t *testing.T) {
	for _, n := range []int{3, 4, 6, 8, 12} {
		c := orb.Point{10, 5}
		poly := tiling.PolyFromCenter(c, n, 3, orb.Point{1, 0})
		require.Len(t, poly, n)

		radius := 3.0 / 2 / math.Sin(math.Pi/float64(n))
		for i, p := range poly {
			assert.InDelta(t, radius, planar.Distance(c, p), 1e-9, "n=%d corner %d", n, i)
			assert.InDelta(t, 3, planar.Distance(p, poly[(i+1)%n]), 1e-9, "n=%d side %d", n, i)
		}
		assert.InDelta(t, poly[0][1], poly[1][1], eps, "first side is horizontal")
		assert.Less(t, poly[0][1], c[1], "first side is below the centre")
	}
}
