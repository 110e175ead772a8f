// SPDX-License-Identifier: MIT

package tiling

// Options configures the geometric tolerances of a Tiling.
type Options struct {
	// SideLength is the edge length of seed polygons.
	SideLength float64

	// AngleTolerance is the slack, in radians, when matching a border angle
	// to a polygon's internal angle.
	AngleTolerance float64

	// FitTolerance is the slack, in radians, when testing whether a polygon
	// fits a cavity.
	FitTolerance float64

	// CutDistance is the distance below which two border vertices are
	// considered coincident by CloseCuts.
	CutDistance float64
}

// DefaultOptions returns the options used by the interactive editor:
// side 100, angle tolerance 0.005, fit tolerance 0.05, cut distance 1.
func DefaultOptions() Options {
	return Options{
		SideLength:     100,
		AngleTolerance: 0.005,
		FitTolerance:   0.05,
		CutDistance:    1,
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.SideLength <= 0 {
		o.SideLength = d.SideLength
	}
	if o.AngleTolerance <= 0 {
		o.AngleTolerance = d.AngleTolerance
	}
	if o.FitTolerance <= 0 {
		o.FitTolerance = d.FitTolerance
	}
	if o.CutDistance <= 0 {
		o.CutDistance = d.CutDistance
	}
	return o
}
