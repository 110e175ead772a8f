// SPDX-License-Identifier: MIT

package tiling

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

func sub(p, q orb.Point) orb.Point { return orb.Point{p[0] - q[0], p[1] - q[1]} }

func add(p, q orb.Point) orb.Point { return orb.Point{p[0] + q[0], p[1] + q[1]} }

func scale(v orb.Point, s float64) orb.Point { return orb.Point{v[0] * s, v[1] * s} }

func dot(u, v orb.Point) float64 { return u[0]*v[0] + u[1]*v[1] }

func cross(u, v orb.Point) float64 { return u[0]*v[1] - u[1]*v[0] }

func norm(v orb.Point) float64 { return planar.Distance(orb.Point{}, v) }

// unit returns v scaled to length 1, or the zero vector when v is zero.
func unit(v orb.Point) orb.Point {
	n := norm(v)
	if n == 0 {
		return orb.Point{}
	}
	return scale(v, 1/n)
}

func rotate(v orb.Point, cos, sin float64) orb.Point {
	return orb.Point{v[0]*cos - v[1]*sin, v[0]*sin + v[1]*cos}
}

// InternalAngle returns the internal angle, in radians, of a regular n-gon.
func InternalAngle(n int) float64 {
	return math.Pi - 2*math.Pi/float64(n)
}

// PolyFromSide returns the corners of a regular n-gon with side s whose
// first corner is p and whose first side points along v, turning
// counterclockwise. A zero v means the positive x axis.
func PolyFromSide(p orb.Point, n int, s float64, v orb.Point) []orb.Point {
	if v == (orb.Point{}) {
		v = orb.Point{1, 0}
	}
	v = scale(unit(v), s)
	ang := 2 * math.Pi / float64(n)
	cos, sin := math.Cos(ang), math.Sin(ang)
	poly := make([]orb.Point, 0, n)
	poly = append(poly, p)
	for i := 1; i < n; i++ {
		p = add(p, v)
		poly = append(poly, p)
		v = rotate(v, cos, sin)
	}
	return poly
}

// PolyFromCenter is PolyFromSide for a polygon centred at c.
func PolyFromCenter(c orb.Point, n int, s float64, v orb.Point) []orb.Point {
	if v == (orb.Point{}) {
		v = orb.Point{1, 0}
	}
	ang := 2 * math.Pi / float64(n)
	radius := s / 2 / math.Sin(ang/2)
	theta := math.Pi/2 - ang/2
	u := rotate(scale(unit(v), radius), math.Cos(theta), math.Sin(theta))
	return PolyFromSide(sub(c, u), n, s, v)
}

// turn returns the angle at b between segments a->b and b->c: the angle on
// the left side, positive for a left turn and negative for a right turn.
// A straight continuation gives pi.
func turn(a, b, c orb.Point) float64 {
	u := unit(sub(b, a))
	v := unit(sub(c, b))
	d := math.Max(-1, math.Min(1, dot(u, v)))
	ang := math.Pi - math.Acos(d)
	if cross(u, v) < 0 {
		return -ang
	}
	return ang
}
