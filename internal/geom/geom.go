// Package geom provides the integer pixel geometry the editor works in:
// - Points stored on the integer pixel grid
// - Homogeneous coordinates and 3x3 row-vector transform matrices
// - Centroids and bounds
// - Hit-testing (point-in-polygon, point-to-segment distance)
package geom

import (
	"fmt"
	"math"
)

// Point is a pixel coordinate. Coordinates are always integers; sub-pixel
// precision is dropped whenever a point is produced.
type Point struct {
	X int
	Y int
}

// Vec3 is a point in homogeneous form, (x, y, w).
type Vec3 [3]float64

// Pt returns the point (x, y).
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// MakePoint rounds (x, y) to the nearest pixel, half away from zero.
func MakePoint(x, y float64) Point {
	return Point{X: int(math.Round(x)), Y: int(math.Round(y))}
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Homogeneous returns (x, y, 1).
func (p Point) Homogeneous() Vec3 {
	return Vec3{float64(p.X), float64(p.Y), 1}
}

// FromHomogeneous projects v back onto the pixel grid. A zero w is a
// direction vector; its x and y are returned unscaled.
func FromHomogeneous(v Vec3) Point {
	if v[2] == 0 {
		return MakePoint(v[0], v[1])
	}
	return MakePoint(v[0]/v[2], v[1]/v[2])
}

func Dist(p, q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Centroid returns the unweighted mean of pts, or the origin if pts is empty.
func Centroid(pts []Point) Point {
	return MakePoint(Mean(pts))
}

// Mean is Centroid without the rounding.
func Mean(pts []Point) (x, y float64) {
	if len(pts) == 0 {
		return 0, 0
	}
	var sx, sy int
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	return float64(sx) / n, float64(sy) / n
}

// Bounds returns the inclusive bounding corners of pts. ok is false when pts
// is empty.
func Bounds(pts []Point) (lo, hi Point, ok bool) {
	if len(pts) == 0 {
		return Point{}, Point{}, false
	}
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	return lo, hi, true
}
