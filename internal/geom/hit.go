package geom

import "math"

// PointInPolygon reports whether p lies inside the closed polygon poly using
// ray casting: a horizontal ray is cast towards +x and edge crossings are
// counted, odd meaning inside. Polygons with fewer than 3 vertices contain
// nothing. Points exactly on the boundary get a well-defined but
// unspecified answer.
func PointInPolygon(p Point, poly []Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	x, y := float64(p.X), float64(p.Y)
	inside := false
	a := poly[n-1]
	for _, b := range poly {
		ax, ay := float64(a.X), float64(a.Y)
		bx, by := float64(b.X), float64(b.Y)

		// Half-open in y, so a ray through a shared vertex counts once and
		// horizontal edges never match.
		if y > math.Min(ay, by) && y <= math.Max(ay, by) && x <= math.Max(ax, bx) {
			if ax == bx {
				inside = !inside
			} else {
				xinters := (y-ay)*(bx-ax)/(by-ay) + ax
				if x <= xinters {
					inside = !inside
				}
			}
		}
		a = b
	}
	return inside
}

// SegmentDistance returns the Euclidean distance from p to the closest point
// of segment ab. A zero-length segment degenerates to the distance to a.
func SegmentDistance(p, a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	if dx == 0 && dy == 0 {
		return Dist(p, a)
	}

	px := float64(p.X - a.X)
	py := float64(p.Y - a.Y)
	t := (px*dx + py*dy) / (dx*dx + dy*dy)
	t = math.Max(0, math.Min(1, t))

	cx := float64(a.X) + t*dx
	cy := float64(a.Y) + t*dy
	ex, ey := float64(p.X)-cx, float64(p.Y)-cy
	return math.Sqrt(ex*ex + ey*ey)
}

// NearPolyline reports whether p is strictly within tol of any segment of the
// open polyline pts.
func NearPolyline(p Point, pts []Point, tol float64) bool {
	if len(pts) == 1 {
		return Dist(p, pts[0]) < tol
	}
	for i := 0; i+1 < len(pts); i++ {
		if SegmentDistance(p, pts[i], pts[i+1]) < tol {
			return true
		}
	}
	return false
}

// SignedArea returns the shoelace area of the closed polygon poly; positive
// for counter-clockwise winding in a y-up frame.
func SignedArea(poly []Point) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	var sum float64
	for i, a := range poly {
		b := poly[(i+1)%n]
		sum += float64(a.X)*float64(b.Y) - float64(b.X)*float64(a.Y)
	}
	return sum / 2
}
