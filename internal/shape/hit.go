package shape

import (
	"github.com/irfansharif/kurs/internal/geom"
)

const (
	// DefaultTolerance is how close, in pixels, a click must land to a
	// line-like object to select it.
	DefaultTolerance = 5.0
	// controlPointTolerance is the grab radius around a Bezier control
	// point.
	controlPointTolerance = 10.0
)

// Hit reports whether the click p selects s. Polygons are hit anywhere inside
// their outline; lines and curves within tol of their stroke. Bezier curves
// can also be grabbed by their control points.
func Hit(s Shape, p geom.Point, tol float64) bool {
	switch s.Kind() {
	case KindPolygon:
		return geom.PointInPolygon(p, s.defining())
	case KindLine:
		pts := s.defining()
		if len(pts) < 2 {
			return false
		}
		return geom.SegmentDistance(p, pts[0], pts[1]) < tol
	case KindBezier:
		for _, c := range s.defining() {
			if geom.Dist(p, c) < controlPointTolerance {
				return true
			}
		}
		return geom.NearPolyline(p, s.Points(), tol)
	default:
		return false
	}
}

// ControlPoints returns a copy of the control polygon of a curve, or nil for
// any other kind.
func ControlPoints(s Shape) []geom.Point {
	if s.Kind() != KindBezier {
		return nil
	}
	ctrl := s.defining()
	out := make([]geom.Point, len(ctrl))
	copy(out, ctrl)
	return out
}

// Skeleton returns the polyline used to highlight a selected object: the
// closed outline of a polygon, the segment of a line, or the control polygon
// of a curve.
func Skeleton(s Shape) (pts []geom.Point, closed bool) {
	switch s.Kind() {
	case KindPolygon:
		return s.Points(), true
	case KindBezier:
		return ControlPoints(s), false
	default:
		return s.Points(), false
	}
}
