package shape

import (
	"fmt"

	"github.com/irfansharif/kurs/internal/geom"
	"github.com/irfansharif/kurs/internal/raster"
)

const (
	MinControlPoints = 2
	MaxControlPoints = 20
	DefaultSegments  = 100
)

// Bezier is a curve of arbitrary degree. Its rendered points are a sampled
// approximation that is re-derived whenever the control points change.
type Bezier struct {
	base
	control  []geom.Point
	segments int
}

var _ Shape = (*Bezier)(nil)

// NewBezier builds a curve from 2..20 control points sampled at
// DefaultSegments.
func NewBezier(control []geom.Point, style Style) (*Bezier, error) {
	return NewBezierSegments(control, DefaultSegments, style)
}

// NewBezierSegments is NewBezier with an explicit sample count.
func NewBezierSegments(control []geom.Point, segments int, style Style) (*Bezier, error) {
	if len(control) < MinControlPoints {
		return nil, fmt.Errorf("bezier needs at least %d control points, got %d: %w",
			MinControlPoints, len(control), ErrDegenerate)
	}
	if len(control) > MaxControlPoints {
		return nil, fmt.Errorf("bezier takes at most %d control points, got %d: %w",
			MaxControlPoints, len(control), ErrDegenerate)
	}
	if segments < 1 {
		return nil, fmt.Errorf("bezier segment count %d: %w", segments, ErrDegenerate)
	}

	b := &Bezier{
		base:     base{style: normalize(style)},
		control:  make([]geom.Point, len(control)),
		segments: segments,
	}
	copy(b.control, control)
	b.resample()
	return b, nil
}

func (b *Bezier) Kind() Kind   { return KindBezier }
func (b *Bezier) Name() string { return "bezier" }

// ControlPoints returns a copy of the control polygon.
func (b *Bezier) ControlPoints() []geom.Point { return ControlPoints(b) }

// Center is the mean of the control points, not of the samples.
func (b *Bezier) Center() geom.Point { return geom.Centroid(b.control) }

func (b *Bezier) defining() []geom.Point { return b.control }

func (b *Bezier) transform(m geom.Matrix) {
	b.control = m.ApplyAll(b.control)
	b.resample()
}

func (b *Bezier) resample() {
	b.points = Sample(b.control, b.segments)
}

func (b *Bezier) Draw(buf *raster.Buffer) { b.DrawWith(buf, b.style) }

func (b *Bezier) DrawWith(buf *raster.Buffer, s Style) {
	buf.DrawPolyline(b.points, s.Outline, s.Width)
}

// Sample evaluates the curve at t = i/segments for i in [0, segments].
func Sample(control []geom.Point, segments int) []geom.Point {
	if len(control) == 0 || segments < 1 {
		return nil
	}
	pts := make([]geom.Point, segments+1)
	for i := range pts {
		pts[i] = DeCasteljau(control, float64(i)/float64(segments))
	}
	return pts
}

// DeCasteljau evaluates the Bezier curve with the given control points at t
// by repeated linear interpolation. Intermediate points keep full precision;
// only the result is snapped to the pixel grid.
func DeCasteljau(control []geom.Point, t float64) geom.Point {
	if len(control) == 0 {
		return geom.Point{}
	}
	xs := make([]float64, len(control))
	ys := make([]float64, len(control))
	for i, p := range control {
		xs[i], ys[i] = float64(p.X), float64(p.Y)
	}
	for n := len(control) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			xs[i] = (1-t)*xs[i] + t*xs[i+1]
			ys[i] = (1-t)*ys[i] + t*ys[i+1]
		}
	}
	return geom.MakePoint(xs[0], ys[0])
}
