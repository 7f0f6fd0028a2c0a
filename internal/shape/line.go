package shape

import (
	"fmt"

	"github.com/irfansharif/kurs/internal/geom"
	"github.com/irfansharif/kurs/internal/raster"
)

// Line is a straight segment between two endpoints.
type Line struct {
	base
}

var _ Shape = (*Line)(nil)

// NewLine returns the segment ab. Coincident endpoints are allowed; the
// result rasterizes as a single brush stamp.
func NewLine(a, b geom.Point, style Style) *Line {
	return &Line{base{points: []geom.Point{a, b}, style: normalize(style)}}
}

// LineFromPoints builds a line from exactly two clicked points.
func LineFromPoints(pts []geom.Point, style Style) (*Line, error) {
	if len(pts) != 2 {
		return nil, fmt.Errorf("line needs 2 points, got %d: %w", len(pts), ErrDegenerate)
	}
	return NewLine(pts[0], pts[1], style), nil
}

func (l *Line) Kind() Kind   { return KindLine }
func (l *Line) Name() string { return "line" }

// Endpoints returns the two endpoints of the segment.
func (l *Line) Endpoints() (geom.Point, geom.Point) {
	return l.points[0], l.points[1]
}

func (l *Line) Draw(buf *raster.Buffer) { l.DrawWith(buf, l.style) }

func (l *Line) DrawWith(buf *raster.Buffer, s Style) {
	buf.DrawLine(l.points[0], l.points[1], s.Outline, s.Width)
}
