// Package shape defines the editor's graphic objects: lines, closed polygons
// (the cross and the flag) and Bezier curves.
//
// Every object owns an ordered list of pixel points. Its centroid is derived
// from those points on demand, and all geometric changes go through Apply,
// so the centroid can never disagree with the geometry.
package shape

import (
	"errors"
	"image/color"

	"github.com/irfansharif/kurs/internal/geom"
	"github.com/irfansharif/kurs/internal/raster"
)

// ErrDegenerate is returned when an object would be built from too few
// points or a non-positive size.
var ErrDegenerate = errors.New("degenerate geometry")

// Kind is the closed set of object variants.
type Kind int

const (
	KindLine Kind = iota
	KindPolygon
	KindBezier
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindPolygon:
		return "polygon"
	case KindBezier:
		return "bezier"
	default:
		return "unknown"
	}
}

// SupportsSetOps reports whether objects of this kind can take part in
// pixel set operations. Only filled polygons can.
func (k Kind) SupportsSetOps() bool { return k == KindPolygon }

// Style holds an object's colours and stroke width.
type Style struct {
	Outline color.RGBA
	Fill    color.RGBA
	Width   int
}

// Shape is implemented by every graphic object. The transform method is
// unexported; callers go through Apply.
type Shape interface {
	Kind() Kind
	// Name is the user-facing variant name, e.g. "cross".
	Name() string
	// Points returns a copy of the object's rendered points.
	Points() []geom.Point
	Center() geom.Point
	Style() Style
	SetOutline(c color.RGBA)
	SetFill(c color.RGBA)
	Draw(buf *raster.Buffer)
	// DrawWith renders the object using s in place of its own style. The
	// object itself is not modified.
	DrawWith(buf *raster.Buffer, s Style)

	// defining returns the points the centroid is taken over.
	defining() []geom.Point
	transform(m geom.Matrix)
}

// Apply transforms s in place by m. This is the only way to move an object.
func Apply(s Shape, m geom.Matrix) {
	s.transform(m)
}

// ExactCenter returns the centroid of s without snapping it to the pixel
// grid.
func ExactCenter(s Shape) (x, y float64) {
	return geom.Mean(s.defining())
}

// base carries the state shared by every variant.
type base struct {
	points []geom.Point
	style  Style
}

func (b *base) Points() []geom.Point {
	out := make([]geom.Point, len(b.points))
	copy(out, b.points)
	return out
}

func (b *base) defining() []geom.Point  { return b.points }
func (b *base) Center() geom.Point      { return geom.Centroid(b.points) }
func (b *base) Style() Style            { return b.style }
func (b *base) SetOutline(c color.RGBA) { b.style.Outline = c }
func (b *base) SetFill(c color.RGBA)    { b.style.Fill = c }

func (b *base) transform(m geom.Matrix) {
	b.points = m.ApplyAll(b.points)
}

func normalize(s Style) Style {
	s.Width = max(s.Width, 1)
	return s
}
