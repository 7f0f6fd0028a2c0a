// Package transform implements the editor's composite transforms. Each one
// is a product of the primitive matrices in geom, built in row-vector order
// (translate to the pivot, transform, translate back), and applied to an
// object through shape.Apply so its centroid follows automatically.
package transform

import (
	"math"

	"github.com/irfansharif/kurs/internal/geom"
	"github.com/irfansharif/kurs/internal/shape"
)

// AroundPivot conjugates m by a translation so that it acts about pivot
// instead of the origin: T(-pivot) · m · T(pivot).
func AroundPivot(m geom.Matrix, pivot geom.Point) geom.Matrix {
	return around(m, float64(pivot.X), float64(pivot.Y))
}

func around(m geom.Matrix, px, py float64) geom.Matrix {
	return geom.Translation(-px, -py).Mul(m).Mul(geom.Translation(px, py))
}

// RotateAroundMatrix rotates by degrees about pivot.
func RotateAroundMatrix(degrees float64, pivot geom.Point) geom.Matrix {
	return AroundPivot(geom.Rotation(degrees), pivot)
}

// PointMirrorMatrix reflects through pivot, i.e. scales by -1 on both axes
// about it.
func PointMirrorMatrix(pivot geom.Point) geom.Matrix {
	return AroundPivot(geom.Scaling(-1, -1), pivot)
}

// VerticalMirrorMatrix reflects across the vertical line x = lineX.
func VerticalMirrorMatrix(lineX int) geom.Matrix {
	return AroundPivot(geom.MirrorYAxis(), geom.Pt(lineX, 0))
}

// HorizontalMirrorMatrix reflects across the horizontal line y = lineY.
func HorizontalMirrorMatrix(lineY int) geom.Matrix {
	return AroundPivot(geom.MirrorXAxis(), geom.Pt(0, lineY))
}

// Translate moves s by (dx, dy).
func Translate(s shape.Shape, dx, dy int) {
	shape.Apply(s, geom.Translation(float64(dx), float64(dy)))
}

// RotateAround rotates s by degrees about pivot.
func RotateAround(s shape.Shape, degrees float64, pivot geom.Point) {
	shape.Apply(s, RotateAroundMatrix(degrees, pivot))
}

// MirrorAroundCenter reflects s through its own centroid. Applying it twice
// restores the original geometry.
//
// The pivot is the centroid snapped to the half-pixel grid rather than the
// whole-pixel one: reflecting through a half-pixel maps integer points to
// integer points exactly, and the reflected set has the same snapped
// centroid, so the second application undoes the first.
func MirrorAroundCenter(s shape.Shape) {
	mx, my := shape.ExactCenter(s)
	px, py := math.Round(2*mx)/2, math.Round(2*my)/2
	shape.Apply(s, around(geom.Scaling(-1, -1), px, py))
}

// MirrorAcrossVertical reflects s across the line x = lineX.
func MirrorAcrossVertical(s shape.Shape, lineX int) {
	shape.Apply(s, VerticalMirrorMatrix(lineX))
}

// MirrorAcrossHorizontal reflects s across the line y = lineY.
func MirrorAcrossHorizontal(s shape.Shape, lineY int) {
	shape.Apply(s, HorizontalMirrorMatrix(lineY))
}

// Scale scales s by (sx, sy) about pivot.
func Scale(s shape.Shape, sx, sy float64, pivot geom.Point) {
	shape.Apply(s, AroundPivot(geom.Scaling(sx, sy), pivot))
}
