package transform

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansharif/kurs/internal/geom"
	"github.com/irfansharif/kurs/internal/shape"
)

var style = shape.Style{Outline: color.RGBA{A: 255}, Fill: color.RGBA{R: 255, A: 255}, Width: 1}

func testShapes(t *testing.T) []shape.Shape {
	t.Helper()
	cross, err := shape.NewCross(geom.Pt(200, 150), 60, style)
	require.NoError(t, err)
	flag, err := shape.NewFlag(geom.Pt(40, 300), 80, 60, style)
	require.NoError(t, err)
	bez, err := shape.NewBezier([]geom.Point{{X: 10, Y: 10}, {X: 60, Y: 140}, {X: 130, Y: 20}, {X: 170, Y: 90}}, style)
	require.NoError(t, err)
	line := shape.NewLine(geom.Pt(5, 7), geom.Pt(95, 43), style)
	return []shape.Shape{cross, flag, bez, line}
}

// defining returns the points that determine s: control points for curves.
func defining(s shape.Shape) []geom.Point {
	if b, ok := s.(*shape.Bezier); ok {
		return b.ControlPoints()
	}
	return s.Points()
}

func assertWithin(t *testing.T, want, got []geom.Point, tol int) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		d := want[i].Sub(got[i])
		assert.LessOrEqual(t, max(d.X, -d.X), tol, "point %d: want %v got %v", i, want[i], got[i])
		assert.LessOrEqual(t, max(d.Y, -d.Y), tol, "point %d: want %v got %v", i, want[i], got[i])
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	for _, s := range testShapes(t) {
		t.Run(s.Name(), func(t *testing.T) {
			before := defining(s)
			Translate(s, 37, -12)
			assert.NotEqual(t, before, defining(s))
			Translate(s, -37, 12)
			assertWithin(t, before, defining(s), 1)
		})
	}
}

func TestRotateAboutCentroidKeepsCentroid(t *testing.T) {
	for _, angle := range []float64{0, 15, 45, 90, 137.5, 180, 270, -60, 360} {
		for _, s := range testShapes(t) {
			t.Run(fmt.Sprintf("%s/%v", s.Name(), angle), func(t *testing.T) {
				c := s.Center()
				RotateAround(s, angle, c)
				assertWithin(t, []geom.Point{c}, []geom.Point{s.Center()}, 1)
			})
		}
	}
}

func TestRotateAroundPoint(t *testing.T) {
	l := shape.NewLine(geom.Pt(20, 10), geom.Pt(30, 10), style)
	RotateAround(l, 90, geom.Pt(10, 10))
	assert.Equal(t, []geom.Point{{X: 10, Y: 20}, {X: 10, Y: 30}}, l.Points())
	assert.Equal(t, geom.Pt(10, 25), l.Center())
}

func TestMirrorAroundCenterIdempotent(t *testing.T) {
	for _, s := range testShapes(t) {
		t.Run(s.Name(), func(t *testing.T) {
			before := defining(s)
			c := s.Center()
			MirrorAroundCenter(s)
			assertWithin(t, []geom.Point{c}, []geom.Point{s.Center()}, 1)
			MirrorAroundCenter(s)
			assertWithin(t, before, defining(s), 1)
		})
	}
}

func TestMirrorAroundCenterLine(t *testing.T) {
	l := shape.NewLine(geom.Pt(0, 0), geom.Pt(10, 4), style)
	MirrorAroundCenter(l)
	assert.Equal(t, []geom.Point{{X: 10, Y: 4}, {X: 0, Y: 0}}, l.Points())
}

func TestMirrorAcrossVertical(t *testing.T) {
	l := shape.NewLine(geom.Pt(10, 5), geom.Pt(30, 7), style)
	MirrorAcrossVertical(l, 50)
	assert.Equal(t, []geom.Point{{X: 90, Y: 5}, {X: 70, Y: 7}}, l.Points())
	assert.Equal(t, geom.Pt(80, 6), l.Center())

	MirrorAcrossVertical(l, 50)
	assert.Equal(t, []geom.Point{{X: 10, Y: 5}, {X: 30, Y: 7}}, l.Points())
}

func TestMirrorAcrossHorizontal(t *testing.T) {
	l := shape.NewLine(geom.Pt(10, 5), geom.Pt(30, 7), style)
	MirrorAcrossHorizontal(l, 10)
	assert.Equal(t, []geom.Point{{X: 10, Y: 15}, {X: 30, Y: 13}}, l.Points())
}

func TestScale(t *testing.T) {
	l := shape.NewLine(geom.Pt(10, 10), geom.Pt(20, 10), style)
	Scale(l, 2, 1, geom.Pt(10, 10))
	assert.Equal(t, []geom.Point{{X: 10, Y: 10}, {X: 30, Y: 10}}, l.Points())
}

func TestMatrixBuilders(t *testing.T) {
	p := geom.Pt(7, 3)
	assert.Equal(t, p, RotateAroundMatrix(123, p).Apply(p), "pivot is a fixed point")
	assert.Equal(t, geom.Pt(13, 17), PointMirrorMatrix(geom.Pt(10, 10)).Apply(p))
	assert.True(t, VerticalMirrorMatrix(4).Mul(VerticalMirrorMatrix(4)).IsIdentity())
	assert.True(t, HorizontalMirrorMatrix(4).Mul(HorizontalMirrorMatrix(4)).IsIdentity())
	assert.True(t, AroundPivot(geom.Identity(), p).IsIdentity())
}
