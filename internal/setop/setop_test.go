package setop

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansharif/kurs/internal/geom"
	"github.com/irfansharif/kurs/internal/raster"
	"github.com/irfansharif/kurs/internal/shape"
)

const w, h = 120, 100

var style = shape.Style{
	Outline: color.RGBA{A: 255},
	Fill:    color.RGBA{R: 10, G: 200, B: 30, A: 255},
	Width:   1,
}

func square(t *testing.T, x0, y0, side int) *shape.Polygon {
	t.Helper()
	p, err := shape.NewPolygon("square", []geom.Point{
		{X: x0, Y: y0}, {X: x0 + side, Y: y0}, {X: x0 + side, Y: y0 + side}, {X: x0, Y: y0 + side},
	}, style)
	require.NoError(t, err)
	return p
}

// coverage paints every non-background pixel of b with c, for comparing a
// single rasterized shape against a set-op result.
func coverage(b *raster.Buffer, c color.RGBA) *raster.Buffer {
	out := raster.NewBuffer(b.Width(), b.Height(), raster.Background)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y) != raster.Background {
				out.Set(x, y, c)
			}
		}
	}
	return out
}

func TestOpNames(t *testing.T) {
	assert.Equal(t, "intersection", Intersection.String())
	assert.Equal(t, "union", Union.String())
	assert.Equal(t, "difference", Difference.String())
	assert.Equal(t, "op(9)", Op(9).String())
	assert.Equal(t, color.RGBA{R: 255, G: 165, A: 255}, Difference.ResultColor())
}

func TestIdenticalOperands(t *testing.T) {
	a, err := shape.NewCross(geom.Pt(60, 50), 60, style)
	require.NoError(t, err)
	aCopy, err := shape.NewCross(geom.Pt(60, 50), 60, style)
	require.NoError(t, err)

	alone := Render(a, style.Fill, w, h)

	inter, err := Combine(a, aCopy, Intersection, w, h)
	require.NoError(t, err)
	assert.True(t, coverage(alone, Intersection.ResultColor()).Equal(inter))

	union, err := Combine(a, aCopy, Union, w, h)
	require.NoError(t, err)
	assert.True(t, coverage(alone, Union.ResultColor()).Equal(union))

	diff, err := Combine(a, aCopy, Difference, w, h)
	require.NoError(t, err)
	assert.Zero(t, diff.Count(raster.Background))
}

func TestOverlappingSquares(t *testing.T) {
	a := square(t, 10, 10, 40) // covers x,y in [10,50]
	b := square(t, 30, 30, 40) // covers x,y in [30,70]

	inter, err := Combine(a, b, Intersection, w, h)
	require.NoError(t, err)
	assert.Equal(t, 21*21, inter.Count(raster.Background))
	assert.Equal(t, Intersection.ResultColor(), inter.At(40, 40))
	assert.Equal(t, raster.Background, inter.At(20, 20))

	union, err := Combine(a, b, Union, w, h)
	require.NoError(t, err)
	assert.Equal(t, 2*41*41-21*21, union.Count(raster.Background))
	assert.Equal(t, Union.ResultColor(), union.At(20, 20))
	assert.Equal(t, Union.ResultColor(), union.At(60, 60))

	diff, err := Combine(a, b, Difference, w, h)
	require.NoError(t, err)
	assert.Equal(t, 41*41-21*21, diff.Count(raster.Background))
	assert.Equal(t, Difference.ResultColor(), diff.At(20, 20))
	assert.Equal(t, raster.Background, diff.At(40, 40))
	assert.Equal(t, raster.Background, diff.At(60, 60))

	rdiff, err := Combine(b, a, Difference, w, h)
	require.NoError(t, err)
	assert.Equal(t, Difference.ResultColor(), rdiff.At(60, 60))
	assert.Equal(t, raster.Background, rdiff.At(20, 20))
}

func TestUnsupportedOperands(t *testing.T) {
	a := square(t, 10, 10, 40)
	line := shape.NewLine(geom.Pt(0, 0), geom.Pt(50, 50), style)
	bez, err := shape.NewBezier([]geom.Point{{X: 0, Y: 0}, {X: 20, Y: 40}, {X: 40, Y: 0}}, style)
	require.NoError(t, err)

	for _, op := range []Op{Intersection, Union, Difference} {
		_, err := Combine(a, line, op, w, h)
		assert.ErrorIs(t, err, ErrUnsupported)
		_, err = Combine(bez, a, op, w, h)
		assert.ErrorIs(t, err, ErrUnsupported)
	}
	assert.ErrorIs(t, Check(a, nil), ErrUnsupported)
	assert.NoError(t, Check(a, a))
}

func TestRenderLeavesStyleAlone(t *testing.T) {
	a := square(t, 10, 10, 20)
	before := a.Style()
	buf := Render(a, color.RGBA{R: 1, A: 255}, w, h)
	assert.Equal(t, before, a.Style())
	assert.Equal(t, color.RGBA{R: 1, A: 255}, buf.At(20, 20))
}

func TestBackgroundOutlineStillCovers(t *testing.T) {
	white := shape.Style{Outline: raster.Background, Fill: style.Fill, Width: 1}
	a, err := shape.NewPolygon("square", []geom.Point{{X: 10, Y: 10}, {X: 30, Y: 10}, {X: 30, Y: 30}, {X: 10, Y: 30}}, white)
	require.NoError(t, err)

	buf := Render(a, color.RGBA{R: 1, A: 255}, w, h)
	assert.Equal(t, color.RGBA{R: 1, A: 255}, buf.At(10, 20), "outline drawn in the scratch colour")
	assert.Equal(t, raster.Background, a.Style().Outline)

	union, err := Combine(a, a, Union, w, h)
	require.NoError(t, err)
	assert.Equal(t, 21*21, union.Count(raster.Background))
}

func TestCombineBuffersSizeMismatch(t *testing.T) {
	a := raster.NewBuffer(4, 4, raster.Background)
	b := raster.NewBuffer(4, 5, raster.Background)
	_, err := CombineBuffers(a, b, Union, Union.ResultColor())
	assert.ErrorIs(t, err, ErrSizeMismatch)
}
