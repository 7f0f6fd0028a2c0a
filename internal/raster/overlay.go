package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/irfansharif/kurs/internal/geom"
)

const markerSize = 5 // radius of the pivot marker circle, in pixels

// DrawMarker draws a circle with a cross through it, centred on p. The
// editor uses it for transform pivots and the selected object's centroid.
func (b *Buffer) DrawMarker(p geom.Point, c color.RGBA) {
	const steps = 32
	prev := geom.Pt(p.X+markerSize, p.Y)
	for i := 1; i <= steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		next := geom.MakePoint(float64(p.X)+markerSize*math.Cos(a), float64(p.Y)+markerSize*math.Sin(a))
		b.DrawLine(prev, next, c, 2)
		prev = next
	}
	b.DrawLine(geom.Pt(p.X-2*markerSize, p.Y), geom.Pt(p.X+2*markerSize, p.Y), c, 2)
	b.DrawLine(geom.Pt(p.X, p.Y-2*markerSize), geom.Pt(p.X, p.Y+2*markerSize), c, 2)
}

// DrawVerticalGuide draws a full-height line at column x.
func (b *Buffer) DrawVerticalGuide(x int, c color.RGBA) {
	b.DrawLine(geom.Pt(x, 0), geom.Pt(x, b.Height()-1), c, 1)
}

// DrawText renders s with its baseline starting at (x, y) using the 7x13
// bitmap face. Text falling outside the buffer is clipped.
func (b *Buffer) DrawText(x, y int, s string, c color.RGBA) {
	c.A = 255
	d := &font.Drawer{
		Dst:  b.img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// TextWidth returns the advance of s in pixels in the overlay face.
func TextWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Round()
}
