package raster

import (
	"image/color"

	"github.com/irfansharif/kurs/internal/geom"
)

// LinePoints returns the pixels Bresenham's algorithm visits between a and b,
// endpoints included, in order from a to b. Only integer arithmetic is used.
func LinePoints(a, b geom.Point) []geom.Point {
	var pts []geom.Point
	bresenham(a, b, func(x, y int) { pts = append(pts, geom.Pt(x, y)) })
	return pts
}

func bresenham(a, b geom.Point, plot func(x, y int)) {
	x, y := a.X, a.Y
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	err := dx - dy
	for {
		plot(x, y)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// PutPixel paints a width×width square covering [-w/2, w-w/2) around (x, y).
// Widths below 1 paint a single pixel.
func (b *Buffer) PutPixel(x, y int, c color.RGBA, width int) {
	if width <= 1 {
		b.Set(x, y, c)
		return
	}
	lo := -width / 2
	hi := width - width/2
	for oy := lo; oy < hi; oy++ {
		for ox := lo; ox < hi; ox++ {
			b.Set(x+ox, y+oy, c)
		}
	}
}

// DrawLine strokes segment ab with a square brush of the given width.
func (b *Buffer) DrawLine(p, q geom.Point, c color.RGBA, width int) {
	bresenham(p, q, func(x, y int) { b.PutPixel(x, y, c, width) })
}

// DrawPolyline strokes each consecutive pair of pts. A single point is
// plotted on its own.
func (b *Buffer) DrawPolyline(pts []geom.Point, c color.RGBA, width int) {
	if len(pts) == 1 {
		b.PutPixel(pts[0].X, pts[0].Y, c, width)
		return
	}
	for i := 0; i+1 < len(pts); i++ {
		b.DrawLine(pts[i], pts[i+1], c, width)
	}
}

// DrawClosed strokes the closed outline of poly, including the edge from the
// last vertex back to the first.
func (b *Buffer) DrawClosed(poly []geom.Point, c color.RGBA, width int) {
	n := len(poly)
	for i := 0; i < n; i++ {
		b.DrawLine(poly[i], poly[(i+1)%n], c, width)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
