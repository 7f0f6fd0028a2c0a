package app

import (
	"github.com/irfansharif/kurs/internal/geom"
)

// View maps window cursor coordinates onto the fixed-size canvas. The canvas
// is stretched to fill the window, so a resize changes the scale but never
// the canvas resolution.
//
// Cursor positions are reported in window (screen) coordinates, which differ
// from framebuffer pixels by a platform-dependent factor, so the mapping goes
// through the window size and never through the framebuffer size.
type View struct {
	CanvasWidth, CanvasHeight int
	Width, Height             int // window size in screen coordinates
}

// NewView creates a view with the window the same size as the canvas.
func NewView(canvasWidth, canvasHeight int) *View {
	return &View{
		CanvasWidth:  canvasWidth,
		CanvasHeight: canvasHeight,
		Width:        canvasWidth,
		Height:       canvasHeight,
	}
}

// SetViewport updates the window dimensions, as reported by
// glfw.Window.GetSize.
func (vs *View) SetViewport(width, height int) {
	vs.Width = width
	vs.Height = height
}

// ToCanvas converts a cursor position, in window coordinates, to a canvas
// pixel.
func (vs *View) ToCanvas(x, y float64) geom.Point {
	if vs.Width <= 0 || vs.Height <= 0 {
		return geom.Point{}
	}
	fx := x * float64(vs.CanvasWidth) / float64(vs.Width)
	fy := y * float64(vs.CanvasHeight) / float64(vs.Height)
	return geom.MakePoint(fx, fy)
}
