// Package raster is the editor's software rasterizer.
//
// It owns the pixel buffer type and the primitives that write into it:
// 1. Bresenham lines stroked with a square brush.
// 2. Scanline polygon fill with the outline stroked on top.
// 3. Overlay marks (pivot markers, guides, status text).
//
// Buffers are plain memory. Whoever shows them on screen is expected to
// batch draws and present once per change.
package raster

import (
	"image"
	"image/color"
	"io"
	"log"
	"os"

	"golang.org/x/image/draw"
)

var rasterLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("KURS_DEBUG_RASTER") == "1" {
		rasterLogger = log.New(os.Stdout, "[raster] ", log.Ltime|log.Lmsgprefix)
	}
}

// Background is the colour of an empty buffer. Set operations treat any
// other colour as "covered".
var Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Buffer is a width×height grid of opaque RGB pixels.
type Buffer struct {
	img *image.RGBA
}

// NewBuffer allocates a buffer filled with bg. Non-positive dimensions yield
// an empty buffer that ignores all writes.
func NewBuffer(width, height int, bg color.RGBA) *Buffer {
	width, height = max(width, 0), max(height, 0)
	b := &Buffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	b.Clear(bg)
	return b
}

func (b *Buffer) Width() int  { return b.img.Rect.Dx() }
func (b *Buffer) Height() int { return b.img.Rect.Dy() }

// Image exposes the backing image for presentation. Callers must not retain
// it across further draws if they need a stable snapshot; use Clone.
func (b *Buffer) Image() *image.RGBA { return b.img }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.img.Rect.Dx() && y < b.img.Rect.Dy()
}

// At returns the pixel at (x, y), or Background outside the buffer.
func (b *Buffer) At(x, y int) color.RGBA {
	if !b.inBounds(x, y) {
		return Background
	}
	return b.img.RGBAAt(x, y)
}

// Set writes a single pixel; writes outside the buffer are dropped.
func (b *Buffer) Set(x, y int, c color.RGBA) {
	if !b.inBounds(x, y) {
		return
	}
	c.A = 255
	b.img.SetRGBA(x, y, c)
}

// Clear fills the entire buffer with c.
func (b *Buffer) Clear(c color.RGBA) {
	c.A = 255
	pix := b.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	img := image.NewRGBA(b.img.Rect)
	copy(img.Pix, b.img.Pix)
	return &Buffer{img: img}
}

// CopyFrom replaces b's pixels with src's. Both must have the same size;
// mismatched buffers are left untouched and false is returned.
func (b *Buffer) CopyFrom(src *Buffer) bool {
	if src.img.Rect != b.img.Rect {
		rasterLogger.Printf("copy size mismatch: %v vs %v", src.img.Rect, b.img.Rect)
		return false
	}
	copy(b.img.Pix, src.img.Pix)
	return true
}

// Equal reports whether both buffers have the same size and pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.img.Rect != o.img.Rect {
		return false
	}
	for i := range b.img.Pix {
		if b.img.Pix[i] != o.img.Pix[i] {
			return false
		}
	}
	return true
}

// Count returns the number of pixels that are not bg.
func (b *Buffer) Count(bg color.RGBA) int {
	n := 0
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.img.RGBAAt(x, y) != bg {
				n++
			}
		}
	}
	return n
}

// ScaleInto draws the buffer stretched over dst with nearest-neighbour
// sampling, for framebuffers whose pixel density differs from the canvas.
func (b *Buffer) ScaleInto(dst *image.RGBA) {
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), b.img, b.img.Bounds(), draw.Src, nil)
}
