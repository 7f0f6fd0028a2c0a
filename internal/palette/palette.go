// Package palette provides the editor's colours: hex parsing and formatting,
// HSV-generated swatch rows for the colour picker, and the fixed highlight
// colours the editor draws its overlays with.
package palette

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Overlay colours.
var (
	Black       = color.RGBA{A: 255}
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Selection   = color.RGBA{R: 255, A: 255}                 // selected object outline
	ControlHint = color.RGBA{B: 255, A: 255}                 // Bezier control points
	Preview     = color.RGBA{R: 128, G: 128, B: 128, A: 255} // in-progress geometry
	Pivot       = color.RGBA{R: 255, G: 140, A: 255}         // transform pivot marker
	Centroid    = color.RGBA{G: 160, A: 255}                 // selected object's centroid
	Guide       = color.RGBA{R: 200, B: 200, A: 255}         // mirror line
	Warning     = color.RGBA{R: 200, G: 30, B: 30, A: 255}
)

// SetOpPick returns the highlight colour for the i-th object picked as a set
// operation operand.
func SetOpPick(i int) color.RGBA {
	if i == 0 {
		return color.RGBA{R: 255, G: 165, A: 255}
	}
	return color.RGBA{R: 128, B: 128, A: 255}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseHex parses "#rrggbb" (or "#rgb") into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parsing colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Hex formats c as "#rrggbb", dropping alpha.
func Hex(c color.RGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// Swatches returns n colours with hues spread evenly around the wheel, the
// saturation and brightness of each jittered deterministically from seed.
func Swatches(n int, seed int64) []color.RGBA {
	r := rand.New(rand.NewSource(seed))
	out := make([]color.RGBA, 0, n)
	for i := 0; i < n; i++ {
		hue := 360 * float64(i) / float64(n)
		sat := clamp(0.55+(r.Float64()-0.5)*0.3, 0, 1)
		val := clamp(0.85+(r.Float64()-0.5)*0.2, 0, 1)

		red, green, blue := colorful.Hsv(hue, sat, val).RGB255()
		out = append(out, color.RGBA{R: red, G: green, B: blue, A: 255})
	}
	return out
}

// Cycler hands out colours from a fixed row in turn. It stands in for a
// modal colour chooser where none is available.
type Cycler struct {
	colors []color.RGBA
	next   int
}

// NewCycler returns a cycler over black followed by n generated swatches.
func NewCycler(n int, seed int64) *Cycler {
	return &Cycler{colors: append([]color.RGBA{Black}, Swatches(n, seed)...)}
}

// Next returns the next colour, wrapping around.
func (c *Cycler) Next() color.RGBA {
	col := c.colors[c.next]
	c.next = (c.next + 1) % len(c.colors)
	return col
}

// Len returns the number of colours in the cycle.
func (c *Cycler) Len() int { return len(c.colors) }
