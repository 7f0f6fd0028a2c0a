// Package setop computes pixel-level boolean operations between filled
// shapes. Each operand is rasterized into its own scratch buffer, and the
// buffers are combined pixel by pixel into a fresh result buffer. Nothing
// here touches the caller's display buffer or the operands' styles.
package setop

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/irfansharif/kurs/internal/raster"
	"github.com/irfansharif/kurs/internal/shape"
)

var (
	// ErrUnsupported is returned when an operand is not a filled polygon.
	ErrUnsupported = errors.New("set operations need two filled polygons (cross or flag)")
	// ErrSizeMismatch is returned when combining buffers of different sizes.
	ErrSizeMismatch = errors.New("buffer sizes differ")
)

// Op is a pixel set operator.
type Op int

const (
	Intersection Op = iota
	Union
	Difference // A − B
)

func (op Op) String() string {
	switch op {
	case Intersection:
		return "intersection"
	case Union:
		return "union"
	case Difference:
		return "difference"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// ResultColor is the colour covered result pixels are painted with.
func (op Op) ResultColor() color.RGBA {
	switch op {
	case Intersection:
		return color.RGBA{G: 255, A: 255} // #00FF00
	case Union:
		return color.RGBA{R: 128, B: 128, A: 255} // #800080
	default:
		return color.RGBA{R: 255, G: 165, A: 255} // #FFA500
	}
}

func (op Op) keep(inA, inB bool) bool {
	switch op {
	case Intersection:
		return inA && inB
	case Union:
		return inA || inB
	case Difference:
		return inA && !inB
	default:
		return false
	}
}

// Scratch fill colours the operands are rendered with; only "not
// background" matters, these just keep the two apart when debugging.
var (
	scratchA = color.RGBA{R: 255, A: 255}
	scratchB = color.RGBA{B: 255, A: 255}
)

// Check returns ErrUnsupported unless both shapes can take part in set
// operations.
func Check(a, b shape.Shape) error {
	for _, s := range []shape.Shape{a, b} {
		if s == nil {
			return fmt.Errorf("missing operand: %w", ErrUnsupported)
		}
		if !s.Kind().SupportsSetOps() {
			return fmt.Errorf("%s: %w", s.Name(), ErrUnsupported)
		}
	}
	return nil
}

// Render draws s alone onto a fresh background-filled buffer, outline and
// interior both in fill, so an outline colour equal to the background cannot
// drop boundary pixels. The shape's own colours are left alone.
func Render(s shape.Shape, fill color.RGBA, width, height int) *raster.Buffer {
	buf := raster.NewBuffer(width, height, raster.Background)
	st := s.Style()
	st.Outline = fill
	st.Fill = fill
	s.DrawWith(buf, st)
	return buf
}

// Combine rasterizes a and b into isolated width×height buffers and returns
// a new buffer holding op applied to their coverage. Unsupported operands
// are rejected before anything is drawn.
func Combine(a, b shape.Shape, op Op, width, height int) (*raster.Buffer, error) {
	if err := Check(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	bufA := Render(a, scratchA, width, height)
	bufB := Render(b, scratchB, width, height)
	return CombineBuffers(bufA, bufB, op, op.ResultColor())
}

// CombineBuffers applies op to the coverage of two equally sized buffers. A
// pixel is covered when it differs from raster.Background. Kept pixels are
// painted c; everything else is background.
func CombineBuffers(a, b *raster.Buffer, op Op, c color.RGBA) (*raster.Buffer, error) {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return nil, fmt.Errorf("%dx%d vs %dx%d: %w", a.Width(), a.Height(), b.Width(), b.Height(), ErrSizeMismatch)
	}
	out := raster.NewBuffer(a.Width(), a.Height(), raster.Background)
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			inA := a.At(x, y) != raster.Background
			inB := b.At(x, y) != raster.Background
			if op.keep(inA, inB) {
				out.Set(x, y, c)
			}
		}
	}
	return out, nil
}
