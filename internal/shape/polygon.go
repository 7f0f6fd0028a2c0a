package shape

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/irfansharif/kurs/internal/geom"
	"github.com/irfansharif/kurs/internal/raster"
)

var shapeLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("KURS_DEBUG_SHAPE") == "1" {
		shapeLogger = log.New(os.Stdout, "[shape] ", log.Ltime|log.Lmsgprefix)
	}
}

// Polygon is a closed, filled polygon. The edge from the last vertex back to
// the first is implicit.
type Polygon struct {
	base
	name string
}

var _ Shape = (*Polygon)(nil)

// NewPolygon returns a closed polygon over pts, which must have at least
// three vertices.
func NewPolygon(name string, pts []geom.Point, style Style) (*Polygon, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("%s needs at least 3 vertices, got %d: %w", name, len(pts), ErrDegenerate)
	}
	if !IsSimple(pts) {
		// Odd-even fill still applies; it just may not be what was meant.
		log.Printf("WARNING: %s outline is not a simple polygon, fill is undefined", name)
	}
	owned := make([]geom.Point, len(pts))
	copy(owned, pts)
	return &Polygon{base: base{points: owned, style: normalize(style)}, name: name}, nil
}

// NewCross returns a plus-shaped 12-vertex polygon centred on c. size is the
// overall extent; each arm is size/2 wide.
func NewCross(c geom.Point, size float64, style Style) (*Polygon, error) {
	if size <= 0 {
		return nil, fmt.Errorf("cross size %.1f: %w", size, ErrDegenerate)
	}
	h, q := size/2, size/4
	x, y := float64(c.X), float64(c.Y)
	pts := []geom.Point{
		geom.MakePoint(x-q, y-h),
		geom.MakePoint(x+q, y-h),
		geom.MakePoint(x+q, y-q),
		geom.MakePoint(x+h, y-q),
		geom.MakePoint(x+h, y+q),
		geom.MakePoint(x+q, y+q),
		geom.MakePoint(x+q, y+h),
		geom.MakePoint(x-q, y+h),
		geom.MakePoint(x-q, y+q),
		geom.MakePoint(x-h, y+q),
		geom.MakePoint(x-h, y-q),
		geom.MakePoint(x-q, y-q),
	}
	return NewPolygon("cross", pts, style)
}

// NewFlag returns a 5-vertex flag standing on base (its bottom-left corner,
// in screen coordinates) with a triangular notch cut up into its bottom edge
// reaching the flag's centre.
func NewFlag(base geom.Point, w, h float64, style Style) (*Polygon, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("flag size %.1fx%.1f: %w", w, h, ErrDegenerate)
	}
	x, y := float64(base.X), float64(base.Y)
	pts := []geom.Point{
		geom.MakePoint(x, y),
		geom.MakePoint(x, y-h),
		geom.MakePoint(x+w, y-h),
		geom.MakePoint(x+w, y),
		geom.MakePoint(x+w/2, y-h/2),
	}
	return NewPolygon("flag", pts, style)
}

// CrossFromDrag builds a cross from two clicks: the first is the centre, the
// distance to the second is half the cross size.
func CrossFromDrag(center, edge geom.Point, style Style) (*Polygon, error) {
	return NewCross(center, 2*geom.Dist(center, edge), style)
}

// FlagFromDrag builds a flag spanning the box with corners a and b.
func FlagFromDrag(a, b geom.Point, style Style) (*Polygon, error) {
	w := float64(abs(b.X - a.X))
	h := float64(abs(b.Y - a.Y))
	return NewFlag(geom.Pt(min(a.X, b.X), max(a.Y, b.Y)), w, h, style)
}

func (p *Polygon) Kind() Kind   { return KindPolygon }
func (p *Polygon) Name() string { return p.name }

func (p *Polygon) Draw(buf *raster.Buffer) { p.DrawWith(buf, p.style) }

func (p *Polygon) DrawWith(buf *raster.Buffer, s Style) {
	buf.FillPolygon(p.points, s.Outline, s.Fill, s.Width)
	shapeLogger.Printf("drew %s with %d vertices", p.name, len(p.points))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
