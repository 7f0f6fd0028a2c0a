package raster

import (
	"image/color"
	"math"
	"sort"

	"github.com/irfansharif/kurs/internal/geom"
)

// Span is a run of filled pixels on row Y, inclusive on both ends.
type Span struct {
	Y  int
	X0 int
	X1 int
}

// edge is one non-horizontal polygon edge, oriented so that ymin < ymax.
type edge struct {
	ymin, ymax int
	x          float64 // x at ymin
	invSlope   float64 // dx/dy
}

func buildEdgeTable(poly []geom.Point) []edge {
	n := len(poly)
	edges := make([]edge, 0, n)
	for i := 0; i < n; i++ {
		p, q := poly[i], poly[(i+1)%n]
		if p.Y == q.Y {
			continue // horizontal edges never cross a scanline
		}
		if p.Y > q.Y {
			p, q = q, p
		}
		edges = append(edges, edge{
			ymin:     p.Y,
			ymax:     q.Y,
			x:        float64(p.X),
			invSlope: float64(q.X-p.X) / float64(q.Y-p.Y),
		})
	}
	return edges
}

// ScanlineSpans computes the fill spans of the closed polygon poly. Each edge
// covers the half-open row range [ymin, ymax), so a vertex shared by two
// edges is counted once. Intersections on a row are sorted and paired
// 0-1, 2-3, ...; an unpaired trailing intersection is dropped.
//
// Results are only meaningful for simple polygons; self-intersecting input
// is filled by the odd-even rule.
func ScanlineSpans(poly []geom.Point) []Span {
	if len(poly) < 3 {
		return nil
	}
	lo, hi, _ := geom.Bounds(poly)
	edges := buildEdgeTable(poly)

	var spans []Span
	xs := make([]float64, 0, len(edges))
	for y := lo.Y; y <= hi.Y; y++ {
		xs = xs[:0]
		for _, e := range edges {
			if e.ymin <= y && y < e.ymax {
				xs = append(xs, e.x+e.invSlope*float64(y-e.ymin))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			spans = append(spans, Span{
				Y:  y,
				X0: int(math.Round(xs[i])),
				X1: int(math.Round(xs[i+1])),
			})
		}
	}
	return spans
}

// FillPolygon fills poly with fill using the scanline algorithm, then strokes
// its outline on top in outline with the given brush width.
func (b *Buffer) FillPolygon(poly []geom.Point, outline, fill color.RGBA, width int) {
	if len(poly) == 0 {
		return
	}
	spans := ScanlineSpans(poly)
	for _, s := range spans {
		for x := s.X0; x <= s.X1; x++ {
			b.Set(x, s.Y, fill)
		}
	}
	b.DrawClosed(poly, outline, width)
	rasterLogger.Printf("filled %d-vertex polygon: %d spans", len(poly), len(spans))
}
