package shape

import (
	"fmt"
	"math"

	"github.com/rclancey/earcut"

	"github.com/irfansharif/kurs/internal/geom"
)

// earClip triangulates a polygon using the earcut algorithm. It takes in a
// list of polygon vertices and returns a slice of triangles, each
// represented as a [3]geom.Point.
func earClip(poly []geom.Point) ([][3]geom.Point, error) {
	if len(poly) < 3 {
		return nil, fmt.Errorf("polygon has %d vertices: %w", len(poly), ErrDegenerate)
	}

	// Convert polygon points to flat coordinate array required by earcut.
	// Format: [x0, y0, x1, y1, ..., xn, yn]
	coords := make([]float64, len(poly)*2)
	for i, p := range poly {
		coords[i*2] = float64(p.X)
		coords[i*2+1] = float64(p.Y)
	}

	indices, err := earcut.Earcut(coords, nil /* holeIndices */, 2 /* dim */)
	if err != nil {
		return nil, fmt.Errorf("triangulating %d-vertex polygon: %w", len(poly), err)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("invalid triangle index count %d", len(indices))
	}

	triangles := make([][3]geom.Point, len(indices)/3)
	for t := range triangles {
		for v := 0; v < 3; v++ {
			triangles[t][v] = poly[indices[t*3+v]]
		}
	}
	return triangles, nil
}

// IsSimple reports whether poly looks like a simple (non-self-intersecting)
// polygon: its ear-clipped triangles must cover exactly the shoelace area.
// Scanline fill is only faithful for simple polygons.
func IsSimple(poly []geom.Point) bool {
	triangles, err := earClip(poly)
	if err != nil {
		return false
	}

	var covered float64
	for _, tri := range triangles {
		covered += math.Abs(geom.SignedArea(tri[:]))
	}
	want := math.Abs(geom.SignedArea(poly))
	if want == 0 {
		return false
	}
	return math.Abs(covered-want) <= 1e-6*want
}
