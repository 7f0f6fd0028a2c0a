package geom

import "math"

// Matrix is a 3x3 homogeneous transform in row-vector form:
// [ a b 0 ]
// [ c d 0 ]
// [ e f 1 ]
// where (x', y', 1) = (x, y, 1) · M. Translation lives in the bottom row.
type Matrix [3][3]float64

func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

func Translation(dx, dy float64) Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{dx, dy, 1},
	}
}

// Rotation returns a rotation by the given angle in degrees.
func Rotation(degrees float64) Matrix {
	rad := degrees * math.Pi / 180.0
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Matrix{
		{cos, sin, 0},
		{-sin, cos, 0},
		{0, 0, 1},
	}
}

func Scaling(sx, sy float64) Matrix {
	return Matrix{
		{sx, 0, 0},
		{0, sy, 0},
		{0, 0, 1},
	}
}

// MirrorXAxis reflects across the x axis (negates y).
func MirrorXAxis() Matrix { return Scaling(1, -1) }

// MirrorYAxis reflects across the y axis (negates x).
func MirrorYAxis() Matrix { return Scaling(-1, 1) }

// Mul returns m · n. For row vectors this applies m first, then n, so
// T1.Mul(R).Mul(T2) reads left to right in application order.
func (m Matrix) Mul(n Matrix) Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return out
}

// MulVec returns the row vector v · m.
func (m Matrix) MulVec(v Vec3) Vec3 {
	return Vec3{
		v[0]*m[0][0] + v[1]*m[1][0] + v[2]*m[2][0],
		v[0]*m[0][1] + v[1]*m[1][1] + v[2]*m[2][1],
		v[0]*m[0][2] + v[1]*m[1][2] + v[2]*m[2][2],
	}
}

// Apply transforms p and snaps the result back onto the pixel grid.
func (m Matrix) Apply(p Point) Point {
	return FromHomogeneous(m.MulVec(p.Homogeneous()))
}

// ApplyAll transforms every point in pts, returning a new slice.
func (m Matrix) ApplyAll(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = m.Apply(p)
	}
	return out
}

// IsIdentity checks if this is the identity matrix (within epsilon).
func (m Matrix) IsIdentity() bool {
	const eps = 1e-10
	id := Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(m[i][j]-id[i][j]) > eps {
				return false
			}
		}
	}
	return true
}
