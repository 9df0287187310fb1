// Package geom provides the small 3D primitives every solver in this
// module is built on: fixed-size vectors, coordinate sets, centroid and
// centering helpers, and the axis permutation/reflection operations used
// by the mirror search.
//
// All operations return fresh slices unless the name ends in InPlace;
// callers can rely on inputs never being mutated.
package geom

import (
	"errors"
	"math"
)

// ErrEmpty is returned when an operation requires at least one point.
var ErrEmpty = errors.New("geom: empty coordinate set")

// Vec3 is a 3D point or displacement.
type Vec3 [3]float64

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Scale returns v scaled by f.
func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v[0] * f, v[1] * f, v[2] * f}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// SquaredDist returns the squared Euclidean distance between a and b.
func SquaredDist(a, b Vec3) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return dx*dx + dy*dy + dz*dz
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec3) float64 {
	return math.Sqrt(SquaredDist(a, b))
}

// Coords is an ordered set of 3D points.
type Coords []Vec3

// Clone returns a deep copy of c.
func Clone(c Coords) Coords {
	out := make(Coords, len(c))
	copy(out, c)
	return out
}

// Centroid returns the arithmetic mean of all points in c.
// Returns ErrEmpty when c has no points.
func Centroid(c Coords) (Vec3, error) {
	if len(c) == 0 {
		return Vec3{}, ErrEmpty
	}
	var sum Vec3
	for _, p := range c {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(c))), nil
}

// Center returns a centered copy of c together with the removed
// centroid, so callers can restore the original frame later.
func Center(c Coords) (Coords, Vec3, error) {
	cent, err := Centroid(c)
	if err != nil {
		return nil, Vec3{}, err
	}
	out := make(Coords, len(c))
	for i, p := range c {
		out[i] = p.Sub(cent)
	}
	return out, cent, nil
}

// CenterInPlace subtracts the centroid from c itself and returns the
// removed centroid. Use Center when the original must survive.
func CenterInPlace(c Coords) (Vec3, error) {
	cent, err := Centroid(c)
	if err != nil {
		return Vec3{}, err
	}
	for i, p := range c {
		c[i] = p.Sub(cent)
	}
	return cent, nil
}

// Translate returns a copy of c with t added to every point.
func Translate(c Coords, t Vec3) Coords {
	out := make(Coords, len(c))
	for i, p := range c {
		out[i] = p.Add(t)
	}
	return out
}

// Permute returns c reordered so that out[i] = c[perm[i]].
// The permutation must have the same length as c; indices are trusted
// (the reorder solvers only ever produce valid permutations).
func Permute(c Coords, perm []int) Coords {
	out := make(Coords, len(perm))
	for i, j := range perm {
		out[i] = c[j]
	}
	return out
}

// PermuteInts applies the same reordering to an integer sequence,
// typically atom-type labels.
func PermuteInts(v []int, perm []int) []int {
	out := make([]int, len(perm))
	for i, j := range perm {
		out[i] = v[j]
	}
	return out
}

// SwapAxes returns a copy of c with coordinate columns permuted:
// out[i][k] = c[i][swap[k]].
func SwapAxes(c Coords, swap [3]int) Coords {
	out := make(Coords, len(c))
	for i, p := range c {
		out[i] = Vec3{p[swap[0]], p[swap[1]], p[swap[2]]}
	}
	return out
}

// ReflectAxes returns a copy of c with each coordinate column scaled by
// the corresponding ±1 sign.
func ReflectAxes(c Coords, signs [3]float64) Coords {
	out := make(Coords, len(c))
	for i, p := range c {
		out[i] = Vec3{p[0] * signs[0], p[1] * signs[1], p[2] * signs[2]}
	}
	return out
}

// Mat3 is a 3×3 matrix in row-major order, used for rotations and
// principal-axis frames.
type Mat3 [3][3]float64

// Identity returns the 3×3 identity matrix.
func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Transpose returns mᵀ.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Det returns the determinant of m.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// ApplyRotation returns c·m under the row-vector convention:
// out[i][k] = Σ_j c[i][j]·m[j][k].
func ApplyRotation(c Coords, m Mat3) Coords {
	out := make(Coords, len(c))
	for i, p := range c {
		out[i] = Vec3{
			p[0]*m[0][0] + p[1]*m[1][0] + p[2]*m[2][0],
			p[0]*m[0][1] + p[1]*m[1][1] + p[2]*m[2][1],
			p[0]*m[0][2] + p[1]*m[1][2] + p[2]*m[2][2],
		}
	}
	return out
}
