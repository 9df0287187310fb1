package rotate

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/torvik/superpose/geom"
)

// crossCovariance returns the 3×3 matrix H = Pᵀ·Q,
// H[a][b] = Σ_i p[i][a]·q[i][b].
func crossCovariance(p, q geom.Coords) *mat.Dense {
	h := mat.NewDense(3, 3, nil)
	for i := range p {
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				h.Set(a, b, h.At(a, b)+p[i][a]*q[i][b])
			}
		}
	}
	return h
}

// Kabsch computes the proper rotation U minimizing the squared
// distance between p·U and q, both assumed centered.
//
// Algorithm: singular-value-decompose H = Pᵀ·Q as H = U·S·Vᵀ. When
// det(U)·det(V) < 0 the raw product would be an improper rotation
// (a reflection); the sign of U's last singular vector is flipped so
// the result is always a proper rotation with determinant +1. This
// correction is what keeps near-180° cases from collapsing into a
// mirrored superposition.
func Kabsch(p, q geom.Coords) (geom.Mat3, error) {
	if len(p) != len(q) {
		return geom.Mat3{}, ErrLengthMismatch
	}
	if len(p) == 0 {
		return geom.Mat3{}, ErrDegenerate
	}

	var svd mat.SVD
	if !svd.Factorize(crossCovariance(p, q), mat.SVDFull) {
		return geom.Mat3{}, ErrDegenerate
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	if mat.Det(&u)*mat.Det(&v) < 0 {
		for r := 0; r < 3; r++ {
			u.Set(r, 2, -u.At(r, 2))
		}
	}

	var rot mat.Dense
	rot.Mul(&u, v.T())

	var out geom.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			e := rot.At(r, c)
			if math.IsNaN(e) || math.IsInf(e, 0) {
				return geom.Mat3{}, ErrDegenerate
			}
			out[r][c] = e
		}
	}
	return out, nil
}

// KabschRotate returns p rotated onto q by the optimal Kabsch
// rotation.
func KabschRotate(p, q geom.Coords) (geom.Coords, error) {
	u, err := Kabsch(p, q)
	if err != nil {
		return nil, err
	}
	return geom.ApplyRotation(p, u), nil
}

// KabschRMSD returns the RMSD of p and q after optimally rotating p
// onto q. Both sets must be centered.
func KabschRMSD(p, q geom.Coords) (float64, error) {
	rotated, err := KabschRotate(p, q)
	if err != nil {
		return 0, err
	}
	return RMSD(rotated, q)
}
