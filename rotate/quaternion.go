package rotate

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/torvik/superpose/geom"
)

// Quaternion computes the same optimal proper rotation as Kabsch via
// a quaternion parameterization: the 4×4 symmetric key matrix built
// from the cross terms of p and q has, as the eigenvector of its
// largest eigenvalue, the unit quaternion of the optimal rotation
// (Horn's closed-form absolute-orientation solution).
//
// The returned matrix follows the row-vector convention: p·U ≈ q.
func Quaternion(p, q geom.Coords) (geom.Mat3, error) {
	if len(p) != len(q) {
		return geom.Mat3{}, ErrLengthMismatch
	}
	if len(p) == 0 {
		return geom.Mat3{}, ErrDegenerate
	}

	// Cross terms S[a][b] = Σ_i p[i][a]·q[i][b].
	s := crossCovariance(p, q)
	sxx, sxy, sxz := s.At(0, 0), s.At(0, 1), s.At(0, 2)
	syx, syy, syz := s.At(1, 0), s.At(1, 1), s.At(1, 2)
	szx, szy, szz := s.At(2, 0), s.At(2, 1), s.At(2, 2)

	key := mat.NewSymDense(4, []float64{
		sxx + syy + szz, syz - szy, szx - sxz, sxy - syx,
		syz - szy, sxx - syy - szz, sxy + syx, szx + sxz,
		szx - sxz, sxy + syx, -sxx + syy - szz, syz + szy,
		sxy - syx, szx + sxz, syz + szy, -sxx - syy + szz,
	})

	var eig mat.EigenSym
	if !eig.Factorize(key, true) {
		return geom.Mat3{}, ErrDegenerate
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Eigenvalues are ascending; the optimal quaternion is the last
	// column (scalar-first convention).
	q0, q1, q2, q3 := vecs.At(0, 3), vecs.At(1, 3), vecs.At(2, 3), vecs.At(3, 3)
	for _, e := range [4]float64{q0, q1, q2, q3} {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return geom.Mat3{}, ErrDegenerate
		}
	}

	// Column-vector rotation R with R·p ≈ q; transposed on return for
	// the row-vector convention shared with Kabsch.
	r := geom.Mat3{
		{q0*q0 + q1*q1 - q2*q2 - q3*q3, 2 * (q1*q2 - q0*q3), 2 * (q1*q3 + q0*q2)},
		{2 * (q1*q2 + q0*q3), q0*q0 - q1*q1 + q2*q2 - q3*q3, 2 * (q2*q3 - q0*q1)},
		{2 * (q1*q3 - q0*q2), 2 * (q2*q3 + q0*q1), q0*q0 - q1*q1 - q2*q2 + q3*q3},
	}
	return r.Transpose(), nil
}

// QuaternionRMSD returns the RMSD of p and q after optimally rotating
// p onto q with the quaternion solver. Matches KabschRMSD to floating
// tolerance on every input pair.
func QuaternionRMSD(p, q geom.Coords) (float64, error) {
	u, err := Quaternion(p, q)
	if err != nil {
		return 0, err
	}
	return RMSD(geom.ApplyRotation(p, u), q)
}
