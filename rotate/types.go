// Package rotate computes the RMSD of two centered, equal-length,
// equal-order coordinate sets under an optimal proper rotation.
//
// Two equivalent optimal-rotation solvers are provided — Kabsch
// (SVD-based) and quaternion (eigen-decomposition based) — plus a
// no-rotation baseline. Kabsch and quaternion solve the same
// optimization through different parameterizations and must agree to
// floating tolerance; the test suite enforces this.
package rotate

import (
	"errors"
	"fmt"

	"github.com/torvik/superpose/geom"
)

var (
	// ErrLengthMismatch indicates the two coordinate sets differ in size.
	ErrLengthMismatch = errors.New("rotate: coordinate sets differ in length")

	// ErrDegenerate indicates the SVD or eigen-decomposition produced a
	// non-finite or unusable result (for example on empty input). It is
	// surfaced instead of letting NaN propagate into an RMSD.
	ErrDegenerate = errors.New("rotate: numerically degenerate decomposition")

	// ErrUnsupportedMethod indicates an unknown rotation method.
	ErrUnsupportedMethod = errors.New("rotate: unsupported rotation method")
)

// Method selects the rotation solver.
type Method int

const (
	// MethodKabsch is the SVD-based optimal rotation (the default).
	MethodKabsch Method = iota

	// MethodQuaternion is the eigen-decomposition based optimal rotation.
	MethodQuaternion

	// MethodNone disables rotation; RMSD is computed on the raw
	// centered coordinates.
	MethodNone
)

// String returns the canonical CLI name of the method.
func (m Method) String() string {
	switch m {
	case MethodKabsch:
		return "kabsch"
	case MethodQuaternion:
		return "quaternion"
	case MethodNone:
		return "none"
	default:
		return fmt.Sprintf("rotate.Method(%d)", int(m))
	}
}

// ParseMethod maps a CLI name onto a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "kabsch":
		return MethodKabsch, nil
	case "quaternion":
		return MethodQuaternion, nil
	case "none":
		return MethodNone, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, s)
	}
}

// ScoreFunc computes the RMSD of two centered coordinate sets.
type ScoreFunc func(p, q geom.Coords) (float64, error)

// Scorer returns the ScoreFunc for a method. The switch is exhaustive
// over the closed Method enum; unknown values error.
func Scorer(m Method) (ScoreFunc, error) {
	switch m {
	case MethodKabsch:
		return KabschRMSD, nil
	case MethodQuaternion:
		return QuaternionRMSD, nil
	case MethodNone:
		return RMSD, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMethod, m)
	}
}

// Matrix returns the rotation matrix of the chosen method, aligning p
// onto q under the row-vector convention (p·R ≈ q). MethodNone yields
// the identity.
func Matrix(m Method, p, q geom.Coords) (geom.Mat3, error) {
	switch m {
	case MethodKabsch:
		return Kabsch(p, q)
	case MethodQuaternion:
		return Quaternion(p, q)
	case MethodNone:
		return geom.Identity(), nil
	default:
		return geom.Mat3{}, fmt.Errorf("%w: %v", ErrUnsupportedMethod, m)
	}
}
