package rotate

import (
	"math"

	"github.com/torvik/superpose/geom"
)

// RMSD returns the plain root-mean-square deviation of two coordinate
// sets with no rotation applied. Used as the no-rotation baseline and
// as the final scoring step of the rotating solvers.
func RMSD(p, q geom.Coords) (float64, error) {
	if len(p) != len(q) {
		return 0, ErrLengthMismatch
	}
	if len(p) == 0 {
		return 0, ErrDegenerate
	}
	var sum float64
	for i := range p {
		sum += geom.SquaredDist(p[i], q[i])
	}
	return math.Sqrt(sum / float64(len(p))), nil
}
