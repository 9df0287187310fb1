package reorder

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/torvik/superpose/geom"
	"github.com/torvik/superpose/periodic"
	"github.com/torvik/superpose/rotate"
)

// properSignFlips are the axis-sign combinations with determinant +1.
// Principal axes are only defined up to sign, so the aligned frames
// are compared under each proper flip of the second set.
var properSignFlips = [4][3]float64{
	{1, 1, 1},
	{1, -1, -1},
	{-1, 1, -1},
	{-1, -1, 1},
}

// InertiaHungarian rotates both point sets into their own
// principal-axis frames before running the Hungarian assignment.
// Pure distance-based matching fails when the initial relative
// orientation is far from aligned; after the inertia alignment,
// nearest-neighbor distances are meaningful again.
//
// The sign ambiguity of the principal axes is resolved by trying every
// proper flip of the second set's frame and keeping the reorder vector
// with the lowest Kabsch-scored RMSD. First flip wins on ties.
func InertiaHungarian(pLabels, qLabels []int, p, q geom.Coords) ([]int, error) {
	if _, err := partitions(pLabels, qLabels, p, q); err != nil {
		return nil, err
	}

	pAxes, err := principalAxes(pLabels, p)
	if err != nil {
		return nil, err
	}
	qAxes, err := principalAxes(qLabels, q)
	if err != nil {
		return nil, err
	}

	pFrame := geom.ApplyRotation(p, pAxes)
	qFrame := geom.ApplyRotation(q, qAxes)

	var (
		best    []int
		bestVal = math.Inf(1)
	)
	for _, flip := range properSignFlips {
		cand := geom.ReflectAxes(qFrame, flip)
		perm, err := Hungarian(pLabels, qLabels, pFrame, cand)
		if err != nil {
			return nil, err
		}
		r, err := rotate.KabschRMSD(pFrame, geom.Permute(cand, perm))
		if err != nil {
			return nil, err
		}
		if r < bestVal {
			bestVal = r
			best = perm
		}
	}
	return best, nil
}

// principalAxes returns the proper (det +1) rotation whose columns are
// the eigenvectors of the mass-weighted inertia tensor, ordered by
// ascending eigenvalue. Applying it (row-vector convention) expresses
// the coordinates in their own principal-axis frame. Labels without a
// known atomic weight count as unit mass.
func principalAxes(labels []int, c geom.Coords) (geom.Mat3, error) {
	if len(c) == 0 {
		return geom.Mat3{}, rotate.ErrDegenerate
	}

	// Center on the center of mass first; the inertia tensor is only
	// meaningful about it.
	var com geom.Vec3
	var total float64
	for i, pt := range c {
		m := periodic.WeightOrUnit(labels[i])
		com = com.Add(pt.Scale(m))
		total += m
	}
	com = com.Scale(1 / total)

	var t [3][3]float64
	for i, pt := range c {
		m := periodic.WeightOrUnit(labels[i])
		r := pt.Sub(com)
		r2 := r.Dot(r)
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				v := -m * r[a] * r[b]
				if a == b {
					v += m * r2
				}
				t[a][b] += v
			}
		}
	}

	sym := mat.NewSymDense(3, []float64{
		t[0][0], t[0][1], t[0][2],
		t[1][0], t[1][1], t[1][2],
		t[2][0], t[2][1], t[2][2],
	})
	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return geom.Mat3{}, rotate.ErrDegenerate
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	var axes geom.Mat3
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			e := vecs.At(r, col)
			if math.IsNaN(e) || math.IsInf(e, 0) {
				return geom.Mat3{}, rotate.ErrDegenerate
			}
			axes[r][col] = e
		}
	}
	// Keep the frame proper so it is a rotation, not a reflection.
	if axes.Det() < 0 {
		for r := 0; r < 3; r++ {
			axes[r][2] = -axes[r][2]
		}
	}
	return axes, nil
}
