package align

import (
	"fmt"

	"github.com/torvik/superpose/geom"
	"github.com/torvik/superpose/mirror"
	"github.com/torvik/superpose/mol"
	"github.com/torvik/superpose/reorder"
	"github.com/torvik/superpose/rotate"
)

// Compute aligns q onto p and returns the minimal RMSD found under
// the configured solvers.
//
// Control flow: validate sizes and labels, center working copies of
// both structures, resolve the rotation and correspondence solvers,
// run exactly one alignment mode (reflections > stereo reflections >
// plain reorder > none), re-validate labels after any reorder, and —
// when requested — apply the winning swap, reflection and rotation to
// produce q in p's original frame.
//
// Inputs are never mutated; on error no partial result is returned.
func Compute(p, q mol.Structure, opts Options) (Result, error) {
	if len(p.Labels) != len(p.Coords) || len(q.Labels) != len(q.Coords) {
		return Result{}, mol.ErrLabelCoordMismatch
	}
	if p.Len() != q.Len() {
		return Result{}, fmt.Errorf("%w: %d vs %d atoms", ErrSizeMismatch, p.Len(), q.Len())
	}
	if p.Len() == 0 {
		return Result{}, ErrEmptyStructure
	}
	if !opts.Reorder && !p.SameOrder(q) {
		return Result{}, ErrUnordered
	}

	score, err := rotate.Scorer(opts.Rotation)
	if err != nil {
		return Result{}, err
	}
	var reFn reorder.Func
	if opts.Reorder {
		if reFn, err = reorder.ForMethod(opts.ReorderMethod); err != nil {
			return Result{}, err
		}
	}

	// Working copies, centered to their own centroids. The first
	// structure's centroid is kept to restore its frame on output.
	pc, pCent, err := geom.Center(p.Coords)
	if err != nil {
		return Result{}, err
	}
	qc, _, err := geom.Center(q.Coords)
	if err != nil {
		return Result{}, err
	}
	qLabels := append([]int(nil), q.Labels...)

	var (
		haveMirror bool
		swap       [3]int
		reflection [3]float64
		review     []int
		rmsd       float64
	)

	switch {
	case opts.UseReflections, opts.UseReflectionsKeepStereo:
		mres, err := mirror.Check(p.Labels, qLabels, pc, qc, mirror.Options{
			KeepStereo: !opts.UseReflections && opts.UseReflectionsKeepStereo,
			Reorder:    reFn,
			Score:      score,
			Workers:    opts.Workers,
			Threshold:  opts.Threshold,
		})
		if err != nil {
			return Result{}, err
		}
		haveMirror = true
		rmsd = mres.RMSD
		swap, reflection, review = mres.Swap, mres.Reflection, mres.Review

	case opts.Reorder:
		if review, err = reFn(p.Labels, qLabels, pc, qc); err != nil {
			return Result{}, err
		}
	}

	if review != nil {
		qLabels = geom.PermuteInts(qLabels, review)
		qc = geom.Permute(qc, review)
		for i, l := range p.Labels {
			if qLabels[i] != l {
				return Result{}, fmt.Errorf("%w: label mismatch at atom %d", ErrReorderFailed, i)
			}
		}
	}

	if !haveMirror {
		if rmsd, err = score(pc, qc); err != nil {
			return Result{}, err
		}
	}

	res := Result{RMSD: rmsd}
	if opts.WantTransformed {
		out, err := transform(pc, pCent, qc, swap, reflection, haveMirror, opts.Rotation)
		if err != nil {
			return Result{}, err
		}
		res.Transformed = &mol.Structure{Labels: qLabels, Coords: out}
	}
	return res, nil
}

// transform applies the winning reflection, the final rotation from
// the configured solver, and the translation back into p's original
// frame. The reorder has already been applied to qc by the caller;
// permutation and per-point axis transforms commute.
func transform(pc geom.Coords, pCent geom.Vec3, qc geom.Coords, swap [3]int, reflection [3]float64, haveMirror bool, method rotate.Method) (geom.Coords, error) {
	out := qc
	if haveMirror {
		out = geom.ReflectAxes(geom.SwapAxes(out, swap), reflection)
	}

	// Re-center: the axis transforms preserve centering, but the
	// final rotation must see an exactly centered set.
	out, _, err := geom.Center(out)
	if err != nil {
		return nil, err
	}

	u, err := rotate.Matrix(method, out, pc)
	if err != nil {
		return nil, err
	}
	return geom.Translate(geom.ApplyRotation(out, u), pCent), nil
}
