// Package mirror enumerates improper transforms of a structure — axis
// permutations combined with per-axis sign flips — and scores each
// candidate against a reference, returning the best superposition.
// Used when a mirror-image correspondence is chemically plausible, or,
// in stereo-preserving mode, to search only the proper (determinant +1)
// subset.
package mirror

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/torvik/superpose/geom"
	"github.com/torvik/superpose/reorder"
	"github.com/torvik/superpose/rotate"
)

// AxisSwaps are the six axis permutations of {x,y,z}, in canonical
// enumeration order.
var AxisSwaps = [6][3]int{
	{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 1, 0}, {2, 0, 1},
}

// AxisReflections are the eight per-axis sign patterns, in canonical
// enumeration order.
var AxisReflections = [8][3]float64{
	{1, 1, 1}, {-1, 1, 1}, {1, -1, 1}, {1, 1, -1},
	{-1, -1, 1}, {-1, 1, -1}, {1, -1, -1}, {-1, -1, -1},
}

// swapParity[i] is the permutation sign of AxisSwaps[i].
var swapParity = [6]float64{1, -1, -1, 1, -1, 1}

// Options configures the reflection search.
type Options struct {
	// KeepStereo restricts the enumeration to proper transforms
	// (determinant +1), excluding physically invalid mirror matches.
	KeepStereo bool

	// Reorder, when non-nil, re-solves the atom correspondence for
	// every candidate after its transform is applied.
	Reorder reorder.Func

	// Score computes the RMSD of a candidate pair. Defaults to the
	// Kabsch-rotated RMSD.
	Score rotate.ScoreFunc

	// Workers bounds the number of candidates evaluated concurrently.
	// Values below 2 keep the search sequential. The winning candidate
	// is identical either way: results are gathered and compared in
	// enumeration order.
	Workers int

	// Threshold, when positive, stops the sequential search at the
	// first candidate with RMSD at or below it. With no threshold the
	// search is exhaustive. Ignored when Workers > 1.
	Threshold float64
}

// Result is the best transform found by Check.
type Result struct {
	// RMSD is the global minimum over all evaluated candidates.
	RMSD float64

	// Swap and Reflection describe the winning transform of the second
	// structure.
	Swap       [3]int
	Reflection [3]float64

	// Review is the winning reorder vector, nil when no reorder solver
	// was configured.
	Review []int
}

// candidate is one (swap, reflection) pair plus its evaluation.
type candidate struct {
	swap       [3]int
	reflection [3]float64
	rmsd       float64
	review     []int
}

// costEpsilon is the grid candidate RMSDs are rounded to before
// comparison. Equivalent transforms of a symmetric pair score the same
// RMSD up to decomposition noise (~1e-17); without the rounding that
// noise, not the enumeration order, would pick the winner.
const costEpsilon = 1e-9

// roundCost snaps a candidate RMSD onto the comparison grid.
func roundCost(r float64) float64 {
	return math.Round(r/costEpsilon) * costEpsilon
}

// Check enumerates the 48 axis-permutation/sign-flip candidates (or
// the proper subset in KeepStereo mode), applies each to q, optionally
// re-solves the correspondence, scores with the configured rotation
// solver, and returns the candidate with the minimal RMSD. Candidate
// scores are compared on a 1e-9 grid, so among mathematically tied
// transforms the first in enumeration order wins and the result is
// deterministic.
//
// Both p and q must be centered; the enumerated transforms keep a
// centered set centered.
func Check(pLabels, qLabels []int, p, q geom.Coords, opts Options) (Result, error) {
	score := opts.Score
	if score == nil {
		score = rotate.KabschRMSD
	}

	cands := enumerate(opts.KeepStereo)
	if opts.Workers > 1 {
		if err := evalParallel(cands, pLabels, qLabels, p, q, opts.Reorder, score, opts.Workers); err != nil {
			return Result{}, err
		}
	} else {
		if err := evalSequential(cands, pLabels, qLabels, p, q, opts.Reorder, score, opts.Threshold); err != nil {
			return Result{}, err
		}
	}

	best := Result{RMSD: math.Inf(1)}
	bestCost := math.Inf(1)
	for _, c := range cands {
		if cost := roundCost(c.rmsd); cost < bestCost {
			bestCost = cost
			best = Result{RMSD: c.rmsd, Swap: c.swap, Reflection: c.reflection, Review: c.review}
		}
	}
	return best, nil
}

// enumerate lists candidates in canonical order: swap-major, then
// reflection, skipping improper transforms in stereo mode.
func enumerate(keepStereo bool) []*candidate {
	out := make([]*candidate, 0, 48)
	for si, swap := range AxisSwaps {
		for _, refl := range AxisReflections {
			if keepStereo && swapParity[si]*refl[0]*refl[1]*refl[2] < 0 {
				continue
			}
			out = append(out, &candidate{swap: swap, reflection: refl, rmsd: math.Inf(1)})
		}
	}
	return out
}

// eval scores one candidate in place.
func (c *candidate) eval(pLabels, qLabels []int, p, q geom.Coords, re reorder.Func, score rotate.ScoreFunc) error {
	cand := geom.ReflectAxes(geom.SwapAxes(q, c.swap), c.reflection)
	if re != nil {
		review, err := re(pLabels, qLabels, p, cand)
		if err != nil {
			return err
		}
		c.review = review
		cand = geom.Permute(cand, review)
	}
	r, err := score(p, cand)
	if err != nil {
		return err
	}
	c.rmsd = r
	return nil
}

func evalSequential(cands []*candidate, pLabels, qLabels []int, p, q geom.Coords, re reorder.Func, score rotate.ScoreFunc, threshold float64) error {
	for _, c := range cands {
		if err := c.eval(pLabels, qLabels, p, q, re, score); err != nil {
			return err
		}
		if threshold > 0 && c.rmsd <= threshold {
			return nil
		}
	}
	return nil
}

// evalParallel fans the candidates out over a bounded worker group.
// Each evaluation is independent; determinism comes from the caller
// scanning results in enumeration order, not from completion order.
func evalParallel(cands []*candidate, pLabels, qLabels []int, p, q geom.Coords, re reorder.Func, score rotate.ScoreFunc, workers int) error {
	var g errgroup.Group
	g.SetLimit(workers)
	for _, c := range cands {
		c := c
		g.Go(func() error {
			return c.eval(pLabels, qLabels, p, q, re, score)
		})
	}
	return g.Wait()
}
