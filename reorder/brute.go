package reorder

import (
	"math"

	"github.com/torvik/superpose/geom"
	"github.com/torvik/superpose/rotate"
)

// Brute exhaustively enumerates every label-respecting permutation
// (all orderings within each type partition, combined across
// partitions), scores each full candidate with the Kabsch-rotated
// RMSD, and keeps the minimum. Ties go to the first candidate in
// enumeration order, which is deterministic.
//
// Candidates are always Kabsch-scored, independent of the rotation
// method selected for the final result: the quaternion solver ranks
// permutations identically, and a no-rotation ranking would punish
// the very misorientation an optimal rotation later removes.
//
// Cost is the product of the per-type factorials — tractable only for
// a few atoms per type. The solver does not guard against oversized
// inputs; that bound is the caller's responsibility.
func Brute(pLabels, qLabels []int, p, q geom.Coords) ([]int, error) {
	return BruteThreshold(0)(pLabels, qLabels, p, q)
}

// BruteThreshold returns a Brute variant that stops at the first
// candidate whose RMSD is at or below eps. Candidates are produced
// lazily, so an early hit skips the remaining factorial tail without
// changing the result when no threshold would have been crossed.
// eps <= 0 disables the early exit (exhaustive search).
func BruteThreshold(eps float64) Func {
	return func(pLabels, qLabels []int, p, q geom.Coords) ([]int, error) {
		parts, err := partitions(pLabels, qLabels, p, q)
		if err != nil {
			return nil, err
		}

		var (
			perm    = make([]int, len(pLabels))
			best    []int
			bestVal = math.Inf(1)
			scanErr error
		)

		score := func() bool {
			r, err := rotate.KabschRMSD(p, geom.Permute(q, perm))
			if err != nil {
				scanErr = err
				return true
			}
			if r < bestVal {
				bestVal = r
				best = append(best[:0], perm...)
			}
			return eps > 0 && bestVal <= eps
		}

		// Depth-first over partitions; within a partition, a recursive
		// swap-based permutation of the q-side indices. visit returns
		// true to short-circuit the whole enumeration.
		var visitPart func(pi int) bool
		visitPart = func(pi int) bool {
			if pi == len(parts) {
				return score()
			}
			pt := parts[pi]
			idx := append([]int(nil), pt.q...)

			var permute func(k int) bool
			permute = func(k int) bool {
				if k == len(idx) {
					for i, pos := range pt.p {
						perm[pos] = idx[i]
					}
					return visitPart(pi + 1)
				}
				for i := k; i < len(idx); i++ {
					idx[k], idx[i] = idx[i], idx[k]
					if permute(k + 1) {
						return true
					}
					idx[k], idx[i] = idx[i], idx[k]
				}
				return false
			}
			return permute(0)
		}
		visitPart(0)

		if scanErr != nil {
			return nil, scanErr
		}
		return best, nil
	}
}
