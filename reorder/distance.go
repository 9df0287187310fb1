package reorder

import (
	"github.com/torvik/superpose/geom"
)

// Distance pairs atoms greedily: walking the first structure in
// canonical order (ascending type label, then index), each atom takes
// the closest still-unmatched same-type atom of the second structure.
// No backtracking — O(N²) and fast, but not guaranteed optimal; a
// heuristic fallback for when Hungarian is too slow.
func Distance(pLabels, qLabels []int, p, q geom.Coords) ([]int, error) {
	parts, err := partitions(pLabels, qLabels, p, q)
	if err != nil {
		return nil, err
	}

	perm := make([]int, len(pLabels))
	for _, pt := range parts {
		remaining := append([]int(nil), pt.q...)
		for _, pi := range pt.p {
			best, bestD := -1, -1.0
			for r, qj := range remaining {
				if d := geom.SquaredDist(p[pi], q[qj]); best < 0 || d < bestD {
					best, bestD = r, d
				}
			}
			perm[pi] = remaining[best]
			remaining = append(remaining[:best], remaining[best+1:]...)
		}
	}
	return perm, nil
}
