package reorder

import (
	"math"

	"github.com/torvik/superpose/geom"
)

// Hungarian solves the correspondence as one linear assignment problem
// per type partition: the pairwise Euclidean distance matrix between
// same-type atoms is minimized by an O(k³) shortest-augmenting-path
// assignment, and the partition-local matchings concatenate into the
// full reorder vector.
//
// Solving per type keeps every assignment feasible (labels must match)
// and bounds the cost by the largest single-type partition.
func Hungarian(pLabels, qLabels []int, p, q geom.Coords) ([]int, error) {
	parts, err := partitions(pLabels, qLabels, p, q)
	if err != nil {
		return nil, err
	}

	perm := make([]int, len(pLabels))
	for _, pt := range parts {
		k := len(pt.p)
		cost := make([][]float64, k)
		for i, pi := range pt.p {
			cost[i] = make([]float64, k)
			for j, qj := range pt.q {
				cost[i][j] = geom.Dist(p[pi], q[qj])
			}
		}
		assign := solveAssignment(cost)
		for i, pi := range pt.p {
			perm[pi] = pt.q[assign[i]]
		}
	}
	return perm, nil
}

// solveAssignment returns, for each row of the square cost matrix, the
// column of a minimum-total-cost perfect matching.
//
// Shortest-augmenting-path formulation with dual potentials (the
// Jonker–Volgenant variant of the Hungarian algorithm): rows are
// inserted one at a time, each insertion runs a Dijkstra-like scan over
// reduced costs to find an augmenting path. O(n³) time, O(n) extra
// space per insertion.
func solveAssignment(cost [][]float64) []int {
	n := len(cost)
	if n == 0 {
		return nil
	}

	// Potentials and matching use 1-based indexing with column 0 as the
	// virtual root of each augmenting search.
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	match := make([]int, n+1) // match[j] = row assigned to column j
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		match[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}

		for {
			used[j0] = true
			i0 := match[j0]
			delta := math.Inf(1)
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[match[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if match[j0] == 0 {
				break
			}
		}

		// Augment along the found path.
		for j0 != 0 {
			j1 := way[j0]
			match[j0] = match[j1]
			j0 = j1
		}
	}

	assign := make([]int, n)
	for j := 1; j <= n; j++ {
		assign[match[j]-1] = j - 1
	}
	return assign
}
