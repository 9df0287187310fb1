package reorder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/torvik/superpose/geom"
	"github.com/torvik/superpose/reorder"
	"github.com/torvik/superpose/rotate"
)

// testStructure returns a centered, inertia-asymmetric labeled set:
// distinct per-axis spreads keep the principal moments well separated.
func testStructure(n int, seed int64) ([]int, geom.Coords) {
	rng := rand.New(rand.NewSource(seed))
	labels := make([]int, n)
	coords := make(geom.Coords, n)
	elements := []int{1, 6, 8}
	for i := range coords {
		labels[i] = elements[i%len(elements)]
		coords[i] = geom.Vec3{
			rng.NormFloat64() * 1.0,
			rng.NormFloat64() * 2.0,
			rng.NormFloat64() * 3.5,
		}
	}
	centered, _, _ := geom.Center(coords)
	return labels, centered
}

// shuffle returns a deterministic permutation of all indices (labels
// travel with their atoms, so any permutation is valid input for the
// solvers).
func shuffle(n int, seed int64) []int {
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	return perm
}

// assertRecovers checks that applying the perm vector to q
// reproduces p exactly (labels and coordinates).
func assertRecovers(t *testing.T, pLabels, qLabels []int, p, q geom.Coords, perm []int) {
	t.Helper()
	got := geom.Permute(q, perm)
	gotLabels := geom.PermuteInts(qLabels, perm)
	assert.Equal(t, pLabels, gotLabels, "labels must match after reorder")
	for i := range p {
		assert.InDelta(t, 0, geom.Dist(p[i], got[i]), 1e-9, "atom %d must map back", i)
	}
}

// TestHungarian_RecoversShuffle verifies the assignment solver on an
// identical structure with atoms permuted.
func TestHungarian_RecoversShuffle(t *testing.T) {
	labels, p := testStructure(12, 1)
	perm := shuffle(12, 2)
	q := geom.Permute(p, perm)
	qLabels := geom.PermuteInts(labels, perm)

	got, err := reorder.Hungarian(labels, qLabels, p, q)
	require.NoError(t, err)
	assertRecovers(t, labels, qLabels, p, q, got)
}

// TestDistance_RecoversShuffle verifies the greedy heuristic on an
// exact shuffled copy, where every nearest-neighbor choice is exact.
func TestDistance_RecoversShuffle(t *testing.T) {
	labels, p := testStructure(10, 3)
	perm := shuffle(10, 4)
	q := geom.Permute(p, perm)
	qLabels := geom.PermuteInts(labels, perm)

	got, err := reorder.Distance(labels, qLabels, p, q)
	require.NoError(t, err)
	assertRecovers(t, labels, qLabels, p, q, got)
}

// TestBrute_RecoversShuffle verifies exhaustive search on a small
// structure (factorial cost bounds the size).
func TestBrute_RecoversShuffle(t *testing.T) {
	labels, p := testStructure(6, 5)
	perm := shuffle(6, 6)
	q := geom.Permute(p, perm)
	qLabels := geom.PermuteInts(labels, perm)

	got, err := reorder.Brute(labels, qLabels, p, q)
	require.NoError(t, err)

	r, err := rotate.KabschRMSD(p, geom.Permute(q, got))
	require.NoError(t, err)
	assert.Less(t, r, 1e-9)
}

// TestBruteThreshold_EarlyExit verifies the lazy variant still returns
// a valid correspondence when it short-circuits.
func TestBruteThreshold_EarlyExit(t *testing.T) {
	labels, p := testStructure(6, 7)
	perm := shuffle(6, 8)
	q := geom.Permute(p, perm)
	qLabels := geom.PermuteInts(labels, perm)

	got, err := reorder.BruteThreshold(1e-6)(labels, qLabels, p, q)
	require.NoError(t, err)

	r, err := rotate.KabschRMSD(p, geom.Permute(q, got))
	require.NoError(t, err)
	assert.Less(t, r, 1e-6)
}

// TestInertiaHungarian_ShuffledAndRotated verifies the inertia
// pre-alignment: a copy that was shuffled and then rigidly rotated is
// still matched to RMSD ≈ 0, where raw distances alone would mislead
// the assignment.
func TestInertiaHungarian_ShuffledAndRotated(t *testing.T) {
	labels, p := testStructure(12, 9)
	perm := shuffle(12, 10)
	q := geom.Permute(p, perm)
	qLabels := geom.PermuteInts(labels, perm)

	// Rigid proper rotation far from identity.
	c, s := math.Cos(2.0), math.Sin(2.0)
	q = geom.ApplyRotation(q, geom.Mat3{{c, s, 0}, {-s, c, 0}, {0, 0, 1}})

	got, err := reorder.InertiaHungarian(labels, qLabels, p, q)
	require.NoError(t, err)

	r, err := rotate.KabschRMSD(p, geom.Permute(q, got))
	require.NoError(t, err)
	assert.Less(t, r, 1e-6)
}

// TestInfeasible verifies that different label multisets are rejected
// by every solver with a descriptive error.
func TestInfeasible(t *testing.T) {
	p := geom.Coords{{0, 0, 0}, {1, 0, 0}}
	q := geom.Coords{{0, 0, 0}, {1, 0, 0}}
	pl, ql := []int{1, 6}, []int{1, 8}

	for _, fn := range []reorder.Func{reorder.Hungarian, reorder.Distance, reorder.Brute, reorder.InertiaHungarian} {
		_, err := fn(pl, ql, p, q)
		assert.ErrorIs(t, err, reorder.ErrInfeasible)
	}
}

// TestForMethod_Dispatch verifies the strategy table, including the
// unavailable optional variant.
func TestForMethod_Dispatch(t *testing.T) {
	for _, m := range []reorder.Method{
		reorder.MethodHungarian, reorder.MethodInertiaHungarian,
		reorder.MethodBrute, reorder.MethodDistance,
	} {
		fn, err := reorder.ForMethod(m)
		require.NoError(t, err)
		require.NotNil(t, fn)
	}

	_, err := reorder.ForMethod(reorder.MethodNone)
	assert.ErrorIs(t, err, reorder.ErrNoMethod)

	qml, err := reorder.ForMethod(reorder.MethodQML)
	require.NoError(t, err)
	_, err = qml(nil, nil, nil, nil)
	assert.ErrorIs(t, err, reorder.ErrUnavailable)

	_, err = reorder.ForMethod(reorder.Method(99))
	assert.ErrorIs(t, err, reorder.ErrUnsupportedMethod)
}

// TestParseMethod verifies the CLI-name round trip.
func TestParseMethod(t *testing.T) {
	for _, name := range []string{"none", "hungarian", "inertia-hungarian", "brute", "distance", "qml"} {
		m, err := reorder.ParseMethod(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.String())
	}
	_, err := reorder.ParseMethod("munkres")
	assert.ErrorIs(t, err, reorder.ErrUnsupportedMethod)
}
