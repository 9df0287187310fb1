package mirror_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/torvik/superpose/geom"
	"github.com/torvik/superpose/mirror"
	"github.com/torvik/superpose/reorder"
)

// chiralStructure returns a centered labeled set with no mirror
// symmetry, so an improper transform is never recoverable by proper
// rotation alone.
func chiralStructure() ([]int, geom.Coords) {
	labels := []int{1, 6, 7, 8}
	coords, _, _ := geom.Center(geom.Coords{
		{0, 0, 0}, {1, 0, 0}, {0, 2, 0}, {0, 0, 3},
	})
	return labels, coords
}

// TestCheck_Identity verifies the deterministic tie-break: on an exact
// copy the first candidate (identity swap, all-plus signs) wins.
func TestCheck_Identity(t *testing.T) {
	labels, p := chiralStructure()

	res, err := mirror.Check(labels, labels, p, p, mirror.Options{})
	require.NoError(t, err)
	assert.Less(t, res.RMSD, 1e-9)
	assert.Equal(t, [3]int{0, 1, 2}, res.Swap)
	assert.Equal(t, [3]float64{1, 1, 1}, res.Reflection)
	assert.Nil(t, res.Review)
}

// TestCheck_FindsMirror verifies a mirror image is recovered to
// RMSD ≈ 0 by the full search, and that the winning transform is the
// single sign flip that undoes the mirroring.
func TestCheck_FindsMirror(t *testing.T) {
	labels, p := chiralStructure()
	q := geom.ReflectAxes(p, [3]float64{-1, 1, 1})

	res, err := mirror.Check(labels, labels, p, q, mirror.Options{})
	require.NoError(t, err)
	assert.Less(t, res.RMSD, 1e-9)
	assert.Equal(t, [3]int{0, 1, 2}, res.Swap)
	assert.Equal(t, [3]float64{-1, 1, 1}, res.Reflection)
}

// TestCheck_KeepStereo verifies stereo mode refuses the mirror match:
// only proper transforms are enumerated, so a chiral mirror image
// cannot reach zero.
func TestCheck_KeepStereo(t *testing.T) {
	labels, p := chiralStructure()
	q := geom.ReflectAxes(p, [3]float64{-1, 1, 1})

	res, err := mirror.Check(labels, labels, p, q, mirror.Options{KeepStereo: true})
	require.NoError(t, err)
	assert.Greater(t, res.RMSD, 0.1, "stereo-preserving search must not match a mirror image")
}

// TestCheck_WithReorder verifies the search re-solves correspondences
// per candidate: a mirrored and shuffled copy still reaches RMSD ≈ 0.
func TestCheck_WithReorder(t *testing.T) {
	labels, p := chiralStructure()
	q := geom.ReflectAxes(p, [3]float64{1, -1, 1})
	perm := rand.New(rand.NewSource(11)).Perm(len(q))
	q = geom.Permute(q, perm)
	qLabels := geom.PermuteInts(labels, perm)

	res, err := mirror.Check(labels, qLabels, p, q, mirror.Options{Reorder: reorder.Hungarian})
	require.NoError(t, err)
	assert.Less(t, res.RMSD, 1e-9)
	require.NotNil(t, res.Review)
	assert.Equal(t, labels, geom.PermuteInts(qLabels, res.Review))
}

// TestCheck_TieBreakStable verifies tied candidates resolve by
// enumeration order, not by decomposition noise: on an exact copy
// every proper transform is undone exactly by the optimal rotation, so
// all 24 score zero up to ~1e-17 noise, and the identity must still
// win in both the sequential and the parallel search.
func TestCheck_TieBreakStable(t *testing.T) {
	labels, p := chiralStructure()

	for _, workers := range []int{0, 8} {
		res, err := mirror.Check(labels, labels, p, p, mirror.Options{Workers: workers})
		require.NoError(t, err)
		assert.Equal(t, [3]int{0, 1, 2}, res.Swap, "workers=%d", workers)
		assert.Equal(t, [3]float64{1, 1, 1}, res.Reflection, "workers=%d", workers)
	}
}

// TestCheck_ParallelMatchesSequential verifies the bounded parallel
// search returns the identical winning candidate.
func TestCheck_ParallelMatchesSequential(t *testing.T) {
	labels, p := chiralStructure()
	q := geom.ReflectAxes(geom.SwapAxes(p, [3]int{1, 0, 2}), [3]float64{1, 1, -1})

	seq, err := mirror.Check(labels, labels, p, q, mirror.Options{})
	require.NoError(t, err)
	par, err := mirror.Check(labels, labels, p, q, mirror.Options{Workers: 8})
	require.NoError(t, err)

	assert.Equal(t, seq.Swap, par.Swap)
	assert.Equal(t, seq.Reflection, par.Reflection)
	assert.InDelta(t, seq.RMSD, par.RMSD, 1e-12)
}

// TestCheck_ThresholdShortCircuit verifies the lazy variant: with a
// threshold the search may stop early but must still return a
// candidate at or below it when one exists.
func TestCheck_ThresholdShortCircuit(t *testing.T) {
	labels, p := chiralStructure()
	q := geom.ReflectAxes(p, [3]float64{-1, 1, 1})

	res, err := mirror.Check(labels, labels, p, q, mirror.Options{Threshold: 1e-6})
	require.NoError(t, err)
	assert.LessOrEqual(t, res.RMSD, 1e-6)
}

// TestCheck_InfeasibleReorder verifies solver errors propagate out of
// the candidate loop.
func TestCheck_InfeasibleReorder(t *testing.T) {
	_, p := chiralStructure()

	_, err := mirror.Check([]int{1, 1, 1, 1}, []int{1, 1, 1, 2}, p, p, mirror.Options{Reorder: reorder.Hungarian})
	assert.ErrorIs(t, err, reorder.ErrInfeasible)
}
