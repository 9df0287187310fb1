package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/torvik/superpose/geom"
)

// TestCentroid_Empty verifies that an empty set yields ErrEmpty.
func TestCentroid_Empty(t *testing.T) {
	_, err := geom.Centroid(nil)
	assert.ErrorIs(t, err, geom.ErrEmpty, "empty input must error")
}

// TestCentroid_Mean verifies the centroid is the arithmetic mean.
func TestCentroid_Mean(t *testing.T) {
	c := geom.Coords{{0, 0, 0}, {2, 4, 6}}
	cent, err := geom.Centroid(c)
	assert.NoError(t, err)
	assert.Equal(t, geom.Vec3{1, 2, 3}, cent)
}

// TestCenter_RemovesCentroid verifies centering and that the original
// set is left untouched.
func TestCenter_RemovesCentroid(t *testing.T) {
	c := geom.Coords{{1, 1, 1}, {3, 3, 3}}
	centered, cent, err := geom.Center(c)
	assert.NoError(t, err)
	assert.Equal(t, geom.Vec3{2, 2, 2}, cent)
	assert.Equal(t, geom.Coords{{-1, -1, -1}, {1, 1, 1}}, centered)
	assert.Equal(t, geom.Coords{{1, 1, 1}, {3, 3, 3}}, c, "input must not be mutated")

	recent, err := geom.Centroid(centered)
	assert.NoError(t, err)
	assert.InDelta(t, 0, recent.Norm(), 1e-12, "centered set has zero centroid")
}

// TestCenterInPlace verifies in-place centering mutates its argument.
func TestCenterInPlace(t *testing.T) {
	c := geom.Coords{{1, 1, 1}, {3, 3, 3}}
	cent, err := geom.CenterInPlace(c)
	assert.NoError(t, err)
	assert.Equal(t, geom.Vec3{2, 2, 2}, cent)
	assert.Equal(t, geom.Coords{{-1, -1, -1}, {1, 1, 1}}, c)

	_, err = geom.CenterInPlace(nil)
	assert.ErrorIs(t, err, geom.ErrEmpty)
}

// TestPermute verifies coordinate and label reordering.
func TestPermute(t *testing.T) {
	c := geom.Coords{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	perm := []int{2, 0, 1}
	assert.Equal(t, geom.Coords{{2, 0, 0}, {0, 0, 0}, {1, 0, 0}}, geom.Permute(c, perm))
	assert.Equal(t, []int{8, 6, 7}, geom.PermuteInts([]int{6, 7, 8}, perm))
}

// TestSwapAndReflectAxes verifies column permutation and sign flips.
func TestSwapAndReflectAxes(t *testing.T) {
	c := geom.Coords{{1, 2, 3}}
	assert.Equal(t, geom.Coords{{2, 1, 3}}, geom.SwapAxes(c, [3]int{1, 0, 2}))
	assert.Equal(t, geom.Coords{{-1, 2, -3}}, geom.ReflectAxes(c, [3]float64{-1, 1, -1}))
}

// TestMat3_DetAndApply verifies determinant and row-vector rotation.
func TestMat3_DetAndApply(t *testing.T) {
	id := geom.Identity()
	assert.Equal(t, 1.0, id.Det())

	// 90° rotation about z: x→y, y→-x (row-vector convention).
	rz := geom.Mat3{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}}
	assert.InDelta(t, 1.0, rz.Det(), 1e-12)

	out := geom.ApplyRotation(geom.Coords{{1, 0, 0}}, rz)
	assert.InDelta(t, 0, out[0][0], 1e-12)
	assert.InDelta(t, 1, out[0][1], 1e-12)

	refl := geom.Mat3{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	assert.InDelta(t, -1.0, refl.Det(), 1e-12, "reflection has determinant -1")
}

// TestDist verifies the distance helpers.
func TestDist(t *testing.T) {
	a, b := geom.Vec3{0, 0, 0}, geom.Vec3{3, 4, 0}
	assert.Equal(t, 25.0, geom.SquaredDist(a, b))
	assert.Equal(t, 5.0, geom.Dist(a, b))
}
