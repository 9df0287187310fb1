package periodic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/torvik/superpose/periodic"
)

// TestSymbolNumberRoundTrip spot-checks both directions of the
// number↔symbol mapping, including case-insensitive lookup.
func TestSymbolNumberRoundTrip(t *testing.T) {
	sym, ok := periodic.Symbol(6)
	assert.True(t, ok)
	assert.Equal(t, "C", sym)

	z, ok := periodic.Number("C")
	assert.True(t, ok)
	assert.Equal(t, 6, z)

	z, ok = periodic.Number("cl")
	assert.True(t, ok)
	assert.Equal(t, 17, z)

	_, ok = periodic.Symbol(0)
	assert.False(t, ok, "no element zero")
	_, ok = periodic.Number("Xx")
	assert.False(t, ok, "unknown symbol")
}

// TestWeight verifies weights and the unit fallback.
func TestWeight(t *testing.T) {
	w, ok := periodic.Weight(1)
	assert.True(t, ok)
	assert.InDelta(t, 1.00797, w, 1e-9)

	assert.Equal(t, 1.0, periodic.WeightOrUnit(999), "unknown labels fall back to unit mass")
}
