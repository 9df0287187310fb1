// Package mol defines the labeled point-set type shared by every
// solver in this module: an ordered sequence of atoms, each carrying an
// integer type label (atomic number) and a 3D coordinate.
package mol

import (
	"errors"

	"github.com/torvik/superpose/geom"
)

// ErrLabelCoordMismatch is returned when labels and coordinates have
// different lengths.
var ErrLabelCoordMismatch = errors.New("mol: labels and coordinates differ in length")

// Structure is an ordered set of labeled atoms. Order is significant
// until a reorder solver resolves correspondences; afterwards position
// i in two structures refers to corresponding atoms.
type Structure struct {
	// Labels holds one atomic number per atom.
	Labels []int

	// Coords holds one 3D coordinate per atom, parallel to Labels.
	Coords geom.Coords
}

// New builds a Structure and validates that labels and coordinates are
// parallel slices.
func New(labels []int, coords geom.Coords) (Structure, error) {
	if len(labels) != len(coords) {
		return Structure{}, ErrLabelCoordMismatch
	}
	return Structure{Labels: labels, Coords: coords}, nil
}

// Len returns the number of atoms.
func (s Structure) Len() int { return len(s.Labels) }

// Clone returns a deep copy; solvers work on copies so caller inputs
// are never mutated.
func (s Structure) Clone() Structure {
	labels := make([]int, len(s.Labels))
	copy(labels, s.Labels)
	return Structure{Labels: labels, Coords: geom.Clone(s.Coords)}
}

// Permute returns a copy with atoms reordered so that position i holds
// the atom previously at position perm[i].
func (s Structure) Permute(perm []int) Structure {
	return Structure{
		Labels: geom.PermuteInts(s.Labels, perm),
		Coords: geom.Permute(s.Coords, perm),
	}
}

// SameOrder reports whether the label sequences of s and o match
// position by position.
func (s Structure) SameOrder(o Structure) bool {
	if len(s.Labels) != len(o.Labels) {
		return false
	}
	for i, l := range s.Labels {
		if o.Labels[i] != l {
			return false
		}
	}
	return true
}
