// Package align orchestrates a full structural alignment: input
// validation, centering, solver selection, optional reflection search,
// and the final superposed structure.
package align

import (
	"errors"

	"github.com/torvik/superpose/mol"
	"github.com/torvik/superpose/reorder"
	"github.com/torvik/superpose/rotate"
)

var (
	// ErrSizeMismatch indicates the two structures have different atom
	// counts. Always fatal; there is no partial alignment.
	ErrSizeMismatch = errors.New("align: structures are not the same size")

	// ErrEmptyStructure indicates both structures have zero atoms.
	ErrEmptyStructure = errors.New("align: structures are empty")

	// ErrUnordered indicates the atom-type labels differ position by
	// position and no reordering was requested. The caller must opt in
	// to a reorder method explicitly — it can be expensive.
	ErrUnordered = errors.New("align: atoms are not in the same order and no reorder was requested")

	// ErrReorderFailed indicates a reorder solver returned a
	// correspondence that does not make the label sequences match.
	// This is an internal consistency failure (solver misuse), not a
	// recoverable user condition.
	ErrReorderFailed = errors.New("align: structures not aligned after reorder")
)

// Options selects the solvers and outputs of one alignment call.
//
// Exactly one alignment mode is active per call, in this documented
// priority order: UseReflections, then UseReflectionsKeepStereo, then
// plain Reorder, then none. Reflection modes consume ReorderMethod
// when Reorder is set — every method, brute force included, is honored
// there.
type Options struct {
	// Rotation selects the rotation solver used for scoring and, when
	// WantTransformed is set, for the final superposition.
	Rotation rotate.Method

	// ReorderMethod selects the correspondence solver; only consulted
	// when Reorder is true.
	ReorderMethod reorder.Method

	// Reorder enables atom reordering. Without it, structures whose
	// label sequences differ positionally are rejected.
	Reorder bool

	// UseReflections searches all 48 axis-permutation/sign-flip
	// transforms of the second structure.
	UseReflections bool

	// UseReflectionsKeepStereo searches only the proper
	// (determinant +1) transforms, preserving stereochemistry.
	UseReflectionsKeepStereo bool

	// WantTransformed additionally returns the second structure with
	// the winning reorder, reflection and rotation applied, expressed
	// in the first structure's original frame.
	WantTransformed bool

	// Workers bounds concurrent candidate evaluation in the
	// reflection search; below 2 the search is sequential.
	Workers int

	// Threshold, when positive, lets the sequential reflection search
	// stop at the first candidate at or below it.
	Threshold float64
}

// DefaultOptions mirrors the conventional CLI defaults: Kabsch
// rotation, Hungarian reordering (off until Reorder is set), scalar
// result only.
func DefaultOptions() Options {
	return Options{
		Rotation:      rotate.MethodKabsch,
		ReorderMethod: reorder.MethodHungarian,
	}
}

// Result is the outcome of one alignment call.
type Result struct {
	// RMSD is the minimal root-mean-square deviation found.
	RMSD float64

	// Transformed is the second structure superposed onto the first,
	// present only when Options.WantTransformed was set.
	Transformed *mol.Structure
}
