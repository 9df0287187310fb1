// Package reorder finds the label-respecting permutation of one
// structure's atoms that best aligns it to another.
//
// Every solver shares the same contract: given two centered, labeled
// coordinate sets it returns a permutation π of the second set's
// indices such that position i of the reordered set corresponds to
// position i of the first set, with labels matching exactly. A
// correspondence across different labels is never valid, so all
// solvers partition atoms by type and match within partitions.
package reorder

import (
	"errors"
	"fmt"
	"sort"

	"github.com/torvik/superpose/geom"
)

var (
	// ErrLengthMismatch indicates the inputs are not parallel
	// equal-length sequences.
	ErrLengthMismatch = errors.New("reorder: labels and coordinates differ in length")

	// ErrInfeasible indicates the label multisets cannot be made to
	// match under any permutation — the structures are chemically
	// different.
	ErrInfeasible = errors.New("reorder: atom-type counts differ, no valid correspondence exists")

	// ErrUnavailable indicates an optional external strategy that is
	// not present in this build.
	ErrUnavailable = errors.New("reorder: method unavailable")

	// ErrNoMethod indicates reordering was requested without selecting
	// a method.
	ErrNoMethod = errors.New("reorder: no reorder method selected")

	// ErrUnsupportedMethod indicates an unknown reorder method.
	ErrUnsupportedMethod = errors.New("reorder: unsupported reorder method")
)

// Method selects the correspondence solver.
type Method int

const (
	// MethodNone disables reordering.
	MethodNone Method = iota

	// MethodHungarian solves a per-type linear assignment problem on
	// pairwise distances. The default choice.
	MethodHungarian

	// MethodInertiaHungarian pre-rotates both sets into their
	// principal-axis frames before the Hungarian assignment.
	MethodInertiaHungarian

	// MethodBrute enumerates all label-respecting permutations.
	// Factorial cost per type partition; a few atoms per type at most.
	MethodBrute

	// MethodDistance greedily pairs each atom with the closest
	// unmatched same-type atom. Fast heuristic, not optimal.
	MethodDistance

	// MethodQML is the optional external quantum-ML correspondence
	// strategy. Not available in this build; selecting it reports
	// ErrUnavailable instead of failing to load.
	MethodQML
)

// String returns the canonical CLI name of the method.
func (m Method) String() string {
	switch m {
	case MethodNone:
		return "none"
	case MethodHungarian:
		return "hungarian"
	case MethodInertiaHungarian:
		return "inertia-hungarian"
	case MethodBrute:
		return "brute"
	case MethodDistance:
		return "distance"
	case MethodQML:
		return "qml"
	default:
		return fmt.Sprintf("reorder.Method(%d)", int(m))
	}
}

// ParseMethod maps a CLI name onto a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "none":
		return MethodNone, nil
	case "hungarian":
		return MethodHungarian, nil
	case "inertia-hungarian":
		return MethodInertiaHungarian, nil
	case "brute":
		return MethodBrute, nil
	case "distance":
		return MethodDistance, nil
	case "qml":
		return MethodQML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, s)
	}
}

// Func is the shared solver signature: a label-respecting permutation
// of q's indices onto p, or an error.
type Func func(pLabels, qLabels []int, p, q geom.Coords) ([]int, error)

// ForMethod returns the solver for a method. MethodNone errors with
// ErrNoMethod — callers that do not want reordering should simply not
// call a solver. MethodQML errors at call time with ErrUnavailable.
func ForMethod(m Method) (Func, error) {
	switch m {
	case MethodHungarian:
		return Hungarian, nil
	case MethodInertiaHungarian:
		return InertiaHungarian, nil
	case MethodBrute:
		return Brute, nil
	case MethodDistance:
		return Distance, nil
	case MethodQML:
		return QML, nil
	case MethodNone:
		return nil, ErrNoMethod
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMethod, m)
	}
}

// QML is the optional external correspondence strategy. The dependency
// does not exist in this ecosystem, so the strategy is present in the
// enum but always reports itself unavailable.
func QML(pLabels, qLabels []int, p, q geom.Coords) ([]int, error) {
	return nil, fmt.Errorf("%w: qml", ErrUnavailable)
}

// partition groups the p- and q-side atom indices of one type label.
type partition struct {
	label int
	p, q  []int
}

// partitions validates the inputs and splits atom indices by type
// label, in ascending label order (the canonical order shared by all
// solvers). Returns ErrInfeasible when per-type counts differ.
func partitions(pLabels, qLabels []int, p, q geom.Coords) ([]partition, error) {
	if len(pLabels) != len(p) || len(qLabels) != len(q) || len(pLabels) != len(qLabels) {
		return nil, ErrLengthMismatch
	}

	byLabel := make(map[int]*partition)
	for i, l := range pLabels {
		pt, ok := byLabel[l]
		if !ok {
			pt = &partition{label: l}
			byLabel[l] = pt
		}
		pt.p = append(pt.p, i)
	}
	for i, l := range qLabels {
		pt, ok := byLabel[l]
		if !ok {
			return nil, fmt.Errorf("%w: label %d only present in second structure", ErrInfeasible, l)
		}
		pt.q = append(pt.q, i)
	}

	out := make([]partition, 0, len(byLabel))
	for _, pt := range byLabel {
		if len(pt.p) != len(pt.q) {
			return nil, fmt.Errorf("%w: label %d has %d vs %d atoms", ErrInfeasible, pt.label, len(pt.p), len(pt.q))
		}
		out = append(out, *pt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].label < out[j].label })
	return out, nil
}
