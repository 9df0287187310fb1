// Package superpose computes the minimal root-mean-square deviation
// (RMSD) between two equal-sized sets of labeled 3D points — typically
// the atoms of two molecular structures — optionally searching over
// atom correspondences and mirror reflections for the best possible
// superposition.
//
// The library is organized as small, composable solver packages:
//
//	geom/     — 3-vector and coordinate-set primitives (centroid, centering, axis ops)
//	mol/      — the labeled Structure type shared by all solvers
//	rotate/   — optimal-rotation RMSD: Kabsch (SVD), quaternion (eigen), no-rotation
//	reorder/  — atom-correspondence solvers: Hungarian, brute force, distance-greedy,
//	            inertia-aligned Hungarian
//	mirror/   — enumeration of the 48 axis-permutation/sign-flip candidates,
//	            with an optional stereochemistry-preserving subset
//	align/    — the orchestrator: validation, solver selection, and the final
//	            superposed structure
//	periodic/ — immutable element number↔symbol↔weight tables
//	xyz/      — XYZ structure files, with transparent gzip support
//
// Most callers only need align:
//
//	opts := align.DefaultOptions()
//	opts.Reorder = true
//	opts.ReorderMethod = reorder.MethodHungarian
//	res, err := align.Compute(p, q, opts)
//
// Every alignment call is independent, synchronous and side-effect-free:
// inputs are never mutated, and either a full valid result is returned
// or an error — never a partial transformation.
package superpose
