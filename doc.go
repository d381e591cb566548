// Package wsp implements the WSP (Wootton, Sergent, Phan-Tan-Luu)
// space-filling subset selection algorithm.
//
// Given a set of points and a minimum distance dMin, WSP removes points until
// every remaining (active) point is at least dMin away from every other one.
// Elimination proceeds as a walk: the current origin removes its too-close
// neighbors, then the walk moves to the nearest active point that has not yet
// served as an origin.
//
// Basic usage:
//
//	ps, err := wsp.NewRandomPointSet(1000, 20, 51, wsp.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	if err := wsp.WSP(ps, 3.0); err != nil {
//		return err
//	}
//	for _, p := range ps.Remaining() {
//		fmt.Println(p)
//	}
//
// When the right dMin is unknown but the size of the subset is, AdaptiveWSP
// binary searches the distance until the active count matches the target:
//
//	res, err := wsp.AdaptiveWSP(ps, 100, false)
//	// res.Distance is the dMin used, res.Exact reports whether 100 was hit.
//
// # Geometry and state
//
// A PointSet composes an immutable Geometry (points, distance matrix and
// per-point neighbor ordering, computed once) with a resettable elimination
// State. Resetting is cheap; the O(n²·m) matrix build is never repeated.
// Several PointSets may share one Geometry through NewPointSetFromGeometry.
//
// Based on: Santiago, J., Claeys-Bruno, M., & Sergent, M. (2012).
// Construction of space-filling designs using WSP algorithm for high
// dimensional spaces. Chemometrics and Intelligent Laboratory Systems, 113,
// 26-31.
package wsp
