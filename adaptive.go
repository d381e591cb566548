package wsp

import "math"

// AdaptiveResult describes where an adaptive search settled.
type AdaptiveResult struct {
	// Distance is the dMin of the final walk.
	Distance float64
	// Active is the number of active points after the final walk.
	Active int
	// Target is the requested number of active points.
	Target int
	// Iterations counts the walks run by the binary search, excluding the
	// final rerun at the best distance.
	Iterations int
	// Exact reports whether Active == Target. When false, Distance is the
	// best approximation among the distances tried.
	Exact bool
}

// Difference returns |Active - Target|.
func (r AdaptiveResult) Difference() int {
	if r.Active > r.Target {
		return r.Active - r.Target
	}
	return r.Target - r.Active
}

// AdaptiveWSP binary searches dMin between the smallest and largest pairwise
// distance until a walk leaves exactly target points active. The number of
// active points does not change continuously with dMin, so the target may be
// unreachable; the search then stops when the interval can no longer be
// halved and leaves the set in the state of the closest count seen.
//
// target is not validated. Values outside [1, Len()] converge to the nearest
// reachable extreme. With verbose set, every iteration is logged at Info.
func AdaptiveWSP(ps *PointSet, target int, verbose bool) (AdaptiveResult, error) {
	lo, hi := ps.MinDistance(), ps.MaxDistance()
	mid := midpoint(lo, hi)
	logger := ps.adaptiveLogger(verbose)

	var best AdaptiveResult
	var iter int
	var evaluated float64
	for {
		iter++
		ps.Reset()
		if err := WSP(ps, mid); err != nil {
			return AdaptiveResult{}, err
		}
		evaluated = mid
		active := ps.ActiveCount()
		logger.LogIteration(verbose, iter, mid, active, target)

		res := AdaptiveResult{Distance: mid, Active: active, Target: target}
		if iter == 1 || res.Difference() < best.Difference() {
			best = res
		}
		if active == target {
			break
		}
		if active > target {
			lo = mid
		} else {
			hi = mid
		}

		mid = midpoint(lo, hi)
		if converged(evaluated, mid) {
			break
		}
	}
	best.Iterations = iter
	best.Exact = best.Active == target

	// Leave the set in the state the result describes.
	if best.Distance != evaluated {
		ps.Reset()
		if err := WSP(ps, best.Distance); err != nil {
			return AdaptiveResult{}, err
		}
	}

	logger.LogAdaptiveResult(verbose, best)
	return best, nil
}

// midpoint halves [lo, hi] without overflowing for distances near
// math.MaxFloat64.
func midpoint(lo, hi float64) float64 {
	return lo + (hi-lo)/2
}

// converged reports whether two successive search distances are equal to
// within machine epsilon, scaled for distances above 1.
func converged(prev, next float64) bool {
	if prev == next {
		return true
	}
	const eps = 0x1p-52
	return math.Abs(prev-next) <= eps*math.Max(1, math.Abs(next))
}
