package wsp

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// newOriginRand returns the generator WSP draws its first origin from.
func newOriginRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// WSP runs one elimination walk with threshold dMin, starting from an origin
// drawn from a generator seeded with the set's Config.OriginSeed. A fresh
// generator is used on every call, so the origin is the same each time.
//
// WSP does not reset the set first; call Reset to start an independent pass.
func WSP(ps *PointSet, dMin float64) error {
	return WSPWithRand(ps, dMin, newOriginRand(ps.seed))
}

// WSPWithRand is like WSP but draws the origin from rng.
func WSPWithRand(ps *PointSet, dMin float64, rng *rand.Rand) error {
	return ps.Walk(dMin, rng.IntN(ps.Len()))
}

// Walk runs the elimination walk from origin with threshold dMin.
//
// The current origin scans its neighbors in order of increasing distance,
// resuming where its previous scan stopped. Inactive neighbors are skipped,
// neighbors closer than dMin are removed, and neighbors that already served
// as origins are passed over. The first active, unvisited neighbor at
// distance >= dMin becomes the next origin. The walk ends when an origin
// exhausts its neighbor list.
//
// On a freshly reset set, the surviving points are afterwards pairwise at
// least dMin apart and every point is either visited or removed.
func (ps *PointSet) Walk(dMin float64, origin int) error {
	n := ps.Len()
	if origin < 0 || origin >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidOrigin, origin, n)
	}
	if math.IsNaN(dMin) {
		return fmt.Errorf("%w: NaN", ErrInvalidDistance)
	}

	start := origin
	s := ps.state
	for {
		s.visited.Set(uint(origin))
		order := ps.geom.neighbors.Of(origin)
		row := ps.geom.matrix.Row(origin)

		next := -1
		c := s.cursor[origin]
		for ; c < n; c++ {
			cand := order[c]
			if !s.isActive(cand) {
				continue
			}
			if row[cand] < dMin {
				s.kill(cand)
				continue
			}
			if s.isVisited(cand) {
				continue
			}
			next = cand
			break
		}
		s.cursor[origin] = c
		if next < 0 {
			break
		}
		origin = next
	}

	ps.logger.LogWalk(dMin, start, s.active)
	return nil
}
