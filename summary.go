package wsp

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the subset left by a walk.
type Summary struct {
	Points  int
	Active  int
	Removed int
	Visited int

	// MinSeparation is the smallest distance between two active points.
	// MeanNearest and StdNearest describe the distance from each active point
	// to its nearest active neighbor. All three are 0 with fewer than two
	// active points.
	MinSeparation float64
	MeanNearest   float64
	StdNearest    float64
}

// Summarize computes a Summary of the current elimination state of ps.
func Summarize(ps *PointSet) Summary {
	n := ps.Len()
	sum := Summary{
		Points:  n,
		Active:  ps.ActiveCount(),
		Removed: n - ps.ActiveCount(),
		Visited: int(ps.state.visited.Count()),
	}
	if sum.Active < 2 {
		return sum
	}

	// Distances among the survivors only.
	var sub mat.SymDense
	sub.SubsetSym(ps.geom.matrix.Symmetric(), ps.ActiveIndices())

	k := sub.SymmetricDim()
	nearest := make([]float64, k)
	for r := 0; r < k; r++ {
		nearest[r] = math.Inf(1)
		for c := 0; c < k; c++ {
			if c != r {
				nearest[r] = math.Min(nearest[r], sub.At(r, c))
			}
		}
	}

	sum.MinSeparation = floats.Min(nearest)
	sum.MeanNearest, sum.StdNearest = stat.MeanStdDev(nearest, nil)
	return sum
}
