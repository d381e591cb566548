package wsp

import (
	"cmp"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// NeighborIndex holds, for every point, all point indices ordered by
// increasing distance from it. Entry 0 of each ordering is the point itself.
type NeighborIndex struct {
	n     int
	order []int // n*n, row i is the ordering for point i
}

// BuildNeighborIndex sorts every row of dm. Ties are broken by placing the
// point itself first, then by ascending index, so the result is fully
// deterministic. A NaN anywhere in the matrix fails the whole build.
func BuildNeighborIndex(dm *DistanceMatrix) (*NeighborIndex, error) {
	n := dm.Len()
	for i := 0; i < n; i++ {
		if floats.HasNaN(dm.Row(i)) {
			return nil, fmt.Errorf("%w: row %d", ErrNaNDistance, i)
		}
	}

	idx := &NeighborIndex{n: n, order: make([]int, n*n)}
	for i := 0; i < n; i++ {
		row := dm.Row(i)
		order := idx.order[i*n : (i+1)*n]
		for j := range order {
			order[j] = j
		}
		slices.SortFunc(order, func(a, b int) int {
			if c := cmp.Compare(row[a], row[b]); c != 0 {
				return c
			}
			switch {
			case a == b:
				return 0
			case a == i:
				return -1
			case b == i:
				return 1
			}
			return cmp.Compare(a, b)
		})
	}
	return idx, nil
}

// Len returns the number of points indexed.
func (idx *NeighborIndex) Len() int { return idx.n }

// Of returns the neighbor ordering of point i. The returned slice aliases
// the index and must not be modified.
func (idx *NeighborIndex) Of(i int) []int { return idx.order[i*idx.n : (i+1)*idx.n] }
