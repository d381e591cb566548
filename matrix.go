package wsp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix is the full symmetric pairwise distance matrix of a point
// set, stored flat in row-major order. It is never modified after
// BuildDistanceMatrix returns.
type DistanceMatrix struct {
	n    int
	data []float64
	min  float64
	max  float64
}

// validatePoints checks that points is non-empty and that every coordinate
// vector has the same, non-zero length. It returns that length.
func validatePoints(points [][]float64) (int, error) {
	if len(points) == 0 {
		return 0, ErrEmptyPointSet
	}
	dim := len(points[0])
	if dim == 0 {
		return 0, ErrZeroDimension
	}
	for i, p := range points {
		if len(p) != dim {
			return 0, fmt.Errorf("%w: point %d has %d coordinates, want %d", ErrDimensionMismatch, i, len(p), dim)
		}
	}
	return dim, nil
}

// BuildDistanceMatrix computes metric for every pair of points and records
// the smallest and largest off-diagonal distance. Input is validated before
// any distance is computed.
func BuildDistanceMatrix(points [][]float64, metric DistanceMetric) (*DistanceMatrix, error) {
	if _, err := validatePoints(points); err != nil {
		return nil, err
	}
	if metric == nil {
		metric = ManhattanMetric{}
	}

	n := len(points)
	dm := &DistanceMatrix{n: n, data: make([]float64, n*n)}
	if n == 1 {
		return dm, nil
	}

	dm.min = math.MaxFloat64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := metric.Distance(points[i], points[j])
			dm.data[i*n+j] = d
			dm.data[j*n+i] = d
			if d < dm.min {
				dm.min = d
			}
			if d > dm.max {
				dm.max = d
			}
		}
	}
	return dm, nil
}

// Len returns the number of points the matrix was built from.
func (dm *DistanceMatrix) Len() int { return dm.n }

// At returns the distance between points i and j.
func (dm *DistanceMatrix) At(i, j int) float64 { return dm.data[i*dm.n+j] }

// Row returns the distances from point i to every point. The returned slice
// aliases the matrix and must not be modified.
func (dm *DistanceMatrix) Row(i int) []float64 { return dm.data[i*dm.n : (i+1)*dm.n] }

// Min returns the smallest off-diagonal distance, or 0 for a single point.
func (dm *DistanceMatrix) Min() float64 { return dm.min }

// Max returns the largest off-diagonal distance, or 0 for a single point.
func (dm *DistanceMatrix) Max() float64 { return dm.max }

// Symmetric returns a gonum view of the matrix sharing its backing data.
// The view must be treated as read-only.
func (dm *DistanceMatrix) Symmetric() mat.Symmetric {
	return mat.NewSymDense(dm.n, dm.data)
}
