package wsp

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// DistanceMetric measures how far apart two points are. Implementations must
// be symmetric and return non-negative values for equal-length inputs.
type DistanceMetric interface {
	Distance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64 { return f(a, b) }

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
// It is the default metric.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// SquaredEuclideanMetric computes the sum of squared coordinate differences.
// Thresholds are then expressed as squared distances.
type SquaredEuclideanMetric struct{}

func (SquaredEuclideanMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// EuclideanMetric computes the Euclidean (L2) distance.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// MinkowskiMetric computes the Minkowski distance parameterized by P.
// P must be >= 1; Config validation rejects smaller values.
type MinkowskiMetric struct {
	P float64
}

func (m MinkowskiMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, m.P)
}

// ParseMetric returns the built-in metric registered under name.
// Names are case-insensitive: manhattan, sqeuclidean, euclidean, chebyshev.
func ParseMetric(name string) (DistanceMetric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "manhattan", "l1", "cityblock":
		return ManhattanMetric{}, nil
	case "sqeuclidean", "squared-euclidean":
		return SquaredEuclideanMetric{}, nil
	case "euclidean", "l2":
		return EuclideanMetric{}, nil
	case "chebyshev", "linf":
		return ChebyshevMetric{}, nil
	default:
		return nil, fmt.Errorf("wsp: unknown metric %q", name)
	}
}
