package wsp

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Geometry is the immutable part of a point set: the points themselves, their
// distance matrix and the neighbor ordering derived from it. A Geometry is
// safe to share between goroutines and between PointSets.
type Geometry struct {
	points    [][]float64
	dim       int
	metric    DistanceMetric
	matrix    *DistanceMatrix
	neighbors *NeighborIndex
}

// NewGeometry copies points and computes their distance matrix and neighbor
// index under metric (ManhattanMetric if nil).
func NewGeometry(points [][]float64, metric DistanceMetric) (*Geometry, error) {
	dim, err := validatePoints(points)
	if err != nil {
		return nil, err
	}
	if metric == nil {
		metric = ManhattanMetric{}
	}

	flat := make([]float64, len(points)*dim)
	owned := make([][]float64, len(points))
	for i, p := range points {
		owned[i] = flat[i*dim : (i+1)*dim : (i+1)*dim]
		copy(owned[i], p)
	}

	matrix, err := BuildDistanceMatrix(owned, metric)
	if err != nil {
		return nil, err
	}
	neighbors, err := BuildNeighborIndex(matrix)
	if err != nil {
		return nil, err
	}
	return &Geometry{
		points:    owned,
		dim:       dim,
		metric:    metric,
		matrix:    matrix,
		neighbors: neighbors,
	}, nil
}

// Len returns the number of points.
func (g *Geometry) Len() int { return len(g.points) }

// Dim returns the number of coordinates per point.
func (g *Geometry) Dim() int { return g.dim }

// Metric returns the metric the distance matrix was built with.
func (g *Geometry) Metric() DistanceMetric { return g.metric }

// Matrix returns the distance matrix.
func (g *Geometry) Matrix() *DistanceMatrix { return g.matrix }

// Neighbors returns the neighbor index.
func (g *Geometry) Neighbors() *NeighborIndex { return g.neighbors }

// PointSet is the aggregate every WSP operation works on. It is not safe for
// concurrent use; independent PointSets over one Geometry are.
type PointSet struct {
	geom   *Geometry
	state  *State
	seed   uint64
	logger *Logger

	// quiet is set when no Logger was configured; verbose adaptive
	// searches then report to verboseOut instead.
	quiet      bool
	verboseOut io.Writer
}

// NewPointSet builds a PointSet from preset coordinates. It fails if points
// is empty or the coordinate vectors differ in length.
func NewPointSet(points [][]float64, cfg Config) (*PointSet, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	g, err := NewGeometry(points, cfg.Metric)
	if err != nil {
		return nil, err
	}
	return NewPointSetFromGeometry(g, cfg), nil
}

// NewRandomPointSet builds a PointSet of count points with dim coordinates
// each, drawn uniformly from [0, 1) with the given seed.
func NewRandomPointSet(count, dim int, seed uint64, cfg Config) (*PointSet, error) {
	if count < 1 || dim < 1 {
		return nil, fmt.Errorf("%w: got count=%d dimension=%d", ErrInvalidCount, count, dim)
	}
	return NewPointSet(GenerateUniform(count, dim, seed), cfg)
}

// NewPointSetFromGeometry returns a PointSet with fresh elimination state over
// an existing Geometry. cfg.Metric is ignored; the geometry's metric applies.
func NewPointSetFromGeometry(g *Geometry, cfg Config) *PointSet {
	quiet := cfg.Logger == nil
	applyDefaults(&cfg)
	return &PointSet{
		geom:       g,
		state:      newState(g.Len()),
		seed:       cfg.OriginSeed,
		logger:     cfg.Logger.WithPoints(g.Len(), g.Dim()),
		quiet:      quiet,
		verboseOut: os.Stderr,
	}
}

// adaptiveLogger returns the logger an adaptive search reports to. Verbose
// searches on a set without a configured Logger write text to stderr.
func (ps *PointSet) adaptiveLogger(verbose bool) *Logger {
	if verbose && ps.quiet {
		return NewTextLogger(ps.verboseOut, slog.LevelInfo).WithPoints(ps.Len(), ps.Dim())
	}
	return ps.logger
}

// Reset restores the elimination state: all points active and unvisited.
// The distance matrix and neighbor index are kept.
func (ps *PointSet) Reset() { ps.state.Reset() }

// Geometry returns the immutable geometry of the set.
func (ps *PointSet) Geometry() *Geometry { return ps.geom }

// Len returns the number of points, active or not.
func (ps *PointSet) Len() int { return ps.geom.Len() }

// Dim returns the number of coordinates per point.
func (ps *PointSet) Dim() int { return ps.geom.Dim() }

// ActiveCount returns the number of points still in the subset.
func (ps *PointSet) ActiveCount() int { return ps.state.active }

// IsActive reports whether point i is still in the subset.
func (ps *PointSet) IsActive(i int) bool { return ps.state.isActive(i) }

// IsVisited reports whether point i served as an origin in the current pass.
func (ps *PointSet) IsVisited(i int) bool { return ps.state.isVisited(i) }

// Cursor returns the position in point i's neighbor ordering where its next
// scan resumes.
func (ps *PointSet) Cursor(i int) int { return ps.state.cursor[i] }

// Distance returns the distance between points i and j.
func (ps *PointSet) Distance(i, j int) float64 { return ps.geom.matrix.At(i, j) }

// Neighbors returns the indices of all points ordered by distance from i.
// The returned slice must not be modified.
func (ps *PointSet) Neighbors(i int) []int { return ps.geom.neighbors.Of(i) }

// MinDistance returns the smallest pairwise distance in the set.
func (ps *PointSet) MinDistance() float64 { return ps.geom.matrix.Min() }

// MaxDistance returns the largest pairwise distance in the set.
func (ps *PointSet) MaxDistance() float64 { return ps.geom.matrix.Max() }

// Point returns a copy of the coordinates of point i.
func (ps *PointSet) Point(i int) []float64 {
	return append([]float64(nil), ps.geom.points[i]...)
}

// Points returns a copy of every point, active or not, in index order.
func (ps *PointSet) Points() [][]float64 {
	out := make([][]float64, ps.Len())
	for i := range out {
		out[i] = ps.Point(i)
	}
	return out
}

// ActiveIndices returns the indices of the active points in ascending order.
func (ps *PointSet) ActiveIndices() []int {
	out := make([]int, 0, ps.state.active)
	for i := 0; i < ps.Len(); i++ {
		if ps.state.isActive(i) {
			out = append(out, i)
		}
	}
	return out
}

// Remaining returns a copy of the coordinates of every active point, in
// index order.
func (ps *PointSet) Remaining() [][]float64 {
	idx := ps.ActiveIndices()
	out := make([][]float64, len(idx))
	for k, i := range idx {
		out[k] = ps.Point(i)
	}
	return out
}
