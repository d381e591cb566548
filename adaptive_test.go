package wsp

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptiveWSP_FirstIterationTarget(t *testing.T) {
	points := GenerateUniform(300, 4, 21)

	reference := newTestPointSet(t, points, nil)
	mid := midpoint(reference.MinDistance(), reference.MaxDistance())
	require.NoError(t, WSP(reference, mid))
	target := reference.ActiveCount()

	ps := newTestPointSet(t, points, nil)
	res, err := AdaptiveWSP(ps, target, false)
	require.NoError(t, err)

	assert.True(t, res.Exact)
	assert.Equal(t, target, res.Active)
	assert.Equal(t, target, ps.ActiveCount())
	assert.Equal(t, mid, res.Distance)
	assert.Equal(t, 1, res.Iterations)
	assert.Zero(t, res.Difference())
}

func TestAdaptiveWSP_UnreachableTarget(t *testing.T) {
	// Both pairwise distances equal 1, so the search interval is empty and a
	// single point can never be reached.
	ps := newTestPointSet(t, [][]float64{{0}, {1}}, nil)
	res, err := AdaptiveWSP(ps, 1, false)
	require.NoError(t, err)

	assert.False(t, res.Exact)
	assert.Equal(t, 2, res.Active)
	assert.Equal(t, 1.0, res.Distance)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, 1, res.Difference())
	assert.Equal(t, 2, ps.ActiveCount())
}

func TestAdaptiveWSP_ConsistentFinalState(t *testing.T) {
	points := GenerateUniform(250, 3, 13)
	const target = 37

	ps := newTestPointSet(t, points, nil)
	res, err := AdaptiveWSP(ps, target, false)
	require.NoError(t, err)

	assert.Equal(t, target, res.Target)
	assert.Equal(t, res.Active, ps.ActiveCount())
	assert.Equal(t, res.Active == target, res.Exact)
	assert.GreaterOrEqual(t, res.Distance, ps.MinDistance())
	assert.LessOrEqual(t, res.Distance, ps.MaxDistance())

	// Rerunning at the reported distance reproduces the reported count.
	kept := ps.ActiveIndices()
	ps.Reset()
	require.NoError(t, WSP(ps, res.Distance))
	assert.Equal(t, kept, ps.ActiveIndices())

	// Separation holds for the final state.
	sum := Summarize(ps)
	assert.GreaterOrEqual(t, sum.MinSeparation, res.Distance)
}

func TestAdaptiveWSP_Deterministic(t *testing.T) {
	points := GenerateUniform(200, 6, 99)

	a := newTestPointSet(t, points, nil)
	b := newTestPointSet(t, points, nil)
	resA, err := AdaptiveWSP(a, 25, false)
	require.NoError(t, err)
	resB, err := AdaptiveWSP(b, 25, false)
	require.NoError(t, err)

	assert.Equal(t, resA, resB)
	assert.Equal(t, a.ActiveIndices(), b.ActiveIndices())
}

func TestAdaptiveWSP_TargetAboveCount(t *testing.T) {
	ps := newTestPointSet(t, GenerateUniform(120, 2, 4), nil)
	res, err := AdaptiveWSP(ps, 130, false)
	require.NoError(t, err)

	assert.False(t, res.Exact)
	assert.GreaterOrEqual(t, res.Active, 119)
	assert.LessOrEqual(t, res.Active, 120)
	assert.Equal(t, res.Active, ps.ActiveCount())
}

func TestAdaptiveWSP_TargetZero(t *testing.T) {
	ps := newTestPointSet(t, GenerateUniform(120, 2, 4), nil)
	res, err := AdaptiveWSP(ps, 0, false)
	require.NoError(t, err)

	assert.False(t, res.Exact)
	assert.GreaterOrEqual(t, res.Active, 1)
	assert.Equal(t, res.Active, ps.ActiveCount())
}

func TestAdaptiveWSP_VerboseLogging(t *testing.T) {
	points := GenerateUniform(100, 2, 8)

	run := func(verbose bool) string {
		var buf bytes.Buffer
		cfg := DefaultConfig()
		cfg.Logger = NewTextLogger(&buf, slog.LevelInfo)
		ps, err := NewPointSet(points, cfg)
		require.NoError(t, err)
		_, err = AdaptiveWSP(ps, 10, verbose)
		require.NoError(t, err)
		return buf.String()
	}

	assert.Contains(t, run(true), "adaptive iteration")
	assert.Empty(t, run(false))
}

func TestAdaptiveWSP_VerboseWithoutLogger(t *testing.T) {
	points := GenerateUniform(100, 2, 8)

	run := func(verbose bool) string {
		var buf bytes.Buffer
		ps, err := NewPointSet(points, DefaultConfig())
		require.NoError(t, err)
		ps.verboseOut = &buf
		_, err = AdaptiveWSP(ps, 10, verbose)
		require.NoError(t, err)
		return buf.String()
	}

	out := run(true)
	assert.Contains(t, out, "adaptive iteration")
	assert.Contains(t, out, "target=10")
	assert.Empty(t, run(false))
}

func TestAdaptiveWSP_HugeDistances(t *testing.T) {
	ps, err := NewPointSet([][]float64{{0}, {1e308}, {1.7e308}}, DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, 1.7e308, ps.MaxDistance())

	res, err := AdaptiveWSP(ps, 2, false)
	require.NoError(t, err)

	assert.False(t, math.IsNaN(res.Distance))
	assert.False(t, math.IsInf(res.Distance, 0))
	assert.GreaterOrEqual(t, res.Distance, ps.MinDistance())
	assert.LessOrEqual(t, res.Distance, ps.MaxDistance())
	assert.Equal(t, res.Active, ps.ActiveCount())
	assert.Less(t, res.Iterations, 2000)
}

func TestMidpoint(t *testing.T) {
	assert.Equal(t, 1.5, midpoint(1, 2))
	assert.InEpsilon(t, 1.2e308, midpoint(7e307, 1.7e308), 1e-12)
	assert.False(t, math.IsInf(midpoint(1e308, 1.7e308), 0))
}

func TestConverged(t *testing.T) {
	tests := []struct {
		name       string
		prev, next float64
		want       bool
	}{
		{"equal", 3, 3, true},
		{"infinite", math.Inf(1), math.Inf(1), true},
		{"far apart", 1, 2, false},
		{"within epsilon", 1, math.Nextafter(1, 2), true},
		{"large values", 1e308, math.Nextafter(1e308, math.Inf(1)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, converged(tt.prev, tt.next))
		})
	}
}
