package wsp

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// GenerateUniform returns count points of dim coordinates each, drawn from
// the uniform distribution on [0, 1). The same arguments always produce the
// same points.
func GenerateUniform(count, dim int, seed uint64) [][]float64 {
	u := distuv.Uniform{Min: 0, Max: 1, Src: rand.NewPCG(seed, 0)}

	flat := make([]float64, count*dim)
	for i := range flat {
		flat[i] = u.Rand()
	}
	points := make([][]float64, count)
	for i := range points {
		points[i] = flat[i*dim : (i+1)*dim : (i+1)*dim]
	}
	return points
}
