package wsp_test

import (
	"fmt"

	"github.com/TrevorS/wsp"
)

func ExamplePointSet_Walk() {
	cfg := wsp.DefaultConfig()
	cfg.Metric = wsp.SquaredEuclideanMetric{}

	ps, err := wsp.NewPointSet([][]float64{{0, 0}, {1, 0.1}, {1, 1}, {2, 1}}, cfg)
	if err != nil {
		panic(err)
	}
	if err := ps.Walk(1.0, 1); err != nil {
		panic(err)
	}

	fmt.Println(ps.ActiveCount())
	fmt.Println(ps.Remaining())
	// Output:
	// 3
	// [[0 0] [1 0.1] [2 1]]
}

func ExampleAdaptiveWSP() {
	ps, err := wsp.NewPointSet([][]float64{{0}, {1}}, wsp.DefaultConfig())
	if err != nil {
		panic(err)
	}

	res, err := wsp.AdaptiveWSP(ps, 1, false)
	if err != nil {
		panic(err)
	}
	fmt.Printf("distance=%g active=%d exact=%v\n", res.Distance, res.Active, res.Exact)
	// Output:
	// distance=1 active=2 exact=false
}
