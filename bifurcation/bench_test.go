package bifurcation_test

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cco/bifurcation"
	"github.com/katalvlaran/cco/hemo"
	"github.com/katalvlaran/cco/tree"
)

func benchmarkOptimize(b *testing.B, m bifurcation.Method) {
	p := hemo.DefaultParams()
	n, err := tree.NewNetwork(r3.Vec{}, r3.Vec{Z: 10}, p)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bf, err := bifurcation.New(n, 0, r3.Vec{X: 5, Z: 5}, p)
		if err != nil {
			b.Fatal(err)
		}
		_, _ = bf.Optimize(bifurcation.WithMethod(m))
	}
}

func BenchmarkOptimize_NelderMead(b *testing.B) { benchmarkOptimize(b, bifurcation.NelderMead) }

func BenchmarkOptimize_Centroid(b *testing.B) { benchmarkOptimize(b, bifurcation.Centroid) }
