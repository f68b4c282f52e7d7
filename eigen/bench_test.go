// Package eigen_test provides benchmarks for the symmetric eigenvalue
// pipeline, using deterministic random fill for Dense matrices.
package eigen_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spectra/eigen"
	"github.com/katalvlaran/spectra/matrix"
)

// benchSizes are the matrix orders to benchmark.
var benchSizes = []int{16, 64, 128}

// sink to defeat dead-code elimination
var sinkV []float64

// benchSymmetric fills an n×n Dense with a deterministic symmetric pattern.
func benchSymmetric(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := rng.NormFloat64()
			if err = m.Set(i, j, v); err != nil {
				b.Fatal(err)
			}
			if err = m.Set(j, i, v); err != nil {
				b.Fatal(err)
			}
		}
	}

	return m
}

func BenchmarkSymmetricEigenvalues(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := benchSymmetric(b, n, 1337)
			dst := make([]float64, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := eigen.SymmetricEigenvalues(m, n, dst)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkSymmetricEigenvaluesLower(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := benchSymmetric(b, n, 4242)
			dst := make([]float64, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := eigen.SymmetricEigenvalues(m, n, dst, eigen.WithTriangle(eigen.Lower))
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}
