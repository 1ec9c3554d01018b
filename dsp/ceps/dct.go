package ceps

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// buildDCT returns the nCeps x nFilters DCT-II basis. Row k holds
// cos(pi*k*(j+0.5)/nFilters); rows do not depend on nCeps, so shrinking
// nCeps keeps a prefix of the previous coefficients.
func buildDCT(p params) *mat.Dense {
	n := float64(p.nFilters)
	basis := mat.NewDense(p.nCeps, p.nFilters, nil)
	for k := 0; k < p.nCeps; k++ {
		row := basis.RawRowView(k)
		for j := range row {
			row[j] = math.Cos(math.Pi * float64(k) * (float64(j) + 0.5) / n)
		}
		if p.dctNorm {
			vecmath.ScaleBlock(row, row, dctScale(k, p.nFilters))
		}
	}
	return basis
}

// dctScale is the orthonormal DCT-II factor for coefficient k.
func dctScale(k, n int) float64 {
	if k == 0 {
		return math.Sqrt(1 / float64(n))
	}
	return math.Sqrt(2 / float64(n))
}

// transformDCT writes basis * logFbank into dst.
func transformDCT(basis mat.Matrix, logFbank mat.Vector, dst *mat.VecDense) {
	dst.MulVec(basis, logFbank)
}
