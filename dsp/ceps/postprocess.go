package ceps

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"
)

// postProcess normalizes the static block of m and fills the derivative
// blocks. Rows already hold the static part.
func (c *Ceps) postProcess(m *Matrix) {
	if m.Rows == 0 {
		return
	}

	if c.p.meanNorm {
		n := c.p.nCeps
		if c.p.withEnergy && c.p.normEnergy {
			n++
		}
		dataZeroMean(m, n)
	}

	w := c.staticWidth()
	if c.p.withDelta {
		addDerivative(m, 0, w, w, c.p.deltaWin)
	}
	if c.p.withDeltaDelta {
		addDerivative(m, w, 2*w, w, c.p.deltaWin)
	}
}

// dataZeroMean subtracts the mean over all rows from each of the first n
// columns of m.
func dataZeroMean(m *Matrix, n int) {
	if m.Rows == 0 || n == 0 {
		return
	}

	col := make([]float64, m.Rows)
	means := make([]float64, n)
	for j := range means {
		col = m.Col(j, col)
		means[j] = -stat.Mean(col, nil)
	}
	for i := 0; i < m.Rows; i++ {
		vecmath.AddBlockInPlace(m.Row(i)[:n], means)
	}
}

// addDerivative writes the regression derivative of columns
// [src, src+width) into [dst, dst+width):
//
//	d[t] = sum_{k=1..win} k*(c[t+k] - c[t-k]) / (2*sum_{k=1..win} k^2)
//
// Frame indices outside [0, Rows-1] are clamped to the nearest valid frame.
// win == 0 yields zeros.
func addDerivative(m *Matrix, src, dst, width, win int) {
	last := m.Rows - 1
	if win == 0 {
		for t := 0; t <= last; t++ {
			clear(m.Row(t)[dst : dst+width])
		}
		return
	}

	var sum float64
	for k := 1; k <= win; k++ {
		sum += float64(k * k)
	}
	norm := 1 / (2 * sum)

	for t := 0; t <= last; t++ {
		out := m.Row(t)[dst : dst+width]
		clear(out)
		for k := 1; k <= win; k++ {
			next := m.Row(min(t+k, last))[src : src+width]
			prev := m.Row(max(t-k, 0))[src : src+width]
			fk := float64(k)
			for j := range out {
				out[j] += fk * (next[j] - prev[j])
			}
		}
		vecmath.ScaleBlock(out, out, norm)
	}
}
