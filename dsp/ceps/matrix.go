package ceps

import "gonum.org/v1/gonum/mat"

// Matrix is a row-major feature matrix: one row per frame.
// Unlike a gonum matrix it may have zero rows while keeping its width.
type Matrix struct {
	Rows int
	Cols int
	Data []float64
}

// NewMatrix returns a zero-filled rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	rows = max(rows, 0)
	cols = max(cols, 0)
	return &Matrix{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// Row returns frame i as a slice aliasing the matrix storage.
func (m *Matrix) Row(i int) []float64 {
	end := (i + 1) * m.Cols
	return m.Data[i*m.Cols : end : end]
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.Data[i*m.Cols+j]
}

// Col copies column j into dst, allocating when dst is too short.
func (m *Matrix) Col(j int, dst []float64) []float64 {
	if cap(dst) < m.Rows {
		dst = make([]float64, m.Rows)
	}
	dst = dst[:m.Rows]
	for i := range dst {
		dst[i] = m.Data[i*m.Cols+j]
	}
	return dst
}

// Dense returns a gonum view sharing storage with m, or nil when m is empty.
func (m *Matrix) Dense() *mat.Dense {
	if m.Rows == 0 || m.Cols == 0 {
		return nil
	}
	return mat.NewDense(m.Rows, m.Cols, m.Data)
}

func (m *Matrix) hasShape(rows, cols int) bool {
	return m.Rows == rows && m.Cols == cols && len(m.Data) == rows*cols
}
