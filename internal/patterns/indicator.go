package patterns

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dataset is a tabular source that can tell which of its cells are missing.
// Rows are observations and columns are variables.
type Dataset interface {
	Dims() (rows, cols int)
	IsMissing(i, j int) bool
}

// Indicator is a boolean missingness matrix; true marks a missing cell.
// Rows shorter than the first row are padded with missing cells.
type Indicator [][]bool

// Dims returns the number of rows and the width of the first row.
func (m Indicator) Dims() (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// IsMissing reports whether cell (i, j) is missing.
func (m Indicator) IsMissing(i, j int) bool {
	if j >= len(m[i]) {
		return true
	}
	return m[i][j]
}

// Floats is a numeric dataset where NaN marks a missing cell.
// Rows shorter than the first row are padded with missing cells.
type Floats [][]float64

// Dims returns the number of rows and the width of the first row.
func (f Floats) Dims() (rows, cols int) {
	if len(f) == 0 {
		return 0, 0
	}
	return len(f), len(f[0])
}

// IsMissing reports whether cell (i, j) is NaN or absent.
func (f Floats) IsMissing(i, j int) bool {
	if j >= len(f[i]) {
		return true
	}
	return math.IsNaN(f[i][j])
}

// Missingness returns the n×p 0/1 matrix M with M[i,j] = 1 iff cell (i, j)
// of d is missing. d must have at least one row and one column.
func Missingness(d Dataset) *mat.Dense {
	rows, cols := d.Dims()
	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if d.IsMissing(i, j) {
				data[i*cols+j] = 1
			}
		}
	}
	return mat.NewDense(rows, cols, data)
}

// observed returns R = 1 - M.
func observed(m *mat.Dense) *mat.Dense {
	var r mat.Dense
	r.Apply(func(_, _ int, v float64) float64 { return 1 - v }, m)
	return &r
}
