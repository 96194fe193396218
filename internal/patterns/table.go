package patterns

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Table is a labeled numeric result: Data[i, j] belongs to row Index[i] and
// column Columns[j].
type Table struct {
	Index   []string
	Columns []string
	Data    *mat.Dense
}

// squareTable labels both axes of a p×p matrix with the same labels.
func squareTable(m mat.Matrix, labels []string) *Table {
	return &Table{
		Index:   cloneStrings(labels),
		Columns: cloneStrings(labels),
		Data:    mat.DenseCopyOf(m),
	}
}

// flatTable pivots a per-variable vector into a single row labeled "0".
func flatTable(v []float64, labels []string) *Table {
	data := make([]float64, len(v))
	copy(data, v)
	return &Table{
		Index:   []string{"0"},
		Columns: cloneStrings(labels),
		Data:    mat.NewDense(1, len(data), data),
	}
}

// Dims returns the number of rows and columns.
func (t *Table) Dims() (rows, cols int) { return t.Data.Dims() }

// At returns the value at row i, column j.
func (t *Table) At(i, j int) float64 { return t.Data.At(i, j) }

// Row returns a copy of row i.
func (t *Table) Row(i int) []float64 { return mat.Row(nil, i, t.Data) }

// Lookup returns the value at the named row and column. When a label occurs
// more than once the first occurrence wins.
func (t *Table) Lookup(row, col string) (float64, error) {
	i := indexOf(t.Index, row)
	if i < 0 {
		return 0, fmt.Errorf("row %q: %w", row, ErrUnknownLabel)
	}
	j := indexOf(t.Columns, col)
	if j < 0 {
		return 0, fmt.Errorf("column %q: %w", col, ErrUnknownLabel)
	}
	return t.Data.At(i, j), nil
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) ([]float64, error) {
	j := indexOf(t.Columns, name)
	if j < 0 {
		return nil, fmt.Errorf("column %q: %w", name, ErrUnknownLabel)
	}
	return mat.Col(nil, j, t.Data), nil
}

func indexOf(labels []string, s string) int {
	for i, l := range labels {
		if l == s {
			return i
		}
	}
	return -1
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
