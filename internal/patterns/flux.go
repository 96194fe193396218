package patterns

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// FluxColumns is the column order of FluxReport.Table.
var FluxColumns = []string{"pobs", "influx", "outflux", "ainb", "aout"}

// FluxReport summarizes every variable of a dataset. All slices are indexed
// like Labels.
type FluxReport struct {
	Labels []string
	// PObs is the proportion of observed cells.
	PObs []float64
	// Influx and Outflux are the connectivity coefficients.
	Influx  []float64
	Outflux []float64
	// AInb and AOut average the inbound and outbound rows over the other
	// p-1 variables, with NaN contributing nothing.
	AInb []float64
	AOut []float64
}

// Flux computes the flux report of d. A nil labels slice selects positional
// labels.
func Flux(d Dataset, labels []string) (*FluxReport, error) {
	cols, err := validate("Flux", d, labels)
	if err != nil {
		return nil, err
	}
	m := Missingness(d)
	r := observed(m)
	p := crossPairs(m, r)

	_, width := r.Dims()
	pobs := make([]float64, width)
	for j := range pobs {
		pobs[j] = stat.Mean(mat.Col(nil, j, r), nil)
	}
	return &FluxReport{
		Labels:  cols,
		PObs:    pobs,
		Influx:  p.Influx(),
		Outflux: p.Outflux(),
		AInb:    offDiagonalMean(p.Inbound()),
		AOut:    offDiagonalMean(p.Outbound()),
	}, nil
}

// offDiagonalMean returns, per row j, the NaN-safe sum over k != j divided
// by p-1. Self pairs are 0 or NaN under both coefficient formulas, so
// skipping them leaves the sum unchanged.
func offDiagonalMean(m *mat.Dense) []float64 {
	rows, cols := m.Dims()
	out := make([]float64, rows)
	for j := 0; j < rows; j++ {
		row := mat.Row(nil, j, m)
		row[j] = math.NaN()
		out[j] = nanSum(row) / float64(cols-1)
	}
	return out
}

// Table lays the report out with one row per variable and FluxColumns as
// columns.
func (f *FluxReport) Table() *Table {
	n := len(f.Labels)
	width := len(FluxColumns)
	data := make([]float64, n*width)
	for j := 0; j < n; j++ {
		row := data[j*width : (j+1)*width]
		row[0] = f.PObs[j]
		row[1] = f.Influx[j]
		row[2] = f.Outflux[j]
		row[3] = f.AInb[j]
		row[4] = f.AOut[j]
	}
	return &Table{
		Index:   cloneStrings(f.Labels),
		Columns: cloneStrings(FluxColumns),
		Data:    mat.NewDense(n, width, data),
	}
}
