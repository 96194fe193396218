package patterns

import "gonum.org/v1/gonum/mat"

// Inbound returns the p×p proportion of usable cases
//
//	I[j,k] = mr[j,k] / (mr[j,k] + mm[j,k])
//
// which is 1 when every record missing j is observed in k. High values mark
// k as a candidate predictor for imputing j.
func Inbound(d Dataset, labels []string) (*Table, error) {
	cols, p, err := pairsFor("Inbound", d, labels)
	if err != nil {
		return nil, err
	}
	return squareTable(p.Inbound(), cols), nil
}

// Outbound returns the p×p outbound statistic
//
//	O[j,k] = rm[j,k] / (rm[j,k] + rr[j,k])
//
// measuring how the observed data in j connect to the missing data in k.
func Outbound(d Dataset, labels []string) (*Table, error) {
	cols, p, err := pairsFor("Outbound", d, labels)
	if err != nil {
		return nil, err
	}
	return squareTable(p.Outbound(), cols), nil
}

// Influx returns one row with the influx coefficient of every variable:
// Σk mr[j,k] / Σk (mr[j,k] + rr[j,k]). It is 0 for a completely observed
// variable and 1 for a completely missing one.
func Influx(d Dataset, labels []string) (*Table, error) {
	cols, p, err := pairsFor("Influx", d, labels)
	if err != nil {
		return nil, err
	}
	return flatTable(p.Influx(), cols), nil
}

// Outflux returns one row with the outflux coefficient of every variable:
// Σk rm[j,k] / Σk (rm[j,k] + mm[j,k]). It is 1 for a completely observed
// variable and 0 for a completely missing one.
func Outflux(d Dataset, labels []string) (*Table, error) {
	cols, p, err := pairsFor("Outflux", d, labels)
	if err != nil {
		return nil, err
	}
	return flatTable(p.Outflux(), cols), nil
}

// Inbound computes mr / (mr + mm) element-wise.
func (p *Pairs) Inbound() *mat.Dense { return elementRatio(p.MR, p.MM) }

// Outbound computes rm / (rm + rr) element-wise.
func (p *Pairs) Outbound() *mat.Dense { return elementRatio(p.RM, p.RR) }

// Influx computes the per-variable influx vector.
func (p *Pairs) Influx() []float64 { return rowRatio(p.MR, p.RR) }

// Outflux computes the per-variable outflux vector.
func (p *Pairs) Outflux() []float64 { return rowRatio(p.RM, p.MM) }

// elementRatio returns num / (num + other) element-wise, NaN where both are 0.
func elementRatio(num, other *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Apply(func(i, j int, v float64) float64 {
		return ratio(v, v+other.At(i, j))
	}, num)
	return &out
}

// rowRatio returns Σ num[j,·] / Σ (num[j,·] + other[j,·]) for every row j.
func rowRatio(num, other *mat.Dense) []float64 {
	rows, _ := num.Dims()
	out := make([]float64, rows)
	for j := 0; j < rows; j++ {
		top := nanSum(mat.Row(nil, j, num))
		out[j] = ratio(top, top+nanSum(mat.Row(nil, j, other)))
	}
	return out
}
