package patterns

import "gonum.org/v1/gonum/mat"

// Pairs holds the four p×p pair count matrices. Entry [j,k] counts rows where
//
//	RR: j observed, k observed
//	RM: j observed, k missing
//	MR: j missing,  k observed
//	MM: j missing,  k missing
//
// RR+RM+MR+MM is n everywhere, and MR is the transpose of RM.
type Pairs struct {
	RR, RM, MR, MM *mat.Dense
}

// ComputePairs returns the raw pair count matrices of d.
func ComputePairs(d Dataset) (*Pairs, error) {
	if _, err := validate("ComputePairs", d, nil); err != nil {
		return nil, err
	}
	m := Missingness(d)
	return crossPairs(m, observed(m)), nil
}

// MDPairs returns the rr, rm, mr and mm matrices of d as square tables
// labeled on both axes. A nil labels slice selects positional labels.
func MDPairs(d Dataset, labels []string) (map[string]*Table, error) {
	cols, p, err := pairsFor("MDPairs", d, labels)
	if err != nil {
		return nil, err
	}
	return p.Tables(cols), nil
}

// Tables labels the four matrices with labels, keyed "rr", "rm", "mr", "mm".
func (p *Pairs) Tables(labels []string) map[string]*Table {
	return map[string]*Table{
		"rr": squareTable(p.RR, labels),
		"rm": squareTable(p.RM, labels),
		"mr": squareTable(p.MR, labels),
		"mm": squareTable(p.MM, labels),
	}
}

// crossPairs builds the pair counts as cross-products of the 0/1 indicators.
func crossPairs(m, r *mat.Dense) *Pairs {
	p := &Pairs{RR: new(mat.Dense), RM: new(mat.Dense), MR: new(mat.Dense), MM: new(mat.Dense)}
	p.RR.Mul(r.T(), r)
	p.MM.Mul(m.T(), m)
	p.MR.Mul(m.T(), r)
	p.RM.Mul(r.T(), m)
	return p
}

// pairsFor validates d and computes its pair counts.
func pairsFor(op string, d Dataset, labels []string) ([]string, *Pairs, error) {
	cols, err := validate(op, d, labels)
	if err != nil {
		return nil, nil, err
	}
	m := Missingness(d)
	return cols, crossPairs(m, observed(m)), nil
}
