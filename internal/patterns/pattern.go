package patterns

import (
	"cmp"
	"math/bits"
	"slices"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// PatternRow is one distinct missingness pattern.
type PatternRow struct {
	// Count is the number of dataset rows sharing the pattern.
	Count int
	// Pattern holds 1 for observed and 0 for missing, in PatternTable.Columns order.
	Pattern []int
	// NMis is the number of missing entries in the pattern itself.
	NMis int
}

// PatternTable lists the distinct row patterns of a dataset. Columns are
// ordered by ascending missing count (ties keep input order) and rows by the
// pattern read as a missing-coded bit string.
type PatternTable struct {
	Columns []string
	Rows    []PatternRow
}

// MDPattern extracts the canonical set of row missingness patterns of d.
// A nil labels slice selects positional labels.
func MDPattern(d Dataset, labels []string) (*PatternTable, error) {
	cols, err := validate("MDPattern", d, labels)
	if err != nil {
		return nil, err
	}
	m := Missingness(d)
	n, p := m.Dims()
	order := columnOrder(m)

	// One bit per reordered column, first column in the top bit of word 0,
	// so comparing words reads like comparing the digit strings.
	words := (p + 63) / 64
	keys := make([]uint64, n*words)
	key := func(i int) []uint64 { return keys[i*words : (i+1)*words] }
	for i := 0; i < n; i++ {
		k := key(i)
		for c, j := range order {
			if m.At(i, j) != 0 {
				k[c/64] |= 1 << (63 - uint(c%64))
			}
		}
	}

	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	slices.SortStableFunc(rows, func(a, b int) int { return slices.Compare(key(a), key(b)) })

	out := &PatternTable{Columns: make([]string, p)}
	for c, j := range order {
		out.Columns[c] = cols[j]
	}
	for start := 0; start < n; {
		k := key(rows[start])
		end := start + 1
		for end < n && slices.Equal(key(rows[end]), k) {
			end++
		}
		out.Rows = append(out.Rows, patternRow(k, p, end-start))
		start = end
	}
	return out, nil
}

// columnOrder returns column indices sorted by ascending missing count.
func columnOrder(m *mat.Dense) []int {
	n, p := m.Dims()
	totals := make([]float64, p)
	for j := 0; j < p; j++ {
		for i := 0; i < n; i++ {
			totals[j] += m.At(i, j)
		}
	}
	order := make([]int, p)
	for j := range order {
		order[j] = j
	}
	slices.SortStableFunc(order, func(a, b int) int { return cmp.Compare(totals[a], totals[b]) })
	return order
}

// patternRow decodes a missing-coded key into an observed-coded row.
func patternRow(key []uint64, p, count int) PatternRow {
	row := PatternRow{Count: count, Pattern: make([]int, p)}
	for _, w := range key {
		row.NMis += bits.OnesCount64(w)
	}
	for c := 0; c < p; c++ {
		if key[c/64]&(1<<(63-uint(c%64))) == 0 {
			row.Pattern[c] = 1
		}
	}
	return row
}

// Total returns the number of dataset rows covered by the table.
func (pt *PatternTable) Total() int {
	var n int
	for _, r := range pt.Rows {
		n += r.Count
	}
	return n
}

// Table lays the patterns out with columns count, <variables...>, nmis and
// positional row labels.
func (pt *PatternTable) Table() *Table {
	p := len(pt.Columns)
	width := p + 2
	data := make([]float64, len(pt.Rows)*width)
	index := make([]string, len(pt.Rows))
	for i, r := range pt.Rows {
		row := data[i*width : (i+1)*width]
		row[0] = float64(r.Count)
		for c, v := range r.Pattern {
			row[c+1] = float64(v)
		}
		row[width-1] = float64(r.NMis)
		index[i] = strconv.Itoa(i)
	}
	columns := make([]string, 0, width)
	columns = append(columns, "count")
	columns = append(columns, pt.Columns...)
	columns = append(columns, "nmis")
	return &Table{Index: index, Columns: columns, Data: mat.NewDense(len(pt.Rows), width, data)}
}
