package patterns

import "strconv"

// validate rejects datasets that pairwise statistics are undefined on and
// resolves the output labels. A nil labels slice falls back to positional
// labels "0".."p-1"; a non-nil one must match the column count.
func validate(op string, d Dataset, labels []string) ([]string, error) {
	nl := -1
	if labels != nil {
		nl = len(labels)
	}
	if d == nil {
		return nil, &DimensionError{Op: op, Labels: nl, Reason: "dataset is nil"}
	}
	rows, cols := d.Dims()
	var reason string
	switch {
	case cols < 2:
		reason = "at least 2 columns are required"
	case rows < 1:
		reason = "at least 1 row is required"
	case labels != nil && len(labels) != cols:
		reason = "label count does not match column count"
	}
	if reason != "" {
		return nil, &DimensionError{Op: op, Rows: rows, Cols: cols, Labels: nl, Reason: reason}
	}
	if labels == nil {
		return positionalLabels(cols), nil
	}
	out := make([]string, cols)
	copy(out, labels)
	return out, nil
}

func positionalLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}
