package patterns

import "math"

// ratio divides num by den and yields NaN, not ±Inf, when den is zero.
func ratio(num, den float64) float64 {
	if den == 0 {
		return math.NaN()
	}
	return num / den
}

// nanSum adds vals, treating NaN as zero. An all-NaN slice sums to 0.
func nanSum(vals []float64) float64 {
	var s float64
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		s += v
	}
	return s
}
