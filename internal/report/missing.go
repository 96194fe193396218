package report

import (
	"github.com/montanaflynn/stats"

	"github.com/KaramelBytes/missflux/internal/dataset"
)

// ColumnMissing is the missing-cell count of one column.
type ColumnMissing struct {
	Name  string
	Count int
	Rate  float64
}

// MissingSummary aggregates per-column missing rates.
type MissingSummary struct {
	Columns []ColumnMissing
	// Cells is the fraction of all cells that are missing.
	Cells  float64
	Mean   float64
	Median float64
	Max    float64
	// Complete counts columns without any missing cell.
	Complete int
}

func summarizeMissing(f *dataset.Frame) MissingSummary {
	rows, _ := f.Dims()
	counts := f.MissingCounts()
	var s MissingSummary
	rates := make(stats.Float64Data, len(counts))
	total := 0
	for j, c := range counts {
		rate := 0.0
		if rows > 0 {
			rate = float64(c) / float64(rows)
		}
		rates[j] = rate
		total += c
		if c == 0 {
			s.Complete++
		}
		s.Columns = append(s.Columns, ColumnMissing{Name: f.Columns[j], Count: c, Rate: rate})
	}
	if len(rates) == 0 {
		return s
	}
	if rows > 0 {
		s.Cells = float64(total) / float64(rows*len(counts))
	}
	// Errors only occur on empty input, ruled out above.
	s.Mean, _ = rates.Mean()
	s.Median, _ = rates.Median()
	s.Max, _ = rates.Max()
	return s
}
