package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KaramelBytes/missflux/internal/patterns"
)

// Markdown renders the report as plain-text sections with one Markdown table
// per statistic. Values are printed with precision decimals; integral values
// print without a fractional part and NaN prints as "NaN".
func (r *Report) Markdown(precision int) string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Name))
	}
	if r.Processed > 0 && r.Processed < r.Rows {
		b.WriteString(fmt.Sprintf("Rows: ~%d (processed %d)\n", r.Rows, r.Processed))
	} else {
		b.WriteString(fmt.Sprintf("Rows: %d\n", r.Rows))
	}
	b.WriteString(fmt.Sprintf("Columns: %d (%s)\n", len(r.Columns), strings.Join(safeNames(r.Columns), ", ")))
	if r.ID != "" {
		b.WriteString(fmt.Sprintf("Report: %s\n", r.ID))
	}
	writeMissing(&b, r.Missing)
	for _, s := range r.Sections {
		b.WriteString(fmt.Sprintf("\n[%s]\n", s.Title))
		writeTable(&b, s.Table, precision, safeName)
	}
	if len(r.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range r.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func writeMissing(b *strings.Builder, m MissingSummary) {
	if len(m.Columns) == 0 {
		return
	}
	b.WriteString("\n[MISSING VALUES]\n")
	for _, c := range m.Columns {
		b.WriteString(fmt.Sprintf("- %s: %d missing (%.1f%%)\n", safeName(c.Name), c.Count, c.Rate*100))
	}
	b.WriteString(fmt.Sprintf("Overall: %.1f%% of cells missing; per-column mean %.1f%%, median %.1f%%, max %.1f%%; %d/%d columns complete\n",
		m.Cells*100, m.Mean*100, m.Median*100, m.Max*100, m.Complete, len(m.Columns)))
}

// writeTable prints t as a Markdown table; label formats row and column labels.
func writeTable(b *strings.Builder, t *patterns.Table, precision int, label func(string) string) {
	b.WriteString("| ")
	for _, c := range t.Columns {
		b.WriteString(" | ")
		b.WriteString(label(c))
	}
	b.WriteString(" |\n|---")
	for range t.Columns {
		b.WriteString("|---")
	}
	b.WriteString("|\n")
	rows, cols := t.Dims()
	for i := 0; i < rows; i++ {
		b.WriteString("| ")
		b.WriteString(label(t.Index[i]))
		for j := 0; j < cols; j++ {
			b.WriteString(" | ")
			b.WriteString(FormatValue(t.At(i, j), precision))
		}
		b.WriteString(" |\n")
	}
}

// FormatValue prints v the way Markdown tables show it.
func FormatValue(v float64, precision int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 0):
		if v > 0 {
			return "+Inf"
		}
		return "-Inf"
	case v == math.Trunc(v) && math.Abs(v) < 1e15:
		return strconv.FormatInt(int64(v), 10)
	}
	if precision < 0 {
		precision = -1
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}

func safeNames(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = safeName(s)
	}
	return out
}
