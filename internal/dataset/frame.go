package dataset

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrNoHeader is returned for a source without a header row.
	ErrNoHeader = errors.New("dataset: missing header row")
	// ErrUnknownColumn is returned when a selected column is not in the header.
	ErrUnknownColumn = errors.New("dataset: unknown column")
	// ErrSheetNotFound is returned when an XLSX sheet cannot be resolved.
	ErrSheetNotFound = errors.New("dataset: sheet not found")
)

// DefaultMissingTokens are the cell values treated as missing when no other
// set is configured. An empty (or all-whitespace) cell is always missing.
var DefaultMissingTokens = []string{"NA", "N/A", "n/a", "#N/A", "NaN", "nan", "null", "NULL", "None"}

// Options controls how a tabular source is read into a Frame.
type Options struct {
	// MaxRows limits rows kept; 0 means unlimited.
	MaxRows int
	// Delimiter for CSV. If 0, '\t' for .tsv files and ',' otherwise.
	Delimiter rune
	// MissingTokens lists cell values (after trimming) that mark a missing cell.
	MissingTokens []string
	// Columns selects and orders a subset of header columns; empty keeps all.
	Columns []string
	// XLSX sheet selection. SheetName wins; SheetIndex is 1-based.
	SheetName  string
	SheetIndex int
	// Logger receives debug output; nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns reasonable defaults for reading a dataset.
func DefaultOptions() Options {
	return Options{
		MaxRows:       100000,
		MissingTokens: append([]string(nil), DefaultMissingTokens...),
		SheetIndex:    1,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Frame is a header plus string cells read from a tabular source. It
// implements patterns.Dataset.
type Frame struct {
	Name string
	// Columns holds the header labels in cell order.
	Columns []string
	// Rows counts data rows seen in the source; Processed counts rows kept.
	Rows      int
	Processed int
	Warnings  []string

	cells   [][]string
	missing map[string]struct{}
}

// NewFrame builds a frame from a header and data rows. Short rows are padded
// with empty cells, long rows truncated, and rows past opt.MaxRows counted
// but dropped.
func NewFrame(name string, header []string, rows [][]string, opt Options) (*Frame, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoHeader)
	}
	f := &Frame{
		Name:    name,
		Columns: make([]string, len(header)),
		missing: tokenSet(opt.MissingTokens),
	}
	for j, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("column_%d", j+1)
		}
		f.Columns[j] = h
	}
	maxRows := opt.MaxRows
	if maxRows <= 0 {
		maxRows = math.MaxInt
	}
	for _, rec := range rows {
		f.Rows++
		if f.Processed >= maxRows {
			continue
		}
		f.Processed++
		f.cells = append(f.cells, normalizeRow(rec, len(header)))
	}
	if f.Processed < f.Rows {
		f.Warnings = append(f.Warnings, fmt.Sprintf("processed only %d/%d rows due to MaxRows", f.Processed, f.Rows))
	}
	if len(opt.Columns) > 0 {
		return f.Select(opt.Columns)
	}
	return f, nil
}

// Dims returns the number of kept rows and columns.
func (f *Frame) Dims() (rows, cols int) { return len(f.cells), len(f.Columns) }

// IsMissing reports whether cell (i, j) is empty or a configured missing token.
func (f *Frame) IsMissing(i, j int) bool {
	v := strings.TrimSpace(f.cells[i][j])
	if v == "" {
		return true
	}
	_, ok := f.missing[v]
	return ok
}

// Cell returns the raw value of cell (i, j).
func (f *Frame) Cell(i, j int) string { return f.cells[i][j] }

// Labels returns a copy of the column labels.
func (f *Frame) Labels() []string { return append([]string(nil), f.Columns...) }

// Select returns a frame holding only the named columns, in the given order.
// Names match header labels case-insensitively.
func (f *Frame) Select(names []string) (*Frame, error) {
	index := make(map[string]int, len(f.Columns))
	for j, c := range f.Columns {
		key := strings.ToLower(c)
		if _, dup := index[key]; !dup {
			index[key] = j
		}
	}
	pick := make([]int, 0, len(names))
	for _, n := range names {
		j, ok := index[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return nil, fmt.Errorf("%q in %s: %w", n, f.Name, ErrUnknownColumn)
		}
		pick = append(pick, j)
	}
	out := &Frame{
		Name:      f.Name,
		Columns:   make([]string, len(pick)),
		Rows:      f.Rows,
		Processed: f.Processed,
		Warnings:  append([]string(nil), f.Warnings...),
		cells:     make([][]string, len(f.cells)),
		missing:   f.missing,
	}
	for c, j := range pick {
		out.Columns[c] = f.Columns[j]
	}
	for i, row := range f.cells {
		sel := make([]string, len(pick))
		for c, j := range pick {
			sel[c] = row[j]
		}
		out.cells[i] = sel
	}
	return out, nil
}

// MissingCounts returns the number of missing cells per column.
func (f *Frame) MissingCounts() []int {
	out := make([]int, len(f.Columns))
	for i := range f.cells {
		for j := range f.Columns {
			if f.IsMissing(i, j) {
				out[j]++
			}
		}
	}
	return out
}

func normalizeRow(rec []string, width int) []string {
	row := make([]string, width)
	copy(row, rec)
	return row
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			set[t] = struct{}{}
		}
	}
	return set
}
