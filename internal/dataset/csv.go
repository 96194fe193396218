package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ReadCSV reads a CSV or TSV file into a Frame. The first record is the header.
func ReadCSV(path string, opt Options) (*Frame, error) {
	start := time.Now()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	// Leading-space trimming would swallow empty tab-separated fields.
	r.TrimLeadingSpace = delim != '\t'
	r.Comma = delim

	name := filepath.Base(path)
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", name, ErrNoHeader)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	var rows [][]string
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, rec)
	}
	frame, err := NewFrame(name, header, rows, opt)
	if err != nil {
		return nil, err
	}
	opt.logger().Debug("csv loaded",
		zap.String("path", path),
		zap.Int("rows", frame.Rows),
		zap.Int("cols", len(frame.Columns)),
		zap.Duration("elapsed", time.Since(start)))
	return frame, nil
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}
