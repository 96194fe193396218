package dataset

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ReadXLSX reads one sheet of an .xlsx workbook into a Frame. The sheet is
// chosen by opt.SheetName (case-insensitive) or else by the 1-based
// opt.SheetIndex; the first row of the sheet is the header.
func ReadXLSX(path string, opt Options) (*Frame, error) {
	start := time.Now()
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer wb.Close()

	sheet, err := resolveSheet(wb.GetSheetList(), filepath.Base(path), opt.SheetName, opt.SheetIndex)
	if err != nil {
		return nil, err
	}
	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	name := filepath.Base(path)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s (sheet: %s): %w", name, sheet, ErrNoHeader)
	}
	frame, err := NewFrame(name, rows[0], rows[1:], opt)
	if err != nil {
		return nil, err
	}
	opt.logger().Debug("xlsx loaded",
		zap.String("path", path),
		zap.String("sheet", sheet),
		zap.Int("rows", frame.Rows),
		zap.Int("cols", len(frame.Columns)),
		zap.Duration("elapsed", time.Since(start)))
	return frame, nil
}

func resolveSheet(sheets []string, book, name string, index int) (string, error) {
	if name != "" {
		for _, s := range sheets {
			if strings.EqualFold(s, name) {
				return s, nil
			}
		}
		return "", fmt.Errorf("sheet '%s' in workbook '%s' (available: %s): %w",
			name, book, strings.Join(sheets, ", "), ErrSheetNotFound)
	}
	if index <= 0 {
		index = 1
	}
	if index > len(sheets) {
		return "", fmt.Errorf("sheet index %d in workbook '%s' (has %d sheets): %w",
			index, book, len(sheets), ErrSheetNotFound)
	}
	return sheets[index-1], nil
}
