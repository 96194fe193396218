package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/KaramelBytes/missflux/internal/dataset"
	"github.com/KaramelBytes/missflux/internal/parser"
	"github.com/KaramelBytes/missflux/internal/report"
	"github.com/KaramelBytes/missflux/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// readFlags are the input and output flags shared by every statistic command.
type readFlags struct {
	delimiter  string
	sheetName  string
	sheetIndex int
	maxRows    int
	na         []string
	columns    []string
	format     string
	precision  int
	output     string
}

func addReadFlags(c *cobra.Command, f *readFlags) {
	c.Flags().StringVar(&f.delimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' | 'auto' (default from config)")
	c.Flags().StringVar(&f.sheetName, "sheet-name", "", "XLSX: sheet name to analyze")
	c.Flags().IntVar(&f.sheetIndex, "sheet-index", 0, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	c.Flags().IntVar(&f.maxRows, "max-rows", -1, "maximum rows to process (0 = unlimited, default from config)")
	c.Flags().StringSliceVar(&f.na, "na", nil, "cell values treated as missing, replacing the configured set (empty cells are always missing)")
	c.Flags().StringSliceVar(&f.columns, "columns", nil, "comma-separated columns to analyze, in order")
	c.Flags().StringVar(&f.format, "format", "", "output format: markdown | json | yaml | html")
	c.Flags().IntVar(&f.precision, "precision", -1, "decimal places in Markdown tables")
}

func addOutputFlag(c *cobra.Command, f *readFlags) {
	c.Flags().StringVarP(&f.output, "output", "o", "", "optional path to write the report")
}

// options merges flags over the loaded configuration.
func (f *readFlags) options() (dataset.Options, error) {
	s := settings()
	opt := dataset.DefaultOptions()
	opt.Logger = logger
	if len(s.MissingTokens) > 0 {
		opt.MissingTokens = s.MissingTokens
	}
	if len(f.na) > 0 {
		opt.MissingTokens = f.na
	}
	// 0 means unlimited in both the config and the flag; the flag's -1 defers.
	if s.MaxRows >= 0 {
		opt.MaxRows = s.MaxRows
	}
	if f.maxRows >= 0 {
		opt.MaxRows = f.maxRows
	}
	if s.SheetIndex > 0 {
		opt.SheetIndex = s.SheetIndex
	}
	if f.sheetIndex > 0 {
		opt.SheetIndex = f.sheetIndex
	}
	opt.SheetName = f.sheetName
	opt.Columns = f.columns

	delim := s.Delimiter
	if f.delimiter != "" {
		delim = f.delimiter
	}
	r, err := parseDelimiter(delim)
	if err != nil {
		return opt, err
	}
	opt.Delimiter = r
	return opt, nil
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "", "auto":
		return 0, nil
	case ",":
		return ',', nil
	case "\t", "tab":
		return '\t', nil
	case ";":
		return ';', nil
	case "|":
		return '|', nil
	}
	return 0, fmt.Errorf("unsupported --delimiter: %s", s)
}

// rendering resolves output format and precision from flags and config.
func (f *readFlags) rendering() (string, int, error) {
	s := settings()
	format := s.Format
	if f.format != "" {
		format = f.format
	}
	if !report.ValidFormat(format) {
		return "", 0, fmt.Errorf("unsupported --format: %s (use markdown|json|yaml|html)", format)
	}
	precision := s.Precision
	if f.precision >= 0 {
		precision = f.precision
	}
	return strings.ToLower(format), precision, nil
}

func loadFrame(path string, opt dataset.Options) (*dataset.Frame, error) {
	start := time.Now()
	f, err := parser.ReadFile(path, opt)
	if err != nil {
		return nil, err
	}
	logger.Debug("dataset ready",
		zap.String("path", path),
		zap.Int("rows", f.Processed),
		zap.Int("cols", len(f.Columns)),
		zap.Duration("elapsed", time.Since(start)))
	return f, nil
}

// writeOutput writes to path when set, otherwise to the command's stdout.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(data), "\n"))
		return nil
	}
	if err := utils.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote report to %s\n", path)
	return nil
}
