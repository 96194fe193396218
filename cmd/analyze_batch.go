package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/KaramelBytes/missflux/internal/dataset"
	"github.com/KaramelBytes/missflux/internal/parser"
	"github.com/KaramelBytes/missflux/internal/report"
	"github.com/KaramelBytes/missflux/internal/utils"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	abFlags     readFlags
	abSections  []string
	abOutputDir string
	abQuiet     bool
	abJobs      int
)

var analyzeBatchCmd = &cobra.Command{
	Use:   "analyze-batch <files...>",
	Short: "Analyze multiple CSV/TSV/XLSX files with progress",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files := expandInputs(args)
		if len(files) == 0 {
			return fmt.Errorf("no input files matched")
		}

		opt, err := abFlags.options()
		if err != nil {
			return err
		}
		format, precision, err := abFlags.rendering()
		if err != nil {
			return err
		}
		sections, err := resolveSections(abSections)
		if err != nil {
			return err
		}
		if abOutputDir != "" {
			if err := utils.EnsureDir(abOutputDir); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
		}

		out := cmd.OutOrStdout()
		bodies, err := renderBatch(cmd.Context(), files, opt, sections, format, precision, out)
		if err != nil {
			return err
		}
		for i, path := range files {
			if abOutputDir == "" {
				if !abQuiet {
					fmt.Fprintln(out, strings.TrimRight(string(bodies[i]), "\n"))
				}
				continue
			}
			outFile := batchOutputPath(out, abOutputDir, path, opt.SheetName, extensionFor(format))
			if err := utils.WriteFileAtomic(outFile, bodies[i]); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			if !abQuiet {
				fmt.Fprintf(out, "✓ Wrote report to %s\n", outFile)
			}
		}
		return nil
	},
}

// renderBatch analyzes files on up to abJobs workers and returns the
// rendered reports in input order. The first failure cancels the rest.
func renderBatch(ctx context.Context, files []string, opt dataset.Options, sections []string, format string, precision int, out io.Writer) ([][]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	jobs := abJobs
	if jobs < 1 {
		jobs = 1
	}
	bodies := make([][]byte, len(files))
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	total := len(files)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !abQuiet {
				mu.Lock()
				fmt.Fprintf(out, "[%d/%d] Processing %s...\n", i+1, total, filepath.Base(path))
				mu.Unlock()
			}
			start := time.Now()
			frame, err := loadFrame(path, opt)
			if err != nil {
				return err
			}
			rep, err := report.Analyze(frame, sections, uuid.NewString())
			if err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(path), err)
			}
			body, err := rep.Render(format, precision)
			if err != nil {
				return err
			}
			logger.Debug("report rendered",
				zap.String("path", path),
				zap.String("id", rep.ID),
				zap.Duration("elapsed", time.Since(start)))
			bodies[i] = body
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bodies, nil
}

// expandInputs resolves globs, keeps literal paths that exist, drops
// duplicates and unsupported extensions, and sorts the result.
func expandInputs(args []string) []string {
	var files []string
	seen := map[string]struct{}{}
	for _, arg := range args {
		matches, _ := filepath.Glob(arg)
		if len(matches) == 0 {
			// treat as literal path if exists
			if _, err := os.Stat(arg); err == nil {
				matches = []string{arg}
			}
		}
		for _, m := range matches {
			if !parser.Supported(m) {
				continue
			}
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files
}

// batchOutputPath names the report after its source and never overwrites an
// existing file: collisions get a "__N" suffix starting at 2 and a notice on w.
func batchOutputPath(w io.Writer, dir, source, sheet, ext string) string {
	base := filepath.Base(source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if sheet != "" {
		stem = stem + "__sheet-" + slug(sheet)
	}
	outFile := utils.UniquePath(dir, stem, ".flux"+ext)
	if want := filepath.Join(dir, stem+".flux"+ext); outFile != want && !abQuiet {
		fmt.Fprintf(w, "⚠ Detected existing report, writing to %s to avoid overwrite.\n", filepath.Base(outFile))
	}
	return outFile
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' {
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "sheet"
	}
	return out
}

func extensionFor(format string) string {
	switch format {
	case "json":
		return ".json"
	case "yaml", "yml":
		return ".yaml"
	case "html":
		return ".html"
	}
	return ".md"
}

func init() {
	rootCmd.AddCommand(analyzeBatchCmd)
	addReadFlags(analyzeBatchCmd, &abFlags)
	analyzeBatchCmd.Flags().StringSliceVar(&abSections, "sections", nil, "comma-separated sections (default all)")
	analyzeBatchCmd.Flags().StringVar(&abOutputDir, "output-dir", "", "directory to write one report per input (default stdout)")
	analyzeBatchCmd.Flags().IntVar(&abJobs, "jobs", 1, "number of files analyzed concurrently")
	analyzeBatchCmd.Flags().BoolVar(&abQuiet, "quiet", false, "suppress progress and non-essential output")
}
