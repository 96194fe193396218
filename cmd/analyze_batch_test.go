package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAnalyzeBatch_OutputDirAvoidsOverwrite(t *testing.T) {
	home := isolateHome(t)

	// Two CSV files with the same basename in different directories
	d1 := filepath.Join(home, "d1")
	d2 := filepath.Join(home, "d2")
	for _, d := range []string{d1, d2} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
	writeFile(t, filepath.Join(d1, "metrics.csv"), "col1,col2\nA,1\nB,\nC,3\n")
	writeFile(t, filepath.Join(d2, "metrics.csv"), "col1,col2\nA,\n,2\nC,3\n")
	writeFile(t, filepath.Join(d2, "notes.txt"), "ignored")

	outDir := filepath.Join(home, "reports")
	out := runCmd(t, "analyze-batch", filepath.Join(home, "d*", "*"), "--output-dir", outDir, "--sections", "flux")
	if !strings.Contains(out, "[1/2] Processing metrics.csv...") || !strings.Contains(out, "[2/2] Processing metrics.csv...") {
		t.Fatalf("expected progress lines, got:\n%s", out)
	}

	if !strings.Contains(out, "⚠ Detected existing report, writing to metrics__2.flux.md to avoid overwrite.") {
		t.Fatalf("expected collision notice on command output, got:\n%s", out)
	}

	b1 := filepath.Join(outDir, "metrics.flux.md")
	b2 := filepath.Join(outDir, "metrics__2.flux.md")
	for _, p := range []string{b1, b2} {
		body, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("missing report %s: %v", p, err)
		}
		if !strings.Contains(string(body), "[FLUX]") {
			t.Fatalf("expected FLUX section in %s", p)
		}
		if strings.Contains(string(body), "[PATTERN]") {
			t.Fatalf("unexpected PATTERN section in %s", p)
		}
	}
}

func TestAnalyzeBatch_QuietJSON(t *testing.T) {
	home := isolateHome(t)
	writeFile(t, filepath.Join(home, "a.csv"), "x,y\n1,\n,2\n")
	writeFile(t, filepath.Join(home, "b.tsv"), "x\ty\n1\t\n3\t4\n")
	outDir := filepath.Join(home, "out")

	out := runCmd(t, "analyze-batch", filepath.Join(home, "*.csv"), filepath.Join(home, "*.tsv"),
		"--output-dir", outDir, "--format", "json", "--quiet")
	if strings.TrimSpace(out) != "" {
		t.Fatalf("expected no output in quiet mode, got %q", out)
	}
	for _, name := range []string{"a.flux.json", "b.flux.json"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}
}

func TestAnalyzeBatch_NoMatches(t *testing.T) {
	home := isolateHome(t)
	if _, err := tryCmd("analyze-batch", filepath.Join(home, "*.csv")); err == nil {
		t.Fatalf("expected error when nothing matched")
	}
}

func TestAnalyzeBatch_ParallelKeepsInputOrder(t *testing.T) {
	home := isolateHome(t)
	for _, name := range []string{"c.csv", "a.csv", "b.csv"} {
		writeFile(t, filepath.Join(home, name), "x,y\n1,\n,2\n3,4\n")
	}

	out := runCmd(t, "analyze-batch", filepath.Join(home, "*.csv"), "--jobs", "3", "--sections", "influx")
	ia := strings.Index(out, "File: a.csv")
	ib := strings.Index(out, "File: b.csv")
	ic := strings.Index(out, "File: c.csv")
	if ia < 0 || ib < 0 || ic < 0 {
		t.Fatalf("expected three reports, got:\n%s", out)
	}
	if !(ia < ib && ib < ic) {
		t.Fatalf("reports out of input order:\n%s", out)
	}
}
