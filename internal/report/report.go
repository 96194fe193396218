// Package report assembles missingness statistics for a loaded dataset and
// renders them as Markdown, JSON or YAML.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KaramelBytes/missflux/internal/dataset"
	"github.com/KaramelBytes/missflux/internal/patterns"
)

// Section names accepted by Analyze, in report order.
const (
	SectionPairs    = "pairs"
	SectionPattern  = "pattern"
	SectionInbound  = "inbound"
	SectionOutbound = "outbound"
	SectionInflux   = "influx"
	SectionOutflux  = "outflux"
	SectionFlux     = "flux"
)

// AllSections lists every section in the order they are rendered.
var AllSections = []string{
	SectionPairs, SectionPattern, SectionInbound, SectionOutbound,
	SectionInflux, SectionOutflux, SectionFlux,
}

var (
	// ErrUnknownSection is returned for a section name outside AllSections.
	ErrUnknownSection = errors.New("unknown report section")
	// ErrUnknownFormat is returned by Render for an unsupported output format.
	ErrUnknownFormat = errors.New("unknown output format")
)

// Section is one titled result table.
type Section struct {
	Title string
	Table *patterns.Table
}

// Report is the outcome of analyzing one dataset.
type Report struct {
	ID        string
	Name      string
	Rows      int
	Processed int
	Columns   []string
	Missing   MissingSummary
	Sections  []Section
	Warnings  []string
}

// ParseSections normalizes a user-supplied section list. Empty input selects
// all sections; duplicates are dropped and the canonical order is kept.
func ParseSections(names []string) ([]string, error) {
	if len(names) == 0 {
		return append([]string(nil), AllSections...), nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if !isSection(n) {
			return nil, fmt.Errorf("%q: %w", n, ErrUnknownSection)
		}
		want[n] = true
	}
	var out []string
	for _, s := range AllSections {
		if want[s] {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), AllSections...), nil
	}
	return out, nil
}

func isSection(name string) bool {
	for _, s := range AllSections {
		if s == name {
			return true
		}
	}
	return false
}

// Analyze computes the requested sections for f. A nil sections slice
// selects every section.
func Analyze(f *dataset.Frame, sections []string, id string) (*Report, error) {
	sections, err := ParseSections(sections)
	if err != nil {
		return nil, err
	}
	labels := f.Labels()
	r := &Report{
		ID:        id,
		Name:      f.Name,
		Rows:      f.Rows,
		Processed: f.Processed,
		Columns:   labels,
		Missing:   summarizeMissing(f),
		Warnings:  append([]string(nil), f.Warnings...),
	}
	for _, s := range sections {
		got, err := compute(s, f, labels)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s, err)
		}
		r.Sections = append(r.Sections, got...)
	}
	return r, nil
}

// Single wraps one statistic of f in a report with the same header fields
// Analyze fills in.
func Single(f *dataset.Frame, section, id string) (*Report, error) {
	if !isSection(section) {
		return nil, fmt.Errorf("%q: %w", section, ErrUnknownSection)
	}
	return Analyze(f, []string{section}, id)
}

func compute(section string, d patterns.Dataset, labels []string) ([]Section, error) {
	switch section {
	case SectionPairs:
		tables, err := patterns.MDPairs(d, labels)
		if err != nil {
			return nil, err
		}
		out := make([]Section, 0, 4)
		for _, k := range []string{"rr", "rm", "mr", "mm"} {
			out = append(out, Section{Title: "PAIRS " + strings.ToUpper(k), Table: tables[k]})
		}
		return out, nil
	case SectionPattern:
		pt, err := patterns.MDPattern(d, labels)
		if err != nil {
			return nil, err
		}
		return []Section{{Title: "PATTERN", Table: pt.Table()}}, nil
	case SectionInbound:
		return one("INBOUND", patterns.Inbound, d, labels)
	case SectionOutbound:
		return one("OUTBOUND", patterns.Outbound, d, labels)
	case SectionInflux:
		return one("INFLUX", patterns.Influx, d, labels)
	case SectionOutflux:
		return one("OUTFLUX", patterns.Outflux, d, labels)
	case SectionFlux:
		fr, err := patterns.Flux(d, labels)
		if err != nil {
			return nil, err
		}
		return []Section{{Title: "FLUX", Table: fr.Table()}}, nil
	}
	return nil, fmt.Errorf("%q: %w", section, ErrUnknownSection)
}

func one(title string, fn func(patterns.Dataset, []string) (*patterns.Table, error), d patterns.Dataset, labels []string) ([]Section, error) {
	t, err := fn(d, labels)
	if err != nil {
		return nil, err
	}
	return []Section{{Title: title, Table: t}}, nil
}

// Render encodes the report in the named format. Precision applies to the
// Markdown and HTML tables; JSON and YAML carry full float64 values.
func (r *Report) Render(format string, precision int) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "markdown", "md":
		return []byte(r.Markdown(precision)), nil
	case "json":
		return r.JSON()
	case "yaml", "yml":
		return r.YAML()
	case "html":
		return r.HTML(precision), nil
	}
	return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}

// ValidFormat reports whether Render accepts format.
func ValidFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "markdown", "md", "json", "yaml", "yml", "html":
		return true
	}
	return false
}
