package report

import (
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/missflux/internal/utils"
)

// number is a float64 that encodes NaN and infinities as null.
type number float64

func (n number) valid() bool {
	f := float64(n)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (n number) MarshalJSON() ([]byte, error) {
	if !n.valid() {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, float64(n), 'g', -1, 64), nil
}

func (n number) MarshalYAML() (any, error) {
	if !n.valid() {
		return nil, nil
	}
	return float64(n), nil
}

type encodedSection struct {
	Title   string     `json:"title" yaml:"title"`
	Index   []string   `json:"index" yaml:"index"`
	Columns []string   `json:"columns" yaml:"columns"`
	Data    [][]number `json:"data" yaml:"data"`
}

type encodedColumn struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
	Rate  number `json:"rate" yaml:"rate"`
}

type encodedMissing struct {
	Columns  []encodedColumn `json:"columns" yaml:"columns"`
	Cells    number          `json:"cells" yaml:"cells"`
	Mean     number          `json:"mean" yaml:"mean"`
	Median   number          `json:"median" yaml:"median"`
	Max      number          `json:"max" yaml:"max"`
	Complete int             `json:"complete" yaml:"complete"`
}

type encodedReport struct {
	ID        string           `json:"id,omitempty" yaml:"id,omitempty"`
	File      string           `json:"file" yaml:"file"`
	Rows      int              `json:"rows" yaml:"rows"`
	Processed int              `json:"processed" yaml:"processed"`
	Columns   []string         `json:"columns" yaml:"columns"`
	Missing   encodedMissing   `json:"missing" yaml:"missing"`
	Sections  []encodedSection `json:"sections" yaml:"sections"`
	Warnings  []string         `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func (r *Report) encoded() encodedReport {
	out := encodedReport{
		ID:        r.ID,
		File:      r.Name,
		Rows:      r.Rows,
		Processed: r.Processed,
		Columns:   r.Columns,
		Warnings:  r.Warnings,
		Sections:  make([]encodedSection, 0, len(r.Sections)),
		Missing: encodedMissing{
			Cells:    number(r.Missing.Cells),
			Mean:     number(r.Missing.Mean),
			Median:   number(r.Missing.Median),
			Max:      number(r.Missing.Max),
			Complete: r.Missing.Complete,
		},
	}
	for _, c := range r.Missing.Columns {
		out.Missing.Columns = append(out.Missing.Columns, encodedColumn{Name: c.Name, Count: c.Count, Rate: number(c.Rate)})
	}
	for _, s := range r.Sections {
		rows, cols := s.Table.Dims()
		data := make([][]number, rows)
		for i := range data {
			data[i] = make([]number, cols)
			for j := range data[i] {
				data[i][j] = number(s.Table.At(i, j))
			}
		}
		out.Sections = append(out.Sections, encodedSection{
			Title:   s.Title,
			Index:   s.Table.Index,
			Columns: s.Table.Columns,
			Data:    data,
		})
	}
	return out
}

// JSON encodes the report as indented JSON with NaN written as null.
func (r *Report) JSON() ([]byte, error) {
	return utils.EncodeJSON(r.encoded())
}

// YAML encodes the report as YAML with NaN written as null.
func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r.encoded())
}
