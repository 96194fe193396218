package parser

import (
	"strings"

	"github.com/KaramelBytes/missflux/internal/dataset"
)

type csvReader struct{}

func (csvReader) CanRead(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".tsv")
}

func (csvReader) Read(path string, opt dataset.Options) (*dataset.Frame, error) {
	return dataset.ReadCSV(path, opt)
}
