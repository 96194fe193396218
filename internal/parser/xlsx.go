package parser

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/missflux/internal/dataset"
)

type xlsxReader struct{}

func (xlsxReader) CanRead(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".xlsx")
}

// Read loads the selected sheet and tags the frame name with it when the
// sheet was chosen by name.
func (xlsxReader) Read(path string, opt dataset.Options) (*dataset.Frame, error) {
	f, err := dataset.ReadXLSX(path, opt)
	if err != nil {
		return nil, err
	}
	if opt.SheetName != "" {
		f.Name = fmt.Sprintf("%s (sheet: %s)", f.Name, opt.SheetName)
	}
	return f, nil
}
