package parser

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/KaramelBytes/missflux/internal/dataset"
)

// Reader loads a tabular file into a dataset frame.
type Reader interface {
	CanRead(filename string) bool
	Read(path string, opt dataset.Options) (*dataset.Frame, error)
}

var registry []Reader

// Register adds a reader implementation to the registry.
func Register(r Reader) {
	registry = append(registry, r)
}

// ReadFile selects a reader based on filename and loads the dataset.
func ReadFile(path string, opt dataset.Options) (*dataset.Frame, error) {
	for _, r := range registry {
		if r.CanRead(path) {
			return r.Read(path, opt)
		}
	}
	return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupported)
}

// Supported reports whether some registered reader accepts filename.
func Supported(filename string) bool {
	for _, r := range registry {
		if r.CanRead(filename) {
			return true
		}
	}
	return false
}

func init() {
	// Register default readers
	Register(csvReader{})
	Register(xlsxReader{})
}

// ErrUnsupported indicates a format is not supported yet.
var ErrUnsupported = errors.New("unsupported dataset format")
