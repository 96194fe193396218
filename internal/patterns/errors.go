package patterns

import (
	"errors"
	"fmt"
)

var (
	// ErrDimension matches every *DimensionError via errors.Is.
	ErrDimension = errors.New("patterns: invalid dataset dimensions")

	// ErrUnknownLabel is returned by Table lookups for a row or column label
	// that the table does not carry.
	ErrUnknownLabel = errors.New("patterns: unknown label")
)

// DimensionError reports a dataset whose shape cannot support pairwise
// missingness statistics.
type DimensionError struct {
	Op     string
	Rows   int
	Cols   int
	Labels int // -1 when no labels were supplied
	Reason string
}

func (e *DimensionError) Error() string {
	if e.Labels >= 0 {
		return fmt.Sprintf("%s: %s (rows=%d, cols=%d, labels=%d)", e.Op, e.Reason, e.Rows, e.Cols, e.Labels)
	}
	return fmt.Sprintf("%s: %s (rows=%d, cols=%d)", e.Op, e.Reason, e.Rows, e.Cols)
}

// Is reports whether target is ErrDimension.
func (e *DimensionError) Is(target error) bool { return target == ErrDimension }
