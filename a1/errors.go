package a1

import (
	"fmt"
)

// ErrInvalidLabel is returned for labels that are not valid A1 notation or
// for coordinates outside the grid.
type ErrInvalidLabel struct {
	Label string
}

func (e *ErrInvalidLabel) Error() string {
	return fmt.Sprintf("invalid cell label '%s'", e.Label)
}

// ErrInvalidRange is returned for range labels that do not describe a
// rectangular (possibly unbounded) area of a sheet.
type ErrInvalidRange struct {
	Range  string
	Reason string
}

func (e *ErrInvalidRange) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid range '%s' (%s)", e.Range, e.Reason)
	}

	return fmt.Sprintf("invalid range '%s'", e.Range)
}
