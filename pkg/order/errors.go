package order

import (
	"fmt"
	"strings"

	errs "github.com/matzehuels/releaseorder/pkg/errors"
)

// UnknownReferenceError is returned by [Sort] when an item references a name
// that is not among the items being sorted. It indicates a data error on the
// caller's side, such as a dangling reference in the source records.
type UnknownReferenceError struct {
	Item      string // Name of the referencing item
	Reference string // The name that could not be resolved
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("item %q references unknown item %q", e.Item, e.Reference)
}

// Code reports [errs.ErrCodeUnknownReference].
func (e *UnknownReferenceError) Code() errs.Code { return errs.ErrCodeUnknownReference }

// DuplicateNameError is returned by [Sort] when two items share a name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate item name %q", e.Name)
}

// Code reports [errs.ErrCodeDuplicateName].
func (e *DuplicateNameError) Code() errs.Code { return errs.ErrCodeDuplicateName }

// CycleError is returned by [Sort] when the references contain cycles.
// Cycles holds every distinct cycle, smallest first.
type CycleError struct {
	Cycles []Cycle
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Cycles))
	for i, c := range e.Cycles {
		parts[i] = c.String()
	}
	noun := "cycle"
	if len(e.Cycles) != 1 {
		noun = "cycles"
	}
	return fmt.Sprintf("%d reference %s: %s", len(e.Cycles), noun, strings.Join(parts, "; "))
}

// Code reports [errs.ErrCodeCycleDetected].
func (e *CycleError) Code() errs.Code { return errs.ErrCodeCycleDetected }
