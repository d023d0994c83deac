package builder

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidSelector reports a selector that does not point at an exported
// field of the builder's target type.
var ErrInvalidSelector = errors.New("form builder: invalid property selector")

// SelectorError describes why a selector could not be resolved. It matches
// ErrInvalidSelector with errors.Is.
type SelectorError struct {
	Op     string
	Target reflect.Type
	Err    error
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("form builder: %s on %s: %v", e.Op, e.Target, e.Err)
}

func (e *SelectorError) Unwrap() []error {
	return []error{ErrInvalidSelector, e.Err}
}
