package sampleframe

import (
	"errors"
	"fmt"

	"github.com/hupe1980/sampleframe/meta"
)

var (
	// ErrNoData is returned when a Dataset is constructed without a data matrix.
	ErrNoData = errors.New("data matrix is required")

	// ErrInvalidWidth is returned when a smoothing width is not positive.
	ErrInvalidWidth = errors.New("smoothing width must be positive")

	// ErrIndexOutOfRange is returned when a position index falls outside its axis.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ShapeMismatchError indicates a metadata field whose length disagrees with
// its axis. Raised by the meta package during descriptor building and
// surfaced unwrapped.
type ShapeMismatchError = meta.ShapeMismatchError

// TypeMismatchError indicates a query value domain incompatible with the
// queried field. Raised by the meta package and surfaced unwrapped.
type TypeMismatchError = meta.TypeMismatchError

// FieldNotFoundError indicates a query criterion naming a field that exists
// in neither the sample nor the feature metadata table. This guards against
// silent no-op queries on typos.
type FieldNotFoundError struct {
	Field string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("field %q not found in sample or feature metadata", e.Field)
}

// UnsupportedOperationError indicates an operation this container rules out
// by design, such as feature-axis concatenation.
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation: %s", e.Op)
}
