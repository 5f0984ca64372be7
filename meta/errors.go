package meta

import "fmt"

// ShapeMismatchError indicates that a metadata field's length disagrees with
// the length of the axis it describes. It is fatal to the operation that
// detected it; fields are never truncated or padded to fit.
type ShapeMismatchError struct {
	Field string
	Want  int
	Got   int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: field %q has length %d, axis has length %d", e.Field, e.Got, e.Want)
}

// TypeMismatchError indicates that a query's value domain disagrees with the
// domain of the column it is matched against, or that two columns of
// incompatible kinds were concatenated.
//
// Field is filled in by the query engine; it is empty when the error is
// raised below that level.
type TypeMismatchError struct {
	Field string
	Have  Kind
	Want  Kind
}

func (e *TypeMismatchError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("type mismatch: field %q is %s, queried as %s", e.Field, e.Have, e.Want)
	}
	return fmt.Sprintf("type mismatch: %s vs %s", e.Have, e.Want)
}
