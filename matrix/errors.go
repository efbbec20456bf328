package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned when a matrix cannot be inverted.
	ErrSingular = errors.New("matrix is singular to working precision")

	// ErrNotOneDimensional is returned when an operation that requires a
	// row or column vector receives a general matrix.
	ErrNotOneDimensional = errors.New("input is not one-dimensional")

	// ErrMultiChannel is returned when an operation that requires a
	// single-channel matrix receives an interleaved multi-channel one.
	ErrMultiChannel = errors.New("only single channel matrices allowed")
)

// ErrShapeMismatch indicates incompatible matrix dimensions for an operation.
type ErrShapeMismatch struct {
	Op       string
	Expected int
	Actual   int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("%s: shape mismatch: expected %d, got %d", e.Op, e.Expected, e.Actual)
}

// ErrIndexOutOfRange indicates a reordering permutation referencing a
// row or column the source matrix does not have.
type ErrIndexOutOfRange struct {
	Op    string
	Index int
	Limit int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0,%d)", e.Op, e.Index, e.Limit)
}
