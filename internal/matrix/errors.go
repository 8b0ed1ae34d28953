package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: " so errors are easy to grep.
// Callers match them with errors.Is.
var (
	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Dot where
	// a.Cols != b.Rows, or Add/Sub/Mul/MSEDiff on different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrEmptyMatrix is returned by Max when the matrix has no rows or a row
	// without elements.
	ErrEmptyMatrix = errors.New("matrix: matrix has no elements or has empty rows")

	// ErrRaggedRows is returned by FromRows when rows differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// ShapeError describes a binary operation whose operands have incompatible
// shapes. It unwraps to ErrDimensionMismatch.
type ShapeError struct {
	Op    string // operation name, e.g. "dot"
	Left  Dim    // receiver / first operand
	Right Dim    // argument / second operand
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: the given dimensions were %s and %s",
		ErrDimensionMismatch, e.Op, e.Left, e.Right)
}

// Unwrap lets errors.Is(err, ErrDimensionMismatch) match.
func (e *ShapeError) Unwrap() error {
	return ErrDimensionMismatch
}

func shapeErr(op string, left, right Dim) error {
	return &ShapeError{Op: op, Left: left, Right: right}
}
