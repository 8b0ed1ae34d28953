// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/born-ml/ffnet/internal/matrix"
)

// Number is the constraint for matrix element types: every Go integer and
// floating point kind.
type Number = matrix.Number

// Matrix is a row-major 2-D matrix that owns its elements.
type Matrix[T Number] = matrix.Matrix[T]

// Dim is the (rows, cols) shape of a matrix.
type Dim = matrix.Dim

// ShapeError reports the operand shapes of a failed binary operation.
type ShapeError = matrix.ShapeError

// Errors returned by matrix operations. Match them with errors.Is.
var (
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrEmptyMatrix       = matrix.ErrEmptyMatrix
	ErrRaggedRows        = matrix.ErrRaggedRows
	ErrBadShape          = matrix.ErrBadShape
	ErrOutOfRange        = matrix.ErrOutOfRange
)

// New creates an empty 0x0 matrix.
func New[T Number]() *Matrix[T] {
	return matrix.New[T]()
}

// FromRows creates a matrix from equal-length rows. The rows are copied.
//
// Example:
//
//	m, err := matrix.FromRows([][]int{{2, 9}, {1, 5}, {3, 6}})
func FromRows[T Number](rows [][]T) (*Matrix[T], error) {
	return matrix.FromRows(rows)
}

// MustFromRows is like FromRows but panics on ragged rows.
func MustFromRows[T Number](rows [][]T) *Matrix[T] {
	return matrix.MustFromRows(rows)
}

// Zeros creates a rows x cols matrix of zero values.
func Zeros[T Number](rows, cols int) (*Matrix[T], error) {
	return matrix.Zeros[T](rows, cols)
}

// Full creates a rows x cols matrix filled with v.
func Full[T Number](rows, cols int, v T) (*Matrix[T], error) {
	return matrix.Full(rows, cols, v)
}

// Sigmoid applies 1 / (1 + exp(-x)) element-wise.
func Sigmoid[T Number](m *Matrix[T]) *Matrix[float64] {
	return matrix.Sigmoid(m)
}

// SigmoidPrime computes x * (1 - x) element-wise on an already-sigmoided matrix.
func SigmoidPrime[T Number](m *Matrix[T]) *Matrix[float64] {
	return matrix.SigmoidPrime(m)
}

// MSEDiff returns the mean squared difference of two equally shaped matrices.
func MSEDiff[T Number](a, b *Matrix[T]) (float64, error) {
	return matrix.MSEDiff(a, b)
}

// ToFloat64 converts every element to float64.
func ToFloat64[T Number](m *Matrix[T]) *Matrix[float64] {
	return matrix.ToFloat64(m)
}

// FromFloat64 converts a float64 matrix to element type T.
func FromFloat64[T Number](m *Matrix[float64]) *Matrix[T] {
	return matrix.FromFloat64[T](m)
}

// NormalizeColumns divides each column by its scale, typically from Max.
func NormalizeColumns[T Number](m *Matrix[T], scale []T) (*Matrix[float64], error) {
	return matrix.NormalizeColumns(m, scale)
}

// DenormalizeColumns multiplies each column by its scale.
func DenormalizeColumns[T Number](m *Matrix[float64], scale []T) (*Matrix[float64], error) {
	return matrix.DenormalizeColumns(m, scale)
}
