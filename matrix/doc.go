// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides a generic, row-major 2-D matrix with shape-checked
// arithmetic and the activation helpers used by package nn.
//
// # Overview
//
//   - Construction: New, FromRows, MustFromRows, Zeros, Full
//   - Products: Dot (matrix product), Transpose
//   - Element-wise: Add, Sub, Mul, AddInPlace, Scale, Apply
//   - Reductions: Max (per column), MSEDiff
//   - Activations: Sigmoid, SigmoidPrime
//   - Feature scaling: NormalizeColumns, DenormalizeColumns
//
// # Errors
//
// Operations on incompatible shapes return an error matching
// ErrDimensionMismatch via errors.Is; errors.As with *ShapeError exposes both
// operand shapes. No operation panics on bad input except MustFromRows.
//
// # Basic Usage
//
//	xs := matrix.MustFromRows([][]float64{{2, 9}, {1, 5}, {3, 6}})
//	w := matrix.MustFromRows([][]float64{{0.1, 0.2}, {0.3, 0.4}})
//
//	z, err := xs.Dot(w)       // 3x2
//	if err != nil {
//	    return err
//	}
//	a := matrix.Sigmoid(z)    // values in (0, 1)
package matrix
