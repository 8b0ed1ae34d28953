// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix_test

import (
	"errors"
	"fmt"

	"github.com/born-ml/ffnet/matrix"
)

func Example_dot() {
	a := matrix.MustFromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	b := matrix.MustFromRows([][]int{{7}, {8}, {9}})

	c, err := a.Dot(b)
	if err != nil {
		panic(err)
	}
	fmt.Println(c.Dim())
	fmt.Println(c)
	// Output:
	// 2x1
	// |  50	|
	// |  122	|
}

func Example_dimensionMismatch() {
	a := matrix.MustFromRows([][]int{{2, 3, 5}, {1, 2, 8}, {3, 5, 9}})
	b := matrix.MustFromRows([][]int{{2, 3}, {1, 2}})

	_, err := a.Dot(b)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))

	var se *matrix.ShapeError
	if errors.As(err, &se) {
		fmt.Println(se.Left, se.Right)
	}
	// Output:
	// true
	// 3x3 2x2
}

func Example_max() {
	m := matrix.MustFromRows([][]int{{2, 9}, {1, 5}, {3, 6}})
	maxes, _ := m.Max()
	fmt.Println(maxes)

	_, err := matrix.MustFromRows([][]int{{}, {}}).Max()
	fmt.Println(err)
	// Output:
	// [3 9]
	// matrix: matrix has no elements or has empty rows
}

func ExampleNormalizeColumns() {
	xs := matrix.MustFromRows([][]float64{{2, 9}, {1, 5}, {3, 6}})
	maxes, _ := xs.Max()
	norm, _ := matrix.NormalizeColumns(xs, maxes)
	fmt.Println(norm)
	// Output:
	// |  0.66666667	1.00000000	|
	// |  0.33333333	0.55555556	|
	// |  1.00000000	0.66666667	|
}

func ExampleSigmoid() {
	s := matrix.Sigmoid(matrix.MustFromRows([][]int{{0}}))
	fmt.Println(s)
	// Output:
	// |  0.50000000	|
}
