package matrix

import "fmt"

// NormalizeColumns divides every element by the scale of its column and
// returns a float64 matrix. The usual scale is the result of Max, which maps
// non-negative features into [0, 1].
//
// Example:
//
//	xs := matrix.MustFromRows([][]float64{{2, 9}, {1, 5}, {3, 6}})
//	maxes, _ := xs.Max()                           // [3 9]
//	norm, _ := matrix.NormalizeColumns(xs, maxes)  // [[0.667 1] [0.333 0.556] [1 0.667]]
func NormalizeColumns[T Number](m *Matrix[T], scale []T) (*Matrix[float64], error) {
	return scaleColumns(m, scale, func(v, s float64) float64 { return v / s })
}

// DenormalizeColumns is the inverse of NormalizeColumns: it multiplies every
// element by the scale of its column.
func DenormalizeColumns[T Number](m *Matrix[float64], scale []T) (*Matrix[float64], error) {
	return scaleColumns(m, scale, func(v, s float64) float64 { return v * s })
}

func scaleColumns[T, S Number](m *Matrix[T], scale []S, fn func(v, s float64) float64) (*Matrix[float64], error) {
	if len(scale) != m.dim.Cols {
		return nil, fmt.Errorf("%w: %d column scales for a %s matrix",
			ErrDimensionMismatch, len(scale), m.dim)
	}
	out := zeros[float64](m.dim.Rows, m.dim.Cols)
	for i, row := range m.data {
		dst := out.data[i]
		for j, v := range row {
			dst[j] = fn(float64(v), float64(scale[j]))
		}
	}
	return out, nil
}
