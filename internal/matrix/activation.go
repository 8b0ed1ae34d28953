package matrix

import "math"

// Sigmoid applies σ(x) = 1 / (1 + exp(-x)) to every element.
//
// Elements are converted to float64 first, so integer matrices are accepted
// and the result is always a float64 matrix.
func Sigmoid[T Number](m *Matrix[T]) *Matrix[float64] {
	return mapFloat(m, func(x float64) float64 {
		return 1 / (1 + math.Exp(-x))
	})
}

// SigmoidPrime computes x * (1 - x) for every element.
//
// The input must already be a sigmoid activation (the output of Sigmoid),
// not the raw weighted input: for a = σ(z), σ'(z) = a(1 - a).
func SigmoidPrime[T Number](m *Matrix[T]) *Matrix[float64] {
	return mapFloat(m, func(x float64) float64 {
		return x * (1 - x)
	})
}

// MSEDiff returns the mean of the squared element-wise differences between a
// and b. Shapes must be identical. Matrices without elements have an MSE of 0.
func MSEDiff[T Number](a, b *Matrix[T]) (float64, error) {
	if a.dim != b.dim {
		return 0, shapeErr("mse", a.dim, b.dim)
	}
	n := a.Len()
	if n == 0 {
		return 0, nil
	}

	var sum float64
	for i, row := range a.data {
		other := b.data[i]
		for j, v := range row {
			// Subtract in float64 so unsigned types cannot wrap around.
			d := float64(v) - float64(other[j])
			sum += d * d
		}
	}
	return sum / float64(n), nil
}

// ToFloat64 converts every element to float64.
func ToFloat64[T Number](m *Matrix[T]) *Matrix[float64] {
	return mapFloat(m, func(x float64) float64 { return x })
}

// FromFloat64 converts a float64 matrix to element type T using Go's
// conversion rules (integer targets truncate toward zero).
func FromFloat64[T Number](m *Matrix[float64]) *Matrix[T] {
	out := zeros[T](m.dim.Rows, m.dim.Cols)
	for i, row := range m.data {
		dst := out.data[i]
		for j, v := range row {
			dst[j] = T(v)
		}
	}
	return out
}

func mapFloat[T Number](m *Matrix[T], fn func(float64) float64) *Matrix[float64] {
	out := zeros[float64](m.dim.Rows, m.dim.Cols)
	for i, row := range m.data {
		dst := out.data[i]
		for j, v := range row {
			dst[j] = fn(float64(v))
		}
	}
	return out
}
