package matrix

// Dot computes the matrix product m · other.
//
// Requirements: m.Cols() == other.Rows(). The result has shape
// (m.Rows(), other.Cols()) and entry (i, j) = Σ_k m[i][k] * other[k][j],
// accumulated from the zero value of T.
//
// On mismatch Dot returns a *ShapeError naming both shapes; it never panics.
//
// Example:
//
//	a := matrix.MustFromRows([][]float64{{1, 2, 3}, {4, 5, 6}}) // 2x3
//	b := matrix.MustFromRows([][]float64{{7}, {8}, {9}})        // 3x1
//	c, _ := a.Dot(b)                                            // 2x1: [[50] [122]]
func (m *Matrix[T]) Dot(other *Matrix[T]) (*Matrix[T], error) {
	if m.dim.Cols != other.dim.Rows {
		return nil, shapeErr("dot", m.dim, other.dim)
	}

	out := zeros[T](m.dim.Rows, other.dim.Cols)
	for i := 0; i < m.dim.Rows; i++ {
		left := m.data[i]
		row := out.data[i]
		for j := 0; j < other.dim.Cols; j++ {
			var acc T
			for k := 0; k < m.dim.Cols; k++ {
				acc += left[k] * other.data[k][j]
			}
			row[j] = acc
		}
	}
	return out, nil
}

// Transpose returns a new matrix with rows and columns swapped.
// Works for any shape, including 0x0.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := zeros[T](m.dim.Cols, m.dim.Rows)
	for i, row := range m.data {
		for j, v := range row {
			out.data[j][i] = v
		}
	}
	return out
}

// Max returns the maximum of each column.
//
// The running maximum starts from the first row, so matrices holding only
// negative values are handled correctly. Returns ErrEmptyMatrix when the
// matrix has no rows or any row is empty.
func (m *Matrix[T]) Max() ([]T, error) {
	if len(m.data) == 0 {
		return nil, ErrEmptyMatrix
	}
	for _, row := range m.data {
		if len(row) == 0 {
			return nil, ErrEmptyMatrix
		}
	}

	maxes := append([]T(nil), m.data[0]...)
	for _, row := range m.data[1:] {
		for j, v := range row {
			if v > maxes[j] {
				maxes[j] = v
			}
		}
	}
	return maxes, nil
}

// Add returns the element-wise sum m + other. Shapes must match exactly.
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	return m.zipWith("add", other, func(a, b T) T { return a + b })
}

// Sub returns the element-wise difference m - other. Shapes must match exactly.
func (m *Matrix[T]) Sub(other *Matrix[T]) (*Matrix[T], error) {
	return m.zipWith("sub", other, func(a, b T) T { return a - b })
}

// Mul returns the element-wise (Hadamard) product m ⊙ other.
// Shapes must match exactly; use Dot for the matrix product.
func (m *Matrix[T]) Mul(other *Matrix[T]) (*Matrix[T], error) {
	return m.zipWith("mul", other, func(a, b T) T { return a * b })
}

// AddInPlace performs m += other, element-wise. This is the only arithmetic
// that mutates its receiver; the network uses it to apply weight updates.
func (m *Matrix[T]) AddInPlace(other *Matrix[T]) error {
	if m.dim != other.dim {
		return shapeErr("add in place", m.dim, other.dim)
	}
	for i, row := range m.data {
		src := other.data[i]
		for j := range row {
			row[j] += src[j]
		}
	}
	return nil
}

// Scale returns a new matrix with every element multiplied by f.
func (m *Matrix[T]) Scale(f T) *Matrix[T] {
	return m.Apply(func(v T) T { return v * f })
}

// Apply returns a new matrix holding fn applied to every element.
func (m *Matrix[T]) Apply(fn func(T) T) *Matrix[T] {
	out := zeros[T](m.dim.Rows, m.dim.Cols)
	for i, row := range m.data {
		dst := out.data[i]
		for j, v := range row {
			dst[j] = fn(v)
		}
	}
	return out
}

// zipWith combines two equally shaped matrices cell by cell.
func (m *Matrix[T]) zipWith(op string, other *Matrix[T], fn func(a, b T) T) (*Matrix[T], error) {
	if m.dim != other.dim {
		return nil, shapeErr(op, m.dim, other.dim)
	}
	out := zeros[T](m.dim.Rows, m.dim.Cols)
	for i, row := range m.data {
		src := other.data[i]
		dst := out.data[i]
		for j, v := range row {
			dst[j] = fn(v, src[j])
		}
	}
	return out, nil
}
