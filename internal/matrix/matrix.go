package matrix

import "fmt"

// Dim is the (rows, cols) shape of a matrix.
type Dim struct {
	Rows int
	Cols int
}

// String renders the shape as "RxC".
func (d Dim) String() string {
	return fmt.Sprintf("%dx%d", d.Rows, d.Cols)
}

// Matrix is a row-major 2-D matrix of numeric values.
//
// A Matrix exclusively owns its rows: constructors copy their input and every
// transform (Dot, Transpose, Add, Sigmoid, ...) returns a new matrix. The only
// in-place mutations are Set and AddInPlace.
//
// Example:
//
//	a, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	b := a.Transpose()
//	c, err := a.Dot(b) // 2x2
type Matrix[T Number] struct {
	data [][]T
	dim  Dim
}

// New creates an empty 0x0 matrix.
func New[T Number]() *Matrix[T] {
	return &Matrix[T]{}
}

// FromRows creates a matrix from a slice of rows. The rows are copied.
//
// All rows must have the same length, otherwise ErrRaggedRows is returned.
// An empty slice yields a 0x0 matrix; n empty rows yield an n x 0 matrix.
func FromRows[T Number](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return New[T](), nil
	}
	cols := len(rows[0])
	data := make([][]T, len(rows))
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d elements, row 0 has %d",
				ErrRaggedRows, i, len(row), cols)
		}
		data[i] = append(make([]T, 0, cols), row...)
	}
	return &Matrix[T]{data: data, dim: Dim{Rows: len(rows), Cols: cols}}, nil
}

// MustFromRows is like FromRows but panics on ragged input.
// Intended for literals in tests and examples.
func MustFromRows[T Number](rows [][]T) *Matrix[T] {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Zeros creates a rows x cols matrix filled with the zero value.
func Zeros[T Number](rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	return zeros[T](rows, cols), nil
}

// Full creates a rows x cols matrix filled with v.
func Full[T Number](rows, cols int, v T) (*Matrix[T], error) {
	m, err := Zeros[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for _, row := range m.data {
		for j := range row {
			row[j] = v
		}
	}
	return m, nil
}

// zeros allocates without validation; callers guarantee non-negative dims.
func zeros[T Number](rows, cols int) *Matrix[T] {
	data := make([][]T, rows)
	for i := range data {
		data[i] = make([]T, cols)
	}
	return &Matrix[T]{data: data, dim: Dim{Rows: rows, Cols: cols}}
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.dim.Rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.dim.Cols }

// Dim returns the matrix shape.
func (m *Matrix[T]) Dim() Dim { return m.dim }

// Len returns the number of elements.
func (m *Matrix[T]) Len() int { return m.dim.Rows * m.dim.Cols }

// At returns the element at (i, j).
func (m *Matrix[T]) At(i, j int) (T, error) {
	if err := m.checkIndex(i, j); err != nil {
		var zero T
		return zero, err
	}
	return m.data[i][j], nil
}

// Set assigns v at (i, j).
func (m *Matrix[T]) Set(i, j int, v T) error {
	if err := m.checkIndex(i, j); err != nil {
		return err
	}
	m.data[i][j] = v
	return nil
}

func (m *Matrix[T]) checkIndex(i, j int) error {
	if i < 0 || i >= m.dim.Rows || j < 0 || j >= m.dim.Cols {
		return fmt.Errorf("%w: (%d,%d) in %s", ErrOutOfRange, i, j, m.dim)
	}
	return nil
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *Matrix[T]) Row(i int) []T {
	if i < 0 || i >= m.dim.Rows {
		return nil
	}
	return append([]T(nil), m.data[i]...)
}

// ToRows returns a deep copy of the underlying rows.
func (m *Matrix[T]) ToRows() [][]T {
	rows := make([][]T, len(m.data))
	for i, row := range m.data {
		rows[i] = append(make([]T, 0, len(row)), row...)
	}
	return rows
}

// Clone returns an independent deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{data: m.ToRows(), dim: m.dim}
}

// Equal reports whether both matrices have the same shape and elements.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m.dim != other.dim {
		return false
	}
	for i, row := range m.data {
		for j, v := range row {
			if other.data[i][j] != v {
				return false
			}
		}
	}
	return true
}
