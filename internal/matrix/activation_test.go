package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func flatten(m *Matrix[float64]) []float64 {
	out := make([]float64, 0, m.Len())
	for _, row := range m.ToRows() {
		out = append(out, row...)
	}
	return out
}

func TestSigmoid(t *testing.T) {
	m := MustFromRows([][]float64{{-2, -1, 0, 1, 2}})
	got := flatten(Sigmoid(m))

	want := []float64{0.11920292, 0.26894142, 0.5, 0.73105858, 0.88079708}
	assert.True(t, floats.EqualApprox(want, got, 1e-8), "got %v", got)
}

func TestSigmoid_Zero(t *testing.T) {
	s := Sigmoid(MustFromRows([][]int{{0}}))
	v, err := s.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
}

func TestSigmoid_OpenInterval(t *testing.T) {
	inputs := []float64{-30, -10, -1e-3, 0, 1e-3, 10, 30, math.SmallestNonzeroFloat64}
	for _, x := range flatten(Sigmoid(MustFromRows([][]float64{inputs}))) {
		assert.Greater(t, x, 0.0)
		assert.Less(t, x, 1.0)
	}
}

func TestSigmoid_IntegerInput(t *testing.T) {
	s := Sigmoid(MustFromRows([][]int32{{1, -1}, {3, 0}}))
	assert.Equal(t, Dim{Rows: 2, Cols: 2}, s.Dim())
	assert.InDelta(t, 0.73105858, s.data[0][0], 1e-8)
	assert.InDelta(t, 0.5, s.data[1][1], 1e-12)
}

func TestSigmoidPrime(t *testing.T) {
	a := MustFromRows([][]float64{{0.5, 0.25}, {1, 0}})
	assert.Equal(t, [][]float64{{0.25, 0.1875}, {0, 0}}, SigmoidPrime(a).ToRows())
}

func TestSigmoidPrime_MatchesDerivative(t *testing.T) {
	z := MustFromRows([][]float64{{-3, -0.5, 0, 0.7, 4}})
	act := Sigmoid(z)

	const h = 1e-6
	plus := Sigmoid(z.Apply(func(v float64) float64 { return v + h }))
	minus := Sigmoid(z.Apply(func(v float64) float64 { return v - h }))
	numeric, err := plus.Sub(minus)
	require.NoError(t, err)
	numeric = numeric.Scale(1 / (2 * h))

	assert.True(t, floats.EqualApprox(flatten(numeric), flatten(SigmoidPrime(act)), 1e-8))
}

func TestMSEDiff(t *testing.T) {
	a := MustFromRows([][]float64{{1, 2}, {3, 4}})
	b := MustFromRows([][]float64{{1, 0}, {4, 4}})

	mse, err := MSEDiff(a, b)
	require.NoError(t, err)
	assert.InDelta(t, (0+4+1+0)/4.0, mse, 1e-12)
}

func TestMSEDiff_Self(t *testing.T) {
	for _, m := range []*Matrix[float64]{
		MustFromRows([][]float64{{1.5, -2}, {3, 4}}),
		MustFromRows([][]float64{{0.92}, {0.86}, {0.89}}),
		New[float64](),
	} {
		mse, err := MSEDiff(m, m)
		require.NoError(t, err)
		assert.Zero(t, mse)
	}
}

func TestMSEDiff_Unsigned(t *testing.T) {
	a := MustFromRows([][]uint8{{1}})
	b := MustFromRows([][]uint8{{3}})
	mse, err := MSEDiff(a, b)
	require.NoError(t, err)
	assert.Equal(t, 4.0, mse)
}

func TestMSEDiff_DimensionMismatch(t *testing.T) {
	a := MustFromRows([][]int{{2, 3, 5}, {1, 2, 8}, {3, 5, 9}})
	b := MustFromRows([][]int{{2, 3}, {1, 2}})

	_, err := MSEDiff(a, b)
	require.ErrorIs(t, err, ErrDimensionMismatch)

	var se *ShapeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "mse", se.Op)
}

func TestFloatConversions(t *testing.T) {
	i := MustFromRows([][]int{{1, -2}})
	f := ToFloat64(i)
	assert.Equal(t, [][]float64{{1, -2}}, f.ToRows())

	back := FromFloat64[int](MustFromRows([][]float64{{1.9, -2.7}}))
	assert.Equal(t, [][]int{{1, -2}}, back.ToRows())
}
