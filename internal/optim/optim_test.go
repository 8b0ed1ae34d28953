package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ffnet/internal/matrix"
	"github.com/born-ml/ffnet/internal/optim"
)

func params(rows ...[][]float64) []*matrix.Matrix[float64] {
	out := make([]*matrix.Matrix[float64], len(rows))
	for i, r := range rows {
		out[i] = matrix.MustFromRows(r)
	}
	return out
}

func TestSGD_SimpleUpdate(t *testing.T) {
	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.5})
	require.NoError(t, err)

	p := params([][]float64{{2, -1}})
	g := params([][]float64{{1, -4}})
	require.NoError(t, sgd.Step(p, g))

	// x_new = x_old - lr * grad
	assert.Equal(t, [][]float64{{1.5, 1}}, p[0].ToRows())
	assert.Nil(t, sgd.Velocities())
}

func TestSGD_WithMomentum(t *testing.T) {
	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.5, Momentum: 0.5})
	require.NoError(t, err)

	p := params([][]float64{{0}})
	g := params([][]float64{{2}})

	// v1 = 2, p = -1
	require.NoError(t, sgd.Step(p, g))
	assert.Equal(t, [][]float64{{-1}}, p[0].ToRows())

	// v2 = 0.5*2 + 2 = 3, p = -1 - 1.5 = -2.5
	require.NoError(t, sgd.Step(p, g))
	assert.Equal(t, [][]float64{{-2.5}}, p[0].ToRows())

	vs := sgd.Velocities()
	require.Len(t, vs, 1)
	assert.Equal(t, [][]float64{{3}}, vs[0].ToRows())

	sgd.Reset()
	assert.Nil(t, sgd.Velocities())
}

func TestSGD_ZeroLRLeavesParams(t *testing.T) {
	sgd, err := optim.NewSGD(optim.SGDConfig{})
	require.NoError(t, err)

	p := params([][]float64{{1, 2}, {3, 4}})
	before := p[0].Clone()
	require.NoError(t, sgd.Step(p, params([][]float64{{9, 9}, {9, 9}})))
	assert.True(t, before.Equal(p[0]))
}

func TestSGD_ShapeMismatchIsAtomic(t *testing.T) {
	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 1})
	require.NoError(t, err)

	p := params([][]float64{{1}}, [][]float64{{1, 2}})
	g := params([][]float64{{1}}, [][]float64{{1}})
	err = sgd.Step(p, g)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Equal(t, [][]float64{{1}}, p[0].ToRows(), "first parameter must not be updated")

	err = sgd.Step(p, g[:1])
	require.ErrorIs(t, err, optim.ErrParamCount)
}

func TestSGD_VelocityShapeIsFixed(t *testing.T) {
	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 1, Momentum: 0.9})
	require.NoError(t, err)

	require.NoError(t, sgd.Step(params([][]float64{{1}}), params([][]float64{{1}})))
	err = sgd.Step(params([][]float64{{1, 2}}), params([][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNewSGD_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  optim.SGDConfig
		want error
	}{
		{"negative lr", optim.SGDConfig{LR: -1}, optim.ErrInvalidLR},
		{"negative momentum", optim.SGDConfig{LR: 1, Momentum: -0.1}, optim.ErrInvalidMomentum},
		{"momentum one", optim.SGDConfig{LR: 1, Momentum: 1}, optim.ErrInvalidMomentum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := optim.NewSGD(tt.cfg)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSGD_SetLR(t *testing.T) {
	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.1, Momentum: 0.3})
	require.NoError(t, err)
	assert.InDelta(t, 0.1, sgd.GetLR(), 1e-12)
	assert.InDelta(t, 0.3, sgd.Momentum(), 1e-12)

	sgd.SetLR(2)
	assert.Equal(t, 2.0, sgd.GetLR())

	var _ optim.Optimizer = sgd
}
