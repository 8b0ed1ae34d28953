package nn

import (
	"math/rand/v2"
	"testing"

	"github.com/born-ml/ffnet/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allValues(m *matrix.Matrix[float64]) []float64 {
	var out []float64
	for _, row := range m.ToRows() {
		out = append(out, row...)
	}
	return out
}

func TestNew_Shapes(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		shapes []matrix.Dim
	}{
		{
			name:   "single hidden layer",
			cfg:    Config{InputSize: 2, OutputSize: 1, HiddenSizes: []int{3}},
			shapes: []matrix.Dim{{Rows: 2, Cols: 3}, {Rows: 3, Cols: 1}},
		},
		{
			name:   "three hidden layers",
			cfg:    Config{InputSize: 3, OutputSize: 2, HiddenSizes: []int{4, 5, 6}},
			shapes: []matrix.Dim{{Rows: 3, Cols: 4}, {Rows: 4, Cols: 5}, {Rows: 5, Cols: 6}, {Rows: 6, Cols: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net, err := New(tt.cfg)
			require.NoError(t, err)

			assert.Equal(t, tt.shapes[0], net.InputWeights().Dim())
			hidden := net.HiddenWeights()
			require.Len(t, hidden, len(tt.shapes)-1)
			for i, w := range hidden {
				assert.Equal(t, tt.shapes[i+1], w.Dim(), "hidden weights %d", i)
			}

			assert.Equal(t, tt.cfg.InputSize, net.InputSize())
			assert.Equal(t, tt.cfg.OutputSize, net.OutputSize())
			assert.Equal(t, tt.cfg.HiddenSizes, net.HiddenSizes())
		})
	}
}

func TestNew_NoHiddenLayers(t *testing.T) {
	net, err := New(Config{InputSize: 2, OutputSize: 1, HiddenSizes: []int{}})
	require.ErrorIs(t, err, ErrNoHiddenLayers)
	assert.Nil(t, net)

	_, err = New(Config{InputSize: 2, OutputSize: 1})
	require.ErrorIs(t, err, ErrNoHiddenLayers)
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		err  error
	}{
		{"zero input", Config{InputSize: 0, OutputSize: 1, HiddenSizes: []int{3}}, ErrInvalidSize},
		{"negative output", Config{InputSize: 2, OutputSize: -1, HiddenSizes: []int{3}}, ErrInvalidSize},
		{"zero hidden", Config{InputSize: 2, OutputSize: 1, HiddenSizes: []int{3, 0}}, ErrInvalidSize},
		{"negative rate", Config{InputSize: 2, OutputSize: 1, HiddenSizes: []int{3}, LearningRate: -0.1}, ErrInvalidLearningRate},
		{"negative momentum", Config{InputSize: 2, OutputSize: 1, HiddenSizes: []int{3}, Momentum: -0.5}, ErrInvalidMomentum},
		{"momentum one", Config{InputSize: 2, OutputSize: 1, HiddenSizes: []int{3}, Momentum: 1}, ErrInvalidMomentum},
		{"unknown init", Config{InputSize: 2, OutputSize: 1, HiddenSizes: []int{3}, Init: "xavier"}, ErrInvalidInit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	net, err := New(Config{InputSize: 2, OutputSize: 1, HiddenSizes: []int{3}})
	require.NoError(t, err)
	assert.Equal(t, 1.0, net.LearningRate())
	assert.Nil(t, net.Activations())

	net, err = New(Config{InputSize: 2, OutputSize: 1, HiddenSizes: []int{3}, LearningRate: 0.25})
	require.NoError(t, err)
	assert.Equal(t, 0.25, net.LearningRate())
}

func TestNew_HiddenSizesCopied(t *testing.T) {
	hidden := []int{3, 2}
	net, err := New(Config{InputSize: 2, OutputSize: 1, HiddenSizes: hidden})
	require.NoError(t, err)

	hidden[0] = 99
	assert.Equal(t, []int{3, 2}, net.HiddenSizes())
}

func TestNew_Deterministic(t *testing.T) {
	cfg := Config{InputSize: 2, OutputSize: 1, HiddenSizes: []int{3, 2}, Seed: 7}

	a, err := New(cfg)
	require.NoError(t, err)
	b, err := New(cfg)
	require.NoError(t, err)

	assert.True(t, a.InputWeights().Equal(b.InputWeights()))
	for i, w := range a.HiddenWeights() {
		assert.True(t, w.Equal(b.HiddenWeights()[i]), "hidden weights %d", i)
	}

	cfg.Seed = 8
	c, err := New(cfg)
	require.NoError(t, err)
	assert.False(t, a.InputWeights().Equal(c.InputWeights()))
}

func TestNew_WithSource(t *testing.T) {
	cfg := Config{InputSize: 2, OutputSize: 1, HiddenSizes: []int{3}}

	cfg.Seed = 1
	a, err := New(cfg, WithSource(rand.NewPCG(5, 6)))
	require.NoError(t, err)
	cfg.Seed = 2
	b, err := New(cfg, WithSource(rand.NewPCG(5, 6)))
	require.NoError(t, err)

	assert.True(t, a.InputWeights().Equal(b.InputWeights()))
}

func TestNew_UniformInit(t *testing.T) {
	net, err := New(Config{InputSize: 20, OutputSize: 5, HiddenSizes: []int{30}, Seed: 3})
	require.NoError(t, err)

	values := allValues(net.InputWeights())
	for _, w := range net.HiddenWeights() {
		values = append(values, allValues(w)...)
	}
	for _, v := range values {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestNew_NormalInit(t *testing.T) {
	net, err := New(Config{InputSize: 50, OutputSize: 1, HiddenSizes: []int{50}, Init: InitNormal, Seed: 3})
	require.NoError(t, err)

	values := allValues(net.InputWeights())
	var sum float64
	negatives := 0
	for _, v := range values {
		sum += v
		if v < 0 {
			negatives++
		}
	}
	assert.InDelta(t, 0, sum/float64(len(values)), 0.1)
	assert.Greater(t, negatives, len(values)/4)
}

func TestNetwork_String(t *testing.T) {
	net, err := New(Config{InputSize: 2, OutputSize: 1, HiddenSizes: []int{3}})
	require.NoError(t, err)

	s := net.String()
	assert.Contains(t, s, "Weight 0 (2x3):")
	assert.Contains(t, s, "Weight 1 (3x1):")
}
