package nn

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/born-ml/ffnet/internal/matrix"
	"github.com/born-ml/ffnet/internal/optim"
	"github.com/born-ml/ffnet/internal/progress"
)

// Config describes the shape and training parameters of a Network.
type Config struct {
	InputSize    int     // Number of input features (columns of xs)
	OutputSize   int     // Number of outputs (columns of ys)
	HiddenSizes  []int   // Width of each hidden layer, at least one
	LearningRate float64 // Step size for weight updates (default: 1)
	Momentum     float64 // SGD momentum in [0, 1) (default: 0)
	Init         Init    // Weight distribution (default: InitUniform)
	Seed         uint64  // Seed for the weight initialization source
}

// Network is a fully connected feed-forward network with sigmoid activations
// and no biases.
//
// Weights are stored as one matrix per layer transition: weights[0] maps the
// input to the first hidden layer, weights[i] maps hidden layer i-1 to hidden
// layer i, and the last one maps to the output layer. Forward caches one
// activation per layer boundary, which Backward consumes in reverse.
//
// A Network is not safe for concurrent use.
//
// Example:
//
//	net, err := nn.New(nn.Config{InputSize: 2, OutputSize: 1, HiddenSizes: []int{3}})
//	if err != nil {
//	    return err
//	}
//	prediction, err := net.Train(xs, ys, 1000)
type Network struct {
	inputSize   int
	outputSize  int
	hiddenSizes []int

	weights     []*matrix.Matrix[float64]
	activations []*matrix.Matrix[float64] // outputs of each layer from the last Forward

	opt      optim.Optimizer
	src      rand.Source
	progress progress.Reporter
	logger   *slog.Logger
	logEvery int
}

// New validates cfg and creates a Network with randomly initialized weights.
//
// Every weight is drawn independently from cfg.Init. Two networks built from
// the same Config (and no WithSource option) have identical weights.
func New(cfg Config, opts ...Option) (*Network, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.LearningRate == 0 {
		cfg.LearningRate = 1
	}
	if cfg.Init == "" {
		cfg.Init = InitUniform
	}

	n := &Network{
		inputSize:   cfg.InputSize,
		outputSize:  cfg.OutputSize,
		hiddenSizes: append([]int(nil), cfg.HiddenSizes...),
		progress:    progress.Nop{},
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.src == nil {
		n.src = rand.NewPCG(cfg.Seed, cfg.Seed)
	}
	if n.opt == nil {
		sgd, err := optim.NewSGD(optim.SGDConfig{LR: cfg.LearningRate, Momentum: cfg.Momentum})
		if err != nil {
			return nil, err
		}
		n.opt = sgd
	}

	dist, err := cfg.Init.sampler(n.src)
	if err != nil {
		return nil, err
	}

	sizes := n.layerSizes()
	n.weights = make([]*matrix.Matrix[float64], len(sizes)-1)
	for i := range n.weights {
		w, err := randomWeights(sizes[i], sizes[i+1], dist)
		if err != nil {
			return nil, fmt.Errorf("nn: init weights %d: %w", i, err)
		}
		n.weights[i] = w
	}

	n.logger.Debug("network created",
		"input", n.inputSize,
		"hidden", n.hiddenSizes,
		"output", n.outputSize,
		"init", string(cfg.Init),
		"learning_rate", n.opt.GetLR(),
	)
	return n, nil
}

func (c Config) validate() error {
	if len(c.HiddenSizes) == 0 {
		return ErrNoHiddenLayers
	}
	if c.InputSize <= 0 || c.OutputSize <= 0 {
		return fmt.Errorf("%w: input %d, output %d", ErrInvalidSize, c.InputSize, c.OutputSize)
	}
	for i, h := range c.HiddenSizes {
		if h <= 0 {
			return fmt.Errorf("%w: hidden layer %d has size %d", ErrInvalidSize, i, h)
		}
	}
	if c.LearningRate < 0 || math.IsNaN(c.LearningRate) {
		return fmt.Errorf("%w: got %v", ErrInvalidLearningRate, c.LearningRate)
	}
	if c.Momentum < 0 || c.Momentum >= 1 || math.IsNaN(c.Momentum) {
		return fmt.Errorf("%w: got %v", ErrInvalidMomentum, c.Momentum)
	}
	return nil
}

// layerSizes returns input, hidden..., output.
func (n *Network) layerSizes() []int {
	sizes := make([]int, 0, len(n.hiddenSizes)+2)
	sizes = append(sizes, n.inputSize)
	sizes = append(sizes, n.hiddenSizes...)
	return append(sizes, n.outputSize)
}

// InputSize returns the number of input features.
func (n *Network) InputSize() int { return n.inputSize }

// OutputSize returns the number of outputs.
func (n *Network) OutputSize() int { return n.outputSize }

// HiddenSizes returns a copy of the hidden layer widths.
func (n *Network) HiddenSizes() []int { return append([]int(nil), n.hiddenSizes...) }

// LearningRate returns the step size of the network's optimizer.
func (n *Network) LearningRate() float64 { return n.opt.GetLR() }

// InputWeights returns a copy of the input → first hidden layer weights,
// shape (InputSize, HiddenSizes[0]).
func (n *Network) InputWeights() *matrix.Matrix[float64] {
	return n.weights[0].Clone()
}

// HiddenWeights returns copies of the remaining transitions. The i-th matrix
// has shape (HiddenSizes[i], HiddenSizes[i+1]), the last one
// (HiddenSizes[last], OutputSize).
func (n *Network) HiddenWeights() []*matrix.Matrix[float64] {
	return cloneAll(n.weights[1:])
}

// Activations returns copies of the layer outputs cached by the last Forward,
// or nil before the first one.
func (n *Network) Activations() []*matrix.Matrix[float64] {
	if n.activations == nil {
		return nil
	}
	return cloneAll(n.activations)
}

// String dumps every weight matrix.
func (n *Network) String() string {
	var sb strings.Builder
	for i, w := range n.weights {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "Weight %d (%s):\n%s", i, w.Dim(), w)
	}
	return sb.String()
}

func cloneAll(ms []*matrix.Matrix[float64]) []*matrix.Matrix[float64] {
	out := make([]*matrix.Matrix[float64], len(ms))
	for i, m := range ms {
		out[i] = m.Clone()
	}
	return out
}
