package nn

import (
	"errors"

	"github.com/born-ml/ffnet/internal/optim"
)

var (
	// ErrNoHiddenLayers is returned by New when Config.HiddenSizes is empty.
	ErrNoHiddenLayers = errors.New("nn: network needs at least one hidden layer")

	// ErrInvalidSize is returned by New when a layer size is not positive.
	ErrInvalidSize = errors.New("nn: layer sizes must be > 0")

	// ErrInvalidLearningRate is returned by New for a negative or NaN rate.
	ErrInvalidLearningRate = errors.New("nn: learning rate must be >= 0")

	// ErrInvalidMomentum is returned by New for a momentum outside [0, 1).
	ErrInvalidMomentum = optim.ErrInvalidMomentum

	// ErrInvalidInit is returned by New for an unknown weight distribution.
	ErrInvalidInit = errors.New("nn: unknown weight initialization")

	// ErrNoForwardPass is returned by Backward when no activations from a
	// preceding Forward call are cached.
	ErrNoForwardPass = errors.New("nn: backward called without a forward pass")

	// ErrInvalidIterations is returned by Train for a negative iteration count.
	ErrInvalidIterations = errors.New("nn: iterations must be >= 0")
)
