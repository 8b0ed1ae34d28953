// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/born-ml/ffnet/internal/nn"
	"github.com/born-ml/ffnet/internal/optim"
	"github.com/born-ml/ffnet/internal/progress"
)

// Network is a feed-forward network with sigmoid activations.
type Network = nn.Network

// Config describes the layer sizes and training parameters of a Network.
type Config = nn.Config

// Init selects the weight distribution.
type Init = nn.Init

// Weight distributions.
const (
	InitUniform Init = nn.InitUniform
	InitNormal  Init = nn.InitNormal
)

// Option customizes a Network.
type Option = nn.Option

// Errors returned by New, Backward and Train.
var (
	ErrNoHiddenLayers      = nn.ErrNoHiddenLayers
	ErrInvalidSize         = nn.ErrInvalidSize
	ErrInvalidLearningRate = nn.ErrInvalidLearningRate
	ErrInvalidMomentum     = nn.ErrInvalidMomentum
	ErrInvalidInit         = nn.ErrInvalidInit
	ErrNoForwardPass       = nn.ErrNoForwardPass
	ErrInvalidIterations   = nn.ErrInvalidIterations
)

// New creates a Network with randomly initialized weights.
//
// Example:
//
//	net, err := nn.New(nn.Config{InputSize: 2, OutputSize: 1, HiddenSizes: []int{3}})
func New(cfg Config, opts ...Option) (*Network, error) {
	return nn.New(cfg, opts...)
}

// WithProgress sets the reporter driven by Train.
func WithProgress(r ProgressReporter) Option {
	return nn.WithProgress(r)
}

// WithLogger sets the logger for construction and training events.
func WithLogger(l *slog.Logger) Option {
	return nn.WithLogger(l)
}

// WithLogEvery logs the training loss every k iterations at debug level.
func WithLogEvery(k int) Option {
	return nn.WithLogEvery(k)
}

// WithSource overrides the weight initialization random source.
func WithSource(src rand.Source) Option {
	return nn.WithSource(src)
}

// WithOptimizer replaces the SGD optimizer built from Config.
func WithOptimizer(o optim.Optimizer) Option {
	return nn.WithOptimizer(o)
}

// Progress

// ProgressReporter receives Start(total), one Advance per iteration and Finish.
type ProgressReporter = progress.Reporter

// NewProgressBar renders a terminal progress bar to w.
func NewProgressBar(w io.Writer, description string) ProgressReporter {
	return progress.NewBar(w, description)
}

// NewProgressLog logs progress through logger every n iterations.
func NewProgressLog(logger *slog.Logger, every int) ProgressReporter {
	return progress.NewLog(logger, every)
}
