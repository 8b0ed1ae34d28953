package nn

import (
	"log/slog"
	"math/rand/v2"

	"github.com/born-ml/ffnet/internal/optim"
	"github.com/born-ml/ffnet/internal/progress"
)

// Option customizes a Network built by New.
type Option func(*Network)

// WithProgress sets the reporter Train drives: Start(iterations), one
// Advance per iteration, then Finish. Defaults to progress.Nop.
func WithProgress(r progress.Reporter) Option {
	return func(n *Network) {
		if r != nil {
			n.progress = r
		}
	}
}

// WithLogger sets the logger for construction and training events.
// Defaults to a logger that discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithLogEvery makes Train log the loss every k iterations at debug level.
// k <= 0 disables loss logging.
func WithLogEvery(k int) Option {
	return func(n *Network) {
		n.logEvery = k
	}
}

// WithSource overrides the random source used for weight initialization.
// Config.Seed is ignored when a source is given.
func WithSource(src rand.Source) Option {
	return func(n *Network) {
		if src != nil {
			n.src = src
		}
	}
}

// WithOptimizer replaces the SGD optimizer New builds from Config.LearningRate
// and Config.Momentum. Backward hands it the loss gradient of every weight
// matrix, input layer first.
func WithOptimizer(o optim.Optimizer) Option {
	return func(n *Network) {
		if o != nil {
			n.opt = o
		}
	}
}
