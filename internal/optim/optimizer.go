// Package optim implements the weight update rules used to train networks.
//
// This package provides:
//   - Optimizer interface: Base interface for update rules
//   - SGD: Gradient descent with optional momentum
//
// Gradients follow the usual convention: they point in the direction that
// increases the loss, so optimizers subtract them.
//
// Example usage:
//
//	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.5, Momentum: 0.9})
//	if err != nil {
//	    return err
//	}
//	if err := sgd.Step(weights, grads); err != nil {
//	    return err
//	}
package optim

import (
	"errors"
	"fmt"

	"github.com/born-ml/ffnet/internal/matrix"
)

var (
	// ErrInvalidLR is returned for a negative or NaN learning rate.
	ErrInvalidLR = errors.New("optim: invalid learning rate")

	// ErrInvalidMomentum is returned for a momentum outside [0, 1).
	ErrInvalidMomentum = errors.New("optim: momentum must be in [0, 1)")

	// ErrParamCount is returned when Step gets a different number of
	// parameters and gradients, or a different parameter set than before.
	ErrParamCount = errors.New("optim: parameter count mismatch")
)

// Optimizer updates parameters in place from their gradients.
type Optimizer interface {
	// Step applies one update to every parameter. params[i] is updated from
	// grads[i]; all shapes are checked before any parameter is touched.
	Step(params, grads []*matrix.Matrix[float64]) error

	// GetLR returns the current learning rate.
	GetLR() float64
}

// checkShapes verifies params and grads pair up one to one.
func checkShapes(params, grads []*matrix.Matrix[float64]) error {
	if len(params) != len(grads) {
		return fmt.Errorf("%w: %d parameters, %d gradients", ErrParamCount, len(params), len(grads))
	}
	for i := range params {
		if params[i].Dim() != grads[i].Dim() {
			return &matrix.ShapeError{Op: fmt.Sprintf("step %d", i), Left: params[i].Dim(), Right: grads[i].Dim()}
		}
	}
	return nil
}
