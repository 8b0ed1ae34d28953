package optim

import (
	"fmt"
	"math"

	"github.com/born-ml/ffnet/internal/matrix"
)

// SGD implements gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Velocities are allocated on the first Step and tied to the parameter
// shapes seen there.
type SGD struct {
	lr         float64
	momentum   float64
	velocities []*matrix.Matrix[float64]
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) (*SGD, error) {
	if config.LR < 0 || math.IsNaN(config.LR) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidLR, config.LR)
	}
	if config.Momentum < 0 || config.Momentum >= 1 || math.IsNaN(config.Momentum) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidMomentum, config.Momentum)
	}
	return &SGD{lr: config.LR, momentum: config.Momentum}, nil
}

// Step performs a single optimization step.
func (s *SGD) Step(params, grads []*matrix.Matrix[float64]) error {
	if err := checkShapes(params, grads); err != nil {
		return err
	}
	if s.momentum == 0 {
		for i, p := range params {
			if err := p.AddInPlace(grads[i].Scale(-s.lr)); err != nil {
				return fmt.Errorf("optim: update %d: %w", i, err)
			}
		}
		return nil
	}

	if err := s.ensureVelocities(params); err != nil {
		return err
	}
	for i, p := range params {
		v := s.velocities[i].Scale(s.momentum)
		if err := v.AddInPlace(grads[i]); err != nil {
			return fmt.Errorf("optim: velocity %d: %w", i, err)
		}
		s.velocities[i] = v
		if err := p.AddInPlace(v.Scale(-s.lr)); err != nil {
			return fmt.Errorf("optim: update %d: %w", i, err)
		}
	}
	return nil
}

func (s *SGD) ensureVelocities(params []*matrix.Matrix[float64]) error {
	if s.velocities == nil {
		s.velocities = make([]*matrix.Matrix[float64], len(params))
		for i, p := range params {
			v, err := matrix.Zeros[float64](p.Rows(), p.Cols())
			if err != nil {
				return fmt.Errorf("optim: velocity %d: %w", i, err)
			}
			s.velocities[i] = v
		}
		return nil
	}
	if len(s.velocities) != len(params) {
		return fmt.Errorf("%w: %d velocities, %d parameters", ErrParamCount, len(s.velocities), len(params))
	}
	for i, p := range params {
		if s.velocities[i].Dim() != p.Dim() {
			return &matrix.ShapeError{Op: fmt.Sprintf("velocity %d", i), Left: s.velocities[i].Dim(), Right: p.Dim()}
		}
	}
	return nil
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// Momentum returns the momentum factor.
func (s *SGD) Momentum() float64 {
	return s.momentum
}

// Velocities returns copies of the velocity buffers, or nil before the first
// Step with momentum.
func (s *SGD) Velocities() []*matrix.Matrix[float64] {
	if s.velocities == nil {
		return nil
	}
	out := make([]*matrix.Matrix[float64], len(s.velocities))
	for i, v := range s.velocities {
		out[i] = v.Clone()
	}
	return out
}

// Reset drops the velocity buffers.
func (s *SGD) Reset() {
	s.velocities = nil
}
