package nn

import (
	"fmt"

	"github.com/born-ml/ffnet/internal/matrix"
)

// Forward propagates xs through every layer, a_{i+1} = sigmoid(a_i · W_i)
// with a_0 = xs, caches each a_{i+1} for Backward and returns the output.
//
// xs must have shape (samples, InputSize).
func (n *Network) Forward(xs *matrix.Matrix[float64]) (*matrix.Matrix[float64], error) {
	acts, err := n.propagate(xs)
	if err != nil {
		return nil, err
	}
	n.activations = acts
	return acts[len(acts)-1].Clone(), nil
}

// Predict runs a forward pass without touching the weights or the cached
// activations.
func (n *Network) Predict(xs *matrix.Matrix[float64]) (*matrix.Matrix[float64], error) {
	acts, err := n.propagate(xs)
	if err != nil {
		return nil, err
	}
	return acts[len(acts)-1], nil
}

func (n *Network) propagate(xs *matrix.Matrix[float64]) ([]*matrix.Matrix[float64], error) {
	acts := make([]*matrix.Matrix[float64], 0, len(n.weights))
	curr := xs
	for i, w := range n.weights {
		z, err := curr.Dot(w)
		if err != nil {
			return nil, fmt.Errorf("nn: forward layer %d: %w", i, err)
		}
		curr = matrix.Sigmoid(z)
		acts = append(acts, curr)
	}
	return acts, nil
}

// Backward backpropagates the error ys - predicted through the network and
// updates every weight matrix in place.
//
// For each layer i, from the output back to the input:
//
//	delta = error ⊙ sigmoidPrime(a_{i+1})
//	error = delta · W_iᵀ
//	grad_i = -(a_iᵀ · delta)
//
// where a_{i+1} is the activation cached by the preceding Forward (the output
// layer uses predicted) and a_0 = xs. Once every gradient is known the
// optimizer applies them; with the default SGD and no momentum that is
// W_i += lr · (a_iᵀ · delta). Shapes are checked up front, so a failed call
// leaves the weights untouched.
func (n *Network) Backward(xs, ys, predicted *matrix.Matrix[float64]) error {
	last := len(n.weights) - 1
	if len(n.activations) != len(n.weights) {
		return ErrNoForwardPass
	}
	if err := n.checkBatch(xs, ys); err != nil {
		return err
	}
	if predicted.Dim() != ys.Dim() {
		return &matrix.ShapeError{Op: "backward", Left: predicted.Dim(), Right: ys.Dim()}
	}
	if cached := n.activations[0].Rows(); cached != xs.Rows() {
		return fmt.Errorf("%w: cached activations have %d samples, xs has %d",
			matrix.ErrDimensionMismatch, cached, xs.Rows())
	}

	errM, err := ys.Sub(predicted)
	if err != nil {
		return fmt.Errorf("nn: output error: %w", err)
	}

	grads := make([]*matrix.Matrix[float64], len(n.weights))
	for i := last; i >= 0; i-- {
		out := predicted
		if i < last {
			out = n.activations[i]
		}
		delta, err := errM.Mul(matrix.SigmoidPrime(out))
		if err != nil {
			return fmt.Errorf("nn: backward layer %d: %w", i, err)
		}

		if i > 0 {
			errM, err = delta.Dot(n.weights[i].Transpose())
			if err != nil {
				return fmt.Errorf("nn: backward layer %d: %w", i, err)
			}
		}

		in := xs
		if i > 0 {
			in = n.activations[i-1]
		}
		step, err := in.Transpose().Dot(delta)
		if err != nil {
			return fmt.Errorf("nn: gradient layer %d: %w", i, err)
		}
		grads[i] = step.Scale(-1)
	}

	if err := n.opt.Step(n.weights, grads); err != nil {
		return fmt.Errorf("nn: update: %w", err)
	}
	return nil
}

// Train runs iterations rounds of Forward followed by Backward on the whole
// batch and returns the prediction of the trained network.
//
// The progress reporter sees Start(iterations), one Advance per round and
// Finish. There is no early exit: the loop always runs every iteration.
func (n *Network) Train(xs, ys *matrix.Matrix[float64], iterations int) (*matrix.Matrix[float64], error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIterations, iterations)
	}
	if err := n.checkBatch(xs, ys); err != nil {
		return nil, err
	}

	n.progress.Start(iterations)
	defer n.progress.Finish()

	for i := 1; i <= iterations; i++ {
		predicted, err := n.Forward(xs)
		if err != nil {
			return nil, err
		}
		if err := n.Backward(xs, ys, predicted); err != nil {
			return nil, err
		}
		n.progress.Advance()

		if n.logEvery > 0 && i%n.logEvery == 0 {
			loss, _ := matrix.MSEDiff(predicted, ys)
			n.logger.Debug("training", "iteration", i, "total", iterations, "loss", loss)
		}
	}

	return n.Forward(xs)
}

// Loss returns the mean squared error between Predict(xs) and ys.
func (n *Network) Loss(xs, ys *matrix.Matrix[float64]) (float64, error) {
	predicted, err := n.Predict(xs)
	if err != nil {
		return 0, err
	}
	return matrix.MSEDiff(predicted, ys)
}

// checkBatch verifies xs is (samples, InputSize) and ys is (samples, OutputSize).
func (n *Network) checkBatch(xs, ys *matrix.Matrix[float64]) error {
	want := matrix.Dim{Rows: xs.Rows(), Cols: n.inputSize}
	if xs.Dim() != want {
		return &matrix.ShapeError{Op: "inputs", Left: xs.Dim(), Right: want}
	}
	want.Cols = n.outputSize
	if ys.Dim() != want {
		return &matrix.ShapeError{Op: "targets", Left: ys.Dim(), Right: want}
	}
	return nil
}
