// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a minimal feed-forward neural network trainer.
//
// # Overview
//
// A Network is a stack of fully connected layers with sigmoid activations
// and no biases, trained by full-batch gradient descent on squared error:
//   - New: validate a Config and draw every weight from U[0,1) or N(0,1)
//   - Forward / Predict: propagate inputs through every layer
//   - Backward: backpropagate ys - predicted and update weights in place
//   - Train: a fixed number of Forward → Backward rounds
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ffnet/matrix"
//	    "github.com/born-ml/ffnet/nn"
//	)
//
//	func main() {
//	    xs := matrix.MustFromRows([][]float64{{0.67, 1}, {0.33, 0.56}, {1, 0.67}})
//	    ys := matrix.MustFromRows([][]float64{{0.92}, {0.86}, {0.89}})
//
//	    net, err := nn.New(nn.Config{
//	        InputSize:   2,
//	        OutputSize:  1,
//	        HiddenSizes: []int{3},
//	        Seed:        42,
//	    }, nn.WithProgress(nn.NewProgressBar(os.Stderr, "training")))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    prediction, err := net.Train(xs, ys, 1000)
//	}
//
// # Optimizers
//
// Backward computes the loss gradient of every weight matrix and hands them to
// an optim.Optimizer. By default that is SGD built from Config.LearningRate and
// Config.Momentum; with zero momentum the update is W += lr · (aᵀ · delta).
// WithOptimizer installs a different one.
//
// # Reproducibility
//
// Weights come from a PCG source seeded with Config.Seed, so equal configs
// give equal networks and equal training runs. Use WithSource for a custom
// random source.
package nn
