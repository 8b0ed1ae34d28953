// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the weight update rules used by nn.Network.
//
// # Overview
//
// This package contains:
//   - SGD: gradient descent with optional momentum
//   - Optimizer interface for custom update rules
//
// A Network builds an SGD optimizer from Config.LearningRate and
// Config.Momentum. Pass a different one with nn.WithOptimizer:
//
//	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.5, Momentum: 0.9})
//	if err != nil {
//	    return err
//	}
//	net, err := nn.New(cfg, nn.WithOptimizer(sgd))
//
// # Optimizers
//
// SGD without momentum:
//
//	param = param - lr * gradient
//
// SGD with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Gradients point uphill on the loss, so the plain rule is the same update as
// W += lr · (aᵀ · delta) from backpropagation.
package optim
