// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gradcheck verifies autodiff derivatives against finite differences.
package gradcheck

import (
	"github.com/born-ml/dualgrad/autodiff"
	"github.com/born-ml/dualgrad/dual"
	"github.com/born-ml/dualgrad/internal/gradcheck"
)

// DefaultTolerance is the absolute tolerance suitable for small expressions.
const DefaultTolerance = gradcheck.DefaultTolerance

// MismatchError reports a derivative that disagrees with its numerical estimate.
type MismatchError = gradcheck.MismatchError

// Derivative estimates f'(x) with a central difference.
func Derivative(f func(float64) float64, x float64) float64 {
	return gradcheck.Derivative(f, x)
}

// CheckForward compares forward-mode derivatives with a numerical estimate.
func CheckForward(f func(dual.Number) dual.Number, x, tol float64) error {
	return gradcheck.CheckForward(f, x, tol)
}

// CheckBackward compares reverse-mode leaf gradients with a numerical gradient.
func CheckBackward(build func(leaves []*autodiff.Node) *autodiff.Node, x []float64, tol float64) error {
	return gradcheck.CheckBackward(build, x, tol)
}
