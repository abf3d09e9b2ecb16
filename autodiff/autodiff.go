// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Expressions are built from Nodes with Add, Mul, Pow, Tanh, Neg, Sub and Div.
// Backward on the result walks the recorded graph and accumulates into every
// node the derivative of the result with respect to that node.
//
// Example:
//
//	import "github.com/born-ml/dualgrad/autodiff"
//
//	func main() {
//	    a := autodiff.New(6)
//	    b := autodiff.New(2)
//
//	    p := a.Div(b)
//	    p.Backward()
//
//	    fmt.Println(p.Value(), a.Grad(), b.Grad()) // 3 0.5 -1.5
//	}
//
// Neg returns a detached leaf, so no gradient flows through negation or into
// the right operand of Sub. Gradients accumulate across Backward calls; use
// ZeroGrad to reset them.
package autodiff

import (
	"github.com/born-ml/dualgrad/internal/autodiff"
)

// Node is one scalar value in a computation graph.
type Node = autodiff.Node

// Edge links a node to an operand together with the local derivative.
type Edge = autodiff.Edge

// New creates a leaf node for an input or a constant.
//
// Example:
//
//	x := autodiff.New(3)
//	y := x.Mul(x)
//	y.Backward() // x.Grad() == 6
func New(value float64) *Node {
	return autodiff.New(value)
}

// Tanh returns tanh(n).
func Tanh(n *Node) *Node {
	return autodiff.Tanh(n)
}

// CountVisits returns the number of node visits a Backprop from n performs.
func CountVisits(n *Node) int {
	return autodiff.CountVisits(n)
}
