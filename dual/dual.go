// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides forward-mode automatic differentiation with dual numbers.
//
// Example:
//
//	import "github.com/born-ml/dualgrad/dual"
//
//	func main() {
//	    // f(x) = x² + 2x + 1
//	    f := func(x dual.Number) dual.Number {
//	        return x.PowReal(2).Add(x.MulReal(2)).AddReal(1)
//	    }
//
//	    r := dual.Forward(f, 3)
//	    fmt.Println(r.Val, r.Dual) // 16 8
//	}
package dual

import (
	"github.com/born-ml/dualgrad/internal/dual"
)

// Number is a value paired with its derivative with respect to one input.
type Number = dual.Number

// New returns a constant with zero derivative.
func New(val float64) Number {
	return dual.New(val)
}

// Variable returns the differentiation variable (derivative 1).
func Variable(val float64) Number {
	return dual.Variable(val)
}

// Tanh returns tanh(a).
func Tanh(a Number) Number {
	return dual.Tanh(a)
}

// Forward evaluates f and its derivative at value.
func Forward(f func(Number) Number, value float64) Number {
	return dual.Forward(f, value)
}
