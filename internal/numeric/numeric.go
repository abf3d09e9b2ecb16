// Package numeric holds the float primitives shared by both autodiff engines.
//
// The functions wrap package math but fault the way a strict host arithmetic
// does: a zero base raised to a negative power and a logarithm outside its
// domain panic with an error wrapping ErrDivisionByZero or ErrDomain instead of
// quietly producing ±Inf. A negative base with a fractional exponent is not a
// fault and yields NaN, as math.Pow does.
package numeric

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDivisionByZero is carried by panics from Pow when the base is zero
	// and the exponent is negative.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrDomain is carried by panics from Log for non-positive arguments.
	ErrDomain = errors.New("math domain error")
)

// Pow returns x**y.
// Panics with an error wrapping ErrDivisionByZero if x == 0 and y < 0.
func Pow(x, y float64) float64 {
	if x == 0 && y < 0 {
		panic(fmt.Errorf("pow(%v, %v): %w", x, y, ErrDivisionByZero))
	}
	return math.Pow(x, y)
}

// Log returns the natural logarithm of x.
// Panics with an error wrapping ErrDomain if x <= 0.
func Log(x float64) float64 {
	if x <= 0 {
		panic(fmt.Errorf("log(%v): %w", x, ErrDomain))
	}
	return math.Log(x)
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x float64) float64 {
	return math.Tanh(x)
}

// TanhGrad returns d(tanh(x))/dx = 1 - tanh²(x).
func TanhGrad(x float64) float64 {
	t := math.Tanh(x)
	return 1 - t*t
}
