// Package dual implements forward-mode automatic differentiation with dual
// numbers.
//
// A Number pairs a value with its derivative with respect to one seeded input.
// Every operation returns a new Number whose Dual part follows the sum,
// product and power rules, so the derivative is ready as soon as the
// expression has been evaluated. No graph is built and nothing is mutated.
//
// Operands that are plain float64 constants use the *Real methods (AddReal,
// MulReal, PowReal); operands that are themselves dual numbers use Add, Mul and
// Pow.
package dual

import (
	"fmt"

	"github.com/born-ml/dualgrad/internal/numeric"
)

// Number is a value with its derivative with respect to a single seeded input.
type Number struct {
	Val  float64 // Value of the expression
	Dual float64 // Derivative of the expression with respect to the seed
}

// New returns a constant: val with zero derivative.
func New(val float64) Number {
	return Number{Val: val}
}

// Variable returns the differentiation variable: val with derivative 1.
func Variable(val float64) Number {
	return Number{Val: val, Dual: 1.0}
}

// Add returns a + b.
func (a Number) Add(b Number) Number {
	return Number{
		Val:  a.Val + b.Val,
		Dual: a.Dual + b.Dual,
	}
}

// AddReal returns a + c for a constant c.
func (a Number) AddReal(c float64) Number {
	return Number{
		Val:  a.Val + c,
		Dual: a.Dual,
	}
}

// Mul returns a * b, using the product rule.
func (a Number) Mul(b Number) Number {
	return Number{
		Val:  a.Val * b.Val,
		Dual: a.Dual*b.Val + a.Val*b.Dual,
	}
}

// MulReal returns a * c for a constant c.
func (a Number) MulReal(c float64) Number {
	return Number{
		Val:  a.Val * c,
		Dual: a.Dual * c,
	}
}

// Pow returns a ** b where both base and exponent carry derivatives:
//
//	d(a^b) = a^b * (b' * ln(a) + b * a' / a)
//
// The logarithm is always evaluated, so Pow panics with an error wrapping
// numeric.ErrDomain when a.Val <= 0, even if b is a constant. Use PowReal for
// constant exponents.
func (a Number) Pow(b Number) Number {
	p := numeric.Pow(a.Val, b.Val)
	return Number{
		Val:  p,
		Dual: p * (b.Dual*numeric.Log(a.Val) + b.Val*a.Dual/a.Val),
	}
}

// PowReal returns a ** c for a constant c, using the power rule
// d(a^c) = c * a^(c-1) * a'.
//
// Panics with an error wrapping numeric.ErrDivisionByZero if a.Val is zero
// and c-1 is negative.
func (a Number) PowReal(c float64) Number {
	return Number{
		Val:  numeric.Pow(a.Val, c),
		Dual: c * numeric.Pow(a.Val, c-1) * a.Dual,
	}
}

// Tanh returns tanh(a), with d(tanh(a)) = (1 - tanh²(a)) * a'.
func Tanh(a Number) Number {
	return Number{
		Val:  numeric.Tanh(a.Val),
		Dual: numeric.TanhGrad(a.Val) * a.Dual,
	}
}

// String returns the number as (val+dualϵ).
func (a Number) String() string {
	return fmt.Sprintf("(%g%+gϵ)", a.Val, a.Dual)
}

// Forward evaluates f at value and its derivative there.
//
// The input is seeded as Variable(value); the result's Val is f(value) and its
// Dual is f'(value).
func Forward(f func(Number) Number, value float64) Number {
	seed := Variable(value)
	return f(seed)
}
