package ops

import "github.com/born-ml/dualgrad/internal/numeric"

// Pow returns a ** p, where p is a plain exponent rather than a graph operand.
//
// Backward pass:
//   - d(a^p)/da = p * a^(p-1)
//
// Both powers go through numeric.Pow, so a zero base panics with
// numeric.ErrDivisionByZero whenever either exponent is negative
// (for example p = 0.5 at a = 0, whose derivative diverges).
// A negative base with a fractional exponent yields NaN.
func Pow(a, p float64) Result {
	value := numeric.Pow(a, p)
	return Result{
		Value:    value,
		Partials: []float64{p * numeric.Pow(a, p-1)},
	}
}
