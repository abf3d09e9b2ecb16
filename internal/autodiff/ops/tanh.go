package ops

import "github.com/born-ml/dualgrad/internal/numeric"

// Tanh returns the hyperbolic tangent of a.
//
// For tanh(a):
// d(tanh(a))/da = 1 - tanh²(a).
func Tanh(a float64) Result {
	return Result{
		Value:    numeric.Tanh(a),
		Partials: []float64{numeric.TanhGrad(a)},
	}
}
