package ops

// Mul returns a * b.
//
// Backward pass:
//   - d(a*b)/da = b
//   - d(a*b)/db = a
func Mul(a, b float64) Result {
	return Result{
		Value:    a * b,
		Partials: []float64{b, a},
	}
}
