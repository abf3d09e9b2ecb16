package ops

// Add returns a + b.
//
// Backward pass:
//   - d(a+b)/da = 1
//   - d(a+b)/db = 1
func Add(a, b float64) Result {
	return Result{
		Value:    a + b,
		Partials: []float64{1.0, 1.0},
	}
}
