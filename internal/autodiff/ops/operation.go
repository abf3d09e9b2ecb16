// Package ops defines the local derivative rules of the scalar operations.
//
// Each operation is a pure function over float64 operands that returns the
// forward value together with the partial derivative of that value with
// respect to each graph operand. The autodiff package turns those partials
// into parent edges; the chain rule is applied later, during backprop.
//
// Supported operations:
//   - Add: a + b (d/da = 1, d/db = 1)
//   - Mul: a * b (d/da = b, d/db = a)
//   - Pow: a ** p for a plain exponent p (d/da = p * a**(p-1))
//   - Tanh: tanh(a) (d/da = 1 - tanh²(a))
//   - Neg: -a (no partials, the result is a leaf)
package ops

// Result is the outcome of applying an operation to its operand values.
type Result struct {
	// Value is the forward value of the operation.
	Value float64

	// Partials holds d(Value)/d(operand) for every graph operand, in operand
	// order. Operands that are plain constants (such as the exponent of Pow)
	// have no entry.
	Partials []float64
}

// IsLeaf reports whether the result carries no partials.
func (r Result) IsLeaf() bool {
	return len(r.Partials) == 0
}
