package ops

// Neg returns -a as a leaf result.
//
// Neg records no partial derivative, so a node built from it is disconnected
// from its operand: no gradient flows back through negation, and a - b built
// as a + (-b) never reaches b. Callers that need d(-a)/da = -1 should use
// Mul with a constant -1 instead.
func Neg(a float64) Result {
	return Result{Value: -a}
}
