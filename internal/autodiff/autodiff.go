// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// Every arithmetic method on Node returns a new Node that remembers its parent
// nodes together with the local partial derivative of the operation (see the
// ops package). Calling Backward on the final node walks those edges back to
// the leaves, multiplying local derivatives along each path (chain rule) and
// adding the products into each node's Grad.
//
// Architecture:
//   - Node: an immutable value plus a mutable gradient accumulator
//   - Edge: (parent, local derivative), fixed at construction
//   - ops: local derivative rules, one file per operation
//   - Backprop: depth-first accumulation with no memoization
//
// Usage:
//
//	a := autodiff.New(3)
//	b := autodiff.New(5)
//	c := autodiff.New(1)
//
//	// 3c² + 5c + 9
//	y := a.Mul(c.Pow(2)).Add(b.Mul(c)).Add(autodiff.New(9))
//	y.Backward()
//	fmt.Println(y.Value(), c.Grad()) // 17 11
//
// Negation records no edge. The result of Neg is a fresh leaf, so gradients
// never pass through it, and Sub (built as a + (-b)) leaves b.Grad untouched.
// Div is built from Mul and Pow and differentiates both operands.
//
// Node is not safe for concurrent use: Backprop adds into Grad without
// synchronization, so overlapping passes over shared nodes race.
package autodiff

import (
	"fmt"

	"github.com/born-ml/dualgrad/internal/autodiff/ops"
)

// Edge links a node to one of the nodes it was computed from.
type Edge struct {
	Parent *Node   // Operand node
	Local  float64 // d(child)/d(Parent) at construction time
}

// Node is one scalar in a computation graph.
type Node struct {
	value   float64 // Forward value, immutable
	grad    float64 // Accumulated d(root)/d(node)
	parents []Edge  // Empty for leaves
}

// New creates a leaf node holding value, with no parents and zero gradient.
// Use it for inputs and constants alike.
func New(value float64) *Node {
	return &Node{value: value}
}

// newFromResult wires an op result to its operand nodes.
// Partials and operands are matched by position.
func newFromResult(r ops.Result, operands ...*Node) *Node {
	n := &Node{value: r.Value}
	if r.IsLeaf() {
		return n
	}
	n.parents = make([]Edge, len(r.Partials))
	for i, local := range r.Partials {
		n.parents[i] = Edge{Parent: operands[i], Local: local}
	}
	return n
}

// Value returns the forward value of the node.
func (n *Node) Value() float64 {
	return n.value
}

// Grad returns the gradient accumulated so far.
// It is zero until a backward pass reaches the node.
func (n *Node) Grad() float64 {
	return n.grad
}

// Parents returns a copy of the node's edges, in operand order.
func (n *Node) Parents() []Edge {
	if len(n.parents) == 0 {
		return nil
	}
	out := make([]Edge, len(n.parents))
	copy(out, n.parents)
	return out
}

// IsLeaf reports whether the node has no parents.
func (n *Node) IsLeaf() bool {
	return len(n.parents) == 0
}

// String renders the node as Var(v=<value>, grad=<grad>).
func (n *Node) String() string {
	return fmt.Sprintf("Var(v=%g, grad=%g)", n.value, n.grad)
}

// Add returns n + other.
func (n *Node) Add(other *Node) *Node {
	return newFromResult(ops.Add(n.value, other.value), n, other)
}

// Mul returns n * other.
func (n *Node) Mul(other *Node) *Node {
	return newFromResult(ops.Mul(n.value, other.value), n, other)
}

// Pow returns n ** p. The exponent is a plain number and gets no edge.
//
// Panics with an error wrapping numeric.ErrDivisionByZero if n is zero and
// p or p-1 is negative.
func (n *Node) Pow(p float64) *Node {
	return newFromResult(ops.Pow(n.value, p), n)
}

// Tanh returns tanh(n).
func (n *Node) Tanh() *Node {
	return newFromResult(ops.Tanh(n.value), n)
}

// Neg returns -n as a new leaf. The result has no edge back to n.
func (n *Node) Neg() *Node {
	return newFromResult(ops.Neg(n.value))
}

// Sub returns n + (-other). Because Neg disconnects its result, the gradient
// reaches n but never other.
func (n *Node) Sub(other *Node) *Node {
	return n.Add(other.Neg())
}

// Div returns n * other**-1.
//
// Panics with an error wrapping numeric.ErrDivisionByZero if other is zero.
func (n *Node) Div(other *Node) *Node {
	return n.Mul(other.Pow(-1))
}

// Tanh returns tanh(n).
func Tanh(n *Node) *Node {
	return n.Tanh()
}
