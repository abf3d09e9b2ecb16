package autodiff

// pending is a gradient contribution waiting to be added to a node.
type pending struct {
	node *Node
	grad float64
}

// Backward seeds n with gradient 1.0 and propagates it to every node n was
// computed from. It is equivalent to Backprop(1.0).
//
// Gradients accumulate: calling Backward twice without ZeroGrad doubles every
// gradient in the graph.
func (n *Node) Backward() {
	n.Backprop(1.0)
}

// Backprop adds gradient to n.Grad and, for every edge, propagates
// Local * gradient to the parent, depth first.
//
// Algorithm:
//  1. Push (n, gradient) on a stack
//  2. Pop (node, g), add g to node.grad
//  3. Push (parent, local * g) for each of node's edges
//  4. Repeat until the stack is empty
//
// There is no memoization: a node reached through k paths is visited k times
// and its whole upstream subgraph is walked again each time. The final
// gradients are the same as a topological pass because contributions are
// summed. Nodes are visited in the same order as a recursive walk, but the
// explicit stack keeps deep graphs from growing the goroutine stack.
func (n *Node) Backprop(gradient float64) {
	walk(n, gradient, func(p pending) {
		p.node.grad += p.grad
	})
}

// CountVisits returns the number of node visits a Backprop from n performs.
// For a tree it equals the number of nodes; shared subgraphs are counted once
// per path that reaches them.
func CountVisits(n *Node) int {
	visits := 0
	walk(n, 1.0, func(pending) {
		visits++
	})
	return visits
}

// walk visits every path from root to the leaves in depth-first preorder,
// handing each visit the gradient that arrives along that path.
func walk(root *Node, gradient float64, visit func(pending)) {
	stack := []pending{{node: root, grad: gradient}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visit(top)

		// Push in reverse so the first parent is handled first.
		parents := top.node.parents
		for i := len(parents) - 1; i >= 0; i-- {
			stack = append(stack, pending{
				node: parents[i].Parent,
				grad: parents[i].Local * top.grad, // chain rule
			})
		}
	}
}

// ZeroGrad resets the gradient of n and of every node reachable from it.
// Each node is reset once, however many paths lead to it.
func (n *Node) ZeroGrad() {
	for _, node := range n.Reachable() {
		node.grad = 0
	}
}

// Reachable returns n followed by every distinct node it depends on,
// in depth-first preorder.
func (n *Node) Reachable() []*Node {
	visited := make(map[*Node]bool)
	var order []*Node

	stack := []*Node{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[top] {
			continue
		}
		visited[top] = true
		order = append(order, top)

		for i := len(top.parents) - 1; i >= 0; i-- {
			if parent := top.parents[i].Parent; !visited[parent] {
				stack = append(stack, parent)
			}
		}
	}
	return order
}
