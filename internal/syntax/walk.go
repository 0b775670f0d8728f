package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Body:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *VariableDeclaration:
		Walk(n.Name, v)
		if n.Type != nil {
			Walk(n.Type, v)
		}
		if n.Value != nil {
			Walk(n.Value, v)
		}

	case *FunctionDeclaration:
		Walk(n.Name, v)
		for _, p := range n.Params {
			Walk(p, v)
		}
		if n.Result != nil {
			Walk(n.Result, v)
		}
		if n.Body != nil {
			Walk(n.Body, v)
		}

	case *Parameter:
		if n.Name != nil {
			Walk(n.Name, v)
		}
		if n.Type != nil {
			Walk(n.Type, v)
		}
		if n.Value != nil {
			Walk(n.Value, v)
		}

	case *FunctionalReturn:
		if n.Result != nil {
			Walk(n.Result, v)
		}

	case *WhileLoop:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *ConditionalTree:
		for _, b := range n.Branches {
			Walk(b, v)
		}
		if n.Default != nil {
			Walk(n.Default, v)
		}

	case *Branch:
		Walk(n.Cond, v)
		Walk(n.Result, v)

	case *Call:
		Walk(n.Fun, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	case *Member:
		Walk(n.Parent, v)
		Walk(n.Child, v)

	case *UnaryOperator:
		Walk(n.X, v)

	case *BinaryOperator:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *Identifier, *String, *Number, *Boolean, *Null, *LoopControl:
		// leaves
	}
}

// Inspect traverses an AST calling f for each node.
// If f returns false, children are not visited.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, f)
}

// Count returns the number of nodes reachable from node, node included.
func Count(node Node) int {
	n := 0
	Walk(node, func(Node) bool {
		n++
		return true
	})
	return n
}
