package ast

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	switch v := n.(type) {
	case *Program:
		return statementNodes(v.Statements)
	case *PrintExpression:
		return []Node{v.Expression}
	case *If:
		return append([]Node{v.Comparison}, statementNodes(v.Body)...)
	case *While:
		return append([]Node{v.Comparison}, statementNodes(v.Body)...)
	case *Let:
		return []Node{v.Expression}
	case *Comparison:
		return []Node{v.Left, v.Right}
	case *Expression:
		nodes := []Node{v.Term}
		for _, t := range v.Tail {
			nodes = append(nodes, t.Term)
		}
		return nodes
	case *Term:
		nodes := []Node{v.Unary}
		for _, u := range v.Tail {
			nodes = append(nodes, u.Unary)
		}
		return nodes
	case *Unary:
		return []Node{v.Primary}
	}
	return nil
}

func statementNodes(stmts []Statement) []Node {
	nodes := make([]Node, len(stmts))
	for i, s := range stmts {
		nodes[i] = s
	}
	return nodes
}

// Inspect visits root and its descendants in depth-first, source order.
// If f returns false, the children of that node are skipped.
//
// The traversal keeps its own stack, so tree depth never turns into call depth.
func Inspect(root Node, f func(Node) bool) {
	if root == nil {
		return
	}
	stack := []Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(n) {
			continue
		}
		children := Children(n)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}
