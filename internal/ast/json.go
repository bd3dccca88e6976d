package ast

// ToJSON converts a node into plain maps and slices suitable for encoding/json.
// Every object carries a "type" key naming the node.
func ToJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return map[string]interface{}{
			"type":       n.NodeType().String(),
			"statements": statementsJSON(n.Statements),
		}
	case *PrintString:
		return map[string]interface{}{
			"type": n.NodeType().String(),
			"text": n.Text,
		}
	case *PrintExpression:
		return map[string]interface{}{
			"type":       n.NodeType().String(),
			"expression": ToJSON(n.Expression),
		}
	case *If:
		return map[string]interface{}{
			"type":       n.NodeType().String(),
			"comparison": ToJSON(n.Comparison),
			"body":       statementsJSON(n.Body),
		}
	case *While:
		return map[string]interface{}{
			"type":       n.NodeType().String(),
			"comparison": ToJSON(n.Comparison),
			"body":       statementsJSON(n.Body),
		}
	case *Label:
		return map[string]interface{}{"type": n.NodeType().String(), "name": n.Name}
	case *Goto:
		return map[string]interface{}{"type": n.NodeType().String(), "name": n.Name}
	case *Let:
		return map[string]interface{}{
			"type":       n.NodeType().String(),
			"ident":      n.Ident,
			"expression": ToJSON(n.Expression),
		}
	case *Input:
		return map[string]interface{}{"type": n.NodeType().String(), "ident": n.Ident}
	case *Comparison:
		return map[string]interface{}{
			"type":  n.NodeType().String(),
			"op":    n.Op.String(),
			"left":  ToJSON(n.Left),
			"right": ToJSON(n.Right),
		}
	case *Expression:
		tail := make([]interface{}, len(n.Tail))
		for i, t := range n.Tail {
			tail[i] = map[string]interface{}{"op": t.Op.String(), "term": ToJSON(t.Term)}
		}
		return map[string]interface{}{
			"type": n.NodeType().String(),
			"term": ToJSON(n.Term),
			"tail": tail,
		}
	case *Term:
		tail := make([]interface{}, len(n.Tail))
		for i, u := range n.Tail {
			tail[i] = map[string]interface{}{"op": u.Op.String(), "unary": ToJSON(u.Unary)}
		}
		return map[string]interface{}{
			"type":  n.NodeType().String(),
			"unary": ToJSON(n.Unary),
			"tail":  tail,
		}
	case *Unary:
		return map[string]interface{}{
			"type":    n.NodeType().String(),
			"sign":    n.Sign.String(),
			"primary": ToJSON(n.Primary),
		}
	case *Primary:
		if n.Kind == IdentPrimary {
			return map[string]interface{}{"type": n.NodeType().String(), "ident": n.Ident}
		}
		return map[string]interface{}{"type": n.NodeType().String(), "number": n.Number}
	}
	return nil
}

func statementsJSON(stmts []Statement) []interface{} {
	out := make([]interface{}, len(stmts))
	for i, s := range stmts {
		out[i] = ToJSON(s)
	}
	return out
}
