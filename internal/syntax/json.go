package syntax

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toTree(node))
}

// FprintYAML writes a YAML representation of the AST to w.
// The document has the same shape as the JSON output.
func FprintYAML(w io.Writer, node Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toTree(node)); err != nil {
		return err
	}
	return enc.Close()
}

// toTree converts node into nested maps and slices that both encoders
// understand.
func toTree(node Node) interface{} {
	if node == nil {
		return nil
	}

	m := map[string]interface{}{
		"type": node.Kind().String(),
		"pos":  node.Pos().String(),
	}

	switch n := node.(type) {
	case *Body:
		m["stmts"] = mapSlice(n.Stmts, func(e Expr) interface{} { return toTree(e) })

	case *VariableDeclaration:
		m["mutable"] = n.Mutable
		m["name"] = n.Name.Value
		if n.Type != nil {
			m["vartype"] = n.Type.Value
		}
		if n.Value != nil {
			m["value"] = toTree(n.Value)
		}

	case *FunctionDeclaration:
		m["name"] = n.Name.Value
		m["params"] = mapSlice(n.Params, func(p *Parameter) interface{} { return toTree(p) })
		if n.Result != nil {
			m["result"] = n.Result.Value
		}
		if n.Body != nil {
			m["body"] = toTree(n.Body)
		}

	case *Parameter:
		if n.Name != nil {
			m["name"] = n.Name.Value
		}
		if n.Type != nil {
			m["paramtype"] = n.Type.Value
		}
		if n.Value != nil {
			m["value"] = toTree(n.Value)
		}

	case *FunctionalReturn:
		if n.Result != nil {
			m["result"] = toTree(n.Result)
		}

	case *LoopControl:
		m["token"] = n.Tok.String()

	case *WhileLoop:
		m["cond"] = toTree(n.Cond)
		m["body"] = toTree(n.Body)

	case *ConditionalTree:
		m["branches"] = mapSlice(n.Branches, func(b *Branch) interface{} { return toTree(b) })
		if n.Default != nil {
			m["default"] = toTree(n.Default)
		}

	case *Branch:
		m["cond"] = toTree(n.Cond)
		m["result"] = toTree(n.Result)

	case *Identifier:
		m["value"] = n.Value

	case *Call:
		m["fun"] = toTree(n.Fun)
		m["args"] = mapSlice(n.Args, func(p *Parameter) interface{} { return toTree(p) })

	case *Member:
		m["parent"] = toTree(n.Parent)
		m["child"] = toTree(n.Child)

	case *UnaryOperator:
		m["op"] = n.Op.String()
		m["fixity"] = n.Fixity.String()
		m["x"] = toTree(n.X)

	case *BinaryOperator:
		m["op"] = n.Op.String()
		m["x"] = toTree(n.X)
		m["y"] = toTree(n.Y)

	case *String:
		m["value"] = n.Value

	case *Number:
		m["value"] = n.Value
		m["literal"] = n.Lit

	case *Boolean:
		m["value"] = n.Value

	case *Null:
	}
	return m
}

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
