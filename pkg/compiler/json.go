package compiler

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the tree rooted at node to w.
// A nil node is written as null.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) any {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		if n == nil {
			return nil
		}
		return map[string]any{
			"type":       "Program",
			"line":       n.Line,
			"returnType": n.ReturnType.String(),
			"body":       toJSON(n.Body),
		}

	case *Block:
		return map[string]any{
			"type":         "Block",
			"line":         n.Line,
			"declarations": mapSlice(n.Declarations, func(d *Declaration) any { return toJSON(d) }),
			"commands":     mapSlice(n.Commands, func(s Stmt) any { return toJSON(s) }),
		}

	case *Declaration:
		return map[string]any{
			"type":      "Declaration",
			"line":      n.Line,
			"varType":   n.VarType.String(),
			"variables": mapSlice(n.Variables, func(i *Identifier) any { return toJSON(i) }),
		}

	case *Assignment:
		return map[string]any{
			"type":     "Assignment",
			"line":     n.Line,
			"variable": n.Variable,
			"value":    toJSON(n.Value),
		}

	case *IfStatement:
		m := map[string]any{
			"type":       "IfStatement",
			"line":       n.Line,
			"condition":  toJSON(n.Condition),
			"thenBranch": toJSON(n.Then),
			"elseBranch": nil,
		}
		if n.Else != nil {
			m["elseBranch"] = toJSON(n.Else)
		}
		return m

	case *WhileStatement:
		return map[string]any{
			"type":      "WhileStatement",
			"line":      n.Line,
			"condition": toJSON(n.Condition),
			"body":      toJSON(n.Body),
		}

	case *ForStatement:
		m := map[string]any{
			"type":        "ForStatement",
			"line":        n.Line,
			"initializer": nil,
			"condition":   nil,
			"increment":   nil,
			"body":        toJSON(n.Body),
		}
		if n.Init != nil {
			m["initializer"] = toJSON(n.Init)
		}
		if n.Condition != nil {
			m["condition"] = toJSON(n.Condition)
		}
		if n.Increment != nil {
			m["increment"] = toJSON(n.Increment)
		}
		return m

	case *DoWhileStatement:
		return map[string]any{
			"type":      "DoWhileStatement",
			"line":      n.Line,
			"body":      toJSON(n.Body),
			"condition": toJSON(n.Condition),
		}

	case *ReturnStatement:
		m := map[string]any{
			"type":  "ReturnStatement",
			"line":  n.Line,
			"value": nil,
		}
		if n.Value != nil {
			m["value"] = toJSON(n.Value)
		}
		return m

	case *EmptyStatement:
		return map[string]any{
			"type": "EmptyStatement",
			"line": n.Line,
		}

	case *BinaryOp:
		return map[string]any{
			"type":     "BinaryOp",
			"line":     n.Line,
			"operator": n.Op.String(),
			"left":     toJSON(n.Left),
			"right":    toJSON(n.Right),
			"dataType": n.DataType.String(),
		}

	case *UnaryOp:
		return map[string]any{
			"type":     "UnaryOp",
			"line":     n.Line,
			"operator": n.Op.String(),
			"operand":  toJSON(n.Operand),
			"dataType": n.DataType.String(),
		}

	case *Literal:
		return map[string]any{
			"type":     "Literal",
			"line":     n.Line,
			"value":    n.Value,
			"dataType": n.DataType.String(),
		}

	case *Identifier:
		return map[string]any{
			"type":     "Identifier",
			"line":     n.Line,
			"name":     n.Name,
			"dataType": n.DataType.String(),
		}

	case *Grouping:
		return map[string]any{
			"type":       "Grouping",
			"line":       n.Line,
			"expression": toJSON(n.Expr),
			"dataType":   n.DataType.String(),
		}
	}
	return nil
}

func mapSlice[T any](items []T, f func(T) any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, f(item))
	}
	return out
}
