package compiler

import (
	"fmt"
	"io"
	"strings"
)

// FprintTokens writes one line per token:  line 3: IDENTIFIER -> count
func FprintTokens(w io.Writer, tokens []Token) {
	for _, t := range tokens {
		fmt.Fprintf(w, "line %d: %-11s -> %s\n", t.Line, t.Type, t.Lexeme)
	}
}

// FprintAST writes the tree rooted at node using box-drawing connectors.
// A nil node prints nothing.
func FprintAST(w io.Writer, node Node) {
	if node == nil {
		return
	}
	if p, ok := node.(*Program); ok && p == nil {
		return
	}
	printTree(w, node, "", true)
}

func printTree(w io.Writer, node Node, prefix string, last bool) {
	branch, indent := "├── ", "│   "
	if last {
		branch, indent = "└── ", "    "
	}
	fmt.Fprintf(w, "%s%s%s\n", prefix, branch, Label(node))

	children := node.Children()
	for i, child := range children {
		printTree(w, child, prefix+indent, i == len(children)-1)
	}
}

// Label is the one-line description of node used by the tree printer:
// the node kind followed by its name, value, operator and type.
func Label(node Node) string {
	var sb strings.Builder
	sb.WriteString(Kind(node))
	switch n := node.(type) {
	case *Program:
		fmt.Fprintf(&sb, " <%s>", n.ReturnType)
	case *Declaration:
		fmt.Fprintf(&sb, " <%s>", n.VarType)
	case *Assignment:
		fmt.Fprintf(&sb, " (%s)", n.Variable)
	case *Identifier:
		fmt.Fprintf(&sb, " (%s) <%s>", n.Name, n.DataType)
	case *Literal:
		fmt.Fprintf(&sb, " = %s <%s>", n, n.DataType)
	case *BinaryOp:
		fmt.Fprintf(&sb, " [%s] <%s>", n.Op, n.DataType)
	case *UnaryOp:
		fmt.Fprintf(&sb, " [%s] <%s>", n.Op, n.DataType)
	case *Grouping:
		fmt.Fprintf(&sb, " <%s>", n.DataType)
	}
	return sb.String()
}

// Kind returns the variant name of node, e.g. "IfStatement".
func Kind(node Node) string {
	switch node.(type) {
	case *Program:
		return "Program"
	case *Block:
		return "Block"
	case *Declaration:
		return "Declaration"
	case *Assignment:
		return "Assignment"
	case *IfStatement:
		return "IfStatement"
	case *WhileStatement:
		return "WhileStatement"
	case *ForStatement:
		return "ForStatement"
	case *DoWhileStatement:
		return "DoWhileStatement"
	case *ReturnStatement:
		return "ReturnStatement"
	case *EmptyStatement:
		return "EmptyStatement"
	case *BinaryOp:
		return "BinaryOp"
	case *UnaryOp:
		return "UnaryOp"
	case *Literal:
		return "Literal"
	case *Identifier:
		return "Identifier"
	case *Grouping:
		return "Grouping"
	default:
		return fmt.Sprintf("%T", node)
	}
}
