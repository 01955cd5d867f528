package compiler

import (
	"fmt"
	"strings"
)

// Node is implemented by every AST node. Children lists the direct child
// nodes in source order; absent optional parts are left out.
type Node interface {
	Children() []Node
	String() string
}

//  Expression nodes

// Expr is implemented by every node that produces a value. Type is resolved
// while parsing, bottom-up.
type Expr interface {
	Node
	exprNode()
	Type() DataType
}

// Literal is an integer, float or character constant. Value holds the source
// text, without the quotes for characters.
//
//	x = 'a';
//	     ^^^  Literal{Value: "a", DataType: TypeChar}
type Literal struct {
	Value    string
	DataType DataType
	Line     int
}

func (*Literal) exprNode()          {}
func (l *Literal) Type() DataType   { return l.DataType }
func (l *Literal) Children() []Node { return nil }
func (l *Literal) String() string {
	if l.DataType == TypeChar {
		return "'" + l.Value + "'"
	}
	return l.Value
}

// Identifier is a read of a named variable, or a name in a declaration.
// DataType is TypeError when the name is undeclared.
type Identifier struct {
	Name     string
	DataType DataType
	Line     int
}

func (*Identifier) exprNode()          {}
func (i *Identifier) Type() DataType   { return i.DataType }
func (i *Identifier) Children() []Node { return nil }
func (i *Identifier) String() string   { return i.Name }

// BinaryOp represents Left Op Right.
//
//	a + 1.5
//	^ ^ ^^^
//	| | Right
//	| Op
//	Left          DataType: TypeFloat
type BinaryOp struct {
	Op       TokenType
	Left     Expr
	Right    Expr
	DataType DataType
	Line     int
}

func (*BinaryOp) exprNode()          {}
func (b *BinaryOp) Type() DataType   { return b.DataType }
func (b *BinaryOp) Children() []Node { return []Node{b.Left, b.Right} }
func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// UnaryOp represents Op Operand for unary minus and logical not.
type UnaryOp struct {
	Op       TokenType
	Operand  Expr
	DataType DataType
	Line     int
}

func (*UnaryOp) exprNode()          {}
func (u *UnaryOp) Type() DataType   { return u.DataType }
func (u *UnaryOp) Children() []Node { return []Node{u.Operand} }
func (u *UnaryOp) String() string   { return fmt.Sprintf("(%s %s)", u.Op, u.Operand) }

// Grouping is a parenthesised expression; it keeps the inner type.
type Grouping struct {
	Expr     Expr
	DataType DataType
	Line     int
}

func (*Grouping) exprNode()          {}
func (g *Grouping) Type() DataType   { return g.DataType }
func (g *Grouping) Children() []Node { return []Node{g.Expr} }
func (g *Grouping) String() string   { return fmt.Sprintf("Grouping(%s)", g.Expr) }

//  Statement nodes

// Stmt is implemented by every command node, and by Declaration so that it
// can appear as a for-loop initializer.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root: int main() { ... } or void main() { ... }
type Program struct {
	ReturnType DataType
	Body       *Block
	Line       int
}

func (p *Program) Children() []Node { return []Node{p.Body} }
func (p *Program) String() string {
	return fmt.Sprintf("Program(%s main, body=%s)", p.ReturnType, p.Body)
}

// Block represents { declarations commands }. It opens its own scope.
type Block struct {
	Declarations []*Declaration
	Commands     []Stmt
	Line         int
}

func (*Block) stmtNode() {}
func (b *Block) Children() []Node {
	out := make([]Node, 0, len(b.Declarations)+len(b.Commands))
	for _, d := range b.Declarations {
		out = append(out, d)
	}
	for _, c := range b.Commands {
		out = append(out, c)
	}
	return out
}
func (b *Block) String() string {
	return fmt.Sprintf("Block(decls=%d, cmds=%d)", len(b.Declarations), len(b.Commands))
}

// Declaration represents  float a, b;
type Declaration struct {
	VarType   DataType
	Variables []*Identifier
	Line      int
}

func (*Declaration) stmtNode() {}
func (d *Declaration) Children() []Node {
	out := make([]Node, 0, len(d.Variables))
	for _, v := range d.Variables {
		out = append(out, v)
	}
	return out
}
func (d *Declaration) String() string {
	names := make([]string, 0, len(d.Variables))
	for _, v := range d.Variables {
		names = append(names, v.Name)
	}
	return fmt.Sprintf("Declaration(%s %s)", d.VarType, strings.Join(names, ", "))
}

// Assignment represents  Variable = Value;
type Assignment struct {
	Variable string
	Value    Expr
	Line     int
}

func (*Assignment) stmtNode()          {}
func (a *Assignment) Children() []Node { return []Node{a.Value} }
func (a *Assignment) String() string {
	return fmt.Sprintf("Assignment(%s = %s)", a.Variable, a.Value)
}

// IfStatement represents if (Condition) Then [else Else]
type IfStatement struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // may be nil
	Line      int
}

func (*IfStatement) stmtNode() {}
func (i *IfStatement) Children() []Node {
	out := []Node{i.Condition, i.Then}
	if i.Else != nil {
		out = append(out, i.Else)
	}
	return out
}
func (i *IfStatement) String() string {
	if i.Else != nil {
		return fmt.Sprintf("IfStatement(if %s then %s else %s)", i.Condition, i.Then, i.Else)
	}
	return fmt.Sprintf("IfStatement(if %s then %s)", i.Condition, i.Then)
}

// WhileStatement represents while (Condition) Body
type WhileStatement struct {
	Condition Expr
	Body      Stmt
	Line      int
}

func (*WhileStatement) stmtNode()          {}
func (w *WhileStatement) Children() []Node { return []Node{w.Condition, w.Body} }
func (w *WhileStatement) String() string {
	return fmt.Sprintf("WhileStatement(while %s do %s)", w.Condition, w.Body)
}

// ForStatement represents for (Init; Condition; Increment) Body. Init is a
// *Declaration or an *Assignment; Init, Condition and Increment may be nil.
type ForStatement struct {
	Init      Stmt
	Condition Expr
	Increment *Assignment
	Body      Stmt
	Line      int
}

func (*ForStatement) stmtNode() {}
func (f *ForStatement) Children() []Node {
	var out []Node
	if f.Init != nil {
		out = append(out, f.Init)
	}
	if f.Condition != nil {
		out = append(out, f.Condition)
	}
	if f.Increment != nil {
		out = append(out, f.Increment)
	}
	return append(out, f.Body)
}
func (f *ForStatement) String() string {
	return fmt.Sprintf("ForStatement(init=%v, cond=%v, incr=%v, body=%s)", f.Init, f.Condition, f.Increment, f.Body)
}

// DoWhileStatement represents do Body while (Condition);
type DoWhileStatement struct {
	Body      Stmt
	Condition Expr
	Line      int
}

func (*DoWhileStatement) stmtNode()          {}
func (d *DoWhileStatement) Children() []Node { return []Node{d.Body, d.Condition} }
func (d *DoWhileStatement) String() string {
	return fmt.Sprintf("DoWhileStatement(do %s while %s)", d.Body, d.Condition)
}

// ReturnStatement represents return [Value];
type ReturnStatement struct {
	Value Expr // nil for a bare return
	Line  int
}

func (*ReturnStatement) stmtNode() {}
func (r *ReturnStatement) Children() []Node {
	if r.Value == nil {
		return nil
	}
	return []Node{r.Value}
}
func (r *ReturnStatement) String() string {
	if r.Value == nil {
		return "ReturnStatement()"
	}
	return fmt.Sprintf("ReturnStatement(%s)", r.Value)
}

// EmptyStatement is a lone ";".
type EmptyStatement struct {
	Line int
}

func (*EmptyStatement) stmtNode()         {}
func (*EmptyStatement) Children() []Node { return nil }
func (*EmptyStatement) String() string   { return "EmptyStatement" }

// Visitor is called for each node during Walk. Returning false skips the
// node's children.
type Visitor func(node Node) bool

// Walk traverses the tree rooted at node depth-first, in source order.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}
	for _, child := range node.Children() {
		Walk(child, v)
	}
}
