package compiler

import "fmt"

// parser consumes the token slice produced by Lex, builds the AST and runs
// the semantic checks as each construct is recognised.
//
// Grammar:
//
//	program     = ("int" | "void") "main" "(" ")" block
//	block       = "{" declaration* command* "}"
//	declaration = ("int" | "float" | "char") IDENTIFIER ("," IDENTIFIER)* ";"
//	command     = if | while | for | doWhile | return | assignment | block | ";"
//	assignment  = IDENTIFIER "=" expression ";"
//	if          = "if" "(" expression ")" command ("else" command)?
//	while       = "while" "(" expression ")" command
//	for         = "for" "(" (declaration | assignment | ";") expression? ";" increment? ")" command
//	increment   = IDENTIFIER "=" expression
//	doWhile     = "do" command "while" "(" expression ")" ";"
//	return      = "return" expression? ";"
//	expression  = logic_or
//	logic_or    = logic_and ("||" logic_and)*
//	logic_and   = equality ("&&" equality)*
//	equality    = comparison (("==" | "!=") comparison)*
//	comparison  = term ((">" | ">=" | "<" | "<=") term)*
//	term        = factor (("+" | "-") factor)*
//	factor      = unary (("*" | "/" | "%") unary)*
//	unary       = ("-" | "!") unary | primary
//	primary     = INTEGER | FLOAT_LIT | CHAR_LIT | IDENTIFIER | "(" expression ")"
//
// A returned error is a syntax error and ends the parse; semantic problems
// go to diag and parsing continues.
type parser struct {
	tokens  []Token
	pos     int
	syms    *SymbolTable
	diag    *Diagnostics
	retType DataType
}

func newParser(tokens []Token, syms *SymbolTable, diag *Diagnostics) *parser {
	return &parser{tokens: tokens, syms: syms, diag: diag}
}

// syntaxError formats a fatal error anchored at tok.
func (p *parser) syntaxError(tok Token, format string, args ...any) error {
	return fmt.Errorf("syntax error (line %d): %s", tok.Line, fmt.Sprintf(format, args...))
}

// peek returns the current token without consuming it. Past the end it
// returns an EOF token carrying the last line seen.
func (p *parser) peek() Token {
	if p.pos >= len(p.tokens) {
		line := 1
		if n := len(p.tokens); n > 0 {
			line = p.tokens[n-1].Line
		}
		return Token{Type: EOF, Line: line}
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token.
func (p *parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// match reports whether the current token is one of types.
func (p *parser) match(types ...TokenType) bool {
	tt := p.peek().Type
	for _, t := range types {
		if tt == t {
			return true
		}
	}
	return false
}

// expect consumes the current token if it is tt, otherwise it returns a
// syntax error describing what was wanted.
func (p *parser) expect(tt TokenType, what string) (Token, error) {
	tok := p.peek()
	if tok.Type != tt {
		return tok, p.syntaxError(tok, "%s; expected %s but found %s", what, tt, tok.Type)
	}
	p.advance()
	return tok, nil
}

// parseProgram parses the whole token stream inside a global scope.
func (p *parser) parseProgram() (*Program, error) {
	p.syms.BeginScope()

	first := p.peek()
	var retTok Token
	var err error
	if first.Type == VOID {
		retTok = p.advance()
	} else {
		retTok, err = p.expect(INT, `a program must start with "int main()" or "void main()"`)
		if err != nil {
			return nil, err
		}
	}
	p.retType = TypeOf(retTok.Type)

	if _, err := p.expect(MAIN, `expected "main" after the return type`); err != nil {
		return nil, err
	}
	if _, err := p.expect(LPAREN, `expected "(" after "main"`); err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN, `expected ")" after "main("`); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Type != EOF {
		return nil, p.syntaxError(tok, "unexpected %s %q after the end of main", tok.Type, tok.Lexeme)
	}

	p.syms.EndScope()
	return &Program{ReturnType: p.retType, Body: body, Line: retTok.Line}, nil
}

// parseBlock parses { declarations commands } in a new scope.
func (p *parser) parseBlock() (*Block, error) {
	open, err := p.expect(LBRACE, `expected "{" to open a block`)
	if err != nil {
		return nil, err
	}
	p.syms.BeginScope()

	var decls []*Declaration
	for p.peek().Type.IsTypeKeyword() {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}

	var cmds []Stmt
	for !p.match(RBRACE, EOF) {
		cmd, err := p.parseCommand()
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}

	p.syms.EndScope()
	if _, err := p.expect(RBRACE, `expected "}" to close the block`); err != nil {
		return nil, err
	}
	return &Block{Declarations: decls, Commands: cmds, Line: open.Line}, nil
}

// parseDeclaration parses  type a, b, c;  declaring each name in the
// innermost scope. The type keyword must be the current token.
func (p *parser) parseDeclaration() (*Declaration, error) {
	typeTok := p.advance()
	varType := TypeOf(typeTok.Type)

	var vars []*Identifier
	for {
		id, err := p.expect(IDENTIFIER, "expected a variable name")
		if err != nil {
			return nil, err
		}
		p.syms.Declare(id.Lexeme, varType, id.Line)
		vars = append(vars, &Identifier{Name: id.Lexeme, DataType: varType, Line: id.Line})

		if p.peek().Type != COMMA {
			break
		}
		p.advance()
	}

	if _, err := p.expect(SEMICOLON, `declarations must end with ";"`); err != nil {
		return nil, err
	}
	return &Declaration{VarType: varType, Variables: vars, Line: typeTok.Line}, nil
}

// parseCommand dispatches on the leading token. Anything that cannot start a
// command is fatal.
func (p *parser) parseCommand() (Stmt, error) {
	tok := p.peek()
	switch tok.Type {
	case IF:
		return p.parseIf()
	case WHILE:
		return p.parseWhile()
	case FOR:
		return p.parseFor()
	case DO:
		return p.parseDoWhile()
	case RETURN:
		return p.parseReturn()
	case IDENTIFIER:
		return p.parseAssignment(true)
	case LBRACE:
		return p.parseBlock()
	case SEMICOLON:
		p.advance()
		return &EmptyStatement{Line: tok.Line}, nil
	default:
		return nil, p.syntaxError(tok, "invalid command starting with %s %q", tok.Type, tok.Lexeme)
	}
}

// parseAssignment parses  id = expr  followed by ";" when terminated is set.
// The for-loop increment is the unterminated form.
func (p *parser) parseAssignment(terminated bool) (*Assignment, error) {
	id, err := p.expect(IDENTIFIER, "an assignment must start with a variable")
	if err != nil {
		return nil, err
	}
	sym := p.resolve(id)

	if _, err := p.expect(ASSIGN, `expected "=" in assignment`); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if terminated {
		if _, err := p.expect(SEMICOLON, `assignments must end with ";"`); err != nil {
			return nil, err
		}
	}

	if sym != nil {
		if vt := value.Type(); vt != TypeError && !Assignable(sym.Type, vt) {
			p.diag.Errorf(id.Line, "cannot assign a value of type '%s' to variable '%s' of type '%s'", vt, id.Lexeme, sym.Type)
		}
		p.syms.MarkInitialized(id.Lexeme)
	}
	return &Assignment{Variable: id.Lexeme, Value: value, Line: id.Line}, nil
}

// resolve looks up a referenced name, reporting it when undeclared.
func (p *parser) resolve(id Token) *Symbol {
	sym := p.syms.Resolve(id.Lexeme)
	if sym == nil {
		p.diag.Errorf(id.Line, "variable '%s' has not been declared", id.Lexeme)
	}
	return sym
}

// parseCondition parses  ( expression )  after the given keyword.
func (p *parser) parseCondition(keyword string) (Expr, error) {
	if _, err := p.expect(LPAREN, fmt.Sprintf(`expected "(" after "%s"`, keyword)); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN, fmt.Sprintf(`expected ")" after the %s condition`, keyword)); err != nil {
		return nil, err
	}
	return cond, nil
}

// parseIf parses if ( cond ) command [ else command ]. The else binds to the
// nearest if because the inner parseIf consumes it first.
func (p *parser) parseIf() (Stmt, error) {
	ifTok := p.advance()
	cond, err := p.parseCondition("if")
	if err != nil {
		return nil, err
	}
	then, err := p.parseCommand()
	if err != nil {
		return nil, err
	}

	var elseBranch Stmt
	if p.peek().Type == ELSE {
		p.advance()
		elseBranch, err = p.parseCommand()
		if err != nil {
			return nil, err
		}
	}
	return &IfStatement{Condition: cond, Then: then, Else: elseBranch, Line: ifTok.Line}, nil
}

// parseWhile parses while ( cond ) command
func (p *parser) parseWhile() (Stmt, error) {
	whileTok := p.advance()
	cond, err := p.parseCondition("while")
	if err != nil {
		return nil, err
	}
	body, err := p.parseCommand()
	if err != nil {
		return nil, err
	}
	return &WhileStatement{Condition: cond, Body: body, Line: whileTok.Line}, nil
}

// parseFor parses for ( init; cond; incr ) command. The loop has its own
// scope so a declaration in init is not visible after the loop.
func (p *parser) parseFor() (Stmt, error) {
	forTok := p.advance()
	if _, err := p.expect(LPAREN, `expected "(" after "for"`); err != nil {
		return nil, err
	}
	p.syms.BeginScope()

	var init Stmt
	switch {
	case p.peek().Type == SEMICOLON:
		p.advance()
	case p.peek().Type.IsTypeKeyword():
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		init = decl
	default:
		assign, err := p.parseAssignment(true)
		if err != nil {
			return nil, err
		}
		init = assign
	}

	var cond Expr
	if p.peek().Type != SEMICOLON {
		var err error
		cond, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(SEMICOLON, `expected ";" after the for condition`); err != nil {
		return nil, err
	}

	var incr *Assignment
	if p.peek().Type != RPAREN {
		var err error
		incr, err = p.parseAssignment(false)
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(RPAREN, `expected ")" after the for clauses`); err != nil {
		return nil, err
	}

	body, err := p.parseCommand()
	if err != nil {
		return nil, err
	}
	p.syms.EndScope()

	return &ForStatement{Init: init, Condition: cond, Increment: incr, Body: body, Line: forTok.Line}, nil
}

// parseDoWhile parses do command while ( cond ) ;
func (p *parser) parseDoWhile() (Stmt, error) {
	doTok := p.advance()
	body, err := p.parseCommand()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(WHILE, `expected "while" after the do-while body`); err != nil {
		return nil, err
	}
	cond, err := p.parseCondition("while")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON, `expected ";" after the do-while`); err != nil {
		return nil, err
	}
	return &DoWhileStatement{Body: body, Condition: cond, Line: doTok.Line}, nil
}

// parseReturn parses return [expr] ; and checks the value against the
// function's return type. A bare return has type void.
func (p *parser) parseReturn() (Stmt, error) {
	retTok := p.advance()

	var value Expr
	if p.peek().Type != SEMICOLON {
		var err error
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(SEMICOLON, `expected ";" after the return value`); err != nil {
		return nil, err
	}

	valType := TypeVoid
	if value != nil {
		valType = value.Type()
	}
	if valType != TypeError && !Returnable(p.retType, valType) {
		p.diag.Errorf(retTok.Line, "incompatible return type: function returning '%s' cannot return '%s'", p.retType, valType)
	}
	return &ReturnStatement{Value: value, Line: retTok.Line}, nil
}

// parseExpression is the entry point for expression parsing.
func (p *parser) parseExpression() (Expr, error) {
	return p.parseLogicOr()
}

// parseLogicOr handles ||. Operands are not type checked; the result is int.
func (p *parser) parseLogicOr() (Expr, error) {
	expr, err := p.parseLogicAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == OR_LOGICAL {
		op := p.advance()
		right, err := p.parseLogicAnd()
		if err != nil {
			return nil, err
		}
		expr = &BinaryOp{Op: op.Type, Left: expr, Right: right, DataType: TypeInt, Line: op.Line}
	}
	return expr, nil
}

// parseLogicAnd handles &&, with the same typing as ||.
func (p *parser) parseLogicAnd() (Expr, error) {
	expr, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == AND_LOGICAL {
		op := p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		expr = &BinaryOp{Op: op.Type, Left: expr, Right: right, DataType: TypeInt, Line: op.Line}
	}
	return expr, nil
}

// parseEquality handles == and !=
func (p *parser) parseEquality() (Expr, error) {
	expr, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.match(EQUALS, NOT_EQ) {
		op := p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		p.promote(op, expr, right)
		expr = &BinaryOp{Op: op.Type, Left: expr, Right: right, DataType: TypeInt, Line: op.Line}
	}
	return expr, nil
}

// parseComparison handles <, >, <= and >=
func (p *parser) parseComparison() (Expr, error) {
	expr, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.match(GREATER, GREATER_EQ, LESS, LESS_EQ) {
		op := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		p.promote(op, expr, right)
		expr = &BinaryOp{Op: op.Type, Left: expr, Right: right, DataType: TypeInt, Line: op.Line}
	}
	return expr, nil
}

// parseTerm handles + and -
func (p *parser) parseTerm() (Expr, error) {
	expr, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.match(PLUS, MINUS) {
		op := p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryOp{Op: op.Type, Left: expr, Right: right, DataType: p.promote(op, expr, right), Line: op.Line}
	}
	return expr, nil
}

// parseFactor handles *, / and %
func (p *parser) parseFactor() (Expr, error) {
	expr, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.match(STAR, SLASH, PERCENT) {
		op := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryOp{Op: op.Type, Left: expr, Right: right, DataType: p.promote(op, expr, right), Line: op.Line}
	}
	return expr, nil
}

// promote applies the arithmetic promotion rules and reports invalid
// operands.
func (p *parser) promote(op Token, left, right Expr) DataType {
	typ, ok := Promote(op.Type, left.Type(), right.Type())
	if !ok {
		p.diag.Errorf(op.Line, "operator '%s' requires operands of type 'int', got '%s' and '%s'", op.Lexeme, left.Type(), right.Type())
	}
	return typ
}

// parseUnary handles prefix - and !. Negation keeps the operand type; logical
// not always yields int.
func (p *parser) parseUnary() (Expr, error) {
	if p.match(MINUS, NOT) {
		op := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		typ := operand.Type()
		if op.Type == NOT {
			typ = TypeInt
		}
		return &UnaryOp{Op: op.Type, Operand: operand, DataType: typ, Line: op.Line}, nil
	}
	return p.parsePrimary()
}

// parsePrimary handles literals, variables, and parenthesised expressions.
func (p *parser) parsePrimary() (Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case INTEGER:
		p.advance()
		return &Literal{Value: tok.Lexeme, DataType: TypeInt, Line: tok.Line}, nil

	case FLOAT_LIT:
		p.advance()
		return &Literal{Value: tok.Lexeme, DataType: TypeFloat, Line: tok.Line}, nil

	case CHAR_LIT:
		p.advance()
		return &Literal{Value: tok.Lexeme[1 : len(tok.Lexeme)-1], DataType: TypeChar, Line: tok.Line}, nil

	case IDENTIFIER:
		p.advance()
		sym := p.resolve(tok)
		if sym == nil {
			return &Identifier{Name: tok.Lexeme, DataType: TypeError, Line: tok.Line}, nil
		}
		if !sym.Initialized {
			p.diag.Warnf(tok.Line, "variable '%s' used before being initialized", tok.Lexeme)
		}
		return &Identifier{Name: tok.Lexeme, DataType: sym.Type, Line: tok.Line}, nil

	case LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN, `expected ")" after the expression`); err != nil {
			return nil, err
		}
		return &Grouping{Expr: expr, DataType: expr.Type(), Line: tok.Line}, nil

	default:
		return nil, p.syntaxError(tok, "invalid expression, unexpected token %s %q", tok.Type, tok.Lexeme)
	}
}
