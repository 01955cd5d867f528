package compiler

// Result is everything one analysis run produces.
type Result struct {
	Tokens   []Token
	AST      *Program // nil after a lexical or syntax error
	Errors   []string
	Warnings []string
	Symbols  []SymbolEntry // every declaration, in declaration order
}

// OK reports whether the run finished without errors. Warnings do not count.
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}

// Compiler holds the state of one analysis run. Analyze resets it, so an
// instance can be reused, but not from several goroutines at once.
type Compiler struct {
	tokens []Token
	ast    *Program
	diag   *Diagnostics
	syms   *SymbolTable
}

func NewCompiler() *Compiler {
	diag := NewDiagnostics()
	return &Compiler{diag: diag, syms: NewSymbolTable(diag)}
}

func (c *Compiler) reset() {
	c.tokens = nil
	c.ast = nil
	c.diag.Reset()
	c.syms.Reset()
}

// Analyze lexes, parses and checks src in a single pass.
//
// A lexical error stops before parsing; a syntax error discards the tree.
// Either way exactly one fatal message is appended to the errors, after any
// semantic errors already found. The scope stack is always empty on return.
func (c *Compiler) Analyze(src string) *Result {
	c.reset()

	tokens, err := Lex(src)
	c.tokens = tokens
	if err != nil {
		c.diag.Fatal(err)
		return c.result()
	}

	p := newParser(tokens, c.syms, c.diag)
	prog, err := p.parseProgram()
	if err != nil {
		c.diag.Fatal(err)
		prog = nil
	}
	c.ast = prog
	return c.result()
}

func (c *Compiler) result() *Result {
	res := &Result{
		Tokens:   c.tokens,
		AST:      c.ast,
		Errors:   c.diag.Errors(),
		Warnings: c.diag.Warnings(),
		Symbols:  c.syms.Symbols(),
	}
	// drop the scopes a failed parse left open, keeping the history above
	c.syms.Reset()
	return res
}

// SymbolTable exposes the scope manager, mainly for inspection in tests and
// debug output. After Analyze returns it has no open scopes.
func (c *Compiler) SymbolTable() *SymbolTable {
	return c.syms
}

// Analyze runs a fresh Compiler over src.
func Analyze(src string) *Result {
	return NewCompiler().Analyze(src)
}
