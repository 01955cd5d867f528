package compiler

import (
	"fmt"
	"unicode"
)

// keywords maps source text to its keyword TokenType.
var keywords = map[string]TokenType{
	"int":    INT,
	"float":  FLOAT,
	"char":   CHAR,
	"void":   VOID,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"for":    FOR,
	"do":     DO,
	"return": RETURN,
	"main":   MAIN,
}

// Two-rune operators are matched by their own rule, ahead of the one-rune
// table, so "<=" never lexes as "<" "=".
var twoRuneOps = map[string]TokenType{
	"==": EQUALS,
	"!=": NOT_EQ,
	"<=": LESS_EQ,
	">=": GREATER_EQ,
	"&&": AND_LOGICAL,
	"||": OR_LOGICAL,
}

var oneRuneOps = map[rune]TokenType{
	'=': ASSIGN,
	'<': LESS,
	'>': GREATER,
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'/': SLASH,
	'%': PERCENT,
	'!': NOT,
	'(': LPAREN,
	')': RPAREN,
	'{': LBRACE,
	'}': RBRACE,
	';': SEMICOLON,
	',': COMMA,
}

// lexRule matches a prefix of src. It returns the length of the match in
// runes (0 for no match) and the token type to emit.
type lexRule struct {
	skip  bool // matched text is discarded (comments, whitespace)
	match func(src []rune) (int, TokenType)
}

// rules is tried in order at every position; the first match wins. The order
// is what resolves ambiguity: comments before '/', keywords before
// identifiers, floats before integers and "==" before "=".
var rules = []lexRule{
	{skip: true, match: matchBlockComment},
	{skip: true, match: matchLineComment},
	{match: matchKeyword},
	{match: matchFloat},
	{match: matchInteger},
	{match: matchChar},
	{match: matchTwoRuneOp},
	{match: matchOneRuneOp},
	{match: matchIdent},
	{skip: true, match: matchWhitespace},
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// countDigits returns the length of the run of decimal digits at src[from:].
func countDigits(src []rune, from int) int {
	n := 0
	for from+n < len(src) && isDigit(src[from+n]) {
		n++
	}
	return n
}

// matchBlockComment matches "/* ... */". An unterminated comment does not
// match, leaving "/" to the operator rules.
func matchBlockComment(src []rune) (int, TokenType) {
	if len(src) < 2 || src[0] != '/' || src[1] != '*' {
		return 0, EOF
	}
	for i := 2; i+1 < len(src); i++ {
		if src[i] == '*' && src[i+1] == '/' {
			return i + 2, EOF
		}
	}
	return 0, EOF
}

// matchLineComment matches "//" up to, but not including, the newline.
func matchLineComment(src []rune) (int, TokenType) {
	if len(src) < 2 || src[0] != '/' || src[1] != '/' {
		return 0, EOF
	}
	n := 2
	for n < len(src) && src[n] != '\n' {
		n++
	}
	return n, EOF
}

// matchKeyword matches a keyword only when it is a whole word, so "ifx" is
// left to the identifier rule.
func matchKeyword(src []rune) (int, TokenType) {
	if len(src) == 0 || !isIdentStart(src[0]) {
		return 0, EOF
	}
	n := 1
	for n < len(src) && isIdentPart(src[n]) {
		n++
	}
	if kw, ok := keywords[string(src[:n])]; ok {
		return n, kw
	}
	return 0, EOF
}

func matchFloat(src []rune) (int, TokenType) {
	whole := countDigits(src, 0)
	if whole == 0 || whole >= len(src) || src[whole] != '.' {
		return 0, EOF
	}
	frac := countDigits(src, whole+1)
	if frac == 0 {
		return 0, EOF
	}
	return whole + 1 + frac, FLOAT_LIT
}

func matchInteger(src []rune) (int, TokenType) {
	if n := countDigits(src, 0); n > 0 {
		return n, INTEGER
	}
	return 0, EOF
}

// matchChar matches 'c' or an escaped '\c'. Newlines never appear inside.
func matchChar(src []rune) (int, TokenType) {
	if len(src) < 3 || src[0] != '\'' {
		return 0, EOF
	}
	if src[1] == '\\' && len(src) >= 4 && src[2] != '\n' && src[3] == '\'' {
		return 4, CHAR_LIT
	}
	if src[1] != '\n' && src[2] == '\'' {
		return 3, CHAR_LIT
	}
	return 0, EOF
}

func matchTwoRuneOp(src []rune) (int, TokenType) {
	if len(src) < 2 {
		return 0, EOF
	}
	if tt, ok := twoRuneOps[string(src[:2])]; ok {
		return 2, tt
	}
	return 0, EOF
}

func matchOneRuneOp(src []rune) (int, TokenType) {
	if len(src) == 0 {
		return 0, EOF
	}
	if tt, ok := oneRuneOps[src[0]]; ok {
		return 1, tt
	}
	return 0, EOF
}

func matchIdent(src []rune) (int, TokenType) {
	if len(src) == 0 || !isIdentStart(src[0]) {
		return 0, EOF
	}
	n := 1
	for n < len(src) && isIdentPart(src[n]) {
		n++
	}
	return n, IDENTIFIER
}

func matchWhitespace(src []rune) (int, TokenType) {
	n := 0
	for n < len(src) && unicode.IsSpace(src[n]) {
		n++
	}
	return n, EOF
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src  []rune
	pos  int // index of the next rune to consume
	line int // current 1-based source line
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), pos: 0, line: 1}
}

// advance consumes n runes, counting the newlines among them.
func (l *Lexer) advance(n int) string {
	text := l.src[l.pos : l.pos+n]
	for _, r := range text {
		if r == '\n' {
			l.line++
		}
	}
	l.pos += n
	return string(text)
}

// nextToken applies the rule table at the current position. ok is false
// when the matched text was discarded.
func (l *Lexer) nextToken() (tok Token, ok bool, err error) {
	rest := l.src[l.pos:]
	for _, rule := range rules {
		n, tt := rule.match(rest)
		if n == 0 {
			continue
		}
		line := l.line
		lexeme := l.advance(n)
		if rule.skip {
			return Token{}, false, nil
		}
		return Token{Type: tt, Lexeme: lexeme, Line: line}, true, nil
	}
	return Token{}, false, fmt.Errorf("lexical error (line %d): invalid character %q", l.line, rest[0])
}

// Lex tokenises src and returns the tokens in source order. On the first
// character no rule accepts it stops and returns the tokens produced so far
// together with the error.
func Lex(src string) ([]Token, error) {
	l := newLexer(src)
	var tokens []Token
	for l.pos < len(l.src) {
		tok, ok, err := l.nextToken()
		if err != nil {
			return tokens, err
		}
		if ok {
			tokens = append(tokens, tok)
		}
	}
	return tokens, nil
}
