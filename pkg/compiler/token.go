package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input, never produced by Lex

	// Literals
	IDENTIFIER // variable name
	INTEGER    // decimal integer literal
	FLOAT_LIT  // decimal literal with a fractional part, e.g. 3.14
	CHAR_LIT   // character literal 'c' or '\n'

	// Keywords
	INT    // "int"
	FLOAT  // "float"
	CHAR   // "char"
	VOID   // "void"
	IF     // "if"
	ELSE   // "else"
	WHILE  // "while"
	FOR    // "for"
	DO     // "do"
	RETURN // "return"
	MAIN   // "main"

	// Paired delimiters
	LBRACE // {
	RBRACE // }
	LPAREN // (
	RPAREN // )

	// Punctuation
	SEMICOLON // ;
	COMMA     // ,

	// Arithmetic operators
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %

	// Logical operators
	AND_LOGICAL // &&
	OR_LOGICAL  // ||
	NOT         // !

	// Assignment / comparison  (order matters: EQUALS before ASSIGN when lexing)
	ASSIGN     // =
	EQUALS     // ==
	NOT_EQ     // !=
	LESS       // <
	GREATER    // >
	LESS_EQ    // <=
	GREATER_EQ // >=
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:         "EOF",
	IDENTIFIER:  "IDENTIFIER",
	INTEGER:     "INTEGER",
	FLOAT_LIT:   "FLOAT_LIT",
	CHAR_LIT:    "CHAR_LIT",
	INT:         "INT",
	FLOAT:       "FLOAT",
	CHAR:        "CHAR",
	VOID:        "VOID",
	IF:          "IF",
	ELSE:        "ELSE",
	WHILE:       "WHILE",
	FOR:         "FOR",
	DO:          "DO",
	RETURN:      "RETURN",
	MAIN:        "MAIN",
	LBRACE:      "LBRACE",
	RBRACE:      "RBRACE",
	LPAREN:      "LPAREN",
	RPAREN:      "RPAREN",
	SEMICOLON:   "SEMICOLON",
	COMMA:       "COMMA",
	PLUS:        "PLUS",
	MINUS:       "MINUS",
	STAR:        "STAR",
	SLASH:       "SLASH",
	PERCENT:     "PERCENT",
	AND_LOGICAL: "AND_LOGICAL",
	OR_LOGICAL:  "OR_LOGICAL",
	NOT:         "NOT",
	ASSIGN:      "ASSIGN",
	EQUALS:      "EQUALS",
	NOT_EQ:      "NOT_EQ",
	LESS:        "LESS",
	GREATER:     "GREATER",
	LESS_EQ:     "LESS_EQ",
	GREATER_EQ:  "GREATER_EQ",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// IsTypeKeyword reports whether tt starts a variable declaration.
func (tt TokenType) IsTypeKeyword() bool {
	return tt == INT || tt == FLOAT || tt == CHAR
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Line   int    // 1-based source line
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-14q  line %d", t.Type, t.Lexeme, t.Line)
}
