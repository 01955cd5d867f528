// Package compiler is the front end of a small C-like teaching language: a
// single function int main() or void main() with int, float and char
// variables, block scoping and the usual structured control flow.
//
// Pipeline: source → Lex → parse with inline semantic checks → Result
//
// Lexical and syntax errors are fatal and stop the run. Semantic errors and
// warnings are collected and analysis continues, so one run reports them all.
package compiler
