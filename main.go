//go:build !js

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gabriel-feltes/partial-compiler/pkg/compiler"
	"github.com/gabriel-feltes/partial-compiler/pkg/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole command line tool; it returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("partial-compiler", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inPath := fs.String("in", "-", `source file to analyze ("-" reads stdin)`)
	showTokens := fs.Bool("tokens", false, "print the token stream")
	showAST := fs.Bool("ast", false, "print the syntax tree")
	showSymbols := fs.Bool("symbols", false, "print every declared variable")
	asJSON := fs.Bool("json", false, "print the syntax tree as JSON instead of a tree")
	quiet := fs.Bool("quiet", false, "only set the exit code, print nothing on success")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() > 0 {
		if fs.NArg() > 1 || *inPath != "-" {
			fmt.Fprintln(stderr, "expected at most one input file, given either with -in or as an argument")
			fs.Usage()
			return 2
		}
		*inPath = fs.Arg(0)
	}

	src, name, err := utils.ReadSource(*inPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "failed to read input %q: %v\n", *inPath, err)
		return 1
	}

	res := compiler.Analyze(src)

	if *showTokens {
		fmt.Fprintf(stdout, "Tokens (%d)\n", len(res.Tokens))
		compiler.FprintTokens(stdout, res.Tokens)
		fmt.Fprintln(stdout)
	}
	if *showAST && res.AST != nil {
		if *asJSON {
			if err := compiler.FprintJSON(stdout, res.AST); err != nil {
				fmt.Fprintf(stderr, "failed to encode AST: %v\n", err)
				return 1
			}
		} else {
			fmt.Fprintln(stdout, "AST")
			compiler.FprintAST(stdout, res.AST)
			fmt.Fprintln(stdout)
		}
	}
	if *showSymbols {
		printSymbols(stdout, res.Symbols)
	}

	for _, e := range res.Errors {
		fmt.Fprintf(stderr, "%s: %s\n", name, e)
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(stderr, "%s: %s\n", name, w)
	}

	if !res.OK() {
		return 1
	}
	if !*quiet {
		fmt.Fprintf(stdout, "%s: analysis succeeded with %d warning(s)\n", name, len(res.Warnings))
	}
	return 0
}

func printSymbols(w io.Writer, syms []compiler.SymbolEntry) {
	fmt.Fprintf(w, "Symbols (%d)\n", len(syms))
	for _, s := range syms {
		fmt.Fprintf(w, "  %-16s %-6s line %-4d depth %d  initialized: %t\n", s.Name, s.Type, s.Line, s.Depth, s.Initialized)
	}
	fmt.Fprintln(w)
}
