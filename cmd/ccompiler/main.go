package main

import (
	"fmt"
	"os"

	"github.com/gabriel-feltes/partial-compiler/pkg/compiler"
	"github.com/gabriel-feltes/partial-compiler/pkg/utils"
)

const testSource = `int main() {
    int x, y;
    float avg;
    x = 10;
    y = 20;
    avg = (x + y) / 2.0;
    if (avg > x)
        return y;
    return x;
}
`

func main() {
	src := testSource
	if len(os.Args) > 1 {
		var err error
		src, _, err = utils.ReadSource(os.Args[1], os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Source:\n%s\n", src)

	c := compiler.NewCompiler()
	res := c.Analyze(src)

	fmt.Printf("Tokens (%d)\n", len(res.Tokens))
	for _, tok := range res.Tokens {
		fmt.Println(" ", tok)
	}
	fmt.Println()

	if res.AST != nil {
		fmt.Println("AST")
		fmt.Println(" ", res.AST)
		fmt.Println()
		compiler.FprintAST(os.Stdout, res.AST)
		fmt.Println()
	}

	fmt.Println("Symbols")
	for _, s := range res.Symbols {
		fmt.Printf("  %-12s %-6s line %d, depth %d, initialized: %t\n", s.Name, s.Type, s.Line, s.Depth, s.Initialized)
	}
	fmt.Println()
	fmt.Print(c.SymbolTable())
	fmt.Println()

	fmt.Println("Diagnostics")
	for _, e := range res.Errors {
		fmt.Println(" ", e)
	}
	for _, w := range res.Warnings {
		fmt.Println(" ", w)
	}
	if !res.OK() {
		os.Exit(1)
	}
}
