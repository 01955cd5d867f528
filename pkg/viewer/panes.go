// Package viewer turns an analysis result into scrollable text panes. It has
// no graphics dependency so the layout rules can be tested on their own; the
// desktop binary only draws what this package lays out.
package viewer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gabriel-feltes/partial-compiler/pkg/compiler"
)

// LineKind selects how a line is coloured.
type LineKind int

const (
	Plain LineKind = iota
	Heading
	Error
	Warning
	Success
)

// Line is one row of pane text.
type Line struct {
	Text string
	Kind LineKind
}

// Pane is a titled list of lines.
type Pane struct {
	Title string
	Lines []Line
}

// Panes builds the Tokens, AST, Symbols and Diagnostics panes for res, in
// that order.
func Panes(res *compiler.Result) []Pane {
	return []Pane{
		tokensPane(res),
		astPane(res),
		symbolsPane(res),
		diagnosticsPane(res),
	}
}

// splitLines turns printer output into plain lines, dropping the final
// newline.
func splitLines(s string) []Line {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	var out []Line
	for _, text := range strings.Split(s, "\n") {
		out = append(out, Line{Text: text})
	}
	return out
}

func tokensPane(res *compiler.Result) Pane {
	var buf bytes.Buffer
	compiler.FprintTokens(&buf, res.Tokens)
	lines := splitLines(buf.String())
	if len(lines) == 0 {
		lines = []Line{{Text: "(no tokens)"}}
	}
	return Pane{Title: fmt.Sprintf("Tokens (%d)", len(res.Tokens)), Lines: lines}
}

func astPane(res *compiler.Result) Pane {
	if res.AST == nil {
		return Pane{Title: "AST", Lines: []Line{
			{Text: "no syntax tree: analysis stopped at a fatal error", Kind: Error},
		}}
	}
	var buf bytes.Buffer
	compiler.FprintAST(&buf, res.AST)
	return Pane{Title: "AST", Lines: splitLines(buf.String())}
}

func symbolsPane(res *compiler.Result) Pane {
	lines := []Line{{Text: fmt.Sprintf("%-16s %-6s %5s %6s  %s", "NAME", "TYPE", "LINE", "DEPTH", "INITIALIZED"), Kind: Heading}}
	for _, s := range res.Symbols {
		kind := Plain
		if !s.Initialized {
			kind = Warning
		}
		lines = append(lines, Line{
			Text: fmt.Sprintf("%-16s %-6s %5d %6d  %t", s.Name, s.Type, s.Line, s.Depth, s.Initialized),
			Kind: kind,
		})
	}
	if len(res.Symbols) == 0 {
		lines = append(lines, Line{Text: "(no declarations)"})
	}
	return Pane{Title: fmt.Sprintf("Symbols (%d)", len(res.Symbols)), Lines: lines}
}

func diagnosticsPane(res *compiler.Result) Pane {
	var lines []Line
	for _, e := range res.Errors {
		lines = append(lines, Line{Text: e, Kind: Error})
	}
	for _, w := range res.Warnings {
		lines = append(lines, Line{Text: w, Kind: Warning})
	}
	if len(lines) == 0 {
		lines = []Line{{Text: "analysis finished with no errors or warnings", Kind: Success}}
	}
	title := fmt.Sprintf("Diagnostics (%d errors, %d warnings)", len(res.Errors), len(res.Warnings))
	return Pane{Title: title, Lines: lines}
}
