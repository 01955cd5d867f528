package compiler

import (
	"fmt"
	"sort"
	"strings"
)

// Symbol is the compile-time record of a declared variable.
type Symbol struct {
	Type        DataType
	Initialized bool // set by the first assignment, never cleared
	Line        int  // line of the declaration
}

// SymbolEntry describes one declaration made during a run, in declaration
// order. Depth is the index of the declaring scope (0 is the global scope).
type SymbolEntry struct {
	Name        string
	Type        DataType
	Line        int
	Depth       int
	Initialized bool
}

type declared struct {
	name  string
	depth int
	sym   *Symbol
}

// SymbolTable is the scope manager: a stack of scopes, innermost last.
// Each scope maps name -> Symbol and owns its symbols exclusively.
type SymbolTable struct {
	scopes []map[string]*Symbol
	diag   *Diagnostics

	// every successful declaration, kept after its scope is popped
	history []declared
}

// NewSymbolTable returns an empty table reporting redeclarations to diag.
func NewSymbolTable(diag *Diagnostics) *SymbolTable {
	return &SymbolTable{diag: diag}
}

// BeginScope pushes an empty scope.
func (s *SymbolTable) BeginScope() {
	s.scopes = append(s.scopes, make(map[string]*Symbol))
}

// EndScope pops the innermost scope.
func (s *SymbolTable) EndScope() {
	if len(s.scopes) == 0 {
		panic("EndScope called with no open scope")
	}
	s.scopes = s.scopes[:len(s.scopes)-1]
}

// Depth returns the number of open scopes.
func (s *SymbolTable) Depth() int {
	return len(s.scopes)
}

// Reset closes every open scope and forgets the declaration history.
func (s *SymbolTable) Reset() {
	s.scopes = nil
	s.history = nil
}

// Declare adds name to the innermost scope. A name already present in that
// same scope is a redeclaration: it is reported, the first symbol is kept and
// false is returned. Shadowing a name from an outer scope is allowed.
func (s *SymbolTable) Declare(name string, typ DataType, line int) bool {
	if len(s.scopes) == 0 {
		panic("Declare called with no open scope")
	}
	current := s.scopes[len(s.scopes)-1]
	if _, ok := current[name]; ok {
		s.diag.Errorf(line, "variable '%s' already declared in this scope", name)
		return false
	}
	sym := &Symbol{Type: typ, Line: line}
	current[name] = sym
	s.history = append(s.history, declared{name: name, depth: len(s.scopes) - 1, sym: sym})
	return true
}

// Resolve returns the symbol name refers to, searching from the innermost
// scope outwards, or nil.
func (s *SymbolTable) Resolve(name string) *Symbol {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if sym, ok := s.scopes[i][name]; ok {
			return sym
		}
	}
	return nil
}

// MarkInitialized flags the nearest symbol called name as initialized.
func (s *SymbolTable) MarkInitialized(name string) {
	if sym := s.Resolve(name); sym != nil {
		sym.Initialized = true
	}
}

// Symbols returns every declaration made since the last Reset, in order.
func (s *SymbolTable) Symbols() []SymbolEntry {
	out := make([]SymbolEntry, 0, len(s.history))
	for _, d := range s.history {
		out = append(out, SymbolEntry{
			Name:        d.name,
			Type:        d.sym.Type,
			Line:        d.sym.Line,
			Depth:       d.depth,
			Initialized: d.sym.Initialized,
		})
	}
	return out
}

// String returns a deterministically ordered dump of the open scopes.
func (s *SymbolTable) String() string {
	var sb strings.Builder
	if len(s.scopes) == 0 {
		sb.WriteString("Scopes: (empty)\n")
		return sb.String()
	}
	sb.WriteString("Scopes (Active Stack):\n")
	for i, scope := range s.scopes {
		fmt.Fprintf(&sb, "  Scope %d:\n", i)
		names := make([]string, 0, len(scope))
		for name := range scope {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			sym := scope[name]
			fmt.Fprintf(&sb, "    %-20s  %s (line %d, initialized: %t)\n", name, sym.Type, sym.Line, sym.Initialized)
		}
	}
	return sb.String()
}
