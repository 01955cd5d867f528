package compiler

import (
	"reflect"
	"strings"
	"testing"
)

func TestSymbolTable(t *testing.T) {
	t.Run("DeclareAndResolve", func(t *testing.T) {
		diag := NewDiagnostics()
		s := NewSymbolTable(diag)
		s.BeginScope()

		if !s.Declare("a", TypeInt, 1) {
			t.Fatal("Declare(a) returned false")
		}
		sym := s.Resolve("a")
		if sym == nil {
			t.Fatal("Resolve(a) returned nil")
		}
		if sym.Type != TypeInt || sym.Line != 1 || sym.Initialized {
			t.Errorf("unexpected symbol %+v", *sym)
		}
		if s.Resolve("b") != nil {
			t.Error("Resolve(b) should be nil")
		}
		if diag.HasErrors() {
			t.Errorf("unexpected errors: %v", diag.Errors())
		}
	})

	t.Run("Redeclaration", func(t *testing.T) {
		diag := NewDiagnostics()
		s := NewSymbolTable(diag)
		s.BeginScope()

		s.Declare("a", TypeInt, 1)
		if s.Declare("a", TypeFloat, 2) {
			t.Error("second Declare(a) returned true")
		}

		errs := diag.Errors()
		if len(errs) != 1 {
			t.Fatalf("expected 1 error, got %v", errs)
		}
		if want := "semantic error (line 2): variable 'a' already declared in this scope"; errs[0] != want {
			t.Errorf("got %q, want %q", errs[0], want)
		}
		if typ := s.Resolve("a").Type; typ != TypeInt {
			t.Errorf("redeclaration replaced the type: got %s", typ)
		}
	})

	t.Run("Shadowing", func(t *testing.T) {
		diag := NewDiagnostics()
		s := NewSymbolTable(diag)
		s.BeginScope()
		s.Declare("x", TypeInt, 1)

		s.BeginScope()
		s.Declare("x", TypeFloat, 2)
		if typ := s.Resolve("x").Type; typ != TypeFloat {
			t.Errorf("inner x: got %s, want float", typ)
		}
		s.EndScope()

		if typ := s.Resolve("x").Type; typ != TypeInt {
			t.Errorf("outer x after EndScope: got %s, want int", typ)
		}
		if diag.HasErrors() {
			t.Errorf("shadowing reported errors: %v", diag.Errors())
		}
	})

	t.Run("ScopeEndHidesNames", func(t *testing.T) {
		s := NewSymbolTable(NewDiagnostics())
		s.BeginScope()
		s.BeginScope()
		s.Declare("tmp", TypeChar, 3)
		s.EndScope()
		if s.Resolve("tmp") != nil {
			t.Error("tmp is still visible after its scope ended")
		}
		s.EndScope()
		if s.Depth() != 0 {
			t.Errorf("Depth() = %d, want 0", s.Depth())
		}
	})

	t.Run("MarkInitializedNearest", func(t *testing.T) {
		s := NewSymbolTable(NewDiagnostics())
		s.BeginScope()
		s.Declare("v", TypeInt, 1)
		s.BeginScope()
		s.Declare("v", TypeInt, 2)
		s.MarkInitialized("v")
		if !s.Resolve("v").Initialized {
			t.Error("inner v not initialized")
		}
		s.EndScope()
		if s.Resolve("v").Initialized {
			t.Error("outer v should not be initialized")
		}
		s.MarkInitialized("missing")
	})

	t.Run("EndScopeUnderflowPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("EndScope on an empty stack did not panic")
			}
		}()
		NewSymbolTable(NewDiagnostics()).EndScope()
	})

	t.Run("SymbolsHistory", func(t *testing.T) {
		s := NewSymbolTable(NewDiagnostics())
		s.BeginScope()
		s.Declare("a", TypeInt, 1)
		s.BeginScope()
		s.Declare("b", TypeFloat, 2)
		s.MarkInitialized("b")
		s.EndScope()
		s.Declare("a", TypeChar, 3) // rejected

		want := []SymbolEntry{
			{Name: "a", Type: TypeInt, Line: 1, Depth: 0},
			{Name: "b", Type: TypeFloat, Line: 2, Depth: 1, Initialized: true},
		}
		if got := s.Symbols(); !reflect.DeepEqual(got, want) {
			t.Errorf("Symbols() = %+v, want %+v", got, want)
		}

		s.Reset()
		if len(s.Symbols()) != 0 || s.Depth() != 0 {
			t.Error("Reset did not clear the table")
		}
	})

	t.Run("String", func(t *testing.T) {
		s := NewSymbolTable(NewDiagnostics())
		if got := s.String(); got != "Scopes: (empty)\n" {
			t.Errorf("empty String() = %q", got)
		}

		s.BeginScope()
		s.Declare("zeta", TypeInt, 1)
		s.Declare("alpha", TypeFloat, 1)
		out := s.String()
		if !strings.HasPrefix(out, "Scopes (Active Stack):\n  Scope 0:\n") {
			t.Errorf("unexpected header:\n%s", out)
		}
		if strings.Index(out, "alpha") > strings.Index(out, "zeta") {
			t.Errorf("names are not sorted:\n%s", out)
		}
		if !strings.Contains(out, "float (line 1, initialized: false)") {
			t.Errorf("missing symbol detail:\n%s", out)
		}
		if out != s.String() {
			t.Error("String() is not deterministic")
		}
	})
}

func TestDiagnostics(t *testing.T) {
	d := NewDiagnostics()
	d.Errorf(4, "bad %s", "thing")
	d.Warnf(5, "odd %d", 7)

	if !d.HasErrors() {
		t.Fatal("HasErrors() = false")
	}
	if got, want := d.Errors(), []string{"semantic error (line 4): bad thing"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Errors() = %v, want %v", got, want)
	}
	if got, want := d.Warnings(), []string{"semantic warning (line 5): odd 7"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Warnings() = %v, want %v", got, want)
	}

	errs := d.Errors()
	errs[0] = "changed"
	if d.Errors()[0] == "changed" {
		t.Error("Errors() exposes internal storage")
	}

	d.Reset()
	if d.HasErrors() || len(d.Warnings()) != 0 {
		t.Error("Reset did not clear diagnostics")
	}
}
