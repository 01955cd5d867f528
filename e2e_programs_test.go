package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestSamplePrograms(t *testing.T) {
	tests := []struct {
		file       string
		wantCode   int
		wantStderr []string // each must appear, in this order
		wantErrors int      // lines reporting an error
	}{
		{file: "average.c", wantCode: 0},
		{file: "shadow.c", wantCode: 0},
		{
			file:     "uninit.c",
			wantCode: 0,
			wantStderr: []string{
				"semantic warning (line 4): variable 'a' used before being initialized",
				"semantic warning (line 5): variable 'f' used before being initialized",
			},
		},
		{
			file:     "types.c",
			wantCode: 1,
			wantStderr: []string{
				"semantic error (line 5): variable 'i' already declared in this scope",
				"semantic error (line 8): cannot assign a value of type 'float' to variable 'i' of type 'int'",
				"semantic error (line 9): cannot assign a value of type 'int' to variable 'c' of type 'char'",
				"semantic error (line 10): operator '%' requires operands of type 'int', got 'int' and 'float'",
				"semantic error (line 11): variable 'z' has not been declared",
				"semantic error (line 12): incompatible return type: function returning 'int' cannot return 'float'",
			},
			wantErrors: 6,
		},
		{
			file:       "missing_semicolon.c",
			wantCode:   1,
			wantStderr: []string{`syntax error (line 3): declarations must end with ";"; expected SEMICOLON but found IDENTIFIER`},
			wantErrors: 1,
		},
		{
			file:       "lexical.c",
			wantCode:   1,
			wantStderr: []string{"lexical error (line 3): invalid character '$'"},
			wantErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join("testdata", "programs", tt.file)
			var stdout, stderr bytes.Buffer
			code := run([]string{"-quiet", "-in", path}, nil, &stdout, &stderr)

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nstderr:\n%s", code, tt.wantCode, stderr.String())
			}
			if stdout.Len() != 0 {
				t.Errorf("-quiet printed to stdout:\n%s", stdout.String())
			}

			out := stderr.String()
			pos := 0
			for _, want := range tt.wantStderr {
				i := strings.Index(out[pos:], want)
				if i < 0 {
					t.Errorf("stderr missing %q (in order)\nstderr:\n%s", want, out)
					break
				}
				pos += i + len(want)
			}
			if got := strings.Count(out, " error (line "); got != tt.wantErrors {
				t.Errorf("got %d error lines, want %d\nstderr:\n%s", got, tt.wantErrors, out)
			}
			if len(tt.wantStderr) == 0 && out != "" {
				t.Errorf("unexpected stderr:\n%s", out)
			}
		})
	}
}
