package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGameReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.c")
	if err := os.WriteFile(path, []byte("int main() { int a; a = 1; }"), 0o644); err != nil {
		t.Fatal(err)
	}

	g := newGame(path)
	if len(g.panes) != 4 || len(g.rows) != 4 || len(g.views) != 4 {
		t.Fatalf("unexpected pane setup: %d panes, %d row sets, %d views", len(g.panes), len(g.rows), len(g.views))
	}
	if !strings.HasSuffix(g.status, ": ok, 0 warning(s)") {
		t.Errorf("status = %q", g.status)
	}

	// Scroll the token pane past its end, then shrink the file.
	g.views[0].Scroll(1000, len(g.rows[0]))
	if err := os.WriteFile(path, []byte("int main() { x = 1; }"), 0o644); err != nil {
		t.Fatal(err)
	}
	g.reload()

	if !strings.Contains(g.status, "1 error(s)") {
		t.Errorf("status after reload = %q", g.status)
	}
	start, end := g.views[0].Visible(len(g.rows[0]))
	if start != 0 || end != len(g.rows[0]) {
		t.Errorf("token pane shows [%d, %d) of %d rows", start, end, len(g.rows[0]))
	}
}

func TestGameMissingFile(t *testing.T) {
	g := newGame(filepath.Join(t.TempDir(), "gone.c"))
	if len(g.panes) != 0 {
		t.Errorf("expected no panes, got %d", len(g.panes))
	}
	if !strings.HasPrefix(g.status, "read failed:") {
		t.Errorf("status = %q", g.status)
	}
}

func TestGameRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.c")
	if err := os.WriteFile(path, []byte("void main() { }"), 0o644); err != nil {
		t.Fatal(err)
	}
	g := newGame(path)
	g.render()

	// The tab row must contain some non-background pixels.
	lit := false
	for y := 0; y < lineHeight && !lit; y++ {
		for x := 0; x < screenWidth; x++ {
			if g.canvas.RGBAAt(x, y) != background {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Error("render drew nothing on the tab row")
	}

	// The bottom rows are never covered by pane text.
	if got := g.canvas.RGBAAt(screenWidth-1, screenHeight-1); got != background {
		t.Errorf("corner pixel = %v, want background", got)
	}
}
