package viewer

import (
	"reflect"
	"testing"
)

func TestGridCoords(t *testing.T) {
	tests := []struct {
		index int
		cols  int
		wantX int
		wantY int
	}{
		// 80 cols (terminal width)
		{0, 80, 0, 0},
		{1, 80, 1, 0},
		{79, 80, 79, 0},
		{80, 80, 0, 1},
		{161, 80, 1, 2},

		// 32 cols (narrow pane)
		{0, 32, 0, 0},
		{31, 32, 31, 0},
		{32, 32, 0, 1},
		{1023, 32, 31, 31},
	}

	for _, tc := range tests {
		gotX, gotY := GridCoords(tc.index, tc.cols)
		if gotX != tc.wantX || gotY != tc.wantY {
			t.Errorf("GridCoords(%d, %d) = (%d, %d); want (%d, %d)", tc.index, tc.cols, gotX, gotY, tc.wantX, tc.wantY)
		}
	}
}

func TestWrap(t *testing.T) {
	lines := []Line{
		{Text: "abcdefgh", Kind: Error},
		{Text: ""},
		{Text: "xyz"},
		{Text: "├──├──", Kind: Heading},
	}
	want := []Line{
		{Text: "abc", Kind: Error},
		{Text: "def", Kind: Error},
		{Text: "gh", Kind: Error},
		{Text: ""},
		{Text: "xyz"},
		{Text: "├──", Kind: Heading},
		{Text: "├──", Kind: Heading},
	}
	if got := Wrap(lines, 3); !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap() = %q\nwant %q", got, want)
	}
	if got := Wrap(lines, 0); !reflect.DeepEqual(got, lines) {
		t.Errorf("Wrap with no width changed the lines: %q", got)
	}
}

func TestViewport(t *testing.T) {
	tests := []struct {
		name      string
		offset    int
		delta     int
		total     int
		wantStart int
		wantEnd   int
	}{
		{"Top", 0, 0, 100, 0, 10},
		{"Scroll Down", 0, 5, 100, 5, 15},
		{"Past End", 90, 20, 100, 90, 100},
		{"Above Top", 3, -10, 100, 0, 10},
		{"Fits", 4, 0, 6, 0, 6},
		{"Empty", 0, 1, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := Viewport{Offset: tc.offset, Rows: 10}
			v.Scroll(tc.delta, tc.total)
			start, end := v.Visible(tc.total)
			if start != tc.wantStart || end != tc.wantEnd {
				t.Errorf("Visible() = [%d, %d); want [%d, %d)", start, end, tc.wantStart, tc.wantEnd)
			}
		})
	}
}
