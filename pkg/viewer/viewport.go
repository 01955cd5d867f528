package viewer

// GridCoords converts a linear cell index into column and row on a grid
// that is cols cells wide.
func GridCoords(index, cols int) (x, y int) {
	return index % cols, index / cols
}

// Wrap breaks each line into rows of at most cols runes. A line that is
// split keeps its Kind on every row. Empty lines stay as one empty row.
func Wrap(lines []Line, cols int) []Line {
	if cols <= 0 {
		return lines
	}
	var out []Line
	for _, l := range lines {
		runes := []rune(l.Text)
		if len(runes) == 0 {
			out = append(out, l)
			continue
		}
		var row []rune
		lastRow := 0
		for i, r := range runes {
			_, y := GridCoords(i, cols)
			if y != lastRow {
				out = append(out, Line{Text: string(row), Kind: l.Kind})
				row = row[:0]
				lastRow = y
			}
			row = append(row, r)
		}
		out = append(out, Line{Text: string(row), Kind: l.Kind})
	}
	return out
}

// Viewport is a window of Rows rows starting at Offset over a list of rows.
type Viewport struct {
	Offset int
	Rows   int
}

// Clamp keeps the viewport inside a list of total rows. When everything fits
// the offset is 0.
func (v *Viewport) Clamp(total int) {
	maxOffset := total - v.Rows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

// Scroll moves the viewport by delta rows and clamps it.
func (v *Viewport) Scroll(delta, total int) {
	v.Offset += delta
	v.Clamp(total)
}

// Visible returns the half-open range of row indexes shown for total rows.
func (v Viewport) Visible(total int) (start, end int) {
	v.Clamp(total)
	end = v.Offset + v.Rows
	if end > total {
		end = total
	}
	return v.Offset, end
}
