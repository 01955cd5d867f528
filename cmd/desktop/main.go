package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gabriel-feltes/partial-compiler/pkg/compiler"
	"github.com/gabriel-feltes/partial-compiler/pkg/utils"
	"github.com/gabriel-feltes/partial-compiler/pkg/viewer"
)

const (
	screenWidth  = 800
	screenHeight = 600

	charWidth  = 7  // basicfont.Face7x13 advance
	lineHeight = 15 // 13px glyphs plus spacing
	headerRows = 2  // pane tabs and a blank row
	footerRows = 2  // status line
)

var (
	background = color.RGBA{0x1e, 0x1e, 0x24, 0xff}
	kindColors = map[viewer.LineKind]color.Color{
		viewer.Plain:   color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
		viewer.Heading: color.RGBA{0x7f, 0xbf, 0xff, 0xff},
		viewer.Error:   color.RGBA{0xff, 0x6b, 0x6b, 0xff},
		viewer.Warning: color.RGBA{0xff, 0xd0, 0x4f, 0xff},
		viewer.Success: color.RGBA{0x7f, 0xe0, 0x7f, 0xff},
	}
)

type Game struct {
	path   string
	panes  []viewer.Pane
	rows   [][]viewer.Line // panes wrapped to the screen width
	views  []viewer.Viewport
	active int
	status string

	canvas *image.RGBA   // text is rasterised here on the CPU
	img    *ebiten.Image // reused screen-sized upload of canvas
	dirty  bool
}

func newGame(path string) *Game {
	g := &Game{
		path:   path,
		canvas: image.NewRGBA(image.Rect(0, 0, screenWidth, screenHeight)),
	}
	g.reload()
	return g
}

// reload re-reads and re-analyzes the file, keeping the scroll positions.
func (g *Game) reload() {
	g.dirty = true
	src, _, err := utils.ReadSource(g.path, os.Stdin)
	if err != nil {
		g.status = fmt.Sprintf("read failed: %v", err)
		return
	}
	res := compiler.Analyze(src)

	g.panes = viewer.Panes(res)
	cols := screenWidth / charWidth
	g.rows = make([][]viewer.Line, len(g.panes))
	for i, p := range g.panes {
		g.rows[i] = viewer.Wrap(p.Lines, cols)
	}
	if len(g.views) != len(g.panes) {
		g.views = make([]viewer.Viewport, len(g.panes))
	}
	for i := range g.views {
		g.views[i].Rows = screenHeight/lineHeight - headerRows - footerRows
		g.views[i].Clamp(len(g.rows[i]))
	}

	if res.OK() {
		g.status = fmt.Sprintf("%s: ok, %d warning(s)", g.path, len(res.Warnings))
	} else {
		g.status = fmt.Sprintf("%s: %d error(s), %d warning(s)", g.path, len(res.Errors), len(res.Warnings))
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reload()
	}
	if len(g.panes) == 0 {
		return nil
	}

	prevPane, prevOffset := g.active, g.views[g.active].Offset

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		step := 1
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			step = len(g.panes) - 1
		}
		g.active = (g.active + step) % len(g.panes)
	}
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if i < len(g.panes) && inpututil.IsKeyJustPressed(key) {
			g.active = i
		}
	}

	view := &g.views[g.active]
	total := len(g.rows[g.active])
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		view.Scroll(1, total)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		view.Scroll(-1, total)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		view.Scroll(view.Rows, total)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		view.Scroll(-view.Rows, total)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		view.Scroll(-total, total)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		view.Scroll(total, total)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		view.Scroll(-int(dy*3), total)
	}

	if g.active != prevPane || view.Offset != prevOffset {
		g.dirty = true
	}
	return nil
}

// drawText draws s with its top-left corner at pixel column x of text row.
func (g *Game) drawText(s string, x, row int, clr color.Color) {
	d := &font.Drawer{
		Dst:  g.canvas,
		Src:  image.NewUniform(clr),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, row*lineHeight+basicfont.Face7x13.Ascent),
	}
	d.DrawString(s)
}

// render rasterises the tabs and the visible rows of the active pane.
func (g *Game) render() {
	draw.Draw(g.canvas, g.canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	x := 4
	for i, p := range g.panes {
		label := fmt.Sprintf(" %d:%s ", i+1, p.Title)
		clr := kindColors[viewer.Plain]
		if i == g.active {
			clr = kindColors[viewer.Heading]
		}
		g.drawText(label, x, 0, clr)
		x += len([]rune(label)) * charWidth
	}

	if len(g.panes) == 0 {
		return
	}
	rows := g.rows[g.active]
	start, end := g.views[g.active].Visible(len(rows))
	for i, line := range rows[start:end] {
		g.drawText(line.Text, 4, headerRows+i, kindColors[line.Kind])
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(screenWidth, screenHeight)
		g.dirty = true
	}
	if g.dirty {
		g.render()
		g.img.WritePixels(g.canvas.Pix)
		g.dirty = false
	}
	screen.DrawImage(g.img, &ebiten.DrawImageOptions{})

	status := fmt.Sprintf("%s   [Tab] pane  [Up/Down/PgUp/PgDn] scroll  [R] reload", g.status)
	ebitenutil.DebugPrintAt(screen, status, 4, screenHeight-footerRows*lineHeight+4)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <source file>", os.Args[0])
	}

	fullPath, _, err := utils.GetPathInfo(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to resolve source path: %v", err)
	}
	if _, err := os.Stat(fullPath); err != nil {
		log.Fatalf("Failed to read source file: %v", err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Partial Compiler - " + fullPath)

	game := newGame(fullPath)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
