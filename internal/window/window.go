// Package window draws the game in a desktop window.
package window

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/DestinyFrog/Periodic-Tetris/internal/catalog"
	"github.com/DestinyFrog/Periodic-Tetris/internal/game"
)

const (
	// panelUnits is the width of the score panel, in grid units
	panelUnits = 5
	// size of one ebitenutil debug font glyph
	debugGlyphW = 6
	debugGlyphH = 16
)

var (
	colorBoard = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	colorLine  = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	colorPanel = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
)

// Game adapts a game.State to the ebiten.Game interface.
type Game struct {
	state    *game.State
	logger   *log.Logger
	lastTick time.Time
}

// New creates a window game for the state.
func New(state *game.State, logger *log.Logger) *Game {
	return &Game{state: state, logger: logger, lastTick: time.Now()}
}

// Update applies this frame's key presses and advances the game when the
// tick delay has elapsed. Escape closes the window.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.state.Apply(game.ActionLeft)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.state.Apply(game.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.state.Apply(game.ActionRotate)
	}

	if time.Since(g.lastTick) >= g.state.Config().Delay {
		before := g.state.Stats()
		g.state.Tick()
		g.lastTick = time.Now()
		after := g.state.Stats()
		if g.logger != nil && after.Resets > before.Resets {
			g.logger.Printf("Window reset after %d ticks", after.Ticks)
		}
	}
	return nil
}

// Draw paints the board, the settled blocks, the falling piece and the
// score panel.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.state.Frame()
	unit := float32(f.Unit)
	boardW := float32(f.Cols) * unit
	boardH := float32(f.Rows) * unit

	vector.DrawFilledRect(screen, 0, 0, boardW, boardH, colorBoard, false)
	for col := 0; col <= f.Cols; col++ {
		x := float32(col) * unit
		vector.StrokeLine(screen, x, 0, x, boardH, 1, colorLine, false)
	}
	for row := 0; row <= f.Rows; row++ {
		y := float32(row) * unit
		vector.StrokeLine(screen, 0, y, boardW, y, 1, colorLine, false)
	}

	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			cell := f.Cells[row][col]
			if !cell.Filled {
				continue
			}
			x, y := float32(col)*unit, float32(row)*unit
			vector.DrawFilledRect(screen, x+1, y+1, unit-2, unit-2, cell.Color.RGBA(), false)
			drawCentered(screen, cell.Symbol, int(x), int(y), f.Unit, f.Unit)
		}
	}

	g.drawPanel(screen, f, boardW)
}

func (g *Game) drawPanel(screen *ebiten.Image, f game.Frame, left float32) {
	unit := float32(f.Unit)
	width := float32(panelUnits) * unit
	vector.DrawFilledRect(screen, left, 0, width, float32(f.Rows)*unit, colorPanel, false)

	ebitenutil.DebugPrintAt(screen, "SCORE: "+f.Display.Points, int(left+unit/2), int(unit/2))

	box := width - unit
	top := 2 * unit
	background := f.Display.Background
	if background == "" {
		background = catalog.DefaultColor
	}
	vector.DrawFilledRect(screen, left+unit/2, top, box, box, background.RGBA(), false)
	drawCentered(screen, f.Display.Symbol, int(left+unit/2), int(top), int(box), int(box))
}

// drawCentered prints text in the middle of a w×h box
func drawCentered(screen *ebiten.Image, text string, x, y, w, h int) {
	tx := x + (w-len([]rune(text))*debugGlyphW)/2
	ty := y + (h-debugGlyphH)/2
	ebitenutil.DebugPrintAt(screen, text, tx, ty)
}

// Layout sizes the logical screen to the board plus the panel.
func (g *Game) Layout(_, _ int) (screenWidth, screenHeight int) {
	cfg := g.state.Config()
	return cfg.Width() + panelUnits*cfg.Unit, cfg.Height()
}

// Run opens the window and blocks until it is closed.
func Run(state *game.State, title string, logger *log.Logger) error {
	g := New(state, logger)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	if logger != nil {
		logger.Printf("Window Run start: %dx%d", w, h)
	}
	err := ebiten.RunGame(g)
	if logger != nil {
		logger.Printf("Window Run end: %v", err)
	}
	return err
}
