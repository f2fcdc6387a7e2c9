package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/DestinyFrog/Periodic-Tetris/internal/catalog"
	"github.com/DestinyFrog/Periodic-Tetris/internal/game"
)

const (
	boardXOffset = 4
	boardYOffset = 2
	// each grid cell is this many terminal columns wide, enough for a
	// two-letter symbol with a space of padding
	cellWidth = 3
	panelGap  = 4
	panelSize = 12
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightGray)
	styleBoard  = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorLightGray).Background(tcell.ColorBlack)
	styleLabel  = tcell.StyleDefault.Foreground(tcell.ColorLightGray).Background(tcell.ColorDarkBlue)
)

// Color converts a catalog color for tcell.
func Color(c catalog.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// View draws frames onto a tcell screen.
type View struct {
	screen tcell.Screen
}

// NewView creates a view on an initialized screen.
func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// Draw renders a full frame and shows it.
func (view *View) Draw(f game.Frame) {
	if f.Empty() {
		return
	}
	view.screen.Fill(' ', tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack))
	view.drawBoardBorder(f)
	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			view.drawCell(row, col, f.Cells[row][col])
		}
	}
	view.drawPanel(f)
	view.drawHelp(f)
	view.screen.Show()
}

// drawBoardBorder draws the board border
func (view *View) drawBoardBorder(f game.Frame) {
	xEnd := boardXOffset + f.Cols*cellWidth + 4
	yEnd := boardYOffset + f.Rows + 2
	for x := boardXOffset; x < xEnd; x++ {
		for y := boardYOffset; y < yEnd; y++ {
			if x == boardXOffset || x == boardXOffset+1 || x == xEnd-1 || x == xEnd-2 || y == boardYOffset || y == yEnd-1 {
				view.screen.SetContent(x, y, ' ', nil, styleBorder)
			}
		}
	}
}

// cellOrigin is the top-left terminal position of a grid cell
func cellOrigin(row, col int) (int, int) {
	return boardXOffset + 2 + col*cellWidth, boardYOffset + 1 + row
}

// drawCell draws one grid cell; empty cells show a grid dot
func (view *View) drawCell(row, col int, cell game.FrameCell) {
	x, y := cellOrigin(row, col)
	if !cell.Filled {
		view.screen.SetContent(x, y, ' ', nil, styleBoard)
		view.screen.SetContent(x+1, y, '·', nil, styleBoard)
		view.screen.SetContent(x+2, y, ' ', nil, styleBoard)
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(Color(cell.Color))
	if cell.Active {
		style = style.Bold(true)
	}
	view.drawText(x, y, Center(cell.Symbol, cellWidth), style)
}

// drawPanel draws the score and the element it unlocked
func (view *View) drawPanel(f game.Frame) {
	xOffset := boardXOffset + f.Cols*cellWidth + 4 + panelGap
	yOffset := boardYOffset

	view.drawText(xOffset, yOffset, "SCORE:", styleLabel)
	view.drawText(xOffset+7, yOffset, fmt.Sprintf("%5s", f.Display.Points), styleBorder)

	yOffset += 2
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(Color(f.Display.Background)).Bold(true)
	for y := yOffset; y < yOffset+5; y++ {
		view.drawText(xOffset, y, Center("", panelSize), style)
	}
	view.drawText(xOffset, yOffset+2, Center(f.Display.Symbol, panelSize), style)
}

// drawHelp draws the key bindings
func (view *View) drawHelp(f game.Frame) {
	xOffset := boardXOffset + f.Cols*cellWidth + 4 + panelGap
	yOffset := boardYOffset + 9

	// ascii arrow characters add extra two spaces
	for _, line := range []string{
		"←  - left",
		"→  - right",
		"↑  - rotate",
		"q  - quit",
	} {
		view.drawText(xOffset, yOffset, line, styleText)
		yOffset++
	}
}

// drawText draws the provided text
func (view *View) drawText(x int, y int, text string, style tcell.Style) {
	index := 0
	for _, char := range text {
		view.screen.SetContent(x+index, y, char, nil, style)
		index++
	}
}

// Center pads s with spaces to width, truncating when it does not fit. An odd
// remainder goes to the left, so "He" is " He" in a three column cell.
func Center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	left := (width - len(runes) + 1) / 2
	out := make([]rune, width)
	for i := range out {
		out[i] = ' '
	}
	copy(out[left:], runes)
	return string(out)
}
