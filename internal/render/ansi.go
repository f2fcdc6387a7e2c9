package render

import (
	"fmt"
	"strings"

	"github.com/DestinyFrog/Periodic-Tetris/internal/catalog"
	"github.com/DestinyFrog/Periodic-Tetris/internal/game"
)

const (
	ESC   = "\x1b"
	CSI   = ESC + "["
	Reset = CSI + "0m"
)

var (
	ansiBorder = catalog.Color("#c0c0c0")
	ansiBoard  = catalog.Color("#000000")
	ansiDot    = catalog.Color("#808080")
	ansiText   = catalog.Color("#ffffff")
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return fmt.Sprintf("%s%d;%dH", CSI, row, col)
}

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return CSI + "2J"
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return CSI + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return CSI + "?25h"
}

// EnableAltScreen switches to the alternate screen buffer.
func EnableAltScreen() string {
	return CSI + "?1049h"
}

// DisableAltScreen switches back from the alternate screen buffer.
func DisableAltScreen() string {
	return CSI + "?1049l"
}

// writeSGR writes text with a truecolor foreground and background. Every
// run starts from a reset so no state leaks between cells.
func writeSGR(sb *strings.Builder, fg, bg catalog.Color, bold bool, text string) {
	fr, fgr, fb := fg.RGB()
	br, bgr, bb := bg.RGB()
	attr := "0"
	if bold {
		attr = "0;1"
	}
	fmt.Fprintf(sb, "%s%s;38;2;%d;%d;%d;48;2;%d;%d;%dm%s", CSI, attr, fr, fgr, fb, br, bgr, bb, text)
}

// ANSI renders a frame as an escape sequence string that redraws the whole
// board from the top-left corner of the terminal.
func ANSI(f game.Frame) string {
	if f.Empty() {
		return ""
	}

	var sb strings.Builder
	width := f.Cols*cellWidth + 4
	line := 1

	sb.WriteString(MoveTo(line, 1))
	writeSGR(&sb, ansiBorder, ansiBorder, false, strings.Repeat(" ", width))
	sb.WriteString(Reset)

	for row := 0; row < f.Rows; row++ {
		line++
		sb.WriteString(MoveTo(line, 1))
		writeSGR(&sb, ansiBorder, ansiBorder, false, "  ")
		for col := 0; col < f.Cols; col++ {
			cell := f.Cells[row][col]
			if cell.Filled {
				writeSGR(&sb, ansiText, cell.Color, cell.Active, Center(cell.Symbol, cellWidth))
			} else {
				writeSGR(&sb, ansiDot, ansiBoard, false, Center("·", cellWidth))
			}
		}
		writeSGR(&sb, ansiBorder, ansiBorder, false, "  ")
		sb.WriteString(Reset)
		writePanelLine(&sb, f, row)
	}

	line++
	sb.WriteString(MoveTo(line, 1))
	writeSGR(&sb, ansiBorder, ansiBorder, false, strings.Repeat(" ", width))
	sb.WriteString(Reset)
	return sb.String()
}

// writePanelLine writes the part of the score panel next to a board row
func writePanelLine(sb *strings.Builder, f game.Frame, row int) {
	gap := strings.Repeat(" ", panelGap)
	switch {
	case row == 0:
		sb.WriteString(gap + "SCORE: " + f.Display.Points + CSI + "K")
	case row >= 2 && row <= 6:
		text := ""
		if row == 4 {
			text = f.Display.Symbol
		}
		sb.WriteString(gap)
		writeSGR(sb, ansiText, f.Display.Background, true, Center(text, panelSize))
		sb.WriteString(Reset)
	case row >= 9 && row <= 12:
		help := []string{"←  - left", "→  - right", "↑  - rotate", "q  - quit"}
		sb.WriteString(gap + help[row-9])
	}
}
