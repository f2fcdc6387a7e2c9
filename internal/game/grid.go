package game

import "github.com/DestinyFrog/Periodic-Tetris/internal/catalog"

// Cell is one slot of the grid. The zero value is empty.
type Cell struct {
	Filled bool          `json:"filled"`
	Color  catalog.Color `json:"color,omitempty"`
	Symbol string        `json:"symbol,omitempty"`
}

// Square is a cell at an absolute grid position.
type Square struct {
	Row, Col int
	Color    catalog.Color
	Symbol   string
}

// Grid stores the settled blocks, row-major with row 0 at the top.
type Grid struct {
	cols  int
	rows  int
	cells [][]Cell
}

// NewGrid creates an empty grid.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{cols: cols, rows: rows, cells: make([][]Cell, rows)}
	for i := range g.cells {
		g.cells[i] = make([]Cell, cols)
	}
	return g
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// Reset empties every cell.
func (g *Grid) Reset() {
	for i := range g.cells {
		for j := range g.cells[i] {
			g.cells[i][j] = Cell{}
		}
	}
}

func (g *Grid) inside(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell at row, col. Positions off the grid are empty.
func (g *Grid) At(row, col int) Cell {
	if !g.inside(row, col) {
		return Cell{}
	}
	return g.cells[row][col]
}

// Occupied is the collision predicate: the floor (row >= Rows) and filled
// cells are occupied, anything else off the grid is not.
func (g *Grid) Occupied(row, col int) bool {
	if row >= g.rows {
		return true
	}
	return g.At(row, col).Filled
}

// Place writes squares into the grid. Later squares overwrite earlier ones
// and squares off the grid are dropped.
func (g *Grid) Place(squares []Square) {
	for _, s := range squares {
		if !g.inside(s.Row, s.Col) {
			continue
		}
		g.cells[s.Row][s.Col] = Cell{Filled: true, Color: s.Color, Symbol: s.Symbol}
	}
}

// filledIn counts the filled cells of a row.
func (g *Grid) filledIn(row int) int {
	n := 0
	for _, cell := range g.cells[row] {
		if cell.Filled {
			n++
		}
	}
	return n
}

// ClearFullRows scans rows top to bottom and removes every full row by
// shifting the rows above it down by one. It returns the number of rows
// removed.
//
// The shift leaves row 0 as a copy of what it held before, so a block on the
// top row is duplicated. clearTop empties row 0 after each shift instead.
func (g *Grid) ClearFullRows(clearTop bool) int {
	cleared := 0
	for i := 0; i < g.rows; i++ {
		if g.filledIn(i) < g.cols {
			continue
		}
		cleared++
		for j := i; j >= 1; j-- {
			copy(g.cells[j], g.cells[j-1])
		}
		if clearTop {
			for j := range g.cells[0] {
				g.cells[0][j] = Cell{}
			}
		}
	}
	return cleared
}

// Filled counts every filled cell.
func (g *Grid) Filled() int {
	n := 0
	for i := range g.cells {
		n += g.filledIn(i)
	}
	return n
}
