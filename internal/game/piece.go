package game

import (
	"github.com/DestinyFrog/Periodic-Tetris/internal/catalog"
)

// Offset is a block position relative to the piece anchor.
type Offset struct {
	DX, DY int
}

// Shape is the geometry of a piece: four offsets around the anchor.
type Shape [4]Offset

// Shapes is the fixed library pieces are drawn from.
var Shapes = [...]Shape{
	// L
	{{1, 0}, {0, 0}, {-1, 0}, {-1, 1}},
	// T
	{{1, 0}, {0, 0}, {-1, 0}, {0, 1}},
	// I
	{{1, 0}, {0, 0}, {-1, 0}, {-2, 0}},
	// S
	{{1, -1}, {0, -1}, {0, 0}, {-1, 0}},
	// O
	{{-1, 1}, {0, 0}, {-1, 0}, {0, 1}},
}

// PieceCell is one block of the falling piece.
type PieceCell struct {
	Offset
	Color  catalog.Color
	Symbol string
}

// Piece is the falling piece: an anchor plus four skinned offsets.
type Piece struct {
	X, Y  int
	Cells [4]PieceCell
}

// NewPiece anchors shape at x, y and skins its blocks with the next four
// items of the cursor.
func NewPiece(shape Shape, x, y int, cursor *catalog.Cursor) Piece {
	p := Piece{X: x, Y: y}
	for i, offset := range shape {
		item := cursor.Next()
		p.Cells[i] = PieceCell{Offset: offset, Color: item.Color, Symbol: item.Symbol}
	}
	return p
}

// Squares returns the absolute positions of the blocks.
func (p Piece) Squares() []Square {
	squares := make([]Square, len(p.Cells))
	for i, c := range p.Cells {
		squares[i] = Square{Row: p.Y + c.DY, Col: p.X + c.DX, Color: c.Color, Symbol: c.Symbol}
	}
	return squares
}

// Translate moves the anchor horizontally.
func (p *Piece) Translate(dx int) {
	p.X += dx
}

// Rotate turns every offset a quarter turn.
func (p *Piece) Rotate() {
	for i := range p.Cells {
		c := &p.Cells[i].Offset
		sign := 1
		if c.DX == 0 {
			sign = -1
		}
		c.DX, c.DY = -c.DY, sign*c.DX
	}
}

// CloneTranslate creates a copy of the piece and translates it
func (p Piece) CloneTranslate(dx int) Piece {
	p.Translate(dx)
	return p
}

// CloneRotate creates a copy of the piece and rotates it
func (p Piece) CloneRotate() Piece {
	p.Rotate()
	return p
}

// OnBoard reports whether every block lies inside g.
func (p Piece) OnBoard(g *Grid) bool {
	for _, s := range p.Squares() {
		if !g.inside(s.Row, s.Col) {
			return false
		}
	}
	return true
}

// Collides reports whether moving p one row down would hit the floor or a
// settled block. It looks ahead, so call it before advancing the piece.
func Collides(p Piece, g *Grid) bool {
	for _, c := range p.Cells {
		next := p.Y + c.DY + 1
		if next == g.Rows() || g.Occupied(next, p.X+c.DX) {
			return true
		}
	}
	return false
}
