package game

// FrameCell is what a renderer draws at one grid position.
type FrameCell struct {
	Cell
	Active bool `json:"active,omitempty"`
}

// Frame is an immutable snapshot of everything a renderer needs.
type Frame struct {
	Cols    int           `json:"cols"`
	Rows    int           `json:"rows"`
	Unit    int           `json:"unit"`
	Cells   [][]FrameCell `json:"cells"`
	Score   int           `json:"score"`
	Display Display       `json:"display"`
	Stats   Stats         `json:"stats"`
}

// Frame snapshots the state. Settled blocks are drawn over the falling
// piece, and blocks above the board are not drawn at all.
func (s *State) Frame() Frame {
	f := Frame{
		Cols:    s.cfg.Cols,
		Rows:    s.cfg.Rows,
		Unit:    s.cfg.Unit,
		Cells:   make([][]FrameCell, s.cfg.Rows),
		Score:   s.score,
		Display: s.Display(),
		Stats:   s.stats,
	}
	for i := range f.Cells {
		f.Cells[i] = make([]FrameCell, s.cfg.Cols)
	}

	for _, sq := range s.piece.Squares() {
		if !s.grid.inside(sq.Row, sq.Col) {
			continue
		}
		f.Cells[sq.Row][sq.Col] = FrameCell{
			Cell:   Cell{Filled: true, Color: sq.Color, Symbol: sq.Symbol},
			Active: true,
		}
	}

	for i := 0; i < s.cfg.Rows; i++ {
		for j := 0; j < s.cfg.Cols; j++ {
			if cell := s.grid.At(i, j); cell.Filled {
				f.Cells[i][j] = FrameCell{Cell: cell}
			}
		}
	}
	return f
}

// Empty reports whether the frame has never been filled in.
func (f Frame) Empty() bool {
	return len(f.Cells) == 0
}
