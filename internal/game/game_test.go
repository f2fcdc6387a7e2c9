package game

import (
	"fmt"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/DestinyFrog/Periodic-Tetris/internal/catalog"
)

const (
	shapeL = iota
	shapeT
	shapeI
	shapeS
	shapeO
)

func testCatalog(c *qt.C, n int) *catalog.Catalog {
	items := make([]catalog.Item, n)
	for i := range items {
		items[i] = catalog.Item{Number: i + 1, Symbol: fmt.Sprintf("S%d", i+1), Color: catalog.ColorFor("ametal")}
	}
	cat, err := catalog.New(items)
	c.Assert(err, qt.IsNil)
	return cat
}

func newTestState(c *qt.C, cfg Config, shape int) *State {
	s, err := NewState(cfg, testCatalog(c, 9), WithShapeSource(func(int) int { return shape }))
	c.Assert(err, qt.IsNil)
	return s
}

func fillRow(g *Grid, row int, symbol string) {
	for col := 0; col < g.Cols(); col++ {
		g.Place([]Square{{Row: row, Col: col, Color: "#ffffff", Symbol: symbol}})
	}
}

func TestConfigValidate(t *testing.T) {
	c := qt.New(t)
	c.Assert(DefaultConfig().Validate(), qt.IsNil)

	cfg := DefaultConfig()
	cfg.Cols = 3
	c.Assert(cfg.Validate(), qt.ErrorMatches, "cols must be at least 4, got 3")

	cfg = DefaultConfig()
	cfg.Delay = 0
	c.Assert(cfg.Validate(), qt.ErrorMatches, "delay must be positive, got 0s")

	cfg = DefaultConfig()
	cfg.Policy = "wrap"
	c.Assert(cfg.Validate(), qt.ErrorMatches, "policy must be either 'clamp' or 'faithful', got 'wrap'")

	cfg = DefaultConfig()
	c.Assert(cfg.Width(), qt.Equals, 252)
	c.Assert(cfg.Height(), qt.Equals, 560)
}

func TestOccupiedFloor(t *testing.T) {
	c := qt.New(t)
	g := NewGrid(DefaultCols, DefaultRows)
	for col := -1; col <= DefaultCols; col++ {
		c.Assert(g.Occupied(DefaultRows, col), qt.IsTrue)
		c.Assert(g.Occupied(DefaultRows+3, col), qt.IsTrue)
	}
	c.Assert(g.Occupied(-1, 0), qt.IsFalse)
	c.Assert(g.Occupied(0, -1), qt.IsFalse)
	c.Assert(g.Occupied(0, DefaultCols), qt.IsFalse)
	c.Assert(g.Occupied(3, 3), qt.IsFalse)

	g.Place([]Square{{Row: 3, Col: 3, Symbol: "Fe"}})
	c.Assert(g.Occupied(3, 3), qt.IsTrue)
	c.Assert(g.At(3, 3).Symbol, qt.Equals, "Fe")
}

func TestPlaceLastWriteWinsAndDropsOffGrid(t *testing.T) {
	c := qt.New(t)
	g := NewGrid(4, 4)
	g.Place([]Square{
		{Row: 1, Col: 1, Symbol: "H"},
		{Row: 1, Col: 1, Symbol: "He"},
		{Row: -1, Col: 0, Symbol: "Li"},
		{Row: 0, Col: 4, Symbol: "Be"},
	})
	c.Assert(g.At(1, 1).Symbol, qt.Equals, "He")
	c.Assert(g.Filled(), qt.Equals, 1)

	g.Reset()
	c.Assert(g.Filled(), qt.Equals, 0)
}

func TestClearSingleFullRow(t *testing.T) {
	for _, r := range []int{0, 1, 7, DefaultRows - 1} {
		t.Run(fmt.Sprintf("row %d", r), func(t *testing.T) {
			c := qt.New(t)
			g := NewGrid(DefaultCols, DefaultRows)
			fillRow(g, r, "X")

			var before []Cell
			if r > 0 {
				before = append(before, g.cells[r-1]...)
			} else {
				before = append(before, g.cells[r]...)
			}

			c.Assert(g.ClearFullRows(false), qt.Equals, 1)
			c.Assert(g.cells[r], qt.DeepEquals, before)
		})
	}
}

func TestClearShiftsRowsDown(t *testing.T) {
	c := qt.New(t)
	g := NewGrid(4, 6)
	g.Place([]Square{{Row: 3, Col: 2, Symbol: "C"}})
	fillRow(g, 4, "X")

	c.Assert(g.ClearFullRows(false), qt.Equals, 1)
	c.Assert(g.At(4, 2).Symbol, qt.Equals, "C")
	c.Assert(g.At(3, 2).Filled, qt.IsFalse)
	c.Assert(g.Filled(), qt.Equals, 1)
}

func TestClearDuplicatesTopRow(t *testing.T) {
	c := qt.New(t)
	g := NewGrid(4, 6)
	g.Place([]Square{{Row: 0, Col: 1, Symbol: "N"}})
	fillRow(g, 1, "X")

	c.Assert(g.ClearFullRows(false), qt.Equals, 1)
	c.Assert(g.At(1, 1).Symbol, qt.Equals, "N")
	// the old top row stays behind
	c.Assert(g.At(0, 1).Symbol, qt.Equals, "N")
	c.Assert(g.Filled(), qt.Equals, 2)
}

func TestClearTopRowOption(t *testing.T) {
	c := qt.New(t)
	g := NewGrid(4, 6)
	g.Place([]Square{{Row: 0, Col: 1, Symbol: "N"}})
	fillRow(g, 1, "X")

	c.Assert(g.ClearFullRows(true), qt.Equals, 1)
	c.Assert(g.At(1, 1).Symbol, qt.Equals, "N")
	c.Assert(g.At(0, 1).Filled, qt.IsFalse)
	c.Assert(g.Filled(), qt.Equals, 1)
}

func TestClearMultipleRows(t *testing.T) {
	c := qt.New(t)
	g := NewGrid(4, 6)
	g.Place([]Square{{Row: 3, Col: 0, Symbol: "O"}})
	fillRow(g, 4, "X")
	fillRow(g, 5, "Y")

	c.Assert(g.ClearFullRows(false), qt.Equals, 2)
	c.Assert(g.At(5, 0).Symbol, qt.Equals, "O")
	c.Assert(g.Filled(), qt.Equals, 1)
}

func TestRotateFormula(t *testing.T) {
	c := qt.New(t)
	p := Piece{}
	for i, o := range []Offset{{1, 0}, {0, -1}, {-2, 0}, {-1, 1}} {
		p.Cells[i].Offset = o
	}
	p.Rotate()
	got := []Offset{p.Cells[0].Offset, p.Cells[1].Offset, p.Cells[2].Offset, p.Cells[3].Offset}
	c.Assert(got, qt.DeepEquals, []Offset{{0, 1}, {1, 0}, {0, -2}, {-1, -1}})
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	c := qt.New(t)
	for i, shape := range Shapes {
		var p Piece
		for j, o := range shape {
			p.Cells[j].Offset = o
		}
		original := p
		p.Rotate()
		c.Assert(p, qt.Not(qt.Equals), original, qt.Commentf("shape %d", i))
		p.Rotate()
		p.Rotate()
		p.Rotate()
		c.Assert(p, qt.Equals, original, qt.Commentf("shape %d", i))
	}
}

func TestCollides(t *testing.T) {
	c := qt.New(t)
	g := NewGrid(DefaultCols, DefaultRows)
	cur := testCatalog(c, 9).Cursor()

	p := NewPiece(Shapes[shapeI], 4, DefaultRows-2, cur)
	c.Assert(Collides(p, g), qt.IsFalse)
	p.Y++
	c.Assert(Collides(p, g), qt.IsTrue)

	p = NewPiece(Shapes[shapeT], 4, 5, cur)
	c.Assert(Collides(p, g), qt.IsFalse)
	g.Place([]Square{{Row: 7, Col: 4}})
	c.Assert(Collides(p, g), qt.IsTrue)
}

func TestSpawnBindsCatalogItems(t *testing.T) {
	c := qt.New(t)
	s := newTestState(c, DefaultConfig(), shapeT)
	p := s.Piece()
	c.Assert(p.X, qt.Equals, 4)
	c.Assert(p.Y, qt.Equals, 0)
	for i, cell := range p.Cells {
		c.Assert(cell.Offset, qt.Equals, Shapes[shapeT][i])
		c.Assert(cell.Symbol, qt.Equals, fmt.Sprintf("S%d", i+1))
	}
}

func TestCursorAfterSpawns(t *testing.T) {
	c := qt.New(t)
	s := newTestState(c, DefaultConfig(), shapeL)
	for n := 1; n <= 30; n++ {
		c.Assert(s.Stats().Spawns, qt.Equals, n)
		c.Assert(s.CursorIndex(), qt.Equals, (n*4)%9)
		c.Assert(s.CursorIndex() < s.Catalog().Len(), qt.IsTrue)
		s.spawn()
	}
}

func TestShapeSourceIsUsed(t *testing.T) {
	c := qt.New(t)
	seen := 0
	_, err := NewState(DefaultConfig(), testCatalog(c, 9), WithShapeSource(func(n int) int {
		seen = n
		return shapeO
	}))
	c.Assert(err, qt.IsNil)
	c.Assert(seen, qt.Equals, len(Shapes))
}

func TestSeededStatesAgree(t *testing.T) {
	c := qt.New(t)
	cfg := DefaultConfig()
	cfg.Seed = 42
	a, err := NewState(cfg, testCatalog(c, 9))
	c.Assert(err, qt.IsNil)
	b, err := NewState(cfg, testCatalog(c, 9))
	c.Assert(err, qt.IsNil)
	for i := 0; i < 200; i++ {
		a.Tick()
		b.Tick()
	}
	c.Assert(a.Frame(), qt.DeepEquals, b.Frame())
}

func TestResetWhenLockedNearTop(t *testing.T) {
	c := qt.New(t)
	s := newTestState(c, DefaultConfig(), shapeT)
	s.grid.Place([]Square{{Row: 10, Col: 1}, {Row: 12, Col: 2}})
	s.score = 5

	s.piece.Y = 2
	s.spawn()
	c.Assert(s.Grid().Filled(), qt.Equals, 0)
	c.Assert(s.Score(), qt.Equals, 0)
	c.Assert(s.Stats().Resets, qt.Equals, 1)

	s.grid.Place([]Square{{Row: 10, Col: 1}})
	s.score = 5
	s.piece.Y = 3
	s.spawn()
	c.Assert(s.Grid().Filled(), qt.Equals, 1)
	c.Assert(s.Score(), qt.Equals, 5)
	c.Assert(s.Stats().Resets, qt.Equals, 1)
}

func TestPieceFallsAndLocks(t *testing.T) {
	c := qt.New(t)
	s := newTestState(c, DefaultConfig(), shapeT)

	for i := 1; i <= 18; i++ {
		s.Tick()
		c.Assert(s.Piece().Y, qt.Equals, i)
	}
	c.Assert(s.Stats().Locks, qt.Equals, 0)
	c.Assert(s.Grid().Filled(), qt.Equals, 0)

	// lowest block is now one row above the floor
	s.Tick()
	c.Assert(s.Stats().Locks, qt.Equals, 1)
	c.Assert(s.Stats().Resets, qt.Equals, 0)
	c.Assert(s.Grid().Filled(), qt.Equals, 4)
	for i, pos := range [][2]int{{18, 5}, {18, 4}, {18, 3}, {19, 4}} {
		cell := s.Grid().At(pos[0], pos[1])
		c.Assert(cell.Filled, qt.IsTrue)
		c.Assert(cell.Symbol, qt.Equals, fmt.Sprintf("S%d", i+1))
	}

	next := s.Piece()
	c.Assert(next.Y, qt.Equals, 1)
	c.Assert(next.X, qt.Equals, 4)
	c.Assert(next.Cells[0].Symbol, qt.Equals, "S5")
	c.Assert(s.CursorIndex(), qt.Equals, 8)
}

func TestFlatPieceLocksOnFloorRow(t *testing.T) {
	c := qt.New(t)
	s := newTestState(c, DefaultConfig(), shapeI)
	for i := 0; i < 19; i++ {
		s.Tick()
	}
	c.Assert(s.Piece().Y, qt.Equals, 19)
	c.Assert(s.Stats().Locks, qt.Equals, 0)
	s.Tick()
	c.Assert(s.Stats().Locks, qt.Equals, 1)
	for col := 2; col <= 5; col++ {
		c.Assert(s.Grid().At(19, col).Filled, qt.IsTrue)
	}
}

func TestRowClearedWhenNextPieceSpawns(t *testing.T) {
	c := qt.New(t)
	cfg := DefaultConfig()
	cfg.Cols, cfg.Rows = 4, 6
	s := newTestState(c, cfg, shapeI)

	for i := 0; i < 5; i++ {
		s.Tick()
	}
	c.Assert(s.Score(), qt.Equals, 0)

	s.Tick()
	c.Assert(s.Stats().Locks, qt.Equals, 1)
	c.Assert(s.Score(), qt.Equals, 1)
	c.Assert(s.Grid().Filled(), qt.Equals, 0)
	c.Assert(s.Display(), qt.Equals, Display{Points: "1", Symbol: "S1", Background: catalog.ColorFor("ametal")})
}

func TestResetRunsBeforeRowScan(t *testing.T) {
	c := qt.New(t)
	cfg := DefaultConfig()
	cfg.Cols, cfg.Rows = 4, 6
	s := newTestState(c, cfg, shapeI)
	fillRow(s.grid, 3, "X")
	s.grid.Place([]Square{{Row: 2, Col: 0}})
	s.score = 2

	// the piece locks on top of the stack with its anchor on row 1
	s.Tick()
	s.Tick()
	c.Assert(s.Stats().Locks, qt.Equals, 1)
	c.Assert(s.Stats().Resets, qt.Equals, 1)
	c.Assert(s.Score(), qt.Equals, 0)
	c.Assert(s.Grid().Filled(), qt.Equals, 0)
}

func TestClampPolicy(t *testing.T) {
	c := qt.New(t)
	cfg := DefaultConfig()
	cfg.Cols = 4
	s := newTestState(c, cfg, shapeI)

	c.Assert(s.Apply(ActionLeft), qt.IsFalse)
	c.Assert(s.Apply(ActionRight), qt.IsFalse)
	c.Assert(s.Piece().X, qt.Equals, 2)

	// rotating on the top row would push blocks above the board
	c.Assert(s.Apply(ActionRotate), qt.IsFalse)
	s.Tick()
	s.Tick()
	c.Assert(s.Apply(ActionRotate), qt.IsTrue)
	c.Assert(s.Piece().OnBoard(s.Grid()), qt.IsTrue)
	c.Assert(s.Apply(ActionLeft), qt.IsTrue)
	c.Assert(s.Piece().X, qt.Equals, 1)
	c.Assert(s.Apply(ActionNone), qt.IsFalse)
}

func TestFaithfulPolicy(t *testing.T) {
	c := qt.New(t)
	cfg := DefaultConfig()
	cfg.Cols = 4
	cfg.Policy = PolicyFaithful
	s := newTestState(c, cfg, shapeI)

	c.Assert(s.Apply(ActionLeft), qt.IsTrue)
	c.Assert(s.Piece().X, qt.Equals, 1)
	c.Assert(s.Apply(ActionRotate), qt.IsTrue)
	s.Apply(ActionRotate)
	s.Apply(ActionRotate)
	s.Apply(ActionRotate)

	for s.Stats().Locks == 0 {
		s.Tick()
	}
	// the block left of the board is dropped on lock
	c.Assert(s.Grid().Filled(), qt.Equals, 3)
}

func TestDisplay(t *testing.T) {
	c := qt.New(t)
	s := newTestState(c, DefaultConfig(), shapeT)
	c.Assert(s.Display(), qt.Equals, Display{Points: "", Symbol: "0", Background: catalog.DefaultColor})

	s.score = 3
	c.Assert(s.Display(), qt.Equals, Display{Points: "3", Symbol: "S3", Background: catalog.ColorFor("ametal")})

	s.score = 10
	c.Assert(s.Display().Symbol, qt.Equals, "S1")
}

func TestFrame(t *testing.T) {
	c := qt.New(t)
	s := newTestState(c, DefaultConfig(), shapeS)

	// two blocks of the S are still above the board
	f := s.Frame()
	c.Assert(f.Cols, qt.Equals, DefaultCols)
	c.Assert(f.Rows, qt.Equals, DefaultRows)
	c.Assert(f.Unit, qt.Equals, DefaultUnit)
	active := 0
	for _, row := range f.Cells {
		for _, cell := range row {
			if cell.Active {
				active++
			}
		}
	}
	c.Assert(active, qt.Equals, 2)
	c.Assert(f.Cells[0][4].Symbol, qt.Equals, "S3")

	s.grid.Place([]Square{{Row: 0, Col: 4, Symbol: "Au"}})
	f = s.Frame()
	c.Assert(f.Cells[0][4].Symbol, qt.Equals, "Au")
	c.Assert(f.Cells[0][4].Active, qt.IsFalse)
	c.Assert(f.Display.Symbol, qt.Equals, "0")
	c.Assert(f.Empty(), qt.IsFalse)
	c.Assert(Frame{}.Empty(), qt.IsTrue)
}

func TestParseAction(t *testing.T) {
	c := qt.New(t)
	c.Assert(ParseAction("left"), qt.Equals, ActionLeft)
	c.Assert(ParseAction("right"), qt.Equals, ActionRight)
	c.Assert(ParseAction("up"), qt.Equals, ActionRotate)
	c.Assert(ParseAction("rotate"), qt.Equals, ActionRotate)
	c.Assert(ParseAction("down"), qt.Equals, ActionNone)
	c.Assert(ActionRotate.String(), qt.Equals, "rotate")
}

func TestNewStateRejectsBadConfig(t *testing.T) {
	c := qt.New(t)
	cfg := DefaultConfig()
	cfg.Rows = 2
	_, err := NewState(cfg, testCatalog(c, 3))
	c.Assert(err, qt.ErrorMatches, "rows must be at least 4, got 2")

	_, err = NewState(DefaultConfig(), nil)
	c.Assert(err, qt.Equals, catalog.ErrEmpty)
}

func TestDefaultDelay(t *testing.T) {
	qt.Assert(t, DefaultConfig().Delay, qt.Equals, 150*time.Millisecond)
}
