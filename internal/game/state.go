package game

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/DestinyFrog/Periodic-Tetris/internal/catalog"
)

// Action is a player request.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionRotate
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionRotate:
		return "rotate"
	}
	return "none"
}

// ParseAction maps the names used by the web and ssh frontends.
func ParseAction(name string) Action {
	switch name {
	case "left":
		return ActionLeft
	case "right":
		return ActionRight
	case "up", "rotate":
		return ActionRotate
	}
	return ActionNone
}

// Stats counts what happened during a game.
type Stats struct {
	Ticks       int `json:"ticks"`
	Spawns      int `json:"spawns"`
	Locks       int `json:"locks"`
	Resets      int `json:"resets"`
	RowsCleared int `json:"rowsCleared"`
}

// Display is the score panel: the numeric score plus the element it unlocked.
type Display struct {
	Points     string        `json:"points"`
	Symbol     string        `json:"symbol"`
	Background catalog.Color `json:"background"`
}

// Option customizes a State.
type Option func(*State)

// WithShapeSource replaces the random shape picker. pick receives the number
// of shapes and returns an index.
func WithShapeSource(pick func(n int) int) Option {
	return func(s *State) {
		s.pick = pick
	}
}

// State is a running game. It is not safe for concurrent use; Engine
// serializes access to it.
type State struct {
	cfg     Config
	catalog *catalog.Catalog
	cursor  *catalog.Cursor
	grid    *Grid
	piece   Piece
	score   int
	stats   Stats
	pick    func(n int) int
}

// NewState creates an empty board and spawns the first piece.
func NewState(cfg Config, cat *catalog.Catalog, opts ...Option) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cat == nil || cat.Len() == 0 {
		return nil, catalog.ErrEmpty
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &State{
		cfg:     cfg,
		catalog: cat,
		cursor:  cat.Cursor(),
		grid:    NewGrid(cfg.Cols, cfg.Rows),
		pick:    rng.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.spawnPiece()
	return s, nil
}

// Tick advances the game one step: lock and respawn if the piece cannot
// fall further, then move it down one row.
func (s *State) Tick() {
	s.stats.Ticks++
	if Collides(s.piece, s.grid) {
		s.grid.Place(s.piece.Squares())
		s.stats.Locks++
		s.spawn()
	}
	s.piece.Y++
}

// spawn replaces the locked piece. A piece that locked near the top wipes
// the board; full rows are only scanned here, not when a piece locks.
func (s *State) spawn() {
	if s.piece.Y < resetRows {
		s.reset()
	}
	s.spawnPiece()

	cleared := s.grid.ClearFullRows(s.cfg.ClearTopRow)
	s.score += cleared
	s.stats.RowsCleared += cleared
}

func (s *State) spawnPiece() {
	shape := Shapes[s.pick(len(Shapes))]
	s.piece = NewPiece(shape, s.cfg.Cols/2, 0, s.cursor)
	s.stats.Spawns++
}

func (s *State) reset() {
	s.grid.Reset()
	s.score = 0
	s.stats.Resets++
}

// Apply performs a player action and reports whether the piece changed.
func (s *State) Apply(a Action) bool {
	switch a {
	case ActionLeft:
		return s.Translate(-1)
	case ActionRight:
		return s.Translate(1)
	case ActionRotate:
		return s.Rotate()
	}
	return false
}

// Translate moves the piece sideways. Collisions are only resolved by the
// next tick.
func (s *State) Translate(dx int) bool {
	return s.move(s.piece.CloneTranslate(dx))
}

// Rotate turns the piece a quarter.
func (s *State) Rotate() bool {
	return s.move(s.piece.CloneRotate())
}

func (s *State) move(next Piece) bool {
	if s.cfg.Policy == PolicyClamp && !next.OnBoard(s.grid) {
		return false
	}
	s.piece = next
	return true
}

// Display renders the score panel. Scores past the end of the catalog wrap.
func (s *State) Display() Display {
	if s.score == 0 {
		return Display{Points: "", Symbol: "0", Background: catalog.DefaultColor}
	}
	item := s.catalog.At(s.score - 1)
	return Display{
		Points:     strconv.Itoa(s.score),
		Symbol:     item.Symbol,
		Background: item.Color,
	}
}

func (s *State) Config() Config            { return s.cfg }
func (s *State) Catalog() *catalog.Catalog { return s.catalog }
func (s *State) Grid() *Grid               { return s.grid }
func (s *State) Piece() Piece              { return s.piece }
func (s *State) Score() int                { return s.score }
func (s *State) Stats() Stats              { return s.stats }

// CursorIndex is the catalog position the next block will be skinned with.
func (s *State) CursorIndex() int {
	return s.cursor.Index()
}
