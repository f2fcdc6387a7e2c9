package game

import (
	"context"
	"io"
	"log"
	"sync"
	"time"
)

const actionBuffer = 8

// Engine drives a State: a tick every Delay and player actions applied as
// they arrive, all from the goroutine running Run.
type Engine struct {
	state      *State
	logger     *log.Logger
	chanAction chan Action
	tickTime   time.Duration

	mu        sync.RWMutex
	frame     Frame
	observers []func(Frame)
}

// NewEngine wraps state. A nil logger discards engine logs.
func NewEngine(state *State, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	engine := &Engine{
		state:      state,
		logger:     logger,
		chanAction: make(chan Action, actionBuffer),
		tickTime:   state.Config().Delay,
	}
	engine.frame = state.Frame()
	return engine
}

// Observe registers fn to be called with every new frame. It must be called
// before Run; fn runs on the engine goroutine and should not block.
func (engine *Engine) Observe(fn func(Frame)) {
	engine.observers = append(engine.observers, fn)
}

// Send queues an action. It reports false when the queue is full and the
// action was dropped.
func (engine *Engine) Send(a Action) bool {
	select {
	case engine.chanAction <- a:
		return true
	default:
		return false
	}
}

// Frame returns the latest published frame.
func (engine *Engine) Frame() Frame {
	engine.mu.RLock()
	defer engine.mu.RUnlock()
	return engine.frame
}

// Run runs the game until ctx is done.
func (engine *Engine) Run(ctx context.Context) error {
	engine.logger.Println("Engine Run start")

	timer := time.NewTimer(engine.tickTime)
	defer timer.Stop()

	engine.publish()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case action := <-engine.chanAction:
			if engine.state.Apply(action) {
				engine.publish()
			}
		case <-timer.C:
			engine.tick()
			timer.Reset(engine.tickTime)
		}
	}

	stats := engine.state.Stats()
	engine.logger.Printf("Engine Run end: %d ticks, %d locks, %d rows cleared, %d resets",
		stats.Ticks, stats.Locks, stats.RowsCleared, stats.Resets)
	return nil
}

// tick moves the piece down and renders
func (engine *Engine) tick() {
	before := engine.state.Stats()
	engine.state.Tick()
	after := engine.state.Stats()

	if after.Resets > before.Resets {
		engine.logger.Println("Engine board reset: piece locked near the top")
	}
	if after.RowsCleared > before.RowsCleared {
		engine.logger.Printf("Engine cleared %d rows, score %d", after.RowsCleared-before.RowsCleared, engine.state.Score())
	}
	engine.publish()
}

func (engine *Engine) publish() {
	frame := engine.state.Frame()
	engine.mu.Lock()
	engine.frame = frame
	engine.mu.Unlock()
	for _, fn := range engine.observers {
		fn(frame)
	}
}
