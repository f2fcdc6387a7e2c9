package render

import (
	"context"
	"io"
	"log"
	"runtime"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/DestinyFrog/Periodic-Tetris/internal/game"
)

// Play runs engine on an initialized screen until ctx is done or the player
// quits. The caller owns the screen and finalizes it afterwards.
func Play(ctx context.Context, screen tcell.Screen, engine *game.Engine, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	view := NewView(screen)
	frames := make(chan game.Frame, 1)
	engine.Observe(func(f game.Frame) { LatestFrame(frames, f) })

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			event := screen.PollEvent()
			if event == nil {
				return
			}
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return engine.Run(ctx)
	})
	g.Go(func() error {
		view.Draw(engine.Frame())
		for {
			select {
			case <-ctx.Done():
				return nil
			case f := <-frames:
				view.Draw(f)
			}
		}
	})
	g.Go(func() error {
		defer cancel()
		for {
			var event tcell.Event
			select {
			case <-ctx.Done():
				return nil
			case event = <-events:
			}

			switch eventType := event.(type) {
			case *tcell.EventKey:
				if IsQuit(eventType.Key(), eventType.Rune()) {
					logger.Println("Play quit by player")
					return nil
				}
				if eventType.Key() == tcell.KeyCtrlL {
					// Ctrl l (lower case L) to log stack trace
					buffer := make([]byte, 1<<16)
					length := runtime.Stack(buffer, true)
					logger.Println("Stack trace")
					logger.Println(string(buffer[:length]))
					continue
				}
				if action := KeyAction(eventType.Key()); action != game.ActionNone {
					engine.Send(action)
				}
			case *tcell.EventResize:
				screen.Sync()
				LatestFrame(frames, engine.Frame())
			default:
				logger.Printf("event type %T", eventType)
			}
		}
	})
	return g.Wait()
}

// LatestFrame replaces whatever frame is waiting in ch, which must have a
// buffer of one, with f.
func LatestFrame(ch chan game.Frame, f game.Frame) {
	for {
		select {
		case ch <- f:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
