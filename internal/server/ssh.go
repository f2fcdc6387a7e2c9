package server

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"
	"unicode/utf8"

	"github.com/gliderlabs/ssh"
	"github.com/google/uuid"

	"github.com/DestinyFrog/Periodic-Tetris/internal/catalog"
	"github.com/DestinyFrog/Periodic-Tetris/internal/game"
	"github.com/DestinyFrog/Periodic-Tetris/internal/render"
)

const shutdownTimeout = 5 * time.Second

// shutdownWhenDone blocks until ctx is done, then stops a server with
// shutdown, giving open connections shutdownTimeout to finish.
func shutdownWhenDone(ctx context.Context, name string, shutdown func(context.Context) error, logger *log.Logger) {
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdown(shutdownCtx); err != nil {
		logger.Printf("%s server shutdown error: %v", name, err)
	}
}

// SSH serves one independent game per SSH session.
type SSH struct {
	addr    string
	hostKey string
	config  game.Config
	catalog *catalog.Catalog
	logger  *log.Logger
}

// NewSSH creates an SSH game server. hostKey is a PEM private key file, see
// EnsureHostKey.
func NewSSH(addr, hostKey string, cfg game.Config, cat *catalog.Catalog, logger *log.Logger) *SSH {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &SSH{addr: addr, hostKey: hostKey, config: cfg, catalog: cat, logger: logger}
}

// Serve listens until ctx is done.
func (s *SSH) Serve(ctx context.Context) error {
	server := &ssh.Server{
		Addr:    s.addr,
		Handler: s.handleSession,
	}
	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	go shutdownWhenDone(ctx, "SSH", server.Shutdown, s.logger)

	s.logger.Printf("SSH server listening on %s", s.addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *SSH) handleSession(sess ssh.Session) {
	_, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		sess.Exit(1)
		return
	}

	id := uuid.New()
	username := sess.User()
	if username == "" {
		username = "Anonymous"
	}

	state, err := game.NewState(s.config, s.catalog)
	if err != nil {
		fmt.Fprintln(sess, "Error:", err)
		sess.Exit(1)
		return
	}

	prefix := fmt.Sprintf("session %s: ", id.String()[:8])
	engine := game.NewEngine(state, log.New(s.logger.Writer(), s.logger.Prefix()+prefix, s.logger.Flags()))
	frames := make(chan game.Frame, 1)
	engine.Observe(func(f game.Frame) { render.LatestFrame(frames, f) })

	s.logger.Printf("Player connected: %s (%s)", username, id)
	defer func() {
		stats := state.Stats()
		s.logger.Printf("Player disconnected: %s (%s), score %d after %d ticks", username, id, state.Score(), stats.Ticks)
	}()

	io.WriteString(sess, render.EnableAltScreen())
	io.WriteString(sess, render.HideCursor())
	io.WriteString(sess, render.ClearScreen())
	defer func() {
		io.WriteString(sess, render.Reset)
		io.WriteString(sess, render.ShowCursor())
		io.WriteString(sess, render.DisableAltScreen())
	}()

	ctx, cancel := context.WithCancel(sess.Context())

	done := make(chan struct{})
	go func() {
		defer close(done)
		engine.Run(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	go func() {
		defer cancel()
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				return
			}
			actions, quit := parseInput(buf[:n])
			for _, action := range actions {
				engine.Send(action)
			}
			if quit {
				return
			}
		}
	}()

	io.WriteString(sess, render.ANSI(engine.Frame()))
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-winCh:
			if !ok {
				winCh = nil
				continue
			}
			io.WriteString(sess, render.ClearScreen())
			io.WriteString(sess, render.ANSI(engine.Frame()))
		case f := <-frames:
			io.WriteString(sess, render.ANSI(f))
		}
	}
}

// parseInput converts raw bytes into game actions. Arrow key escape
// sequences move the piece; q, Ctrl-C and a lone Esc end the session.
func parseInput(data []byte) (actions []game.Action, quit bool) {
	i := 0
	for i < len(data) {
		// Check for escape sequences (arrow keys)
		if i+2 < len(data) && data[i] == 0x1b && (data[i+1] == '[' || data[i+1] == 'O') {
			switch data[i+2] {
			case 'A':
				actions = append(actions, game.ActionRotate)
			case 'C':
				actions = append(actions, game.ActionRight)
			case 'D':
				actions = append(actions, game.ActionLeft)
			}
			i += 3
			continue
		}

		// Single byte inputs
		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case 'q', 'Q':
			return actions, true
		case 3: // Ctrl-C
			return actions, true
		case 0x1b:
			if len(data) == 1 {
				return actions, true
			}
		}
		i += size
	}
	return actions, false
}

// EnsureHostKey writes a new ed25519 host key to path unless one exists.
func EnsureHostKey(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil // key already exists
	}

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return false, err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return false, err
	}

	pemBlock := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if err := pem.Encode(f, pemBlock); err != nil {
		return false, err
	}
	return true, nil
}
