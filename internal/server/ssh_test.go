package server

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/gliderlabs/ssh"
	"github.com/stretchr/testify/require"

	"github.com/DestinyFrog/Periodic-Tetris/internal/game"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		actions []game.Action
		quit    bool
	}{
		{"left arrow", "\x1b[D", []game.Action{game.ActionLeft}, false},
		{"right arrow", "\x1b[C", []game.Action{game.ActionRight}, false},
		{"up arrow", "\x1b[A", []game.Action{game.ActionRotate}, false},
		{"application mode arrows", "\x1bOA\x1bOD", []game.Action{game.ActionRotate, game.ActionLeft}, false},
		{"down arrow is ignored", "\x1b[B", nil, false},
		{"several keys", "\x1b[D\x1b[D\x1b[C", []game.Action{game.ActionLeft, game.ActionLeft, game.ActionRight}, false},
		{"letters are ignored", "wasd", nil, false},
		{"q quits", "q", nil, true},
		{"Q quits after moves", "\x1b[DQ\x1b[C", []game.Action{game.ActionLeft}, true},
		{"ctrl-c quits", "\x03", nil, true},
		{"lone escape quits", "\x1b", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions, quit := parseInput([]byte(tt.data))
			require.Equal(t, tt.actions, actions)
			require.Equal(t, tt.quit, quit)
		})
	}
}

func TestEnsureHostKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")

	created, err := EnsureHostKey(path)
	require.NoError(t, err)
	require.True(t, created)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	created, err = EnsureHostKey(path)
	require.NoError(t, err)
	require.False(t, created)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, before, after)

	server := &ssh.Server{}
	require.NoError(t, server.SetOption(ssh.HostKeyFile(path)))
}

func TestShutdownWhenDoneLogsErrors(t *testing.T) {
	var out bytes.Buffer
	logger := log.New(&out, "", 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var deadline bool
	shutdownWhenDone(ctx, "Web", func(ctx context.Context) error {
		_, deadline = ctx.Deadline()
		return errors.New("connections still open")
	}, logger)
	require.True(t, deadline)
	require.Equal(t, "Web server shutdown error: connections still open\n", out.String())

	out.Reset()
	shutdownWhenDone(ctx, "SSH", func(context.Context) error { return nil }, logger)
	require.Empty(t, out.String())
}
