package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"os"

	"github.com/athoscouto/codename"
	"github.com/olekukonko/tablewriter"

	"github.com/DestinyFrog/Periodic-Tetris/internal"
	"github.com/DestinyFrog/Periodic-Tetris/internal/catalog"
	"github.com/DestinyFrog/Periodic-Tetris/internal/game"
	"github.com/DestinyFrog/Periodic-Tetris/internal/prompt"
	"github.com/DestinyFrog/Periodic-Tetris/internal/settings"
)

const logFlags = log.Ldate | log.Ltime | log.LUTC | log.Lshortfile

// loadGame reads the settings and the catalog every frontend needs.
func loadGame(ctx context.Context) (*settings.Settings, game.Config, *catalog.Catalog, error) {
	config, err := settings.ReadSettings()
	if err != nil {
		return nil, game.Config{}, nil, fmt.Errorf("could not retrieve local config: %w", err)
	}
	cfg, err := config.GameConfig()
	if err != nil {
		return nil, game.Config{}, nil, fmt.Errorf("invalid game settings: %w", err)
	}
	cat, err := loadCatalog(ctx, config.Catalog())
	if err != nil {
		return nil, game.Config{}, nil, err
	}
	return config, cfg, cat, nil
}

func loadCatalog(ctx context.Context, source string) (*catalog.Catalog, error) {
	loader := catalog.Loader{Cache: settings.CatalogCache{}}
	if catalog.IsRemote(source) {
		s := prompt.Spinner(fmt.Sprintf("Fetching catalog from %s...", internal.Emph(source)))
		defer s.Stop()
	}
	cat, err := loader.Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("could not load element catalog: %w", err)
	}
	return cat, nil
}

// openLog returns a logger writing to the log file in the config directory.
func openLog(config *settings.Settings) (*log.Logger, io.Closer, error) {
	path := config.File(settings.LogFile)
	logFile, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file error: %w", err)
	}
	return log.New(logFile, "", logFlags), logFile, nil
}

func stderrLogger() *log.Logger {
	return log.New(os.Stderr, "", logFlags)
}

// port is the port part of a listen address
func port(addr string) string {
	_, p, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return p
}

func sessionName() string {
	rng, err := codename.DefaultRNG()
	if err != nil {
		return "game"
	}
	return codename.Generate(rng, 0)
}

func printTable(w io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(w)

	table.SetHeader(header)
	table.SetHeaderLine(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(true)

	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnSeparator("  ")
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("     ")

	table.AppendBulk(data)

	table.Render()
}
