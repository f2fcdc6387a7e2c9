package cmd

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/DestinyFrog/Periodic-Tetris/internal"
	"github.com/DestinyFrog/Periodic-Tetris/internal/flags"
	"github.com/DestinyFrog/Periodic-Tetris/internal/game"
	"github.com/DestinyFrog/Periodic-Tetris/internal/server"
)

func init() {
	serveCmd.AddCommand(serveWebCmd)
	flags.AddWebAddr(serveWebCmd)
	flags.AddOpen(serveWebCmd)
}

var serveWebCmd = &cobra.Command{
	Use:               "web",
	Short:             "Serve one shared game over HTTP",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		_, cfg, cat, err := loadGame(cmd.Context())
		if err != nil {
			return err
		}
		logger := stderrLogger()

		state, err := game.NewState(cfg, cat)
		if err != nil {
			return err
		}
		engine := game.NewEngine(state, logger)
		web := server.NewWeb(engine, cat, logger)

		listener, err := server.Listen(flags.WebAddr())
		if err != nil {
			return err
		}
		url := server.URL(listener)
		fmt.Printf("Playing at %s\n", internal.Emph(url))

		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			return engine.Run(ctx)
		})
		g.Go(func() error {
			return web.Serve(ctx, listener)
		})
		if flags.Open() {
			if err := browser.OpenURL(url); err != nil {
				fmt.Println(internal.Warn("Could not open the browser:"), err)
			}
		}
		return waitServers(g)
	},
}

// waitServers waits for the group; an interrupt is a normal way to stop.
func waitServers(g *errgroup.Group) error {
	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Println("Server stopped.")
	return nil
}
