package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/DestinyFrog/Periodic-Tetris/internal"
	"github.com/DestinyFrog/Periodic-Tetris/internal/game"
	"github.com/DestinyFrog/Periodic-Tetris/internal/render"
)

func init() {
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:               "play",
	Short:             "Play in the terminal",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("play needs an interactive terminal, try %s instead", internal.Emph("ptetris serve web"))
		}

		config, cfg, cat, err := loadGame(cmd.Context())
		if err != nil {
			return err
		}
		logger, logFile, err := openLog(config)
		if err != nil {
			return err
		}
		defer logFile.Close()

		state, err := game.NewState(cfg, cat)
		if err != nil {
			return err
		}
		name := sessionName()
		logger.SetPrefix(name + ": ")

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("NewScreen error: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("screen Init error: %w", err)
		}
		screen.HideCursor()
		screen.Clear()

		err = render.Play(cmd.Context(), screen, game.NewEngine(state, logger), logger)
		screen.Fini()
		if err != nil {
			return err
		}

		printSummary(name, state)
		return nil
	},
}

func printSummary(name string, state *game.State) {
	stats := state.Stats()
	display := state.Display()
	fmt.Printf("Game %s ended with score %s", internal.Emph(name), internal.Emph(humanize.Comma(int64(state.Score()))))
	if display.Points != "" {
		item := state.Catalog().At(state.Score() - 1)
		fmt.Printf(" (%s, %s)", internal.Emph(item.Symbol), item.Name)
	}
	fmt.Println(".")
	fmt.Printf("%s pieces locked, %s rows cleared, %s board resets in %s ticks.\n",
		humanize.Comma(int64(stats.Locks)), humanize.Comma(int64(stats.RowsCleared)),
		humanize.Comma(int64(stats.Resets)), humanize.Comma(int64(stats.Ticks)))
}
