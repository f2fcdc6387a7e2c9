package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DestinyFrog/Periodic-Tetris/internal/game"
	"github.com/DestinyFrog/Periodic-Tetris/internal/window"
)

func init() {
	rootCmd.AddCommand(windowCmd)
}

var windowCmd = &cobra.Command{
	Use:               "window",
	Short:             "Play in a desktop window",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
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

		if err := window.Run(state, fmt.Sprintf("Periodic Tetris (%s)", name), logger); err != nil {
			return fmt.Errorf("window error: %w", err)
		}
		printSummary(name, state)
		return nil
	},
}
