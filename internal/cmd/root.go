package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/DestinyFrog/Periodic-Tetris/internal/flags"
	"github.com/DestinyFrog/Periodic-Tetris/internal/settings"
)

var rootCmd = &cobra.Command{
	Use:     "ptetris",
	Version: version,
	Short:   "Falling blocks labelled with the chemical elements",
	Long: "Periodic Tetris: every block carries the next element of the periodic table,\n" +
		"and the score panel shows the element your score has reached.",
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		settings.PersistChanges()
	},
}

func init() {
	flags.AddConfigPath(rootCmd)
	flags.AddGameFlags(rootCmd)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
