package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:               "serve",
	Short:             "Serve the game to browsers or SSH clients",
	ValidArgsFunction: noFilesArg,
}
