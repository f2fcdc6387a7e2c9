package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/DestinyFrog/Periodic-Tetris/internal"
	"github.com/DestinyFrog/Periodic-Tetris/internal/flags"
	"github.com/DestinyFrog/Periodic-Tetris/internal/server"
	"github.com/DestinyFrog/Periodic-Tetris/internal/settings"
)

func init() {
	serveCmd.AddCommand(serveSSHCmd)
	flags.AddSSHAddr(serveSSHCmd)
}

var serveSSHCmd = &cobra.Command{
	Use:               "ssh",
	Short:             "Serve a game per SSH session",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		config, cfg, cat, err := loadGame(cmd.Context())
		if err != nil {
			return err
		}
		logger := stderrLogger()

		hostKey := config.File(settings.HostKey)
		created, err := server.EnsureHostKey(hostKey)
		if err != nil {
			return fmt.Errorf("host key error: %w", err)
		}
		if created {
			logger.Printf("Generated new host key %s", hostKey)
		}

		addr := flags.SSHAddr()
		fmt.Printf("Connect with %s\n", internal.Emph(fmt.Sprintf("ssh -t -p %s localhost", port(addr))))

		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			return server.NewSSH(addr, hostKey, cfg, cat, logger).Serve(ctx)
		})
		return waitServers(g)
	},
}
