package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DestinyFrog/Periodic-Tetris/internal"
	"github.com/DestinyFrog/Periodic-Tetris/internal/flags"
	"github.com/DestinyFrog/Periodic-Tetris/internal/settings"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	flags.AddJSON(configShowCmd, "Print the settings as JSON.")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage your game configuration",
}

var configShowCmd = &cobra.Command{
	Use:               "show",
	Short:             "Show the effective game settings",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		config, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}

		values := map[string]string{}
		data := [][]string{}
		for _, key := range settings.Keys() {
			value, err := config.Get(key)
			if err != nil {
				return err
			}
			values[key] = value
			data = append(data, []string{key, value})
		}

		if flags.JSON() {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(values)
		}
		printTable(cmd.OutOrStdout(), []string{"setting", "value"}, data)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>",
	Short:             "Set a configuration value",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: settingKeysArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		config, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
		if err := config.Set(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), internal.Good("✔"), "Setting", internal.Emph(args[0]), "is now", internal.Emph(args[1]))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:               "path",
	Short:             "Print the configuration directory",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		config, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Path())
		return nil
	},
}
