package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/DestinyFrog/Periodic-Tetris/internal/catalog"
	"github.com/DestinyFrog/Periodic-Tetris/internal/settings"
)

func noFilesArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{}, cobra.ShellCompDirectiveNoFileComp
}

func settingKeysArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return []string{}, cobra.ShellCompDirectiveNoFileComp
	}
	return settings.Keys(), cobra.ShellCompDirectiveNoFileComp
}

func symbolArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return []string{}, cobra.ShellCompDirectiveNoFileComp
	}
	cat, err := catalog.Default()
	if err != nil {
		return []string{}, cobra.ShellCompDirectiveNoFileComp
	}
	symbols := make([]string, 0, cat.Len())
	for _, item := range cat.Items() {
		if strings.HasPrefix(strings.ToLower(item.Symbol), strings.ToLower(toComplete)) {
			symbols = append(symbols, item.Symbol)
		}
	}
	return symbols, cobra.ShellCompDirectiveNoFileComp
}
