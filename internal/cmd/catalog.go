package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/DestinyFrog/Periodic-Tetris/internal"
	"github.com/DestinyFrog/Periodic-Tetris/internal/catalog"
	"github.com/DestinyFrog/Periodic-Tetris/internal/flags"
	"github.com/DestinyFrog/Periodic-Tetris/internal/render"
	"github.com/DestinyFrog/Periodic-Tetris/internal/settings"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogColorsCmd)
	flags.AddJSON(catalogShowCmd, "Print the element as JSON.")
}

var catalogCmd = &cobra.Command{
	Use:               "catalog",
	Short:             "Inspect the element catalog",
	ValidArgsFunction: noFilesArg,
}

var catalogListCmd = &cobra.Command{
	Use:               "list",
	Short:             "List the elements in the order blocks use them",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cat, err := configuredCatalog(cmd)
		if err != nil {
			return err
		}
		printCatalog(cmd.OutOrStdout(), cat)
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:               "show <symbol>",
	Short:             "Show one element",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: symbolArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cat, err := configuredCatalog(cmd)
		if err != nil {
			return err
		}
		item, ok := cat.Lookup(args[0])
		if !ok {
			return fmt.Errorf("element %s not found. List known elements using %s", internal.Emph(args[0]), internal.Emph("ptetris catalog list"))
		}
		if flags.JSON() {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(item)
		}
		printItem(cmd.OutOrStdout(), item)
		return nil
	},
}

var catalogColorsCmd = &cobra.Command{
	Use:               "colors",
	Short:             "Show the color used for each element category",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		data := [][]string{}
		for _, category := range catalog.Categories() {
			c := catalog.ColorFor(category)
			data = append(data, []string{category, string(c), swatch(c, "  ")})
		}
		printTable(cmd.OutOrStdout(), []string{"category", "color", ""}, data)
		fmt.Fprintf(cmd.OutOrStdout(), "\nAny other category uses %s.\n", catalog.DefaultColor)
		return nil
	},
}

func configuredCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	config, err := settings.ReadSettings()
	if err != nil {
		return nil, fmt.Errorf("could not retrieve local config: %w", err)
	}
	return loadCatalog(cmd.Context(), config.Catalog())
}

func printCatalog(w io.Writer, cat *catalog.Catalog) {
	tbl := table.New("NUMBER", "SYMBOL", "NAME", "CATEGORY", "COLOR").WithWriter(w)
	columnFmt := color.New(color.FgBlue, color.Bold).SprintfFunc()
	tbl.WithFirstColumnFormatter(columnFmt)
	for _, item := range cat.Items() {
		tbl.AddRow(item.Number, item.Symbol, item.Name, item.Category, swatch(item.Color, render.Center(item.Symbol, 4)))
	}
	tbl.Print()
}

func printItem(w io.Writer, item catalog.Item) {
	fmt.Fprintf(w, "%s  %s\n\n", swatch(item.Color, render.Center(item.Symbol, 4)), internal.Emph(item.Name))
	fmt.Fprintf(w, "Number:   %d\n", item.Number)
	fmt.Fprintf(w, "Symbol:   %s\n", item.Symbol)
	fmt.Fprintf(w, "Category: %s\n", item.Category)
	fmt.Fprintf(w, "Color:    %s\n", item.Color)
}

// swatch renders text in white over c
func swatch(c catalog.Color, text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(string(c))).
		Bold(true).
		Render(text)
}

