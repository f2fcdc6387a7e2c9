package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DestinyFrog/Periodic-Tetris/internal/game"
)

// AddGameFlags registers the board and timing flags. They are bound to
// viper so they override the settings file and the environment.
func AddGameFlags(cmd *cobra.Command) {
	def := game.DefaultConfig()
	flags := cmd.PersistentFlags()
	flags.Int("cols", def.Cols, "Number of board columns.")
	flags.Int("rows", def.Rows, "Number of board rows.")
	flags.Duration("delay", def.Delay, "Time between two ticks.")
	flags.Int("unit", def.Unit, "Pixel size of a cell in the window and the web client.")
	flags.String("policy", string(def.Policy), "Movement policy: 'clamp' keeps the piece on the board, 'faithful' lets it leave.")
	flags.Bool("clear-top-row", def.ClearTopRow, "Empty the top row when rows are cleared instead of keeping a copy of it.")
	flags.String("catalog", "", "Element catalog: a file path or an http(s) URL. Defaults to the built-in periodic table.")
	flags.Int64("seed", def.Seed, "Seed for the piece sequence; 0 picks one from the clock.")

	for _, name := range []string{"cols", "rows", "delay", "unit", "policy", "clear-top-row", "catalog", "seed"} {
		viper.BindPFlag(name, flags.Lookup(name))
	}
}
