package flags

import (
	"github.com/spf13/cobra"
)

var openFlag bool

func AddOpen(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&openFlag, "open", false, "Open the game in the default browser.")
}

func Open() bool {
	return openFlag
}
