package flags

import (
	"github.com/spf13/cobra"
)

var jsonFlag bool

func AddJSON(cmd *cobra.Command, usage string) {
	cmd.Flags().BoolVar(&jsonFlag, "json", false, usage)
}

func JSON() bool {
	return jsonFlag
}
