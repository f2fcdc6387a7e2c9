package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configPath string

func AddConfigPath(cmd *cobra.Command) {
	usage := "Path to the directory with the settings file."
	cmd.PersistentFlags().StringVar(&configPath, "config-path", "", usage)
	viper.BindPFlag("config-path", cmd.PersistentFlags().Lookup("config-path"))
}

func ConfigPath() string {
	return configPath
}
