package flags

import (
	"github.com/spf13/cobra"
)

var webAddr string

func AddWebAddr(cmd *cobra.Command) {
	cmd.Flags().StringVar(&webAddr, "addr", "localhost:8080", "Address the web server listens on.")
}

func WebAddr() string {
	return webAddr
}

var sshAddr string

func AddSSHAddr(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sshAddr, "addr", ":2222", "Address the SSH server listens on.")
}

func SSHAddr() string {
	return sshAddr
}
