//go:build windows

package internal

import "fmt"

func plain(a ...interface{}) string {
	return fmt.Sprint(a...)
}

// Color functions for terminal output; plain text on windows consoles.
var (
	Emph = plain
	Warn = plain
	Good = plain
)
