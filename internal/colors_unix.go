//go:build !windows

package internal

import "github.com/fatih/color"

// Color functions for terminal output. fatih/color turns them off when
// stdout is not a terminal.
var (
	Emph = color.New(color.FgBlue, color.Bold).SprintFunc()
	Warn = color.New(color.FgYellow, color.Bold).SprintFunc()
	Good = color.New(color.FgGreen, color.Bold).SprintFunc()
)
