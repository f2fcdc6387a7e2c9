package main

import (
	"github.com/DestinyFrog/Periodic-Tetris/internal/cmd"
)

func main() {
	cmd.Execute()
}
