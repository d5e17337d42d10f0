package main

import (
	"os"

	"pricklybird/cmd/pricklybird/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
