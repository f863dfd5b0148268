package main

import (
	"os"

	"nostrkit/cmd/nostrkit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
