package main

import (
	"os"

	"github.com/bookroll-dev/bookroll/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
