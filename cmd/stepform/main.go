package main

import (
	"os"

	"github.com/goliatone/go-stepform/cmd/stepform/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
