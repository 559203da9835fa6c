package main

import (
	"os"

	"github.com/worktrack/go-work-balance/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
