package main

import (
	"os"

	"github.com/soni801/go-tatata/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
