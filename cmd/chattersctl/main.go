package main

import (
	"os"

	"github.com/matheus3301/chatters/cmd/chattersctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
