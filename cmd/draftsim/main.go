package main

import (
	"os"

	"github.com/preston-bernstein/nba-draft-service/cmd/draftsim/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
