package main

import (
	"os"

	"github.com/bnema/spacetraders-stats-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
