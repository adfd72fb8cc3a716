package main

import (
	"os"

	"github.com/dev-hari-haran/Way-to-Industry/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
