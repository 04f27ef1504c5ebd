package main

import (
	"os"

	"github.com/tinycc/frontend/cmd/tinycc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
