package main

import (
	"os"

	"github.com/msto63/slyce/cmd/slyce/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
