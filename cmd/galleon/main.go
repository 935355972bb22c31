package main

import (
	"os"

	"github.com/msto63/galleon/cmd/galleon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
