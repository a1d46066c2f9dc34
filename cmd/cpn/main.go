package main

import (
	"os"

	"github.com/compagnon-app/compagnon-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
