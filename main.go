package main

import (
	"os"

	"github.com/javoire/branchsweep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
