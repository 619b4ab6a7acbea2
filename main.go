package main

import (
	"os"

	"github.com/cmounce/plasma/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
