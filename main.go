package main

import (
	"os"

	"github.com/pinagook/pinagook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
