package main

import (
	"os"

	"github.com/bnema/moodline/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
