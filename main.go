package main

import (
	"os"

	"github.com/mindstep/aiplan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
