package main

import (
	"os"

	"github.com/aurumlife/aurum/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
