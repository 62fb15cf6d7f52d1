package main

import (
	"os"

	"github.com/adydas-lantern/naia-standings/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
