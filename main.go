package main

import (
	"os"

	"github.com/shirk33y/pushwatch/internal/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	os.Exit(cli.Execute())
}
