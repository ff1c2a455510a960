package main

import (
	"os"

	"github.com/kgtool-dev/kgtool/cmd"
	"github.com/kgtool-dev/kgtool/kgtool"
)

// Version variable, filled in at link time
var Version string

func main() {
	if Version == "" {
		Version = "unknown"
	}

	kgtool.Version = Version

	os.Exit(cmd.Run(cmd.RootCommand(), os.Args[1:], true))
}
