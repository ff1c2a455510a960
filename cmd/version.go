package cmd

import (
	"fmt"

	"github.com/smira/commander"

	"github.com/kgtool-dev/kgtool/kgtool"
)

func kgtoolVersion(_ *commander.Command, _ []string) error {
	fmt.Printf("kgtool version: %s\n", kgtool.Version)
	return nil
}

func makeCmdVersion() *commander.Command {
	return &commander.Command{
		Run:       kgtoolVersion,
		UsageLine: "version",
		Short:     "display version",
		Long: `
Shows kgtool version.

ex:
  $ kgtool version
`,
	}
}
