package cmd

import (
	"github.com/smira/commander"
	"github.com/smira/flag"
)

func makeCmdSfx() *commander.Command {
	return &commander.Command{
		UsageLine: "sfx",
		Short:     "work with SE sound effects",
		Subcommands: []*commander.Command{
			makeCmdSfxConvert(),
		},
		Flag: *flag.NewFlagSet("kgtool-sfx", flag.ExitOnError),
	}
}
