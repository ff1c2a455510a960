package cmd

import (
	"github.com/smira/commander"
	"github.com/smira/flag"
)

func makeCmdFont() *commander.Command {
	return &commander.Command{
		UsageLine: "font",
		Short:     "work with FNT bitmap fonts",
		Subcommands: []*commander.Command{
			makeCmdFontDump(),
		},
		Flag: *flag.NewFlagSet("kgtool-font", flag.ExitOnError),
	}
}
