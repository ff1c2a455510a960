package cmd

import (
	"github.com/smira/commander"
	"github.com/smira/flag"
)

func makeCmdCursor() *commander.Command {
	return &commander.Command{
		UsageLine: "cursor",
		Short:     "work with MSC animated mouse cursors",
		Subcommands: []*commander.Command{
			makeCmdCursorDump(),
		},
		Flag: *flag.NewFlagSet("kgtool-cursor", flag.ExitOnError),
	}
}
