package cmd

import (
	"github.com/smira/commander"
	"github.com/smira/flag"
)

func makeCmdItem() *commander.Command {
	return &commander.Command{
		UsageLine: "item",
		Short:     "work with obfuscated ITM item tables",
		Subcommands: []*commander.Command{
			makeCmdItemList(),
		},
		Flag: *flag.NewFlagSet("kgtool-item", flag.ExitOnError),
	}
}
