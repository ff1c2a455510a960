package cmd

import (
	"github.com/smira/commander"
	"github.com/smira/flag"
)

func makeCmdKg() *commander.Command {
	return &commander.Command{
		UsageLine: "kg",
		Short:     "inspect and convert KG images",
		Subcommands: []*commander.Command{
			makeCmdKgInfo(),
			makeCmdKgDecode(),
			makeCmdKgEncode(),
		},
		Flag: *flag.NewFlagSet("kgtool-kg", flag.ExitOnError),
	}
}
