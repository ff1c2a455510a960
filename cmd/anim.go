package cmd

import (
	"github.com/smira/commander"
	"github.com/smira/flag"
)

func makeCmdAnim() *commander.Command {
	return &commander.Command{
		UsageLine: "anim",
		Short:     "work with SEQ animation sequences",
		Subcommands: []*commander.Command{
			makeCmdAnimShow(),
		},
		Flag: *flag.NewFlagSet("kgtool-anim", flag.ExitOnError),
	}
}
