package cmd

import (
	"github.com/smira/commander"
	"github.com/smira/flag"
)

func makeCmdSprite() *commander.Command {
	return &commander.Command{
		UsageLine: "sprite",
		Short:     "work with SPR sprite sheet layouts",
		Subcommands: []*commander.Command{
			makeCmdSpriteList(),
			makeCmdSpriteCut(),
		},
		Flag: *flag.NewFlagSet("kgtool-sprite", flag.ExitOnError),
	}
}
