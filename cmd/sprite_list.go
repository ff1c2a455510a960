package cmd

import (
	"fmt"

	"github.com/smira/commander"

	"github.com/kgtool-dev/kgtool/sprite"
	"github.com/kgtool-dev/kgtool/utils"
)

func kgtoolSpriteList(cmd *commander.Command, args []string) error {
	if len(args) != 1 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	data, _, err := utils.ReadFileMaybeCompressed(args[0])
	if err != nil {
		return fmt.Errorf("unable to read %s: %s", args[0], err)
	}

	table, err := sprite.Parse(data)
	if err != nil {
		return fmt.Errorf("unable to parse %s: %s", args[0], err)
	}

	fmt.Printf("%s: version %d, %d frames\n", args[0], table.Version, len(table.Frames))
	fmt.Printf("  %5s  %9s  %11s  %s\n", "frame", "size", "position", "origin")
	for i, frame := range table.Frames {
		fmt.Printf("  %5d  %4dx%-4d  (%4d,%4d)  (%d,%d)\n",
			i, frame.W, frame.H, frame.X, frame.Y, frame.OriginX, frame.OriginY)
	}

	return nil
}

func makeCmdSpriteList() *commander.Command {
	return &commander.Command{
		Run:       kgtoolSpriteList,
		UsageLine: "list <file.spr>",
		Short:     "list sprite sheet frames",
		Long: `
Command list prints the frame rectangles and origins of a sprite
sheet layout.

ex:
  $ kgtool sprite list CHARA.SPR
`,
	}
}
