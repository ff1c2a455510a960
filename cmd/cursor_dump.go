package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/smira/commander"

	"github.com/kgtool-dev/kgtool/cursor"
	"github.com/kgtool-dev/kgtool/kg"
	"github.com/kgtool-dev/kgtool/utils"
)

func kgtoolCursorDump(cmd *commander.Command, args []string) error {
	if len(args) != 1 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	data, stripped, err := utils.ReadFileMaybeCompressed(args[0])
	if err != nil {
		return fmt.Errorf("unable to read %s: %s", args[0], err)
	}

	cur, err := cursor.Parse(data)
	if err != nil {
		return fmt.Errorf("unable to parse %s: %s", args[0], err)
	}

	fmt.Printf("%s: version %d, %dx%d, hotspot (%d,%d), %d frames\n",
		args[0], cur.Version, cursor.Size, cursor.Size, cur.HotX, cur.HotY, len(cur.Frames))
	for i, frame := range cur.Frames {
		fmt.Printf("  frame %d: delay %d\n", i, frame.Delay)
	}

	sheetPath := cmd.Flag.Lookup("sheet").Value.String()
	if sheetPath == "" {
		return nil
	}

	data, _, err = utils.ReadFileMaybeCompressed(sheetPath)
	if err != nil {
		return fmt.Errorf("unable to read %s: %s", sheetPath, err)
	}

	sheet, err := kg.Decode(data)
	if err != nil {
		return fmt.Errorf("unable to decode %s: %s", sheetPath, err)
	}
	if len(sheet.Palette) == 0 {
		return fmt.Errorf("%s carries no palette, cursors need an indexed image", sheetPath)
	}

	dir, err := outputDir(cmd)
	if err != nil {
		return err
	}

	base := filepath.Base(stripped)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	for i, frame := range cur.Frames {
		target := filepath.Join(dir, fmt.Sprintf("%s_%03d.png", base, i))
		if err = writePNG(target, frame.Image(sheet.Palette)); err != nil {
			return fmt.Errorf("unable to write frame %d: %s", i, err)
		}
	}

	context.Progress().ColoredPrintf("@g[+]@| rendered %d frames to %s", len(cur.Frames), dir)

	return nil
}

func makeCmdCursorDump() *commander.Command {
	cmd := &commander.Command{
		Run:       kgtoolCursorDump,
		UsageLine: "dump <file.msc>",
		Short:     "show cursor frames and timings",
		Long: `
Command dump prints the hotspot and frame timings of an animated
cursor. Cursor frames store palette indices only; pass -sheet pointing
at an indexed KG image to borrow its palette and render the frames as
PNG files.

ex:
  $ kgtool cursor dump -sheet=SYSTEM.KG -output=out/ WAIT.MSC
`,
	}

	cmd.Flag.String("sheet", "", "indexed KG image to take the palette from")
	cmd.Flag.String("output", "", "directory for rendered frames (default: current directory)")

	return cmd
}
