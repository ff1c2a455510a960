package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/smira/commander"

	"github.com/kgtool-dev/kgtool/kg"
	"github.com/kgtool-dev/kgtool/sprite"
	"github.com/kgtool-dev/kgtool/utils"
)

func kgtoolSpriteCut(cmd *commander.Command, args []string) error {
	if len(args) != 2 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	layoutPath, sheetPath := args[0], args[1]

	data, _, err := utils.ReadFileMaybeCompressed(layoutPath)
	if err != nil {
		return fmt.Errorf("unable to read %s: %s", layoutPath, err)
	}

	table, err := sprite.Parse(data)
	if err != nil {
		return fmt.Errorf("unable to parse %s: %s", layoutPath, err)
	}

	data, stripped, err := utils.ReadFileMaybeCompressed(sheetPath)
	if err != nil {
		return fmt.Errorf("unable to read %s: %s", sheetPath, err)
	}

	sheet, err := kg.Decode(data)
	if err != nil {
		return fmt.Errorf("unable to decode %s: %s", sheetPath, err)
	}

	if err = table.Validate(sheet.Width, sheet.Height); err != nil {
		return fmt.Errorf("layout does not fit %dx%d sheet: %s", sheet.Width, sheet.Height, err)
	}

	dir, err := outputDir(cmd)
	if err != nil {
		return err
	}

	base := filepath.Base(stripped)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	progress := context.Progress()
	progress.InitBar(int64(len(table.Frames)), false)

	for i, frame := range table.Frames {
		cut, err2 := sprite.Cut(sheet, frame)
		if err2 != nil {
			progress.ShutdownBar()
			return fmt.Errorf("unable to cut frame %d: %s", i, err2)
		}

		target := filepath.Join(dir, fmt.Sprintf("%s_%03d.png", base, i))
		if err2 = writePNG(target, cut.ToImage()); err2 != nil {
			progress.ShutdownBar()
			return fmt.Errorf("unable to write frame %d: %s", i, err2)
		}

		progress.AddBar(1)
	}

	progress.ShutdownBar()
	progress.ColoredPrintf("@g[+]@| cut %d frames from %s to %s", len(table.Frames), sheetPath, dir)

	return nil
}

func makeCmdSpriteCut() *commander.Command {
	cmd := &commander.Command{
		Run:       kgtoolSpriteCut,
		UsageLine: "cut <file.spr> <sheet.kg>",
		Short:     "cut sheet frames into PNG files",
		Long: `
Command cut decodes a sprite sheet, slices out every frame of the
layout and writes each one as a numbered PNG file.

ex:
  $ kgtool sprite cut -output=frames/ CHARA.SPR CHARA.KG
`,
	}

	cmd.Flag.String("output", "", "directory for cut frames (default: current directory)")

	return cmd
}
