package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/smira/commander"

	"github.com/kgtool-dev/kgtool/kg"
	"github.com/kgtool-dev/kgtool/utils"
)

var decodeFormats = []string{"png", "ppm"}

func kgtoolKgDecode(cmd *commander.Command, args []string) error {
	if len(args) < 1 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	format := cmd.Flag.Lookup("format").Value.String()
	if !utils.StrSliceHasItem(decodeFormats, format) {
		return fmt.Errorf("unknown output format %s (supported: %s)", format, strings.Join(decodeFormats, ", "))
	}

	dir, err := outputDir(cmd)
	if err != nil {
		return err
	}

	err = runBatch(args, context.Config().DecodeConcurrency, context.Progress(), func(path string) (string, error) {
		data, stripped, err2 := utils.ReadFileMaybeCompressed(path)
		if err2 != nil {
			return "", err2
		}

		img, err2 := kg.Decode(data)
		if err2 != nil {
			return "", err2
		}

		base := filepath.Base(stripped)
		target := filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+"."+format)

		switch format {
		case "ppm":
			err2 = writePPM(target, img.ToImage())
		default:
			err2 = writePNG(target, img.ToImage())
		}
		if err2 != nil {
			return "", err2
		}

		return fmt.Sprintf("%s -> %s", path, target), nil
	})
	if err != nil {
		return fmt.Errorf("unable to decode: %s", err)
	}

	return nil
}

func makeCmdKgDecode() *commander.Command {
	cmd := &commander.Command{
		Run:       kgtoolKgDecode,
		UsageLine: "decode <file.kg>...",
		Short:     "decode KG images to PNG",
		Long: `
Command decode decompresses KG images and writes them out as PNG (or
PPM) files. Multiple files are decoded concurrently, see the
decodeConcurrency config setting.

ex:
  $ kgtool kg decode -output=out/ BG_*.KG
`,
	}

	cmd.Flag.String("output", "", "directory for decoded files (default: current directory)")
	cmd.Flag.String("format", "png", "output format (png, ppm)")

	return cmd
}
