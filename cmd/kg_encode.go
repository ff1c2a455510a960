package cmd

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/smira/commander"

	// registers the PNG decoder for image.Decode
	_ "image/png"

	"github.com/kgtool-dev/kgtool/kg"
)

func kgtoolKgEncode(cmd *commander.Command, args []string) error {
	if len(args) < 1 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	dir, err := outputDir(cmd)
	if err != nil {
		return err
	}

	err = runBatch(args, context.Config().DecodeConcurrency, context.Progress(), func(path string) (string, error) {
		data, err2 := os.ReadFile(path)
		if err2 != nil {
			return "", err2
		}

		if !filetype.Is(data, "png") {
			kind, _ := filetype.Match(data)
			if kind.MIME.Value == "" {
				return "", fmt.Errorf("not a PNG file")
			}
			return "", fmt.Errorf("not a PNG file (looks like %s)", kind.MIME.Value)
		}

		src, _, err2 := image.Decode(bytes.NewReader(data))
		if err2 != nil {
			return "", err2
		}

		img, err2 := kg.FromImage(src)
		if err2 != nil {
			return "", err2
		}

		encoded, err2 := kg.Encode(img)
		if err2 != nil {
			return "", err2
		}

		base := filepath.Base(path)
		target := filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+".kg")

		if err2 = os.WriteFile(target, encoded, 0666); err2 != nil {
			return "", err2
		}

		return fmt.Sprintf("%s -> %s", path, target), nil
	})
	if err != nil {
		return fmt.Errorf("unable to encode: %s", err)
	}

	return nil
}

func makeCmdKgEncode() *commander.Command {
	cmd := &commander.Command{
		Run:       kgtoolKgEncode,
		UsageLine: "encode <file.png>...",
		Short:     "encode PNG images to KG",
		Long: `
Command encode quantizes PNG images to 256 colors and compresses them
into KG files. Input that does not look like PNG is rejected before
the quantizer runs.

ex:
  $ kgtool kg encode -output=patched/ title.png
`,
	}

	cmd.Flag.String("output", "", "directory for encoded files (default: current directory)")

	return cmd
}
