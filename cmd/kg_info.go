package cmd

import (
	"bytes"
	"fmt"

	"github.com/smira/commander"

	"github.com/kgtool-dev/kgtool/kg"
	"github.com/kgtool-dev/kgtool/utils"
)

func kgtoolKgInfo(cmd *commander.Command, args []string) error {
	if len(args) < 1 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	for i, path := range args {
		data, _, err := utils.ReadFileMaybeCompressed(path)
		if err != nil {
			return fmt.Errorf("unable to read %s: %s", path, err)
		}

		header, err := kg.ParseHeader(data)
		if err != nil {
			return fmt.Errorf("unable to parse %s: %s", path, err)
		}

		checksums, err := utils.ChecksumsForReader(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("unable to checksum %s: %s", path, err)
		}

		mode := "indexed 8-bit"
		if header.PaletteOffset == 0 {
			mode = "bare 24-bit"
		}

		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s:\n", path)
		fmt.Printf("  Dimensions: %dx%d\n", header.Width, header.Height)
		fmt.Printf("  Mode: %s\n", mode)
		fmt.Printf("  Version: %d\n", header.Version)
		fmt.Printf("  Size: %s\n", utils.HumanBytes(checksums.Size))
		if int64(header.FileSize) != checksums.Size {
			fmt.Printf("  Size in header: %s\n", utils.HumanBytes(int64(header.FileSize)))
		}
		fmt.Printf("  MD5: %s\n", checksums.MD5)
		fmt.Printf("  SHA256: %s\n", checksums.SHA256)
	}

	return nil
}

func makeCmdKgInfo() *commander.Command {
	return &commander.Command{
		Run:       kgtoolKgInfo,
		UsageLine: "info <file.kg>...",
		Short:     "show KG image summary",
		Long: `
Command info shows the header fields and checksums of KG images
without decoding the pixel stream. Compressed input (*.gz, *.zst) is
unpacked transparently.

ex:
  $ kgtool kg info BG_SCHOOL.KG
`,
	}
}
