package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/smira/commander"

	"github.com/kgtool-dev/kgtool/arc"
	"github.com/kgtool-dev/kgtool/utils"
)

func kgtoolArcPack(cmd *commander.Command, args []string) error {
	if len(args) != 2 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	srcDir, indexPath := args[0], args[1]

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("unable to pack: %s", err)
	}

	writer := arc.NewWriter()
	packed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		payload, err2 := os.ReadFile(filepath.Join(srcDir, entry.Name()))
		if err2 != nil {
			return fmt.Errorf("unable to pack: %s", err2)
		}

		if err2 = writer.Add(entry.Name(), payload); err2 != nil {
			return fmt.Errorf("unable to pack: %s", err2)
		}
		packed++
	}

	idx, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("unable to pack: %s", err)
	}
	if err = writer.WriteIndex(idx); err != nil {
		_ = idx.Close()
		return fmt.Errorf("unable to write index: %s", err)
	}
	if err = idx.Close(); err != nil {
		return fmt.Errorf("unable to write index: %s", err)
	}

	dataPath := strings.TrimSuffix(indexPath, filepath.Ext(indexPath)) + context.Config().DataExtension
	data, err := os.Create(dataPath)
	if err != nil {
		return fmt.Errorf("unable to pack: %s", err)
	}
	if err = writer.WriteData(data); err != nil {
		_ = data.Close()
		return fmt.Errorf("unable to write data: %s", err)
	}
	if err = data.Close(); err != nil {
		return fmt.Errorf("unable to write data: %s", err)
	}

	var total int64
	for _, entry := range writer.Entries() {
		total += int64(entry.Size)
	}

	context.Progress().Printf("Packed %d files (%s) into %s + %s\n", packed, utils.HumanBytes(total), indexPath, dataPath)

	return nil
}

func makeCmdArcPack() *commander.Command {
	return &commander.Command{
		Run:       kgtoolArcPack,
		UsageLine: "pack <dir> <volume.idx>",
		Short:     "pack a directory into a volume",
		Long: `
Pack builds an IDX/DAT volume pair from the files of a directory.
Subdirectories are skipped; entry names are limited to 20 bytes by
the format.

ex:
  $ kgtool arc pack patched/ PATCH.IDX
`,
	}
}
