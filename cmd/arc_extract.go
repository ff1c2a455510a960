package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/smira/commander"
)

func kgtoolArcExtract(cmd *commander.Command, args []string) error {
	if len(args) < 1 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	archive, data, err := openVolume(args[0])
	if err != nil {
		return fmt.Errorf("unable to open volume: %s", err)
	}
	defer func() {
		_ = data.Close()
	}()

	names := args[1:]
	if len(names) == 0 {
		names = make([]string, len(archive.Entries))
		for i, entry := range archive.Entries {
			names[i] = entry.Name
		}
	}

	dir, err := outputDir(cmd)
	if err != nil {
		return err
	}

	progress := context.Progress()
	progress.InitBar(int64(len(names)), false)
	defer progress.ShutdownBar()

	for _, name := range names {
		payload, err := archive.Extract(name)
		if err != nil {
			return fmt.Errorf("unable to extract: %s", err)
		}

		if err = os.WriteFile(filepath.Join(dir, name), payload, 0666); err != nil {
			return fmt.Errorf("unable to extract %s: %s", name, err)
		}

		progress.AddBar(1)
	}

	progress.ColoredPrintf("@g[+]@| extracted %d files to %s", len(names), dir)

	return nil
}

func makeCmdArcExtract() *commander.Command {
	cmd := &commander.Command{
		Run:       kgtoolArcExtract,
		UsageLine: "extract <volume.idx> [<name>...]",
		Short:     "extract files from volume",
		Long: `
Extract writes volume entries out as individual files. Without names
the whole volume is extracted.

ex:
  $ kgtool arc extract GAME.IDX BG_SCHOOL.KG
`,
	}

	cmd.Flag.String("output", "", "directory for extracted files (default: current directory)")

	return cmd
}
