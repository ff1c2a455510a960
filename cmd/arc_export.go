package cmd

import (
	"archive/tar"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/pgzip"
	"github.com/smira/commander"
)

func kgtoolArcExport(cmd *commander.Command, args []string) error {
	if len(args) != 1 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	indexPath := args[0]

	archive, closer, err := openVolume(indexPath)
	if err != nil {
		return fmt.Errorf("unable to export: %s", err)
	}
	defer func() {
		_ = closer.Close()
	}()

	target := cmd.Flag.Lookup("output").Value.String()
	if target == "" {
		target = strings.TrimSuffix(indexPath, filepath.Ext(indexPath)) + ".tar.gz"
	}

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("unable to export: %s", err)
	}

	gz := pgzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	progress := context.Progress()
	progress.InitBar(int64(len(archive.Entries)), false)

	now := time.Now()

	for _, entry := range archive.Entries {
		payload, err2 := archive.Extract(entry.Name)
		if err2 != nil {
			err = fmt.Errorf("unable to export %s: %s", entry.Name, err2)
			break
		}

		header := &tar.Header{
			Name:    entry.Name,
			Mode:    0644,
			Size:    int64(len(payload)),
			ModTime: now,
		}

		if err2 = tw.WriteHeader(header); err2 != nil {
			err = fmt.Errorf("unable to export %s: %s", entry.Name, err2)
			break
		}
		if _, err2 = tw.Write(payload); err2 != nil {
			err = fmt.Errorf("unable to export %s: %s", entry.Name, err2)
			break
		}

		progress.AddBar(1)
	}

	progress.ShutdownBar()

	if err2 := tw.Close(); err == nil && err2 != nil {
		err = fmt.Errorf("unable to export: %s", err2)
	}
	if err2 := gz.Close(); err == nil && err2 != nil {
		err = fmt.Errorf("unable to export: %s", err2)
	}
	if err2 := out.Close(); err == nil && err2 != nil {
		err = fmt.Errorf("unable to export: %s", err2)
	}
	if err != nil {
		return err
	}

	progress.ColoredPrintf("@g[+]@| exported %d files to %s", len(archive.Entries), target)

	return nil
}

func makeCmdArcExport() *commander.Command {
	cmd := &commander.Command{
		Run:       kgtoolArcExport,
		UsageLine: "export <volume.idx>",
		Short:     "export a volume as a tarball",
		Long: `
Export repacks a whole IDX/DAT volume into a gzip-compressed tarball,
one tar entry per archived file.

ex:
  $ kgtool arc export GAME.IDX
`,
	}

	cmd.Flag.String("output", "", "tarball path (default: volume name with .tar.gz)")

	return cmd
}
