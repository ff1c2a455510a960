package cmd

import (
	"fmt"

	"github.com/smira/commander"

	"github.com/kgtool-dev/kgtool/catalog"
)

func kgtoolCatalogCleanup(cmd *commander.Command, args []string) error {
	if len(args) != 0 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	db, err := context.Database()
	if err != nil {
		return fmt.Errorf("unable to cleanup: %s", err)
	}

	removed, err := catalog.NewCatalog(db).Cleanup()
	if err != nil {
		return fmt.Errorf("unable to cleanup: %s", err)
	}

	if removed == 0 {
		context.Progress().Printf("Catalog is clean, nothing to do.\n")
		return nil
	}

	context.Progress().Printf("Removed %d stale asset records, compacting database...\n", removed)

	return db.CompactDB()
}

func makeCmdCatalogCleanup() *commander.Command {
	return &commander.Command{
		Run:       kgtoolCatalogCleanup,
		UsageLine: "cleanup",
		Short:     "remove asset records of deleted volumes",
		Long: `
Command cleanup drops asset records whose volume is no longer in the
catalog, reclaiming database space after interrupted scans.

ex:
  $ kgtool catalog cleanup
`,
	}
}
