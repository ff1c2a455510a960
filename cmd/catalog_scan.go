package cmd

import (
	"fmt"

	"github.com/smira/commander"

	"github.com/kgtool-dev/kgtool/catalog"
)

func kgtoolCatalogScan(cmd *commander.Command, args []string) error {
	if len(args) < 1 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	db, err := context.Database()
	if err != nil {
		return fmt.Errorf("unable to scan: %s", err)
	}

	cat := catalog.NewCatalog(db)

	result, err := cat.Scan(args, catalog.ScanOptions{
		IndexExtension: context.Config().IndexExtension,
		DataExtension:  context.Config().DataExtension,
	}, context.Progress())
	if err != nil {
		return fmt.Errorf("unable to scan: %s", err)
	}

	context.Progress().Printf("Cataloged %d volumes (%d assets).\n", result.Volumes, result.Assets)
	if len(result.Failed) > 0 {
		context.Progress().ColoredPrintf("@y[!]@| %d volumes were skipped:", len(result.Failed))
		for _, path := range result.Failed {
			context.Progress().ColoredPrintf("@y[!]@|   %s", path)
		}
	}

	return nil
}

func makeCmdCatalogScan() *commander.Command {
	return &commander.Command{
		Run:       kgtoolCatalogScan,
		UsageLine: "scan <dir>...",
		Short:     "catalog volumes found under directories",
		Long: `
Command scan walks directories looking for volume index files, reads
every volume and records its assets in the catalog database. Scanning
a path again replaces its earlier records. Volumes that fail to parse
are skipped and listed at the end.

ex:
  $ kgtool catalog scan /mnt/disc1 /mnt/disc2
`,
	}
}
