package cmd

import (
	"fmt"

	"github.com/smira/commander"

	"github.com/kgtool-dev/kgtool/catalog"
)

func kgtoolCatalogList(cmd *commander.Command, args []string) error {
	if len(args) != 0 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	raw := cmd.Flag.Lookup("raw").Value.Get().(bool)

	db, err := context.Database()
	if err != nil {
		return fmt.Errorf("unable to list: %s", err)
	}

	volumes, err := catalog.NewCatalog(db).Volumes()
	if err != nil {
		return fmt.Errorf("unable to list: %s", err)
	}

	if raw {
		for _, volume := range volumes {
			fmt.Printf("%s\n", volume.Path)
		}
		return nil
	}

	if len(volumes) == 0 {
		fmt.Printf("No volumes cataloged, run `kgtool catalog scan <dir>` first.\n")
		return nil
	}

	fmt.Printf("List of cataloged volumes:\n")
	for _, volume := range volumes {
		fmt.Printf(" * %s  %4d files  scanned %s  %s\n",
			volume.UUID, volume.FileCount, volume.ScannedAt.Format("2006-01-02 15:04:05"), volume.Path)
	}
	fmt.Printf("\nTo locate an asset, run `kgtool catalog which <name>`.\n")

	return nil
}

func makeCmdCatalogList() *commander.Command {
	cmd := &commander.Command{
		Run:       kgtoolCatalogList,
		UsageLine: "list",
		Short:     "list cataloged volumes",
		Long: `
Command list shows the volumes known to the catalog database.

ex:
  $ kgtool catalog list
`,
	}

	cmd.Flag.Bool("raw", false, "plain output (just volume paths)")

	return cmd
}
