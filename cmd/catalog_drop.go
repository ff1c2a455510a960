package cmd

import (
	"fmt"

	"github.com/smira/commander"

	"github.com/kgtool-dev/kgtool/catalog"
)

func kgtoolCatalogDrop(cmd *commander.Command, args []string) error {
	if len(args) != 1 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	db, err := context.Database()
	if err != nil {
		return fmt.Errorf("unable to drop: %s", err)
	}

	if err = catalog.NewCatalog(db).Drop(args[0]); err != nil {
		return fmt.Errorf("unable to drop: %s", err)
	}

	context.Progress().Printf("Volume %s has been removed from the catalog.\n", args[0])

	return nil
}

func makeCmdCatalogDrop() *commander.Command {
	return &commander.Command{
		Run:       kgtoolCatalogDrop,
		UsageLine: "drop <uuid>",
		Short:     "remove a volume from the catalog",
		Long: `
Command drop deletes a volume and its asset records from the catalog
database. Volume UUIDs are shown by catalog list. The volume files
themselves are not touched.

ex:
  $ kgtool catalog drop 5b4bb4f4-2d80-4e5c-8f13-9c5b9bb7a2a4
`,
	}
}
