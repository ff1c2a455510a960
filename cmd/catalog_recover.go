package cmd

import (
	"github.com/smira/commander"

	"github.com/kgtool-dev/kgtool/database/goleveldb"
)

func kgtoolCatalogRecover(cmd *commander.Command, args []string) error {
	if len(args) != 0 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	context.Progress().Printf("Recovering catalog database...\n")

	return goleveldb.RecoverDB(context.DBPath())
}

func makeCmdCatalogRecover() *commander.Command {
	return &commander.Command{
		Run:       kgtoolCatalogRecover,
		UsageLine: "recover",
		Short:     "recover the catalog database after a crash",
		Long: `
Command recover does its best to recover the catalog database after a
crash. It is recommended to backup the database before running
recover.

ex:
  $ kgtool catalog recover
`,
	}
}
