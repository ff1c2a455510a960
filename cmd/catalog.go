package cmd

import (
	"github.com/smira/commander"
	"github.com/smira/flag"
)

func makeCmdCatalog() *commander.Command {
	return &commander.Command{
		UsageLine: "catalog",
		Short:     "index asset volumes in a local database",
		Subcommands: []*commander.Command{
			makeCmdCatalogScan(),
			makeCmdCatalogList(),
			makeCmdCatalogWhich(),
			makeCmdCatalogDrop(),
			makeCmdCatalogCleanup(),
			makeCmdCatalogRecover(),
		},
		Flag: *flag.NewFlagSet("kgtool-catalog", flag.ExitOnError),
	}
}
