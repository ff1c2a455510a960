package cmd

import (
	"fmt"

	"github.com/smira/commander"

	"github.com/kgtool-dev/kgtool/catalog"
	"github.com/kgtool-dev/kgtool/utils"
)

func kgtoolCatalogWhich(cmd *commander.Command, args []string) error {
	if len(args) != 1 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	name := args[0]

	db, err := context.Database()
	if err != nil {
		return fmt.Errorf("unable to look up %s: %s", name, err)
	}

	cat := catalog.NewCatalog(db)

	assets, err := cat.Which(name)
	if err != nil {
		return fmt.Errorf("unable to look up %s: %s", name, err)
	}
	if len(assets) == 0 {
		return fmt.Errorf("%s not found in any cataloged volume", name)
	}

	for _, asset := range assets {
		location := asset.VolumeUUID
		if volume, err2 := cat.Volume(asset.VolumeUUID); err2 == nil {
			location = volume.Path
		}

		fmt.Printf("%s: %s (%s, %s, md5 %s)\n",
			asset.Name, location, asset.Kind, utils.HumanBytes(int64(asset.Size)), asset.MD5)
	}

	return nil
}

func makeCmdCatalogWhich() *commander.Command {
	return &commander.Command{
		Run:       kgtoolCatalogWhich,
		UsageLine: "which <name>",
		Short:     "find which volumes carry an asset",
		Long: `
Command which looks up an asset by name across every cataloged volume.
Game discs routinely ship the same file on several volumes; each copy
is listed with its kind, size and checksum.

ex:
  $ kgtool catalog which BG_SCHOOL.KG
`,
	}
}
