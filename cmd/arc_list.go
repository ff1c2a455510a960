package cmd

import (
	"fmt"

	"github.com/smira/commander"

	"github.com/kgtool-dev/kgtool/utils"
)

func kgtoolArcList(cmd *commander.Command, args []string) error {
	if len(args) != 1 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	raw := cmd.Flag.Lookup("raw").Value.Get().(bool)

	archive, data, err := openVolume(args[0])
	if err != nil {
		return fmt.Errorf("unable to open volume: %s", err)
	}
	defer func() {
		_ = data.Close()
	}()

	if raw {
		for _, entry := range archive.Entries {
			fmt.Printf("%s\n", entry.Name)
		}
		return nil
	}

	fmt.Printf("Volume %s, %d files:\n", args[0], len(archive.Entries))
	var total int64
	for _, entry := range archive.Entries {
		fmt.Printf("  %-20s %12s\n", entry.Name, utils.HumanBytes(int64(entry.Size)))
		total += int64(entry.Size)
	}
	fmt.Printf("Total: %s\n", utils.HumanBytes(total))

	return nil
}

func makeCmdArcList() *commander.Command {
	cmd := &commander.Command{
		Run:       kgtoolArcList,
		UsageLine: "list <volume.idx>",
		Short:     "list volume contents",
		Long: `
List shows the entries of an archive volume. The companion data file
is located next to the index automatically.

ex:
  $ kgtool arc list GAME.IDX
`,
	}

	cmd.Flag.Bool("raw", false, "display list in machine-readable format")

	return cmd
}
