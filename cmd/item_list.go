package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/smira/commander"

	"github.com/kgtool-dev/kgtool/item"
	"github.com/kgtool-dev/kgtool/utils"
)

func kgtoolItemList(cmd *commander.Command, args []string) error {
	if len(args) != 1 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	key := byte(context.Config().ItemKey)
	if keySpec := cmd.Flag.Lookup("key").Value.String(); keySpec != "" {
		parsed, err := strconv.ParseUint(strings.TrimPrefix(keySpec, "0x"), 16, 8)
		if err != nil {
			return fmt.Errorf("unable to parse key %s: %s", keySpec, err)
		}
		key = byte(parsed)
	}

	data, _, err := utils.ReadFileMaybeCompressed(args[0])
	if err != nil {
		return fmt.Errorf("unable to read %s: %s", args[0], err)
	}

	table, err := item.Parse(data, key)
	if err != nil {
		return fmt.Errorf("unable to parse %s (wrong -key?): %s", args[0], err)
	}

	fmt.Printf("%s: version %d, %d items\n", args[0], table.Version, len(table.Items))
	fmt.Printf("  %5s  %4s  %8s  %8s  %s\n", "id", "kind", "flags", "price", "name")
	for _, it := range table.Items {
		fmt.Printf("  %5d  %4d  %08b  %8d  %s\n", it.ID, it.Kind, it.Flags, it.Price, it.Name)
	}

	return nil
}

func makeCmdItemList() *commander.Command {
	cmd := &commander.Command{
		Run:       kgtoolItemList,
		UsageLine: "list <file.itm>",
		Short:     "list the entries of an item table",
		Long: `
Command list deobfuscates an item table and prints its records. Tables
shipped by different releases use different XOR keys; the default key
comes from the itemKey config setting.

ex:
  $ kgtool item list -key=0x7f ITEM.ITM
`,
	}

	cmd.Flag.String("key", "", "XOR key as hex (default: itemKey config setting)")

	return cmd
}
