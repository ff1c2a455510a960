// Package cmd implements console commands
package cmd

import (
	"os"
	"time"

	"github.com/smira/commander"
	"github.com/smira/flag"

	"github.com/kgtool-dev/kgtool/kgtool"
)

// RootCommand creates root command in command tree
func RootCommand() *commander.Command {
	cmd := &commander.Command{
		UsageLine: os.Args[0],
		Short:     "toolkit for legacy visual-novel engine assets",
		Long: `
kgtool reads, converts and creates the binary asset formats of a
legacy visual-novel engine: KG images, IDX/DAT archive volumes, SEQ
animation programs, SE sound effects, FNT bitmap fonts, ITM item
tables, SPR sprite sheets and MSC mouse cursors.

kgtool also maintains a catalog of scanned game directories, so
questions like "which disc volume carries BG_SCHOOL.KG" are answered
without touching the original media.`,
		Flag: *flag.NewFlagSet("kgtool", flag.ExitOnError),
		Subcommands: []*commander.Command{
			makeCmdKg(),
			makeCmdArc(),
			makeCmdAnim(),
			makeCmdSfx(),
			makeCmdFont(),
			makeCmdItem(),
			makeCmdSprite(),
			makeCmdCursor(),
			makeCmdCatalog(),
			makeCmdVersion(),
		},
	}

	cmd.Flag.String("config", "", "location of configuration file (default locations are ~/.kgtool.conf, /etc/kgtool.conf)")
	cmd.Flag.String("root-dir", "", "kgtool root directory overriding the configured one")
	cmd.Flag.String("log-level", "", "log level (debug, info, warning, error)")
	cmd.Flag.String("log-format", "", "log output format (default, json)")
	cmd.Flag.Int("db-open-attempts", 10, "number of attempts to open DB if it's locked by other instance")

	if kgtool.EnableDebug {
		cmd.Flag.String("cpuprofile", "", "write cpu profile to file")
		cmd.Flag.String("memprofile", "", "write memory profile to this file")
		cmd.Flag.String("memstats", "", "write memory stats periodically to this file")
		cmd.Flag.Duration("meminterval", 100*time.Millisecond, "memory stats dump interval")
	}

	return cmd
}
