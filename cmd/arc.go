package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/smira/commander"
	"github.com/smira/flag"

	"github.com/kgtool-dev/kgtool/arc"
)

func makeCmdArc() *commander.Command {
	return &commander.Command{
		UsageLine: "arc",
		Short:     "work with IDX/DAT archive volumes",
		Subcommands: []*commander.Command{
			makeCmdArcList(),
			makeCmdArcExtract(),
			makeCmdArcPack(),
			makeCmdArcExport(),
		},
		Flag: *flag.NewFlagSet("kgtool-arc", flag.ExitOnError),
	}
}

// openVolume binds a volume index to its companion data file. The
// caller closes the returned data file when done reading payloads.
func openVolume(indexPath string) (*arc.Archive, io.Closer, error) {
	idx, err := os.Open(indexPath)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		_ = idx.Close()
	}()

	base := strings.TrimSuffix(indexPath, filepath.Ext(indexPath))
	ext := context.Config().DataExtension

	data, err := os.Open(base + ext)
	if os.IsNotExist(err) {
		data, err = os.Open(base + strings.ToUpper(ext))
	}
	if err != nil {
		return nil, nil, err
	}

	info, err := data.Stat()
	if err != nil {
		_ = data.Close()
		return nil, nil, err
	}

	archive, err := arc.Open(idx, data, info.Size())
	if err != nil {
		_ = data.Close()
		return nil, nil, err
	}

	return archive, data, nil
}
