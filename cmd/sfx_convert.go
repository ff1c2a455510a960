package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/smira/commander"

	"github.com/kgtool-dev/kgtool/sfx"
	"github.com/kgtool-dev/kgtool/utils"
)

func kgtoolSfxConvert(cmd *commander.Command, args []string) error {
	if len(args) < 1 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	dir, err := outputDir(cmd)
	if err != nil {
		return err
	}

	err = runBatch(args, context.Config().DecodeConcurrency, context.Progress(), func(path string) (string, error) {
		data, stripped, err2 := utils.ReadFileMaybeCompressed(path)
		if err2 != nil {
			return "", err2
		}

		sound, err2 := sfx.Decode(data)
		if err2 != nil {
			return "", err2
		}

		base := filepath.Base(stripped)
		target := filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+".wav")

		out, err2 := os.Create(target)
		if err2 != nil {
			return "", err2
		}
		if err2 = sound.WriteWAV(out); err2 != nil {
			_ = out.Close()
			return "", err2
		}
		if err2 = out.Close(); err2 != nil {
			return "", err2
		}

		return fmt.Sprintf("%s -> %s (%d Hz, %d samples)", path, target, sound.SampleRate, len(sound.Samples)), nil
	})
	if err != nil {
		return fmt.Errorf("unable to convert: %s", err)
	}

	return nil
}

func makeCmdSfxConvert() *commander.Command {
	cmd := &commander.Command{
		Run:       kgtoolSfxConvert,
		UsageLine: "convert <file.se>...",
		Short:     "convert SE sound effects to WAV",
		Long: `
Command convert decodes ADPCM sound effects and writes them out as
mono 16-bit PCM WAV files. Multiple files are converted concurrently,
see the decodeConcurrency config setting.

ex:
  $ kgtool sfx convert -output=out/ SE*.SE
`,
	}

	cmd.Flag.String("output", "", "directory for converted files (default: current directory)")

	return cmd
}
