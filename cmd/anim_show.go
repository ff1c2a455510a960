package cmd

import (
	"errors"
	"fmt"

	"github.com/smira/commander"

	"github.com/kgtool-dev/kgtool/anim"
	"github.com/kgtool-dev/kgtool/utils"
)

var opNames = map[uint8]string{
	anim.OpFrame: "frame",
	anim.OpJump:  "jump",
	anim.OpStop:  "stop",
}

func kgtoolAnimShow(cmd *commander.Command, args []string) error {
	if len(args) < 1 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	simulate := cmd.Flag.Lookup("simulate").Value.Get().(bool)
	maxSteps := cmd.Flag.Lookup("max-steps").Value.Get().(int)

	for i, path := range args {
		data, _, err := utils.ReadFileMaybeCompressed(path)
		if err != nil {
			return fmt.Errorf("unable to read %s: %s", path, err)
		}

		seq, err := anim.Parse(data)
		if err != nil {
			return fmt.Errorf("unable to parse %s: %s", path, err)
		}

		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s: version %d, %d records\n", path, seq.Version, len(seq.Records))

		for j, rec := range seq.Records {
			switch rec.Op {
			case anim.OpFrame:
				fmt.Printf("  %3d: %-5s frame=%d delay=%d\n", j, opNames[rec.Op], rec.Arg, rec.Delay)
			case anim.OpJump:
				fmt.Printf("  %3d: %-5s target=%d\n", j, opNames[rec.Op], rec.Arg)
			default:
				fmt.Printf("  %3d: %s\n", j, opNames[rec.Op])
			}
		}

		if !simulate {
			continue
		}

		steps, err := seq.Simulate(maxSteps)
		if err != nil && !errors.Is(err, anim.ErrStepBudget) {
			return fmt.Errorf("unable to simulate %s: %s", path, err)
		}

		fmt.Printf("Playback (%d steps):\n", len(steps))
		for j, step := range steps {
			fmt.Printf("  %3d: frame=%d delay=%d\n", j, step.Frame, step.Delay)
		}
		if errors.Is(err, anim.ErrStepBudget) {
			context.Progress().ColoredPrintf("@y[!]@| %s: sequence loops, playback cut after %d steps", path, len(steps))
		}
	}

	return nil
}

func makeCmdAnimShow() *commander.Command {
	cmd := &commander.Command{
		Run:       kgtoolAnimShow,
		UsageLine: "show <file.seq>...",
		Short:     "disassemble animation sequences",
		Long: `
Command show prints the records of SEQ animation sequences. With
-simulate it also plays each sequence from the first record, following
jumps until a stop or until the step budget runs out.

ex:
  $ kgtool anim show -simulate BLINK.SEQ
`,
	}

	cmd.Flag.Bool("simulate", false, "play the sequence and print emitted steps")
	cmd.Flag.Int("max-steps", anim.DefaultStepBudget, "playback step budget")

	return cmd
}
