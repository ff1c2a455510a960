package anim

import (
	"errors"
	"fmt"
)

// DefaultStepBudget bounds Simulate when the caller passes no budget
const DefaultStepBudget = 1000

// Errors returned by Simulate
var (
	ErrStepBudget = errors.New("step budget exhausted")
	ErrJumpCycle  = errors.New("jump cycle emits no frames")
)

// Step is one emitted animation step
type Step struct {
	Frame uint16
	Delay uint16
}

// Simulate executes the sequence from record 0, following jumps and
// collecting (frame, delay) steps until a stop record.
//
// Looping sequences are legitimate, so hitting the step budget returns
// the steps collected so far together with ErrStepBudget. A cycle of
// jumps that emits no frame between revisits would never terminate and
// is reported as ErrJumpCycle.
func (s *Sequence) Simulate(maxSteps int) ([]Step, error) {
	if maxSteps <= 0 {
		maxSteps = DefaultStepBudget
	}

	steps := []Step{}
	jumped := make(map[int]bool)

	for pc := 0; ; {
		if pc >= len(s.Records) {
			return steps, fmt.Errorf("unable to simulate: record %d runs past sequence end", pc)
		}

		rec := s.Records[pc]
		switch rec.Op {
		case OpFrame:
			if len(steps) == maxSteps {
				return steps, ErrStepBudget
			}
			steps = append(steps, Step{Frame: rec.Arg, Delay: rec.Delay})

			// a frame was emitted, jump revisits are progress again
			for k := range jumped {
				delete(jumped, k)
			}
			pc++

		case OpJump:
			if int(rec.Arg) >= len(s.Records) {
				return steps, fmt.Errorf("unable to simulate: jump from record %d to %d out of range", pc, rec.Arg)
			}
			if jumped[pc] {
				return steps, ErrJumpCycle
			}
			jumped[pc] = true
			pc = int(rec.Arg)

		case OpStop:
			return steps, nil

		default:
			return steps, fmt.Errorf("unable to simulate: record %d has unknown op %d", pc, rec.Op)
		}
	}
}
