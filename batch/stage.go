// Package batch plans and launches four-stage extraction batches: Extract,
// Suppress-A, Replenish and Suppress-B, timed to finish in that order.
package batch

import (
	"fmt"

	"github.com/twitter/harvest/env"
)

// Stage is one of the four stages of a batch. The numeric value is the
// stage's slot in the fixed completion order.
type Stage int

const (
	Extract Stage = iota
	SuppressA
	Replenish
	SuppressB
)

// NumStages is the number of stages in a batch.
const NumStages = 4

// Stages lists every stage in completion order.
var Stages = [NumStages]Stage{Extract, SuppressA, Replenish, SuppressB}

// Primitive is the runtime operation a stage runs.
func (s Stage) Primitive() env.Primitive {
	switch s {
	case Extract:
		return env.ExtractReserve
	case SuppressA, SuppressB:
		return env.LowerPressure
	case Replenish:
		return env.RaiseReserve
	}
	panic(fmt.Sprintf("unknown stage %d", int(s)))
}

// Offsets names the stage whose pressure increase this stage cancels, if any.
func (s Stage) Offsets() (Stage, bool) {
	switch s {
	case SuppressA:
		return Extract, true
	case SuppressB:
		return Replenish, true
	}
	return 0, false
}

func (s Stage) String() string {
	switch s {
	case Extract:
		return "extract"
	case SuppressA:
		return "suppressA"
	case Replenish:
		return "replenish"
	case SuppressB:
		return "suppressB"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}
