package batch

import (
	"time"

	"github.com/pkg/errors"

	"github.com/twitter/harvest/env"
)

// DefaultDelay is the gap between the completions of consecutive stages.
const DefaultDelay = 50 * time.Millisecond

// ErrNegativeDelay means a stage would have to start before the batch does.
// The durations it was computed from cannot produce the completion order.
var ErrNegativeDelay = errors.New("negative start delay")

// Durations holds the natural run time of each stage against one target.
type Durations [NumStages]time.Duration

// DurationsFrom reads stage durations for target from the runtime, rounded up to the millisecond.
func DurationsFrom(a env.Analyzer, target string) Durations {
	var d Durations
	for _, s := range Stages {
		d[s] = roundUp(a.Duration(target, s.Primitive()))
	}
	return d
}

func roundUp(d time.Duration) time.Duration {
	if r := d % time.Millisecond; r != 0 {
		d += time.Millisecond - r
	}
	return d
}

// Timing is the computed schedule of one batch.
type Timing struct {
	Delay           time.Duration
	Start           [NumStages]time.Duration // wait before each stage begins
	BatchTime       time.Duration            // from launch to the last completion
	TimeToNextBatch time.Duration            // earliest safe relaunch against the same target
}

// Finish is when stage s completes, relative to launch.
func (t Timing) Finish(s Stage, d Durations) time.Duration {
	return t.Start[s] + d[s]
}

// PlanTiming staggers the stage start delays so completions land in order
// Extract, Suppress-A, Replenish, Suppress-B, each delay after the previous,
// the last one at BatchTime.
//
// The stacking is only exact while one of the suppress stages is the slowest.
func PlanTiming(d Durations, delay time.Duration) (Timing, error) {
	if delay <= 0 {
		return Timing{}, errors.Errorf("delay must be positive, got %s", delay)
	}
	longest := time.Duration(0)
	for _, dur := range d {
		if dur > longest {
			longest = dur
		}
	}

	t := Timing{Delay: delay, BatchTime: longest + 2*delay}
	t.TimeToNextBatch = t.BatchTime + 2*delay
	for _, s := range Stages {
		start := t.BatchTime - d[s] - time.Duration(NumStages-1-int(s))*delay
		if start < 0 {
			return Timing{}, errors.Wrapf(ErrNegativeDelay, "%s start %s (durations %v, batchTime %s)",
				s, start, d, t.BatchTime)
		}
		t.Start[s] = start
	}
	return t, nil
}
