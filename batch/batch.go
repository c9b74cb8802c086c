package batch

import (
	"time"

	uuid "github.com/nu7hatch/gouuid"

	"github.com/twitter/harvest/env"
)

// Batch is one dispatch of a Decision against a target. Only its handles
// outlive the dispatch.
type Batch struct {
	ID           string
	Target       string
	Host         string
	Mode         Mode
	Distribution Distribution
	Durations    Durations
	Timing       Timing
	Cost         float64
	DispatchedAt time.Time
	Handles      []env.Handle
}

// NewBatch plans the timing of an accepted decision. It fails with
// ErrNegativeDelay when the durations cannot be stacked in completion order.
func NewBatch(target string, dec Decision, d Durations, delay time.Duration) (*Batch, error) {
	timing, err := PlanTiming(d, delay)
	if err != nil {
		return nil, err
	}
	return &Batch{
		ID:           generateBatchID(),
		Target:       target,
		Host:         dec.Host.ID,
		Mode:         dec.Mode,
		Distribution: dec.Distribution,
		Durations:    d,
		Timing:       timing,
		Cost:         dec.Cost,
	}, nil
}

// generates a batch id from a random uuid, only used to correlate log lines
func generateBatchID() string {
	for {
		if id, err := uuid.NewV4(); err == nil {
			return id.String()
		}
	}
}
