package scheduler

import (
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/twitter/harvest/batch"
	"github.com/twitter/harvest/env"
)

// EnvironmentSnapshot is what the control loop last observed about the
// fleet. It is replaced field by field as changes are detected.
type EnvironmentSnapshot struct {
	Capacity   float64 // total capacity of the candidate host pool
	Unlocks    int
	Capability int
	LastReset  time.Time
	Hosts      []string
	Budget     float64
	FleetMode  bool
}

type plainSnapshot EnvironmentSnapshot

func (s EnvironmentSnapshot) String() string {
	return spew.Sprintf("%+v", plainSnapshot(s))
}

// targetState tracks one target between ticks. Only the handles of its last
// batch are kept.
type targetState struct {
	id        string
	bad       bool
	handles   []env.Handle
	notBefore time.Time // earliest relaunch after an accepted batch

	lastBatchID  string
	lastMode     batch.Mode
	lastDispatch time.Time
	batches      int
}

func (t *targetState) record(b *batch.Batch) {
	t.handles = b.Handles
	t.lastBatchID = b.ID
	t.lastMode = b.Mode
	t.lastDispatch = b.DispatchedAt
	t.batches++
	t.notBefore = time.Time{}
	for _, h := range b.Handles {
		if h.Valid() {
			t.notBefore = b.DispatchedAt.Add(b.Timing.TimeToNextBatch)
			break
		}
	}
}

// TargetStatus is a read-only copy of one tracked target.
type TargetStatus struct {
	ID           string       `json:"id"`
	Bad          bool         `json:"bad"`
	InFlight     bool         `json:"inFlight"`
	Handles      []env.Handle `json:"handles"`
	Batches      int          `json:"batches"`
	LastBatchID  string       `json:"lastBatchId,omitempty"`
	LastMode     string       `json:"lastMode,omitempty"`
	LastDispatch time.Time    `json:"lastDispatch"`
}

// Status is what the admin endpoint serves.
type Status struct {
	Snapshot EnvironmentSnapshot `json:"snapshot"`
	Targets  []TargetStatus      `json:"targets"`
}
