package batch

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/twitter/harvest/common/stats"
	"github.com/twitter/harvest/env"
)

// Dispatcher launches planned batches through the runtime's stage primitives.
type Dispatcher struct {
	launcher env.Launcher
	stat     stats.StatsReceiver
	now      func() time.Time
}

// NewDispatcher creates a Dispatcher. A nil now uses time.Now.
func NewDispatcher(l env.Launcher, stat stats.StatsReceiver, now func() time.Time) *Dispatcher {
	if now == nil {
		now = time.Now
	}
	if stat == nil {
		stat = stats.NilStatsReceiver()
	}
	return &Dispatcher{launcher: l, stat: stat, now: now}
}

// Dispatch launches every stage of b with a nonzero thread count, in
// completion order, each with its planned start delay. The handles are stored
// on b and returned. A rejected launch leaves a NoHandle in the result, which
// reads as not running on the next liveness check.
func (d *Dispatcher) Dispatch(b *Batch) []env.Handle {
	b.DispatchedAt = d.now()
	handles := make([]env.Handle, 0, NumStages)
	for _, s := range Stages {
		threads := b.Distribution.Threads(s)
		if threads <= 0 {
			continue
		}
		h := d.launcher.Launch(s.Primitive(), b.Host, b.Target, threads, b.Timing.Start[s])
		if !h.Valid() {
			d.stat.Counter(stats.SchedDispatchRejectedCounter).Inc(1)
			log.WithFields(
				log.Fields{
					"batchID": b.ID,
					"stage":   s,
					"host":    b.Host,
					"target":  b.Target,
					"threads": threads,
				}).Info("Launch rejected, stage will read as not running")
		}
		handles = append(handles, h)
	}
	b.Handles = handles

	d.stat.Counter(stats.SchedBatchesDispatchedCounter).Inc(1)
	d.stat.Counter(stats.SchedBatchesByModeCounter + "_" + b.Mode.String()).Inc(1)
	log.WithFields(
		log.Fields{
			"batchID":      b.ID,
			"mode":         b.Mode,
			"host":         b.Host,
			"target":       b.Target,
			"distribution": b.Distribution,
			"cost":         b.Cost,
			"batchTime":    b.Timing.BatchTime,
		}).Debug("Dispatched batch")
	return handles
}

// Live reports whether any of handles is still running.
func Live(l env.Launcher, handles []env.Handle) bool {
	for _, h := range handles {
		if h.Valid() && l.IsRunning(h) {
			return true
		}
	}
	return false
}
