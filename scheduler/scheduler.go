// Package scheduler is the harvest control loop. Each tick it forgives bad
// targets on a timer, watches the fleet for capacity, unlock and capability
// growth, rescans when the fleet grows, and dispatches one batch to every
// tracked target that is neither bad nor still running its last batch.
package scheduler

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/cenkalti/backoff"
	log "github.com/sirupsen/logrus"

	"github.com/twitter/harvest/batch"
	"github.com/twitter/harvest/cluster"
	"github.com/twitter/harvest/common/clock"
	"github.com/twitter/harvest/common/log/hooks"
	"github.com/twitter/harvest/common/stats"
	"github.com/twitter/harvest/env"
)

// Used to get proper logging from tests...
func init() {
	if loglevel := os.Getenv("HARVEST_LOGLEVEL"); loglevel != "" {
		level, err := log.ParseLevel(loglevel)
		if err != nil {
			log.Error(err)
			return
		}
		log.SetLevel(level)
		log.AddHook(hooks.NewContextHook())
	} else {
		log.SetLevel(log.ErrorLevel)
	}
}

type Scheduler struct {
	env        env.Environment
	config     Config
	stat       stats.StatsReceiver
	clock      clock.Clock
	dispatcher *batch.Dispatcher

	// mu guards everything below. step holds it for the whole tick.
	mu          sync.RWMutex
	initialized bool
	snapshot    EnvironmentSnapshot
	targets     []*targetState
	byID        map[string]*targetState
}

// New creates a Scheduler over e. Nothing runs until Run or Step is called.
func New(e env.Environment, cfg Config, stat stats.StatsReceiver) *Scheduler {
	if stat == nil {
		stat = stats.NilStatsReceiver()
	}
	cfg = cfg.withDefaults()
	s := &Scheduler{
		env:        e,
		config:     cfg,
		stat:       stat,
		clock:      cfg.Clock,
		dispatcher: batch.NewDispatcher(e, stat, cfg.Clock.Now),
		byID:       make(map[string]*targetState),
	}
	log.Info(&s.config)
	return s
}

// Run steps the scheduler every TickRate until ctx is done. Dispatched jobs
// are not recalled when it returns.
func (s *Scheduler) Run(ctx context.Context) error {
	log.Info("Starting scheduler loop")
	ticker := time.NewTicker(s.config.TickRate)
	defer ticker.Stop()
	for {
		s.step()
		select {
		case <-ctx.Done():
			log.Info("Scheduler loop stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Step runs exactly one tick.
func (s *Scheduler) Step() {
	s.step()
}

func (s *Scheduler) step() {
	defer s.stat.Latency(stats.SchedStepLatency_ms).Time().Stop()
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if !s.initialized {
		s.initialize(now, "startup")
	}

	if now.Sub(s.snapshot.LastReset) >= s.config.ResetInterval {
		s.clearBad("reset interval elapsed")
		s.snapshot.LastReset = now
	}

	// Capacity tracks the pool every tick, so regrowth after a drop also counts.
	force := false
	capacity := s.candidateCapacity()
	if capacity > s.snapshot.Capacity {
		log.WithFields(
			log.Fields{
				"previous": s.snapshot.Capacity,
				"current":  capacity,
			}).Info("Fleet capacity increased")
		s.clearBad("capacity increased")
		force = true
	}
	s.snapshot.Capacity = capacity

	unlocks, capability := s.env.UnlockCount(), s.env.CapabilityLevel()
	if force || unlocks > s.snapshot.Unlocks || capability > s.snapshot.Capability {
		s.snapshot.Unlocks = unlocks
		s.snapshot.Capability = capability
		s.stat.Counter(stats.SchedRescanCounter).Inc(1)
		s.refresh("fleet grew")
	}

	s.schedule(now)
	s.updateStats()
}

// initialize takes the first snapshot. Callers hold mu.
func (s *Scheduler) initialize(now time.Time, reason string) {
	s.initialized = true
	s.snapshot.LastReset = now
	s.snapshot.Unlocks = s.env.UnlockCount()
	s.snapshot.Capability = s.env.CapabilityLevel()
	s.refresh(reason)
}

// candidateCapacity is the total capacity of every host the scheduler uses
// or could switch to, so a purchase shows up before it is scanned.
func (s *Scheduler) candidateCapacity() float64 {
	total := 0.0
	seen := map[string]bool{}
	for _, ids := range [][]string{s.snapshot.Hosts, s.env.OwnedNodes()} {
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				total += s.env.NodeInfo(id).MaxCapacity
			}
		}
	}
	return total
}

// refresh rescans the fleet, refilters hosts and targets and grants access to
// newly eligible nodes. New targets are appended; existing tracking state is
// kept. Callers hold mu.
func (s *Scheduler) refresh(reason string) {
	root := s.config.ControlNode
	unlocks, capability := s.snapshot.Unlocks, s.snapshot.Capability
	scanned := cluster.Without(cluster.Scan(s.env, root, s.config.Depth), root)

	hosts := cluster.UsableHosts(s.env, append([]string{root}, scanned...), unlocks, s.config.MinCapacity)
	budget := s.config.Budget
	fleetMode := false

	owned := cluster.Without(s.env.OwnedNodes(), root)
	ownedCapacity := 0.0
	for _, id := range owned {
		ownedCapacity += s.env.NodeInfo(id).MaxCapacity
	}
	if ownedCapacity > s.config.FleetThreshold {
		fleetMode = true
		hosts = append(owned, root)
		budget = s.env.NodeInfo(owned[0]).MaxCapacity
	}
	hosts = s.grantAccess(hosts)

	var targets []string
	if s.config.Target != "" {
		if s.env.Exists(s.config.Target) {
			targets = []string{s.config.Target}
		} else {
			log.WithFields(log.Fields{"target": s.config.Target}).Error("Target override does not exist")
		}
	} else {
		targets = cluster.ViableTargets(s.env, scanned, unlocks, capability)
	}
	targets = s.grantAccess(targets)

	added := 0
	for _, id := range targets {
		if _, ok := s.byID[id]; ok {
			continue
		}
		ts := &targetState{id: id}
		s.byID[id] = ts
		s.targets = append(s.targets, ts)
		added++
	}
	ids := make([]string, len(s.targets))
	for i, ts := range s.targets {
		ids[i] = ts.id
	}
	cluster.SortByMaxReserve(s.env, ids)
	for i, id := range ids {
		s.targets[i] = s.byID[id]
	}

	s.snapshot.Hosts = hosts
	s.snapshot.Budget = budget
	s.snapshot.FleetMode = fleetMode
	s.snapshot.Capacity = s.candidateCapacity()

	log.WithFields(
		log.Fields{
			"reason":     reason,
			"scanned":    len(scanned),
			"hosts":      len(hosts),
			"targets":    len(s.targets),
			"newTargets": added,
			"budget":     budget,
			"fleetMode":  fleetMode,
			"unlocks":    unlocks,
			"capability": capability,
		}).Info("Refreshed fleet")
	log.Debugf("Environment snapshot: %s", s.snapshot)
}

// grantAccess returns the nodes that already have access or get it within
// the configured retries, in order.
func (s *Scheduler) grantAccess(nodes []string) []string {
	out := make([]string, 0, len(nodes))
	for _, id := range nodes {
		if s.env.NodeInfo(id).HasAccess {
			out = append(out, id)
			continue
		}
		b := backoff.WithMaxRetries(backoff.NewConstantBackOff(s.config.GrantRetryInterval), uint64(s.config.GrantRetries))
		if err := backoff.Retry(func() error { return s.env.GrantAccess(id) }, b); err != nil {
			s.stat.Counter(stats.SchedGrantAccessFailedCounter).Inc(1)
			log.WithFields(
				log.Fields{
					"node": id,
					"err":  err,
				}).Warn("Could not grant access, skipping node")
			continue
		}
		log.WithFields(log.Fields{"node": id}).Info("Granted access")
		out = append(out, id)
	}
	return out
}

func (s *Scheduler) clearBad(reason string) {
	cleared := 0
	for _, ts := range s.targets {
		if ts.bad {
			ts.bad = false
			cleared++
		}
	}
	s.stat.Counter(stats.SchedBadResetCounter).Inc(1)
	log.WithFields(
		log.Fields{
			"reason":  reason,
			"cleared": cleared,
		}).Info("Cleared bad targets")
}

// schedule dispatches one batch to every idle target. Capacity is read once
// per tick and debited as batches are placed. Callers hold mu.
func (s *Scheduler) schedule(now time.Time) {
	nodes := cluster.Snapshot(s.env, s.snapshot.Hosts, s.config.ControlNode, s.config.ControlOverhead)
	costs := batch.CostsFrom(s.env)

	for _, ts := range s.targets {
		if ts.bad || now.Before(ts.notBefore) || batch.Live(s.env, ts.handles) {
			continue
		}
		req := batch.Request{
			Target:      batch.TargetStateOf(s.env.NodeInfo(ts.id)),
			Effects:     s.env.Effects(ts.id),
			Analyzer:    s.env,
			Costs:       costs,
			Budget:      s.snapshot.Budget,
			ExtractGoal: s.config.ExtractGoal,
		}
		dec, err := batch.Balance(req, nodes)
		if err != nil {
			ts.bad = true
			s.stat.Counter(stats.SchedBadTargetCounter).Inc(1)
			log.WithFields(
				log.Fields{
					"target": ts.id,
					"budget": req.Budget,
					"err":    err,
				}).Info("Marking target bad")
			continue
		}

		b, err := batch.NewBatch(ts.id, dec, batch.DurationsFrom(s.env, ts.id), s.config.Delay)
		if err != nil {
			s.stat.Counter(stats.SchedTimingAbortCounter).Inc(1)
			log.WithFields(
				log.Fields{
					"target":       ts.id,
					"distribution": dec.Distribution,
					"err":          err,
				}).Error("Aborting batch, stages cannot finish in order")
			continue
		}
		s.dispatcher.Dispatch(b)
		ts.record(b)
		nodes.Reserve(dec.Host.ID, dec.Cost)
	}
}

// update the stats monitoring values:
// number of tracked, bad and in flight targets
// number of hosts and their total capacity
func (s *Scheduler) updateStats() {
	bad, inFlight := 0, 0
	for _, ts := range s.targets {
		if ts.bad {
			bad++
		}
		if batch.Live(s.env, ts.handles) {
			inFlight++
		}
	}
	s.stat.Gauge(stats.SchedTrackedTargetsGauge).Update(int64(len(s.targets)))
	s.stat.Gauge(stats.SchedBadTargetsGauge).Update(int64(bad))
	s.stat.Gauge(stats.SchedInFlightTargetsGauge).Update(int64(inFlight))
	s.stat.Gauge(stats.SchedHostsGauge).Update(int64(len(s.snapshot.Hosts)))
	s.stat.GaugeFloat(stats.SchedPoolCapacityGauge).Update(s.snapshot.Capacity)
}

// Status returns a copy of the tracked targets and the last snapshot.
func (s *Scheduler) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Status{Snapshot: s.snapshot, Targets: make([]TargetStatus, 0, len(s.targets))}
	st.Snapshot.Hosts = append([]string(nil), s.snapshot.Hosts...)
	for _, t := range s.targets {
		ts := TargetStatus{
			ID:           t.id,
			Bad:          t.bad,
			InFlight:     batch.Live(s.env, t.handles),
			Handles:      append([]env.Handle(nil), t.handles...),
			Batches:      t.batches,
			LastBatchID:  t.lastBatchID,
			LastDispatch: t.lastDispatch,
		}
		if t.batches > 0 {
			ts.LastMode = t.lastMode.String()
		}
		st.Targets = append(st.Targets, ts)
	}
	return st
}
