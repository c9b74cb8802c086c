package scheduler

import (
	"context"
	"math"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/twitter/harvest/batch"
	"github.com/twitter/harvest/cluster"
	"github.com/twitter/harvest/common/stats"
)

// Deplete drains target's reserve to zero with extract-only batches, each
// paired with just enough suppression to hold pressure, and scaled to fill
// the host with the most free capacity. It waits for every batch to finish
// before launching the next and returns when the reserve is gone or ctx is done.
func (s *Scheduler) Deplete(ctx context.Context, target string) error {
	if !s.env.Exists(target) {
		return errors.Errorf("deplete target %s does not exist", target)
	}

	s.mu.Lock()
	if !s.initialized {
		s.initialize(s.clock.Now(), "deplete")
	}
	granted := s.grantAccess([]string{target})
	hosts := s.snapshot.Hosts
	s.mu.Unlock()
	if len(granted) == 0 {
		return errors.Errorf("no access to deplete target %s", target)
	}

	fx := s.env.Effects(target)
	if fx.ExtractPressure <= 0 || fx.SuppressPerThread <= 0 {
		return errors.Errorf("deplete target %s: unusable effects %+v", target, fx)
	}
	var base batch.Distribution
	base[batch.Extract] = int(math.Max(1, math.Floor(fx.SuppressPerThread/fx.ExtractPressure)))
	base[batch.SuppressA] = 1
	costs := batch.CostsFrom(s.env)
	baseCost := base.Cost(costs)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		info := s.env.NodeInfo(target)
		if info.Reserve <= 0 {
			log.WithFields(log.Fields{"target": target}).Info("Target depleted")
			return nil
		}

		nodes := cluster.Snapshot(s.env, hosts, s.config.ControlNode, s.config.ControlOverhead)
		host, ok := nodes.MostFree()
		if !ok || host.Copies(baseCost) < 1 {
			log.WithFields(log.Fields{"target": target}).Debug("No host can fit a deplete batch, waiting")
			if err := s.clock.Sleep(ctx, s.config.TickRate); err != nil {
				return err
			}
			continue
		}

		dist := base.Scale(host.Copies(baseCost))
		dec := batch.Decision{Mode: batch.ModeExtract, Distribution: dist, Host: host, Cost: dist.Cost(costs)}
		b, err := batch.NewBatch(target, dec, batch.DurationsFrom(s.env, target), s.config.Delay)
		if err != nil {
			return errors.Wrapf(err, "deplete target %s", target)
		}
		handles := s.dispatcher.Dispatch(b)
		s.stat.Counter(stats.SchedDepleteBatchesCounter).Inc(1)
		log.WithFields(
			log.Fields{
				"target":       target,
				"host":         host.ID,
				"distribution": dist,
				"reserve":      info.Reserve,
			}).Info("Deplete batch dispatched")

		// a fully rejected batch still waits one tick before retrying
		if err := s.clock.Sleep(ctx, s.config.TickRate); err != nil {
			return err
		}
		for batch.Live(s.env, handles) {
			if err := s.clock.Sleep(ctx, s.config.TickRate); err != nil {
				return err
			}
		}
	}
}
