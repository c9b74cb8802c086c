package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/twitter/harvest/common/clock"
	"github.com/twitter/harvest/common/stats"
	"github.com/twitter/harvest/env"
	"github.com/twitter/harvest/env/memory"
)

func target(id string, maxReserve, reserve, pressure, minPressure float64) memory.NodeSpec {
	return memory.NodeSpec{
		ID:          id,
		MaxReserve:  maxReserve,
		Reserve:     reserve,
		Pressure:    pressure,
		MinPressure: minPressure,
		ExtractTime: "1s",
	}
}

// home and rack host; rich is prepared, poor needs suppression, locked and
// hard wait for an unlock and a capability level.
func testFleet() memory.FleetSpec {
	locked := target("locked", 50000, 50000, 1, 1)
	locked.MaxCapacity = 32
	locked.RequiredUnlocks = 1
	hard := target("hard", 900000, 1, 1, 1)
	hard.RequiredCapability = 5
	rack := memory.NodeSpec{ID: "rack", MaxCapacity: 64}
	return memory.FleetSpec{
		Root:       "home",
		Capability: 1,
		Nodes: []memory.NodeSpec{
			{ID: "home", MaxCapacity: 128, Neighbors: []string{"rich", "poor", "locked", "hard", "rack"}},
			target("rich", 100000, 100000, 1, 1),
			target("poor", 1000, 500, 3, 2),
			locked,
			hard,
			rack,
		},
	}
}

// only home can host; small is below the minimum host size.
func singleHostFleet(capacity float64) memory.FleetSpec {
	return memory.FleetSpec{
		Root:       "home",
		Capability: 1,
		Nodes: []memory.NodeSpec{
			{ID: "home", MaxCapacity: capacity, Neighbors: []string{"rich", "small"}},
			target("rich", 100000, 100000, 1, 1),
			{ID: "small", MaxCapacity: 2},
		},
	}
}

type fixture struct {
	env   *memory.Environment
	clock *clock.FakeClock
	stat  stats.StatsReceiver
	sched *Scheduler
}

func newFixture(t *testing.T, fleet memory.FleetSpec, cfg Config) *fixture {
	c := clock.NewFakeClock(time.Unix(1000, 0))
	e, err := memory.New(fleet, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Clock = c
	cfg.GrantRetryInterval = time.Millisecond
	stat := stats.DefaultStatsReceiver()
	return &fixture{env: e, clock: c, stat: stat, sched: New(e, cfg, stat)}
}

func (f *fixture) target(t *testing.T, id string) TargetStatus {
	for _, ts := range f.sched.Status().Targets {
		if ts.ID == id {
			return ts
		}
	}
	t.Fatalf("target %s is not tracked", id)
	return TargetStatus{}
}

func trackedIDs(st Status) []string {
	var ids []string
	for _, ts := range st.Targets {
		ids = append(ids, ts.ID)
	}
	return ids
}

func TestStepDispatchesEveryIdleTarget(t *testing.T) {
	f := newFixture(t, testFleet(), Config{})
	f.sched.Step()

	st := f.sched.Status()
	assert.Equal(t, []string{"rich", "poor"}, trackedIDs(st))
	assert.Equal(t, []string{"home", "rack"}, st.Snapshot.Hosts)
	assert.False(t, st.Snapshot.FleetMode)
	assert.Equal(t, float64(DefaultBudget), st.Snapshot.Budget)

	rich, poor := f.target(t, "rich"), f.target(t, "poor")
	assert.Equal(t, "extract", rich.LastMode)
	assert.Equal(t, "suppress", poor.LastMode)
	assert.True(t, rich.InFlight)
	assert.True(t, poor.InFlight)
	assert.Len(t, rich.Handles, 4)
	assert.Equal(t, int64(2), f.stat.Counter(stats.SchedBatchesDispatchedCounter).Count())

	// nothing new while the batches are live
	f.clock.Tick(time.Second)
	f.sched.Step()
	assert.Equal(t, 1, f.target(t, "rich").Batches)
	assert.Equal(t, 1, f.target(t, "poor").Batches)

	f.clock.Tick(time.Minute)
	f.sched.Step()
	assert.Equal(t, 2, f.target(t, "rich").Batches)
	poor = f.target(t, "poor")
	assert.Equal(t, 2, poor.Batches)
	assert.Equal(t, "replenish", poor.LastMode)
	assert.True(t, f.env.Extracted() > 0)
}

func TestStepNeverExceedsHostCapacity(t *testing.T) {
	f := newFixture(t, testFleet(), Config{})
	for i := 0; i < 50; i++ {
		f.sched.Step()
		for _, id := range []string{"home", "rack"} {
			info := f.env.NodeInfo(id)
			assert.True(t, info.UsedCapacity <= info.MaxCapacity, "%s used %.2f of %.2f", id, info.UsedCapacity, info.MaxCapacity)
		}
		f.clock.Tick(time.Second)
	}
	assert.Equal(t, int64(0), f.stat.Counter(stats.SchedDispatchRejectedCounter).Count())
}

func TestInfeasibleTargetIsMarkedBad(t *testing.T) {
	// the cheapest full batch costs 6.95
	f := newFixture(t, testFleet(), Config{Budget: 5, Target: "rich"})
	f.sched.Step()

	assert.Equal(t, []string{"rich"}, trackedIDs(f.sched.Status()))
	rich := f.target(t, "rich")
	assert.True(t, rich.Bad)
	assert.Equal(t, 0, rich.Batches)
	assert.Equal(t, 0, f.env.Running())
	assert.Equal(t, int64(1), f.stat.Counter(stats.SchedBadTargetCounter).Count())

	// bad targets are skipped, not re-evaluated
	f.clock.Tick(time.Second)
	f.sched.Step()
	assert.Equal(t, int64(1), f.stat.Counter(stats.SchedBadTargetCounter).Count())
}

func TestBadTargetsAreForgivenAfterResetInterval(t *testing.T) {
	f := newFixture(t, singleHostFleet(128), Config{})
	// fill home, leaving nothing after the control overhead
	busy := f.env.Launch(env.LowerPressure, "home", "rich", 64, 2*time.Minute)
	assert.True(t, busy.Valid())

	f.sched.Step()
	assert.True(t, f.target(t, "rich").Bad)

	f.clock.Tick(3 * time.Minute)
	assert.False(t, f.env.IsRunning(busy))
	f.sched.Step()
	assert.True(t, f.target(t, "rich").Bad, "freed capacity alone does not forgive")
	assert.Equal(t, 0, f.target(t, "rich").Batches)

	f.clock.Tick(2 * time.Minute)
	f.sched.Step()
	rich := f.target(t, "rich")
	assert.False(t, rich.Bad)
	assert.Equal(t, 1, rich.Batches)
	assert.Equal(t, int64(0), f.stat.Counter(stats.SchedRescanCounter).Count())
}

func TestCapacityGrowthClearsBadAndRefilters(t *testing.T) {
	f := newFixture(t, singleHostFleet(20), Config{})
	f.sched.Step()
	assert.True(t, f.target(t, "rich").Bad)
	assert.Equal(t, []string{"home"}, f.sched.Status().Snapshot.Hosts)

	f.env.SetCapacity("home", 128)
	f.env.SetCapacity("small", 64)
	f.clock.Tick(time.Second)
	f.sched.Step()

	st := f.sched.Status()
	assert.Equal(t, []string{"home", "small"}, st.Snapshot.Hosts)
	assert.Equal(t, 192.0, st.Snapshot.Capacity)
	rich := f.target(t, "rich")
	assert.False(t, rich.Bad)
	assert.Equal(t, 1, rich.Batches)
	assert.Equal(t, int64(1), f.stat.Counter(stats.SchedRescanCounter).Count())
}

func TestCapacityRegrowthBelowPeakClearsBad(t *testing.T) {
	f := newFixture(t, singleHostFleet(128), Config{})
	f.sched.Step()
	assert.Equal(t, 1, f.target(t, "rich").Batches)

	// one unit left after the control overhead, below any stage cost
	f.env.SetCapacity("home", 17)
	f.clock.Tick(time.Minute)
	f.sched.Step()
	assert.True(t, f.target(t, "rich").Bad)
	assert.Equal(t, 17.0, f.sched.Status().Snapshot.Capacity)

	f.env.SetCapacity("home", 100)
	f.clock.Tick(time.Second)
	f.sched.Step()
	rich := f.target(t, "rich")
	assert.False(t, rich.Bad)
	assert.Equal(t, 2, rich.Batches)
	assert.Equal(t, int64(1), f.stat.Counter(stats.SchedRescanCounter).Count())
}

func TestUnlockAndCapabilityGrowthAddTargets(t *testing.T) {
	f := newFixture(t, testFleet(), Config{})
	f.sched.Step()
	assert.Equal(t, []string{"rich", "poor"}, trackedIDs(f.sched.Status()))

	f.env.SetUnlocks(1)
	f.sched.Step()
	st := f.sched.Status()
	assert.Equal(t, []string{"rich", "locked", "poor"}, trackedIDs(st))
	assert.Equal(t, []string{"home", "locked", "rack"}, st.Snapshot.Hosts)
	assert.True(t, f.env.NodeInfo("locked").HasAccess)
	assert.Equal(t, 1, f.target(t, "rich").Batches, "existing tracking state is kept")

	f.env.SetCapability(5)
	f.sched.Step()
	assert.Equal(t, []string{"hard", "rich", "locked", "poor"}, trackedIDs(f.sched.Status()))
	assert.Equal(t, int64(2), f.stat.Counter(stats.SchedRescanCounter).Count())
}

// slowExtractEnv makes Extract the slowest stage of one target, which no
// start delay can stack in completion order.
type slowExtractEnv struct {
	*memory.Environment
	slow string
}

func (e slowExtractEnv) Duration(target string, p env.Primitive) time.Duration {
	d := e.Environment.Duration(target, p)
	if target == e.slow && p == env.ExtractReserve {
		return 10 * d
	}
	return d
}

func TestTimingAbortSkipsOnlyThatBatch(t *testing.T) {
	c := clock.NewFakeClock(time.Unix(1000, 0))
	mem, err := memory.New(testFleet(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stat := stats.DefaultStatsReceiver()
	s := New(slowExtractEnv{Environment: mem, slow: "rich"}, Config{Clock: c, GrantRetryInterval: time.Millisecond}, stat)
	s.Step()

	byID := map[string]TargetStatus{}
	for _, ts := range s.Status().Targets {
		byID[ts.ID] = ts
	}
	assert.False(t, byID["rich"].Bad)
	assert.Equal(t, 0, byID["rich"].Batches)
	assert.Equal(t, 1, byID["poor"].Batches)
	assert.Equal(t, int64(1), stat.Counter(stats.SchedTimingAbortCounter).Count())
	assert.Equal(t, int64(0), stat.Counter(stats.SchedBadTargetCounter).Count())

	// retried every tick, never marked bad
	c.Tick(time.Second)
	s.Step()
	assert.Equal(t, int64(2), stat.Counter(stats.SchedTimingAbortCounter).Count())
}

func TestFleetMode(t *testing.T) {
	fleet := testFleet()
	fleet.Nodes = append(fleet.Nodes,
		memory.NodeSpec{ID: "p1", MaxCapacity: 64, Owned: true},
		memory.NodeSpec{ID: "p2", MaxCapacity: 64, Owned: true})
	f := newFixture(t, fleet, Config{FleetThreshold: 100})
	f.sched.Step()

	st := f.sched.Status()
	assert.True(t, st.Snapshot.FleetMode)
	assert.Equal(t, []string{"p1", "p2", "home"}, st.Snapshot.Hosts)
	assert.Equal(t, 64.0, st.Snapshot.Budget)
	for _, ts := range st.Targets {
		assert.Equal(t, 1, ts.Batches, ts.ID)
	}
	assert.True(t, f.env.NodeInfo("p1").UsedCapacity > 0)
}

func TestTargetOverride(t *testing.T) {
	f := newFixture(t, testFleet(), Config{Target: "poor"})
	f.sched.Step()
	assert.Equal(t, []string{"poor"}, trackedIDs(f.sched.Status()))

	f = newFixture(t, testFleet(), Config{Target: "nowhere"})
	f.sched.Step()
	assert.Empty(t, f.sched.Status().Targets)
}

func TestRunStopsWithContext(t *testing.T) {
	f := newFixture(t, testFleet(), Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, context.Canceled, f.sched.Run(ctx))
	assert.Equal(t, 1, f.target(t, "rich").Batches)
}

func TestDeplete(t *testing.T) {
	fleet := singleHostFleet(128)
	drain := target("drain", 100, 100, 1, 1)
	drain.ExtractFraction = 0.01
	fleet.Nodes[0].Neighbors = append(fleet.Nodes[0].Neighbors, "drain")
	fleet.Nodes = append(fleet.Nodes, drain)
	f := newFixture(t, fleet, Config{})

	err := f.sched.Deplete(context.Background(), "drain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, 0.0, f.env.NodeInfo("drain").Reserve)
	assert.InDelta(t, 100, f.env.Extracted(), 1e-9)
	assert.InDelta(t, 1, f.env.NodeInfo("drain").Pressure, 1e-9)
	assert.True(t, f.stat.Counter(stats.SchedDepleteBatchesCounter).Count() > 0)

	assert.Error(t, f.sched.Deplete(context.Background(), "nowhere"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, context.Canceled, errors.Cause(f.sched.Deplete(ctx, "rich")))
}

func TestGrantAccessRetries(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	e := env.NewMockEnvironment(mockCtrl)

	e.EXPECT().NodeInfo("a").Return(env.NodeInfo{ID: "a", HasAccess: true})
	e.EXPECT().NodeInfo("b").Return(env.NodeInfo{ID: "b"})
	e.EXPECT().NodeInfo("c").Return(env.NodeInfo{ID: "c"})
	e.EXPECT().GrantAccess("b").Return(errors.New("busy")).Times(2)
	e.EXPECT().GrantAccess("b").Return(nil)
	e.EXPECT().GrantAccess("c").Return(errors.New("denied")).Times(1 + DefaultGrantRetries)

	stat := stats.DefaultStatsReceiver()
	s := New(e, Config{GrantRetryInterval: time.Millisecond, Clock: clock.NewFakeClock(time.Unix(0, 0))}, stat)
	assert.Equal(t, []string{"a", "b"}, s.grantAccess([]string{"a", "b", "c"}))
	assert.Equal(t, int64(1), stat.Counter(stats.SchedGrantAccessFailedCounter).Count())
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{MinCapacity: 1}.withDefaults()
	assert.Equal(t, float64(DefaultMinCapacity), cfg.MinCapacity)
	assert.Equal(t, DefaultControlNode, cfg.ControlNode)
	assert.Equal(t, DefaultDepth, cfg.Depth)
	assert.Equal(t, DefaultResetInterval, cfg.ResetInterval)
	assert.Equal(t, 50*time.Millisecond, cfg.Delay)
	assert.NotNil(t, cfg.Clock)

	cfg = Config{MinCapacity: 32, Depth: 5}.withDefaults()
	assert.Equal(t, 32.0, cfg.MinCapacity)
	assert.Equal(t, 5, cfg.Depth)
}
