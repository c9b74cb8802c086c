package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/twitter/harvest/common/clock"
	"github.com/twitter/harvest/env"
)

func testFleet() FleetSpec {
	return FleetSpec{
		Root:       "home",
		Capability: 1,
		Nodes: []NodeSpec{
			{ID: "home", MaxCapacity: 100, Owned: true, Neighbors: []string{"a"}},
			{ID: "a", MaxCapacity: 8, MaxReserve: 1000, Reserve: 500, Pressure: 3, MinPressure: 2, GrowthRate: 1.1, ExtractFraction: 0.01, ExtractTime: "1s", Neighbors: []string{"b"}},
			{ID: "b", MaxReserve: 10, Reserve: 10, MinPressure: 1, RequiredUnlocks: 1},
		},
	}
}

func newTestEnv(t *testing.T) (*Environment, *clock.FakeClock) {
	c := clock.NewFakeClock(time.Unix(0, 0))
	e, err := New(testFleet(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return e, c
}

func TestNewValidates(t *testing.T) {
	spec := testFleet()
	spec.Nodes = append(spec.Nodes, NodeSpec{ID: "a"})
	if _, err := New(spec, nil); err == nil {
		t.Error("expected duplicate node error")
	}

	spec = testFleet()
	spec.Nodes[1].Neighbors = []string{"nowhere"}
	if _, err := New(spec, nil); err == nil {
		t.Error("expected unknown neighbor error")
	}

	spec = testFleet()
	spec.Nodes[1].ExtractTime = "soon"
	if _, err := New(spec, nil); err == nil {
		t.Error("expected bad duration error")
	}
}

func TestTopologyIsSymmetric(t *testing.T) {
	e, _ := newTestEnv(t)
	assert.Equal(t, []string{"a"}, e.Neighbors("home"))
	assert.Equal(t, []string{"home", "b"}, e.Neighbors("a"))
	assert.Equal(t, []string{"a"}, e.Neighbors("b"))
	assert.Nil(t, e.Neighbors("zzz"))
	assert.Equal(t, []string{"home"}, e.OwnedNodes())
}

func TestDurations(t *testing.T) {
	e, _ := newTestEnv(t)
	// pressure 3 over min 2 stretches the 1s base
	assert.Equal(t, 1500*time.Millisecond, e.Duration("a", env.ExtractReserve))
	assert.Equal(t, 4800*time.Millisecond, e.Duration("a", env.RaiseReserve))
	assert.Equal(t, 6000*time.Millisecond, e.Duration("a", env.LowerPressure))
}

func TestLaunchRejects(t *testing.T) {
	e, _ := newTestEnv(t)
	assert.Equal(t, env.NoHandle, e.Launch(env.LowerPressure, "a", "a", 1, 0), "no access")
	assert.Equal(t, env.NoHandle, e.Launch(env.LowerPressure, "home", "zzz", 1, 0), "unknown target")
	assert.Equal(t, env.NoHandle, e.Launch(env.LowerPressure, "home", "a", 0, 0), "no threads")
	assert.Equal(t, env.NoHandle, e.Launch(env.LowerPressure, "home", "a", 58, 0), "too big")
	assert.True(t, e.Launch(env.LowerPressure, "home", "a", 57, 0).Valid())
	assert.Equal(t, env.NoHandle, e.Launch(env.LowerPressure, "home", "a", 1, 0), "full")
}

func TestJobsSettleInCompletionOrder(t *testing.T) {
	e, c := newTestEnv(t)
	// lower finishes at 6s, extract at 1s+1.5s
	lower := e.Launch(env.LowerPressure, "home", "a", 30, 0)
	extract := e.Launch(env.ExtractReserve, "home", "a", 10, time.Second)
	assert.True(t, lower.Valid())
	assert.True(t, extract.Valid())
	assert.InDelta(t, 30*1.75+10*1.7, e.NodeInfo("home").UsedCapacity, 1e-9)

	c.Tick(3 * time.Second)
	assert.False(t, e.IsRunning(extract))
	assert.True(t, e.IsRunning(lower))
	info := e.NodeInfo("a")
	assert.InDelta(t, 450, info.Reserve, 1e-9)
	assert.InDelta(t, 3.02, info.Pressure, 1e-9)
	assert.InDelta(t, 50, e.Extracted(), 1e-9)

	c.Tick(3 * time.Second)
	assert.False(t, e.IsRunning(lower))
	assert.Equal(t, 0, e.Running())
	info = e.NodeInfo("a")
	assert.InDelta(t, 2, info.Pressure, 1e-9)
	assert.InDelta(t, 0, e.NodeInfo("home").UsedCapacity, 1e-9)
}

func TestRaiseReserveCapsAtMax(t *testing.T) {
	e, c := newTestEnv(t)
	assert.InDelta(t, 0, e.ReplenishThreads("a", 1), 1e-9)
	assert.InDelta(t, 7.27, e.ReplenishThreads("a", 2), 0.01)

	e.Launch(env.RaiseReserve, "home", "a", 20, 0)
	c.Tick(time.Minute)
	info := e.NodeInfo("a")
	assert.Equal(t, 1000.0, info.Reserve)
	assert.InDelta(t, 3.08, info.Pressure, 1e-9)
}

func TestGrantAccessAndGrowth(t *testing.T) {
	e, _ := newTestEnv(t)
	assert.Error(t, e.GrantAccess("b"))
	assert.Error(t, e.GrantAccess("zzz"))
	e.SetUnlocks(1)
	assert.NoError(t, e.GrantAccess("b"))
	assert.True(t, e.NodeInfo("b").HasAccess)

	e.SetCapability(7)
	assert.Equal(t, 7, e.CapabilityLevel())
	e.SetCapacity("home", 200)
	assert.Equal(t, 200.0, e.NodeInfo("home").MaxCapacity)
	assert.Equal(t, env.NodeInfo{ID: "zzz"}, e.NodeInfo("zzz"))
}

func TestDefaultFleetBuilds(t *testing.T) {
	e, err := New(DefaultFleet(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.True(t, e.Exists("home"))
	assert.Len(t, e.Neighbors("home"), 4)
}
