package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/twitter/harvest/common/clock"
	harvesterrors "github.com/twitter/harvest/common/errors"
	"github.com/twitter/harvest/config"
	"github.com/twitter/harvest/env"
	"github.com/twitter/harvest/env/memory"
)

func drainFleet() memory.FleetSpec {
	return memory.FleetSpec{
		Root:       "home",
		Capability: 1,
		Nodes: []memory.NodeSpec{
			{ID: "home", MaxCapacity: 128, Neighbors: []string{"drain"}},
			{ID: "drain", MaxReserve: 100, Reserve: 100, Pressure: 1, MinPressure: 1, ExtractFraction: 0.01, ExtractTime: "1s"},
		},
	}
}

func execute(t *testing.T, c *harvestCmd, args ...string) error {
	c.root.SetArgs(args)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return c.root.ExecuteContext(ctx)
}

func TestUsageErrors(t *testing.T) {
	err := execute(t, newHarvestCmd(), "--deplete")
	assert.Equal(t, harvesterrors.UsageExitCode, harvesterrors.GetExitCode(err))

	err = execute(t, newHarvestCmd(), "--log_level", "loud")
	assert.Equal(t, harvesterrors.UsageExitCode, harvesterrors.GetExitCode(err))

	err = execute(t, newHarvestCmd(), "--config", "nowhere")
	assert.Equal(t, harvesterrors.ConfigFailureExitCode, harvesterrors.GetExitCode(err))
}

func TestMissingTarget(t *testing.T) {
	err := execute(t, newHarvestCmd(), "--target", "nope", "--log_level", "error")
	assert.Equal(t, harvesterrors.TargetMissingExitCode, harvesterrors.GetExitCode(err))
}

func TestDepleteTarget(t *testing.T) {
	var created *memory.Environment
	c := newHarvestCmd()
	c.clk = clock.NewFakeClock(time.Unix(1000, 0))
	c.newEnv = func(_ *config.Configs, clk clock.Clock) (env.Environment, error) {
		e, err := memory.New(drainFleet(), clk)
		created = e
		return e, err
	}

	err := execute(t, c, "--target", "drain", "--deplete", "--http_addr", "127.0.0.1:0", "--log_level", "error")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, 0.0, created.NodeInfo("drain").Reserve)
	assert.InDelta(t, 100, created.Extracted(), 1e-9)
}
