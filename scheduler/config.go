package scheduler

import (
	"fmt"
	"time"

	"github.com/twitter/harvest/batch"
	"github.com/twitter/harvest/cluster"
	"github.com/twitter/harvest/common/clock"
)

const (
	// How often the scheduler step is called in Run.
	DefaultTickRate = time.Second

	// Every bad flag is forgiven after this long.
	DefaultResetInterval = 5 * time.Minute

	// Most capacity one batch may use outside fleet mode.
	DefaultBudget = 2048

	// Owned capacity above which the scheduler switches to fleet mode.
	DefaultFleetThreshold = 20480

	DefaultControlNode = "home"
	DefaultDepth       = 3
	DefaultMinCapacity = 4

	// GrantAccess is retried this many times, this far apart, before a node is skipped.
	DefaultGrantRetries       = 3
	DefaultGrantRetryInterval = 100 * time.Millisecond
)

// Config holds everything the scheduler reads at initialization.
//
// Target - if set, only this node is tracked.
//
// Clock - time source, the real clock when nil.
type Config struct {
	ControlNode        string
	Depth              int
	MinCapacity        float64
	Target             string
	TickRate           time.Duration
	Delay              time.Duration
	ResetInterval      time.Duration
	Budget             float64
	ExtractGoal        float64
	FleetThreshold     float64
	ControlOverhead    float64
	GrantRetries       int
	GrantRetryInterval time.Duration

	Clock clock.Clock
}

// withDefaults fills every zero field with its default. MinCapacity is
// never allowed below DefaultMinCapacity.
func (c Config) withDefaults() Config {
	if c.ControlNode == "" {
		c.ControlNode = DefaultControlNode
	}
	if c.Depth < 1 {
		c.Depth = DefaultDepth
	}
	if c.MinCapacity < DefaultMinCapacity {
		c.MinCapacity = DefaultMinCapacity
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Delay <= 0 {
		c.Delay = batch.DefaultDelay
	}
	if c.ResetInterval <= 0 {
		c.ResetInterval = DefaultResetInterval
	}
	if c.Budget <= 0 {
		c.Budget = DefaultBudget
	}
	if c.ExtractGoal <= 0 || c.ExtractGoal >= 1 {
		c.ExtractGoal = batch.DefaultExtractGoal
	}
	if c.FleetThreshold <= 0 {
		c.FleetThreshold = DefaultFleetThreshold
	}
	if c.ControlOverhead <= 0 {
		c.ControlOverhead = cluster.DefaultControlOverhead
	}
	if c.GrantRetries <= 0 {
		c.GrantRetries = DefaultGrantRetries
	}
	if c.GrantRetryInterval <= 0 {
		c.GrantRetryInterval = DefaultGrantRetryInterval
	}
	if c.Clock == nil {
		c.Clock = clock.NewRealClock()
	}
	return c
}

func (c *Config) String() string {
	return fmt.Sprintf("Config: ControlNode: %s, Depth: %d, MinCapacity: %.0f, Target: %q, TickRate: %s, Delay: %s, "+
		"ResetInterval: %s, Budget: %.0f, ExtractGoal: %.2f, FleetThreshold: %.0f, ControlOverhead: %.0f, "+
		"GrantRetries: %d, GrantRetryInterval: %s",
		c.ControlNode, c.Depth, c.MinCapacity, c.Target, c.TickRate, c.Delay,
		c.ResetInterval, c.Budget, c.ExtractGoal, c.FleetThreshold, c.ControlOverhead,
		c.GrantRetries, c.GrantRetryInterval)
}
