package config

import (
	"github.com/twitter/harvest/env/memory"
)

// HarvestConfigs the map of available configurations
var HarvestConfigs = map[string]Configs{
	"default":      defaultConfig,
	"local.memory": localMemory,
}

// defaultConfig the configuration values that are used for empty sections of a specific configuration
var defaultConfig = Configs{
	EnvConfig{
		Type: "memory",
	},
	SchedulerConfig{
		ControlNode:   "home",
		Depth:         3,
		MinCapacity:   4,
		TickRate:      "1s",
		Delay:         "50ms",
		ResetInterval: "5m",
		Budget:        2048,
		ExtractGoal:   0.9,
	},
	StatsConfig{
		HTTPAddr: "localhost:9098",
	},
}

var localFleet = memory.DefaultFleet()

// localMemory config for local.memory - !!! make sure this constant is added to HarvestConfigs map above !!!
var localMemory = Configs{
	EnvConfig{
		Type:  "memory",
		Fleet: &localFleet,
	},
	SchedulerConfig{
		ControlNode:        "home",
		Depth:              3,
		MinCapacity:        4,
		TickRate:           "250ms",
		Delay:              "50ms",
		ResetInterval:      "1m",
		Budget:             256,
		ExtractGoal:        0.5,
		GrantRetries:       1,
		GrantRetryInterval: "10ms",
	},
	StatsConfig{
		HTTPAddr: "localhost:9098",
	},
}
