// Package config turns a named built-in configuration or a YAML/JSON file
// into the pieces a harvest binary wires together.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/twitter/harvest/common/clock"
	"github.com/twitter/harvest/env/memory"
	"github.com/twitter/harvest/scheduler"
)

// Configs holds every section. Sections left empty in a file are taken from "default".
type Configs struct {
	Env       EnvConfig       `yaml:"env" json:"Env"`
	Scheduler SchedulerConfig `yaml:"scheduler" json:"Scheduler"`
	Stats     StatsConfig     `yaml:"stats" json:"Stats"`
}

func (c Configs) String() string {
	return fmt.Sprintf("\n%s\n%s\n%s", c.Env, c.Scheduler, c.Stats)
}

type EnvConfig struct {
	Type  string            `yaml:"type" json:"Type"`   // runtime type: memory
	Fleet *memory.FleetSpec `yaml:"fleet" json:"Fleet"` // default to memory.DefaultFleet()
}

func (e EnvConfig) String() string {
	nodes := 0
	if e.Fleet != nil {
		nodes = len(e.Fleet.Nodes)
	}
	return fmt.Sprintf("EnvConfig: Type: %s, FleetNodes: %d", e.Type, nodes)
}

// Create builds the runtime this section describes.
func (e EnvConfig) Create(c clock.Clock) (*memory.Environment, error) {
	switch e.Type {
	case "memory":
		fleet := memory.DefaultFleet()
		if e.Fleet != nil {
			fleet = *e.Fleet
		}
		return memory.New(fleet, c)
	default:
		return nil, errors.Errorf("unsupported env type %q", e.Type)
	}
}

// SchedulerConfig mirrors scheduler.Config with durations as strings. Zero
// values fall back to the scheduler defaults.
type SchedulerConfig struct {
	ControlNode        string  `yaml:"controlNode" json:"ControlNode"`       // default to home
	Depth              int     `yaml:"depth" json:"Depth"`                   // default to 3
	MinCapacity        float64 `yaml:"minCapacity" json:"MinCapacity"`       // never below 4
	Target             string  `yaml:"target" json:"Target"`                 // track only this node
	TickRate           string  `yaml:"tickRate" json:"TickRate"`             // default to 1s
	Delay              string  `yaml:"delay" json:"Delay"`                   // default to 50ms
	ResetInterval      string  `yaml:"resetInterval" json:"ResetInterval"`   // default to 5m
	Budget             float64 `yaml:"budget" json:"Budget"`                 // default to 2048
	ExtractGoal        float64 `yaml:"extractGoal" json:"ExtractGoal"`       // default to 0.9
	FleetThreshold     float64 `yaml:"fleetThreshold" json:"FleetThreshold"` // default to 20480
	ControlOverhead    float64 `yaml:"controlOverhead" json:"ControlOverhead"`
	GrantRetries       int     `yaml:"grantRetries" json:"GrantRetries"`
	GrantRetryInterval string  `yaml:"grantRetryInterval" json:"GrantRetryInterval"`
}

func (sc SchedulerConfig) String() string {
	return fmt.Sprintf("SchedulerConfig: ControlNode: %s, Depth: %d, MinCapacity: %.0f, Target: %q, TickRate: %s, "+
		"Delay: %s, ResetInterval: %s, Budget: %.0f, ExtractGoal: %.2f, FleetThreshold: %.0f",
		sc.ControlNode, sc.Depth, sc.MinCapacity, sc.Target, sc.TickRate,
		sc.Delay, sc.ResetInterval, sc.Budget, sc.ExtractGoal, sc.FleetThreshold)
}

// CreateSchedulerConfig parses the durations and copies the rest.
func (sc SchedulerConfig) CreateSchedulerConfig() (scheduler.Config, error) {
	cfg := scheduler.Config{
		ControlNode:     sc.ControlNode,
		Depth:           sc.Depth,
		MinCapacity:     sc.MinCapacity,
		Target:          sc.Target,
		Budget:          sc.Budget,
		ExtractGoal:     sc.ExtractGoal,
		FleetThreshold:  sc.FleetThreshold,
		ControlOverhead: sc.ControlOverhead,
		GrantRetries:    sc.GrantRetries,
	}
	durations := []struct {
		name  string
		value string
		dest  *time.Duration
	}{
		{"TickRate", sc.TickRate, &cfg.TickRate},
		{"Delay", sc.Delay, &cfg.Delay},
		{"ResetInterval", sc.ResetInterval, &cfg.ResetInterval},
		{"GrantRetryInterval", sc.GrantRetryInterval, &cfg.GrantRetryInterval},
	}
	for _, d := range durations {
		if d.value == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return scheduler.Config{}, errors.Wrapf(err, "scheduler %s", d.name)
		}
		*d.dest = parsed
	}
	return cfg, nil
}

type StatsConfig struct {
	HTTPAddr string `yaml:"httpAddr" json:"HTTPAddr"` // admin endpoint address
}

func (s StatsConfig) String() string {
	return fmt.Sprintf("StatsConfig: HTTPAddr: %s", s.HTTPAddr)
}

// GetConfig returns a built-in configuration by name, backed by "default".
func GetConfig(configName string) (*Configs, error) {
	c, ok := HarvestConfigs[configName]
	if !ok {
		keys := make([]string, 0, len(HarvestConfigs))
		for k := range HarvestConfigs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("invalid configuration %s, supported values are %v", configName, keys)
	}
	return withDefaults(c), nil
}

// LoadFile reads a configuration file. The extension picks the decoder:
// .yaml/.yml or .json.
func LoadFile(path string) (*Configs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	c := Configs{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &c)
	case ".json":
		err = json.Unmarshal(data, &c)
	default:
		return nil, errors.Errorf("config %s: unknown extension, want .yaml, .yml or .json", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't parse config %s", path)
	}
	return withDefaults(c), nil
}

// Load treats selector as a file path when such a file exists and as a
// built-in name otherwise.
func Load(selector string) (*Configs, error) {
	if _, err := os.Stat(selector); err == nil {
		return LoadFile(selector)
	}
	return GetConfig(selector)
}

// use the default values for any sections that were not set
func withDefaults(c Configs) *Configs {
	if c.Env.Type == "" {
		log.Infof("using default Env config")
		c.Env = defaultConfig.Env
	}
	if c.Scheduler == (SchedulerConfig{}) {
		log.Infof("using default Scheduler config")
		c.Scheduler = defaultConfig.Scheduler
	}
	if c.Stats.HTTPAddr == "" {
		c.Stats = defaultConfig.Stats
	}
	return &c
}
