// Package env describes the runtime harvest schedules against: the fleet of
// nodes, their reserve/pressure state and the primitives that run on them.
// Everything in here is owned by the runtime; harvest only reads snapshots
// and launches jobs.
package env

//go:generate mockgen -source=env.go -package=env -destination=env_mock.go

import (
	"fmt"
	"time"
)

// Primitive is one of the three one-shot operations the runtime can run on a host.
type Primitive int

const (
	// ExtractReserve removes a fraction of a target's reserve and raises its pressure.
	ExtractReserve Primitive = iota
	// LowerPressure lowers a target's pressure towards its minimum.
	LowerPressure
	// RaiseReserve grows a target's reserve towards its maximum and raises its pressure.
	RaiseReserve
)

func (p Primitive) String() string {
	switch p {
	case ExtractReserve:
		return "extract"
	case LowerPressure:
		return "lower"
	case RaiseReserve:
		return "raise"
	default:
		return fmt.Sprintf("primitive(%d)", int(p))
	}
}

// Handle identifies a launched job. The zero Handle means the runtime rejected the launch.
type Handle int

const NoHandle Handle = 0

// Valid reports whether the runtime accepted the launch that produced this handle.
func (h Handle) Valid() bool { return h != NoHandle }

// NodeInfo is a point-in-time read of a node. Capacity fields apply to hosts,
// reserve/pressure fields to targets; a node may be both.
type NodeInfo struct {
	ID                 string
	MaxCapacity        float64
	UsedCapacity       float64
	RequiredUnlocks    int
	RequiredCapability int
	MaxReserve         float64
	Reserve            float64
	Pressure           float64
	MinPressure        float64
	HasAccess          bool
}

// Effects is the per-thread effect table of the primitives against one target.
type Effects struct {
	ExtractFraction   float64 // fraction of current reserve removed per Extract thread
	ExtractPressure   float64 // pressure added per Extract thread
	ReplenishPressure float64 // pressure added per Replenish thread
	SuppressPerThread float64 // pressure removed per Suppress thread
}

type Topology interface {
	// Neighbors returns the direct neighbors of node.
	Neighbors(node string) []string
}

type Inspector interface {
	NodeInfo(node string) NodeInfo
	Exists(node string) bool
}

type Progress interface {
	UnlockCount() int
	CapabilityLevel() int
	// OwnedNodes returns the nodes bought outright, which never need unlocking.
	OwnedNodes() []string
}

type Analyzer interface {
	Effects(target string) Effects
	// ReplenishThreads is the number of RaiseReserve threads needed to multiply
	// the target's reserve by multiplier.
	ReplenishThreads(target string, multiplier float64) float64
	Duration(target string, p Primitive) time.Duration
	// Cost is the capacity consumed by one thread of p.
	Cost(p Primitive) float64
}

type Launcher interface {
	// Launch starts threads of p on host against target after delay.
	// It returns NoHandle when the runtime rejects the job.
	Launch(p Primitive, host, target string, threads int, delay time.Duration) Handle
	IsRunning(h Handle) bool
}

type Access interface {
	// GrantAccess runs the unlock bootstrap against node.
	GrantAccess(node string) error
}

// Environment is the full runtime surface the scheduler is driven through.
type Environment interface {
	Topology
	Inspector
	Progress
	Analyzer
	Launcher
	Access
}
