// Package memory is a deterministic in-process runtime for harvest. Jobs are
// bookkept against an injectable clock and settle lazily in completion order
// whenever state is read, so tests can drive many ticks without sleeping.
package memory

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/twitter/harvest/common/clock"
	"github.com/twitter/harvest/env"
)

// Per-thread effects shared by every node.
const (
	ExtractPressure   = 0.002
	ReplenishPressure = 0.004
	SuppressPerThread = 0.05

	ExtractCost = 1.7
	StageCost   = 1.75

	ReplenishRatio = 3.2
	SuppressRatio  = 4.0

	defaultGrowthRate      = 1.03
	defaultExtractFraction = 0.002
	defaultExtractTime     = time.Second
)

type node struct {
	NodeSpec
	neighbors   []string
	extractTime time.Duration
	used        float64
	access      bool
}

type job struct {
	handle  env.Handle
	p       env.Primitive
	host    string
	target  string
	threads int
	cost    float64
	end     time.Time
}

var _ env.Environment = (*Environment)(nil)

// Environment implements env.Environment over a FleetSpec.
type Environment struct {
	mu         sync.Mutex
	clock      clock.Clock
	nodes      map[string]*node
	order      []string
	unlocks    int
	capability int
	pending    []*job // unsettled jobs sorted by end
	nextHandle env.Handle
	extracted  float64
}

// New builds a simulated runtime. Links are made symmetric.
func New(spec FleetSpec, c clock.Clock) (*Environment, error) {
	if c == nil {
		c = clock.NewRealClock()
	}
	e := &Environment{
		clock:      c,
		nodes:      make(map[string]*node, len(spec.Nodes)),
		unlocks:    spec.Unlocks,
		capability: spec.Capability,
	}
	for _, ns := range spec.Nodes {
		if ns.ID == "" {
			return nil, errors.New("node with empty id")
		}
		if _, ok := e.nodes[ns.ID]; ok {
			return nil, errors.Errorf("duplicate node %s", ns.ID)
		}
		n := &node{NodeSpec: ns, extractTime: defaultExtractTime, access: ns.Owned}
		if ns.ExtractTime != "" {
			d, err := time.ParseDuration(ns.ExtractTime)
			if err != nil {
				return nil, errors.Wrapf(err, "node %s: extractTime", ns.ID)
			}
			n.extractTime = d
		}
		if n.GrowthRate <= 1 {
			n.GrowthRate = defaultGrowthRate
		}
		if n.ExtractFraction <= 0 {
			n.ExtractFraction = defaultExtractFraction
		}
		if n.MinPressure < 1 {
			n.MinPressure = 1
		}
		if n.Pressure < n.MinPressure {
			n.Pressure = n.MinPressure
		}
		e.nodes[ns.ID] = n
		e.order = append(e.order, ns.ID)
	}
	for _, id := range e.order {
		for _, nb := range e.nodes[id].NodeSpec.Neighbors {
			other, ok := e.nodes[nb]
			if !ok {
				return nil, errors.Errorf("node %s: unknown neighbor %s", id, nb)
			}
			e.link(e.nodes[id], nb)
			e.link(other, id)
		}
	}
	if spec.Root != "" {
		root, ok := e.nodes[spec.Root]
		if !ok {
			return nil, errors.Errorf("unknown root %s", spec.Root)
		}
		root.access = true
	}
	return e, nil
}

func (e *Environment) link(n *node, to string) {
	for _, nb := range n.neighbors {
		if nb == to {
			return
		}
	}
	n.neighbors = append(n.neighbors, to)
}

// settle applies every job that has finished by now, in completion order.
// Callers hold mu.
func (e *Environment) settle() {
	now := e.clock.Now()
	i := 0
	for ; i < len(e.pending) && !e.pending[i].end.After(now); i++ {
		e.apply(e.pending[i])
	}
	e.pending = e.pending[i:]
}

func (e *Environment) apply(j *job) {
	if h, ok := e.nodes[j.host]; ok {
		h.used = math.Max(0, h.used-j.cost)
	}
	t, ok := e.nodes[j.target]
	if !ok {
		return
	}
	threads := float64(j.threads)
	switch j.p {
	case env.ExtractReserve:
		taken := t.Reserve * math.Min(1, t.ExtractFraction*threads)
		t.Reserve -= taken
		if t.Reserve < 1 {
			taken += t.Reserve
			t.Reserve = 0
		}
		t.Pressure += ExtractPressure * threads
		e.extracted += taken
	case env.RaiseReserve:
		t.Reserve = math.Min(t.MaxReserve, math.Max(t.Reserve, 1)*math.Pow(t.GrowthRate, threads))
		t.Pressure += ReplenishPressure * threads
	case env.LowerPressure:
		t.Pressure = math.Max(t.MinPressure, t.Pressure-SuppressPerThread*threads)
	}
}

func (e *Environment) Neighbors(id string) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, ok := e.nodes[id]
	if !ok {
		return nil
	}
	return append([]string(nil), n.neighbors...)
}

func (e *Environment) Exists(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.nodes[id]
	return ok
}

func (e *Environment) NodeInfo(id string) env.NodeInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settle()
	n, ok := e.nodes[id]
	if !ok {
		return env.NodeInfo{ID: id}
	}
	return env.NodeInfo{
		ID:                 id,
		MaxCapacity:        n.MaxCapacity,
		UsedCapacity:       n.used,
		RequiredUnlocks:    n.RequiredUnlocks,
		RequiredCapability: n.RequiredCapability,
		MaxReserve:         n.MaxReserve,
		Reserve:            n.Reserve,
		Pressure:           n.Pressure,
		MinPressure:        n.MinPressure,
		HasAccess:          n.access,
	}
}

func (e *Environment) UnlockCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.unlocks
}

func (e *Environment) CapabilityLevel() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.capability
}

func (e *Environment) OwnedNodes() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	var owned []string
	for _, id := range e.order {
		if e.nodes[id].Owned {
			owned = append(owned, id)
		}
	}
	return owned
}

func (e *Environment) Effects(target string) env.Effects {
	e.mu.Lock()
	defer e.mu.Unlock()
	fx := env.Effects{
		ExtractPressure:   ExtractPressure,
		ReplenishPressure: ReplenishPressure,
		SuppressPerThread: SuppressPerThread,
	}
	if n, ok := e.nodes[target]; ok {
		fx.ExtractFraction = n.ExtractFraction
	}
	return fx
}

func (e *Environment) ReplenishThreads(target string, multiplier float64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, ok := e.nodes[target]
	if !ok || multiplier <= 1 {
		return 0
	}
	return math.Log(multiplier) / math.Log(n.GrowthRate)
}

func (e *Environment) Duration(target string, p env.Primitive) time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settle()
	return e.duration(target, p)
}

func (e *Environment) duration(target string, p env.Primitive) time.Duration {
	n, ok := e.nodes[target]
	if !ok {
		return 0
	}
	base := float64(n.extractTime) * n.Pressure / n.MinPressure
	switch p {
	case env.RaiseReserve:
		base *= ReplenishRatio
	case env.LowerPressure:
		base *= SuppressRatio
	}
	return time.Duration(base)
}

func (e *Environment) Cost(p env.Primitive) float64 {
	if p == env.ExtractReserve {
		return ExtractCost
	}
	return StageCost
}

// Launch books threads*cost on host until the job ends. It returns
// env.NoHandle when the host has no access or not enough free capacity, or
// the target does not exist.
func (e *Environment) Launch(p env.Primitive, host, target string, threads int, delay time.Duration) env.Handle {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settle()

	h, ok := e.nodes[host]
	if !ok || !h.access || threads <= 0 {
		return env.NoHandle
	}
	if _, ok := e.nodes[target]; !ok {
		return env.NoHandle
	}
	cost := float64(threads) * e.Cost(p)
	if h.MaxCapacity-h.used < cost {
		log.WithFields(
			log.Fields{
				"host":     host,
				"required": cost,
				"free":     h.MaxCapacity - h.used,
			}).Debug("memory: rejecting launch, not enough capacity")
		return env.NoHandle
	}
	if delay < 0 {
		delay = 0
	}

	e.nextHandle++
	j := &job{
		handle:  e.nextHandle,
		p:       p,
		host:    host,
		target:  target,
		threads: threads,
		cost:    cost,
		end:     e.clock.Now().Add(delay + e.duration(target, p)),
	}
	h.used += cost
	idx := sort.Search(len(e.pending), func(i int) bool { return e.pending[i].end.After(j.end) })
	e.pending = append(e.pending, nil)
	copy(e.pending[idx+1:], e.pending[idx:])
	e.pending[idx] = j
	return j.handle
}

func (e *Environment) IsRunning(handle env.Handle) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settle()
	for _, j := range e.pending {
		if j.handle == handle {
			return true
		}
	}
	return false
}

// GrantAccess succeeds once the fleet has as many unlocks as the node requires.
func (e *Environment) GrantAccess(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, ok := e.nodes[id]
	if !ok {
		return errors.Errorf("unknown node %s", id)
	}
	if n.RequiredUnlocks > e.unlocks {
		return errors.Errorf("node %s needs %d unlocks, have %d", id, n.RequiredUnlocks, e.unlocks)
	}
	n.access = true
	return nil
}

// SetCapacity changes a node's max capacity.
func (e *Environment) SetCapacity(id string, capacity float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if n, ok := e.nodes[id]; ok {
		n.MaxCapacity = capacity
	}
}

func (e *Environment) SetUnlocks(n int) {
	e.mu.Lock()
	e.unlocks = n
	e.mu.Unlock()
}

func (e *Environment) SetCapability(n int) {
	e.mu.Lock()
	e.capability = n
	e.mu.Unlock()
}

// Running is the number of jobs that have not finished yet.
func (e *Environment) Running() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settle()
	return len(e.pending)
}

// Extracted is the total reserve removed by every settled extract job.
func (e *Environment) Extracted() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settle()
	return e.extracted
}
