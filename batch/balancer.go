package batch

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/twitter/harvest/cluster"
	"github.com/twitter/harvest/env"
)

// DefaultExtractGoal is the fraction of a prepared target's reserve a batch tries to take.
const DefaultExtractGoal = 0.9

// ErrInfeasible means no distribution fits both the budget and a host.
var ErrInfeasible = errors.New("no feasible distribution")

// tolerance absorbs float noise before rounding thread counts, so 0.05/0.002
// counts as 25 threads and not 24 or 26.
const tolerance = 1e-9

func floorThreads(x float64) int { return int(math.Floor(x + tolerance)) }
func ceilThreads(x float64) int  { return int(math.Ceil(x - tolerance)) }

// Mode is what a batch does to its target.
type Mode int

const (
	// ModeSuppress only lowers pressure, for targets above minimum pressure.
	ModeSuppress Mode = iota
	// ModeReplenish grows the reserve back to maximum while holding pressure.
	ModeReplenish
	// ModeExtract runs the full four stage batch against a prepared target.
	ModeExtract
)

func (m Mode) String() string {
	switch m {
	case ModeSuppress:
		return "suppress"
	case ModeReplenish:
		return "replenish"
	case ModeExtract:
		return "extract"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// TargetState is the reserve/pressure snapshot of a target taken this tick.
type TargetState struct {
	ID          string
	MaxReserve  float64
	Reserve     float64
	Pressure    float64
	MinPressure float64
}

// TargetStateOf converts a runtime read into a TargetState.
func TargetStateOf(info env.NodeInfo) TargetState {
	return TargetState{
		ID:          info.ID,
		MaxReserve:  info.MaxReserve,
		Reserve:     info.Reserve,
		Pressure:    info.Pressure,
		MinPressure: info.MinPressure,
	}
}

// Classify picks the batch mode for t. Pressure is handled before reserve.
func Classify(t TargetState) Mode {
	switch {
	case t.Pressure > t.MinPressure:
		return ModeSuppress
	case t.Reserve < t.MaxReserve:
		return ModeReplenish
	default:
		return ModeExtract
	}
}

// ReplenishAnalyzer answers how many Replenish threads multiply a reserve by a factor.
type ReplenishAnalyzer interface {
	ReplenishThreads(target string, multiplier float64) float64
}

// HostFinder finds a host with at least the required free capacity.
type HostFinder interface {
	FindHost(required float64) (cluster.Node, bool)
}

// Request is everything Balance needs about one target. It is read-only.
type Request struct {
	Target      TargetState
	Effects     env.Effects
	Analyzer    ReplenishAnalyzer
	Costs       Costs
	Budget      float64 // most capacity one batch may use
	ExtractGoal float64 // fraction of reserve an extract batch aims for
}

// Decision is an accepted distribution with the host that will run it.
type Decision struct {
	Mode         Mode
	Distribution Distribution
	Host         cluster.Node
	Cost         float64
}

// Balance computes the smallest pressure-neutral distribution for the
// target's mode and places it on a host. Preparation batches are then scaled
// up to the idle capacity of the chosen host. Extract batches search down
// from the extract goal until a distribution fits. The returned cost never
// exceeds the budget or the host's free capacity.
func Balance(req Request, hosts HostFinder) (Decision, error) {
	if req.Effects.SuppressPerThread <= 0 {
		return Decision{}, errors.Wrapf(ErrInfeasible, "target %s: suppress effect %v", req.Target.ID, req.Effects.SuppressPerThread)
	}
	mode := Classify(req.Target)
	switch mode {
	case ModeSuppress, ModeReplenish:
		return balancePreparation(req, mode, hosts)
	default:
		return balanceExtract(req, hosts)
	}
}

func balancePreparation(req Request, mode Mode, hosts HostFinder) (Decision, error) {
	var base Distribution
	base[SuppressB] = 1
	if mode == ModeReplenish {
		// At least one Replenish thread, or a target whose Replenish pressure
		// exceeds one Suppress thread would never regrow. Such batches are not
		// pressure-neutral; the next tick suppresses the surplus.
		base[Replenish] = 1
		if req.Effects.ReplenishPressure > 0 {
			base[Replenish] = max(1, floorThreads(req.Effects.SuppressPerThread/req.Effects.ReplenishPressure))
		}
	}

	cost := base.Cost(req.Costs)
	if cost <= 0 || cost > req.Budget {
		return Decision{}, errors.Wrapf(ErrInfeasible, "target %s: %s batch costs %.2f, budget %.2f",
			req.Target.ID, mode, cost, req.Budget)
	}
	host, ok := hosts.FindHost(cost)
	if !ok {
		return Decision{}, errors.Wrapf(ErrInfeasible, "target %s: no host with %.2f free", req.Target.ID, cost)
	}

	k := max(min(host.Copies(cost), int(req.Budget/cost)), 1)
	dist := base.scalePreparation(k)
	for k > 1 && (dist.Cost(req.Costs) > req.Budget || dist.Cost(req.Costs) > host.Free()) {
		k--
		dist = base.scalePreparation(k)
	}
	return Decision{Mode: mode, Distribution: dist, Host: host, Cost: dist.Cost(req.Costs)}, nil
}

func balanceExtract(req Request, hosts HostFinder) (Decision, error) {
	fx := req.Effects
	if fx.ExtractFraction <= 0 {
		return Decision{}, errors.Wrapf(ErrInfeasible, "target %s: extract fraction %v", req.Target.ID, fx.ExtractFraction)
	}
	trial := max(floorThreads(req.ExtractGoal/fx.ExtractFraction), 1)

	for extract := trial; extract > 0; extract-- {
		dist, ok := extractDistribution(req, extract)
		if !ok {
			continue
		}
		cost := dist.Cost(req.Costs)
		if cost > req.Budget {
			continue
		}
		if host, ok := hosts.FindHost(cost); ok {
			return Decision{Mode: ModeExtract, Distribution: dist, Host: host, Cost: cost}, nil
		}
	}
	return Decision{}, errors.Wrapf(ErrInfeasible, "target %s: no extract count from %d fits budget %.2f",
		req.Target.ID, trial, req.Budget)
}

// extractDistribution sizes the other three stages around a trial Extract
// count, always from the original snapshot. It fails when the trial would
// drain the whole reserve, which no Replenish count can undo.
func extractDistribution(req Request, extract int) (Distribution, bool) {
	fx := req.Effects
	drained := float64(extract) * fx.ExtractFraction
	if drained >= 1 {
		return Distribution{}, false
	}
	var d Distribution
	d[Extract] = extract
	d[Replenish] = max(0, ceilThreads(req.Analyzer.ReplenishThreads(req.Target.ID, 1/(1-drained))))
	d[SuppressA] = ceilThreads(fx.ExtractPressure * float64(extract) / fx.SuppressPerThread)
	d[SuppressB] = ceilThreads(fx.ReplenishPressure * float64(d[Replenish]) / fx.SuppressPerThread)
	return d, true
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
