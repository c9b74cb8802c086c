package batch

import (
	"fmt"

	"github.com/twitter/harvest/env"
)

// Distribution is the thread count of each stage, indexed by Stage.
type Distribution [NumStages]int

// Threads returns the thread count of s.
func (d Distribution) Threads(s Stage) int { return d[s] }

// Total is the number of threads across all stages.
func (d Distribution) Total() int {
	total := 0
	for _, t := range d {
		total += t
	}
	return total
}

// Scale multiplies every stage by k.
func (d Distribution) Scale(k int) Distribution {
	for i := range d {
		d[i] *= k
	}
	return d
}

// scalePreparation multiplies the Replenish and Suppress-B stages by k, the stages a
// preparation batch uses.
func (d Distribution) scalePreparation(k int) Distribution {
	d[Replenish] *= k
	d[SuppressB] *= k
	return d
}

// Costs is the capacity consumed by one thread of each stage.
type Costs [NumStages]float64

// CostsFrom reads per-thread stage costs from the runtime.
func CostsFrom(a env.Analyzer) Costs {
	var c Costs
	for _, s := range Stages {
		c[s] = a.Cost(s.Primitive())
	}
	return c
}

// Cost is the total capacity the distribution needs while it runs.
func (d Distribution) Cost(c Costs) float64 {
	cost := 0.0
	for _, s := range Stages {
		cost += float64(d[s]) * c[s]
	}
	return cost
}

func (d Distribution) String() string {
	return fmt.Sprintf("extract=%d,suppressA=%d,replenish=%d,suppressB=%d",
		d[Extract], d[SuppressA], d[Replenish], d[SuppressB])
}
