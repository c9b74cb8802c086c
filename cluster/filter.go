package cluster

import (
	"sort"

	"github.com/twitter/harvest/env"
)

// UsableHosts keeps the nodes that can run jobs: either already accessible or
// unlockable with the current unlock count, and no smaller than minCapacity.
// Encounter order is preserved.
func UsableHosts(in env.Inspector, nodes []string, unlocks int, minCapacity float64) []string {
	var hosts []string
	for _, n := range nodes {
		info := in.NodeInfo(n)
		if (info.RequiredUnlocks <= unlocks || info.HasAccess) && info.MaxCapacity >= minCapacity {
			hosts = append(hosts, n)
		}
	}
	return hosts
}

// ViableTargets keeps the nodes worth extracting from, most valuable first.
// Nodes with equal MaxReserve keep their encounter order.
func ViableTargets(in env.Inspector, nodes []string, unlocks, capability int) []string {
	if capability < 1 {
		capability = 1
	}
	type candidate struct {
		id         string
		maxReserve float64
	}
	var cands []candidate
	for _, n := range nodes {
		info := in.NodeInfo(n)
		if info.RequiredUnlocks > unlocks || info.RequiredCapability > capability {
			continue
		}
		if info.MaxReserve <= 0 || info.Reserve <= 0 {
			continue
		}
		cands = append(cands, candidate{n, info.MaxReserve})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].maxReserve > cands[j].maxReserve })

	targets := make([]string, len(cands))
	for i, c := range cands {
		targets[i] = c.id
	}
	return targets
}

// SortByMaxReserve stable-sorts ids in place, richest first, reading each node once.
func SortByMaxReserve(in env.Inspector, ids []string) {
	maxReserve := make(map[string]float64, len(ids))
	for _, id := range ids {
		maxReserve[id] = in.NodeInfo(id).MaxReserve
	}
	sort.SliceStable(ids, func(i, j int) bool { return maxReserve[ids[i]] > maxReserve[ids[j]] })
}
