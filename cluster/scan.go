// Package cluster reads the fleet: which nodes are reachable, which of them
// can host jobs or be targeted, and how much capacity each host has free.
package cluster

import (
	"github.com/twitter/harvest/env"
)

// Scan walks the adjacency relation breadth first from root, up to depth
// levels, and returns every node seen in first-seen order without duplicates.
// Each node is expanded at most once. root is not expanded again, but it can
// appear in the result through back-edges; callers drop it when unwanted.
func Scan(t env.Topology, root string, depth int) []string {
	if depth < 1 {
		depth = 1
	}
	expanded := map[string]bool{root: true}
	seen := map[string]bool{}
	var out []string

	level := t.Neighbors(root)
	for i := 0; ; i++ {
		var next []string
		for _, node := range level {
			if !seen[node] {
				seen[node] = true
				out = append(out, node)
			}
			if i+1 >= depth || expanded[node] {
				continue
			}
			expanded[node] = true
			next = append(next, t.Neighbors(node)...)
		}
		if i+1 >= depth || len(next) == 0 {
			break
		}
		level = next
	}
	return out
}

// Without returns nodes minus every occurrence of the given ids, order preserved.
func Without(nodes []string, ids ...string) []string {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if !drop[n] {
			out = append(out, n)
		}
	}
	return out
}
