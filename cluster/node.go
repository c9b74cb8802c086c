package cluster

import (
	"fmt"

	"github.com/twitter/harvest/env"
)

// DefaultControlOverhead is the capacity withheld on the control node for the scheduler itself.
const DefaultControlOverhead = 16

// Node is the capacity view of one host at snapshot time.
type Node struct {
	ID           string
	MaxCapacity  float64
	UsedCapacity float64
	Overhead     float64 // withheld capacity, nonzero only on the control node
}

// Free is the capacity available for new jobs. It never goes negative.
func (n Node) Free() float64 {
	free := n.MaxCapacity - n.UsedCapacity - n.Overhead
	if free < 0 {
		return 0
	}
	return free
}

func (n Node) String() string {
	return fmt.Sprintf("{id:%s, max:%.2f, used:%.2f, overhead:%.2f}", n.ID, n.MaxCapacity, n.UsedCapacity, n.Overhead)
}

// Nodes is an ordered capacity snapshot of the host pool, taken once per tick.
// Host order is placement priority.
type Nodes struct {
	order []string
	nodes map[string]*Node
}

// Snapshot reads the capacity of every host. controlNode gets overhead withheld.
func Snapshot(in env.Inspector, hosts []string, controlNode string, overhead float64) *Nodes {
	ns := &Nodes{nodes: make(map[string]*Node, len(hosts))}
	for _, h := range hosts {
		if _, ok := ns.nodes[h]; ok {
			continue
		}
		info := in.NodeInfo(h)
		n := &Node{ID: h, MaxCapacity: info.MaxCapacity, UsedCapacity: info.UsedCapacity}
		if h == controlNode {
			n.Overhead = overhead
		}
		ns.order = append(ns.order, h)
		ns.nodes[h] = n
	}
	return ns
}

func (ns *Nodes) Len() int { return len(ns.order) }

// Get returns the snapshot of one host.
func (ns *Nodes) Get(id string) (Node, bool) {
	n, ok := ns.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// All returns the hosts in placement order.
func (ns *Nodes) All() []Node {
	out := make([]Node, 0, len(ns.order))
	for _, id := range ns.order {
		out = append(out, *ns.nodes[id])
	}
	return out
}

// FindHost returns the first host, in placement order, whose free capacity covers required.
func (ns *Nodes) FindHost(required float64) (Node, bool) {
	for _, id := range ns.order {
		if n := ns.nodes[id]; n.Free() >= required {
			return *n, true
		}
	}
	return Node{}, false
}

// MostFree returns the host with the most free capacity, first one wins ties.
func (ns *Nodes) MostFree() (Node, bool) {
	var best *Node
	for _, id := range ns.order {
		if n := ns.nodes[id]; best == nil || n.Free() > best.Free() {
			best = n
		}
	}
	if best == nil {
		return Node{}, false
	}
	return *best, true
}

// Reserve debits amount from a host's free capacity inside this snapshot, so
// later placements in the same tick see what earlier dispatches consumed.
func (ns *Nodes) Reserve(id string, amount float64) {
	if n, ok := ns.nodes[id]; ok {
		n.UsedCapacity += amount
	}
}

// TotalCapacity sums MaxCapacity over the snapshot.
func (ns *Nodes) TotalCapacity() float64 {
	total := 0.0
	for _, n := range ns.nodes {
		total += n.MaxCapacity
	}
	return total
}

// Copies returns how many copies of a requirement fit in free capacity.
func (n Node) Copies(required float64) int {
	if required <= 0 {
		return 0
	}
	return int(n.Free() / required)
}
