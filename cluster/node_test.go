package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/twitter/harvest/env"
)

func TestSnapshotPlacement(t *testing.T) {
	f := fleet{
		"home": {ID: "home", MaxCapacity: 32, UsedCapacity: 4},
		"a":    {ID: "a", MaxCapacity: 8, UsedCapacity: 6},
		"b":    {ID: "b", MaxCapacity: 20},
	}
	ns := Snapshot(f, []string{"home", "a", "b", "a"}, "home", DefaultControlOverhead)
	assert.Equal(t, 3, ns.Len())
	assert.Equal(t, 60.0, ns.TotalCapacity())

	home, _ := ns.Get("home")
	assert.Equal(t, 12.0, home.Free())
	a, _ := ns.Get("a")
	assert.Equal(t, 2.0, a.Free())

	// host order decides ties, and free must cover the requirement exactly or more
	n, ok := ns.FindHost(12)
	assert.True(t, ok)
	assert.Equal(t, "home", n.ID)
	n, _ = ns.FindHost(13)
	assert.Equal(t, "b", n.ID)
	_, ok = ns.FindHost(21)
	assert.False(t, ok)

	n, _ = ns.MostFree()
	assert.Equal(t, "b", n.ID)

	ns.Reserve("b", 15)
	n, _ = ns.MostFree()
	assert.Equal(t, "home", n.ID)
	_, ok = ns.FindHost(13)
	assert.False(t, ok)

	ids := []string{}
	for _, n := range ns.All() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"home", "a", "b"}, ids)
}

func TestNodeFreeAndCopies(t *testing.T) {
	n := Node{ID: "home", MaxCapacity: 16, UsedCapacity: 2, Overhead: DefaultControlOverhead}
	assert.Equal(t, 0.0, n.Free())
	assert.Equal(t, 0, n.Copies(1))

	n = Node{ID: "x", MaxCapacity: 10}
	assert.Equal(t, 5, n.Copies(1.75))
	assert.Equal(t, 0, n.Copies(0))

	_, ok := (&Nodes{}).MostFree()
	assert.False(t, ok)
	_, ok = Snapshot(fleet{}, nil, "", 0).Get("nope")
	assert.False(t, ok)
	var _ env.Inspector = fleet{}
}
