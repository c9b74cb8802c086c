package memory

import "fmt"

// NodeSpec describes one simulated node. Capacity makes it a host, reserve
// makes it a target; a node can be both.
type NodeSpec struct {
	ID                 string   `yaml:"id" json:"id"`
	Neighbors          []string `yaml:"neighbors" json:"neighbors"`
	MaxCapacity        float64  `yaml:"maxCapacity" json:"maxCapacity"`
	MaxReserve         float64  `yaml:"maxReserve" json:"maxReserve"`
	Reserve            float64  `yaml:"reserve" json:"reserve"`
	Pressure           float64  `yaml:"pressure" json:"pressure"`
	MinPressure        float64  `yaml:"minPressure" json:"minPressure"`
	GrowthRate         float64  `yaml:"growthRate" json:"growthRate"`           // reserve multiplier per raise thread
	ExtractFraction    float64  `yaml:"extractFraction" json:"extractFraction"` // reserve fraction per extract thread
	ExtractTime        string   `yaml:"extractTime" json:"extractTime"`         // extract duration at minimum pressure
	RequiredUnlocks    int      `yaml:"requiredUnlocks" json:"requiredUnlocks"`
	RequiredCapability int      `yaml:"requiredCapability" json:"requiredCapability"`
	Owned              bool     `yaml:"owned" json:"owned"`
}

// FleetSpec is a whole simulated runtime.
type FleetSpec struct {
	Root       string     `yaml:"root" json:"root"`
	Unlocks    int        `yaml:"unlocks" json:"unlocks"`
	Capability int        `yaml:"capability" json:"capability"`
	Nodes      []NodeSpec `yaml:"nodes" json:"nodes"`
}

// DefaultFleet is a small three level network used by the local.memory config:
// the root, a ring of cheap targets and a second level that needs unlocks.
func DefaultFleet() FleetSpec {
	fleet := FleetSpec{Root: "home", Unlocks: 0, Capability: 1}
	fleet.Nodes = append(fleet.Nodes, NodeSpec{ID: "home", MaxCapacity: 64, MinPressure: 1})

	for i := 0; i < 4; i++ {
		id := fmt.Sprintf("n%02d", i)
		fleet.Nodes[0].Neighbors = append(fleet.Nodes[0].Neighbors, id)
		fleet.Nodes = append(fleet.Nodes, NodeSpec{
			ID:                 id,
			MaxCapacity:        float64(16 * (1 + i%3)),
			MaxReserve:         float64(50000 * (i + 1)),
			Reserve:            float64(20000 * (i + 1)),
			Pressure:           float64(5 + i),
			MinPressure:        float64(1 + i),
			GrowthRate:         1.03,
			ExtractFraction:    0.002,
			ExtractTime:        "2s",
			RequiredCapability: 1 + 5*i,
		})
	}
	for i := 0; i < 4; i++ {
		id := fmt.Sprintf("m%02d", i)
		parent := &fleet.Nodes[1+i]
		parent.Neighbors = append(parent.Neighbors, id)
		fleet.Nodes = append(fleet.Nodes, NodeSpec{
			ID:                 id,
			MaxCapacity:        32,
			MaxReserve:         float64(400000 * (i + 1)),
			Reserve:            float64(100000 * (i + 1)),
			Pressure:           float64(15 + i),
			MinPressure:        float64(5 + i),
			GrowthRate:         1.02,
			ExtractFraction:    0.001,
			ExtractTime:        "6s",
			RequiredUnlocks:    1 + i%2,
			RequiredCapability: 10 + 10*i,
		})
	}
	return fleet
}
