// Package inventory tracks the player's consumable resources and permanent
// tools for a single run.
package inventory

import (
	"github.com/zyedidia/generic/mapset"
)

// Resource is a spendable, countable resource.
type Resource string

const (
	Steps Resource = "steps"
	Coins Resource = "coins"
	Gems  Resource = "gems"
	Keys  Resource = "keys"
	Dice  Resource = "dice"
)

// AllResources returns the resources in display order.
func AllResources() []Resource {
	return []Resource{Steps, Coins, Gems, Keys, Dice}
}

// Tool is a permanent item: once found it is never consumed.
type Tool string

const (
	Shovel        Tool = "shovel"
	Hammer        Tool = "hammer"
	LockpickKit   Tool = "lockpick kit"
	MetalDetector Tool = "metal detector"
	RabbitsFoot   Tool = "rabbit's foot"
)

// AllTools returns the tools in display order.
func AllTools() []Tool {
	return []Tool{Shovel, Hammer, LockpickKit, MetalDetector, RabbitsFoot}
}

// Starting resource counts.
const (
	StartingSteps = 70
	StartingGems  = 2
)

// Inventory holds the run's resources and tools.
type Inventory struct {
	counts map[Resource]int
	tools  mapset.Set[Tool]
}

// New creates a fresh inventory with the starting resources and no tools.
func New() *Inventory {
	return &Inventory{
		counts: map[Resource]int{
			Steps: StartingSteps,
			Coins: 0,
			Gems:  StartingGems,
			Keys:  0,
			Dice:  0,
		},
		tools: mapset.New[Tool](),
	}
}

// Count returns the current amount of a resource.
func (inv *Inventory) Count(r Resource) int {
	return inv.counts[r]
}

// Add increases a resource by n.
func (inv *Inventory) Add(r Resource, n int) {
	inv.counts[r] += n
}

// Spend decreases a resource by n. Returns false, leaving the count
// untouched, when fewer than n are held.
func (inv *Inventory) Spend(r Resource, n int) bool {
	if inv.counts[r] < n {
		return false
	}
	inv.counts[r] -= n
	return true
}

// Grant adds a permanent tool. Granting a tool twice is a no-op.
func (inv *Inventory) Grant(t Tool) {
	inv.tools.Put(t)
}

// HasTool returns true if the tool has been found this run.
func (inv *Inventory) HasTool(t Tool) bool {
	return inv.tools.Has(t)
}

// ToolCount returns the number of tools found.
func (inv *Inventory) ToolCount() int {
	return inv.tools.Size()
}
