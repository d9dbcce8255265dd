package entities

import (
	"fmt"
	"math/rand"

	"blueprince/pkg/game/inventory"
)

// Chest opens with a key (consumed) or the hammer (kept).
type Chest struct {
	opened bool
}

var chestLoot = []lootDrop{
	{inventory.Gems, 1, 0.35},
	{inventory.Keys, 1, 0.40},
	{inventory.Coins, 15, 0.50},
}

func (c *Chest) Name() string {
	return "chest"
}

func (c *Chest) Symbol() string {
	return "□"
}

func (c *Chest) Opened() bool {
	return c.opened
}

func (c *Chest) Open(inv *inventory.Inventory, rng *rand.Rand) string {
	if c.opened {
		return "The chest is empty."
	}

	if inv.HasTool(inventory.Hammer) {
		return c.loot(inv, rng, "You smash the chest open")
	}

	if inv.Spend(inventory.Keys, 1) {
		return c.loot(inv, rng, "You unlock the chest")
	}

	return "The chest is locked. You need a key or a hammer."
}

func (c *Chest) loot(inv *inventory.Inventory, rng *rand.Rand, how string) string {
	c.opened = true
	awards := rollLoot(rng, chestLoot)
	applyAwards(inv, awards)
	return fmt.Sprintf("%s and find %s.", how, awardText(awards))
}
