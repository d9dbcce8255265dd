package entities

import (
	"fmt"
	"math/rand"

	"blueprince/pkg/game/inventory"
)

// DigSite is a patch of disturbed ground. Digging requires the shovel.
type DigSite struct {
	opened bool
}

var digSiteLoot = []lootDrop{
	{inventory.Coins, 8, 0.50},
	{inventory.Keys, 1, 0.20},
	{inventory.Gems, 1, 0.20},
}

func (d *DigSite) Name() string {
	return "dig site"
}

func (d *DigSite) Symbol() string {
	return "◇"
}

func (d *DigSite) Opened() bool {
	return d.opened
}

func (d *DigSite) Open(inv *inventory.Inventory, rng *rand.Rand) string {
	if d.opened {
		return "Nothing left here but churned earth."
	}

	if !inv.HasTool(inventory.Shovel) {
		return "The ground looks diggable, but you have no shovel."
	}

	d.opened = true
	awards := rollLoot(rng, digSiteLoot)
	applyAwards(inv, awards)
	return fmt.Sprintf("You dig up %s.", awardText(awards))
}
