package entities

import (
	"fmt"
	"math/rand"

	"blueprince/pkg/game/inventory"
)

// Locker only opens with a key (consumed). The hammer is no use against it.
type Locker struct {
	opened bool
}

var lockerLoot = []lootDrop{
	{inventory.Keys, 1, 0.60},
	{inventory.Coins, 10, 0.30},
}

func (l *Locker) Name() string {
	return "locker"
}

func (l *Locker) Symbol() string {
	return "▯"
}

func (l *Locker) Opened() bool {
	return l.opened
}

func (l *Locker) Open(inv *inventory.Inventory, rng *rand.Rand) string {
	if l.opened {
		return "The locker is empty."
	}

	if !inv.Spend(inventory.Keys, 1) {
		return "The locker is locked. You need a key."
	}

	l.opened = true
	awards := rollLoot(rng, lockerLoot)
	applyAwards(inv, awards)
	return fmt.Sprintf("You unlock the locker and find %s.", awardText(awards))
}
