package entities

import (
	"fmt"
	"math/rand"
	"strings"

	"blueprince/pkg/game/inventory"
)

// Award is a single resource grant from a loot roll.
type Award struct {
	Resource inventory.Resource
	Amount   int
}

// lootDrop is one independent line of a loot table.
type lootDrop struct {
	resource inventory.Resource
	amount   int
	chance   float64
}

// consolationCoins is granted when every line of a table misses, so opening
// a container always yields something.
const consolationCoins = 5

// rollLoot rolls each line of the table independently. An all-miss roll
// yields the consolation coins instead of nothing.
func rollLoot(rng *rand.Rand, table []lootDrop) []Award {
	var awards []Award
	for _, drop := range table {
		if rng.Float64() < drop.chance {
			awards = append(awards, Award{Resource: drop.resource, Amount: drop.amount})
		}
	}

	if len(awards) == 0 {
		awards = append(awards, Award{Resource: inventory.Coins, Amount: consolationCoins})
	}

	return awards
}

// applyAwards credits every award to the inventory.
func applyAwards(inv *inventory.Inventory, awards []Award) {
	for _, a := range awards {
		inv.Add(a.Resource, a.Amount)
	}
}

// awardText renders awards as a readable list: "a key and 15 coins".
func awardText(awards []Award) string {
	parts := make([]string, 0, len(awards))
	for _, a := range awards {
		switch {
		case a.Resource == inventory.Gems && a.Amount == 1:
			parts = append(parts, "a gem")
		case a.Resource == inventory.Keys && a.Amount == 1:
			parts = append(parts, "a key")
		case a.Resource == inventory.Dice && a.Amount == 1:
			parts = append(parts, "a die")
		default:
			parts = append(parts, fmt.Sprintf("%d %s", a.Amount, a.Resource))
		}
	}

	switch len(parts) {
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
}
