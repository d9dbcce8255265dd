// Package entities defines the objects rooms can spawn: containers the
// player opens with the interact key.
package entities

import (
	"math/rand"

	"blueprince/pkg/game/inventory"
)

// Interactable is an object sitting in a room. Each one can be opened at
// most once; further interactions report it as empty.
type Interactable interface {
	// Name is the display name ("chest", "locker", "dig site").
	Name() string

	// Symbol is the single-character board badge.
	Symbol() string

	// Opened reports whether the object has already been opened.
	Opened() bool

	// Open attempts to open the object, spending requirements from and
	// crediting loot to the inventory. The returned message describes the
	// outcome and is always non-empty.
	Open(inv *inventory.Inventory, rng *rand.Rand) string
}

// Spawn creates an interactable by its spawn id. Returns nil for unknown ids.
func Spawn(id string) Interactable {
	switch id {
	case "chest":
		return &Chest{}
	case "locker":
		return &Locker{}
	case "dig_site":
		return &DigSite{}
	default:
		return nil
	}
}
