// Package rooms defines the room blueprints the draw pile is built from.
package rooms

import (
	"blueprince/pkg/engine/world"
)

// Room colours. Unknown colours fall back to a grey swatch in the asset layer.
const (
	ColorBlue   = "blue"
	ColorGreen  = "green"
	ColorPurple = "purple"
	ColorOrange = "orange"
)

// Placement conditions.
const (
	PlacementAnywhere = ""
	PlacementEdge     = "edge" // only placeable on the outer border of the board
)

// Entry effect types.
const (
	EnterStart    = "start"     // first room of the run
	EnterGoal     = "goal"      // entering wins the run
	EnterCoins    = "coins"     // grants Amount coins
	EnterFood     = "food"      // grants Amount steps
	EnterMaybeGem = "maybe_gem" // grants one gem with probability Chance
	EnterSpawn    = "spawn"     // places the Spawn interactable in the cell
)

// Draw effect types, applied once when the room is drafted.
const (
	DrawGemAlways     = "gem_always"     // grants one gem
	DrawGreenRooms    = "green_rooms"    // shuffles extra green room copies into the deck
	DrawRabbitsFoot   = "rabbits_foot"   // grants the rabbit's foot
	DrawFurnaceCopies = "furnace_copies" // shuffles extra Furnace copies into the deck
)

// Spawnable interactables.
const (
	SpawnChest   = "chest"
	SpawnLocker  = "locker"
	SpawnDigSite = "dig_site"
)

// Well-known room names.
const (
	NameEntranceHall = "Entrance Hall"
	NameAntechamber  = "Antechamber"
	NameFurnace      = "Furnace"
)

// Ports describes which sides of a room have a doorway.
type Ports struct {
	North bool `yaml:"north,omitempty"`
	East  bool `yaml:"east,omitempty"`
	South bool `yaml:"south,omitempty"`
	West  bool `yaml:"west,omitempty"`
}

// Has returns true if the room has a doorway on the given side.
func (p Ports) Has(dir world.Direction) bool {
	switch dir {
	case world.North:
		return p.North
	case world.East:
		return p.East
	case world.South:
		return p.South
	case world.West:
		return p.West
	default:
		return false
	}
}

// Count returns the number of doorways.
func (p Ports) Count() int {
	n := 0
	for _, dir := range world.AllDirections() {
		if p.Has(dir) {
			n++
		}
	}
	return n
}

// Effect describes an entry or draw effect. Which fields are meaningful
// depends on Type.
type Effect struct {
	Type   string  `yaml:"type"`
	Amount int     `yaml:"amount,omitempty"`
	Chance float64 `yaml:"chance,omitempty"`
	Spawn  string  `yaml:"spawn,omitempty"`
}

// Blueprint is an immutable room definition. The deck holds shared pointers
// to catalog blueprints, so a Blueprint must never be mutated after load.
type Blueprint struct {
	Name      string  `yaml:"name"`
	Image     string  `yaml:"image"`
	Color     string  `yaml:"color"`
	GemCost   int     `yaml:"gem_cost,omitempty"`
	Rarity    int     `yaml:"rarity,omitempty"`
	Placement string  `yaml:"placement,omitempty"`
	Ports     Ports   `yaml:"ports"`
	OnEnter   *Effect `yaml:"on_enter,omitempty"`
	OnDraw    *Effect `yaml:"on_draw,omitempty"`
}

// DrawWeight returns the sampling weight of this room: 1/3^rarity.
func (b *Blueprint) DrawWeight() float64 {
	w := 1.0
	for i := 0; i < b.Rarity; i++ {
		w /= 3.0
	}
	return w
}

// EdgeOnly returns true if the room may only be placed on border cells.
func (b *Blueprint) EdgeOnly() bool {
	return b.Placement == PlacementEdge
}

// IsGoal returns true if entering this room wins the run.
func (b *Blueprint) IsGoal() bool {
	return b.OnEnter != nil && b.OnEnter.Type == EnterGoal
}
