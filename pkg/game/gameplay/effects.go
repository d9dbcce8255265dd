package gameplay

import (
	"blueprince/pkg/engine/world"
	"blueprince/pkg/game/entities"
	"blueprince/pkg/game/inventory"
	"blueprince/pkg/game/rooms"
	"blueprince/pkg/game/state"
	gameworld "blueprince/pkg/game/world"
)

// ApplyEnterEffects runs the entry effect of the room in the cell. Effects
// fire on every entry; the spawn effect refuses to replace an unopened object.
func ApplyEnterEffects(g *state.Game, cell *world.Cell) {
	b := gameworld.RoomAt(cell)
	if b == nil {
		return
	}

	if b.OnEnter == nil {
		logMessage(g, "Entered the ROOM{%s}.", b.Name)
		return
	}

	eff := b.OnEnter
	switch eff.Type {
	case rooms.EnterStart:
		logMessage(g, "Back at the ROOM{%s}.", b.Name)

	case rooms.EnterGoal:
		g.Finish(state.OutcomeWin, "You reached the Antechamber! You win!")
		logMessage(g, "GT{You reached the Antechamber! You win!}")

	case rooms.EnterCoins:
		g.Inventory.Add(inventory.Coins, eff.Amount)
		logMessage(g, "Found ITEM{%d coins}!", eff.Amount)

	case rooms.EnterFood:
		g.Inventory.Add(inventory.Steps, eff.Amount)
		logMessage(g, "You eat well and regain ITEM{%d steps}.", eff.Amount)

	case rooms.EnterMaybeGem:
		if g.Rng.Float64() < eff.Chance {
			g.Inventory.Add(inventory.Gems, 1)
			logMessage(g, "Something glitters in the ROOM{%s}: a ITEM{gem}!", b.Name)
		} else {
			logMessage(g, "Entered the ROOM{%s}.", b.Name)
		}

	case rooms.EnterSpawn:
		spawnObject(g, cell, eff.Spawn)

	default:
		logMessage(g, "Entered the ROOM{%s}.", b.Name)
	}
}

// spawnObject places an interactable in the cell unless an unopened one is
// already waiting there.
func spawnObject(g *state.Game, cell *world.Cell, id string) {
	if gameworld.HasUnopenedObject(cell) {
		return
	}

	obj := entities.Spawn(id)
	if obj == nil {
		return
	}

	gameworld.GetGameData(cell).Object = obj
	logMessage(g, "You found a %s! Press ACTION{e} to interact.", obj.Name())
}

// ApplyDrawEffects runs the draw effect of a freshly drafted room.
func ApplyDrawEffects(g *state.Game, b *rooms.Blueprint) {
	if b.OnDraw == nil {
		return
	}

	switch b.OnDraw.Type {
	case rooms.DrawGemAlways:
		g.Inventory.Add(inventory.Gems, 1)
		logMessage(g, "You drew the ROOM{%s} and found a ITEM{gem}!", b.Name)

	case rooms.DrawGreenRooms:
		greens := greenRooms(g.Catalog)
		for i := 0; i < 2 && len(greens) > 0; i++ {
			g.Deck.AddCopies(greens[g.Rng.Intn(len(greens))], 1)
		}
		logMessage(g, "The ROOM{%s} draws the garden closer: more green rooms in the deck.", b.Name)

	case rooms.DrawRabbitsFoot:
		g.Inventory.Grant(inventory.RabbitsFoot)
		logMessage(g, "The maid slips you a ITEM{rabbit's foot}. Lucky finds ahead.")

	case rooms.DrawFurnaceCopies:
		if furnace := g.Catalog.ByName(rooms.NameFurnace); furnace != nil {
			g.Deck.AddCopies(furnace, 2)
		}
		logMessage(g, "The ROOM{%s} stokes the deck with more furnaces.", b.Name)
	}
}

func greenRooms(catalog *rooms.Catalog) []*rooms.Blueprint {
	var greens []*rooms.Blueprint
	for _, b := range catalog.Rooms {
		if b.Color == rooms.ColorGreen {
			greens = append(greens, b)
		}
	}
	return greens
}

// Random find odds on room entry.
const (
	baseFindChance         = 0.08
	rabbitsFootFindBonus   = 0.05
	metalDetectorWeighting = 2
)

// rollRandomFind gives the player a small chance of stumbling on a resource
// after entering any room. The rabbit's foot raises the chance; the metal
// detector weights the roll toward coins and keys.
func rollRandomFind(g *state.Game) {
	chance := baseFindChance
	if g.Inventory.HasTool(inventory.RabbitsFoot) {
		chance += rabbitsFootFindBonus
	}

	if g.Rng.Float64() >= chance {
		return
	}

	type find struct {
		resource inventory.Resource
		amount   int
		weight   int
		text     string
	}

	metallic := 1
	if g.Inventory.HasTool(inventory.MetalDetector) {
		metallic = metalDetectorWeighting
	}

	finds := []find{
		{inventory.Gems, 1, 1, "Found a ITEM{gem}."},
		{inventory.Keys, 1, metallic, "Found a ITEM{key}."},
		{inventory.Dice, 1, 1, "Found a ITEM{die}."},
		{inventory.Coins, 5, metallic, "Found some ITEM{coins}."},
		{inventory.Steps, 3, 1, "Found ITEM{3 steps} worth of snacks."},
	}

	total := 0
	for _, f := range finds {
		total += f.weight
	}

	roll := g.Rng.Intn(total)
	for _, f := range finds {
		roll -= f.weight
		if roll < 0 {
			g.Inventory.Add(f.resource, f.amount)
			logMessage(g, "%s", f.text)
			return
		}
	}
}
