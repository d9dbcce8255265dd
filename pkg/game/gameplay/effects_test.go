package gameplay

import (
	"testing"

	"blueprince/pkg/game/inventory"
	"blueprince/pkg/game/rooms"
	gameworld "blueprince/pkg/game/world"
)

func TestEnterEffects(t *testing.T) {
	t.Run("coins", func(t *testing.T) {
		g := bareGame(t, 1)
		cell := placeAt(t, g, 7, 2, "Vault")

		ApplyEnterEffects(g, cell)

		if got := g.Inventory.Count(inventory.Coins); got != 40 {
			t.Errorf("coins = %d, want 40", got)
		}
	})

	t.Run("food restores steps", func(t *testing.T) {
		g := bareGame(t, 1)
		cell := placeAt(t, g, 7, 2, "Bedroom")

		ApplyEnterEffects(g, cell)

		if got := g.Inventory.Count(inventory.Steps); got != inventory.StartingSteps+10 {
			t.Errorf("steps = %d, want %d", got, inventory.StartingSteps+10)
		}
	})

	t.Run("goal wins the run", func(t *testing.T) {
		g := bareGame(t, 1)
		cell := placeAt(t, g, 7, 2, rooms.NameAntechamber)

		ApplyEnterEffects(g, cell)

		if g.Running() {
			t.Error("run still going after entering the goal")
		}
		if got := g.Outcome.String(); got != "win" {
			t.Errorf("outcome = %q, want %q", got, "win")
		}
	})

	t.Run("effects fire on every entry", func(t *testing.T) {
		g := bareGame(t, 1)
		cell := placeAt(t, g, 7, 2, "Vault")

		ApplyEnterEffects(g, cell)
		ApplyEnterEffects(g, cell)

		if got := g.Inventory.Count(inventory.Coins); got != 80 {
			t.Errorf("coins = %d after two entries, want 80", got)
		}
	})

	t.Run("maybe_gem pays out roughly half the time", func(t *testing.T) {
		g := bareGame(t, 5)
		cell := placeAt(t, g, 7, 2, "Garden")

		before := g.Inventory.Count(inventory.Gems)
		for i := 0; i < 200; i++ {
			ApplyEnterEffects(g, cell)
		}
		payouts := g.Inventory.Count(inventory.Gems) - before

		if payouts < 60 || payouts > 140 {
			t.Errorf("gem payouts = %d of 200, want around 100", payouts)
		}
	})
}

func TestSpawnKeepsUnopenedObject(t *testing.T) {
	g := bareGame(t, 1)
	cell := placeAt(t, g, 7, 2, "Storage")

	ApplyEnterEffects(g, cell)
	first := gameworld.GetGameData(cell).Object
	if first == nil {
		t.Fatal("no object spawned")
	}
	if first.Opened() {
		t.Fatal("object spawned already opened")
	}

	ApplyEnterEffects(g, cell)
	if gameworld.GetGameData(cell).Object != first {
		t.Fatal("unopened object replaced on re-entry")
	}

	// Once opened, the next entry spawns a fresh one.
	g.Inventory.Grant(inventory.Hammer)
	g.CurrentCell = cell
	Interact(g)
	if !first.Opened() {
		t.Fatal("hammer did not open the chest")
	}

	ApplyEnterEffects(g, cell)
	second := gameworld.GetGameData(cell).Object
	if second == first {
		t.Error("opened object not replaced on re-entry")
	}
	if second == nil || second.Opened() {
		t.Error("replacement object missing or already opened")
	}
}

func TestInteractWithNothing(t *testing.T) {
	g := bareGame(t, 1)
	before := len(g.Messages)

	Interact(g)

	if len(g.Messages) == before {
		t.Error("interacting with an empty room said nothing")
	}
}

func TestDrawEffects(t *testing.T) {
	t.Run("gem on draw", func(t *testing.T) {
		g := bareGame(t, 1)

		ApplyDrawEffects(g, g.Catalog.ByName("Den"))

		if got := g.Inventory.Count(inventory.Gems); got != inventory.StartingGems+1 {
			t.Errorf("gems = %d, want %d", got, inventory.StartingGems+1)
		}
	})

	t.Run("green rooms join the deck", func(t *testing.T) {
		g := bareGame(t, 1)
		before := g.Deck.Size()

		ApplyDrawEffects(g, g.Catalog.ByName("Veranda"))

		if got := g.Deck.Size(); got != before+2 {
			t.Errorf("deck size = %d, want %d", got, before+2)
		}
	})

	t.Run("rabbit's foot granted", func(t *testing.T) {
		g := bareGame(t, 1)

		ApplyDrawEffects(g, g.Catalog.ByName("Maid's Chamber"))

		if !g.Inventory.HasTool(inventory.RabbitsFoot) {
			t.Error("rabbit's foot not granted")
		}
	})

	t.Run("furnace copies added", func(t *testing.T) {
		g := bareGame(t, 1)
		before := g.Deck.Count(rooms.NameFurnace)

		ApplyDrawEffects(g, g.Catalog.ByName(rooms.NameFurnace))

		if got := g.Deck.Count(rooms.NameFurnace); got != before+2 {
			t.Errorf("furnace copies = %d, want %d", got, before+2)
		}
	})
}

func TestRandomFindRate(t *testing.T) {
	g := bareGame(t, 11)

	coins := g.Inventory.Count(inventory.Coins)
	steps := g.Inventory.Count(inventory.Steps)
	gems := g.Inventory.Count(inventory.Gems)
	keys := g.Inventory.Count(inventory.Keys)
	dice := g.Inventory.Count(inventory.Dice)

	const trials = 5000
	for i := 0; i < trials; i++ {
		rollRandomFind(g)
	}

	// Every find grants exactly one bundle: 1 gem, 1 key, 1 die, 5 coins or
	// 3 steps. Recover the find count from the inventory deltas.
	finds := (g.Inventory.Count(inventory.Gems) - gems) +
		(g.Inventory.Count(inventory.Keys) - keys) +
		(g.Inventory.Count(inventory.Dice) - dice) +
		(g.Inventory.Count(inventory.Coins)-coins)/5 +
		(g.Inventory.Count(inventory.Steps)-steps)/3

	if finds < 250 || finds > 600 {
		t.Errorf("finds = %d of %d, want around %d", finds, trials, int(float64(trials)*baseFindChance))
	}
}
