package gameplay

import (
	"testing"

	"blueprince/pkg/engine/world"
	"blueprince/pkg/game/inventory"
	"blueprince/pkg/game/rooms"
	"blueprince/pkg/game/state"
	gameworld "blueprince/pkg/game/world"
)

func TestBuildGame(t *testing.T) {
	catalog, err := rooms.Load("")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	g := BuildGame(7, catalog)

	if msg := g.Grid.Validate(); msg != "" {
		t.Fatalf("grid invalid: %s", msg)
	}
	if g.CurrentCell == nil || g.CurrentCell.Row != BoardRows-1 || g.CurrentCell.Col != BoardCols/2 {
		t.Fatalf("player not in the bottom-middle cell")
	}
	if b := gameworld.RoomAt(g.CurrentCell); b == nil || b.Name != rooms.NameEntranceHall {
		t.Error("Entrance Hall not pre-placed under the player")
	}
	if !g.CurrentCell.Visited {
		t.Error("start cell not marked visited")
	}
	if got := g.Deck.Count(rooms.NameEntranceHall); got != 0 {
		t.Errorf("Entrance Hall copies in deck = %d, want 0", got)
	}
	if !g.Running() {
		t.Error("fresh run not running")
	}
	// The first entry is free; a lucky find may even add steps.
	if got := g.Inventory.Count(inventory.Steps); got < inventory.StartingSteps {
		t.Errorf("steps = %d, want at least %d", got, inventory.StartingSteps)
	}
}

func TestSeededRunsAreReproducible(t *testing.T) {
	catalog, err := rooms.Load("")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	a := BuildGame(42, catalog)
	b := BuildGame(42, catalog)
	TryMove(a, world.North)
	TryMove(b, world.North)

	if !a.Drafting() || !b.Drafting() {
		t.Fatal("draft did not open")
	}
	if len(a.Draft.Candidates) != len(b.Draft.Candidates) {
		t.Fatalf("candidate counts differ: %d vs %d", len(a.Draft.Candidates), len(b.Draft.Candidates))
	}
	for i := range a.Draft.Candidates {
		if a.Draft.Candidates[i].Name != b.Draft.Candidates[i].Name {
			t.Errorf("candidate %d differs: %q vs %q", i, a.Draft.Candidates[i].Name, b.Draft.Candidates[i].Name)
		}
	}
}

func TestLoseWhenOutOfSteps(t *testing.T) {
	g := bareGame(t, 1)
	g.Inventory.Spend(inventory.Steps, inventory.StartingSteps)

	CheckEndConditions(g)

	if g.Running() {
		t.Fatal("run still going with no steps")
	}
	if got := g.Outcome; got != state.OutcomeLoss {
		t.Errorf("outcome = %v, want loss", got)
	}
}

func TestHasLegalMoveFreshStart(t *testing.T) {
	g := bareGame(t, 1)

	if !HasLegalMove(g) {
		t.Error("fresh start reported no legal move")
	}
}

func TestStalemate(t *testing.T) {
	g := bareGame(t, 1)

	// The only doorway out of the Entrance Hall faces north. Put a heavily
	// locked room there and keep no keys: nothing is left to do.
	north := placeAt(t, g, 7, 2, "Vault")
	gameworld.SetLock(g.CurrentCell, world.North, 2)
	gameworld.SetLock(north, world.South, 2)

	if HasLegalMove(g) {
		t.Fatal("legal move reported in a stalemate")
	}

	CheckEndConditions(g)
	if got := g.Outcome; got != state.OutcomeLoss {
		t.Errorf("outcome = %v, want loss", got)
	}
}

func TestKeyBreaksStalemate(t *testing.T) {
	g := bareGame(t, 1)
	north := placeAt(t, g, 7, 2, "Vault")
	gameworld.SetLock(g.CurrentCell, world.North, 2)
	gameworld.SetLock(north, world.South, 2)

	g.Inventory.Add(inventory.Keys, 1)

	if !HasLegalMove(g) {
		t.Error("a key in hand should make the locked door a legal move")
	}
}

func TestOpenDraftCountsAsLegalMove(t *testing.T) {
	g := bareGame(t, 1)
	north := placeAt(t, g, 7, 2, "Vault")
	gameworld.SetLock(g.CurrentCell, world.North, 2)
	gameworld.SetLock(north, world.South, 2)

	g.Draft = &state.Draft{Candidates: []*rooms.Blueprint{g.Catalog.ByName("Empty")}}

	CheckEndConditions(g)
	if !g.Running() {
		t.Error("run ended while a draft was open")
	}
}

func TestWinSticksOverLoss(t *testing.T) {
	g := bareGame(t, 1)
	g.Finish(state.OutcomeWin, "You reached the Antechamber! You win!")
	g.Inventory.Spend(inventory.Steps, inventory.StartingSteps)

	CheckEndConditions(g)

	if got := g.Outcome; got != state.OutcomeWin {
		t.Errorf("outcome = %v, want win to stick", got)
	}
}
