package gameplay

import (
	"testing"

	"blueprince/pkg/engine/world"
	"blueprince/pkg/game/rooms"
	gameworld "blueprince/pkg/game/world"
)

func TestCanPlace(t *testing.T) {
	t.Run("needs a doorway facing back toward the player", func(t *testing.T) {
		g := bareGame(t, 1)
		vault := g.Catalog.ByName("Vault") // north/south doorways only

		if !CanPlace(g, vault, 7, 2, world.North) {
			t.Error("vault refused above the entrance despite matching doorways")
		}
		if CanPlace(g, vault, 8, 3, world.East) {
			t.Error("vault accepted with no west doorway toward the player")
		}
	})

	t.Run("out of bounds", func(t *testing.T) {
		g := bareGame(t, 1)
		empty := g.Catalog.ByName("Empty")

		if CanPlace(g, empty, -1, 2, world.North) {
			t.Error("placement accepted above the board")
		}
		if CanPlace(g, empty, 4, BoardCols, world.East) {
			t.Error("placement accepted past the right edge")
		}
	})

	t.Run("edge rooms only fit border cells", func(t *testing.T) {
		g := bareGame(t, 1)
		garden := g.Catalog.ByName("Garden")

		if CanPlace(g, garden, 4, 2, world.North) {
			t.Error("edge room accepted in the board interior")
		}
		// On the border its off-board doorways are sealed by the outer wall.
		if !CanPlace(g, garden, 8, 4, world.East) {
			t.Error("edge room refused on a border cell")
		}
	})

	t.Run("doorways must agree with placed neighbours", func(t *testing.T) {
		g := bareGame(t, 1)
		placeAt(t, g, 7, 2, "Vault")
		empty := g.Catalog.ByName("Empty")
		vault := g.Catalog.ByName("Vault")

		// Empty has a west doorway but the vault's east side is solid wall.
		if CanPlace(g, empty, 7, 3, world.East) {
			t.Error("doorway-into-wall placement accepted")
		}
		// A second vault stacks: its south doorway meets the first one's north.
		if !CanPlace(g, vault, 6, 2, world.North) {
			t.Error("matching doorways refused")
		}
	})
}

func TestLockLevelBoundaryRows(t *testing.T) {
	g := bareGame(t, 3)

	for i := 0; i < 50; i++ {
		if got := lockLevelForRow(g, BoardRows-1); got != 0 {
			t.Fatalf("bottom row lock = %d, want 0", got)
		}
		if got := lockLevelForRow(g, 0); got != 2 {
			t.Fatalf("top row lock = %d, want 2", got)
		}
		if got := lockLevelForRow(g, 4); got < 0 || got > 2 {
			t.Fatalf("middle row lock = %d, want 0..2", got)
		}
	}
}

func TestPlaceRoomLocksEntryDoor(t *testing.T) {
	g := bareGame(t, 1)

	// Standing one row under the top edge, where a new room is always
	// heavily locked.
	from := g.Grid.GetCell(1, 2)
	g.CurrentCell = from
	target := g.Grid.GetCell(0, 2)

	placeRoom(g, g.Catalog.ByName("Vault"), target, world.North)

	if gameworld.RoomAt(target) == nil {
		t.Fatal("room not placed")
	}
	if got := g.RoomsPlaced; got != 1 {
		t.Errorf("rooms placed = %d, want 1", got)
	}
	if got := gameworld.LockLevel(from, world.North); got != 2 {
		t.Errorf("near-side lock = %d, want 2", got)
	}
	if got := gameworld.LockLevel(target, world.South); got != 2 {
		t.Errorf("far-side lock = %d, want 2", got)
	}
}

func TestPlaceRoomMarksGoal(t *testing.T) {
	g := bareGame(t, 1)
	g.CurrentCell = g.Grid.GetCell(1, 2)
	target := g.Grid.GetCell(0, 2)

	placeRoom(g, g.Catalog.ByName(rooms.NameAntechamber), target, world.North)

	if !target.ExitCell {
		t.Error("goal room placed without marking the exit cell")
	}
}
