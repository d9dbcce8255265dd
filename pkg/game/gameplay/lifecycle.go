package gameplay

import (
	"blueprince/pkg/engine/world"
	"blueprince/pkg/game/deck"
	"blueprince/pkg/game/inventory"
	"blueprince/pkg/game/rooms"
	"blueprince/pkg/game/state"
	gameworld "blueprince/pkg/game/world"
)

// Board dimensions.
const (
	BoardRows = 9
	BoardCols = 5
)

// BuildGame assembles a fresh run: the board, the deck, and the player
// standing in the pre-placed Entrance Hall at the bottom-middle cell.
func BuildGame(seed int64, catalog *rooms.Catalog) *state.Game {
	g := state.NewGame(seed)
	g.Catalog = catalog
	g.Deck = deck.New(catalog, g.Rng)

	g.Grid = world.NewGrid(BoardRows, BoardCols)
	g.Grid.BuildAllCellConnections()

	startRow, startCol := BoardRows-1, BoardCols/2
	start := g.Grid.GetCell(startRow, startCol)
	gameworld.PlaceRoom(start, catalog.ByName(rooms.NameEntranceHall))
	g.Grid.SetStartCellAt(startRow, startCol)

	// The first entry is free: no step is spent walking through the gates.
	EnterCell(g, start)

	return g
}

// CheckEndConditions ends the run when the player is out of steps or out of
// legal moves. A win recorded earlier in the same turn sticks.
func CheckEndConditions(g *state.Game) {
	if !g.Running() {
		return
	}

	if g.Inventory.Count(inventory.Steps) <= 0 {
		g.Finish(state.OutcomeLoss, "You collapse, out of steps. The mansion keeps its secret.")
		logMessage(g, "GT{Out of steps. The run is over.}")
		return
	}

	if g.Drafting() {
		// An open draft is itself a legal move.
		return
	}

	if !HasLegalMove(g) {
		g.Finish(state.OutcomeLoss, "No door you can open, no room you can build. The mansion wins.")
		logMessage(g, "GT{No legal moves remain. The run is over.}")
	}
}

// HasLegalMove reports whether the player can still do anything: walk through
// an adjacent door they can open, or draft some affordable room into an
// adjacent empty cell.
func HasLegalMove(g *state.Game) bool {
	if g.CurrentCell == nil {
		return false
	}

	keys := g.Inventory.Count(inventory.Keys)
	gems := g.Inventory.Count(inventory.Gems)
	hasKit := g.Inventory.HasTool(inventory.LockpickKit)
	current := gameworld.RoomAt(g.CurrentCell)

	for _, dir := range world.AllDirections() {
		target := g.Grid.GetCellRelative(g.CurrentCell, dir)
		if target == nil {
			continue
		}

		if placed := gameworld.RoomAt(target); placed != nil {
			if !current.Ports.Has(dir) || !placed.Ports.Has(dir.Opposite()) {
				continue
			}
			lock := gameworld.LockLevel(g.CurrentCell, dir)
			switch {
			case lock == 0:
				return true
			case lock == 1 && (hasKit || keys > 0):
				return true
			case lock == 2 && keys > 0:
				return true
			}
			continue
		}

		for _, b := range g.Deck.Cards() {
			if !CanPlace(g, b, target.Row, target.Col, dir) {
				continue
			}
			if b.GemCost == 0 || b.GemCost <= gems {
				return true
			}
		}
	}

	return false
}
