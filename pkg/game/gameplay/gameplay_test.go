package gameplay

import (
	"testing"

	"blueprince/pkg/engine/world"
	"blueprince/pkg/game/deck"
	"blueprince/pkg/game/rooms"
	"blueprince/pkg/game/state"
	gameworld "blueprince/pkg/game/world"
)

// bareGame builds a run without entering the start cell, so tests begin from
// a pristine inventory with no random rolls consumed.
func bareGame(t *testing.T, seed int64) *state.Game {
	t.Helper()

	catalog, err := rooms.Load("")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	g := state.NewGame(seed)
	g.Catalog = catalog
	g.Deck = deck.New(catalog, g.Rng)
	g.Grid = world.NewGrid(BoardRows, BoardCols)
	g.Grid.BuildAllCellConnections()

	start := g.Grid.GetCell(BoardRows-1, BoardCols/2)
	gameworld.PlaceRoom(start, catalog.ByName(rooms.NameEntranceHall))
	g.Grid.SetStartCellAt(start.Row, start.Col)
	start.Visited = true
	g.CurrentCell = start

	return g
}

// placeAt puts a catalog room into a cell directly, bypassing the draft.
func placeAt(t *testing.T, g *state.Game, row, col int, name string) *world.Cell {
	t.Helper()

	b := g.Catalog.ByName(name)
	if b == nil {
		t.Fatalf("no blueprint named %q", name)
	}

	cell := g.Grid.GetCell(row, col)
	if cell == nil {
		t.Fatalf("no cell at %v,%v", row, col)
	}

	gameworld.PlaceRoom(cell, b)
	return cell
}
