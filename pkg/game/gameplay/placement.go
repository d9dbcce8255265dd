package gameplay

import (
	"blueprince/pkg/engine/world"
	"blueprince/pkg/game/rooms"
	"blueprince/pkg/game/state"
	gameworld "blueprince/pkg/game/world"
)

// CanPlace reports whether a blueprint may fill the cell at row/col when the
// player enters it moving in the entry direction:
//   - the room needs a doorway facing back toward the player,
//   - doorways must agree both ways with every placed neighbour,
//   - edge-restricted rooms only fit border cells.
//
// A doorway facing off-board is allowed: the outer wall seals it.
func CanPlace(g *state.Game, b *rooms.Blueprint, row, col int, entry world.Direction) bool {
	if !g.Grid.IsValidPosition(row, col) {
		return false
	}

	if b.EdgeOnly() && !g.Grid.IsEdgePosition(row, col) {
		return false
	}

	if !b.Ports.Has(entry.Opposite()) {
		return false
	}

	cell := g.Grid.GetCell(row, col)
	for _, dir := range world.AllDirections() {
		neighbor := g.Grid.GetCellRelative(cell, dir)
		if neighbor == nil {
			continue
		}

		placed := gameworld.RoomAt(neighbor)
		if placed == nil {
			continue
		}

		if b.Ports.Has(dir) != placed.Ports.Has(dir.Opposite()) {
			return false
		}
	}

	return true
}

// lockLevelForRow draws the lock level for a door into a room placed on the
// given row. The bottom row is always open and the top row always carries a
// heavy lock; in between, the odds shift linearly toward locked doors the
// higher the room sits.
func lockLevelForRow(g *state.Game, row int) int {
	rows := g.Grid.Rows()
	if rows <= 1 || row == rows-1 {
		return 0
	}
	if row == 0 {
		return 2
	}

	t := float64(rows-1-row) / float64(rows-1)
	p2 := 0.1 + 0.7*t
	p0 := 0.7 - 0.6*t
	p1 := 1.0 - p0 - p2
	if p1 < 0 {
		p1 = 0
	}

	roll := g.Rng.Float64()
	switch {
	case roll < p0:
		return 0
	case roll < p0+p1:
		return 1
	default:
		return 2
	}
}

// placeRoom puts the blueprint into the cell and locks the door the player is
// about to walk through, mirroring the level on both sides.
func placeRoom(g *state.Game, b *rooms.Blueprint, cell *world.Cell, entry world.Direction) {
	gameworld.PlaceRoom(cell, b)
	g.RoomsPlaced++

	if b.IsGoal() {
		g.Grid.SetExitCell(cell)
	}

	level := lockLevelForRow(g, cell.Row)
	gameworld.SetLock(g.CurrentCell, entry, level)
	gameworld.SetLock(cell, entry.Opposite(), level)
}
