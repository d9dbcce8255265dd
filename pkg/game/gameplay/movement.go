// Package gameplay provides the core game logic: movement, drafting,
// placement, effects and the win/lose rules.
package gameplay

import (
	"blueprince/pkg/engine/world"
	"blueprince/pkg/game/inventory"
	"blueprince/pkg/game/renderer"
	"blueprince/pkg/game/state"
	gameworld "blueprince/pkg/game/world"
)

// TryMove attempts to move the player one cell in the given direction.
// Moving into a placed room walks through the connecting door; moving toward
// an empty cell opens a draft instead.
func TryMove(g *state.Game, dir world.Direction) {
	if g.CurrentCell == nil {
		return
	}

	target := g.Grid.GetCellRelative(g.CurrentCell, dir)
	if target == nil {
		logMessage(g, "The outer wall blocks the way.")
		return
	}

	if !gameworld.HasRoom(target) {
		BeginDraft(g, target, dir)
		return
	}

	current := gameworld.RoomAt(g.CurrentCell)
	next := gameworld.RoomAt(target)
	if !current.Ports.Has(dir) || !next.Ports.Has(dir.Opposite()) {
		logMessage(g, "There is no doorway on that side.")
		return
	}

	if g.Inventory.Count(inventory.Steps) <= 0 {
		logMessage(g, "No steps left! You can't move.")
		return
	}

	if !openDoor(g, target, dir) {
		return
	}

	g.Inventory.Spend(inventory.Steps, 1)
	EnterCell(g, target)
}

// openDoor checks the lock on the door between the player's cell and the
// target. A level 1 lock opens free with the lockpick kit; otherwise any lock
// consumes a key. Unlocking zeroes the lock on both sides.
func openDoor(g *state.Game, target *world.Cell, dir world.Direction) bool {
	level := gameworld.LockLevel(g.CurrentCell, dir)
	if level == 0 {
		return true
	}

	switch {
	case level == 1 && g.Inventory.HasTool(inventory.LockpickKit):
		logMessage(g, "Your ITEM{lockpick kit} makes short work of the lock.")
	case g.Inventory.Spend(inventory.Keys, 1):
		logMessage(g, "You turn a ITEM{key} in the lock.")
	default:
		if level >= 2 {
			logMessage(g, "A heavy lock bars the door. You need a ITEM{key}.")
		} else {
			logMessage(g, "The door is locked. You need a ITEM{key} or a ITEM{lockpick kit}.")
		}
		return false
	}

	gameworld.SetLock(g.CurrentCell, dir, 0)
	gameworld.SetLock(target, dir.Opposite(), 0)
	return true
}

// EnterCell puts the player into a placed room and applies its entry effects.
func EnterCell(g *state.Game, cell *world.Cell) {
	cell.Visited = true
	g.CurrentCell = cell

	ApplyEnterEffects(g, cell)

	if g.Running() {
		rollRandomFind(g)
	}
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(renderer.ApplyMarkup(msg, a...))
}
