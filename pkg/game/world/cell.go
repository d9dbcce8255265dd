// Package world provides game-specific world extensions for the mansion.
// It extends the generic engine/world primitives with placed rooms, door
// locks and spawned objects.
package world

import (
	"blueprince/pkg/engine/world"
	"blueprince/pkg/game/entities"
	"blueprince/pkg/game/rooms"
)

// GameCellData holds game-specific state for a cell.
// This is stored in the engine Cell's GameData field.
type GameCellData struct {
	// Blueprint is the room placed in this cell, nil while the cell is empty.
	Blueprint *rooms.Blueprint

	// Locks holds the lock level (0, 1 or 2) of the door on each side of
	// this room. Locks are mirrored: the neighbouring cell stores the same
	// level for the opposite direction.
	Locks map[world.Direction]int

	// Object is the interactable spawned in this room, if any.
	Object entities.Interactable
}

// InitGameData initializes game data for a cell if not already set
func InitGameData(cell *world.Cell) *GameCellData {
	if cell.GameData == nil {
		cell.GameData = &GameCellData{
			Locks: make(map[world.Direction]int),
		}
	}
	return cell.GameData.(*GameCellData)
}

// GetGameData retrieves game data from a cell, initializing if needed
func GetGameData(cell *world.Cell) *GameCellData {
	return InitGameData(cell)
}

// PlaceRoom puts a blueprint into the cell and marks it as a room.
func PlaceRoom(cell *world.Cell, b *rooms.Blueprint) {
	data := GetGameData(cell)
	data.Blueprint = b
	cell.Room = true
}

// RoomAt returns the blueprint placed in the cell, or nil.
func RoomAt(cell *world.Cell) *rooms.Blueprint {
	if cell == nil {
		return nil
	}
	return GetGameData(cell).Blueprint
}

// HasRoom returns true if a room has been placed in this cell
func HasRoom(cell *world.Cell) bool {
	return RoomAt(cell) != nil
}

// LockLevel returns the lock level of the door on the given side of the cell.
func LockLevel(cell *world.Cell, dir world.Direction) int {
	return GetGameData(cell).Locks[dir]
}

// SetLock records a lock level on one side of the cell.
func SetLock(cell *world.Cell, dir world.Direction, level int) {
	GetGameData(cell).Locks[dir] = level
}

// HasObject returns true if this cell contains an interactable
func HasObject(cell *world.Cell) bool {
	return GetGameData(cell).Object != nil
}

// HasUnopenedObject returns true if this cell has an interactable that has not been opened
func HasUnopenedObject(cell *world.Cell) bool {
	data := GetGameData(cell)
	return data.Object != nil && !data.Object.Opened()
}

// HasOpenedObject returns true if this cell has an interactable that has been opened
func HasOpenedObject(cell *world.Cell) bool {
	data := GetGameData(cell)
	return data.Object != nil && data.Object.Opened()
}
