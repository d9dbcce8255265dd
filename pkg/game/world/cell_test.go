package world

import (
	"testing"

	"blueprince/pkg/engine/world"
	"blueprince/pkg/game/entities"
	"blueprince/pkg/game/rooms"
)

func TestInitGameData(t *testing.T) {
	cell := world.NewCell(0, 0, "0:0")

	data := InitGameData(cell)
	if data == nil {
		t.Fatalf("InitGameData returned nil")
	}

	if again := InitGameData(cell); again != data {
		t.Errorf("InitGameData must be idempotent")
	}
}

func TestPlaceRoom(t *testing.T) {
	cell := world.NewCell(4, 2, "4:2")

	if HasRoom(cell) {
		t.Fatalf("fresh cell should have no room")
	}

	b := &rooms.Blueprint{Name: "Den", Color: rooms.ColorBlue}
	PlaceRoom(cell, b)

	if !HasRoom(cell) || !cell.Room {
		t.Errorf("cell should hold a room after placement")
	}

	if got := RoomAt(cell); got != b {
		t.Errorf("RoomAt: got %v, want the placed blueprint", got)
	}

	if RoomAt(nil) != nil {
		t.Errorf("RoomAt(nil) should be nil")
	}
}

func TestLocks(t *testing.T) {
	cell := world.NewCell(2, 2, "2:2")

	if got := LockLevel(cell, world.North); got != 0 {
		t.Errorf("default lock level: got %v, want 0", got)
	}

	SetLock(cell, world.North, 2)
	if got := LockLevel(cell, world.North); got != 2 {
		t.Errorf("lock level: got %v, want 2", got)
	}

	if got := LockLevel(cell, world.South); got != 0 {
		t.Errorf("other side must stay unlocked: got %v", got)
	}
}

func TestObjectHelpers(t *testing.T) {
	cell := world.NewCell(1, 1, "1:1")

	if HasObject(cell) || HasUnopenedObject(cell) {
		t.Fatalf("fresh cell should have no object")
	}

	GetGameData(cell).Object = entities.Spawn("chest")

	if !HasObject(cell) || !HasUnopenedObject(cell) {
		t.Errorf("cell should report an unopened object")
	}

	if HasOpenedObject(cell) {
		t.Errorf("chest is not opened yet")
	}
}
