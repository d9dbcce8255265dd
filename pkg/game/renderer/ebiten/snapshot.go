package ebiten

import (
	"sort"
	"time"

	"blueprince/pkg/engine/world"
	"blueprince/pkg/game/inventory"
	"blueprince/pkg/game/state"
	gameworld "blueprince/pkg/game/world"
)

// RenderFrame captures a consistent snapshot of the game for the next Draw
// call. Draw never touches live game state.
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	if g == nil || g.Grid == nil || g.CurrentCell == nil {
		e.snapshot.valid = false
		return
	}

	rows := g.Grid.Rows()
	cols := g.Grid.Cols()

	snap := renderSnapshot{
		valid:     true,
		gridRows:  rows,
		gridCols:  cols,
		playerRow: g.CurrentCell.Row,
		playerCol: g.CurrentCell.Col,

		steps: g.Inventory.Count(inventory.Steps),
		coins: g.Inventory.Count(inventory.Coins),
		gems:  g.Inventory.Count(inventory.Gems),
		keys:  g.Inventory.Count(inventory.Keys),
		dice:  g.Inventory.Count(inventory.Dice),

		showInventory: g.ShowInventory,

		outcome:     g.Outcome.String(),
		outcomeText: g.OutcomeText,
	}

	for _, tool := range inventory.AllTools() {
		if g.Inventory.HasTool(tool) {
			snap.tools = append(snap.tools, string(tool))
		}
	}

	snap.cells = make([][]snapCell, rows)
	for row := 0; row < rows; row++ {
		snap.cells[row] = make([]snapCell, cols)
		for col := 0; col < cols; col++ {
			cell := g.Grid.GetCell(row, col)
			sc := &snap.cells[row][col]

			b := gameworld.RoomAt(cell)
			if b == nil {
				continue
			}

			sc.name = b.Name
			sc.colorName = b.Color
			sc.image = b.Image
			sc.visited = cell.Visited
			sc.goal = cell.ExitCell

			for _, dir := range world.AllDirections() {
				sc.ports[dir] = b.Ports.Has(dir)
				sc.locks[dir] = gameworld.LockLevel(cell, dir)
			}

			if obj := gameworld.GetGameData(cell).Object; obj != nil {
				sc.hasObject = true
				sc.objectSymbol = obj.Symbol()
				sc.objectOpened = obj.Opened()
			}
		}
	}

	if d := g.Draft; d != nil {
		snap.draftActive = true
		snap.draftCursor = d.Cursor
		snap.draftRow = d.TargetRow
		snap.draftCol = d.TargetCol
		for _, b := range d.Candidates {
			snap.candidates = append(snap.candidates, snapCandidate{
				name:      b.Name,
				colorName: b.Color,
				image:     b.Image,
				cost:      b.GemCost,
				rarity:    b.Rarity,
			})
		}
	}

	snap.messages = e.trackMessages(g)

	e.snapshot = snap
}

// trackMessages merges the game's short message log into the renderer's own
// list, which keeps lines alive until they age out so they fade instead of
// vanishing when the game log rotates.
func (e *EbitenRenderer) trackMessages(g *state.Game) []messageEntry {
	e.messagesMutex.Lock()
	defer e.messagesMutex.Unlock()

	now := time.Now().UnixMilli()

	kept := make([]messageEntry, 0, len(e.trackedMessages))
	for _, tracked := range e.trackedMessages {
		if now-tracked.Timestamp < messageLifetime {
			kept = append(kept, tracked)
		}
	}

	for _, msg := range g.Messages {
		if now-msg.Timestamp >= messageLifetime {
			continue
		}
		found := false
		for _, tracked := range kept {
			if tracked.Text == msg.Text && tracked.Timestamp == msg.Timestamp {
				found = true
				break
			}
		}
		if !found {
			kept = append(kept, messageEntry{Text: msg.Text, Timestamp: msg.Timestamp})
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		return kept[i].Timestamp < kept[j].Timestamp
	})

	e.trackedMessages = kept

	out := make([]messageEntry, len(kept))
	copy(out, kept)
	return out
}
