package gameplay

import (
	"blueprince/pkg/engine/world"
	"blueprince/pkg/game/inventory"
	"blueprince/pkg/game/rooms"
	"blueprince/pkg/game/state"
)

// draftSize is the number of candidates offered per draft.
const draftSize = 3

// BeginDraft opens a room selection for the empty target cell. If nothing in
// the deck fits the cell, the move is simply refused.
func BeginDraft(g *state.Game, target *world.Cell, entry world.Direction) {
	pool := draftPool(g, target.Row, target.Col, entry)
	if len(pool) == 0 {
		logMessage(g, "No room in the deck fits through that doorway.")
		return
	}

	g.Draft = &state.Draft{
		Candidates: drawCandidates(g, pool),
		TargetRow:  target.Row,
		TargetCol:  target.Col,
		Entry:      entry,
	}

	logMessage(g, "Draft a room: ACTION{q}/ACTION{d} to browse, ACTION{enter} to build, ACTION{r} to reroll.")
}

// draftPool returns the deck cards that may legally and affordably fill the
// target cell. When paid rooms are all the player cannot afford, they are
// filtered out; the pool keeps every affordable card.
func draftPool(g *state.Game, row, col int, entry world.Direction) []*rooms.Blueprint {
	placeable := g.Deck.Filter(func(b *rooms.Blueprint) bool {
		return CanPlace(g, b, row, col, entry)
	})

	gems := g.Inventory.Count(inventory.Gems)
	var affordable []*rooms.Blueprint
	for _, b := range placeable {
		if b.GemCost == 0 || b.GemCost <= gems {
			affordable = append(affordable, b)
		}
	}

	return affordable
}

// drawCandidates samples the draft candidates from the pool, guaranteeing at
// least one zero-gem-cost room whenever the pool holds one.
func drawCandidates(g *state.Game, pool []*rooms.Blueprint) []*rooms.Blueprint {
	picks := g.Deck.Sample(pool, draftSize)

	for _, b := range picks {
		if b.GemCost == 0 {
			return picks
		}
	}

	var free []*rooms.Blueprint
	for _, b := range pool {
		if b.GemCost == 0 {
			free = append(free, b)
		}
	}

	if len(free) > 0 && len(picks) > 0 {
		picks[len(picks)-1] = free[g.Rng.Intn(len(free))]
	}

	return picks
}

// MoveDraftCursor shifts the highlighted candidate, wrapping at the ends.
func MoveDraftCursor(g *state.Game, delta int) {
	d := g.Draft
	if d == nil || len(d.Candidates) == 0 {
		return
	}
	n := len(d.Candidates)
	d.Cursor = (d.Cursor + delta + n) % n
}

// RerollDraft redraws the candidates at the cost of one die.
func RerollDraft(g *state.Game) {
	d := g.Draft
	if d == nil {
		return
	}

	if !g.Inventory.Spend(inventory.Dice, 1) {
		logMessage(g, "No dice to spend.")
		return
	}

	pool := draftPool(g, d.TargetRow, d.TargetCol, d.Entry)
	d.Candidates = drawCandidates(g, pool)
	d.Cursor = 0
	logMessage(g, "You cast a ITEM{die} and the offer changes.")
}

// CancelDraft steps back from the doorway without placing anything.
func CancelDraft(g *state.Game) {
	if g.Draft == nil {
		return
	}
	g.Draft = nil
	logMessage(g, "You step back from the empty doorway.")
}

// ConfirmDraft builds the highlighted candidate: gems are spent, the room is
// placed with a freshly locked door, the card leaves the deck, draw effects
// fire, and the player walks in.
func ConfirmDraft(g *state.Game) {
	d := g.Draft
	if d == nil || len(d.Candidates) == 0 {
		return
	}

	choice := d.Candidates[d.Cursor]
	if choice.GemCost > 0 && !g.Inventory.Spend(inventory.Gems, choice.GemCost) {
		logMessage(g, "Not enough ITEM{gems} to build the ROOM{%s}.", choice.Name)
		return
	}

	cell := g.Grid.GetCell(d.TargetRow, d.TargetCol)
	entry := d.Entry
	placeRoom(g, choice, cell, entry)
	g.Deck.Remove(choice)
	ApplyDrawEffects(g, choice)

	g.Draft = nil

	if g.Inventory.Count(inventory.Steps) <= 0 {
		logMessage(g, "No steps left! You can't move.")
		return
	}

	if !openDoor(g, cell, entry) {
		return
	}

	g.Inventory.Spend(inventory.Steps, 1)
	EnterCell(g, cell)
}
