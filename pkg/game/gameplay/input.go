package gameplay

import (
	engineinput "blueprince/pkg/engine/input"
	"blueprince/pkg/engine/world"
	"blueprince/pkg/game/devtools"
	"blueprince/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input
// system. While a draft is open, the left/right movement keys browse the
// candidates and Quit backs out of the draft instead of the game.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	if !g.Running() {
		// Terminal screen: only quitting is left.
		if intent.Action == engineinput.ActionQuit || intent.Action == engineinput.ActionConfirm {
			g.QuitRequested = true
		}
		return
	}

	if g.Drafting() {
		processDraftIntent(g, intent)
		return
	}

	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionQuit:
		g.QuitRequested = true
		return

	case engineinput.ActionMoveNorth:
		TryMove(g, world.North)

	case engineinput.ActionMoveSouth:
		TryMove(g, world.South)

	case engineinput.ActionMoveWest:
		TryMove(g, world.West)

	case engineinput.ActionMoveEast:
		TryMove(g, world.East)

	case engineinput.ActionInteract:
		Interact(g)

	case engineinput.ActionToggleInventory:
		g.ShowInventory = !g.ShowInventory
		return

	case engineinput.ActionDumpMap:
		path, err := devtools.DumpBoard(g)
		if err != nil {
			logMessage(g, "Map dump failed: %v", err)
		} else {
			logMessage(g, "Board dumped to ITEM{%s}", path)
		}
		return
	}

	CheckEndConditions(g)
}

func processDraftIntent(g *state.Game, intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionMoveWest, engineinput.ActionSelectLeft:
		MoveDraftCursor(g, -1)

	case engineinput.ActionMoveEast, engineinput.ActionSelectRight:
		MoveDraftCursor(g, +1)

	case engineinput.ActionConfirm:
		ConfirmDraft(g)
		CheckEndConditions(g)

	case engineinput.ActionReroll:
		RerollDraft(g)

	case engineinput.ActionQuit:
		CancelDraft(g)
		CheckEndConditions(g)
	}
}
