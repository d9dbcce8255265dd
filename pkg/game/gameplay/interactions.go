package gameplay

import (
	"blueprince/pkg/game/state"
	gameworld "blueprince/pkg/game/world"
)

// Interact opens the object in the player's current room, if any.
func Interact(g *state.Game) {
	if g.CurrentCell == nil {
		return
	}

	data := gameworld.GetGameData(g.CurrentCell)
	if data.Object == nil {
		logMessage(g, "Nothing to interact with here.")
		return
	}

	logMessage(g, "%s", data.Object.Open(g.Inventory, g.Rng))
}
