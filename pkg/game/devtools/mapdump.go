// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gookit/color"

	"blueprince/pkg/engine/world"
	"blueprince/pkg/game/inventory"
	"blueprince/pkg/game/state"
	gameworld "blueprince/pkg/game/world"
)

const boardDumpFilename = "board.txt"

// cellSymbol returns the single-character symbol for a cell (no player overlay).
func cellSymbol(cell *world.Cell) rune {
	b := gameworld.RoomAt(cell)
	if b == nil {
		return '.'
	}
	if cell.ExitCell {
		return 'A'
	}
	if gameworld.HasUnopenedObject(cell) {
		return '?'
	}
	return rune(b.Name[0])
}

// DumpBoard writes a debug dump of the run to board.txt and echoes the board
// to the terminal in colour. Format is human- and LLM-readable (sections,
// key: value, consistent structure).
func DumpBoard(g *state.Game) (string, error) {
	if g.Grid == nil {
		return "", fmt.Errorf("no grid")
	}

	absPath, err := filepath.Abs(boardDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	rows := g.Grid.Rows()
	cols := g.Grid.Cols()
	playerRow, playerCol := -1, -1
	if g.CurrentCell != nil {
		playerRow, playerCol = g.CurrentCell.Row, g.CurrentCell.Col
	}

	// --- Metadata ---
	fmt.Fprintln(f, "=== BOARD DUMP DEBUG (layout, locks, objects) ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "seed: %d\n", g.Seed)
	fmt.Fprintf(f, "grid_rows: %d\n", rows)
	fmt.Fprintf(f, "grid_cols: %d\n", cols)
	fmt.Fprintf(f, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(f, "player_cell: %d,%d\n", playerRow, playerCol)
	fmt.Fprintf(f, "rooms_placed: %d\n", g.RoomsPlaced)
	fmt.Fprintf(f, "deck_size: %d\n", g.Deck.Size())
	fmt.Fprintf(f, "outcome: %s\n", g.Outcome)
	fmt.Fprintln(f, "")

	// --- Legend ---
	fmt.Fprintln(f, "--- Legend (cell symbols) ---")
	fmt.Fprintln(f, ". = empty cell  @ = player  A = Antechamber  ? = unopened object  other = room initial")
	fmt.Fprintln(f, "")

	// --- Board ---
	fmt.Fprintln(f, "--- Board ---")
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if row == playerRow && col == playerCol {
				fmt.Fprint(f, "@")
				continue
			}
			fmt.Fprintf(f, "%c", cellSymbol(g.Grid.GetCell(row, col)))
		}
		fmt.Fprintln(f)
	}
	fmt.Fprintln(f, "")

	// --- Rooms ---
	fmt.Fprintln(f, "--- Rooms (all with row,col and state) ---")
	g.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		b := gameworld.RoomAt(cell)
		if b == nil {
			return
		}
		fmt.Fprintf(f, "  row: %d col: %d name: %q color: %s visited: %v locks: %s\n",
			row, col, b.Name, b.Color, cell.Visited, lockSummary(cell))
	})
	fmt.Fprintln(f, "")

	// --- Objects ---
	fmt.Fprintln(f, "Objects:")
	g.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		obj := gameworld.GetGameData(cell).Object
		if obj == nil {
			return
		}
		fmt.Fprintf(f, "  row: %d col: %d object: %q opened: %v\n", row, col, obj.Name(), obj.Opened())
	})
	fmt.Fprintln(f, "")

	// --- Inventory ---
	fmt.Fprintln(f, "Inventory:")
	for _, r := range inventory.AllResources() {
		fmt.Fprintf(f, "  %s: %d\n", r, g.Inventory.Count(r))
	}
	for _, tool := range inventory.AllTools() {
		if g.Inventory.HasTool(tool) {
			fmt.Fprintf(f, "  tool: %q\n", tool)
		}
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "=== END BOARD DUMP ===")

	if err := f.Sync(); err != nil {
		return absPath, err
	}

	printBoardColor(g)

	return absPath, nil
}

// lockSummary renders the per-side locks of a cell, e.g. "N2 S0 W0 E1".
func lockSummary(cell *world.Cell) string {
	out := ""
	for _, dir := range world.AllDirections() {
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%c%d", dir.String()[0], gameworld.LockLevel(cell, dir))
	}
	return out
}

// printBoardColor echoes the board to stdout with room colours.
func printBoardColor(g *state.Game) {
	styles := map[string]color.Style{
		"blue":   {color.FgBlue},
		"green":  {color.FgGreen},
		"purple": {color.FgMagenta},
		"orange": {color.FgYellow},
	}
	player := color.Style{color.FgWhite, color.OpBold}

	for row := 0; row < g.Grid.Rows(); row++ {
		for col := 0; col < g.Grid.Cols(); col++ {
			cell := g.Grid.GetCell(row, col)
			if g.CurrentCell == cell {
				player.Print("@")
				continue
			}

			b := gameworld.RoomAt(cell)
			if b == nil {
				fmt.Print(".")
				continue
			}

			if style, ok := styles[b.Color]; ok {
				style.Printf("%c", cellSymbol(cell))
			} else {
				fmt.Printf("%c", cellSymbol(cell))
			}
		}
		fmt.Println()
	}
}
