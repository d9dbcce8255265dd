// Package tui provides the terminal renderer: the coloured board, the draft
// list, the inventory line and the message pane.
package tui

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"blueprince/pkg/engine/input"
	"blueprince/pkg/engine/terminal"
	"blueprince/pkg/engine/world"
	"blueprince/pkg/game/inventory"
	"blueprince/pkg/game/renderer"
	"blueprince/pkg/game/rooms"
	"blueprince/pkg/game/state"
	gameworld "blueprince/pkg/game/world"
)

// Board icons.
const (
	PlayerIcon    = "@"
	IconEmptyCell = "·"
	IconGoal      = "A"
)

// Lines needed outside the board:
// - Current room line + blank (2)
// - Status bar (2)
// - Actions (2)
// - Messages pane (header + 5 messages + footer = 7)
// - Input prompt (2)
const viewportTopMargin = 15

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorBlue        color.Style
	colorGreen       color.Style
	colorPurple      color.Style
	colorOrange      color.Style
	colorRoom        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorItem        color.Style
	colorSubtle      color.Style
	colorPlayer      color.Style
	colorGoal        color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorBlue = color.Style{color.FgBlue}
	t.colorGreen = color.Style{color.FgGreen}
	t.colorPurple = color.Style{color.FgMagenta}
	t.colorOrange = color.Style{color.FgYellow}
	t.colorRoom = color.Style{color.FgGray}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorGoal = color.Style{color.FgYellow, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([^}]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput gets user input from the terminal and returns a high-level Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	raw := input.RawInput{
		Device: input.DeviceTerminal,
		Code:   input.GetKey(),
	}
	debounced := input.NewDebouncedInput(raw)
	return input.MapToIntent(debounced)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = t.colorItem.Sprint(operand)
		case "ROOM":
			val = t.colorRoom.Sprint(dynamicGet(operand))
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		case "DENIED":
			val = t.colorDenied.Sprint(operand)
		case "SUBTLE":
			val = t.colorSubtle.Sprint(operand)
		default:
			continue
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(msg)
}

// GetViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()

	rows = termHeight - viewportTopMargin
	cols = termWidth

	if rows < 9 {
		rows = 9
	}
	if cols < 11 {
		cols = 11
	}

	return rows, cols
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	// Current room
	if b := gameworld.RoomAt(g.CurrentCell); b != nil {
		t.printString("GT{You are in the} ROOM{%v}\n\n", b.Name)
	}

	// The board
	t.printBoard(g)

	// Outcome, once the run is over
	if g.Outcome != state.OutcomeNone {
		if g.Outcome == state.OutcomeWin {
			fmt.Println(t.colorGoal.Sprint(dynamicGet(g.OutcomeText)))
		} else {
			fmt.Println(t.colorDenied.Sprint(dynamicGet(g.OutcomeText)))
		}
		fmt.Println()
	}

	// Draft pane while a selection is open
	if g.Drafting() {
		t.printDraftPane(g)
	}

	// Status bar
	t.printStatusBar(g)

	// Actions
	t.printPossibleActions(g)

	// Messages pane
	t.printMessagesPane(g)

	// Input prompt
	fmt.Printf("\n> ")
}

// printString prints a formatted string
func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Print(t.FormatText(msg, a...))
}

// printBullet prints a bulleted item
func (t *TUIRenderer) printBullet(txt string) {
	fmt.Print("- " + t.FormatText("%s", txt) + "\n")
}

// roomStyle returns the style for a room colour.
func (t *TUIRenderer) roomStyle(colorName string) color.Style {
	switch colorName {
	case rooms.ColorGreen:
		return t.colorGreen
	case rooms.ColorPurple:
		return t.colorPurple
	case rooms.ColorOrange:
		return t.colorOrange
	case rooms.ColorBlue:
		return t.colorBlue
	default:
		return t.colorRoom
	}
}

// renderCell returns the string representation of a board cell
func (t *TUIRenderer) renderCell(g *state.Game, c *world.Cell) string {
	if c == nil {
		return " "
	}

	if g.CurrentCell == c {
		return t.colorPlayer.Sprint(PlayerIcon)
	}

	b := gameworld.RoomAt(c)
	if b == nil {
		// The draft target gets a marker so the player sees where they are building
		if d := g.Draft; d != nil && d.TargetRow == c.Row && d.TargetCol == c.Col {
			return t.colorActionShort.Sprint("?")
		}
		return t.colorSubtle.Sprint(IconEmptyCell)
	}

	if c.ExitCell {
		return t.colorGoal.Sprint(IconGoal)
	}

	if gameworld.HasUnopenedObject(c) {
		return t.colorItem.Sprint(gameworld.GetGameData(c).Object.Symbol())
	}

	icon := string([]rune(b.Name)[0])
	style := t.roomStyle(b.Color)
	if !c.Visited {
		return t.colorSubtle.Sprint(icon)
	}
	return style.Sprint(icon)
}

// printBoard renders the mansion grid
func (t *TUIRenderer) printBoard(g *state.Game) {
	termWidth := terminal.GetWidth()
	boardWidth := g.Grid.Cols()*2 - 1

	centerIndent := (termWidth - boardWidth) / 2
	if centerIndent < 0 {
		centerIndent = 0
	}
	indent := strings.Repeat(" ", centerIndent)

	for row := 0; row < g.Grid.Rows(); row++ {
		fmt.Print(indent)
		for col := 0; col < g.Grid.Cols(); col++ {
			if col > 0 {
				fmt.Print(" ")
			}
			fmt.Print(t.renderCell(g, g.Grid.GetCell(row, col)))
		}
		fmt.Print("\n")
	}

	fmt.Println()
}

// printDraftPane lists the draft candidates with the cursor
func (t *TUIRenderer) printDraftPane(g *state.Game) {
	d := g.Draft

	fmt.Println(t.colorSubtle.Sprint(gotext.Get("Draft a room:")))
	for i, b := range d.Candidates {
		marker := "  "
		if i == d.Cursor {
			marker = t.colorActionShort.Sprint("> ")
		}

		line := t.roomStyle(b.Color).Sprint(b.Name)
		if b.GemCost > 0 {
			line += t.colorItem.Sprintf(" (%d gems)", b.GemCost)
		}
		if b.Rarity > 0 {
			line += t.colorSubtle.Sprint(" " + strings.Repeat("*", b.Rarity))
		}

		fmt.Printf("%s%s\n", marker, line)
	}
	fmt.Println()
}

// printPossibleActions prints the available actions
func (t *TUIRenderer) printPossibleActions(g *state.Game) {
	if g.Drafting() {
		t.printBullet("ACTION{q}/ACTION{d}: browse  ACTION{enter}: build  ACTION{r}: reroll  ACTION{escape}: step back")
		return
	}
	t.printBullet("ACTION{arrows}: move  ACTION{e}: interact  ACTION{i}: inventory  ACTION{escape}: quit")
}

// printStatusBar renders the inventory status bar
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	parts := []string{}
	for _, r := range inventory.AllResources() {
		parts = append(parts, t.colorSubtle.Sprint(dynamicGet(string(r)))+t.colorItem.Sprintf(" %d", g.Inventory.Count(r)))
	}
	fmt.Println(strings.Join(parts, t.colorSubtle.Sprint(" | ")))

	if g.ShowInventory {
		fmt.Print(t.colorSubtle.Sprint("Tools: "))
		if g.Inventory.ToolCount() == 0 {
			fmt.Println(t.colorSubtle.Sprint("(none)"))
		} else {
			tools := []string{}
			for _, tool := range inventory.AllTools() {
				if g.Inventory.HasTool(tool) {
					tools = append(tools, t.colorItem.Sprint(dynamicGet(string(tool))))
				}
			}
			fmt.Println(strings.Join(tools, t.colorSubtle.Sprint(", ")))
		}
	}
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width := terminal.GetWidth()

	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", width-sideLen-labelLen)

	fmt.Println()
	fmt.Println(t.colorSubtle.Sprint(leftDashes + label + rightDashes))

	if len(g.Messages) == 0 {
		fmt.Println(t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range g.Messages {
			fmt.Printf("  %s\n", msg.Text)
		}
	}

	fmt.Println(t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
