package ebiten

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "blueprince/pkg/engine/input"
	"blueprince/pkg/game/assets"
	"blueprince/pkg/game/renderer"
)

// New creates the graphical renderer. Room art is resolved through the given
// registry; tileSize comes from config and is clamped to the valid range.
func New(images *assets.Registry, tileSize int) *EbitenRenderer {
	if tileSize < minTileSize || tileSize > maxTileSize {
		tileSize = defaultTileSize
	}

	return &EbitenRenderer{
		windowWidth:    1024,
		windowHeight:   768,
		tileSize:       tileSize,
		images:         images,
		tileCache:      make(map[string]*ebiten.Image),
		inputChan:      make(chan engineinput.Intent, 8),
		keyRepeatState: make(map[string]keyRepeatInfo),
		done:           make(chan struct{}),
	}
}

// Shutdown asks the Ebiten loop to close the window. Safe to call more than
// once and from any goroutine.
func (e *EbitenRenderer) Shutdown() {
	e.doneOnce.Do(func() { close(e.done) })
}

// Init sets up the window and loads fonts. Run must be called afterwards,
// from the main goroutine.
func (e *EbitenRenderer) Init() {
	e.loadFonts()

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Blue Prince")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Run starts the Ebiten loop and blocks until the window closes. Must run on
// the main goroutine; the game loop runs elsewhere and talks to the renderer
// through RenderFrame and GetInput.
func (e *EbitenRenderer) Run() error {
	return ebiten.RunGame(e)
}

// Clear is a no-op: Ebiten redraws the whole frame every tick.
func (e *EbitenRenderer) Clear() {}

// GetInput blocks until the player produces the next intent.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	return <-e.inputChan
}

// StyleText wraps text in the markup token for the style; the markup is
// resolved to colours at draw time.
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return "ROOM{" + text + "}"
	case renderer.StyleItem:
		return "ITEM{" + text + "}"
	case renderer.StyleAction:
		return "ACTION{" + text + "}"
	case renderer.StyleDenied:
		return "DENIED{" + text + "}"
	case renderer.StyleSubtle:
		return "SUBTLE{" + text + "}"
	default:
		return text
	}
}

// FormatText translates and formats a message, keeping markup tokens intact
// for draw-time colouring.
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	if len(args) == 0 {
		return dynamicGet(msg)
	}
	return fmt.Sprintf(dynamicGet(msg), args...)
}

// ShowMessage prints a message to stderr. In-game feedback flows through the
// game's message log instead; this is only used outside the window loop.
func (e *EbitenRenderer) ShowMessage(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

// GetViewportSize returns the board dimensions currently on screen.
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()

	if !e.snapshot.valid {
		return 0, 0
	}
	return e.snapshot.gridRows, e.snapshot.gridCols
}
