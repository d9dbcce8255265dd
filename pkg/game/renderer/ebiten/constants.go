// Package ebiten provides the Ebiten-based graphical renderer: the mansion
// board, the inventory panel, the draft overlay and the fading message log.
package ebiten

import "image/color"

// Color palette.
var (
	colorBackground      = color.RGBA{26, 26, 36, 255}    // Dark blue-gray window background
	colorBoardBackground = color.RGBA{15, 15, 24, 255}    // Darker for the board area
	colorEmptyCell       = color.RGBA{34, 34, 48, 255}    // Unbuilt cells
	colorCellBorder      = color.RGBA{60, 60, 80, 255}    // Grid lines
	colorPlayer          = color.RGBA{255, 230, 120, 255} // Player highlight border
	colorDoor            = color.RGBA{210, 200, 170, 255} // Open doorway
	colorDoorLocked      = color.RGBA{230, 200, 60, 255}  // Level 1 lock
	colorDoorHeavyLock   = color.RGBA{230, 90, 60, 255}   // Level 2 lock
	colorGoal            = color.RGBA{255, 215, 0, 255}   // Antechamber accent
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Labels, dimmed lines
	colorItem            = color.RGBA{220, 170, 255, 255} // Items and resources
	colorRoomName        = color.RGBA{160, 160, 190, 255} // Room names in messages
	colorAction          = color.RGBA{180, 150, 250, 255} // Key hints
	colorDenied          = color.RGBA{255, 100, 100, 255} // Refusals
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Inventory panel, draft cards
	colorCardHighlight   = color.RGBA{90, 80, 140, 255}   // Draft cursor
	colorWin             = color.RGBA{100, 255, 150, 255}
	colorLoss            = color.RGBA{255, 120, 120, 255}
)

// Tile size constraints.
const (
	minTileSize     = 24
	maxTileSize     = 144
	tileSizeStep    = 4
	defaultTileSize = 56
	baseFontSize    = 16.0 // Font size at the default tile size
)

const (
	keyRepeatInitialDelay = 500 // Delay before the first repeat (milliseconds)
	keyRepeatInterval     = 100 // Interval between repeats (milliseconds)
)

// messageLifetime is how long a log line stays on screen before fading out.
const messageLifetime = 10000 // milliseconds
