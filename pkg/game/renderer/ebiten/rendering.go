package ebiten

import (
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"blueprince/pkg/engine/world"
)

// inventoryPanelWidth is the fixed width of the right-hand panel in pixels.
const inventoryPanelWidth = 240

// Draw renders the current snapshot (Ebiten interface).
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	if !snap.valid {
		drawText(screen, "Loading...", 20, 20, colorSubtle, e.getSansFontFace())
		return
	}

	boardX, boardY := e.drawBoard(screen, &snap)
	e.drawStatusBar(screen, &snap)
	e.drawInventoryPanel(screen, &snap)
	e.drawMessages(screen, &snap)

	if snap.draftActive {
		e.drawDraftOverlay(screen, &snap, boardX, boardY)
	}
	if snap.outcome != "none" {
		e.drawOutcomeBanner(screen, &snap)
	}
}

// boardOrigin computes the top-left pixel of the board, centered in the space
// left of the inventory panel.
func (e *EbitenRenderer) boardOrigin(snap *renderSnapshot) (int, int) {
	boardW := snap.gridCols * e.tileSize
	boardH := snap.gridRows * e.tileSize

	availW := e.windowWidth - inventoryPanelWidth
	x := (availW - boardW) / 2
	y := (e.windowHeight - boardH) / 2
	if x < 10 {
		x = 10
	}
	if y < 30 {
		y = 30
	}
	return x, y
}

func (e *EbitenRenderer) drawBoard(screen *ebiten.Image, snap *renderSnapshot) (int, int) {
	boardX, boardY := e.boardOrigin(snap)
	tile := e.tileSize

	vector.DrawFilledRect(screen,
		float32(boardX-4), float32(boardY-4),
		float32(snap.gridCols*tile+8), float32(snap.gridRows*tile+8),
		colorBoardBackground, false)

	for row := 0; row < snap.gridRows; row++ {
		for col := 0; col < snap.gridCols; col++ {
			x := boardX + col*tile
			y := boardY + row*tile
			e.drawCell(screen, &snap.cells[row][col], x, y)
		}
	}

	// Draft target marker
	if snap.draftActive {
		x := boardX + snap.draftCol*tile
		y := boardY + snap.draftRow*tile
		vector.StrokeRect(screen, float32(x)+1, float32(y)+1, float32(tile)-2, float32(tile)-2, 2, colorAction, false)
	}

	// Player highlight on top of everything else
	px := boardX + snap.playerCol*tile
	py := boardY + snap.playerRow*tile
	vector.StrokeRect(screen, float32(px)+1, float32(py)+1, float32(tile)-2, float32(tile)-2, 3, colorPlayer, false)

	return boardX, boardY
}

func (e *EbitenRenderer) drawCell(screen *ebiten.Image, sc *snapCell, x, y int) {
	tile := e.tileSize

	if sc.name == "" {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(tile), float32(tile), colorEmptyCell, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(tile), float32(tile), 1, colorCellBorder, false)
		return
	}

	img := e.tileImage(sc.image, sc.colorName)
	op := &ebiten.DrawImageOptions{}
	bounds := img.Bounds()
	op.GeoM.Scale(float64(tile)/float64(bounds.Dx()), float64(tile)/float64(bounds.Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	if !sc.visited {
		op.ColorScale.Scale(0.55, 0.55, 0.55, 1)
	}
	screen.DrawImage(img, op)

	border := colorCellBorder
	if sc.goal {
		border = colorGoal
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(tile), float32(tile), 1, border, false)

	e.drawDoorways(screen, sc, x, y)

	if sc.hasObject {
		badge := colorItem
		if sc.objectOpened {
			badge = colorSubtle
		}
		face := e.getMonoFontFace()
		drawText(screen, sc.objectSymbol,
			float64(x+tile)-face.Size-2, float64(y+tile)-face.Size-2, badge, face)
	}
}

// drawDoorways marks each doorway with a notch on the cell edge, coloured by
// the lock level on that side.
func (e *EbitenRenderer) drawDoorways(screen *ebiten.Image, sc *snapCell, x, y int) {
	tile := float32(e.tileSize)
	notch := tile / 4
	thick := float32(4)

	for _, dir := range world.AllDirections() {
		if !sc.ports[dir] {
			continue
		}

		col := colorDoor
		switch sc.locks[dir] {
		case 1:
			col = colorDoorLocked
		case 2:
			col = colorDoorHeavyLock
		}

		fx, fy := float32(x), float32(y)
		switch dir {
		case world.North:
			vector.DrawFilledRect(screen, fx+(tile-notch)/2, fy, notch, thick, col, false)
		case world.South:
			vector.DrawFilledRect(screen, fx+(tile-notch)/2, fy+tile-thick, notch, thick, col, false)
		case world.West:
			vector.DrawFilledRect(screen, fx, fy+(tile-notch)/2, thick, notch, col, false)
		case world.East:
			vector.DrawFilledRect(screen, fx+tile-thick, fy+(tile-notch)/2, thick, notch, col, false)
		}
	}
}

// tileImage returns the cached texture for a room image id, falling back to
// the registry's colour swatch.
func (e *EbitenRenderer) tileImage(id, colorName string) *ebiten.Image {
	key := id + "|" + colorName

	e.tileCacheMutex.Lock()
	defer e.tileCacheMutex.Unlock()

	if img, ok := e.tileCache[key]; ok {
		return img
	}

	img := ebiten.NewImageFromImage(e.images.Image(id, colorName))
	e.tileCache[key] = img
	return img
}

func (e *EbitenRenderer) drawStatusBar(screen *ebiten.Image, snap *renderSnapshot) {
	face := e.getSansFontFace()
	line := fmt.Sprintf("SUBTLE{%s} %d   SUBTLE{%s} %d   SUBTLE{%s} %d   SUBTLE{%s} %d   SUBTLE{%s} %d",
		gotext.Get("steps"), snap.steps,
		gotext.Get("coins"), snap.coins,
		gotext.Get("gems"), snap.gems,
		gotext.Get("keys"), snap.keys,
		gotext.Get("dice"), snap.dice)
	drawSegments(screen, parseMarkup(line), 10, 6, face)
}

func (e *EbitenRenderer) drawInventoryPanel(screen *ebiten.Image, snap *renderSnapshot) {
	x := e.windowWidth - inventoryPanelWidth
	vector.DrawFilledRect(screen, float32(x), 0, inventoryPanelWidth, float32(e.windowHeight), colorPanelBackground, false)

	face := e.getSansFontFace()
	bold := e.getSansBoldFontFace()
	lineH := face.Size + 8
	y := 14.0

	drawText(screen, "Inventory", float64(x+14), y, colorAction, bold)
	y += lineH * 1.5

	resources := []struct {
		label string
		count int
	}{
		{"steps", snap.steps},
		{"coins", snap.coins},
		{"gems", snap.gems},
		{"keys", snap.keys},
		{"dice", snap.dice},
	}
	for _, r := range resources {
		drawText(screen, r.label, float64(x+14), y, colorText, face)
		count := fmt.Sprintf("%d", r.count)
		drawText(screen, count, float64(x+inventoryPanelWidth-14)-textWidth(count, face), y, colorItem, face)
		y += lineH
	}

	y += lineH / 2
	drawText(screen, "Tools", float64(x+14), y, colorAction, bold)
	y += lineH * 1.5

	if len(snap.tools) == 0 {
		drawText(screen, "none yet", float64(x+14), y, colorSubtle, face)
		y += lineH
	}
	for _, tool := range snap.tools {
		drawText(screen, "+ "+dynamicGet(tool), float64(x+14), y, colorText, face)
		y += lineH
	}

	if snap.showInventory {
		y += lineH
		drawText(screen, "Keys", float64(x+14), y, colorAction, bold)
		y += lineH * 1.5
		for _, hint := range []string{
			"arrows / wasd  move",
			"enter  build room",
			"r  reroll draft",
			"e / space  interact",
			"i  toggle this help",
			"esc  quit",
		} {
			drawText(screen, hint, float64(x+14), y, colorSubtle, face)
			y += lineH
		}
	}
}

func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, snap *renderSnapshot) {
	face := e.getSansFontFace()
	lineH := face.Size + 6
	now := time.Now().UnixMilli()

	y := float64(e.windowHeight) - 14 - lineH*float64(len(snap.messages))
	for _, msg := range snap.messages {
		age := now - msg.Timestamp
		alpha := 1.0
		if age > messageLifetime-3000 {
			alpha = float64(messageLifetime-age) / 3000.0
		}

		segments := parseMarkup(msg.Text)
		for i := range segments {
			segments[i].color = applyAlpha(segments[i].color, alpha)
		}
		drawSegments(screen, segments, 10, y, face)
		y += lineH
	}
}

func (e *EbitenRenderer) drawDraftOverlay(screen *ebiten.Image, snap *renderSnapshot, boardX, boardY int) {
	if len(snap.candidates) == 0 {
		return
	}

	cardW := e.tileSize * 3
	cardH := e.tileSize*3 + 40
	gap := 16
	totalW := len(snap.candidates)*cardW + (len(snap.candidates)-1)*gap

	availW := e.windowWidth - inventoryPanelWidth
	x := (availW - totalW) / 2
	y := (e.windowHeight - cardH) / 2

	face := e.getSansFontFace()
	bold := e.getSansBoldFontFace()

	title := gotext.Get("Draft a room")
	drawText(screen, title, float64(x), float64(y)-face.Size-16, colorAction, bold)

	for i, c := range snap.candidates {
		cx := x + i*(cardW+gap)

		vector.DrawFilledRect(screen, float32(cx), float32(y), float32(cardW), float32(cardH), colorPanelBackground, false)
		if i == snap.draftCursor {
			vector.StrokeRect(screen, float32(cx), float32(y), float32(cardW), float32(cardH), 3, colorCardHighlight, false)
		} else {
			vector.StrokeRect(screen, float32(cx), float32(y), float32(cardW), float32(cardH), 1, colorCellBorder, false)
		}

		img := e.tileImage(c.image, c.colorName)
		op := &ebiten.DrawImageOptions{}
		bounds := img.Bounds()
		imgSize := float64(cardW - 16)
		op.GeoM.Scale(imgSize/float64(bounds.Dx()), imgSize/float64(bounds.Dy()))
		op.GeoM.Translate(float64(cx+8), float64(y+8))
		screen.DrawImage(img, op)

		textY := float64(y+8) + float64(cardW-16) + 6
		drawText(screen, c.name, float64(cx+8), textY, colorText, face)

		detail := gotext.Get("free")
		detailColor := colorSubtle
		if c.cost > 0 {
			detail = gotext.Get("%d gems", c.cost)
			detailColor = colorItem
		}
		if c.rarity > 0 {
			detail += "  " + strings.Repeat("*", c.rarity)
		}
		drawText(screen, detail, float64(cx+8), textY+face.Size+4, detailColor, face)
	}

	hint := gotext.Get("arrows to browse, enter to build, r to reroll, esc to step back")
	drawText(screen, hint, float64(x), float64(y+cardH)+10, colorSubtle, face)
}

func (e *EbitenRenderer) drawOutcomeBanner(screen *ebiten.Image, snap *renderSnapshot) {
	bold := e.getSansBoldFontFace()
	face := e.getSansFontFace()

	col := colorLoss
	if snap.outcome == "win" {
		col = colorWin
	}

	banner := dynamicGet(snap.outcomeText)
	hint := gotext.Get("Press ESC to leave the mansion.")

	w := textWidth(banner, bold)
	if hw := textWidth(hint, face); hw > w {
		w = hw
	}

	bannerW := float32(w + 60)
	bannerH := float32(bold.Size+face.Size) + 50
	bx := (float32(e.windowWidth) - bannerW) / 2
	by := (float32(e.windowHeight) - bannerH) / 2

	vector.DrawFilledRect(screen, bx, by, bannerW, bannerH, colorPanelBackground, false)
	vector.StrokeRect(screen, bx, by, bannerW, bannerH, 2, col, false)

	drawText(screen, banner, float64(bx)+30, float64(by)+16, col, bold)
	drawText(screen, hint, float64(bx)+30, float64(by)+26+bold.Size, colorSubtle, face)
}
