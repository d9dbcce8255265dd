package ebiten

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "blueprince/pkg/engine/input"
	"blueprince/pkg/game/config"
)

// Update handles input (Ebiten interface). Intents are pushed to the input
// channel; the game loop consumes them from GetInput.
func (e *EbitenRenderer) Update() error {
	select {
	case <-e.done:
		return ebiten.Termination
	default:
	}

	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Info("window opened", "width", w, "height", h)
	}

	e.handleZoom()

	intent := e.checkGamepadInput()
	if intent.Action == engineinput.ActionNone {
		intent = e.checkInput()
	}

	if intent.Action != engineinput.ActionNone {
		// Non-blocking send: while the game loop is busy, extra presses are
		// dropped rather than queued up.
		select {
		case e.inputChan <- intent:
		default:
		}
	}

	return nil
}

// handleZoom adjusts the tile size with =/-/0.
func (e *EbitenRenderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.setTileSize(e.tileSize + tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.setTileSize(e.tileSize - tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		e.setTileSize(defaultTileSize)
	}
}

func (e *EbitenRenderer) setTileSize(size int) {
	if size < minTileSize {
		size = minTileSize
	}
	if size > maxTileSize {
		size = maxTileSize
	}
	if size == e.tileSize {
		return
	}

	e.tileSize = size
	e.invalidateFontCache()

	if err := config.Current().SetTileSize(size); err != nil {
		log.Warn("could not save tile size", "error", err)
	}
}

// shouldRepeatKey reports whether a held key should trigger again: once on
// the initial press, then repeatedly after the initial delay.
func (e *EbitenRenderer) shouldRepeatKey(isPressed func() bool, code string) bool {
	now := time.Now().UnixMilli()

	e.keyRepeatStateMutex.Lock()
	defer e.keyRepeatStateMutex.Unlock()

	pressed := isPressed()
	info, exists := e.keyRepeatState[code]

	if !pressed {
		if exists {
			delete(e.keyRepeatState, code)
		}
		return false
	}

	if !exists {
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}

	if now-info.firstPressed >= keyRepeatInitialDelay && now-info.lastRepeat >= keyRepeatInterval {
		info.lastRepeat = now
		e.keyRepeatState[code] = info
		return true
	}

	return false
}

// repeatKeyIntent maps a held physical key to its bound intent with repeat.
func (e *EbitenRenderer) repeatKeyIntent(key ebiten.Key, stateCode, bindingCode string) (engineinput.Intent, bool) {
	if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(key) }, stateCode) {
		return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device: engineinput.DeviceKeyboard,
			Code:   bindingCode,
		})), true
	}
	return engineinput.Intent{Action: engineinput.ActionNone}, false
}

// checkInput polls the keyboard and returns the next intent.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	// Movement keys repeat while held: arrows, WASD and ZQSD.
	movement := []struct {
		key     ebiten.Key
		state   string
		binding string
	}{
		{ebiten.KeyArrowUp, "key_arrow_up", "arrow_up"},
		{ebiten.KeyArrowDown, "key_arrow_down", "arrow_down"},
		{ebiten.KeyArrowLeft, "key_arrow_left", "arrow_left"},
		{ebiten.KeyArrowRight, "key_arrow_right", "arrow_right"},
		{ebiten.KeyW, "key_w", "w"},
		{ebiten.KeyZ, "key_z", "z"},
		{ebiten.KeyS, "key_s", "s"},
		{ebiten.KeyA, "key_a", "a"},
		{ebiten.KeyQ, "key_q", "q"},
		{ebiten.KeyD, "key_d", "d"},
	}
	for _, m := range movement {
		if intent, ok := e.repeatKeyIntent(m.key, m.state, m.binding); ok {
			return intent
		}
	}

	// Single-shot keys.
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		return engineinput.Intent{Action: engineinput.ActionConfirm}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return engineinput.Intent{Action: engineinput.ActionReroll}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return engineinput.Intent{Action: engineinput.ActionInteract}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		return engineinput.Intent{Action: engineinput.ActionToggleInventory}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF8) {
		return engineinput.Intent{Action: engineinput.ActionDumpMap}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}

// checkGamepadInput polls connected gamepads. Button indices follow common
// XInput-style controllers on Linux; mappings vary between devices.
func (e *EbitenRenderer) checkGamepadInput() engineinput.Intent {
	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids[:0])

	dpad := []struct {
		button  ebiten.GamepadButton
		binding string
	}{
		{ebiten.GamepadButton11, "gamepad_dpad_up"},
		{ebiten.GamepadButton12, "gamepad_dpad_right"},
		{ebiten.GamepadButton13, "gamepad_dpad_down"},
		{ebiten.GamepadButton14, "gamepad_dpad_left"},
	}

	for _, id := range ids {
		for _, d := range dpad {
			id, button := id, d.button
			code := fmt.Sprintf("gamepad_%d_%d", id, button)
			if e.shouldRepeatKey(func() bool { return ebiten.IsGamepadButtonPressed(id, button) }, code) {
				return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
					Device: engineinput.DeviceGamepad,
					Code:   d.binding,
				}))
			}
		}

		// Face buttons: A confirms, X interacts, Y rerolls, B quits.
		face := []struct {
			button  ebiten.GamepadButton
			binding string
		}{
			{ebiten.GamepadButton0, "gamepad_a"},
			{ebiten.GamepadButton1, "gamepad_b"},
			{ebiten.GamepadButton2, "gamepad_x"},
			{ebiten.GamepadButton3, "gamepad_y"},
		}
		for _, f := range face {
			if inpututil.IsGamepadButtonJustPressed(id, f.button) {
				return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
					Device: engineinput.DeviceGamepad,
					Code:   f.binding,
				}))
			}
		}
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}

// Layout returns the logical screen size (Ebiten interface).
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
	}
	return outsideWidth, outsideHeight
}
