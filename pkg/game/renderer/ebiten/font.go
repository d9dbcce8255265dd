package ebiten

import (
	"bytes"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the bundled Go fonts. Called once from Init.
func (e *EbitenRenderer) loadFonts() {
	var err error

	e.monoFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		log.Fatal("could not parse bundled mono font", "error", err)
	}

	e.sansFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatal("could not parse bundled sans font", "error", err)
	}

	e.sansBoldFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatal("could not parse bundled bold font", "error", err)
	}
}

// getTileFontSize returns the font size for in-tile text, scaled to the
// current tile size.
func (e *EbitenRenderer) getTileFontSize() float64 {
	return baseFontSize * float64(e.tileSize) / float64(defaultTileSize)
}

// getUIFontSize returns the font size for panel and message text.
func (e *EbitenRenderer) getUIFontSize() float64 {
	size := e.getTileFontSize()
	if size < 10 {
		size = 10
	}
	return size
}

// getMonoFontFace returns a cached monospace face for in-tile badges.
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	size := e.getTileFontSize()
	if e.cachedMonoFace == nil || e.cachedTileFontSize != size {
		e.cachedTileFontSize = size
		e.cachedMonoFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedMonoFace
}

// getSansFontFace returns a cached sans-serif face for UI text.
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedSansFace == nil || e.cachedUIFontSize != size {
		e.cachedUIFontSize = size
		e.cachedSansFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   size,
		}
	}
	return e.cachedSansFace
}

// getSansBoldFontFace returns a cached bold face for headings and the
// outcome banner.
func (e *EbitenRenderer) getSansBoldFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedSansBoldFace == nil || e.cachedUIFontSize != size {
		e.cachedUIFontSize = size
		e.cachedSansBoldFace = &text.GoTextFace{
			Source: e.sansBoldFontSource,
			Size:   size,
		}
	}
	return e.cachedSansBoldFace
}

// invalidateFontCache clears cached faces. Called when the tile size changes.
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedMonoFace = nil
	e.cachedSansFace = nil
	e.cachedSansBoldFace = nil
}
