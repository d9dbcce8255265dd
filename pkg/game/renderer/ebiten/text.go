package ebiten

import (
	"image/color"
	"regexp"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
)

// dynamicGet is used for runtime translation key lookups. A function variable
// avoids go vet's non-constant format string check, since GT{} content is a
// key looked up dynamically from markup.
var dynamicGet = gotext.Get

// textSegment is a run of text with one colour.
type textSegment struct {
	text  string
	color color.Color
}

// markupRegex matches FUNCTION{content} markup tokens.
var markupRegex = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^}]*)\}`)

// parseMarkup splits a message with markup (ITEM{}, ROOM{}, ACTION{}, GT{},
// DENIED{}, SUBTLE{}) into coloured segments.
func parseMarkup(msg string) []textSegment {
	var segments []textSegment

	lastIndex := 0
	matches := markupRegex.FindAllStringSubmatchIndex(msg, -1)

	for _, match := range matches {
		if match[0] > lastIndex {
			segments = append(segments, textSegment{text: msg[lastIndex:match[0]], color: colorText})
		}

		function := msg[match[2]:match[3]]
		content := msg[match[4]:match[5]]

		var segColor color.Color
		switch function {
		case "ITEM":
			segColor = colorItem
		case "ROOM":
			segColor = colorRoomName
		case "ACTION":
			segColor = colorAction
		case "DENIED":
			segColor = colorDenied
		case "SUBTLE":
			segColor = colorSubtle
		case "GT":
			content = dynamicGet(content)
			segColor = colorText
		default:
			segColor = colorText
		}

		segments = append(segments, textSegment{text: content, color: segColor})
		lastIndex = match[1]
	}

	if lastIndex < len(msg) {
		segments = append(segments, textSegment{text: msg[lastIndex:], color: colorText})
	}

	if len(segments) == 0 {
		segments = append(segments, textSegment{text: msg, color: colorText})
	}

	return segments
}

// applyAlpha fades a colour toward transparent black.
func applyAlpha(c color.Color, alpha float64) color.Color {
	if alpha <= 0 {
		alpha = 0
	}
	if alpha > 1.0 {
		alpha = 1.0
	}

	r, g, b, a := c.RGBA()
	return color.RGBA{
		R: uint8(float64(r>>8) * alpha),
		G: uint8(float64(g>>8) * alpha),
		B: uint8(float64(b>>8) * alpha),
		A: uint8(float64(a>>8) * alpha),
	}
}

// drawText draws a translated string at x,y with the given face and colour.
func drawText(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, dynamicGet(str), face, op)
}

// drawSegments draws coloured segments left to right starting at x,y.
func drawSegments(screen *ebiten.Image, segments []textSegment, x, y float64, face *text.GoTextFace) {
	currentX := x

	for _, seg := range segments {
		if seg.text == "" {
			continue
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(currentX, y)
		op.ColorScale.ScaleWithColor(seg.color)
		text.Draw(screen, seg.text, face, op)

		w, _ := text.Measure(seg.text, face, 0)
		currentX += w
	}
}

// textWidth returns the pixel width of a string with the given face.
func textWidth(str string, face *text.GoTextFace) float64 {
	w, _ := text.Measure(str, face, 0)
	return w
}
