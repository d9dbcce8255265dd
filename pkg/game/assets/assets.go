// Package assets resolves room image ids to images on disk. Lookups never
// fail: a missing or undecodable file yields a solid colour swatch derived
// from the room's colour, so rendering works with any subset of the art
// present.
package assets

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sync"

	_ "image/png"

	_ "golang.org/x/image/webp"
)

// swatchSize is the edge length of the fallback swatch in pixels. Renderers
// scale images to the tile size, so the exact value only matters for tests.
const swatchSize = 64

// Registry caches decoded images by id, including negative results.
type Registry struct {
	dir string

	mu    sync.Mutex
	cache map[string]image.Image
}

// NewRegistry creates a registry reading images from dir. An empty dir means
// every lookup falls back to a swatch.
func NewRegistry(dir string) *Registry {
	return &Registry{
		dir:   dir,
		cache: make(map[string]image.Image),
	}
}

// SwatchColor maps a room colour name to its placeholder colour.
func SwatchColor(name string) color.RGBA {
	switch name {
	case "green":
		return color.RGBA{R: 60, G: 130, B: 60, A: 255}
	case "purple":
		return color.RGBA{R: 110, G: 60, B: 110, A: 255}
	case "orange":
		return color.RGBA{R: 200, G: 120, B: 60, A: 255}
	case "blue":
		return color.RGBA{R: 60, G: 90, B: 160, A: 255}
	default:
		return color.RGBA{R: 120, G: 120, B: 120, A: 255}
	}
}

// Image returns the image for an id. colorName picks the swatch colour used
// when the file cannot be opened or decoded.
func (r *Registry) Image(id, colorName string) image.Image {
	key := id + "|" + colorName

	r.mu.Lock()
	defer r.mu.Unlock()

	if img, ok := r.cache[key]; ok {
		return img
	}

	img := r.load(id)
	if img == nil {
		img = swatch(SwatchColor(colorName))
	}

	r.cache[key] = img
	return img
}

// load reads and decodes an image file, or returns nil.
func (r *Registry) load(id string) image.Image {
	if id == "" || r.dir == "" {
		return nil
	}

	f, err := os.Open(filepath.Join(r.dir, id))
	if err != nil {
		return nil
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil
	}
	return img
}

func swatch(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, swatchSize, swatchSize))
	for y := 0; y < swatchSize; y++ {
		for x := 0; x < swatchSize; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
