package rooms

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog is the full set of room blueprints available to a run.
type Catalog struct {
	Rooms []*Blueprint
}

type catalogFile struct {
	Rooms []*Blueprint `yaml:"rooms"`
}

// Load reads a catalog from the given path, or the embedded default catalog
// when path is empty. A path that cannot be read or parsed is a hard error:
// an explicitly requested catalog must not silently fall back.
func Load(path string) (*Catalog, error) {
	data := defaultCatalogYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("rooms: read catalog: %w", err)
		}
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("rooms: parse catalog: %w", err)
	}

	c := &Catalog{Rooms: file.Rooms}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	if len(c.Rooms) == 0 {
		return fmt.Errorf("rooms: catalog is empty")
	}

	seen := make(map[string]bool, len(c.Rooms))
	for _, b := range c.Rooms {
		if b.Name == "" {
			return fmt.Errorf("rooms: blueprint without a name")
		}
		if seen[b.Name] {
			return fmt.Errorf("rooms: duplicate blueprint %q", b.Name)
		}
		seen[b.Name] = true

		if b.Ports.Count() == 0 {
			return fmt.Errorf("rooms: %q has no doorways", b.Name)
		}

		switch b.Color {
		case ColorBlue, ColorGreen, ColorPurple, ColorOrange:
		default:
			return fmt.Errorf("rooms: %q has unknown color %q", b.Name, b.Color)
		}

		if b.Rarity < 0 || b.Rarity > 3 {
			return fmt.Errorf("rooms: %q has rarity %d outside 0..3", b.Name, b.Rarity)
		}
	}

	if !seen[NameEntranceHall] {
		return fmt.Errorf("rooms: catalog has no %q", NameEntranceHall)
	}
	if !seen[NameAntechamber] {
		return fmt.Errorf("rooms: catalog has no %q", NameAntechamber)
	}

	return nil
}

// ByName returns the blueprint with the given name, or nil.
func (c *Catalog) ByName(name string) *Blueprint {
	for _, b := range c.Rooms {
		if b.Name == name {
			return b
		}
	}
	return nil
}
