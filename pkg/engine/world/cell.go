// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Cell represents a single cell/tile in the grid.
// This is a generic engine primitive that can be extended by games.
type Cell struct {
	// Basic identification
	Name string

	// Grid position
	Row int
	Col int

	// Navigation - links to adjacent cells
	North *Cell
	East  *Cell
	South *Cell
	West  *Cell

	// Visibility state
	Visited bool

	// Cell type flags
	Room     bool // Does this cell hold a placed room?
	ExitCell bool // Is this the exit/goal cell?

	// GameData holds game-specific extensions.
	// Games should cast this to their specific type (e.g., *GameCellData).
	// This allows the engine Cell to remain generic while supporting
	// game-specific room data, locks, furniture, etc.
	GameData interface{}
}

// NewCell creates a new cell at the given position
func NewCell(row, col int, name string) *Cell {
	return &Cell{
		Name: name,
		Row:  row,
		Col:  col,
	}
}

// GetNeighbor returns the neighboring cell in the given direction
func (c *Cell) GetNeighbor(dir Direction) *Cell {
	if c == nil {
		return nil
	}
	switch dir {
	case North:
		return c.North
	case East:
		return c.East
	case South:
		return c.South
	case West:
		return c.West
	default:
		return nil
	}
}

// SetNeighbor sets the neighboring cell in the given direction
func (c *Cell) SetNeighbor(dir Direction, neighbor *Cell) {
	if c == nil {
		return
	}
	switch dir {
	case North:
		c.North = neighbor
	case East:
		c.East = neighbor
	case South:
		c.South = neighbor
	case West:
		c.West = neighbor
	}
}

// GetNeighbors returns all non-nil adjacent cells
func (c *Cell) GetNeighbors() []*Cell {
	var neighbors []*Cell
	if c.North != nil {
		neighbors = append(neighbors, c.North)
	}
	if c.East != nil {
		neighbors = append(neighbors, c.East)
	}
	if c.South != nil {
		neighbors = append(neighbors, c.South)
	}
	if c.West != nil {
		neighbors = append(neighbors, c.West)
	}
	return neighbors
}
