package world

import (
	"fmt"
)

// Grid represents the game board with encapsulated cell storage
type Grid struct {
	cells map[int]map[int]*Cell
	rows  int
	cols  int

	startCell *Cell
	exitCell  *Cell
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// StartCell returns the starting cell
func (g *Grid) StartCell() *Cell {
	return g.startCell
}

// ExitCell returns the goal cell, or nil if none has been placed yet
func (g *Grid) ExitCell() *Cell {
	return g.exitCell
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsEdgePosition checks if a position lies on the outer border of the grid
func (g *Grid) IsEdgePosition(row, col int) bool {
	if !g.IsValidPosition(row, col) {
		return false
	}
	return row == 0 || row == g.rows-1 || col == 0 || col == g.cols-1
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}

	if g.cells == nil {
		return nil
	}

	rowMap, found := g.cells[row]
	if !found {
		return nil
	}

	return rowMap[col]
}

// GetCellRelative returns the cell adjacent to the given cell in the specified direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil {
		return nil
	}
	if !dir.IsValid() {
		return nil
	}
	rowRel, colRel := dir.Delta()
	return g.GetCell(c.Row+rowRel, c.Col+colRel)
}

// SetStartCellAt sets the starting cell by position. Returns false if out of bounds.
func (g *Grid) SetStartCellAt(row, col int) bool {
	cell := g.GetCell(row, col)
	if cell == nil {
		return false
	}
	g.startCell = cell
	return true
}

// SetExitCell marks the given cell as the goal. Returns false if the cell is nil or not in this grid.
func (g *Grid) SetExitCell(cell *Cell) bool {
	if cell == nil {
		return false
	}
	if g.GetCell(cell.Row, cell.Col) != cell {
		return false
	}
	g.exitCell = cell
	cell.ExitCell = true
	return true
}

// MarkAsRoom marks the cell at the given position as holding a room. Returns false if out of bounds.
func (g *Grid) MarkAsRoom(row, col int) bool {
	cell := g.GetCell(row, col)
	if cell == nil {
		return false
	}
	cell.Room = true
	return true
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols

	g.cells = make(map[int]map[int]*Cell, rows)

	for currentRow := 0; currentRow < rows; currentRow++ {
		g.cells[currentRow] = make(map[int]*Cell)

		for currentCol := 0; currentCol < cols; currentCol++ {
			cellName := fmt.Sprintf("%v:%v", currentRow, currentCol)

			g.cells[currentRow][currentCol] = NewCell(currentRow, currentCol, cellName)
		}
	}
}

// BuildAllCellConnections connects all cells to their neighbors
func (g *Grid) BuildAllCellConnections() {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell := g.GetCell(row, col)
			if cell != nil {
				g.buildCellConnections(cell)
			}
		}
	}
}

func (g *Grid) buildCellConnections(current *Cell) {
	if current == nil {
		return
	}

	for _, dir := range AllDirections() {
		adj := g.GetCellRelative(current, dir)

		if adj == nil {
			continue
		}

		current.SetNeighbor(dir, adj)
		adj.SetNeighbor(dir.Opposite(), current)
	}
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell := g.GetCell(row, col)
			if cell != nil {
				fn(row, col, cell)
			}
		}
	}
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.rows <= 0 || g.cols <= 0 {
		return "Grid has invalid dimensions"
	}

	if g.startCell == nil {
		return "Grid has no start cell"
	}

	if !g.startCell.Room {
		return "Start cell is not marked as a room"
	}

	return ""
}
