package world

import "errors"

const (
	// Default grid dimensions
	DefaultWidth  = 12
	DefaultHeight = 9
)

var (
	// ErrOutOfBounds is returned for coordinates with no cell.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInteractionDisabled is returned by Select while a modal UI holds the grid.
	ErrInteractionDisabled = errors.New("grid interaction disabled")
)

// Grid is the authoritative occupancy map. Cells are created with the grid
// and never removed.
type Grid struct {
	Width  int
	Height int

	cells              []Cell
	interactionEnabled bool
}

// NewGrid creates a width x height grid of empty cells.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{Coord: CoordAt(i, width)}
	}
	return &Grid{
		Width:              width,
		Height:             height,
		cells:              cells,
		interactionEnabled: true,
	}
}

// IndexOf returns the flat index of c, or OutOfBounds.
func (g *Grid) IndexOf(c Coord) int {
	return IndexOf(c, g.Width, g.Height)
}

// InBounds returns true if c has a cell.
func (g *Grid) InBounds(c Coord) bool {
	return g.IndexOf(c) != OutOfBounds
}

// Cell returns the cell at c.
func (g *Grid) Cell(c Coord) (Cell, bool) {
	i := g.IndexOf(c)
	if i == OutOfBounds {
		return Cell{}, false
	}
	return g.cells[i], true
}

// Cells returns a snapshot of every cell in index order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Occupy marks the cell at c as occupied.
func (g *Grid) Occupy(c Coord) error {
	return g.setOccupied(c, true)
}

// Vacate clears the occupied flag of the cell at c.
func (g *Grid) Vacate(c Coord) error {
	return g.setOccupied(c, false)
}

func (g *Grid) setOccupied(c Coord, occupied bool) error {
	i := g.IndexOf(c)
	if i == OutOfBounds {
		return ErrOutOfBounds
	}
	g.cells[i].Occupied = occupied
	return nil
}

// IsOccupied returns true if an in-bounds cell at c is occupied.
func (g *Grid) IsOccupied(c Coord) bool {
	i := g.IndexOf(c)
	if i == OutOfBounds {
		return false
	}
	return g.cells[i].Occupied
}

// OccupiedCount returns the number of occupied cells.
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, cell := range g.cells {
		if cell.Occupied {
			count++
		}
	}
	return count
}

// Neighbors returns the in-bounds neighbours of c.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 6)
	for _, n := range c.Neighbors() {
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Highlight sets the preview state of the cell at c.
func (g *Grid) Highlight(c Coord, h Highlight) error {
	i := g.IndexOf(c)
	if i == OutOfBounds {
		return ErrOutOfBounds
	}
	g.cells[i].Highlight = h
	return nil
}

// ResetHighlights clears move-preview state on every cell. Occupancy is untouched.
func (g *Grid) ResetHighlights() {
	for i := range g.cells {
		g.cells[i].Highlight = HighlightNone
	}
}

// SetInteractionEnabled toggles whether Select accepts input.
func (g *Grid) SetInteractionEnabled(enabled bool) {
	g.interactionEnabled = enabled
}

// InteractionEnabled reports whether the grid accepts selection input.
func (g *Grid) InteractionEnabled() bool {
	return g.interactionEnabled
}

// Select is the click entry point for input handling. It marks the cell
// selected and returns it.
func (g *Grid) Select(c Coord) (Cell, error) {
	if !g.interactionEnabled {
		return Cell{}, ErrInteractionDisabled
	}
	i := g.IndexOf(c)
	if i == OutOfBounds {
		return Cell{}, ErrOutOfBounds
	}
	if g.cells[i].Highlight == HighlightNone {
		g.cells[i].Highlight = HighlightSelected
	}
	return g.cells[i], nil
}
