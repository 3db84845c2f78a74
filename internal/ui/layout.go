package ui

import "github.com/samdwyer/hexband/internal/world"

const (
	cellWidth  = 4 // terminal columns per hex
	rowHeight  = 2 // terminal rows per hex row
	rowStagger = 2 // odd rows shift right by half a cell
)

// Layout maps hex coordinates to terminal cells and back. Rows of hexes are
// drawn two lines apart, with odd rows shifted half a cell to the right.
type Layout struct {
	OriginX, OriginY int
}

// DefaultLayout leaves room for a border around the grid.
var DefaultLayout = Layout{OriginX: 2, OriginY: 1}

// CellOrigin returns the top-left terminal cell of the hex at c.
func (l Layout) CellOrigin(c world.Coord) (x, y int) {
	col, row := c.Offset()
	x = l.OriginX + col*cellWidth
	if row%2 != 0 {
		x += rowStagger
	}
	return x, l.OriginY + row*rowHeight
}

// Center returns the terminal cell where a hex's glyph is drawn.
func (l Layout) Center(c world.Coord) (x, y int) {
	x, y = l.CellOrigin(c)
	return x + 1, y
}

// CoordAt maps a terminal position back to the hex drawn there. It returns
// false for positions left of or above the grid origin; grid bounds are
// the caller's concern.
func (l Layout) CoordAt(x, y int) (world.Coord, bool) {
	dy := y - l.OriginY
	if dy < 0 {
		return world.Coord{}, false
	}
	row := dy / rowHeight

	dx := x - l.OriginX
	if row%2 != 0 {
		dx -= rowStagger
	}
	if dx < 0 {
		return world.Coord{}, false
	}
	return world.FromOffset(dx/cellWidth, row), true
}

// Size returns the terminal extent of a width x height grid.
func (l Layout) Size(width, height int) (w, h int) {
	return l.OriginX + width*cellWidth + rowStagger, l.OriginY + height*rowHeight
}
