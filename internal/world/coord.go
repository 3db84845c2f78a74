package world

// OutOfBounds is returned by IndexOf for coordinates that have no cell.
const OutOfBounds = -1

// Coord is an axial hex coordinate.
type Coord struct {
	X, Z int
}

// neighborOffsets are the six axial directions, starting east and turning
// counter-clockwise through the opposite pairs.
var neighborOffsets = [6]Coord{
	{X: 1, Z: 0},
	{X: 0, Z: 1},
	{X: -1, Z: 0},
	{X: 0, Z: -1},
	{X: -1, Z: 1},
	{X: 1, Z: -1},
}

// Add returns the component-wise sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Z: c.Z + other.Z}
}

// Neighbors returns all six axial neighbours, including ones off the grid.
func (c Coord) Neighbors() [6]Coord {
	var out [6]Coord
	for i, off := range neighborOffsets {
		out[i] = c.Add(off)
	}
	return out
}

// IsNeighbor reports whether other is one step away from c.
func (c Coord) IsNeighbor(other Coord) bool {
	for _, n := range c.Neighbors() {
		if n == other {
			return true
		}
	}
	return false
}

// Offset returns the column/row position of the coordinate in a
// rectangular, row-staggered layout.
func (c Coord) Offset() (col, row int) {
	return c.X + c.Z/2, c.Z
}

// FromOffset converts a column/row pair back to an axial coordinate.
func FromOffset(col, row int) Coord {
	return Coord{X: col - row/2, Z: row}
}

// IndexOf returns the flat cell index of c on a width x height grid, or
// OutOfBounds.
func IndexOf(c Coord, width, height int) int {
	if width <= 0 || height <= 0 {
		return OutOfBounds
	}
	if c.Z < 0 || c.Z >= height {
		return OutOfBounds
	}
	col, row := c.Offset()
	if col < 0 || col >= width {
		return OutOfBounds
	}
	return row*width + col
}

// CoordAt is the inverse of IndexOf for in-bounds indices.
func CoordAt(index, width int) Coord {
	return FromOffset(index%width, index/width)
}
