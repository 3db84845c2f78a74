// Package world provides the hex grid and its occupancy model.
package world

// Highlight is the transient move-preview state of a cell.
type Highlight int

const (
	// HighlightNone is a blank cell.
	HighlightNone Highlight = iota
	// HighlightPath marks a cell on the pending move path.
	HighlightPath
	// HighlightSelected marks the most recently selected cell.
	HighlightSelected
)

// String returns a human-readable highlight name.
func (h Highlight) String() string {
	switch h {
	case HighlightNone:
		return "none"
	case HighlightPath:
		return "path"
	case HighlightSelected:
		return "selected"
	default:
		return "unknown"
	}
}

// Cell is a single grid position.
type Cell struct {
	Coord     Coord
	Occupied  bool
	Highlight Highlight
}

// Rune returns the cell's display character.
func (c Cell) Rune() rune {
	switch {
	case c.Occupied:
		return 'o'
	case c.Highlight == HighlightPath:
		return '*'
	case c.Highlight == HighlightSelected:
		return '+'
	default:
		return '.'
	}
}
