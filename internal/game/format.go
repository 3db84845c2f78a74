package game

import (
	"strconv"
	"strings"

	"github.com/samdwyer/hexband/internal/world"
)

func formatCoord(c world.Coord) string {
	return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Z) + ")"
}

func formatPath(path []world.Coord) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = formatCoord(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
