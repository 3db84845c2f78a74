package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// Report renders a plain-text snapshot of the session for bug reports.
//
//	scenario="Ford at Brenmoor" grid=12x9 occupied=6
//	mode=paused last=player_turn editor=true menu=false
//	active=1 Bryn ap=2/3 at (1,6) initial=(0,6) phase=move_accumulating path=[(1,6)]
//	>1 Bryn     alive ap=2/3 (0,6)
func Report(s *Session) string {
	var b strings.Builder
	c := s.coordinator
	ctrl := s.controller
	u := ctrl.Active()

	fmt.Fprintf(&b, "scenario=%q grid=%dx%d occupied=%d\n",
		s.scenario.Name, s.scenario.Grid.Width, s.scenario.Grid.Height, s.scenario.Grid.OccupiedCount())
	fmt.Fprintf(&b, "mode=%s last=%s editor=%t menu=%t\n",
		c.Mode(), c.LastMode(), c.EditorOpen(), c.ContextMenuOpen())
	fmt.Fprintf(&b, "active=%d %s ap=%d/%d at %s initial=%s phase=%s path=%s\n",
		ctrl.ActiveIndex(), u.Name, u.AP, u.MaxAP,
		formatCoord(ctrl.CurrentCoordinate()), formatCoord(ctrl.InitialCoordinate()),
		ctrl.Phase(), formatPath(ctrl.PendingPath()))

	for i, unit := range s.scenario.Roster.Units {
		marker := " "
		if unit.Controlled {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s%d %-8s %-5s ap=%d/%d %s\n",
			marker, i, unit.Name, unit.Status, unit.AP, unit.MaxAP, formatCoord(unit.Position))
	}
	for _, e := range s.scenario.Enemies {
		fmt.Fprintf(&b, " - %-8s %-5s %s\n", e.Name, e.Status, formatCoord(e.Position))
	}
	return b.String()
}
