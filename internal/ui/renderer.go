package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hexband/internal/entity"
	"github.com/samdwyer/hexband/internal/world"
)

const helpLine = "tab:next unit  arrows/yuhlbn:step  enter:apply  bksp:undo  e:end turn  t:editor  q:quit"

// View is everything the renderer needs for one frame.
type View struct {
	Cells []world.Cell
	Units []*entity.Unit
	// ActiveAt is where the controlled unit is drawn; it leads the
	// committed position while a move is pending.
	ActiveAt world.Coord
	Width    int
	Height   int
	Mode     string
	HUD      *HUD
	Panels   []*Panel
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	layout Layout
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, layout Layout) *Renderer {
	return &Renderer{screen: screen, layout: layout}
}

// Layout returns the renderer's hex layout, used to resolve mouse clicks.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Render draws the grid, the units, the HUD and any visible panels.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	for _, cell := range v.Cells {
		x, y := r.layout.Center(cell.Coord)
		r.screen.SetContent(x, y, cellRune(cell), cellStyle(cell))
	}

	// Units on top, dead first so a living unit hides a corpse.
	for _, u := range v.Units {
		if !u.IsAlive() {
			x, y := r.layout.Center(u.Position)
			r.screen.SetContent(x, y, unitRune(u), unitStyle(u))
		}
	}
	for _, u := range v.Units {
		if !u.IsAlive() {
			continue
		}
		pos := u.Position
		if u.Controlled {
			pos = v.ActiveAt
		}
		x, y := r.layout.Center(pos)
		r.screen.SetContent(x, y, unitRune(u), unitStyle(u))
	}

	_, gridBottom := r.layout.Size(v.Width, v.Height)
	r.drawHUD(v, gridBottom+1)

	gridRight, _ := r.layout.Size(v.Width, v.Height)
	top := r.layout.OriginY
	for _, p := range v.Panels {
		if p.Visible() {
			top = r.drawPanel(p, gridRight+2, top) + 1
		}
	}

	r.screen.Show()
}

func (r *Renderer) drawHUD(v View, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if v.HUD != nil {
		status := fmt.Sprintf("%-12s unit: %-10s AP: %d", v.Mode, v.HUD.UnitName, v.HUD.AP)
		r.screen.DrawText(0, y, status, style.Bold(true))
		r.screen.DrawText(0, y+1, v.HUD.Message, style.Foreground(tcell.ColorOrange))
	}
	r.screen.DrawText(0, y+2, helpLine, style.Foreground(tcell.ColorGray))
}

// drawPanel draws a titled box and returns the row below it.
func (r *Renderer) drawPanel(p *Panel, x, y int) int {
	border := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	r.screen.DrawText(x, y, "+ "+p.Title+" +", border.Bold(true))
	for i, line := range p.Lines {
		r.screen.DrawText(x, y+1+i, "| "+line, border)
	}
	return y + 1 + len(p.Lines)
}

func cellRune(c world.Cell) rune {
	// Units draw the occupant themselves.
	if c.Occupied {
		return '.'
	}
	return c.Rune()
}

func cellStyle(c world.Cell) tcell.Style {
	switch c.Highlight {
	case world.HighlightPath:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case world.HighlightSelected:
		return tcell.StyleDefault.Foreground(tcell.ColorAqua)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}
}

func unitRune(u *entity.Unit) rune {
	if !u.IsAlive() {
		return 'x'
	}
	return u.Glyph
}

func unitStyle(u *entity.Unit) tcell.Style {
	if !u.IsAlive() {
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}
	style := tcell.StyleDefault.Foreground(u.Color)
	if u.Controlled {
		style = style.Bold(true).Reverse(true)
	}
	return style
}
