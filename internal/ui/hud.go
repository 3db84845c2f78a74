package ui

// HUD shows the active unit, its AP and the last status message. It
// implements control.Presenter.
type HUD struct {
	UnitName string
	AP       int
	Message  string
}

// NewHUD creates an empty HUD.
func NewHUD() *HUD {
	return &HUD{}
}

// ActiveUnitChanged records the name of the new active unit.
func (h *HUD) ActiveUnitChanged(name string) {
	h.UnitName = name
}

// APChanged records the active unit's AP.
func (h *HUD) APChanged(ap int) {
	h.AP = ap
}

// SetMessage replaces the status line.
func (h *HUD) SetMessage(msg string) {
	h.Message = msg
}

// Panel is a modal box such as the terrain editor or the battle menu. Its
// content is static; the game only shows and hides it.
type Panel struct {
	Title string
	Lines []string

	visible bool
}

// NewPanel creates a hidden panel.
func NewPanel(title string, lines ...string) *Panel {
	return &Panel{Title: title, Lines: lines}
}

// SetVisible shows or hides the panel.
func (p *Panel) SetVisible(visible bool) {
	p.visible = visible
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool {
	return p.visible
}
