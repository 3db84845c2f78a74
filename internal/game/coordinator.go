package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hexband/internal/telemetry"
)

// ErrInvalidModeTransition is returned when a mode change is refused.
var ErrInvalidModeTransition = errors.New("invalid mode transition")

// Surface is a modal UI element the coordinator shows and hides.
type Surface interface {
	SetVisible(visible bool)
}

// UnitControl is the part of the active unit controller the coordinator drives.
type UnitControl interface {
	AdjacentUnitsPresent() bool
	SetControllerEnabled(enabled bool)
	BeginTurn()
}

// Interaction toggles whether the grid accepts clicks.
type Interaction interface {
	SetInteractionEnabled(enabled bool)
}

// EditorGuard lets the caller veto opening or closing the editor in a mode.
// There is no built-in restriction.
type EditorGuard func(current Mode, opening bool) bool

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithEditorGuard installs a caller policy for editor toggles.
func WithEditorGuard(guard EditorGuard) CoordinatorOption {
	return func(c *Coordinator) { c.guard = guard }
}

// WithCoordinatorLogger sets the coordinator's logger.
func WithCoordinatorLogger(l zerolog.Logger) CoordinatorOption {
	return func(c *Coordinator) { c.log = l }
}

// Coordinator owns the global mode and the editor and battle menu flags.
type Coordinator struct {
	units  UnitControl
	grid   Interaction
	editor Surface
	menu   Surface
	guard  EditorGuard
	log    zerolog.Logger

	mode       Mode
	lastMode   Mode
	editorOpen bool
	menuOpen   bool
}

// NewCoordinator starts in the player's turn with both modal surfaces hidden.
func NewCoordinator(units UnitControl, grid Interaction, editor, menu Surface, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		units:    units,
		grid:     grid,
		editor:   editor,
		menu:     menu,
		log:      zerolog.Nop(),
		mode:     ModePlayerTurn,
		lastMode: ModePlayerTurn,
	}
	for _, opt := range opts {
		opt(c)
	}
	setVisible(c.editor, false)
	setVisible(c.menu, false)
	return c
}

// Mode returns the current mode.
func (c *Coordinator) Mode() Mode { return c.mode }

// LastMode returns the mode the editor will restore on close.
func (c *Coordinator) LastMode() Mode { return c.lastMode }

// EditorOpen reports whether the editor is open.
func (c *Coordinator) EditorOpen() bool { return c.editorOpen }

// ContextMenuOpen reports whether the battle menu is open.
func (c *Coordinator) ContextMenuOpen() bool { return c.menuOpen }

// ToggleEditor opens the editor, pausing the game and freezing input, or
// closes it and restores the mode it interrupted. The battle menu is left
// for the next Tick to reconcile.
func (c *Coordinator) ToggleEditor(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "mode.toggle_editor")
	defer span.End()

	opening := !c.editorOpen
	span.SetAttributes(
		attribute.Bool("opening", opening),
		attribute.String("mode", c.mode.String()),
	)

	if c.guard != nil && !c.guard(c.mode, opening) {
		span.SetAttributes(attribute.Bool("refused", true))
		return fmt.Errorf("toggle editor in %s: %w", c.mode, ErrInvalidModeTransition)
	}

	if opening {
		c.openEditor()
	} else {
		c.closeEditor()
	}
	return nil
}

func (c *Coordinator) openEditor() {
	c.editorOpen = true
	setVisible(c.editor, true)

	c.units.SetControllerEnabled(false)
	c.grid.SetInteractionEnabled(false)
	c.lastMode = c.mode
	c.mode = ModePaused

	c.log.Info().Str("resume", c.lastMode.String()).Msg("editor opened")
}

func (c *Coordinator) closeEditor() {
	c.editorOpen = false
	setVisible(c.editor, false)

	c.units.SetControllerEnabled(true)
	c.grid.SetInteractionEnabled(true)
	c.mode = c.lastMode

	c.log.Info().Str("mode", c.mode.String()).Msg("editor closed")
}

// Tick opens the battle menu while a unit is adjacent to the active one
// and closes it otherwise. Repeated calls with unchanged adjacency do
// nothing.
func (c *Coordinator) Tick() {
	adjacent := c.units.AdjacentUnitsPresent()
	switch {
	case adjacent && !c.menuOpen:
		c.menuOpen = true
		setVisible(c.menu, true)
		c.log.Debug().Msg("adjacent units, battle menu opened")
	case !adjacent && c.menuOpen:
		c.menuOpen = false
		setVisible(c.menu, false)
		c.log.Debug().Msg("no adjacent units, battle menu closed")
	}
}

// EndTurn passes the turn to the other side. A new player turn refills AP.
func (c *Coordinator) EndTurn(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "mode.end_turn")
	defer span.End()
	span.SetAttributes(attribute.String("from", c.mode.String()))

	switch c.mode {
	case ModePlayerTurn:
		c.mode = ModeEnemyTurn
	case ModeEnemyTurn:
		c.mode = ModePlayerTurn
		c.units.BeginTurn()
	default:
		return fmt.Errorf("end turn in %s: %w", c.mode, ErrInvalidModeTransition)
	}

	c.log.Info().Str("mode", c.mode.String()).Msg("turn ended")
	return nil
}

func setVisible(s Surface, visible bool) {
	if s != nil {
		s.SetVisible(visible)
	}
}
