// Package control owns the active unit: which roster unit receives input,
// its pending move path and its action point budget.
package control

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hexband/internal/entity"
	"github.com/samdwyer/hexband/internal/input"
	"github.com/samdwyer/hexband/internal/telemetry"
	"github.com/samdwyer/hexband/internal/world"
)

var (
	// ErrEmptyRoster is returned when a controller is built without units.
	ErrEmptyRoster = errors.New("roster is empty")
	// ErrNoLivingUnits is returned when every roster unit is dead.
	ErrNoLivingUnits = errors.New("no living units")
	// ErrMovementDisabled is returned while the controller is switched off.
	ErrMovementDisabled = errors.New("movement disabled")
	// ErrInsufficientAP is returned when a step costs more AP than the unit has.
	ErrInsufficientAP = errors.New("insufficient action points")
	// ErrNotAdjacent is returned for a step that skips cells.
	ErrNotAdjacent = errors.New("step target is not adjacent")
	// ErrCellOccupied is returned for a step onto an occupied cell.
	ErrCellOccupied = errors.New("cell is occupied")
	// ErrUnknownUnit is returned for a roster index with no unit.
	ErrUnknownUnit = errors.New("unknown unit")
)

// stepCost is the AP charged per cell moved.
const stepCost = 1

// Phase is the move state of the active selection.
type Phase int

const (
	// PhaseIdle - no steps pending since selection, apply or undo
	PhaseIdle Phase = iota
	// PhaseMoveAccumulating - at least one step pending
	PhaseMoveAccumulating
	// PhaseMoveApplied - last pending path was committed
	PhaseMoveApplied
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseMoveAccumulating:
		return "move_accumulating"
	case PhaseMoveApplied:
		return "move_applied"
	default:
		return "unknown"
	}
}

// Presenter receives fire-and-forget notifications about the active unit.
type Presenter interface {
	ActiveUnitChanged(name string)
	APChanged(ap int)
}

// Option configures a Controller.
type Option func(*Controller)

// WithPresenter attaches a presentation layer.
func WithPresenter(p Presenter) Option {
	return func(c *Controller) { c.presenter = p }
}

// WithLogger sets the controller's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// Controller cycles the active unit and accumulates, commits and undoes
// its moves. It is not safe for concurrent use; the game loop owns it.
type Controller struct {
	grid      *world.Grid
	roster    *entity.Roster
	presenter Presenter
	log       zerolog.Logger

	active  int
	initial world.Coord   // committed position when the current move sequence began
	path    []world.Coord // pending steps, never containing initial
	phase   Phase

	enabled bool // explicit override set by modal UI
	gated   bool // last observed result of IsMovementAllowed, for logging
}

// New creates a controller over grid and roster with the first living unit
// active.
func New(grid *world.Grid, roster *entity.Roster, opts ...Option) (*Controller, error) {
	if roster == nil || roster.Len() == 0 {
		return nil, ErrEmptyRoster
	}
	first := roster.FirstAlive()
	if first < 0 {
		return nil, ErrNoLivingUnits
	}

	c := &Controller{
		grid:    grid,
		roster:  roster,
		log:     zerolog.Nop(),
		active:  first,
		enabled: true,
	}
	for _, opt := range opts {
		opt(c)
	}

	u := c.Active()
	c.initial = u.Position
	c.gated = c.IsMovementAllowed()
	c.markControlled()
	c.notifyActive()
	return c, nil
}

// Active returns the active unit.
func (c *Controller) Active() *entity.Unit {
	return c.roster.At(c.active)
}

// ActiveIndex returns the roster index of the active unit.
func (c *Controller) ActiveIndex() int {
	return c.active
}

// Roster returns the controlled roster.
func (c *Controller) Roster() *entity.Roster {
	return c.roster
}

// Phase returns the move state of the active selection.
func (c *Controller) Phase() Phase {
	return c.phase
}

// InitialCoordinate returns where the current move sequence began.
func (c *Controller) InitialCoordinate() world.Coord {
	return c.initial
}

// PendingPath returns a copy of the uncommitted steps.
func (c *Controller) PendingPath() []world.Coord {
	out := make([]world.Coord, len(c.path))
	copy(out, c.path)
	return out
}

// CurrentCoordinate returns the active unit's logical position: the end of
// the pending path, or its committed position if nothing is pending.
func (c *Controller) CurrentCoordinate() world.Coord {
	if n := len(c.path); n > 0 {
		return c.path[n-1]
	}
	return c.Active().Position
}

// CycleActiveUnit commits any pending move and makes the next living unit
// active. If every unit is dead it returns ErrNoLivingUnits and changes
// nothing.
func (c *Controller) CycleActiveUnit(ctx context.Context) error {
	tracer := telemetry.Tracer("control")
	ctx, span := tracer.Start(ctx, "unit.cycle")
	defer span.End()

	next := c.roster.NextAlive(c.active)
	if next < 0 {
		span.SetAttributes(attribute.Bool("no_living_units", true))
		c.log.Warn().Int("roster", c.roster.Len()).Msg("cycle requested with no living units")
		return ErrNoLivingUnits
	}

	if len(c.path) > 0 {
		c.ApplyMove(ctx)
	}

	from := c.Active()
	if from.IsAlive() {
		if err := c.grid.Occupy(from.Position); err != nil {
			c.log.Warn().Err(err).Str("unit", from.Name).Msg("occupy on cycle")
		}
	} else {
		_ = c.grid.Vacate(from.Position)
	}

	c.active = next
	to := c.Active()
	c.initial = to.Position
	c.phase = PhaseIdle
	c.markControlled()

	span.SetAttributes(
		attribute.String("from", from.Name),
		attribute.String("to", to.Name),
		attribute.Int("index", next),
		attribute.Int("ap", to.AP),
	)
	c.log.Debug().Str("from", from.Name).Str("to", to.Name).Int("ap", to.AP).Msg("active unit changed")

	c.notifyActive()
	return nil
}

// AttemptStep extends the pending path by one cell and deducts its AP.
// Stepping back onto the previous cell of the path undoes the last step and
// refunds it instead.
func (c *Controller) AttemptStep(to world.Coord) error {
	if !c.enabled {
		return ErrMovementDisabled
	}
	if !c.grid.InBounds(to) {
		return fmt.Errorf("step to %v: %w", to, world.ErrOutOfBounds)
	}
	from := c.CurrentCoordinate()
	if !from.IsNeighbor(to) {
		return fmt.Errorf("step %v -> %v: %w", from, to, ErrNotAdjacent)
	}

	u := c.Active()
	if n := len(c.path); n > 0 && to == c.previousCoordinate() {
		_ = c.grid.Highlight(c.path[n-1], world.HighlightNone)
		c.path = c.path[:n-1]
		u.RefundAP(stepCost)
		if len(c.path) == 0 {
			c.phase = PhaseIdle
		}
		c.notifyAP()
		return nil
	}

	if c.grid.IsOccupied(to) {
		return fmt.Errorf("step to %v: %w", to, ErrCellOccupied)
	}
	if !u.SpendAP(stepCost) {
		return fmt.Errorf("step to %v with %d AP: %w", to, u.AP, ErrInsufficientAP)
	}

	c.path = append(c.path, to)
	_ = c.grid.Highlight(to, world.HighlightPath)
	c.phase = PhaseMoveAccumulating
	c.notifyAP()
	return nil
}

// previousCoordinate returns the cell before the end of the pending path.
func (c *Controller) previousCoordinate() world.Coord {
	if n := len(c.path); n > 1 {
		return c.path[n-2]
	}
	return c.initial
}

// ApplyMove commits the pending path as the active unit's position. AP was
// already charged step by step in AttemptStep and is not checked again.
func (c *Controller) ApplyMove(ctx context.Context) {
	tracer := telemetry.Tracer("control")
	_, span := tracer.Start(ctx, "unit.apply_move")
	defer span.End()

	u := c.Active()
	steps := len(c.path)
	if steps > 0 {
		dest := c.path[steps-1]
		_ = c.grid.Vacate(u.Position)
		u.Position = dest
		if err := c.grid.Occupy(dest); err != nil {
			c.log.Warn().Err(err).Str("unit", u.Name).Msg("occupy on apply")
		}
		c.phase = PhaseMoveApplied

		c.log.Debug().Str("unit", u.Name).Int("steps", steps).Int("ap", u.AP).Msg("move applied")
	}

	span.SetAttributes(
		attribute.String("unit", u.Name),
		attribute.Int("steps", steps),
		attribute.Int("ap_remaining", u.AP),
	)

	c.path = nil
	c.initial = u.Position
	c.grid.ResetHighlights()
}

// UndoMove discards the pending path and refunds its AP. A committed
// position is never rolled back.
func (c *Controller) UndoMove() {
	steps := len(c.path)
	c.path = nil
	c.grid.ResetHighlights()
	if steps == 0 {
		return
	}
	c.Active().RefundAP(steps * stepCost)
	c.phase = PhaseIdle
	c.notifyAP()
}

// KillUnit marks roster unit i dead and frees its cell. If it is the active
// unit its pending path is dropped; it stays active until the next cycle.
func (c *Controller) KillUnit(i int) error {
	u := c.roster.At(i)
	if u == nil {
		return fmt.Errorf("kill unit %d: %w", i, ErrUnknownUnit)
	}
	if !u.IsAlive() {
		return nil
	}

	if i == c.active {
		c.path = nil
		c.grid.ResetHighlights()
		c.initial = u.Position
		c.phase = PhaseIdle
	}
	u.Kill()
	_ = c.grid.Vacate(u.Position)

	c.log.Info().Str("unit", u.Name).Int("index", i).Msg("unit killed")
	if i == c.active {
		c.notifyAP()
	}
	return nil
}

// IsMovementAllowed returns true if the controller is enabled and the
// active unit has AP left. Evaluated on every call.
func (c *Controller) IsMovementAllowed() bool {
	u := c.Active()
	return c.enabled && u != nil && u.AP > 0
}

// SetControllerEnabled switches movement on or off regardless of AP. It
// does not touch AP, so re-enabling falls back to AP gating.
func (c *Controller) SetControllerEnabled(enabled bool) {
	if c.enabled == enabled {
		return
	}
	c.enabled = enabled
	if enabled {
		c.log.Info().Msg("controller enabled")
	} else {
		c.log.Info().Msg("controller disabled")
	}
}

// Enabled reports the explicit override.
func (c *Controller) Enabled() bool {
	return c.enabled
}

// AdjacentUnitsPresent reports whether any in-bounds neighbour of the
// active unit's current coordinate is occupied. During a pending move the
// unit's own committed cell is not counted.
func (c *Controller) AdjacentUnitsPresent() bool {
	u := c.Active()
	current := c.CurrentCoordinate()
	for _, n := range current.Neighbors() {
		if c.grid.IndexOf(n) == world.OutOfBounds {
			continue
		}
		if n == u.Position {
			continue
		}
		if c.grid.IsOccupied(n) {
			return true
		}
	}
	return false
}

// Tick reads one frame of movement input. The delta is applied only while
// movement is allowed.
func (c *Controller) Tick(in input.Source) error {
	allowed := c.IsMovementAllowed()
	if allowed != c.gated {
		c.gated = allowed
		c.log.Debug().Bool("allowed", allowed).Int("ap", c.Active().AP).Msg("movement gate changed")
	}
	if !allowed || in == nil {
		return nil
	}

	dx, dz := in.Axis()
	if dx == 0 && dz == 0 {
		return nil
	}
	return c.AttemptStep(c.CurrentCoordinate().Add(world.Coord{X: dx, Z: dz}))
}

// BeginTurn refills AP for every living unit.
func (c *Controller) BeginTurn() {
	for _, u := range c.roster.Units {
		u.RestoreAP()
	}
	c.notifyAP()
}

// markControlled tags the active unit and clears the tag everywhere else.
func (c *Controller) markControlled() {
	for i, u := range c.roster.Units {
		u.Controlled = i == c.active
	}
}

func (c *Controller) notifyActive() {
	if c.presenter == nil {
		return
	}
	u := c.Active()
	c.presenter.ActiveUnitChanged(u.Name)
	c.presenter.APChanged(u.AP)
}

func (c *Controller) notifyAP() {
	if c.presenter == nil {
		return
	}
	c.presenter.APChanged(c.Active().AP)
}
