package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/samdwyer/hexband/internal/control"
	"github.com/samdwyer/hexband/internal/entity"
	"github.com/samdwyer/hexband/internal/gamedata"
	"github.com/samdwyer/hexband/internal/input"
	"github.com/samdwyer/hexband/internal/ui"
	"github.com/samdwyer/hexband/internal/world"
)

// Session is one battle: the scenario plus the controller and coordinator
// wired to it. Step advances it by one tick.
type Session struct {
	scenario    *gamedata.Scenario
	controller  *control.Controller
	coordinator *Coordinator
	hud         *ui.HUD
	editor      *ui.Panel
	menu        *ui.Panel
	layout      ui.Layout
	log         zerolog.Logger

	quit bool
	over bool
}

// NewSession wires a controller and coordinator to a built scenario.
func NewSession(sc *gamedata.Scenario, layout ui.Layout, log zerolog.Logger) (*Session, error) {
	s := &Session{
		scenario: sc,
		hud:      ui.NewHUD(),
		editor:   ui.NewPanel("Terrain Editor", "c: copy state report", "x: remove active unit", "t: close"),
		menu:     ui.NewPanel("Battle", "Attack", "Defend", "Wait"),
		layout:   layout,
		log:      log,
	}

	controller, err := control.New(sc.Grid, sc.Roster,
		control.WithPresenter(s.hud),
		control.WithLogger(log.With().Str("component", "control").Logger()),
	)
	if err != nil {
		return nil, fmt.Errorf("start scenario %q: %w", sc.Name, err)
	}
	s.controller = controller
	s.coordinator = NewCoordinator(controller, sc.Grid, s.editor, s.menu,
		WithCoordinatorLogger(log.With().Str("component", "mode").Logger()),
	)
	s.coordinator.Tick()
	return s, nil
}

// Controller returns the active unit controller.
func (s *Session) Controller() *control.Controller { return s.controller }

// Coordinator returns the mode coordinator.
func (s *Session) Coordinator() *Coordinator { return s.coordinator }

// HUD returns the presenter the controller reports to.
func (s *Session) HUD() *ui.HUD { return s.hud }

// Quit reports whether the player asked to leave.
func (s *Session) Quit() bool { return s.quit }

// Over reports whether the match has ended because no unit can act.
func (s *Session) Over() bool { return s.over }

// Step runs one tick: the frame's command, controller input, then battle
// menu reconciliation. The returned error is also shown on the HUD.
func (s *Session) Step(ctx context.Context, f input.Frame) error {
	if f.Pressed(input.KeyQuit) {
		s.quit = true
		return nil
	}
	if s.over {
		return nil
	}

	if !f.Empty() {
		s.hud.SetMessage("")
	}
	err := s.command(ctx, f)
	if s.coordinator.Mode() == ModeEnemyTurn {
		// No enemy AI yet; hand the turn straight back.
		if endErr := s.coordinator.EndTurn(ctx); endErr != nil && err == nil {
			err = endErr
		}
	}
	s.coordinator.Tick()

	switch {
	case errors.Is(err, control.ErrNoLivingUnits) || s.scenario.Roster.IsDefeated():
		s.over = true
		s.hud.SetMessage("All units have fallen.")
		s.log.Info().Msg("match over: no living units")
	case err != nil:
		s.hud.SetMessage(err.Error())
		s.log.Debug().Err(err).Msg("action refused")
	}
	return err
}

func (s *Session) command(ctx context.Context, f input.Frame) error {
	if f.Click {
		return s.click(f.ClickX, f.ClickY)
	}

	switch {
	case f.Pressed(input.KeyEditor):
		return s.coordinator.ToggleEditor(ctx)
	case f.Pressed(input.KeyReport) && s.coordinator.EditorOpen():
		return s.copyReport()
	case f.Pressed(input.KeyKill) && s.coordinator.EditorOpen():
		return s.killActive(ctx)
	case s.coordinator.Mode() != ModePlayerTurn:
		return nil
	}

	switch {
	case f.Pressed(input.KeyCycle):
		return s.controller.CycleActiveUnit(ctx)
	case f.Pressed(input.KeyApply):
		s.controller.ApplyMove(ctx)
		return nil
	case f.Pressed(input.KeyUndo):
		s.controller.UndoMove()
		return nil
	case f.Pressed(input.KeyEndTurn):
		s.controller.ApplyMove(ctx)
		return s.coordinator.EndTurn(ctx)
	default:
		return s.controller.Tick(f)
	}
}

// click routes a mouse press through the grid's selection entry point and,
// during the player's turn, steps the active unit there.
func (s *Session) click(x, y int) error {
	c, ok := s.layout.CoordAt(x, y)
	if !ok {
		return nil
	}
	if !s.scenario.Grid.InBounds(c) {
		return nil
	}
	if _, err := s.scenario.Grid.Select(c); err != nil {
		return err
	}
	if s.coordinator.Mode() != ModePlayerTurn {
		return nil
	}
	if !s.controller.IsMovementAllowed() {
		return control.ErrMovementDisabled
	}
	return s.controller.AttemptStep(c)
}

// killActive removes the active unit from play and hands control to the
// next living one.
func (s *Session) killActive(ctx context.Context) error {
	if err := s.controller.KillUnit(s.controller.ActiveIndex()); err != nil {
		return err
	}
	if s.scenario.Roster.IsDefeated() {
		return nil
	}
	return s.controller.CycleActiveUnit(ctx)
}

func (s *Session) copyReport() error {
	if err := writeClipboard(Report(s)); err != nil {
		return fmt.Errorf("copy report: %w", err)
	}
	s.log.Info().Msg("state report copied to clipboard")
	s.hud.SetMessage("State report copied to clipboard.")
	return nil
}

// View assembles what the renderer draws this frame.
func (s *Session) View() ui.View {
	units := make([]*entity.Unit, 0, s.scenario.Roster.Len()+len(s.scenario.Enemies))
	units = append(units, s.scenario.Roster.Units...)
	units = append(units, s.scenario.Enemies...)

	panels := []*ui.Panel{s.editor, s.menu}
	return ui.View{
		Cells:    s.scenario.Grid.Cells(),
		Units:    units,
		ActiveAt: s.controller.CurrentCoordinate(),
		Width:    s.scenario.Grid.Width,
		Height:   s.scenario.Grid.Height,
		Mode:     s.coordinator.Mode().String(),
		HUD:      s.hud,
		Panels:   panels,
	}
}

// Grid returns the battle grid.
func (s *Session) Grid() *world.Grid { return s.scenario.Grid }
