package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hexband/internal/gamedata"
	"github.com/samdwyer/hexband/internal/input"
	"github.com/samdwyer/hexband/internal/telemetry"
	"github.com/samdwyer/hexband/internal/ui"
)

// Game drives a Session from terminal input: the external frame loop.
type Game struct {
	cfg      Config
	log      zerolog.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	running  bool
}

// New creates a new game instance and takes over the terminal.
func New(cfg Config, log zerolog.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		log:      log,
		screen:   screen,
		renderer: ui.NewRenderer(screen, ui.DefaultLayout),
		running:  true,
	}, nil
}

// Run loads the scenario and executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	tracer := telemetry.Tracer("game")
	initCtx, initSpan := tracer.Start(ctx, "game.init")

	sc, err := g.loadScenario(initCtx)
	if err != nil {
		initSpan.End()
		return err
	}
	g.session, err = NewSession(sc, g.renderer.Layout(), g.log)
	if err != nil {
		initSpan.End()
		return err
	}

	initSpan.SetAttributes(
		attribute.String("scenario", sc.Name),
		attribute.Int("roster", sc.Roster.Len()),
		attribute.Int("enemies", len(sc.Enemies)),
	)
	initSpan.End()
	g.log.Info().Str("scenario", sc.Name).Int("roster", sc.Roster.Len()).Msg("battle started")

	for g.running {
		g.renderer.Render(g.session.View())
		g.handleInput(ctx)
	}
	return nil
}

func (g *Game) loadScenario(ctx context.Context) (*gamedata.Scenario, error) {
	if g.cfg.ScenarioPath != "" {
		return gamedata.LoadScenarioFile(ctx, g.cfg.ScenarioPath)
	}
	return gamedata.LoadScenario(ctx)
}

// handleInput processes a single input event as one tick.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()
	if _, ok := ev.(*tcell.EventResize); ok {
		g.screen.Sync()
		return
	}

	_ = g.session.Step(ctx, input.FromEvent(ev))
	if g.session.Quit() {
		g.running = false
	}
}
