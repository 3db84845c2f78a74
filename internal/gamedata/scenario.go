package gamedata

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hexband/internal/entity"
	"github.com/samdwyer/hexband/internal/telemetry"
	"github.com/samdwyer/hexband/internal/world"
)

// DefaultScenario is the embedded scenario file.
const DefaultScenario = "scenario.json"

// defaultAP is used for units that omit an AP budget.
const defaultAP = 3

// ErrInvalidScenario is returned when a scenario cannot be built.
var ErrInvalidScenario = errors.New("invalid scenario")

// UnitDef places one unit on the grid.
type UnitDef struct {
	ID    string `json:"id,omitempty"`    // Stable identifier; generated when empty
	Name  string `json:"name"`            // Display name
	Glyph string `json:"glyph,omitempty"` // Single character for rendering
	Color string `json:"color,omitempty"` // Hex color code (e.g., "#00FF00")
	AP    int    `json:"ap,omitempty"`    // Action points per turn
	X     int    `json:"x"`               // Axial X
	Z     int    `json:"z"`               // Axial Z
	Dead  bool   `json:"dead,omitempty"`  // Starts dead; kept in the roster but never active
}

// GlyphRune returns the glyph as a rune, or the first letter of the name.
func (d UnitDef) GlyphRune() rune {
	for _, r := range d.Glyph {
		return r
	}
	for _, r := range d.Name {
		return r
	}
	return '?'
}

// ScenarioDef is the JSON form of a battle setup.
type ScenarioDef struct {
	Name    string    `json:"name"`
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Units   []UnitDef `json:"units"`
	Enemies []UnitDef `json:"enemies,omitempty"`
}

// Scenario is a built battle: the grid with every living unit's cell
// already occupied, the ordered player roster and the enemy units.
type Scenario struct {
	Name    string
	Grid    *world.Grid
	Roster  *entity.Roster
	Enemies []*entity.Unit
}

// LoadScenario builds the embedded default scenario.
func LoadScenario(ctx context.Context) (*Scenario, error) {
	def, err := Load[ScenarioDef](DefaultScenario)
	if err != nil {
		return nil, err
	}
	return def.Build(ctx)
}

// LoadScenarioFile builds a scenario from a JSON file on disk.
func LoadScenarioFile(ctx context.Context, path string) (*Scenario, error) {
	def, err := LoadFile[ScenarioDef](path)
	if err != nil {
		return nil, err
	}
	return def.Build(ctx)
}

// Build validates the definition and creates the grid, roster and enemies.
func (d ScenarioDef) Build(ctx context.Context) (*Scenario, error) {
	tracer := telemetry.Tracer("gamedata")
	_, span := tracer.Start(ctx, "scenario.load")
	defer span.End()

	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidScenario, d.Width, d.Height)
	}
	if len(d.Units) == 0 {
		return nil, fmt.Errorf("%w: no player units", ErrInvalidScenario)
	}

	grid := world.NewGrid(d.Width, d.Height)
	placed := make(map[world.Coord]string)

	build := func(def UnitDef, team entity.Team, fallback tcell.Color) (*entity.Unit, error) {
		pos := world.Coord{X: def.X, Z: def.Z}
		if !grid.InBounds(pos) {
			return nil, fmt.Errorf("%w: %s at %v is off the %dx%d grid", ErrInvalidScenario, def.Name, pos, d.Width, d.Height)
		}
		if def.AP < 0 {
			return nil, fmt.Errorf("%w: %s has negative AP", ErrInvalidScenario, def.Name)
		}

		ap := def.AP
		if ap == 0 && team == entity.TeamPlayer {
			ap = defaultAP
		}
		id := def.ID
		if id == "" {
			id = uuid.NewString()
		}

		u := entity.NewUnit(id, def.Name, ap, pos)
		u.Glyph = def.GlyphRune()
		u.Color = colorOr(def.Color, fallback)
		u.Team = team
		if def.Dead {
			u.Kill()
			return u, nil
		}

		if other, taken := placed[pos]; taken {
			return nil, fmt.Errorf("%w: %s and %s share %v", ErrInvalidScenario, other, def.Name, pos)
		}
		placed[pos] = def.Name
		if err := grid.Occupy(pos); err != nil {
			return nil, err
		}
		return u, nil
	}

	units := make([]*entity.Unit, 0, len(d.Units))
	for _, def := range d.Units {
		u, err := build(def, entity.TeamPlayer, tcell.ColorYellow)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}

	enemies := make([]*entity.Unit, 0, len(d.Enemies))
	for _, def := range d.Enemies {
		u, err := build(def, entity.TeamEnemy, tcell.ColorRed)
		if err != nil {
			return nil, err
		}
		enemies = append(enemies, u)
	}

	span.SetAttributes(
		attribute.String("scenario", d.Name),
		attribute.Int("grid.width", d.Width),
		attribute.Int("grid.height", d.Height),
		attribute.Int("units", len(units)),
		attribute.Int("enemies", len(enemies)),
	)

	return &Scenario{
		Name:    d.Name,
		Grid:    grid,
		Roster:  entity.NewRoster(units...),
		Enemies: enemies,
	}, nil
}
