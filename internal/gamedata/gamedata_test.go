package gamedata

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hexband/internal/entity"
	"github.com/samdwyer/hexband/internal/world"
)

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(context.Background())
	if err != nil {
		t.Fatalf("LoadScenario() error = %v", err)
	}

	if sc.Roster.Len() != 3 {
		t.Errorf("Roster.Len() = %d, want 3", sc.Roster.Len())
	}
	if len(sc.Enemies) != 3 {
		t.Errorf("len(Enemies) = %d, want 3", len(sc.Enemies))
	}
	if sc.Grid.Width != 12 || sc.Grid.Height != 9 {
		t.Errorf("grid = %dx%d, want 12x9", sc.Grid.Width, sc.Grid.Height)
	}

	// Every living unit's cell is occupied before the first tick.
	all := append(append([]*entity.Unit{}, sc.Roster.Units...), sc.Enemies...)
	for _, u := range all {
		if !sc.Grid.IsOccupied(u.Position) {
			t.Errorf("%s at %v is not registered as occupied", u.Name, u.Position)
		}
	}
	if got := sc.Grid.OccupiedCount(); got != len(all) {
		t.Errorf("OccupiedCount() = %d, want %d", got, len(all))
	}

	aiden := sc.Roster.At(0)
	if aiden == nil || aiden.Name != "Aiden" {
		t.Fatalf("Roster.At(0) = %+v, want Aiden", aiden)
	}
	if aiden.MaxAP != 4 || aiden.Glyph != 'A' || aiden.Team != entity.TeamPlayer {
		t.Errorf("Aiden = %+v, want 4 AP, glyph A, player team", aiden)
	}
	for _, e := range sc.Enemies {
		if e.Team != entity.TeamEnemy {
			t.Errorf("enemy %s has team %v", e.Name, e.Team)
		}
		if e.ID == "" {
			t.Errorf("enemy %s should get a generated ID", e.Name)
		}
	}
}

func TestBuildValidation(t *testing.T) {
	tests := []struct {
		name string
		def  ScenarioDef
	}{
		{"empty grid", ScenarioDef{Width: 0, Height: 4, Units: []UnitDef{{Name: "A"}}}},
		{"no units", ScenarioDef{Width: 4, Height: 4}},
		{"off grid", ScenarioDef{Width: 4, Height: 4, Units: []UnitDef{{Name: "A", X: 9, Z: 0}}}},
		{"negative ap", ScenarioDef{Width: 4, Height: 4, Units: []UnitDef{{Name: "A", AP: -1}}}},
		{"shared cell", ScenarioDef{Width: 4, Height: 4,
			Units:   []UnitDef{{Name: "A", X: 1, Z: 1}},
			Enemies: []UnitDef{{Name: "G", X: 1, Z: 1}},
		}},
	}

	for _, tt := range tests {
		_, err := tt.def.Build(context.Background())
		if !errors.Is(err, ErrInvalidScenario) {
			t.Errorf("%s: Build() error = %v, want ErrInvalidScenario", tt.name, err)
		}
	}
}

func TestBuildDeadUnits(t *testing.T) {
	def := ScenarioDef{
		Width:  4,
		Height: 4,
		Units: []UnitDef{
			{Name: "A", X: 0, Z: 0},
			{Name: "B", X: 1, Z: 0, Dead: true},
			{Name: "C", X: 1, Z: 0},
		},
	}

	sc, err := def.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if sc.Roster.Len() != 3 {
		t.Errorf("Roster.Len() = %d, dead units stay in the roster", sc.Roster.Len())
	}
	if sc.Roster.At(1).IsAlive() {
		t.Error("B should start dead")
	}
	if got := sc.Roster.At(0).MaxAP; got != defaultAP {
		t.Errorf("default MaxAP = %d, want %d", got, defaultAP)
	}
	if got := sc.Grid.OccupiedCount(); got != 2 {
		t.Errorf("OccupiedCount() = %d, want 2 (dead units do not occupy)", got)
	}
	if !sc.Grid.IsOccupied(world.Coord{X: 1, Z: 0}) {
		t.Error("C's cell should be occupied")
	}
}

func TestLoadScenarioFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skirmish.json")
	data := `{"name":"Skirmish","width":5,"height":5,"units":[{"name":"Solo","x":2,"z":2,"ap":2}]}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	sc, err := LoadScenarioFile(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadScenarioFile() error = %v", err)
	}
	if sc.Name != "Skirmish" || sc.Roster.Len() != 1 {
		t.Errorf("scenario = %q with %d units, want Skirmish with 1", sc.Name, sc.Roster.Len())
	}

	if _, err := LoadScenarioFile(context.Background(), filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadScenarioFile(missing) should fail")
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#FF8000")
	if err != nil {
		t.Fatalf("ParseHexColor() error = %v", err)
	}
	if want := tcell.NewRGBColor(255, 128, 0); c != want {
		t.Errorf("ParseHexColor(#FF8000) = %v, want %v", c, want)
	}

	for _, bad := range []string{"", "#FFF", "#GG0000"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) should fail", bad)
		}
	}

	if got := colorOr("nope", tcell.ColorRed); got != tcell.ColorRed {
		t.Errorf("colorOr(bad) = %v, want fallback", got)
	}
}

func TestGlyphRune(t *testing.T) {
	tests := []struct {
		def      UnitDef
		expected rune
	}{
		{UnitDef{Glyph: "g", Name: "Goblin"}, 'g'},
		{UnitDef{Name: "Orc"}, 'O'},
		{UnitDef{}, '?'},
	}

	for _, tt := range tests {
		if got := tt.def.GlyphRune(); got != tt.expected {
			t.Errorf("GlyphRune(%+v) = %q, want %q", tt.def, got, tt.expected)
		}
	}
}
