// Package scenario loads battle definitions from YAML files: the roster,
// terrain overrides, and the victory condition. Scenario files are the
// collaborator-facing input format; the engine itself only sees the built
// battle.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/hextactics/internal/battle"
	"github.com/talgya/hextactics/internal/battlefield"
	"github.com/talgya/hextactics/internal/units"
)

// Scenario is the top-level YAML document.
type Scenario struct {
	Name           string      `yaml:"name"`
	Seed           int64       `yaml:"seed"`
	TerrainVariety bool        `yaml:"terrain_variety"`
	MaxRounds      int         `yaml:"max_rounds"`
	Victory        VictorySpec `yaml:"victory"`
	Terrain        []CellSpec  `yaml:"terrain"`
	Units          []UnitSpec  `yaml:"units"`
}

// VictorySpec selects the victory condition.
type VictorySpec struct {
	Kind    string `yaml:"kind"` // eliminate | protect | survive
	Protect string `yaml:"protect"`
	Rounds  int    `yaml:"rounds"`
}

// CellSpec overrides one grid cell's terrain.
type CellSpec struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Type      string `yaml:"type"`
	Elevation int    `yaml:"elevation"`
}

// UnitSpec is one roster record. Equipment modifiers are folded into the
// unit's stats when the battle is built.
type UnitSpec struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Faction string `yaml:"faction"`
	Element string `yaml:"element"`

	HP int `yaml:"hp"`
	MP int `yaml:"mp"`

	Attack       int `yaml:"attack"`
	Defense      int `yaml:"defense"`
	MagicAttack  int `yaml:"magic_attack"`
	MagicDefense int `yaml:"magic_defense"`
	Speed        int `yaml:"speed"`

	Equipment struct {
		Attack       int `yaml:"attack"`
		Defense      int `yaml:"defense"`
		MagicAttack  int `yaml:"magic_attack"`
		MagicDefense int `yaml:"magic_defense"`
		Speed        int `yaml:"speed"`
	} `yaml:"equipment"`

	X    int `yaml:"x"`
	Y    int `yaml:"y"`
	Move int `yaml:"move"`
	Jump int `yaml:"jump"`

	AI bool `yaml:"ai"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// Build constructs a battle from the scenario. The returned battle is in
// the setup phase.
func (s *Scenario) Build() (*battle.Battle, error) {
	cfg := battlefield.DefaultGenConfig(s.Seed)
	cfg.Variety = s.TerrainVariety
	grid := battlefield.Generate(cfg)

	for _, c := range s.Terrain {
		cell := grid.At(battlefield.HexCoord{X: c.X, Y: c.Y})
		if cell == nil {
			return nil, fmt.Errorf("scenario: terrain override (%d,%d) out of bounds", c.X, c.Y)
		}
		terrain, err := parseTerrain(c.Type)
		if err != nil {
			return nil, err
		}
		cell.Terrain = terrain
		cell.Elevation = c.Elevation
	}

	roster := make([]*units.Unit, 0, len(s.Units))
	for _, spec := range s.Units {
		u, err := spec.build()
		if err != nil {
			return nil, err
		}
		roster = append(roster, u)
	}

	cond, err := s.Victory.build()
	if err != nil {
		return nil, err
	}

	name := s.Name
	if name == "" {
		name = "scenario"
	}
	b, err := battle.New(name, grid, roster, cond, s.Seed)
	if err != nil {
		return nil, err
	}
	if s.MaxRounds > 0 {
		b.MaxRounds = s.MaxRounds
	}
	return b, nil
}

func (spec UnitSpec) build() (*units.Unit, error) {
	faction, err := parseFaction(spec.Faction)
	if err != nil {
		return nil, fmt.Errorf("scenario: unit %q: %w", spec.ID, err)
	}
	element, err := parseElement(spec.Element)
	if err != nil {
		return nil, fmt.Errorf("scenario: unit %q: %w", spec.ID, err)
	}

	move := spec.Move
	if move == 0 {
		move = 3
	}

	return &units.Unit{
		ID:      spec.ID,
		Name:    spec.Name,
		Faction: faction,
		Element: element,
		Pos:     battlefield.HexCoord{X: spec.X, Y: spec.Y},
		HP:      spec.HP,
		MaxHP:   spec.HP,
		MP:      spec.MP,
		MaxMP:   spec.MP,
		Stats: units.Stats{
			Attack:       spec.Attack + spec.Equipment.Attack,
			Defense:      spec.Defense + spec.Equipment.Defense,
			MagicAttack:  spec.MagicAttack + spec.Equipment.MagicAttack,
			MagicDefense: spec.MagicDefense + spec.Equipment.MagicDefense,
			Speed:        spec.Speed + spec.Equipment.Speed,
		},
		MoveRange:    move,
		JumpHeight:   spec.Jump,
		AIControlled: spec.AI,
	}, nil
}

func (v VictorySpec) build() (battle.VictoryCondition, error) {
	switch v.Kind {
	case "", "eliminate":
		return battle.VictoryCondition{Kind: battle.EliminateAll}, nil
	case "protect":
		return battle.VictoryCondition{Kind: battle.ProtectUnit, ProtectID: v.Protect}, nil
	case "survive":
		return battle.VictoryCondition{Kind: battle.SurviveRounds, Rounds: v.Rounds}, nil
	}
	return battle.VictoryCondition{}, fmt.Errorf("scenario: unknown victory kind %q", v.Kind)
}

func parseFaction(s string) (units.Faction, error) {
	switch s {
	case "player", "":
		return units.FactionPlayer, nil
	case "ally":
		return units.FactionAlly, nil
	case "enemy":
		return units.FactionEnemy, nil
	case "neutral":
		return units.FactionNeutral, nil
	}
	return 0, fmt.Errorf("unknown faction %q", s)
}

func parseElement(s string) (units.Element, error) {
	switch s {
	case "", "none":
		return units.ElementNone, nil
	case "fire":
		return units.ElementFire, nil
	case "water":
		return units.ElementWater, nil
	case "earth":
		return units.ElementEarth, nil
	case "air":
		return units.ElementAir, nil
	case "life":
		return units.ElementLife, nil
	case "death":
		return units.ElementDeath, nil
	}
	return 0, fmt.Errorf("unknown element %q", s)
}

func parseTerrain(s string) (battlefield.Terrain, error) {
	switch s {
	case "plains", "":
		return battlefield.TerrainPlains, nil
	case "forest":
		return battlefield.TerrainForest, nil
	case "hill":
		return battlefield.TerrainHill, nil
	case "water":
		return battlefield.TerrainWater, nil
	case "wall":
		return battlefield.TerrainWall, nil
	case "obstacle":
		return battlefield.TerrainObstacle, nil
	}
	return 0, fmt.Errorf("scenario: unknown terrain %q", s)
}
