package battle

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/talgya/hextactics/internal/battlefield"
	"github.com/talgya/hextactics/internal/units"
)

// GenOptions configures random battle generation.
type GenOptions struct {
	EnemyCount     int
	TerrainVariety bool
	Seed           int64
	Condition      VictoryCondition
}

// Generate builds a random encounter: a procedurally generated battlefield
// with the player roster deployed on the west band and generated enemies
// on the east band. The returned battle is in the setup phase.
func Generate(players []*units.Unit, opts GenOptions) (*Battle, error) {
	if opts.EnemyCount < 1 {
		opts.EnemyCount = 3
	}

	cfg := battlefield.DefaultGenConfig(opts.Seed)
	cfg.Variety = opts.TerrainVariety
	grid := battlefield.Generate(cfg)

	roster := make([]*units.Unit, 0, len(players)+opts.EnemyCount)
	y := 2
	for _, u := range players {
		if y >= grid.Height-2 {
			return nil, fmt.Errorf("battle: no deployment room for unit %q", u.ID)
		}
		u.Pos = battlefield.HexCoord{X: 2, Y: y}
		roster = append(roster, u)
		y++
	}

	y = 2
	for i := 0; i < opts.EnemyCount && y < grid.Height-2; i++ {
		roster = append(roster, &units.Unit{
			ID:      fmt.Sprintf("enemy-%d", i+1),
			Name:    fmt.Sprintf("Enemy %d", i+1),
			Faction: units.FactionEnemy,
			Pos:     battlefield.HexCoord{X: grid.Width - 3, Y: y},
			HP:      80,
			MaxHP:   80,
			MP:      30,
			MaxMP:   30,
			Stats: units.Stats{
				Attack:       12,
				Defense:      8,
				MagicAttack:  8,
				MagicDefense: 8,
				Speed:        8 + i,
			},
			MoveRange:    3,
			JumpHeight:   1,
			AIControlled: true,
		})
		y++
	}

	return New(uuid.NewString(), grid, roster, opts.Condition, opts.Seed)
}
