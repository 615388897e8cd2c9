package battle

import (
	"testing"

	"github.com/talgya/hextactics/internal/units"
)

func TestGenerate_DeploysBothSides(t *testing.T) {
	players := []*units.Unit{
		mkUnit("hero", units.FactionPlayer, 0, 0, 10),
		mkUnit("mate", units.FactionPlayer, 0, 0, 9),
	}
	b, err := Generate(players, GenOptions{
		EnemyCount:     3,
		TerrainVariety: true,
		Seed:           4,
		Condition:      VictoryCondition{Kind: EliminateAll},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if b.Phase != PhaseSetup {
		t.Fatalf("generated battle phase = %s, want setup", b.Phase.Name())
	}
	if got := len(b.Units()); got != 5 {
		t.Fatalf("unit count = %d, want 5", got)
	}

	enemies := 0
	for _, u := range b.Units() {
		if b.Grid.OccupantAt(u.Pos) != u.ID {
			t.Fatalf("unit %s not standing on its grid cell", u.ID)
		}
		switch u.Faction {
		case units.FactionPlayer:
			if u.Pos.X != 2 {
				t.Fatalf("player %s deployed at x=%d, want the west band", u.ID, u.Pos.X)
			}
		case units.FactionEnemy:
			enemies++
			if u.Pos.X != b.Grid.Width-3 {
				t.Fatalf("enemy %s deployed at x=%d, want the east band", u.ID, u.Pos.X)
			}
			if !u.AIControlled {
				t.Fatalf("generated enemy %s should be AI controlled", u.ID)
			}
		}
	}
	if enemies != 3 {
		t.Fatalf("enemy count = %d, want 3", enemies)
	}

	if err := b.Start(); err != nil {
		t.Fatalf("start generated battle: %v", err)
	}
}
