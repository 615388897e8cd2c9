package ai

import (
	"testing"

	"github.com/talgya/hextactics/internal/battle"
	"github.com/talgya/hextactics/internal/battlefield"
	"github.com/talgya/hextactics/internal/units"
)

func mkUnit(id string, f units.Faction, x, y, speed int) *units.Unit {
	return &units.Unit{
		ID: id, Name: id, Faction: f,
		Pos: battlefield.HexCoord{X: x, Y: y},
		HP:  100, MaxHP: 100, MP: 50, MaxMP: 50,
		Stats:     units.Stats{Attack: 20, Defense: 10, MagicAttack: 10, MagicDefense: 10, Speed: speed},
		MoveRange: 3, JumpHeight: 1,
	}
}

func startBattle(t *testing.T, grid *battlefield.Grid, roster []*units.Unit) *battle.Battle {
	t.Helper()
	b, err := battle.New("test", grid, roster, battle.VictoryCondition{}, 1)
	if err != nil {
		t.Fatalf("new battle: %v", err)
	}
	if err := b.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return b
}

// --- Target selection ---

func TestBasic_AttacksWeakestAdjacent(t *testing.T) {
	actor := mkUnit("actor", units.FactionEnemy, 5, 5, 10)
	strong := mkUnit("strong", units.FactionPlayer, 5, 4, 8)
	weak := mkUnit("weak", units.FactionPlayer, 4, 5, 6)
	weak.HP = 20
	b := startBattle(t, battlefield.NewGrid(12, 18), []*units.Unit{actor, strong, weak})

	d := Basic{}.Decide(b, "actor")
	if d.MoveTo != nil {
		t.Fatalf("adjacent targets should need no movement, got move to %v", *d.MoveTo)
	}
	if d.TargetID != "weak" {
		t.Fatalf("target = %s, want the lowest-HP unit", d.TargetID)
	}
}

func TestBasic_TieBreaksByThreat(t *testing.T) {
	actor := mkUnit("actor", units.FactionEnemy, 5, 5, 10)
	mild := mkUnit("mild", units.FactionPlayer, 5, 4, 8)
	fierce := mkUnit("fierce", units.FactionPlayer, 4, 5, 6)
	fierce.Stats.Attack = 50
	b := startBattle(t, battlefield.NewGrid(12, 18), []*units.Unit{actor, mild, fierce})

	d := Basic{}.Decide(b, "actor")
	if d.TargetID != "fierce" {
		t.Fatalf("target = %s, want the higher-attack unit on an HP tie", d.TargetID)
	}
}

// --- Approach ---

func TestBasic_ClosesOnNearestEnemy(t *testing.T) {
	actor := mkUnit("actor", units.FactionEnemy, 2, 5, 10)
	foe := mkUnit("foe", units.FactionPlayer, 9, 5, 8)
	b := startBattle(t, battlefield.NewGrid(12, 18), []*units.Unit{actor, foe})

	d := Basic{}.Decide(b, "actor")
	if d.MoveTo == nil {
		t.Fatal("distant enemy should trigger an approach")
	}
	before := battlefield.Distance(actor.Pos, foe.Pos)
	after := battlefield.Distance(*d.MoveTo, foe.Pos)
	if after >= before {
		t.Fatalf("approach distance %d not below %d", after, before)
	}

	// The decision must survive the commit path.
	if err := b.Move("actor", *d.MoveTo); err != nil {
		t.Fatalf("decided move rejected by the battle: %v", err)
	}
}

func TestBasic_AttacksAfterClosing(t *testing.T) {
	actor := mkUnit("actor", units.FactionEnemy, 3, 5, 10)
	foe := mkUnit("foe", units.FactionPlayer, 6, 5, 8)
	b := startBattle(t, battlefield.NewGrid(12, 18), []*units.Unit{actor, foe})

	d := Basic{}.Decide(b, "actor")
	if d.MoveTo == nil {
		t.Fatal("expected an approach move")
	}
	if battlefield.Distance(*d.MoveTo, foe.Pos) != 1 {
		t.Fatalf("three cells of range should close to melee, landed at distance %d",
			battlefield.Distance(*d.MoveTo, foe.Pos))
	}
	if d.TargetID != "foe" {
		t.Fatalf("target = %q, want foe after closing", d.TargetID)
	}
}

// --- Determinism and degradation ---

func TestDecide_Deterministic(t *testing.T) {
	actor := mkUnit("actor", units.FactionEnemy, 2, 5, 10)
	foe := mkUnit("foe", units.FactionPlayer, 8, 8, 8)
	b := startBattle(t, battlefield.NewGrid(12, 18), []*units.Unit{actor, foe})

	for _, p := range []Policy{Basic{}, NewTactical(0.7)} {
		d1 := p.Decide(b, "actor")
		d2 := p.Decide(b, "actor")
		if d1.TargetID != d2.TargetID || d1.AttackKind != d2.AttackKind {
			t.Fatal("same state should yield the same action")
		}
		switch {
		case d1.MoveTo == nil && d2.MoveTo == nil:
		case d1.MoveTo != nil && d2.MoveTo != nil && *d1.MoveTo == *d2.MoveTo:
		default:
			t.Fatal("same state should yield the same movement")
		}
	}
}

func TestTakeTurn_BoxedInUnitWaits(t *testing.T) {
	grid := battlefield.NewGrid(12, 18)
	pos := battlefield.HexCoord{X: 5, Y: 5}
	for _, n := range pos.Neighbors() {
		grid.At(n).Terrain = battlefield.TerrainWall
	}
	actor := mkUnit("actor", units.FactionEnemy, 5, 5, 10)
	foe := mkUnit("foe", units.FactionPlayer, 9, 9, 8)
	b := startBattle(t, grid, []*units.Unit{actor, foe})

	d := Basic{}.Decide(b, "actor")
	if d.MoveTo != nil || d.TargetID != "" {
		t.Fatalf("boxed-in unit should do nothing, got move=%v target=%q", d.MoveTo, d.TargetID)
	}

	if err := TakeTurn(b, Basic{}); err != nil {
		t.Fatalf("take turn: %v", err)
	}
	// The only mutation is the spent turn: position and both rosters'
	// HP are untouched and the turn has passed on.
	if actor.Pos != pos {
		t.Fatalf("actor moved to %v", actor.Pos)
	}
	if actor.HP != 100 || foe.HP != 100 {
		t.Fatal("no damage should have been dealt")
	}
	if b.ActiveUnit().ID != "foe" {
		t.Fatalf("active unit = %s, want foe", b.ActiveUnit().ID)
	}
}

func TestTakeTurn_DrivesBattleToCompletion(t *testing.T) {
	actor := mkUnit("actor", units.FactionEnemy, 4, 5, 10)
	foe := mkUnit("foe", units.FactionPlayer, 7, 5, 8)
	b := startBattle(t, battlefield.NewGrid(12, 18), []*units.Unit{actor, foe})

	for i := 0; i < 500 && !b.Over(); i++ {
		if err := TakeTurn(b, Basic{}); err != nil {
			t.Fatalf("take turn: %v", err)
		}
	}
	if !b.Over() {
		t.Fatal("two basic policies in melee should finish within 500 turns")
	}
}
