package battle

import (
	"testing"

	"github.com/talgya/hextactics/internal/units"
)

// --- Round boundaries ---

func TestRound_AdvancesWhenQueueExhausted(t *testing.T) {
	b := mustStart(t, []*units.Unit{
		mkUnit("hero", units.FactionPlayer, 2, 2, 10),
		mkUnit("orc", units.FactionEnemy, 9, 9, 8),
	}, VictoryCondition{}, 1)

	if b.Round != 1 {
		t.Fatalf("round = %d, want 1", b.Round)
	}
	for _, id := range []string{"hero", "orc"} {
		if err := b.Wait(id); err != nil {
			t.Fatalf("wait %s: %v", id, err)
		}
	}
	if b.Round != 2 {
		t.Fatalf("round = %d after full queue, want 2", b.Round)
	}
	if b.ActiveUnit().ID != "hero" {
		t.Fatalf("round 2 should restart with hero, got %s", b.ActiveUnit().ID)
	}
	if hero, _ := b.Unit("hero"); hero.HasMoved || hero.HasActed {
		t.Fatal("turn flags should reset at the round boundary")
	}
}

func TestHaste_ReranksOnlyAtRoundBoundary(t *testing.T) {
	hero := mkUnit("hero", units.FactionPlayer, 2, 2, 10)
	orc := mkUnit("orc", units.FactionEnemy, 9, 9, 8)
	b := mustStart(t, []*units.Unit{hero, orc}, VictoryCondition{}, 1)

	// Haste lands mid-round: the current queue must not re-sort.
	orc.AddStatus(units.StatusEffect{Kind: units.StatusHaste, Duration: 2})
	if q := b.TurnQueue(); q[0].UnitID != "hero" {
		t.Fatalf("mid-round haste re-sorted the queue: %s first", q[0].UnitID)
	}

	b.Wait("hero")
	b.Wait("orc")

	// Round 2: the hasted orc (speed 12) now outruns the hero.
	q := b.TurnQueue()
	if q[0].UnitID != "orc" || q[0].Speed != 12 {
		t.Fatalf("round 2 queue head = %s speed %d, want orc at 12", q[0].UnitID, q[0].Speed)
	}
}

// --- Status processing ---

func TestRoundEnd_TicksStatuses(t *testing.T) {
	hero := mkUnit("hero", units.FactionPlayer, 2, 2, 10)
	orc := mkUnit("orc", units.FactionEnemy, 9, 9, 8)
	orc.AddStatus(units.StatusEffect{Kind: units.StatusBurn, Duration: 2, Magnitude: units.BurnMagnitude})
	b := mustStart(t, []*units.Unit{hero, orc}, VictoryCondition{}, 1)

	b.Wait("hero")
	b.Wait("orc")

	if orc.HP != 90 {
		t.Fatalf("orc hp = %d after burn tick, want 90", orc.HP)
	}
	if !orc.HasStatus(units.StatusBurn) {
		t.Fatal("burn should still have one round left")
	}
}

func TestRoundEnd_StatusDefeatTriggersVictory(t *testing.T) {
	hero := mkUnit("hero", units.FactionPlayer, 2, 2, 10)
	orc := mkUnit("orc", units.FactionEnemy, 9, 9, 8)
	orc.HP = 3
	orc.AddStatus(units.StatusEffect{Kind: units.StatusPoison, Duration: 3, Magnitude: units.PoisonMagnitude})
	b := mustStart(t, []*units.Unit{hero, orc}, VictoryCondition{}, 1)

	b.Wait("hero")
	b.Wait("orc")

	if b.Phase != PhaseVictory {
		t.Fatalf("phase = %s, want victory from the poison tick", b.Phase.Name())
	}
	if !orc.Defeated {
		t.Fatal("orc should be defeated by poison")
	}
}

func TestScheduler_SkipsSuspendedUnits(t *testing.T) {
	hero := mkUnit("hero", units.FactionPlayer, 2, 2, 10)
	orc := mkUnit("orc", units.FactionEnemy, 9, 9, 8)
	orc.AddStatus(units.StatusEffect{Kind: units.StatusStun, Duration: 1})
	b := mustStart(t, []*units.Unit{hero, orc}, VictoryCondition{}, 1)

	if err := b.Wait("hero"); err != nil {
		t.Fatalf("wait: %v", err)
	}
	// The stunned orc forfeits its turn, rolling straight into round 2
	// where the expired stun leaves it ready again.
	if b.Round != 2 {
		t.Fatalf("round = %d, want 2 after the stunned turn was skipped", b.Round)
	}
	if !orc.Ready() {
		t.Fatal("stun should have expired at the round boundary")
	}
}

// --- Terminal round caps ---

func TestSurviveRounds_Victory(t *testing.T) {
	b := mustStart(t, []*units.Unit{
		mkUnit("hero", units.FactionPlayer, 2, 2, 10),
		mkUnit("orc", units.FactionEnemy, 9, 9, 8),
	}, VictoryCondition{Kind: SurviveRounds, Rounds: 2}, 1)

	for i := 0; i < 50 && !b.Over(); i++ {
		if err := b.Wait(b.ActiveUnit().ID); err != nil {
			t.Fatalf("wait: %v", err)
		}
	}
	if b.Phase != PhaseVictory {
		t.Fatalf("phase = %s, want victory by survival", b.Phase.Name())
	}
	if b.Round != 3 {
		t.Fatalf("round = %d, want 3 (two full rounds survived)", b.Round)
	}
}

func TestMaxRounds_Draw(t *testing.T) {
	b := mustStart(t, []*units.Unit{
		mkUnit("hero", units.FactionPlayer, 2, 2, 10),
		mkUnit("orc", units.FactionEnemy, 9, 9, 8),
	}, VictoryCondition{}, 1)
	b.MaxRounds = 2

	for i := 0; i < 50 && !b.Over(); i++ {
		if err := b.Wait(b.ActiveUnit().ID); err != nil {
			t.Fatalf("wait: %v", err)
		}
	}
	if b.Phase != PhaseDraw {
		t.Fatalf("phase = %s, want draw at the round cap", b.Phase.Name())
	}
	out, err := b.Outcome()
	if err != nil {
		t.Fatalf("outcome: %v", err)
	}
	if out.Winner != "draw" {
		t.Fatalf("winner = %s, want draw", out.Winner)
	}
}

func TestOutcome_UnavailableWhileActive(t *testing.T) {
	b := mustStart(t, []*units.Unit{
		mkUnit("hero", units.FactionPlayer, 2, 2, 10),
		mkUnit("orc", units.FactionEnemy, 9, 9, 8),
	}, VictoryCondition{}, 1)
	if _, err := b.Outcome(); err == nil {
		t.Fatal("outcome should be unavailable before a terminal phase")
	}
}
