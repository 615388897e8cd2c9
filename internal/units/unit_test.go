package units

import "testing"

// --- Damage and healing ---

func TestApplyDamage_FlooredToOne(t *testing.T) {
	u := testUnit(100)
	if lost := u.ApplyDamage(0); lost != 1 {
		t.Fatalf("zero damage should floor to 1, lost %d", lost)
	}
	if u.HP != 99 {
		t.Fatalf("hp = %d, want 99", u.HP)
	}
}

func TestApplyDamage_ClampedAtZero(t *testing.T) {
	u := testUnit(30)
	if lost := u.ApplyDamage(500); lost != 30 {
		t.Fatalf("overkill should report 30 hp actually lost, got %d", lost)
	}
	if u.HP != 0 {
		t.Fatalf("hp = %d, want 0", u.HP)
	}
	if u.Alive() {
		t.Fatal("unit at 0 hp should not be alive")
	}
}

func TestHeal_ClampedAtMax(t *testing.T) {
	u := testUnit(100)
	u.HP = 80
	if healed := u.Heal(50); healed != 20 {
		t.Fatalf("heal should report 20 restored, got %d", healed)
	}
	if u.HP != 100 {
		t.Fatalf("hp = %d, want 100", u.HP)
	}
}

func TestSpendMP(t *testing.T) {
	u := testUnit(100)
	u.MP, u.MaxMP = 10, 50
	if !u.SpendMP(10) {
		t.Fatal("spending exactly the pool should succeed")
	}
	if u.SpendMP(1) {
		t.Fatal("spending from an empty pool should fail")
	}
	if u.MP != 0 {
		t.Fatalf("mp = %d, want 0", u.MP)
	}
	if restored := u.RestoreMP(100); restored != 50 {
		t.Fatalf("restore should clamp at max, got %d", restored)
	}
}

// --- Status-modified stats ---

func TestEffectiveSpeed_Haste(t *testing.T) {
	u := testUnit(100)
	u.AddStatus(StatusEffect{Kind: StatusHaste, Duration: 2})
	if s := u.EffectiveSpeed(); s != 15 {
		t.Fatalf("hasted speed = %d, want 15", s)
	}
}

func TestEffectiveSpeed_Slow(t *testing.T) {
	u := testUnit(100)
	u.AddStatus(StatusEffect{Kind: StatusSlow, Duration: 2})
	if s := u.EffectiveSpeed(); s != 5 {
		t.Fatalf("slowed speed = %d, want 5", s)
	}
}

func TestEffectiveStats_Bless(t *testing.T) {
	u := testUnit(100)
	u.AddStatus(StatusEffect{Kind: StatusBless, Duration: 2})
	if a := u.EffectiveAttack(); a != 12 {
		t.Fatalf("blessed attack = %d, want 12", a)
	}
	if d := u.EffectiveDefense(); d != 12 {
		t.Fatalf("blessed defense = %d, want 12", d)
	}
}

// --- Factions ---

func TestFaction_Relations(t *testing.T) {
	if !FactionPlayer.Allied(FactionAlly) || !FactionAlly.Allied(FactionPlayer) {
		t.Fatal("player and ally should be allied")
	}
	if !FactionPlayer.Hostile(FactionEnemy) || !FactionEnemy.Hostile(FactionAlly) {
		t.Fatal("enemy should be hostile to the player side")
	}
	if FactionNeutral.Hostile(FactionEnemy) || FactionEnemy.Hostile(FactionNeutral) {
		t.Fatal("neutrals should be hostile to nobody")
	}
	if FactionPlayer.Allied(FactionEnemy) {
		t.Fatal("player and enemy should not be allied")
	}
}

func TestHPPercent(t *testing.T) {
	u := testUnit(200)
	u.HP = 50
	if pct := u.HPPercent(); pct != 25 {
		t.Fatalf("hp percent = %.1f, want 25", pct)
	}
}
