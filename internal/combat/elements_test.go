package combat

import (
	"testing"

	"github.com/talgya/hextactics/internal/units"
)

var allElements = []units.Element{
	units.ElementNone, units.ElementFire, units.ElementWater, units.ElementEarth,
	units.ElementAir, units.ElementLife, units.ElementDeath,
}

func TestElementMultiplier_Total(t *testing.T) {
	valid := map[float64]bool{ResistedMult: true, NeutralMult: true, SuperEffectiveMult: true}
	for _, a := range allElements {
		for _, d := range allElements {
			m := ElementMultiplier(a, d)
			if !valid[m] {
				t.Fatalf("%s vs %s = %.2f, outside the physical curve", a.Name(), d.Name(), m)
			}
		}
	}
}

func TestElementMultiplier_OneDirectional(t *testing.T) {
	if m := ElementMultiplier(units.ElementFire, units.ElementEarth); m != 1.5 {
		t.Fatalf("fire vs earth = %.2f, want 1.5", m)
	}
	// The advantage does not reciprocate.
	if m := ElementMultiplier(units.ElementEarth, units.ElementFire); m != 1.0 {
		t.Fatalf("earth vs fire = %.2f, want 1.0", m)
	}
}

func TestElementMultiplier_SameElementResisted(t *testing.T) {
	for _, e := range allElements[1:] {
		if m := ElementMultiplier(e, e); m != 0.5 {
			t.Fatalf("%s vs %s = %.2f, want 0.5", e.Name(), e.Name(), m)
		}
	}
}

func TestElementMultiplier_NoneIsNeutral(t *testing.T) {
	if m := ElementMultiplier(units.ElementNone, units.ElementFire); m != 1.0 {
		t.Fatalf("unaligned attacker should be neutral, got %.2f", m)
	}
	if m := ElementMultiplier(units.ElementFire, units.ElementNone); m != 1.0 {
		t.Fatalf("unaligned defender should be neutral, got %.2f", m)
	}
}

func TestElementMultiplier_AdvantageGraph(t *testing.T) {
	wins := [][2]units.Element{
		{units.ElementFire, units.ElementEarth},
		{units.ElementFire, units.ElementDeath},
		{units.ElementWater, units.ElementFire},
		{units.ElementEarth, units.ElementAir},
		{units.ElementAir, units.ElementWater},
		{units.ElementLife, units.ElementDeath},
		{units.ElementDeath, units.ElementLife},
	}
	for _, w := range wins {
		if m := ElementMultiplier(w[0], w[1]); m != SuperEffectiveMult {
			t.Fatalf("%s vs %s = %.2f, want %.2f", w[0].Name(), w[1].Name(), m, SuperEffectiveMult)
		}
	}
}

func TestMagicElementMultiplier_OffElementTier(t *testing.T) {
	// Magic punishes attacking into the defender's advantage.
	if m := MagicElementMultiplier(units.ElementEarth, units.ElementFire); m != 0.75 {
		t.Fatalf("magical earth vs fire = %.2f, want 0.75", m)
	}
	if m := MagicElementMultiplier(units.ElementFire, units.ElementWater); m != 0.75 {
		t.Fatalf("magical fire vs water = %.2f, want 0.75", m)
	}
	// The rest of the curve matches the physical one.
	if m := MagicElementMultiplier(units.ElementFire, units.ElementEarth); m != 1.5 {
		t.Fatalf("magical fire vs earth = %.2f, want 1.5", m)
	}
	if m := MagicElementMultiplier(units.ElementFire, units.ElementFire); m != 0.5 {
		t.Fatalf("magical same element = %.2f, want 0.5", m)
	}
	if m := MagicElementMultiplier(units.ElementFire, units.ElementAir); m != 1.0 {
		t.Fatalf("magical unrelated pairing = %.2f, want 1.0", m)
	}
}
