package combat

import "github.com/talgya/hextactics/internal/units"

// advantages is the directed elemental advantage graph. The relation is
// one-directional: Fire beating Earth does not make Earth attacks against
// Fire resisted — for physical damage the reverse pairing is simply
// neutral.
var advantages = map[units.Element][]units.Element{
	units.ElementFire:  {units.ElementEarth, units.ElementDeath},
	units.ElementWater: {units.ElementFire},
	units.ElementEarth: {units.ElementAir},
	units.ElementAir:   {units.ElementWater},
	units.ElementLife:  {units.ElementDeath},
	units.ElementDeath: {units.ElementLife},
}

// Elemental damage multipliers.
const (
	SuperEffectiveMult = 1.5
	OffElementMult     = 0.75 // Magic only: attacking into your own weakness
	ResistedMult       = 0.5
	NeutralMult        = 1.0
)

func beats(att, def units.Element) bool {
	for _, e := range advantages[att] {
		if e == def {
			return true
		}
	}
	return false
}

// ElementMultiplier returns the physical damage multiplier for an
// attacker/defender element pairing. Same-element is always resisted,
// an advantage pairing is super-effective, everything else — including
// the reverse of an advantage — is neutral. Attacks with no element on
// either side are neutral.
func ElementMultiplier(att, def units.Element) float64 {
	if att == units.ElementNone || def == units.ElementNone {
		return NeutralMult
	}
	if att == def {
		return ResistedMult
	}
	if beats(att, def) {
		return SuperEffectiveMult
	}
	return NeutralMult
}

// MagicElementMultiplier returns the amplified curve used by magical
// damage: it matches the physical curve but additionally punishes
// attacking into the defender's advantage (off-element, 0.75×).
func MagicElementMultiplier(att, def units.Element) float64 {
	if att == units.ElementNone || def == units.ElementNone {
		return NeutralMult
	}
	if att == def {
		return ResistedMult
	}
	if beats(att, def) {
		return SuperEffectiveMult
	}
	if beats(def, att) {
		return OffElementMult
	}
	return NeutralMult
}
