// Package combat turns an attacker, defender, and battlefield context into
// a hit/damage outcome. The resolver is pure: it computes results and
// returns every side effect (HP delta, status riders) as explicit values
// for the caller to apply through its commit path.
package combat

import (
	"math"
	"math/rand/v2"

	"github.com/talgya/hextactics/internal/battlefield"
	"github.com/talgya/hextactics/internal/units"
)

// AttackKind selects the damage model.
type AttackKind uint8

const (
	Physical AttackKind = iota
	Magical
)

// Tuning constants for the resolution model.
const (
	AttackRange = 1 // Melee reach in hexes

	BaseHitChance = 0.90
	MinHitChance  = 0.10
	MaxHitChance  = 1.00

	CritChance = 0.10
	CritMult   = 1.5

	DefaultSpellPower = 100
	MagicMPCost       = 10

	HealPower    = 50
	LifeHealMult = 1.5
)

// Result is the outcome of one attack resolution.
type Result struct {
	Kind      AttackKind
	Hit       bool
	HitChance float64
	Critical  bool
	Damage    int

	ElementMult    float64
	TerrainDefense int // Defender's terrain bonus, percent
	ElevationBonus int // Attacker's elevation advantage bonus, percent

	// Status effects the attack carries on hit, to be attached to the
	// defender by the caller.
	Riders []units.StatusEffect
}

// Resolver computes attack outcomes against one battlefield.
type Resolver struct {
	grid *battlefield.Grid
	rng  *rand.Rand
}

// New creates a resolver. The RNG is owned by the caller so resolution
// stays reproducible under a fixed seed.
func New(grid *battlefield.Grid, rng *rand.Rand) *Resolver {
	return &Resolver{grid: grid, rng: rng}
}

// HitChance returns the clamped probability that att hits def:
// 0.90 − 0.01×max(0, speed deficit)/2 − terrain/5 ± bless modifiers,
// always within [0.10, 1.00].
func (r *Resolver) HitChance(att, def *units.Unit) float64 {
	chance := BaseHitChance

	deficit := def.EffectiveSpeed() - att.EffectiveSpeed()
	if deficit > 0 {
		chance -= 0.01 * float64(deficit) / 2
	}

	if cell := r.grid.At(def.Pos); cell != nil {
		chance -= float64(cell.Terrain.DefenseBonus()) / 100 / 5
	}

	if att.HasStatus(units.StatusBless) {
		chance += 0.10
	}
	if def.HasStatus(units.StatusBless) {
		chance -= 0.10
	}

	return clamp(chance, MinHitChance, MaxHitChance)
}

// Resolve computes the outcome of an attack of the given kind. It rolls
// hit/miss first; a miss is a distinct outcome with zero damage.
func (r *Resolver) Resolve(kind AttackKind, att, def *units.Unit) Result {
	if kind == Magical {
		return r.ResolveMagical(att, def, DefaultSpellPower)
	}
	return r.ResolvePhysical(att, def)
}

// ResolvePhysical computes a physical attack:
// max(1, round((attack − defense/2) × crit × element × terrain × elevation × variance)).
func (r *Resolver) ResolvePhysical(att, def *units.Unit) Result {
	result := Result{Kind: Physical, HitChance: r.HitChance(att, def)}
	if r.rng.Float64() > result.HitChance {
		return result
	}
	result.Hit = true

	dmg := float64(att.EffectiveAttack()) - float64(def.EffectiveDefense())/2

	if r.rng.Float64() < CritChance {
		result.Critical = true
		dmg *= CritMult
	}

	result.ElementMult = ElementMultiplier(att.Element, def.Element)
	dmg *= result.ElementMult

	if cell := r.grid.At(def.Pos); cell != nil {
		result.TerrainDefense = cell.Terrain.DefenseBonus()
		dmg *= 1.0 - float64(result.TerrainDefense)/100
	}

	// Elevation advantage favors the higher attacker only.
	attCell := r.grid.At(att.Pos)
	defCell := r.grid.At(def.Pos)
	if attCell != nil && defCell != nil && attCell.Elevation > defCell.Elevation {
		result.ElevationBonus = (attCell.Elevation - defCell.Elevation) * 5
		dmg *= 1.0 + float64(result.ElevationBonus)/100
	}

	dmg *= 0.90 + r.rng.Float64()*0.20

	result.Damage = floorDamage(dmg)
	result.Riders = r.riders(att)
	return result
}

// ResolveMagical computes a magical attack:
// max(1, round((spellPower + magicAttack − magicDefense/2) × element × variance)),
// with the amplified elemental curve and a wider ±15% variance.
func (r *Resolver) ResolveMagical(att, def *units.Unit, spellPower int) Result {
	result := Result{Kind: Magical, HitChance: r.HitChance(att, def)}
	if r.rng.Float64() > result.HitChance {
		return result
	}
	result.Hit = true

	dmg := float64(spellPower) + float64(att.Stats.MagicAttack) - float64(def.Stats.MagicDefense)/2

	result.ElementMult = MagicElementMultiplier(att.Element, def.Element)
	dmg *= result.ElementMult

	dmg *= 0.85 + r.rng.Float64()*0.30

	result.Damage = floorDamage(dmg)
	result.Riders = r.riders(att)
	return result
}

// riders rolls the status effects an attacker's element carries on hit.
func (r *Resolver) riders(att *units.Unit) []units.StatusEffect {
	var riders []units.StatusEffect
	switch att.Element {
	case units.ElementFire:
		if r.rng.Float64() < 0.20 {
			riders = append(riders, units.StatusEffect{Kind: units.StatusBurn, Duration: 3, Magnitude: units.BurnMagnitude})
		}
	case units.ElementDeath:
		if r.rng.Float64() < 0.20 {
			riders = append(riders, units.StatusEffect{Kind: units.StatusPoison, Duration: 3, Magnitude: units.PoisonMagnitude})
		}
	case units.ElementWater:
		if r.rng.Float64() < 0.15 {
			riders = append(riders, units.StatusEffect{Kind: units.StatusSlow, Duration: 2})
		}
	}
	return riders
}

// ResolveHeal computes the HP a healer restores:
// round((healPower + magicAttack/2) × lifeBonus × variance), where the
// Life-element bonus is 1.5×. The caller clamps at the target's max HP
// when applying.
func (r *Resolver) ResolveHeal(healer *units.Unit, healPower int) int {
	amount := float64(healPower) + float64(healer.Stats.MagicAttack)/2
	if healer.Element == units.ElementLife {
		amount *= LifeHealMult
	}
	if healer.HasStatus(units.StatusBless) {
		amount *= 1.2
	}
	amount *= 0.90 + r.rng.Float64()*0.20
	healed := int(math.Round(amount))
	if healed < 1 {
		healed = 1
	}
	return healed
}

func floorDamage(dmg float64) int {
	d := int(math.Round(dmg))
	if d < 1 {
		d = 1
	}
	return d
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
