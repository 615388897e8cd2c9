// Package units provides combat units and their status-effect lifecycle.
// A unit is battle-scoped: it is built from an external roster record when
// the battle starts and discarded with the battle.
package units

import "github.com/talgya/hextactics/internal/battlefield"

// Faction tags a unit's allegiance.
type Faction uint8

const (
	FactionPlayer Faction = iota
	FactionAlly
	FactionEnemy
	FactionNeutral
)

// Name returns a human-readable faction name.
func (f Faction) Name() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionAlly:
		return "ally"
	case FactionEnemy:
		return "enemy"
	case FactionNeutral:
		return "neutral"
	}
	return "unknown"
}

// Allied reports whether two factions fight on the same side. Player and
// ally units form one side; neutrals side with nobody.
func (f Faction) Allied(other Faction) bool {
	if f == other {
		return true
	}
	return (f == FactionPlayer && other == FactionAlly) ||
		(f == FactionAlly && other == FactionPlayer)
}

// Hostile reports whether units of these factions may target each other.
func (f Faction) Hostile(other Faction) bool {
	if f == FactionNeutral || other == FactionNeutral {
		return false
	}
	return !f.Allied(other)
}

// Element is a unit's elemental affinity.
type Element uint8

const (
	ElementNone Element = iota
	ElementFire
	ElementWater
	ElementEarth
	ElementAir
	ElementLife
	ElementDeath
)

// Name returns a human-readable element name.
func (e Element) Name() string {
	switch e {
	case ElementFire:
		return "fire"
	case ElementWater:
		return "water"
	case ElementEarth:
		return "earth"
	case ElementAir:
		return "air"
	case ElementLife:
		return "life"
	case ElementDeath:
		return "death"
	}
	return "none"
}

// Stats are the five combat statistics. A unit's stats are computed once at
// battle start from base values plus equipment modifiers; status effects
// apply on top via the Effective* accessors.
type Stats struct {
	Attack       int `json:"attack"`
	Defense      int `json:"defense"`
	MagicAttack  int `json:"magic_attack"`
	MagicDefense int `json:"magic_defense"`
	Speed        int `json:"speed"`
}

// Unit is a combatant on the battlefield.
type Unit struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Faction Faction `json:"faction"`
	Element Element `json:"element"`

	Pos    battlefield.HexCoord `json:"pos"`
	Facing int                  `json:"facing"` // 0-5 hex direction

	HP    int `json:"hp"`
	MaxHP int `json:"max_hp"`
	MP    int `json:"mp"`
	MaxMP int `json:"max_mp"`

	Stats Stats `json:"stats"`

	MoveRange  int `json:"move_range"`
	JumpHeight int `json:"jump_height"`

	HasMoved bool `json:"has_moved"`
	HasActed bool `json:"has_acted"`
	Defeated bool `json:"defeated"`

	AIControlled bool `json:"ai_controlled"`

	// Active status effects, in application order.
	Statuses []StatusEffect `json:"statuses,omitempty"`
}

// Alive reports whether the unit still fights.
func (u *Unit) Alive() bool {
	return u.HP > 0 && !u.Defeated
}

// Ready reports whether the unit may take its turn: alive and not under an
// action-suspending status (stun, sleep, paralyze, freeze).
func (u *Unit) Ready() bool {
	if !u.Alive() {
		return false
	}
	for i := range u.Statuses {
		if u.Statuses[i].Kind.suspendsAction() {
			return false
		}
	}
	return true
}

// CanMove reports whether the unit may still move this turn.
func (u *Unit) CanMove() bool {
	return u.Ready() && !u.HasMoved
}

// CanAct reports whether the unit may still act this turn.
func (u *Unit) CanAct() bool {
	return u.Ready() && !u.HasActed
}

// EffectiveAttack returns attack after status modifiers (Bless +20%).
func (u *Unit) EffectiveAttack() int {
	total := u.Stats.Attack
	if u.HasStatus(StatusBless) {
		total = total * 12 / 10
	}
	return total
}

// EffectiveDefense returns defense after status modifiers (Bless +20%).
func (u *Unit) EffectiveDefense() int {
	total := u.Stats.Defense
	if u.HasStatus(StatusBless) {
		total = total * 12 / 10
	}
	return total
}

// EffectiveSpeed returns speed after status modifiers (Haste +50%,
// Slow -50%).
func (u *Unit) EffectiveSpeed() int {
	total := u.Stats.Speed
	if u.HasStatus(StatusHaste) {
		total = total * 3 / 2
	}
	if u.HasStatus(StatusSlow) {
		total = total / 2
	}
	return total
}

// ApplyDamage subtracts HP, clamped at zero, and returns the HP actually
// lost. Damage below 1 is floored to 1.
func (u *Unit) ApplyDamage(dmg int) int {
	if dmg < 1 {
		dmg = 1
	}
	if dmg > u.HP {
		dmg = u.HP
	}
	u.HP -= dmg
	return dmg
}

// Heal restores HP, clamped at max, and returns the HP actually restored.
func (u *Unit) Heal(amount int) int {
	old := u.HP
	u.HP += amount
	if u.HP > u.MaxHP {
		u.HP = u.MaxHP
	}
	return u.HP - old
}

// SpendMP consumes MP if available, reporting success.
func (u *Unit) SpendMP(amount int) bool {
	if u.MP < amount {
		return false
	}
	u.MP -= amount
	return true
}

// RestoreMP restores MP, clamped at max, and returns the MP restored.
func (u *Unit) RestoreMP(amount int) int {
	old := u.MP
	u.MP += amount
	if u.MP > u.MaxMP {
		u.MP = u.MaxMP
	}
	return u.MP - old
}

// HPPercent returns current HP as a percentage of max.
func (u *Unit) HPPercent() float64 {
	if u.MaxHP == 0 {
		return 0
	}
	return float64(u.HP) / float64(u.MaxHP) * 100
}

// ResetTurnFlags clears the per-turn move/act flags.
func (u *Unit) ResetTurnFlags() {
	u.HasMoved = false
	u.HasActed = false
}
