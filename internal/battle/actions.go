package battle

import (
	"log/slog"

	"github.com/talgya/hextactics/internal/battlefield"
	"github.com/talgya/hextactics/internal/combat"
	"github.com/talgya/hextactics/internal/units"
)

// activeGuard validates that the battle is running and the named unit
// holds the turn.
func (b *Battle) activeGuard(unitID string) (*units.Unit, error) {
	if b.Phase != PhaseActive {
		return nil, ErrNotActive
	}
	u := b.ActiveUnit()
	if u == nil || u.ID != unitID {
		return nil, ErrNotActiveUnit
	}
	return u, nil
}

// Move commits the active unit's movement to dest. Validation happens
// inside the pathfinder's validate/commit pair; a rejected move mutates
// nothing.
func (b *Battle) Move(unitID string, dest battlefield.HexCoord) error {
	u, err := b.activeGuard(unitID)
	if err != nil {
		return err
	}
	if err := b.pathfinder.Move(u, dest); err != nil {
		return err
	}
	slog.Debug("unit moved", "battle", b.ID, "unit", u.ID, "x", dest.X, "y", dest.Y)
	b.maybeAdvance()
	return nil
}

// Attack resolves an attack from the active unit against a hostile target
// in melee range and applies the outcome: HP delta, status riders, defeat
// flagging, and the post-defeat victory check.
func (b *Battle) Attack(unitID, targetID string, kind combat.AttackKind) (*combat.Result, error) {
	u, err := b.activeGuard(unitID)
	if err != nil {
		return nil, err
	}
	if !u.CanAct() {
		return nil, ErrCannotAct
	}
	target, ok := b.roster[targetID]
	if !ok || !target.Alive() {
		return nil, ErrInvalidTarget
	}
	if !u.Faction.Hostile(target.Faction) {
		return nil, ErrTargetNotFoe
	}
	if battlefield.Distance(u.Pos, target.Pos) > combat.AttackRange {
		return nil, ErrTargetOutOfRange
	}
	if kind == combat.Magical && u.MP < combat.MagicMPCost {
		return nil, ErrInsufficientMP
	}

	// All validation passed — from here the resolution commits atomically.
	if kind == combat.Magical {
		u.SpendMP(combat.MagicMPCost)
	}
	result := b.resolver.Resolve(kind, u, target)
	if result.Hit {
		target.ApplyDamage(result.Damage)
		for _, rider := range result.Riders {
			target.AddStatus(rider)
		}
	}
	u.HasActed = true

	slog.Debug("attack resolved",
		"battle", b.ID, "attacker", u.ID, "target", target.ID,
		"hit", result.Hit, "damage", result.Damage, "critical", result.Critical)

	if target.HP <= 0 {
		b.markDefeated(target)
		b.checkVictory()
	}
	if !b.Over() {
		b.maybeAdvance()
	}
	return &result, nil
}

// Heal spends the active unit's action restoring HP to an adjacent ally
// (or itself). Costs MP like a magical action.
func (b *Battle) Heal(unitID, targetID string) (int, error) {
	u, err := b.activeGuard(unitID)
	if err != nil {
		return 0, err
	}
	if !u.CanAct() {
		return 0, ErrCannotAct
	}
	target, ok := b.roster[targetID]
	if !ok || !target.Alive() {
		return 0, ErrInvalidTarget
	}
	if target.ID != u.ID && !u.Faction.Allied(target.Faction) {
		return 0, ErrTargetNotAlly
	}
	if battlefield.Distance(u.Pos, target.Pos) > combat.AttackRange {
		return 0, ErrTargetOutOfRange
	}
	if u.MP < combat.MagicMPCost {
		return 0, ErrInsufficientMP
	}

	u.SpendMP(combat.MagicMPCost)
	healed := target.Heal(b.resolver.ResolveHeal(u, combat.HealPower))
	u.HasActed = true

	slog.Debug("heal resolved", "battle", b.ID, "healer", u.ID, "target", target.ID, "healed", healed)

	b.maybeAdvance()
	return healed, nil
}

// Wait ends the active unit's turn, spending any remaining move and
// action.
func (b *Battle) Wait(unitID string) error {
	u, err := b.activeGuard(unitID)
	if err != nil {
		return err
	}
	u.HasMoved = true
	u.HasActed = true
	b.advanceTurn()
	return nil
}
