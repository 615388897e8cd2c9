// Package ai chooses movement and actions for AI-controlled units. A
// policy is a pure function of the battle state: it never mutates the
// battle and always returns the same decision for the same snapshot, so it
// can run off-thread and be applied later through the battle's serialized
// commit path.
package ai

import (
	"github.com/talgya/hextactics/internal/battle"
	"github.com/talgya/hextactics/internal/battlefield"
	"github.com/talgya/hextactics/internal/combat"
	"github.com/talgya/hextactics/internal/units"
)

// Decision is one unit-turn: an optional move plus one action.
type Decision struct {
	MoveTo     *battlefield.HexCoord // nil = stay put
	TargetID   string                // "" = no attack, end turn with wait
	AttackKind combat.AttackKind
}

// Policy decides a turn for one unit given read access to the battle.
type Policy interface {
	Decide(b *battle.Battle, unitID string) Decision
}

// TakeTurn drives one AI unit turn: it asks the policy for a decision and
// applies it through the battle's commit path, falling back to wait when
// any half of the decision is rejected. Returns once the turn has passed
// to the next unit or the battle ended.
func TakeTurn(b *battle.Battle, p Policy) error {
	u := b.ActiveUnit()
	if u == nil {
		return battle.ErrNotActive
	}

	d := p.Decide(b, u.ID)

	if d.MoveTo != nil {
		// The commit path re-validates; a stale or illegal move decision
		// degrades to staying put.
		_ = b.Move(u.ID, *d.MoveTo)
	}
	if b.Over() {
		return nil
	}
	if d.TargetID != "" {
		_, _ = b.Attack(u.ID, d.TargetID, d.AttackKind)
	}
	if b.Over() {
		return nil
	}
	if active := b.ActiveUnit(); active != nil && active.ID == u.ID {
		return b.Wait(u.ID)
	}
	return nil
}

// nearestEnemy returns the closest living hostile unit by hex distance,
// first in roster order on ties.
func nearestEnemy(b *battle.Battle, u *units.Unit) *units.Unit {
	var nearest *units.Unit
	best := 0
	for _, e := range b.EnemiesOf(u) {
		d := battlefield.Distance(u.Pos, e.Pos)
		if nearest == nil || d < best {
			nearest = e
			best = d
		}
	}
	return nearest
}

// meleeTargets returns living hostile units within attack range of pos,
// in roster order.
func meleeTargets(b *battle.Battle, u *units.Unit, pos battlefield.HexCoord) []*units.Unit {
	var targets []*units.Unit
	for _, e := range b.EnemiesOf(u) {
		if battlefield.Distance(pos, e.Pos) <= combat.AttackRange {
			targets = append(targets, e)
		}
	}
	return targets
}
