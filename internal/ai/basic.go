package ai

import (
	"github.com/talgya/hextactics/internal/battle"
	"github.com/talgya/hextactics/internal/battlefield"
	"github.com/talgya/hextactics/internal/movement"
	"github.com/talgya/hextactics/internal/units"
)

// Basic is the baseline combat policy: attack anything already in melee
// range, otherwise close distance on the nearest enemy and attack if the
// move brought one into reach. Stateless and deterministic.
type Basic struct{}

// Decide implements Policy.
func (Basic) Decide(b *battle.Battle, unitID string) Decision {
	u, ok := b.Unit(unitID)
	if !ok || !u.Alive() {
		return Decision{}
	}

	// Already in melee range: no movement needed.
	if targets := meleeTargets(b, u, u.Pos); len(targets) > 0 {
		return Decision{TargetID: selectWeakest(targets).ID}
	}

	enemy := nearestEnemy(b, u)
	if enemy == nil {
		return Decision{}
	}

	dest, found := closestApproach(b, u, enemy.Pos)
	var d Decision
	if found {
		d.MoveTo = &dest
	} else {
		dest = u.Pos
	}

	// Re-evaluate melee range from the destination.
	if targets := meleeTargets(b, u, dest); len(targets) > 0 {
		d.TargetID = selectWeakest(targets).ID
	}
	return d
}

// closestApproach picks the reachable cell nearest to goal, considering
// staying put as a candidate. Ties go to the first cell in coordinate
// order. Returns found=false when staying put is already best.
func closestApproach(b *battle.Battle, u *units.Unit, goal battlefield.HexCoord) (battlefield.HexCoord, bool) {
	best := u.Pos
	bestDist := battlefield.Distance(u.Pos, goal)

	reachable := b.Reachable(u)
	for _, c := range movement.SortedCoords(reachable) {
		if d := battlefield.Distance(c, goal); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best, best != u.Pos
}

// selectWeakest picks the lowest-HP target; ties go to the highest threat
// (attack stat), then roster order.
func selectWeakest(targets []*units.Unit) *units.Unit {
	best := targets[0]
	for _, t := range targets[1:] {
		switch {
		case t.HP < best.HP:
			best = t
		case t.HP == best.HP && t.Stats.Attack > best.Stats.Attack:
			best = t
		}
	}
	return best
}
