package ai

import (
	"github.com/talgya/hextactics/internal/battle"
	"github.com/talgya/hextactics/internal/battlefield"
	"github.com/talgya/hextactics/internal/movement"
	"github.com/talgya/hextactics/internal/units"
)

// Tactical scores candidate destinations by terrain defense, elevation,
// and proximity to the target. Aggression in [0, 1] shifts the weighting
// from cover-seeking (0) toward direct approach (1). Like Basic it is
// stateless and deterministic.
type Tactical struct {
	Aggression float64
}

// NewTactical clamps aggression into [0, 1].
func NewTactical(aggression float64) Tactical {
	if aggression < 0 {
		aggression = 0
	}
	if aggression > 1 {
		aggression = 1
	}
	return Tactical{Aggression: aggression}
}

// Decide implements Policy.
func (t Tactical) Decide(b *battle.Battle, unitID string) Decision {
	u, ok := b.Unit(unitID)
	if !ok || !u.Alive() {
		return Decision{}
	}

	if targets := meleeTargets(b, u, u.Pos); len(targets) > 0 {
		return Decision{TargetID: t.selectTarget(u, targets).ID}
	}

	enemy := nearestEnemy(b, u)
	if enemy == nil {
		return Decision{}
	}

	// Score staying put plus every reachable cell; keep the first best in
	// coordinate order so the decision is reproducible.
	best := u.Pos
	bestScore := t.scorePosition(b, u, u.Pos, enemy.Pos)
	for _, c := range movement.SortedCoords(b.Reachable(u)) {
		if s := t.scorePosition(b, u, c, enemy.Pos); s > bestScore {
			best = c
			bestScore = s
		}
	}

	var d Decision
	if best != u.Pos {
		dest := best
		d.MoveTo = &dest
	}
	if targets := meleeTargets(b, u, best); len(targets) > 0 {
		d.TargetID = t.selectTarget(u, targets).ID
	}
	return d
}

// scorePosition weighs cover value against closing distance.
func (t Tactical) scorePosition(b *battle.Battle, u *units.Unit, pos, enemyPos battlefield.HexCoord) float64 {
	score := 0.0

	if cell := b.Grid.At(pos); cell != nil {
		score += float64(cell.Terrain.DefenseBonus()) / 10
		score += float64(cell.Elevation) * 5
	}

	di := battlefield.Distance(pos, enemyPos)
	dist := float64(di)
	switch di {
	case 1:
		score += 50
	case 2:
		score += 30
	case 3, 4:
		score += 10
	}

	// Aggression pulls toward the enemy, caution pushes toward standoff.
	score -= dist * 10 * t.Aggression
	score += dist * 5 * (1 - t.Aggression)

	// Slight preference for staying near the group.
	if ally := nearestAlly(b, u, pos); ally != nil {
		if ad := battlefield.Distance(pos, ally.Pos); ad >= 2 && ad <= 4 {
			score += 5
		}
	}

	return score
}

// selectTarget focuses fire: finish low-HP units, then high-threat ones,
// then the closest.
func (t Tactical) selectTarget(u *units.Unit, targets []*units.Unit) *units.Unit {
	best := targets[0]
	bestScore := t.targetScore(u, best)
	for _, candidate := range targets[1:] {
		if s := t.targetScore(u, candidate); s > bestScore {
			best = candidate
			bestScore = s
		}
	}
	return best
}

func (t Tactical) targetScore(u, target *units.Unit) float64 {
	score := 0.0
	switch hp := target.HPPercent(); {
	case hp < 30:
		score += 100
	case hp < 60:
		score += 50
	}
	score += float64(target.Stats.Attack) * 2
	score -= float64(battlefield.Distance(u.Pos, target.Pos)) * 5
	return score
}

// nearestAlly returns the closest living allied unit to pos, or nil.
func nearestAlly(b *battle.Battle, u *units.Unit, pos battlefield.HexCoord) *units.Unit {
	var nearest *units.Unit
	best := 0
	for _, a := range b.AlliesOf(u) {
		d := battlefield.Distance(pos, a.Pos)
		if nearest == nil || d < best {
			nearest = a
			best = d
		}
	}
	return nearest
}
