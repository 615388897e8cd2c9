package battle

import (
	"log/slog"
	"sort"

	"github.com/talgya/hextactics/internal/units"
)

// buildQueue recomputes the round's turn order: a stable sort of living
// units by current speed descending. The stable sort preserves insertion
// order on ties, keeping sequencing deterministic. Speed is re-read every
// round so Haste and Slow re-rank units at round boundaries, never
// mid-round.
func (b *Battle) buildQueue() {
	b.queue = b.queue[:0]
	for _, id := range b.order {
		u := b.roster[id]
		if u.Alive() {
			b.queue = append(b.queue, TurnEntry{UnitID: id, Speed: u.EffectiveSpeed()})
		}
	}
	sort.SliceStable(b.queue, func(i, j int) bool {
		return b.queue[i].Speed > b.queue[j].Speed
	})
	b.turnIndex = 0
}

// ActiveUnit returns the unit whose turn it is, or nil outside the active
// phase.
func (b *Battle) ActiveUnit() *units.Unit {
	if b.Phase != PhaseActive || b.turnIndex >= len(b.queue) {
		return nil
	}
	return b.roster[b.queue[b.turnIndex].UnitID]
}

// advanceTurn hands the turn to the next unit in the queue, ending the
// round when the queue is exhausted.
func (b *Battle) advanceTurn() {
	if b.turnIndex < len(b.queue) {
		b.queue[b.turnIndex].Acted = true
	}
	b.turnIndex++
	b.normalizeTurn()
}

// normalizeTurn settles the turn pointer on a unit that can actually take
// a turn, skipping defeated or action-suspended units and rolling over
// round boundaries.
func (b *Battle) normalizeTurn() {
	for b.Phase == PhaseActive {
		if b.turnIndex >= len(b.queue) {
			b.endRound()
			continue
		}
		u := b.roster[b.queue[b.turnIndex].UnitID]
		if u == nil || !u.Ready() {
			// Suspended units forfeit the turn; their statuses still
			// tick at round end.
			b.queue[b.turnIndex].Acted = true
			b.turnIndex++
			continue
		}
		return
	}
}

// maybeAdvance hands the turn over once the active unit has spent both its
// move and its action.
func (b *Battle) maybeAdvance() {
	u := b.ActiveUnit()
	if u != nil && u.HasMoved && u.HasActed {
		b.advanceTurn()
	}
}

// endRound applies end-of-round processing: status ticks in roster order
// (damage-over-time before duration decrement), defeat flagging, flag
// resets, and the round-boundary victory checks.
func (b *Battle) endRound() {
	for _, id := range b.order {
		u := b.roster[id]
		if !u.Alive() {
			continue
		}
		if dmg := u.TickStatuses(); dmg > 0 {
			slog.Debug("status damage", "battle", b.ID, "unit", u.ID, "damage", dmg, "hp", u.HP)
		}
		if u.HP <= 0 {
			b.markDefeated(u)
			b.checkVictory()
			if b.Over() {
				return
			}
		}
	}

	for _, id := range b.order {
		if u := b.roster[id]; u.Alive() {
			u.ResetTurnFlags()
		}
	}

	b.Round++
	slog.Debug("round ended", "battle", b.ID, "round", b.Round)

	if b.Condition.Kind == SurviveRounds && b.Round > b.Condition.Rounds && b.playerSideAlive() {
		b.Phase = PhaseVictory
		slog.Info("battle won by surviving", "battle", b.ID, "rounds", b.Condition.Rounds)
		return
	}
	if b.MaxRounds > 0 && b.Round > b.MaxRounds {
		b.Phase = PhaseDraw
		slog.Info("battle drawn at round cap", "battle", b.ID, "rounds", b.MaxRounds)
		return
	}

	b.checkVictory()
	if b.Over() {
		return
	}
	b.buildQueue()
}

// markDefeated flags a unit whose HP reached zero and removes it from the
// grid and the turn queue. Runs only at scheduler checkpoints, never in
// the middle of a resolution.
func (b *Battle) markDefeated(u *units.Unit) {
	u.Defeated = true
	b.Grid.Vacate(u.Pos)
	for i := range b.queue {
		if b.queue[i].UnitID == u.ID {
			b.queue = append(b.queue[:i], b.queue[i+1:]...)
			if i < b.turnIndex {
				b.turnIndex--
			}
			break
		}
	}
	slog.Info("unit defeated", "battle", b.ID, "unit", u.ID, "faction", u.Faction.Name())
}

// checkVictory runs after every defeat event and at round boundaries so
// the battle ends the instant a condition is met.
func (b *Battle) checkVictory() {
	if b.Phase != PhaseActive {
		return
	}

	if !b.playerSideAlive() {
		b.Phase = PhaseDefeat
		slog.Info("battle lost", "battle", b.ID, "round", b.Round)
		return
	}

	if b.Condition.Kind == ProtectUnit {
		if u, ok := b.roster[b.Condition.ProtectID]; !ok || !u.Alive() {
			b.Phase = PhaseDefeat
			slog.Info("protected unit lost", "battle", b.ID, "unit", b.Condition.ProtectID)
			return
		}
	}

	if !b.enemySideAlive() {
		b.Phase = PhaseVictory
		slog.Info("battle won", "battle", b.ID, "round", b.Round)
	}
}
