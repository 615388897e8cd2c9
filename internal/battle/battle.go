// Package battle orchestrates tactical encounters: it owns the grid and
// unit roster, schedules turns by speed, applies decisions through a single
// serialized commit path, and detects terminal conditions.
package battle

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/talgya/hextactics/internal/battlefield"
	"github.com/talgya/hextactics/internal/combat"
	"github.com/talgya/hextactics/internal/movement"
	"github.com/talgya/hextactics/internal/units"
)

// Phase is the battle lifecycle state.
type Phase uint8

const (
	PhaseSetup Phase = iota
	PhaseActive
	PhaseVictory
	PhaseDefeat
	PhaseDraw
)

// Name returns a human-readable phase name.
func (p Phase) Name() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseActive:
		return "active"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	case PhaseDraw:
		return "draw"
	}
	return "unknown"
}

// ConditionKind selects the victory condition.
type ConditionKind uint8

const (
	EliminateAll ConditionKind = iota
	ProtectUnit
	SurviveRounds
)

// VictoryCondition is chosen at battle creation and never changes.
type VictoryCondition struct {
	Kind      ConditionKind `json:"kind"`
	ProtectID string        `json:"protect_id,omitempty"` // For ProtectUnit
	Rounds    int           `json:"rounds,omitempty"`     // For SurviveRounds
}

// DefaultMaxRounds caps a battle before it is declared a draw.
const DefaultMaxRounds = 50

// TurnEntry is one slot in the round's turn queue.
type TurnEntry struct {
	UnitID string `json:"unit_id"`
	Speed  int    `json:"speed"`
	Acted  bool   `json:"acted"`
}

// Battle is one tactical encounter. All mutation happens through its
// methods; a rejected operation leaves state untouched and re-queryable.
type Battle struct {
	ID        string
	Grid      *battlefield.Grid
	Round     int
	Phase     Phase
	Condition VictoryCondition
	MaxRounds int

	roster map[string]*units.Unit
	order  []string // Insertion order; stable tie-break for the queue

	queue     []TurnEntry
	turnIndex int

	src        *rand.PCG
	rng        *rand.Rand
	resolver   *combat.Resolver
	pathfinder *movement.Pathfinder
}

// Illegal-action rejections. Each leaves battle state unchanged.
var (
	ErrNotActive      = errors.New("battle is not active")
	ErrNotActiveUnit  = errors.New("unit is not the active unit")
	ErrCannotAct      = errors.New("unit cannot act this turn")
	ErrInvalidTarget  = errors.New("target is not a valid unit")
	ErrTargetNotFoe   = errors.New("target is not hostile")
	ErrTargetNotAlly  = errors.New("target is not allied")
	ErrTargetOutOfRange = errors.New("target is out of range")
	ErrInsufficientMP = errors.New("not enough MP")
)

// New creates a battle from an external roster and grid layout. Invalid
// input fails fast here: duplicate identities, out-of-range stats, or
// units placed on impassable or occupied cells are never discovered
// mid-battle.
func New(id string, grid *battlefield.Grid, roster []*units.Unit, cond VictoryCondition, seed int64) (*Battle, error) {
	if grid == nil {
		return nil, errors.New("battle: nil grid")
	}
	if len(roster) == 0 {
		return nil, errors.New("battle: empty roster")
	}

	b := &Battle{
		ID:        id,
		Grid:      grid,
		Phase:     PhaseSetup,
		Condition: cond,
		MaxRounds: DefaultMaxRounds,
		roster:    make(map[string]*units.Unit, len(roster)),
	}
	b.src, b.rng = newRNG(seed)
	b.resolver = combat.New(grid, b.rng)
	b.pathfinder = movement.New(grid)

	for _, u := range roster {
		if err := validateUnit(u); err != nil {
			return nil, fmt.Errorf("battle: unit %q: %w", u.ID, err)
		}
		if _, dup := b.roster[u.ID]; dup {
			return nil, fmt.Errorf("battle: duplicate unit identity %q", u.ID)
		}
		if !grid.Place(u.ID, u.Pos) {
			return nil, fmt.Errorf("battle: unit %q cannot be placed at (%d,%d)", u.ID, u.Pos.X, u.Pos.Y)
		}
		b.roster[u.ID] = u
		b.order = append(b.order, u.ID)
	}

	switch cond.Kind {
	case ProtectUnit:
		if _, ok := b.roster[cond.ProtectID]; !ok {
			return nil, fmt.Errorf("battle: protected unit %q not in roster", cond.ProtectID)
		}
	case SurviveRounds:
		if cond.Rounds < 1 {
			return nil, errors.New("battle: survive-rounds condition needs a positive round count")
		}
	}

	return b, nil
}

func validateUnit(u *units.Unit) error {
	switch {
	case u.ID == "":
		return errors.New("empty identity")
	case u.MaxHP < 1 || u.HP < 1 || u.HP > u.MaxHP:
		return fmt.Errorf("hp %d/%d out of range", u.HP, u.MaxHP)
	case u.MP < 0 || u.MP > u.MaxMP:
		return fmt.Errorf("mp %d/%d out of range", u.MP, u.MaxMP)
	case u.Stats.Attack < 0 || u.Stats.Defense < 0 || u.Stats.MagicAttack < 0 || u.Stats.MagicDefense < 0:
		return errors.New("negative combat stat")
	case u.Stats.Speed < 1:
		return errors.New("speed must be positive")
	case u.MoveRange < 1:
		return errors.New("move range must be positive")
	case u.JumpHeight < 0:
		return errors.New("negative jump height")
	}
	return nil
}

// Start moves the battle from setup to the first round.
func (b *Battle) Start() error {
	if b.Phase != PhaseSetup {
		return fmt.Errorf("battle: cannot start in phase %s", b.Phase.Name())
	}
	b.Round = 1
	b.Phase = PhaseActive
	b.buildQueue()
	b.normalizeTurn()
	slog.Info("battle started", "battle", b.ID, "units", len(b.order))
	return nil
}

// Over reports whether the battle reached a terminal phase.
func (b *Battle) Over() bool {
	return b.Phase == PhaseVictory || b.Phase == PhaseDefeat || b.Phase == PhaseDraw
}

// Unit returns a roster unit by identity.
func (b *Battle) Unit(id string) (*units.Unit, bool) {
	u, ok := b.roster[id]
	return u, ok
}

// Units returns the roster in insertion order.
func (b *Battle) Units() []*units.Unit {
	result := make([]*units.Unit, 0, len(b.order))
	for _, id := range b.order {
		result = append(result, b.roster[id])
	}
	return result
}

// EnemiesOf returns the living units hostile to u, in insertion order.
func (b *Battle) EnemiesOf(u *units.Unit) []*units.Unit {
	var result []*units.Unit
	for _, id := range b.order {
		other := b.roster[id]
		if other.Alive() && u.Faction.Hostile(other.Faction) {
			result = append(result, other)
		}
	}
	return result
}

// AlliesOf returns the living units allied with u, excluding u itself,
// in insertion order.
func (b *Battle) AlliesOf(u *units.Unit) []*units.Unit {
	var result []*units.Unit
	for _, id := range b.order {
		other := b.roster[id]
		if other.ID != u.ID && other.Alive() && u.Faction.Allied(other.Faction) {
			result = append(result, other)
		}
	}
	return result
}

// Reachable returns the coordinates the unit can move to this turn with
// their minimal costs. Read-only.
func (b *Battle) Reachable(u *units.Unit) map[battlefield.HexCoord]int {
	return b.pathfinder.Reachable(u)
}

// TurnQueue returns a copy of the current round's turn order for display.
func (b *Battle) TurnQueue() []TurnEntry {
	out := make([]TurnEntry, len(b.queue))
	copy(out, b.queue)
	return out
}

// playerSideAlive reports whether the player's side still has living units.
func (b *Battle) playerSideAlive() bool {
	for _, id := range b.order {
		u := b.roster[id]
		if u.Alive() && (u.Faction == units.FactionPlayer || u.Faction == units.FactionAlly) {
			return true
		}
	}
	return false
}

// enemySideAlive reports whether any enemy unit still lives.
func (b *Battle) enemySideAlive() bool {
	for _, id := range b.order {
		u := b.roster[id]
		if u.Alive() && u.Faction == units.FactionEnemy {
			return true
		}
	}
	return false
}
