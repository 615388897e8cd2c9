package battle

import (
	"errors"
	"fmt"

	"github.com/talgya/hextactics/internal/battlefield"
	"github.com/talgya/hextactics/internal/combat"
	"github.com/talgya/hextactics/internal/movement"
	"github.com/talgya/hextactics/internal/units"
)

// Snapshot is the complete serializable state of a battle: grid, roster,
// turn queue, round, phase, and the random source state. A battle restored
// from a snapshot behaves identically to the original from that point on.
// The snapshot holds no references into the live battle.
type Snapshot struct {
	ID        string             `json:"id"`
	Grid      *battlefield.Grid  `json:"grid"`
	Units     []*units.Unit      `json:"units"`
	Queue     []TurnEntry        `json:"queue"`
	TurnIndex int                `json:"turn_index"`
	Round     int                `json:"round"`
	Phase     Phase              `json:"phase"`
	Condition VictoryCondition   `json:"condition"`
	MaxRounds int                `json:"max_rounds"`
	RNGState  []byte             `json:"rng_state"`
}

// Snapshot captures the battle's full state as independent copies.
func (b *Battle) Snapshot() (*Snapshot, error) {
	rngState, err := b.src.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("battle: marshal rng state: %w", err)
	}

	gridCopy := &battlefield.Grid{
		Width:  b.Grid.Width,
		Height: b.Grid.Height,
		Cells:  append([]battlefield.Cell(nil), b.Grid.Cells...),
	}

	unitCopies := make([]*units.Unit, 0, len(b.order))
	for _, id := range b.order {
		u := *b.roster[id]
		u.Statuses = append([]units.StatusEffect(nil), b.roster[id].Statuses...)
		unitCopies = append(unitCopies, &u)
	}

	return &Snapshot{
		ID:        b.ID,
		Grid:      gridCopy,
		Units:     unitCopies,
		Queue:     append([]TurnEntry(nil), b.queue...),
		TurnIndex: b.turnIndex,
		Round:     b.Round,
		Phase:     b.Phase,
		Condition: b.Condition,
		MaxRounds: b.MaxRounds,
		RNGState:  rngState,
	}, nil
}

// Restore reconstructs a battle from a snapshot.
func Restore(s *Snapshot) (*Battle, error) {
	if s == nil || s.Grid == nil {
		return nil, errors.New("battle: nil snapshot")
	}

	b := &Battle{
		ID:        s.ID,
		Grid:      s.Grid,
		Round:     s.Round,
		Phase:     s.Phase,
		Condition: s.Condition,
		MaxRounds: s.MaxRounds,
		roster:    make(map[string]*units.Unit, len(s.Units)),
		queue:     append([]TurnEntry(nil), s.Queue...),
		turnIndex: s.TurnIndex,
	}
	for _, u := range s.Units {
		if _, dup := b.roster[u.ID]; dup {
			return nil, fmt.Errorf("battle: snapshot has duplicate unit %q", u.ID)
		}
		b.roster[u.ID] = u
		b.order = append(b.order, u.ID)
	}

	b.src, b.rng = newRNG(1)
	if len(s.RNGState) > 0 {
		if err := b.src.UnmarshalBinary(s.RNGState); err != nil {
			return nil, fmt.Errorf("battle: restore rng state: %w", err)
		}
	}
	b.resolver = combat.New(b.Grid, b.rng)
	b.pathfinder = movement.New(b.Grid)
	return b, nil
}
