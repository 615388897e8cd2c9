package battle

import (
	"errors"

	"github.com/talgya/hextactics/internal/units"
)

// UnitReport carries a unit's final state out of the battle for the
// strategic layer (loot, experience, territory consequences).
type UnitReport struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Faction units.Faction `json:"faction"`
	Element units.Element `json:"element"`
	HP      int           `json:"hp"`
	MaxHP   int           `json:"max_hp"`
	Stats   units.Stats   `json:"stats"`
}

// Outcome summarizes a finished battle.
type Outcome struct {
	Winner    string       `json:"winner"` // "player", "enemy", or "draw"
	Rounds    int          `json:"rounds"`
	Survivors []UnitReport `json:"survivors"`
	Defeated  []UnitReport `json:"defeated"`
}

// Outcome returns the battle summary. It is only available once the battle
// reached a terminal phase; the battle is immutable from that point on.
func (b *Battle) Outcome() (*Outcome, error) {
	if !b.Over() {
		return nil, errors.New("battle: outcome requested before terminal phase")
	}

	out := &Outcome{Rounds: b.Round}
	switch b.Phase {
	case PhaseVictory:
		out.Winner = "player"
	case PhaseDefeat:
		out.Winner = "enemy"
	default:
		out.Winner = "draw"
	}

	for _, id := range b.order {
		u := b.roster[id]
		report := UnitReport{
			ID:      u.ID,
			Name:    u.Name,
			Faction: u.Faction,
			Element: u.Element,
			HP:      u.HP,
			MaxHP:   u.MaxHP,
			Stats:   u.Stats,
		}
		if u.Alive() {
			out.Survivors = append(out.Survivors, report)
		} else {
			out.Defeated = append(out.Defeated, report)
		}
	}
	return out, nil
}
