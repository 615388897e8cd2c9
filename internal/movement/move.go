package movement

import (
	"errors"

	"github.com/talgya/hextactics/internal/battlefield"
	"github.com/talgya/hextactics/internal/units"
)

// Rejection reasons for the validate half of movement. A rejected move
// leaves all state untouched.
var (
	ErrCannotMove  = errors.New("unit cannot move this turn")
	ErrNotPassable = errors.New("destination is not passable")
	ErrOccupied    = errors.New("destination is occupied")
	ErrOutOfRange  = errors.New("destination is beyond movement range")
	ErrNoPath      = errors.New("no path to destination")
)

// CanMoveTo validates a move without side effects. It returns nil when the
// unit may legally move to dest, or a named rejection reason.
func (p *Pathfinder) CanMoveTo(u *units.Unit, dest battlefield.HexCoord) error {
	if !u.CanMove() {
		return ErrCannotMove
	}
	cell := p.grid.At(dest)
	if cell == nil || !cell.Terrain.Passable() {
		return ErrNotPassable
	}
	if cell.Occupied() && cell.OccupantID != u.ID {
		return ErrOccupied
	}
	reachable := p.Reachable(u)
	if _, ok := reachable[dest]; !ok {
		return ErrOutOfRange
	}
	if p.FindPath(u.Pos, dest, u) == nil {
		return ErrNoPath
	}
	return nil
}

// Move commits a move: it re-validates, then updates grid occupancy, the
// unit's position and facing, and spends the unit's move for the turn.
// Re-validation guards against state drift between an asynchronous
// decision and its execution.
func (p *Pathfinder) Move(u *units.Unit, dest battlefield.HexCoord) error {
	if err := p.CanMoveTo(u, dest); err != nil {
		return err
	}
	path := p.FindPath(u.Pos, dest, u)
	if path == nil {
		return ErrNoPath
	}

	p.grid.Vacate(u.Pos)
	p.grid.Place(u.ID, dest)
	if len(path) >= 2 {
		if dir := path[len(path)-2].DirectionTo(dest); dir >= 0 {
			u.Facing = dir
		}
	}
	u.Pos = dest
	u.HasMoved = true
	return nil
}
