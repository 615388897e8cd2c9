// Package movement computes reachable cells and optimal paths on the
// battlefield, and commits unit moves through a validate/commit pair.
package movement

import (
	"sort"

	"github.com/talgya/hextactics/internal/battlefield"
	"github.com/talgya/hextactics/internal/units"
)

// Pathfinder answers movement queries against one grid. It never mutates
// the grid except through the Move commit path.
type Pathfinder struct {
	grid *battlefield.Grid
}

// New creates a pathfinder for the grid.
func New(grid *battlefield.Grid) *Pathfinder {
	return &Pathfinder{grid: grid}
}

// accessible reports whether the unit could stand on the coordinate:
// in bounds, passable terrain, and not occupied by anyone else.
func (p *Pathfinder) accessible(c battlefield.HexCoord, u *units.Unit) bool {
	cell := p.grid.At(c)
	if cell == nil || !cell.Terrain.Passable() {
		return false
	}
	return !cell.Occupied() || cell.OccupantID == u.ID
}

// stepAllowed reports whether the unit can step between two adjacent cells,
// enforcing the jump-height limit on elevation change.
func (p *Pathfinder) stepAllowed(from, to battlefield.HexCoord, u *units.Unit) bool {
	a := p.grid.At(from)
	b := p.grid.At(to)
	if a == nil || b == nil {
		return false
	}
	diff := a.Elevation - b.Elevation
	if diff < 0 {
		diff = -diff
	}
	return diff <= u.JumpHeight
}

// Reachable returns every coordinate the unit can reach from its current
// position within its movement range, mapped to the minimal cumulative
// terrain cost. The starting cell is excluded. Expansion order is
// deterministic: ties are broken by (y, x) coordinate order.
func (p *Pathfinder) Reachable(u *units.Unit) map[battlefield.HexCoord]int {
	return p.ReachableWithin(u, u.MoveRange)
}

// ReachableWithin is Reachable with an explicit cost budget.
func (p *Pathfinder) ReachableWithin(u *units.Unit, budget int) map[battlefield.HexCoord]int {
	dist := map[battlefield.HexCoord]int{u.Pos: 0}
	frontier := []battlefield.HexCoord{u.Pos}

	for len(frontier) > 0 {
		// Pop the frontier entry with minimal cost, coordinate order on ties.
		best := 0
		for i := 1; i < len(frontier); i++ {
			if coordLess(dist[frontier[i]], frontier[i], dist[frontier[best]], frontier[best]) {
				best = i
			}
		}
		cur := frontier[best]
		frontier = append(frontier[:best], frontier[best+1:]...)
		curCost := dist[cur]

		for _, n := range p.grid.Neighbors(cur) {
			if !p.accessible(n, u) || !p.stepAllowed(cur, n, u) {
				continue
			}
			cost := curCost + p.grid.At(n).Terrain.MoveCost()
			if cost > budget {
				continue
			}
			if old, seen := dist[n]; !seen || cost < old {
				dist[n] = cost
				frontier = append(frontier, n)
			}
		}
	}

	delete(dist, u.Pos)
	return dist
}

// FindPath returns the cheapest path from start to goal for the unit,
// including both endpoints, using A* with hex distance as the heuristic.
// Returns nil if the goal is not passable, not reachable, or beyond the
// unit's movement range.
func (p *Pathfinder) FindPath(start, goal battlefield.HexCoord, u *units.Unit) []battlefield.HexCoord {
	if !p.accessible(goal, u) {
		return nil
	}
	if start == goal {
		return []battlefield.HexCoord{start}
	}

	type node struct {
		g, f int
	}
	nodes := map[battlefield.HexCoord]node{
		start: {g: 0, f: battlefield.Distance(start, goal)},
	}
	parent := map[battlefield.HexCoord]battlefield.HexCoord{}
	open := []battlefield.HexCoord{start}
	closed := map[battlefield.HexCoord]bool{}

	for len(open) > 0 {
		best := 0
		for i := 1; i < len(open); i++ {
			if coordLess(nodes[open[i]].f, open[i], nodes[open[best]].f, open[best]) {
				best = i
			}
		}
		cur := open[best]
		open = append(open[:best], open[best+1:]...)

		if cur == goal {
			path := reconstruct(parent, goal)
			if PathCost(p.grid, path) > u.MoveRange {
				return nil
			}
			return path
		}
		closed[cur] = true

		for _, n := range p.grid.Neighbors(cur) {
			if closed[n] || !p.accessible(n, u) || !p.stepAllowed(cur, n, u) {
				continue
			}
			g := nodes[cur].g + p.grid.At(n).Terrain.MoveCost()
			if existing, seen := nodes[n]; seen {
				if g < existing.g {
					nodes[n] = node{g: g, f: g + battlefield.Distance(n, goal)}
					parent[n] = cur
				}
				continue
			}
			nodes[n] = node{g: g, f: g + battlefield.Distance(n, goal)}
			parent[n] = cur
			open = append(open, n)
		}
	}

	return nil
}

// PathCost sums the terrain cost of entering each cell after the first.
func PathCost(grid *battlefield.Grid, path []battlefield.HexCoord) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total += grid.At(path[i]).Terrain.MoveCost()
	}
	return total
}

// PositionsInRange returns all grid coordinates whose hex distance from
// center lies in [min, max], in row-major order.
func (p *Pathfinder) PositionsInRange(center battlefield.HexCoord, min, max int) []battlefield.HexCoord {
	var result []battlefield.HexCoord
	for y := 0; y < p.grid.Height; y++ {
		for x := 0; x < p.grid.Width; x++ {
			c := battlefield.HexCoord{X: x, Y: y}
			d := battlefield.Distance(center, c)
			if d >= min && d <= max {
				result = append(result, c)
			}
		}
	}
	return result
}

// SortedCoords returns the map keys of a reachable set in deterministic
// (y, x) order, for callers that iterate over it.
func SortedCoords(set map[battlefield.HexCoord]int) []battlefield.HexCoord {
	coords := make([]battlefield.HexCoord, 0, len(set))
	for c := range set {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].X < coords[j].X
	})
	return coords
}

func reconstruct(parent map[battlefield.HexCoord]battlefield.HexCoord, goal battlefield.HexCoord) []battlefield.HexCoord {
	path := []battlefield.HexCoord{goal}
	cur := goal
	for {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// coordLess orders (cost, coord) pairs: lower cost first, then (y, x).
func coordLess(c1 int, a battlefield.HexCoord, c2 int, b battlefield.HexCoord) bool {
	if c1 != c2 {
		return c1 < c2
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
