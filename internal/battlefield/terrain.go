package battlefield

// Terrain types for battle grid cells.
type Terrain uint8

const (
	TerrainPlains   Terrain = iota // Open ground — no modifiers
	TerrainForest                  // Difficult, grants cover
	TerrainHill                    // Elevated, strong defensive ground
	TerrainWater                   // Deep — slow to cross, slight cover
	TerrainWall                    // Impassable
	TerrainObstacle                // Impassable debris
)

// ImpassableCost is the sentinel movement cost for cells that can never be
// entered. A cell with this cost never holds an occupant and is excluded
// from every reachable-set and path result.
const ImpassableCost = 99

// MoveCost returns the movement cost for entering a cell of this terrain.
func (t Terrain) MoveCost() int {
	switch t {
	case TerrainPlains:
		return 1
	case TerrainForest, TerrainHill:
		return 2
	case TerrainWater:
		return 3
	case TerrainWall, TerrainObstacle:
		return ImpassableCost
	}
	return 1
}

// DefenseBonus returns the percentage damage reduction (0-50) granted to a
// unit standing on this terrain.
func (t Terrain) DefenseBonus() int {
	switch t {
	case TerrainForest:
		return 15
	case TerrainHill:
		return 20
	case TerrainWater:
		return 5
	case TerrainWall:
		return 50
	case TerrainObstacle:
		return 10
	}
	return 0
}

// Passable reports whether the terrain itself can ever be entered.
// Occupancy is checked separately so "reachable but occupied" can be
// distinguished from "never reachable".
func (t Terrain) Passable() bool {
	return t.MoveCost() < ImpassableCost
}

// Name returns a human-readable terrain name.
func (t Terrain) Name() string {
	switch t {
	case TerrainPlains:
		return "plains"
	case TerrainForest:
		return "forest"
	case TerrainHill:
		return "hill"
	case TerrainWater:
		return "water"
	case TerrainWall:
		return "wall"
	case TerrainObstacle:
		return "obstacle"
	}
	return "unknown"
}
