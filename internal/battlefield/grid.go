package battlefield

// Standard battle grid dimensions.
const (
	GridWidth  = 12
	GridHeight = 18
)

// Cell is a single hex on the battle grid. The grid stores occupant IDs,
// not unit references — the unit roster is owned by the battle.
type Cell struct {
	Coord      HexCoord `json:"coord"`
	Terrain    Terrain  `json:"terrain"`
	Elevation  int      `json:"elevation"`
	OccupantID string   `json:"occupant_id,omitempty"`
}

// Occupied reports whether a unit stands on the cell.
func (c *Cell) Occupied() bool {
	return c.OccupantID != ""
}

// Grid is the tactical battlefield: a Width×Height field of hex cells.
// Read-only once built, except for occupancy.
type Grid struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Cells  []Cell `json:"cells"` // Row-major: index = y*Width + x
}

// NewGrid creates a grid of the given dimensions, all plains at elevation 0.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Cells[y*width+x] = Cell{Coord: HexCoord{X: x, Y: y}}
		}
	}
	return g
}

// InBounds reports whether the coordinate lies on the grid.
func (g *Grid) InBounds(c HexCoord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// At returns the cell at the coordinate, or nil if out of bounds.
func (g *Grid) At(c HexCoord) *Cell {
	if !g.InBounds(c) {
		return nil
	}
	return &g.Cells[c.Y*g.Width+c.X]
}

// Passable reports whether the coordinate is in bounds and its terrain can
// be entered. Does not consider occupancy.
func (g *Grid) Passable(c HexCoord) bool {
	cell := g.At(c)
	return cell != nil && cell.Terrain.Passable()
}

// Open reports whether a unit could stand on the coordinate right now:
// passable terrain and no occupant.
func (g *Grid) Open(c HexCoord) bool {
	cell := g.At(c)
	return cell != nil && cell.Terrain.Passable() && !cell.Occupied()
}

// Neighbors returns the adjacent coordinates that lie on the grid.
func (g *Grid) Neighbors(c HexCoord) []HexCoord {
	result := make([]HexCoord, 0, 6)
	for _, n := range c.Neighbors() {
		if g.InBounds(n) {
			result = append(result, n)
		}
	}
	return result
}

// Place marks the coordinate as occupied by the given unit ID. Returns
// false if the cell is out of bounds, impassable, or already occupied.
func (g *Grid) Place(occupantID string, c HexCoord) bool {
	cell := g.At(c)
	if cell == nil || !cell.Terrain.Passable() || cell.Occupied() {
		return false
	}
	cell.OccupantID = occupantID
	return true
}

// Vacate clears the occupant of the coordinate.
func (g *Grid) Vacate(c HexCoord) {
	if cell := g.At(c); cell != nil {
		cell.OccupantID = ""
	}
}

// OccupantAt returns the unit ID standing on the coordinate, or "".
func (g *Grid) OccupantAt(c HexCoord) string {
	cell := g.At(c)
	if cell == nil {
		return ""
	}
	return cell.OccupantID
}

// TerrainCounts tallies cells by terrain type.
func (g *Grid) TerrainCounts() map[Terrain]int {
	counts := make(map[Terrain]int)
	for i := range g.Cells {
		counts[g.Cells[i].Terrain]++
	}
	return counts
}
