// Package battlefield provides the hex grid, terrain, and spatial data
// structures for tactical battles. Coordinates use an odd-r offset scheme:
// (x, y) with odd rows shoved east, converted to cube coordinates for
// distance math.
package battlefield

// HexCoord is a position on the battle grid in offset coordinates.
type HexCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Neighbor offsets depend on row parity in an odd-r layout.
var (
	evenRowOffsets = [6]HexCoord{
		{X: -1, Y: -1}, // NW
		{X: 0, Y: -1},  // NE
		{X: 1, Y: 0},   // E
		{X: 0, Y: 1},   // SE
		{X: -1, Y: 1},  // SW
		{X: -1, Y: 0},  // W
	}
	oddRowOffsets = [6]HexCoord{
		{X: 0, Y: -1}, // NW
		{X: 1, Y: -1}, // NE
		{X: 1, Y: 0},  // E
		{X: 1, Y: 1},  // SE
		{X: 0, Y: 1},  // SW
		{X: -1, Y: 0}, // W
	}
)

// Neighbors returns the six adjacent coordinates, unfiltered for bounds.
func (h HexCoord) Neighbors() [6]HexCoord {
	offsets := evenRowOffsets
	if h.Y%2 != 0 {
		offsets = oddRowOffsets
	}
	var result [6]HexCoord
	for i, d := range offsets {
		result[i] = HexCoord{X: h.X + d.X, Y: h.Y + d.Y}
	}
	return result
}

// cube converts the offset coordinate to cube coordinates (q, r, s with
// q+r+s = 0). The third coordinate is implied.
func (h HexCoord) cube() (q, r int) {
	q = h.X - (h.Y-(h.Y&1))/2
	r = h.Y
	return q, r
}

// Distance returns the hex-grid distance between two coordinates: the
// minimum number of adjacent-cell steps. Symmetric, zero on equal
// coordinates, and satisfies the triangle inequality.
func Distance(a, b HexCoord) int {
	aq, ar := a.cube()
	bq, br := b.cube()
	dq := abs(aq - bq)
	dr := abs(ar - br)
	ds := abs((-aq - ar) - (-bq - br))
	// Max of the three absolute differences in cube coordinates.
	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}

// DirectionTo returns the facing index (0-5) from a coordinate toward an
// adjacent one, or -1 if the coordinates are not adjacent.
func (h HexCoord) DirectionTo(to HexCoord) int {
	for i, n := range h.Neighbors() {
		if n == to {
			return i
		}
	}
	return -1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
