// Battlefield generation using layered simplex noise.
// An elevation layer places hills, a moisture layer places forest and water,
// and a sparse feature layer drops obstacles.
package battlefield

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds battlefield generation parameters.
type GenConfig struct {
	Width   int   // Grid width (default 12)
	Height  int   // Grid height (default 18)
	Seed    int64 // Noise seed; the same seed always yields the same field
	Variety bool  // false = all-plains field

	ForestLvl   float64 // Moisture threshold for forest
	WaterLvl    float64 // Moisture threshold for water pools
	HillLvl     float64 // Elevation threshold for hills
	ObstacleLvl float64 // Feature threshold for obstacles
}

// DefaultGenConfig returns the standard 12×18 battlefield configuration.
func DefaultGenConfig(seed int64) GenConfig {
	return GenConfig{
		Width:       GridWidth,
		Height:      GridHeight,
		Seed:        seed,
		Variety:     true,
		ForestLvl:   0.62,
		WaterLvl:    0.18,
		HillLvl:     0.70,
		ObstacleLvl: 0.88,
	}
}

// deployMargin is the width of the west/east deployment bands kept clear of
// blocking terrain so both sides always have legal starting cells.
const deployMargin = 3

// Generate creates a battlefield from the configuration.
func Generate(cfg GenConfig) *Grid {
	if cfg.Width <= 0 {
		cfg.Width = GridWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = GridHeight
	}

	g := NewGrid(cfg.Width, cfg.Height)
	if !cfg.Variety {
		return g
	}

	// Independent noise layers, offset seeds as in layered map generation.
	elevNoise := opensimplex.NewNormalized(cfg.Seed)
	moistNoise := opensimplex.NewNormalized(cfg.Seed + 1)
	featNoise := opensimplex.NewNormalized(cfg.Seed + 2)

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			// Offset hex → cartesian so odd rows sample between their
			// neighbors instead of on the same column.
			fx := float64(x)
			if y%2 != 0 {
				fx += 0.5
			}
			fy := float64(y) * math.Sqrt(3.0) / 2.0

			elev := octaveNoise(elevNoise, fx, fy, 3, 0.35, 0.5)
			moist := octaveNoise(moistNoise, fx, fy, 3, 0.30, 0.5)
			feat := featNoise.Eval2(fx*0.9, fy*0.9)

			cell := g.At(HexCoord{X: x, Y: y})
			inDeployBand := x < deployMargin || x >= cfg.Width-deployMargin

			switch {
			case !inDeployBand && feat > cfg.ObstacleLvl:
				cell.Terrain = TerrainObstacle
			case !inDeployBand && moist < cfg.WaterLvl:
				cell.Terrain = TerrainWater
			case elev > cfg.HillLvl:
				cell.Terrain = TerrainHill
				cell.Elevation = 1
				if elev > cfg.HillLvl+0.12 {
					cell.Elevation = 2
				}
			case moist > cfg.ForestLvl:
				cell.Terrain = TerrainForest
			}
		}
	}

	return g
}

// octaveNoise samples multiple noise octaves for a less uniform field.
func octaveNoise(n opensimplex.Noise, x, y float64, octaves int, freq, persistence float64) float64 {
	var total, amplitude, maxValue float64
	amplitude = 1.0
	for i := 0; i < octaves; i++ {
		total += n.Eval2(x*freq, y*freq) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		freq *= 2
	}
	return total / maxValue
}
