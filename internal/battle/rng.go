package battle

import "math/rand/v2"

// newRNG builds the battle's seeded random source. A zero seed is bumped
// to one so the stream is always well-defined and reproducible. The PCG
// source is kept so its state can travel with snapshots.
func newRNG(seed int64) (*rand.PCG, *rand.Rand) {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewPCG(uint64(seed), uint64(seed)*0x9E3779B97F4A7C15)
	return src, rand.New(src)
}
