package game

import (
	"math"
	"math/rand"
)

// uniform draws from [-half, half).
func uniform(rng *rand.Rand, half float64) float64 {
	v := rng.Float64()*(2*half) - half
	if v >= half {
		// rounding can land on the open edge for some widths
		v = math.Nextafter(half, -half)
	}
	return v
}

// spawnRing replaces the current ring with one at a random spot of the field.
// The old ring leaves the scene first, so exactly one ring is ever present.
func (g *Game) spawnRing() {
	if g.ring != nil {
		g.scene.Remove(g.ring)
	}
	x := uniform(g.rng, g.bounds.HalfW)
	y := uniform(g.rng, g.bounds.HalfH)
	g.ring = newRing(g.scene, g.cfg.Ring, x, y)
}
