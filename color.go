package eartist

import (
	"math"
	"math/rand/v2"
)

// Color is a translucent RGB color. The R, G and B channels range over
// [0, 255] and A over [0, 1].
type Color struct {
	R, G, B float64
	A       float64
}

// Standard deviations used by [Color.Mutate] at amplitude 1.
const (
	colorSigma = 20.0
	alphaSigma = 0.03
)

// RandomColor returns a color with all channels drawn uniformly from their
// valid ranges.
func RandomColor(rng *rand.Rand) Color {
	return Color{
		R: 255 * rng.Float64(),
		G: 255 * rng.Float64(),
		B: 255 * rng.Float64(),
		A: rng.Float64(),
	}
}

// Mutate perturbs every channel with Gaussian noise scaled by amp.
// The result is clamped to the valid channel ranges.
func (c *Color) Mutate(rng *rand.Rand, amp float64) {
	c.R = mutateClamped(rng, c.R, colorSigma*amp, 0, 255)
	c.G = mutateClamped(rng, c.G, colorSigma*amp, 0, 255)
	c.B = mutateClamped(rng, c.B, colorSigma*amp, 0, 255)
	c.A = mutateClamped(rng, c.A, alphaSigma*amp, 0, 1)
}

// mutateClamped adds N(0, sigma) noise to v and clamps the result to
// [lo, hi]. If the noise is not a number (e.g. for an infinite sigma),
// v is returned unchanged, clamped.
func mutateClamped(rng *rand.Rand, v, sigma, lo, hi float64) float64 {
	w := v + rng.NormFloat64()*sigma
	if math.IsNaN(w) {
		w = v
	}
	if math.IsNaN(w) {
		return lo
	}
	return min(max(w, lo), hi)
}

// mutateFree adds N(0, sigma) noise to v without clamping.
func mutateFree(rng *rand.Rand, v, sigma float64) float64 {
	return v + rng.NormFloat64()*sigma
}
