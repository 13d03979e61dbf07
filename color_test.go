package eartist

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestColorMutateClamps(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	amps := []float64{0, 1, -1, 10, -50, 1e6, -1e300, math.Inf(1), math.Inf(-1), math.NaN()}
	for _, amp := range amps {
		for range 200 {
			c := RandomColor(rng)
			c.Mutate(rng, amp)
			if !inRange(c.R, 0, 255) || !inRange(c.G, 0, 255) ||
				!inRange(c.B, 0, 255) || !inRange(c.A, 0, 1) {
				t.Fatalf("amp %g: color %v out of range", amp, c)
			}
		}
	}
}

func TestColorMutateZeroAmplitude(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	c := Color{R: 12, G: 34, B: 56, A: 0.5}
	d := c
	d.Mutate(rng, 0)
	if c != d {
		t.Errorf("mutation with amplitude 0 changed %v to %v", c, d)
	}
}

func TestRandomColor(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 1000 {
		c := RandomColor(rng)
		if !inRange(c.R, 0, 255) || !inRange(c.G, 0, 255) ||
			!inRange(c.B, 0, 255) || !inRange(c.A, 0, 1) {
			t.Fatalf("color %v out of range", c)
		}
	}
}

func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
