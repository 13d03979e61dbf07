// eartist - approximating images with evolved vector shapes
// Copyright (C) 2026  The eartist authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package eartist

import (
	"fmt"
	"math/rand/v2"
)

// Genome is an ordered list of shapes which, painted in order over a
// background, approximate a target image. Later shapes are drawn on top
// of earlier ones.
//
// The fitness of a genome is cached. Every change to the shape list
// clears the cache, and [Genome.Evaluate] must be called before the
// fitness can be read again.
type Genome struct {
	Height, Width int
	Background    Color

	shapes  []Shape
	fitness float64
	valid   bool
}

// NewGenome returns a genome without shapes which renders to a canvas of
// the given size.
func NewGenome(height, width int, bg Color) *Genome {
	return &Genome{Height: height, Width: width, Background: bg}
}

// Len returns the number of shapes.
func (g *Genome) Len() int {
	return len(g.shapes)
}

// Shape returns the i-th shape. The returned shape must not be modified.
func (g *Genome) Shape(i int) Shape {
	return g.shapes[i]
}

// Append adds s on top of all existing shapes. The genome takes
// ownership of s.
func (g *Genome) Append(s Shape) {
	g.shapes = append(g.shapes, s)
	g.Invalidate()
}

// AddShape appends a random shape of the given kind.
func (g *Genome) AddShape(rng *rand.Rand, kind ShapeKind) error {
	s, err := RandomShape(rng, kind, g.Height, g.Width)
	if err != nil {
		return err
	}
	g.Append(s)
	return nil
}

// MutateShape mutates the shape at the given index in place.
func (g *Genome) MutateShape(rng *rand.Rand, index, canvasSize int, amp float64) error {
	if index < 0 || index >= len(g.shapes) {
		return fmt.Errorf("%w: index %d, %d shapes",
			ErrIndexOutOfRange, index, len(g.shapes))
	}
	MutateShape(rng, g.shapes[index], canvasSize, amp)
	g.Invalidate()
	return nil
}

// Invalidate clears the cached fitness.
func (g *Genome) Invalidate() {
	g.valid = false
	g.fitness = 0
}

// Clone returns a deep copy of g, including the cached fitness.
func (g *Genome) Clone() *Genome {
	c := *g
	c.shapes = make([]Shape, len(g.shapes))
	for i, s := range g.shapes {
		c.shapes[i] = CloneShape(s)
	}
	return &c
}

// Render paints all shapes in order onto a fresh canvas filled with the
// background color.
func (g *Genome) Render() *Canvas {
	c := NewCanvas(g.Height, g.Width, g.Background)
	RenderTo(g, c)
	return c
}

// Evaluate computes the distance between the rendered genome and target
// and stores it as the fitness. If the fitness is already known, Evaluate
// does nothing.
func (g *Genome) Evaluate(target *Canvas) error {
	if g.valid {
		return nil
	}
	d, err := Distance(g.Render(), target)
	if err != nil {
		return err
	}
	g.fitness = d
	g.valid = true
	return nil
}

// Evaluated reports whether the fitness is available.
func (g *Genome) Evaluated() bool {
	return g.valid
}

// Fitness returns the cached fitness. Lower values are better.
func (g *Genome) Fitness() (float64, error) {
	if !g.valid {
		return 0, ErrFitnessNotComputed
	}
	return g.fitness, nil
}
