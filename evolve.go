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
	"cmp"
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/sourcegraph/conc/pool"
)

// Evolver runs a (μ+λ)-style evolution of genomes towards a target image.
// Every generation, each member of the population produces mutated
// children, the best members of the previous generation are carried over,
// and the combined pool is truncated to the population size after sorting
// by fitness.
//
// An Evolver is not safe for concurrent use.
type Evolver struct {
	// Population holds the current generation, best genome first.
	Population []*Genome

	// Generation counts the completed calls to Step.
	Generation int

	cfg        Config
	target     *Canvas
	rng        *rand.Rand
	picker     *kindPicker
	canvasSize int
}

// Stats summarises one generation.
type Stats struct {
	Generation int
	Best       float64
	Mean       float64
	Worst      float64
	Evaluated  int // number of genomes rendered in this generation
	Shapes     int // shape count of the best genome
}

// NewEvolver returns an Evolver whose initial population consists of
// cfg.PopulationSize genomes without shapes, drawn over bg.
func NewEvolver(cfg Config, target *Canvas, bg Color, rng *rand.Rand) (*Evolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	picker, err := newKindPicker(cfg.ShapeWeights)
	if err != nil {
		return nil, err
	}
	pop := make([]*Genome, cfg.PopulationSize)
	for i := range pop {
		pop[i] = NewGenome(target.Height, target.Width, bg)
	}
	return &Evolver{
		Population: pop,
		cfg:        cfg,
		target:     target,
		rng:        rng,
		picker:     picker,
		canvasSize: min(target.Height, target.Width),
	}, nil
}

// Seed replaces every member of the population by a copy of g, for
// example to continue from a saved genome. The size of g must match the
// target.
func (e *Evolver) Seed(g *Genome) error {
	if g.Height != e.target.Height || g.Width != e.target.Width {
		return fmt.Errorf("%w: genome is %dx%d, target is %dx%d", ErrDimensionMismatch,
			g.Height, g.Width, e.target.Height, e.target.Width)
	}
	for i := range e.Population {
		e.Population[i] = g.Clone()
	}
	return nil
}

// Best returns the best genome of the current population.
func (e *Evolver) Best() *Genome {
	return e.Population[0]
}

// Step advances the population by one generation.
func (e *Evolver) Step(ctx context.Context) (Stats, error) {
	n := len(e.Population)
	candidates := make([]*Genome, 0, n*e.cfg.OffspringPerParent+e.cfg.EliteCount)
	for _, parent := range e.Population {
		for range e.cfg.OffspringPerParent {
			child, err := e.offspring(parent)
			if err != nil {
				return Stats{}, err
			}
			candidates = append(candidates, child)
		}
	}
	candidates = append(candidates, e.Population[:min(e.cfg.EliteCount, n)]...)

	evaluated, err := e.evaluate(ctx, candidates)
	if err != nil {
		return Stats{}, err
	}

	slices.SortStableFunc(candidates, func(a, b *Genome) int {
		return cmp.Compare(a.fitness, b.fitness)
	})
	clear(candidates[e.cfg.PopulationSize:])
	e.Population = candidates[:e.cfg.PopulationSize]
	e.Generation++

	return e.stats(evaluated), nil
}

// Run calls Step the given number of times, or until ctx is cancelled if
// generations is not positive. After every generation, fn is called with
// the statistics of the new population; an error from fn stops the run.
func (e *Evolver) Run(ctx context.Context, generations int, fn func(Stats) error) error {
	for i := 0; generations <= 0 || i < generations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		st, err := e.Step(ctx)
		if err != nil {
			return err
		}
		if fn != nil {
			if err := fn(st); err != nil {
				return err
			}
		}
	}
	return nil
}

// offspring clones parent, mutates a random number of its shapes and
// possibly adds a new shape.
func (e *Evolver) offspring(parent *Genome) (*Genome, error) {
	child := parent.Clone()
	if k := child.Len(); k > 0 {
		for range e.mutationCount(k) {
			idx := e.rng.IntN(k)
			if err := child.MutateShape(e.rng, idx, e.canvasSize, e.cfg.Amplitude); err != nil {
				return nil, err
			}
		}
	}
	if e.rng.Float64() < e.cfg.AddShapeProbability {
		if err := child.AddShape(e.rng, e.picker.pick(e.rng)); err != nil {
			return nil, err
		}
	}
	return child, nil
}

// mutationCount draws the number of shape mutations for a child with k
// shapes, uniformly from 0 to floor(k·MutateRatio).
func (e *Evolver) mutationCount(k int) int {
	return e.rng.IntN(int(math.Floor(float64(k)*e.cfg.MutateRatio)) + 1)
}

// evaluate computes the fitness of all genomes which do not have one yet
// and returns how many genomes were rendered.
func (e *Evolver) evaluate(ctx context.Context, genomes []*Genome) (int, error) {
	var dirty []*Genome
	for _, g := range genomes {
		if !g.Evaluated() {
			dirty = append(dirty, g)
		}
	}

	if e.cfg.Workers < 2 {
		for _, g := range dirty {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			if err := g.Evaluate(e.target); err != nil {
				return 0, err
			}
		}
		return len(dirty), nil
	}

	p := pool.New().WithContext(ctx).WithCancelOnError().WithMaxGoroutines(e.cfg.Workers)
	for _, g := range dirty {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return g.Evaluate(e.target)
		})
	}
	if err := p.Wait(); err != nil {
		return 0, fmt.Errorf("evaluating generation %d: %w", e.Generation+1, err)
	}
	return len(dirty), nil
}

func (e *Evolver) stats(evaluated int) Stats {
	st := Stats{
		Generation: e.Generation,
		Best:       e.Population[0].fitness,
		Worst:      e.Population[len(e.Population)-1].fitness,
		Evaluated:  evaluated,
		Shapes:     e.Population[0].Len(),
	}
	for _, g := range e.Population {
		st.Mean += g.fitness
	}
	st.Mean /= float64(len(e.Population))
	return st
}

// Checkpoint reports whether the best genome of the given generation
// should be saved. Snapshots become rarer as the run progresses: every
// generation below 10, every 10th generation below 100, every 100th
// below 1000, and so on.
func Checkpoint(gen int) bool {
	if gen < 0 {
		return false
	}
	step := 1
	for step <= math.MaxInt/10 && gen >= 10*step {
		step *= 10
	}
	return gen%step == 0
}
