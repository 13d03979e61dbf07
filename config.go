package eartist

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"math/rand/v2"
	"os"
	"slices"
)

// Config holds the parameters of an evolutionary run.
type Config struct {
	// PopulationSize is the number of genomes kept after every generation.
	PopulationSize int `json:"population_size"`

	// OffspringPerParent is the number of mutated children produced by
	// every member of the population.
	OffspringPerParent int `json:"offspring_per_parent"`

	// EliteCount is the number of best genomes carried over unchanged.
	EliteCount int `json:"elite_count"`

	// MutateRatio bounds the number of shapes mutated in a child, as a
	// fraction of its shape count. It must lie in [0, 1].
	MutateRatio float64 `json:"mutate_ratio"`

	// AddShapeProbability is the chance that a child gains a new shape.
	AddShapeProbability float64 `json:"add_shape_probability"`

	// Amplitude scales all mutation step sizes.
	Amplitude float64 `json:"amplitude"`

	// ShapeWeights gives the relative frequency of each kind of new shape.
	ShapeWeights map[ShapeKind]float64 `json:"shape_weights"`

	// Workers is the number of goroutines used for fitness evaluation.
	// Values below 2 evaluate on the calling goroutine.
	Workers int `json:"workers"`
}

// DefaultConfig returns the default evolution parameters.
func DefaultConfig() Config {
	return Config{
		PopulationSize:      20,
		OffspringPerParent:  5,
		EliteCount:          2,
		MutateRatio:         0.1,
		AddShapeProbability: 0.3,
		Amplitude:           1.0,
		ShapeWeights: map[ShapeKind]float64{
			KindTriangle:  1,
			KindCircle:    1,
			KindRectangle: 1,
		},
		Workers: 1,
	}
}

// LoadConfig reads a JSON configuration file. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration can be used for a run.
func (c Config) Validate() error {
	switch {
	case c.PopulationSize < 1:
		return fmt.Errorf("%w: population size %d", ErrInvalidConfig, c.PopulationSize)
	case c.OffspringPerParent < 0:
		return fmt.Errorf("%w: offspring per parent %d", ErrInvalidConfig, c.OffspringPerParent)
	case c.EliteCount < 0 || c.EliteCount > c.PopulationSize:
		return fmt.Errorf("%w: elite count %d", ErrInvalidConfig, c.EliteCount)
	case c.PopulationSize*c.OffspringPerParent+c.EliteCount < c.PopulationSize:
		return fmt.Errorf("%w: %d offspring and %d elites cannot refill a population of %d",
			ErrInvalidConfig, c.PopulationSize*c.OffspringPerParent, c.EliteCount, c.PopulationSize)
	case !(c.MutateRatio >= 0 && c.MutateRatio <= 1):
		return fmt.Errorf("%w: mutate ratio %g", ErrInvalidConfig, c.MutateRatio)
	case math.IsNaN(c.Amplitude) || math.IsInf(c.Amplitude, 0):
		return fmt.Errorf("%w: amplitude %g", ErrInvalidConfig, c.Amplitude)
	case !(c.AddShapeProbability >= 0 && c.AddShapeProbability <= 1):
		return fmt.Errorf("%w: add shape probability %g", ErrInvalidConfig, c.AddShapeProbability)
	}
	_, err := newKindPicker(c.ShapeWeights)
	return err
}

// kindPicker draws shape kinds with probabilities proportional to their
// weights.
type kindPicker struct {
	kinds      []ShapeKind
	cumulative []float64
}

func newKindPicker(weights map[ShapeKind]float64) (*kindPicker, error) {
	p := &kindPicker{}
	var total float64
	for _, kind := range slices.Sorted(maps.Keys(weights)) {
		w := weights[kind]
		parsed, err := ParseShapeKind(string(kind))
		if err != nil {
			return nil, err
		}
		if !(w >= 0) || math.IsInf(w, 1) {
			return nil, fmt.Errorf("%w: %s has weight %g", ErrInvalidWeights, kind, w)
		}
		if w == 0 {
			continue
		}
		total += w
		p.kinds = append(p.kinds, parsed)
		p.cumulative = append(p.cumulative, total)
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: all weights are zero", ErrInvalidWeights)
	}
	return p, nil
}

func (p *kindPicker) pick(rng *rand.Rand) ShapeKind {
	total := p.cumulative[len(p.cumulative)-1]
	x := rng.Float64() * total
	for i, c := range p.cumulative {
		if x < c {
			return p.kinds[i]
		}
	}
	return p.kinds[len(p.kinds)-1]
}
