package eartist

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func testGenome(rng *rand.Rand, n int) *Genome {
	g := NewGenome(16, 24, Color{R: 10, G: 20, B: 30, A: 1})
	for i := range n {
		if err := g.AddShape(rng, Kinds[i%len(Kinds)]); err != nil {
			panic(err)
		}
	}
	return g
}

func TestEvaluateIsMemoized(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	g := testGenome(rng, 6)
	target := NewCanvas(16, 24, Color{R: 128, G: 128, B: 128, A: 1})

	if err := g.Evaluate(target); err != nil {
		t.Fatal(err)
	}
	first, err := g.Fitness()
	if err != nil {
		t.Fatal(err)
	}

	// A second call must not look at the target again.
	for i := range target.Pix {
		target.Pix[i] = Pixel{R: 255}
	}
	if err := g.Evaluate(target); err != nil {
		t.Fatal(err)
	}
	second, _ := g.Fitness()
	if first != second {
		t.Errorf("fitness changed from %g to %g", first, second)
	}
}

func TestFitnessMatchesDistance(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 2))
	g := testGenome(rng, 10)
	target := NewCanvas(16, 24, Color{R: 200, G: 50, B: 90, A: 1})
	if err := g.Evaluate(target); err != nil {
		t.Fatal(err)
	}
	want, err := Distance(g.Render(), target)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := g.Fitness()
	if got != want {
		t.Errorf("fitness = %g, want %g", got, want)
	}
}

func TestFitnessNotComputed(t *testing.T) {
	g := NewGenome(4, 4, Color{A: 1})
	if _, err := g.Fitness(); !errors.Is(err, ErrFitnessNotComputed) {
		t.Errorf("got error %v, want %v", err, ErrFitnessNotComputed)
	}
}

func TestChangesInvalidateFitness(t *testing.T) {
	target := NewCanvas(16, 24, Color{A: 1})
	changes := map[string]func(rng *rand.Rand, g *Genome) error{
		"mutate": func(rng *rand.Rand, g *Genome) error {
			return g.MutateShape(rng, 1, 16, 1)
		},
		"add": func(rng *rand.Rand, g *Genome) error {
			return g.AddShape(rng, KindCircle)
		},
		"append": func(rng *rand.Rand, g *Genome) error {
			g.Append(&Rectangle{P2: vec.Vec2{X: 3, Y: 3}, Color: Color{R: 255, A: 1}})
			return nil
		},
	}
	for name, change := range changes {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(3, 3))
			g := testGenome(rng, 3)
			if err := g.Evaluate(target); err != nil {
				t.Fatal(err)
			}
			if err := change(rng, g); err != nil {
				t.Fatal(err)
			}
			if g.Evaluated() {
				t.Fatal("fitness still valid after change")
			}
			if _, err := g.Fitness(); !errors.Is(err, ErrFitnessNotComputed) {
				t.Errorf("got error %v, want %v", err, ErrFitnessNotComputed)
			}
		})
	}
}

func TestMutateShapeIndex(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 4))
	g := testGenome(rng, 2)
	for _, idx := range []int{-1, 2, 100} {
		if err := g.MutateShape(rng, idx, 16, 1); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("index %d: got error %v, want %v", idx, err, ErrIndexOutOfRange)
		}
	}
	empty := NewGenome(4, 4, Color{})
	if err := empty.MutateShape(rng, 0, 4, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("empty genome: got error %v, want %v", err, ErrIndexOutOfRange)
	}
}

func TestAddShapeUnknownKind(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	g := NewGenome(4, 4, Color{})
	if err := g.AddShape(rng, "hexagon"); !errors.Is(err, ErrUnknownShapeKind) {
		t.Errorf("got error %v, want %v", err, ErrUnknownShapeKind)
	}
	if g.Len() != 0 {
		t.Errorf("genome has %d shapes after failed add", g.Len())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	rng := rand.New(rand.NewPCG(6, 6))
	g := testGenome(rng, 6)
	target := NewCanvas(16, 24, Color{A: 1})
	if err := g.Evaluate(target); err != nil {
		t.Fatal(err)
	}
	before := g.Render()

	c := g.Clone()
	if !c.Evaluated() {
		t.Error("clone lost the cached fitness")
	}
	for i := range c.Len() {
		if err := c.MutateShape(rng, i, 16, 5); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.AddShape(rng, KindTriangle); err != nil {
		t.Fatal(err)
	}

	if g.Len() != 6 {
		t.Errorf("original has %d shapes, want 6", g.Len())
	}
	if !g.Evaluated() {
		t.Error("original fitness was invalidated")
	}
	if !slices.Equal(before.Pix, g.Render().Pix) {
		t.Error("mutating the clone changed the original")
	}
}

func TestRenderOrder(t *testing.T) {
	g := NewGenome(4, 4, Color{A: 1})
	g.Append(&Rectangle{P2: vec.Vec2{X: 3, Y: 3}, Color: Color{R: 255, A: 1}})
	g.Append(&Rectangle{P2: vec.Vec2{X: 1, Y: 1}, Color: Color{B: 255, A: 1}})
	c := g.Render()
	if got := c.At(0, 0); got != (Pixel{B: 255}) {
		t.Errorf("top left = %v, want blue", got)
	}
	if got := c.At(3, 3); got != (Pixel{R: 255}) {
		t.Errorf("bottom right = %v, want red", got)
	}
}

func TestGenomeJSON(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	g := testGenome(rng, 9)
	if err := g.Evaluate(NewCanvas(16, 24, Color{A: 1})); err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatal(err)
	}
	for _, tag := range []string{`"type":"Triangle"`, `"type":"Circle"`, `"type":"Rectangle"`, `"fitness":`} {
		if !strings.Contains(string(data), tag) {
			t.Errorf("encoding lacks %s", tag)
		}
	}

	h := &Genome{}
	if err := json.Unmarshal(data, h); err != nil {
		t.Fatal(err)
	}
	if h.Evaluated() {
		t.Error("decoded genome has a fitness")
	}
	if h.Len() != g.Len() || h.Height != g.Height || h.Width != g.Width || h.Background != g.Background {
		t.Fatalf("decoded genome differs: %d shapes, %dx%d", h.Len(), h.Height, h.Width)
	}
	for i := range g.Len() {
		if h.Shape(i).Kind() != g.Shape(i).Kind() {
			t.Errorf("shape %d: kind %s, want %s", i, h.Shape(i).Kind(), g.Shape(i).Kind())
		}
	}
	if !slices.Equal(g.Render().Pix, h.Render().Pix) {
		t.Error("decoded genome renders differently")
	}
}

func TestGenomeJSONWithoutFitness(t *testing.T) {
	const data = `{
		"height": 3, "width": 2,
		"background": {"r": 1, "g": 2, "b": 3, "a": 1},
		"shapes": [
			{"type": "Circle", "data": {"center": {"x": 1, "y": 1}, "radius": 2,
				"color": {"r": 255, "g": 0, "b": 0, "a": 0.5}}}
		]
	}`
	g := &Genome{}
	if err := json.Unmarshal([]byte(data), g); err != nil {
		t.Fatal(err)
	}
	if g.Len() != 1 || g.Height != 3 || g.Width != 2 {
		t.Fatalf("got %d shapes on %dx%d", g.Len(), g.Height, g.Width)
	}
	c, ok := g.Shape(0).(*Circle)
	if !ok {
		t.Fatalf("shape is %T, want *Circle", g.Shape(0))
	}
	if c.Radius != 2 || c.Color.A != 0.5 {
		t.Errorf("decoded circle %+v", c)
	}
}

func TestGenomeJSONUnknownShape(t *testing.T) {
	const data = `{"height": 1, "width": 1, "background": {}, "shapes": [{"type": "Hexagon", "data": {}}]}`
	g := &Genome{}
	if err := json.Unmarshal([]byte(data), g); !errors.Is(err, ErrUnknownShapeKind) {
		t.Errorf("got error %v, want %v", err, ErrUnknownShapeKind)
	}
}
