package eartist

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestParseShapeKind(t *testing.T) {
	cases := []struct {
		in   string
		want ShapeKind
		err  error
	}{
		{"triangle", KindTriangle, nil},
		{"Circle", KindCircle, nil},
		{" RECTANGLE ", KindRectangle, nil},
		{"square", "", ErrUnknownShapeKind},
		{"", "", ErrUnknownShapeKind},
	}
	for _, tc := range cases {
		got, err := ParseShapeKind(tc.in)
		if !errors.Is(err, tc.err) {
			t.Errorf("%q: got error %v, want %v", tc.in, err, tc.err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRandomShape(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	const h, w = 30, 50
	for _, kind := range Kinds {
		for range 200 {
			s, err := RandomShape(rng, kind, h, w)
			if err != nil {
				t.Fatal(err)
			}
			if s.Kind() != kind {
				t.Fatalf("got kind %s, want %s", s.Kind(), kind)
			}
			b := s.Bounds()
			if c, ok := s.(*Circle); ok {
				if c.Radius < minRadius || c.Radius > maxRadius*h {
					t.Errorf("radius %g out of range", c.Radius)
				}
				b.LLx, b.URx = c.Center.X, c.Center.X
				b.LLy, b.URy = c.Center.Y, c.Center.Y
			}
			if b.LLx < 0 || b.URx >= h || b.LLy < 0 || b.URy >= w {
				t.Errorf("%s outside the canvas: %v", kind, b)
			}
		}
	}
	if _, err := RandomShape(rng, "ellipse", h, w); !errors.Is(err, ErrUnknownShapeKind) {
		t.Errorf("got error %v, want %v", err, ErrUnknownShapeKind)
	}
}

func TestMutateShapeZeroAmplitude(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))
	for _, kind := range Kinds {
		s, err := RandomShape(rng, kind, 20, 20)
		if err != nil {
			t.Fatal(err)
		}
		orig := CloneShape(s)
		MutateShape(rng, s, 20, 0)
		if s.Bounds() != orig.Bounds() || ColorOf(s) != ColorOf(orig) {
			t.Errorf("%s changed under zero amplitude", kind)
		}
	}
}

func TestCloneShape(t *testing.T) {
	rng := rand.New(rand.NewPCG(15, 16))
	for _, kind := range Kinds {
		s, err := RandomShape(rng, kind, 20, 20)
		if err != nil {
			t.Fatal(err)
		}
		c := CloneShape(s)
		if c == s {
			t.Fatalf("%s: clone is the same pointer", kind)
		}
		before := s.Bounds()
		MutateShape(rng, c, 20, 3)
		if s.Bounds() != before {
			t.Errorf("%s: mutating the clone changed the original", kind)
		}
	}
}
