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
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Points use X for the row (ranging over the canvas height) and Y for the
// column (ranging over the canvas width). All rasterisers follow this
// convention. Points are never clamped; shapes may extend beyond the
// canvas and are clipped when drawn.

// ShapeKind names one of the primitive shape types.
type ShapeKind string

// The supported shape kinds.
const (
	KindTriangle  ShapeKind = "triangle"
	KindCircle    ShapeKind = "circle"
	KindRectangle ShapeKind = "rectangle"
)

// Kinds lists all shape kinds.
var Kinds = []ShapeKind{KindTriangle, KindCircle, KindRectangle}

// ParseShapeKind converts a case-insensitive shape name into a ShapeKind.
func ParseShapeKind(name string) (ShapeKind, error) {
	kind := ShapeKind(strings.ToLower(strings.TrimSpace(name)))
	switch kind {
	case KindTriangle, KindCircle, KindRectangle:
		return kind, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownShapeKind, name)
}

// Shape is one of *Triangle, *Circle or *Rectangle.
type Shape interface {
	Kind() ShapeKind
	Bounds() rect.Rect
	isShape()
}

// Triangle is a filled triangle.
type Triangle struct {
	P1, P2, P3 vec.Vec2
	Color      Color
}

// Circle is a filled disc.
type Circle struct {
	Center vec.Vec2
	Radius float64
	Color  Color
}

// Rectangle is a filled axis-aligned rectangle with opposite corners P1
// and P2.
type Rectangle struct {
	P1, P2 vec.Vec2
	Color  Color
}

func (*Triangle) isShape()  {}
func (*Circle) isShape()    {}
func (*Rectangle) isShape() {}

func (*Triangle) Kind() ShapeKind  { return KindTriangle }
func (*Circle) Kind() ShapeKind    { return KindCircle }
func (*Rectangle) Kind() ShapeKind { return KindRectangle }

// Bounds returns the bounding box of the triangle. LLx and URx bound the
// rows, LLy and URy the columns.
func (t *Triangle) Bounds() rect.Rect {
	return rect.Rect{
		LLx: min(t.P1.X, t.P2.X, t.P3.X),
		LLy: min(t.P1.Y, t.P2.Y, t.P3.Y),
		URx: max(t.P1.X, t.P2.X, t.P3.X),
		URy: max(t.P1.Y, t.P2.Y, t.P3.Y),
	}
}

// Bounds returns the bounding box of the circle.
func (c *Circle) Bounds() rect.Rect {
	return rect.Rect{
		LLx: c.Center.X - c.Radius,
		LLy: c.Center.Y - c.Radius,
		URx: c.Center.X + c.Radius,
		URy: c.Center.Y + c.Radius,
	}
}

// Bounds returns the rectangle itself, with corners ordered.
func (r *Rectangle) Bounds() rect.Rect {
	return rect.Rect{
		LLx: min(r.P1.X, r.P2.X),
		LLy: min(r.P1.Y, r.P2.Y),
		URx: max(r.P1.X, r.P2.X),
		URy: max(r.P1.Y, r.P2.Y),
	}
}

const (
	// positionSigma is the standard deviation of position changes, as a
	// fraction of the shorter canvas side.
	positionSigma = 0.03

	// maxRadius is the largest radius of a random circle, as a fraction
	// of the shorter canvas side.
	maxRadius = 0.1

	minRadius = 1.0
)

// RandomShape returns a shape of the given kind with random geometry in
// [0, height) × [0, width) and a random color.
func RandomShape(rng *rand.Rand, kind ShapeKind, height, width int) (Shape, error) {
	switch kind {
	case KindTriangle:
		return &Triangle{
			P1:    randomPoint(rng, height, width),
			P2:    randomPoint(rng, height, width),
			P3:    randomPoint(rng, height, width),
			Color: RandomColor(rng),
		}, nil
	case KindCircle:
		r := maxRadius * float64(min(height, width)) * rng.Float64()
		return &Circle{
			Center: randomPoint(rng, height, width),
			Radius: max(r, minRadius),
			Color:  RandomColor(rng),
		}, nil
	case KindRectangle:
		return &Rectangle{
			P1:    randomPoint(rng, height, width),
			P2:    randomPoint(rng, height, width),
			Color: RandomColor(rng),
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShapeKind, kind)
}

// MutateShape perturbs all fields of s in place. Geometry moves by
// Gaussian noise with standard deviation canvasSize·0.03·amp and is not
// clamped. The color is mutated as described for [Color.Mutate].
func MutateShape(rng *rand.Rand, s Shape, canvasSize int, amp float64) {
	sigma := float64(canvasSize) * positionSigma * amp
	switch s := s.(type) {
	case *Triangle:
		s.P1 = mutatePoint(rng, s.P1, sigma)
		s.P2 = mutatePoint(rng, s.P2, sigma)
		s.P3 = mutatePoint(rng, s.P3, sigma)
		s.Color.Mutate(rng, amp)
	case *Circle:
		s.Center = mutatePoint(rng, s.Center, sigma)
		s.Radius = mutateFree(rng, s.Radius, sigma)
		s.Color.Mutate(rng, amp)
	case *Rectangle:
		s.P1 = mutatePoint(rng, s.P1, sigma)
		s.P2 = mutatePoint(rng, s.P2, sigma)
		s.Color.Mutate(rng, amp)
	default:
		panic(fmt.Sprintf("eartist: cannot mutate shape of type %T", s))
	}
}

// CloneShape returns an independent copy of s.
func CloneShape(s Shape) Shape {
	switch s := s.(type) {
	case *Triangle:
		c := *s
		return &c
	case *Circle:
		c := *s
		return &c
	case *Rectangle:
		c := *s
		return &c
	default:
		panic(fmt.Sprintf("eartist: cannot clone shape of type %T", s))
	}
}

func randomPoint(rng *rand.Rand, height, width int) vec.Vec2 {
	return vec.Vec2{
		X: float64(height) * rng.Float64(),
		Y: float64(width) * rng.Float64(),
	}
}

func mutatePoint(rng *rand.Rand, p vec.Vec2, sigma float64) vec.Vec2 {
	d := vec.Vec2{X: rng.NormFloat64(), Y: rng.NormFloat64()}
	return p.Add(d.Mul(sigma))
}
