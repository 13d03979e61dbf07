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

// Package testcases holds named genomes used to test and inspect the
// rasteriser.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"github.com/PkuCuipy/eartist"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name       string          // lowercase a-z and _ only
	Height     int             // canvas height in pixels
	Width      int             // canvas width in pixels
	Background eartist.Color   // canvas background (alpha ignored)
	Shapes     []eartist.Shape // painted in order
}

// Genome returns a new genome holding copies of the shapes of the test
// case.
func (tc TestCase) Genome() *eartist.Genome {
	g := eartist.NewGenome(tc.Height, tc.Width, tc.Background)
	for _, s := range tc.Shapes {
		g.Append(eartist.CloneShape(s))
	}
	return g
}

// pt is a helper to create a point from row and column coordinates.
func pt(row, col float64) vec.Vec2 {
	return vec.Vec2{X: row, Y: col}
}

var (
	black = eartist.Color{A: 1}
	white = eartist.Color{R: 255, G: 255, B: 255, A: 1}
	red   = eartist.Color{R: 255, A: 1}
	green = eartist.Color{G: 255, A: 1}
	blue  = eartist.Color{B: 255, A: 1}
)

// withAlpha returns c with its alpha channel replaced.
func withAlpha(c eartist.Color, a float64) eartist.Color {
	c.A = a
	return c
}

func triangle(p1, p2, p3 vec.Vec2, c eartist.Color) *eartist.Triangle {
	return &eartist.Triangle{P1: p1, P2: p2, P3: p3, Color: c}
}

func circle(center vec.Vec2, r float64, c eartist.Color) *eartist.Circle {
	return &eartist.Circle{Center: center, Radius: r, Color: c}
}

func rectangle(p1, p2 vec.Vec2, c eartist.Color) *eartist.Rectangle {
	return &eartist.Rectangle{P1: p1, P2: p2, Color: c}
}
