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

// Package pdfout writes genomes as vector graphics in PDF format.
package pdfout

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/content/builder"
	"seehuhn.de/go/pdf/graphics/extgstate"

	"github.com/PkuCuipy/eartist"
)

// kappa is the control point distance for approximating a quarter circle
// by a cubic Bézier curve.
const kappa = 0.5522847498307936

// WriteGenome writes a single-page PDF file showing the shapes of g over
// its background. One pixel of the canvas corresponds to one PDF point.
// Translucent shapes are painted with a constant fill alpha.
func WriteGenome(path string, g *eartist.Genome) error {
	paper := &pdf.Rectangle{URx: float64(g.Width), URy: float64(g.Height)}

	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}
	if err := drawGenome(page.Builder, g); err != nil {
		return err
	}
	return page.Close()
}

// drawGenome emits the content stream operators for g.
func drawGenome(b *builder.Builder, g *eartist.Genome) error {
	w, h := float64(g.Width), float64(g.Height)

	b.SetFillColor(deviceColor(g.Background))
	b.Rectangle(0, 0, w, h)
	b.Fill()

	// PDF origin is bottom-left; canvas rows count from the top.
	b.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	alpha := &fillAlpha{current: 1, states: map[float64]*extgstate.ExtGState{}}
	for i := range g.Len() {
		s := g.Shape(i)
		if !drawable(s) {
			continue
		}
		alpha.set(b, eartist.ColorOf(s).A)
		b.SetFillColor(deviceColor(eartist.ColorOf(s)))
		switch s := s.(type) {
		case *eartist.Triangle:
			b.MoveTo(s.P1.Y+0.5, s.P1.X+0.5)
			b.LineTo(s.P2.Y+0.5, s.P2.X+0.5)
			b.LineTo(s.P3.Y+0.5, s.P3.X+0.5)
			b.ClosePath()
		case *eartist.Circle:
			addCircle(b, s.Center.Y+0.5, s.Center.X+0.5, s.Radius)
		case *eartist.Rectangle:
			box := s.Bounds()
			b.Rectangle(box.LLy, box.LLx, box.URy-box.LLy+1, box.URx-box.LLx+1)
		default:
			return fmt.Errorf("pdfout: unsupported shape type %T", s)
		}
		b.Fill()
	}
	return b.Err
}

// fillAlpha switches the constant fill alpha, sharing one ExtGState
// resource between all shapes with the same alpha.
type fillAlpha struct {
	current float64
	states  map[float64]*extgstate.ExtGState
}

func (f *fillAlpha) set(b *builder.Builder, a float64) {
	if a == f.current {
		return
	}
	gs, ok := f.states[a]
	if !ok {
		gs = &extgstate.ExtGState{
			Set:       graphics.StateFillAlpha,
			FillAlpha: a,
			SingleUse: true,
		}
		f.states[a] = gs
	}
	b.SetExtGState(gs)
	f.current = a
}

// drawable reports whether s has finite geometry and is not fully
// transparent.
func drawable(s eartist.Shape) bool {
	if eartist.ColorOf(s).A == 0 {
		return false
	}
	b := s.Bounds()
	for _, v := range []float64{b.LLx, b.LLy, b.URx, b.URy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	if c, ok := s.(*eartist.Circle); ok && c.Radius <= 0 {
		return false
	}
	return true
}

// addCircle appends a closed circle path, made from four cubic Bézier
// segments, to the current path.
func addCircle(b *builder.Builder, x, y, r float64) {
	k := kappa * r
	b.MoveTo(x+r, y)
	b.CurveTo(x+r, y+k, x+k, y+r, x, y+r)
	b.CurveTo(x-k, y+r, x-r, y+k, x-r, y)
	b.CurveTo(x-r, y-k, x-k, y-r, x, y-r)
	b.CurveTo(x+k, y-r, x+r, y-k, x+r, y)
	b.ClosePath()
}

func deviceColor(c eartist.Color) color.Color {
	return color.DeviceRGB{c.R / 255, c.G / 255, c.B / 255}
}
