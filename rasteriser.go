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
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// line is the interpolant y = k·x + b through two points, used to find
// the column of a triangle edge at a given row. For a vertical edge
// (both points in the same row) k is infinite or NaN and the line
// evaluates to NaN, which the span logic treats as an empty span.
type line struct {
	k, b float64
}

func lineThrough(p, q vec.Vec2) line {
	k := (q.Y - p.Y) / (q.X - p.X)
	return line{k: k, b: p.Y - k*p.X}
}

func (l line) at(x float64) float64 {
	return l.k*x + l.b
}

// Rasteriser converts shapes into horizontal pixel spans. It does not
// anti-alias: every pixel is either inside or outside the shape.
//
// Shapes are clipped to Clip. Rows are found by rounding the shape's row
// coordinates and intersecting with the clip rows; for every row the
// covered columns are rounded and clamped to the clip columns. Spans that
// lie entirely outside the clip rectangle are not emitted.
type Rasteriser struct {
	// Clip bounds output to this rectangle. LLx and URx bound the rows,
	// LLy and URy the columns; the upper bounds are exclusive.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	pts [3]vec.Vec2 // sorted triangle vertices
}

// NewRasteriser returns a Rasteriser which clips to a canvas of the given
// size.
func NewRasteriser(height, width int) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(height, width)
	return r
}

// Reset changes the clip rectangle to a canvas of the given size.
func (r *Rasteriser) Reset(height, width int) {
	r.Clip = rect.Rect{URx: float64(height), URy: float64(width)}
}

// Fill calls emit once for every row covered by s, with the inclusive
// range of covered columns in that row. Rows are emitted in increasing
// order. Unknown shape types cause a panic.
func (r *Rasteriser) Fill(s Shape, emit func(row, left, right int)) {
	switch s := s.(type) {
	case *Triangle:
		r.fillTriangle(s, emit)
	case *Circle:
		r.fillCircle(s, emit)
	case *Rectangle:
		r.fillRectangle(s, emit)
	default:
		panic(fmt.Sprintf("eartist: cannot rasterise shape of type %T", s))
	}
}

// fillTriangle uses a two-part scanline fill. With the vertices sorted
// by row as A, B, C, the rows from A up to (but excluding) B lie between
// the edges AB and AC, and the rows from B to C between BC and AC.
//
//	     A              A
//	    / \            / \
//	   /   \          /   \
//	  B-_   \   or   /   _-B
//	     `-_ \      / _-`
//	         C     C
func (r *Rasteriser) fillTriangle(t *Triangle, emit func(row, left, right int)) {
	r.pts = [3]vec.Vec2{t.P1, t.P2, t.P3}
	for _, p := range r.pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return
		}
	}
	slices.SortFunc(r.pts[:], func(p, q vec.Vec2) int {
		return cmp.Compare(p.X, q.X)
	})
	a, b, c := r.pts[0], r.pts[1], r.pts[2]

	ab := lineThrough(a, b)
	ac := lineThrough(a, c)
	bc := lineThrough(b, c)

	iA, iB, iC := math.Round(a.X), math.Round(b.X), math.Round(c.X)

	first, last, ok := r.rows(iA, iB-1)
	if ok {
		for i := first; i <= last; i++ {
			x := float64(i)
			r.span(i, ab.at(x), ac.at(x), emit)
		}
	}
	first, last, ok = r.rows(iB, iC)
	if ok {
		for i := first; i <= last; i++ {
			x := float64(i)
			r.span(i, bc.at(x), ac.at(x), emit)
		}
	}
}

// fillCircle only visits rows within the radius, so that the argument of
// the square root is never negative.
func (r *Rasteriser) fillCircle(c *Circle, emit func(row, left, right int)) {
	cx, cy, rad := c.Center.X, c.Center.Y, c.Radius
	first, last, ok := r.rows(math.Ceil(cx-rad), math.Floor(cx+rad))
	if !ok {
		return
	}
	r2 := rad * rad
	for i := first; i <= last; i++ {
		dx := float64(i) - cx
		h2 := r2 - dx*dx
		if h2 < 0 {
			continue
		}
		h := math.Sqrt(h2)
		r.span(i, cy-h, cy+h, emit)
	}
}

func (r *Rasteriser) fillRectangle(rr *Rectangle, emit func(row, left, right int)) {
	box := rr.Bounds()
	first, last, ok := r.rows(math.Round(box.LLx), math.Round(box.URx))
	if !ok {
		return
	}
	for i := first; i <= last; i++ {
		r.span(i, box.LLy, box.URy, emit)
	}
}

// rows intersects the inclusive row range [lo, hi] with the clip rows.
// The bounds must already be integral (or infinite).
func (r *Rasteriser) rows(lo, hi float64) (first, last int, ok bool) {
	rowMin, rowMax := r.Clip.LLx, r.Clip.URx-1
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return 0, 0, false
	}
	lo = max(lo, rowMin)
	hi = min(hi, rowMax)
	if lo > hi {
		return 0, 0, false
	}
	return int(lo), int(hi), true
}

// span emits the columns between the column coordinates a and b of the
// given row. Non-finite bounds from degenerate edges, and spans entirely
// outside the clip columns, are skipped.
func (r *Rasteriser) span(row int, a, b float64, emit func(row, left, right int)) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return
	}
	lo, hi := math.Round(min(a, b)), math.Round(max(a, b))
	colMin, colMax := r.Clip.LLy, r.Clip.URy-1
	if hi < colMin || lo > colMax {
		return
	}
	emit(row, int(max(lo, colMin)), int(min(hi, colMax)))
}

// Rasterize composites s onto c.
func Rasterize(s Shape, c *Canvas) {
	NewRasteriser(c.Height, c.Width).Draw(s, c)
}

// Draw composites s onto c using the clip rectangle of r, which must not
// exceed the size of c.
func (r *Rasteriser) Draw(s Shape, c *Canvas) {
	col := ColorOf(s)
	r.Fill(s, func(row, left, right int) {
		c.DrawSpan(row, left, right, col)
	})
}

// ColorOf returns the fill color of s.
func ColorOf(s Shape) Color {
	switch s := s.(type) {
	case *Triangle:
		return s.Color
	case *Circle:
		return s.Color
	case *Rectangle:
		return s.Color
	default:
		panic(fmt.Sprintf("eartist: unknown shape type %T", s))
	}
}
