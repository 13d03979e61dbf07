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

package testcases

import "github.com/PkuCuipy/eartist"

// degenerateCases contain shapes with zero area or with edges which
// cannot be written as col = k·row + b. None of them may crash the
// rasteriser.
var degenerateCases = []TestCase{
	// vertical edges: two vertices in the same row
	{
		Name:       "vertical_edge_top",
		Height:     32,
		Width:      32,
		Background: black,
		Shapes:     []eartist.Shape{triangle(pt(4, 4), pt(4, 28), pt(28, 16), white)},
	},
	{
		Name:       "vertical_edge_bottom",
		Height:     32,
		Width:      32,
		Background: black,
		Shapes:     []eartist.Shape{triangle(pt(4, 16), pt(28, 4), pt(28, 28), white)},
	},
	{
		Name:       "vertical_edge_at_row_zero",
		Height:     32,
		Width:      32,
		Background: black,
		Shapes:     []eartist.Shape{triangle(pt(0, 3), pt(0, 20), pt(15, 9), white)},
	},

	// zero-area shapes
	{
		Name:       "collinear",
		Height:     32,
		Width:      32,
		Background: black,
		Shapes:     []eartist.Shape{triangle(pt(2, 2), pt(16, 16), pt(30, 30), white)},
	},
	{
		Name:       "collinear_horizontal",
		Height:     32,
		Width:      32,
		Background: black,
		Shapes:     []eartist.Shape{triangle(pt(10, 2), pt(10, 16), pt(10, 30), white)},
	},
	{
		Name:       "coincident",
		Height:     32,
		Width:      32,
		Background: black,
		Shapes:     []eartist.Shape{triangle(pt(7, 7), pt(7, 7), pt(7, 7), white)},
	},
	{
		Name:       "near_degenerate",
		Height:     32,
		Width:      32,
		Background: black,
		Shapes:     []eartist.Shape{triangle(pt(3, 1), pt(3.0000001, 30), pt(29, 15), white)},
	},
	{
		Name:       "zero_radius",
		Height:     32,
		Width:      32,
		Background: black,
		Shapes:     []eartist.Shape{circle(pt(16, 16), 0, white)},
	},
	{
		Name:       "negative_radius",
		Height:     32,
		Width:      32,
		Background: black,
		Shapes:     []eartist.Shape{circle(pt(16, 16), -5, white)},
	},
	{
		Name:       "single_pixel_rectangle",
		Height:     32,
		Width:      32,
		Background: black,
		Shapes:     []eartist.Shape{rectangle(pt(9, 9), pt(9, 9), white)},
	},
}
