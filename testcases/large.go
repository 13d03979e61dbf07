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

// clipCases contain shapes which extend beyond the canvas, as produced by
// unclamped mutation.
var clipCases = []TestCase{
	{
		Name:       "triangle_partly_outside",
		Height:     64,
		Width:      64,
		Background: black,
		Shapes:     []eartist.Shape{triangle(pt(-20, 10), pt(40, 90), pt(70, -15), white)},
	},
	{
		Name:       "triangle_covering_canvas",
		Height:     40,
		Width:      60,
		Background: black,
		Shapes:     []eartist.Shape{triangle(pt(-100, 30), pt(200, -200), pt(200, 260), red)},
	},
	{
		Name:       "triangle_above_canvas",
		Height:     32,
		Width:      32,
		Background: black,
		Shapes:     []eartist.Shape{triangle(pt(-30, 4), pt(-10, 28), pt(-20, 16), white)},
	},
	{
		Name:       "triangle_left_of_canvas",
		Height:     32,
		Width:      32,
		Background: black,
		Shapes:     []eartist.Shape{triangle(pt(4, -30), pt(28, -10), pt(16, -20), white)},
	},
	{
		Name:       "circle_at_corner",
		Height:     64,
		Width:      64,
		Background: black,
		Shapes:     []eartist.Shape{circle(pt(0, 63), 25, white)},
	},
	{
		Name:       "circle_outside",
		Height:     32,
		Width:      32,
		Background: black,
		Shapes:     []eartist.Shape{circle(pt(-20, 16), 10, white)},
	},
	{
		Name:       "rectangle_overhanging",
		Height:     64,
		Width:      64,
		Background: black,
		Shapes:     []eartist.Shape{rectangle(pt(-100, 20), pt(30, 612), blue)},
	},
	{
		Name:       "rectangle_outside",
		Height:     32,
		Width:      32,
		Background: black,
		Shapes:     []eartist.Shape{rectangle(pt(40, 40), pt(50, 60), white)},
	},
}
