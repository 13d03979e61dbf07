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

// layeredCases combine several translucent shapes, so that the paint
// order matters.
var layeredCases = []TestCase{
	{
		Name:       "three_discs",
		Height:     64,
		Width:      64,
		Background: white,
		Shapes: []eartist.Shape{
			circle(pt(24, 24), 16, withAlpha(red, 0.5)),
			circle(pt(24, 40), 16, withAlpha(green, 0.5)),
			circle(pt(40, 32), 16, withAlpha(blue, 0.5)),
		},
	},
	{
		Name:       "occluded",
		Height:     48,
		Width:      48,
		Background: black,
		Shapes: []eartist.Shape{
			triangle(pt(4, 24), pt(44, 4), pt(44, 44), red),
			rectangle(pt(0, 0), pt(47, 47), blue),
		},
	},
	{
		Name:       "glaze",
		Height:     48,
		Width:      48,
		Background: eartist.Color{R: 128, G: 128, B: 128, A: 1},
		Shapes: []eartist.Shape{
			rectangle(pt(8, 8), pt(40, 40), withAlpha(white, 0.25)),
			rectangle(pt(16, 16), pt(32, 32), withAlpha(white, 0.25)),
			triangle(pt(2, 24), pt(46, 2), pt(46, 46), withAlpha(black, 0.1)),
			circle(pt(24, 24), 6, withAlpha(red, 0)),
		},
	},
}
