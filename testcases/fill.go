package testcases

import (
	"math"

	"github.com/PkuCuipy/eartist"
)

var fillCases = []TestCase{
	{
		Name:       "triangle",
		Height:     64,
		Width:      64,
		Background: black,
		Shapes:     []eartist.Shape{triangle(pt(10, 32), pt(50, 10), pt(50, 54), white)},
	},
	{
		Name:       "triangle_flat_top",
		Height:     64,
		Width:      64,
		Background: black,
		Shapes:     []eartist.Shape{triangle(pt(10, 10), pt(10, 54), pt(50, 32), white)},
	},
	{
		Name:       "triangle_obtuse",
		Height:     64,
		Width:      64,
		Background: black,
		Shapes:     []eartist.Shape{triangle(pt(5, 5), pt(30, 60), pt(58, 20), red)},
	},
	{
		Name:       "circle",
		Height:     64,
		Width:      64,
		Background: black,
		Shapes:     []eartist.Shape{circle(pt(32, 32), 20, white)},
	},
	{
		Name:       "circle_offcentre",
		Height:     48,
		Width:      80,
		Background: black,
		Shapes:     []eartist.Shape{circle(pt(20.4, 50.7), 12.3, green)},
	},
	{
		Name:       "rectangle",
		Height:     64,
		Width:      64,
		Background: black,
		Shapes:     []eartist.Shape{rectangle(pt(10, 10), pt(44, 44), white)},
	},
	{
		Name:       "rectangle_swapped_corners",
		Height:     64,
		Width:      64,
		Background: black,
		Shapes:     []eartist.Shape{rectangle(pt(50, 40), pt(12, 4), blue)},
	},
	{
		Name:       "fan",
		Height:     64,
		Width:      64,
		Background: black,
		Shapes:     fan(32, 32, 28, 7),
	},
}

// fan builds n triangles sharing the centre point, in different shades.
func fan(row, col, r float64, n int) []eartist.Shape {
	shapes := make([]eartist.Shape, n)
	for i := range n {
		a0 := float64(i) * 2 * math.Pi / float64(n)
		a1 := float64(i+1) * 2 * math.Pi / float64(n)
		shade := 255 * float64(i+1) / float64(n)
		shapes[i] = triangle(
			pt(row, col),
			pt(row+r*math.Sin(a0), col+r*math.Cos(a0)),
			pt(row+r*math.Sin(a1), col+r*math.Cos(a1)),
			eartist.Color{R: shade, G: 255 - shade, B: 128, A: 1},
		)
	}
	return shapes
}
