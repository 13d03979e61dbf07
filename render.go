// Package eartist approximates a raster image by evolving lists of
// translucent triangles, circles and rectangles.
//
// A [Genome] is painted shape by shape onto a [Canvas] filled with its
// background color, and its fitness is the root-mean-square channel
// difference to the target canvas. An [Evolver] keeps a population of
// genomes and improves it by mutation, elitism and truncation selection.
package eartist

//go:generate go run ./testcases/export

// RenderTo paints the shapes of g over an existing canvas, without
// filling the background first. The canvas may have a different size
// than g; shapes are clipped to the canvas.
func RenderTo(g *Genome, c *Canvas) {
	r := NewRasteriser(c.Height, c.Width)
	for _, s := range g.shapes {
		r.Draw(s, c)
	}
}
