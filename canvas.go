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
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Pixel is an opaque RGB value. Channels are not rounded, so repeated
// compositing keeps full precision.
type Pixel struct {
	R, G, B float64
}

// over composites the translucent color c on top of p.
func (p *Pixel) over(c Color) {
	keep := 1 - c.A
	p.R = p.R*keep + c.R*c.A
	p.G = p.G*keep + c.G*c.A
	p.B = p.B*keep + c.B*c.A
}

// Canvas is a dense grid of pixels in row-major order.
// Len(Pix) is always Height*Width.
type Canvas struct {
	Height, Width int
	Pix           []Pixel
}

// NewCanvas allocates a canvas filled with bg. The alpha channel of bg is
// ignored.
func NewCanvas(height, width int, bg Color) *Canvas {
	pix := make([]Pixel, height*width)
	fill := Pixel{R: bg.R, G: bg.G, B: bg.B}
	for i := range pix {
		pix[i] = fill
	}
	return &Canvas{Height: height, Width: width, Pix: pix}
}

// ReadCanvas converts a flat sequence of 8-bit RGB triples into a canvas.
// Channel values keep their 0-255 scale.
func ReadCanvas(height, width int, rgb []byte) (*Canvas, error) {
	if height < 0 || width < 0 || len(rgb) != 3*height*width {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d RGB pixels",
			ErrDimensionMismatch, len(rgb), height, width)
	}
	c := &Canvas{Height: height, Width: width, Pix: make([]Pixel, height*width)}
	for i := range c.Pix {
		c.Pix[i] = Pixel{
			R: float64(rgb[3*i]),
			G: float64(rgb[3*i+1]),
			B: float64(rgb[3*i+2]),
		}
	}
	return c, nil
}

// DrawSpan composites col onto the pixels of the given row, for every
// column between colA and colB inclusive. The arguments may be given in
// either order. Out-of-range coordinates cause a panic.
func (c *Canvas) DrawSpan(row, colA, colB int, col Color) {
	left, right := min(colA, colB), max(colA, colB)
	if row < 0 || row >= c.Height || left < 0 || right >= c.Width {
		panic(fmt.Sprintf("eartist: span row %d, columns [%d, %d] outside %dx%d canvas",
			row, left, right, c.Height, c.Width))
	}
	if col.A == 0 {
		return
	}
	line := c.Pix[row*c.Width+left : row*c.Width+right+1]
	for i := range line {
		line[i].over(col)
	}
}

// At returns the pixel in the given row and column.
func (c *Canvas) At(row, col int) Pixel {
	if row < 0 || row >= c.Height || col < 0 || col >= c.Width {
		panic(fmt.Sprintf("eartist: pixel (%d, %d) outside %dx%d canvas",
			row, col, c.Height, c.Width))
	}
	return c.Pix[row*c.Width+col]
}

// Distance returns the root-mean-square difference of all color channels
// of a and b.
func Distance(a, b *Canvas) (float64, error) {
	if a.Height != b.Height || a.Width != b.Width {
		return 0, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrDimensionMismatch, a.Height, a.Width, b.Height, b.Width)
	}
	if len(a.Pix) == 0 {
		return 0, nil
	}
	var sum float64
	for i, p := range a.Pix {
		q := b.Pix[i]
		dr, dg, db := p.R-q.R, p.G-q.G, p.B-q.B
		sum += dr*dr + dg*dg + db*db
	}
	return math.Sqrt(sum / float64(3*len(a.Pix))), nil
}

// Mean returns the average color of the canvas, as an opaque color.
func (c *Canvas) Mean() Color {
	mean := Color{A: 1}
	if len(c.Pix) == 0 {
		return mean
	}
	for _, p := range c.Pix {
		mean.R += p.R
		mean.G += p.G
		mean.B += p.B
	}
	n := float64(len(c.Pix))
	mean.R /= n
	mean.G /= n
	mean.B /= n
	return mean
}

// RGB returns the canvas as flat 8-bit RGB triples. Channel values are
// truncated, not rounded.
func (c *Canvas) RGB() []byte {
	buf := make([]byte, 3*len(c.Pix))
	for i, p := range c.Pix {
		buf[3*i] = toByte(p.R)
		buf[3*i+1] = toByte(p.G)
		buf[3*i+2] = toByte(p.B)
	}
	return buf
}

func toByte(v float64) byte {
	return byte(min(max(v, 0), 255))
}

// WriteText writes a plain-text dump of the raw channel values, for
// debugging. The first line is "h=<height> w=<width>", followed by one
// line with three values per pixel.
func (c *Canvas) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "h=%d w=%d\n", c.Height, c.Width)
	var line []byte
	for _, p := range c.Pix {
		line = strconv.AppendFloat(line[:0], p.R, 'g', -1, 64)
		line = append(line, ' ')
		line = strconv.AppendFloat(line, p.G, 'g', -1, 64)
		line = append(line, ' ')
		line = strconv.AppendFloat(line, p.B, 'g', -1, 64)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
