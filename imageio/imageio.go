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

// Package imageio converts between image files and eartist canvases.
//
// Targets may be PNG, JPEG, GIF, BMP, TIFF or WebP files. Canvases can be
// written as PNG, JPEG, BMP or TIFF, chosen by the file name extension.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // register GIF decoding
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoding

	"github.com/PkuCuipy/eartist"
)

// JPEGQuality is the quality used when writing JPEG files.
const JPEGQuality = 95

// ErrUnknownFormat is returned by Save for unsupported file extensions.
var ErrUnknownFormat = errors.New("imageio: unknown image format")

// Load reads an image file and converts it into a canvas. If maxSize is
// positive and the image is larger than maxSize pixels in either
// direction, it is scaled down to fit, keeping its aspect ratio.
func Load(path string, maxSize int) (c *eartist.Canvas, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	c, err = Decode(f, maxSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode reads an image in any registered format and converts it into a
// canvas, scaling it down as described for [Load].
func Decode(r io.Reader, maxSize int) (*eartist.Canvas, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(Fit(img, maxSize)), nil
}

// Fit scales img down so that neither side exceeds maxSize pixels.
// Images which already fit, and all images if maxSize is not positive,
// are returned unchanged.
func Fit(img image.Image, maxSize int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize <= 0 || max(w, h) <= maxSize {
		return img
	}
	scale := float64(maxSize) / float64(max(w, h))
	nw := max(1, int(float64(w)*scale+0.5))
	nh := max(1, int(float64(h)*scale+0.5))
	return transform.Resize(img, nw, nh, transform.Lanczos)
}

// FromImage converts img into a canvas. Image rows become canvas rows.
// Transparency is ignored.
func FromImage(img image.Image) *eartist.Canvas {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rgb := make([]byte, 0, 3*w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			rgb = append(rgb, c.R, c.G, c.B)
		}
	}
	c, err := eartist.ReadCanvas(h, w, rgb)
	if err != nil {
		// the buffer is sized from the image bounds
		panic(err)
	}
	return c
}

// ToImage converts c into an opaque image. Channel values are truncated
// to 8 bits.
func ToImage(c *eartist.Canvas) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	rgb := c.RGB()
	for i := range c.Height * c.Width {
		img.Pix[4*i] = rgb[3*i]
		img.Pix[4*i+1] = rgb[3*i+1]
		img.Pix[4*i+2] = rgb[3*i+2]
		img.Pix[4*i+3] = 255
	}
	return img
}

// Save writes c to a file. The format is determined by the file name
// extension.
func Save(path string, c *eartist.Canvas) (err error) {
	format := strings.ToLower(filepath.Ext(path))
	switch format {
	case ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(f, c, format)
}

// Encode writes c in the format given by a file name extension such as
// ".png".
func Encode(w io.Writer, c *eartist.Canvas, format string) error {
	img := ToImage(c)
	switch strings.ToLower(format) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
