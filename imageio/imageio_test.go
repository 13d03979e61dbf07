package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/PkuCuipy/eartist"
)

func testCanvas() *eartist.Canvas {
	c := eartist.NewCanvas(5, 7, eartist.Color{R: 10, G: 20, B: 30, A: 1})
	c.DrawSpan(2, 1, 5, eartist.Color{R: 200, G: 100, B: 50, A: 1})
	c.DrawSpan(4, 0, 0, eartist.Color{R: 255, G: 255, B: 255, A: 1})
	return c
}

func TestRoundTrip(t *testing.T) {
	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		t.Run(ext, func(t *testing.T) {
			c := testCanvas()
			path := filepath.Join(t.TempDir(), "canvas"+ext)
			if err := Save(path, c); err != nil {
				t.Fatal(err)
			}
			got, err := Load(path, 0)
			if err != nil {
				t.Fatal(err)
			}
			d, err := eartist.Distance(c, got)
			if err != nil {
				t.Fatal(err)
			}
			if d != 0 {
				t.Errorf("distance after round trip = %g, want 0", d)
			}
		})
	}
}

func TestJPEG(t *testing.T) {
	c := testCanvas()
	buf := &bytes.Buffer{}
	if err := Encode(buf, c, ".JPG"); err != nil {
		t.Fatal(err)
	}
	got, err := Decode(buf, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got.Height != c.Height || got.Width != c.Width {
		t.Errorf("got %dx%d, want %dx%d", got.Height, got.Width, c.Height, c.Width)
	}
}

func TestOrientation(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(2, 0, color.RGBA{R: 255, A: 255})
	c := FromImage(img)
	if c.Height != 2 || c.Width != 3 {
		t.Fatalf("got %dx%d canvas, want 2x3", c.Height, c.Width)
	}
	if p := c.At(0, 2); p.R != 255 || p.G != 0 || p.B != 0 {
		t.Errorf("pixel (0, 2) = %v, want red", p)
	}

	back := ToImage(c)
	if got := back.RGBAAt(2, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("image pixel (2, 0) = %v, want red", got)
	}
}

func TestTruncation(t *testing.T) {
	c := eartist.NewCanvas(1, 1, eartist.Color{R: 12.99, G: 0.5, B: 254.9, A: 1})
	img := ToImage(c)
	want := color.RGBA{R: 12, G: 0, B: 254, A: 255}
	if got := img.RGBAAt(0, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFit(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 100))
	cases := []struct {
		maxSize int
		w, h    int
	}{
		{0, 400, 100},
		{500, 400, 100},
		{200, 200, 50},
		{40, 40, 10},
	}
	for _, tc := range cases {
		b := Fit(img, tc.maxSize).Bounds()
		if b.Dx() != tc.w || b.Dy() != tc.h {
			t.Errorf("Fit(400x100, %d) = %dx%d, want %dx%d",
				tc.maxSize, b.Dx(), b.Dy(), tc.w, tc.h)
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canvas.xyz")
	err := Save(path, testCanvas())
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("got error %v, want ErrUnknownFormat", err)
	}
}
