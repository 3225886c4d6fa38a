package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/ribbon"
)

func buildTestRibbon(t *testing.T) *ribbon.Path {
	t.Helper()
	p, err := ribbon.BuildStrings("(10,0) D30 W0.5", "L:2.0 A:2/145 L2 arc(0.5,-170) line:3")
	if err != nil {
		t.Fatalf("BuildStrings() error = %v", err)
	}
	return p
}

func TestRasterize(t *testing.T) {
	p := buildTestRibbon(t)
	opts := DefaultOptions()
	opts.Width, opts.Height = 128, 128
	mask := Rasterize(p, opts)

	if got := mask.Bounds().Dx(); got != 128 {
		t.Errorf("mask width = %d, want 128", got)
	}
	covered := 0
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			if mask.AlphaAt(x, y).A > 0 {
				covered++
			}
		}
	}
	if covered == 0 {
		t.Fatal("rasterized mask is empty")
	}
	if covered == 128*128 {
		t.Fatal("rasterized mask is fully covered; fit/flatten is wrong")
	}
}

func TestRasterize_RespectsMargin(t *testing.T) {
	p := buildTestRibbon(t)
	opts := DefaultOptions()
	opts.Width, opts.Height = 64, 64
	opts.Margin = 8
	mask := Rasterize(p, opts)

	for i := 0; i < 64; i++ {
		for _, px := range [][2]int{{i, 0}, {i, 63}, {0, i}, {63, i}} {
			if mask.AlphaAt(px[0], px[1]).A != 0 {
				t.Fatalf("pixel (%d,%d) inside the margin is covered", px[0], px[1])
			}
		}
	}
}

func TestImage_Colors(t *testing.T) {
	p := buildTestRibbon(t)
	opts := DefaultOptions()
	opts.Width, opts.Height = 64, 64
	opts.Foreground = color.RGBA{R: 255, A: 255}
	opts.Background = color.RGBA{B: 255, A: 255}
	img := Image(p, opts)

	// Corner is background, and the foreground must appear somewhere.
	if got := img.RGBAAt(0, 0); got.B != 255 || got.R != 0 {
		t.Errorf("corner pixel = %+v, want pure background", got)
	}
	foundFg := false
	for y := 0; y < 64 && !foundFg; y++ {
		for x := 0; x < 64; x++ {
			if c := img.RGBAAt(x, y); c.R == 255 && c.B == 0 {
				foundFg = true
				break
			}
		}
	}
	if !foundFg {
		t.Error("foreground color never appears in the rendered image")
	}
}

func TestWritePNG(t *testing.T) {
	p := buildTestRibbon(t)
	opts := DefaultOptions()
	opts.Width, opts.Height = 32, 32

	var buf bytes.Buffer
	if err := WritePNG(&buf, p, opts); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Errorf("decoded size = %v, want 32x32", img.Bounds())
	}
}
