// Package render rasterizes finished ribbon loops into images.
//
// It is the downstream collaborator of the ribbon package: it consumes
// the closed segment loop, flattens it to a polyline and scanline-fills
// it with golang.org/x/image/vector. The ribbon core itself never
// touches pixels.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/ribbon"
)

// Options control how a ribbon loop is fitted and rasterized.
type Options struct {
	// Width and Height are the output image size in pixels.
	Width, Height int

	// Margin is the padding in pixels kept around the fitted outline.
	Margin float64

	// Foreground fills the ribbon, Background the rest of the image.
	Foreground, Background color.Color
}

// DefaultOptions returns options for a 512x512 black-on-white preview.
func DefaultOptions() Options {
	return Options{
		Width:      512,
		Height:     512,
		Margin:     16,
		Foreground: color.Black,
		Background: color.White,
	}
}

// fit maps path coordinates into pixel coordinates: uniform scale to fit
// inside the margins, centered, with the Y axis flipped (path Y is up,
// image Y is down).
type fit struct {
	scale  float64
	min    ribbon.Point
	ox, oy float64
	height float64
}

func newFit(p *ribbon.Path, opts Options) fit {
	min, max := p.Bounds()
	w := max.X - min.X
	h := max.Y - min.Y
	availW := float64(opts.Width) - 2*opts.Margin
	availH := float64(opts.Height) - 2*opts.Margin
	scale := 1.0
	if w > 0 || h > 0 {
		sx, sy := math.Inf(1), math.Inf(1)
		if w > 0 {
			sx = availW / w
		}
		if h > 0 {
			sy = availH / h
		}
		scale = math.Min(sx, sy)
	}
	return fit{
		scale:  scale,
		min:    min,
		ox:     opts.Margin + (availW-w*scale)/2,
		oy:     opts.Margin + (availH-h*scale)/2,
		height: float64(opts.Height),
	}
}

func (f fit) apply(pt ribbon.Point) (x, y float32) {
	x = float32(f.ox + (pt.X-f.min.X)*f.scale)
	y = float32(f.height - (f.oy + (pt.Y-f.min.Y)*f.scale))
	return x, y
}

// Rasterize fills the ribbon loop into an alpha mask of the requested
// size, scaled and centered to fit.
func Rasterize(p *ribbon.Path, opts Options) *image.Alpha {
	f := newFit(p, opts)

	// Flatten finely enough that arc chords deviate by under a quarter
	// pixel once scaled.
	tolerance := 0.25 / f.scale
	pts := p.Flatten(tolerance)

	z := vector.NewRasterizer(opts.Width, opts.Height)
	for i, pt := range pts {
		x, y := f.apply(pt)
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, opts.Width, opts.Height))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	ribbon.Logger().Debug("rasterized ribbon", "points", len(pts), "scale", f.scale)
	return dst
}

// Image composites the rasterized ribbon over the background color.
func Image(p *ribbon.Path, opts Options) *image.RGBA {
	mask := Rasterize(p, opts)
	dst := image.NewRGBA(mask.Bounds())
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	draw.DrawMask(dst, dst.Bounds(), image.NewUniform(opts.Foreground), image.Point{}, mask, image.Point{}, draw.Over)
	return dst
}

// WritePNG renders the ribbon and encodes it as PNG.
func WritePNG(w io.Writer, p *ribbon.Path, opts Options) error {
	return png.Encode(w, Image(p, opts))
}
