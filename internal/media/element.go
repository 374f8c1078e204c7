// Package media is the boundary to the raster and encoding machinery:
// text/rect primitives drawn with x/image, alpha-aware compositing,
// and ffmpeg/ffprobe process wrappers. Everything above this package
// treats video handling as a black box.
package media

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Element is a drawable raster with its measured size.
type Element struct {
	Image  *image.RGBA
	Width  int
	Height int
}

// Positioned places an element inside a composite. Later entries in a
// composite render on top.
type Positioned struct {
	Element Element
	X, Y    int
}

// DrawRect creates a solid rectangle element.
func DrawRect(width, height int, c color.Color) Element {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return Element{Image: img, Width: width, Height: height}
}

// Composite merges positioned elements onto a canvas of the given
// size, preserving input order as z-order.
func Composite(items []Positioned, width, height int) Element {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	for _, item := range items {
		b := item.Element.Image.Bounds()
		target := image.Rect(item.X, item.Y, item.X+b.Dx(), item.Y+b.Dy())
		draw.Draw(canvas, target, item.Element.Image, b.Min, draw.Over)
	}
	return Element{Image: canvas, Width: width, Height: height}
}

// Blit draws an element onto dst at a fractional position with the
// given opacity and uniform scale. Opacity 0 and scale 0 are no-ops;
// scaling goes through a bilinear kernel so animated zooms stay smooth.
func Blit(dst *image.RGBA, el Element, x, y, opacity, scale float64) {
	if opacity <= 0 || scale <= 0 || el.Image == nil {
		return
	}
	if opacity > 1 {
		opacity = 1
	}

	src := el.Image
	w, h := el.Width, el.Height

	if scale != 1 {
		// Scale around the element center so pulses grow in place.
		sw := int(float64(w)*scale + 0.5)
		sh := int(float64(h)*scale + 0.5)
		if sw < 1 || sh < 1 {
			return
		}
		scaled := image.NewRGBA(image.Rect(0, 0, sw, sh))
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Over, nil)
		x -= float64(sw-w) / 2
		y -= float64(sh-h) / 2
		src = scaled
		w, h = sw, sh
	}

	target := image.Rect(int(x+0.5), int(y+0.5), int(x+0.5)+w, int(y+0.5)+h)

	if opacity >= 1 {
		draw.Draw(dst, target, src, src.Bounds().Min, draw.Over)
		return
	}

	mask := image.NewUniform(color.Alpha{A: uint8(opacity*255 + 0.5)})
	draw.DrawMask(dst, target, src, src.Bounds().Min, mask, image.Point{}, draw.Over)
}

// Clear resets a canvas to fully transparent for frame reuse.
func Clear(img *image.RGBA) {
	for i := range img.Pix {
		img.Pix[i] = 0
	}
}
