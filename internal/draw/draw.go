// Package draw defines the raster surface the game draws on and its
// terminal implementation.
package draw

import (
	"image/color"

	"github.com/tomz197/skyraid/internal/assets"
)

// Align positions text horizontally relative to its anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is a 2D raster the game draws to once per frame. Coordinates are
// field units with the origin at the top-left. The game never reads back
// from a surface.
type Surface interface {
	// Clear resets the whole surface to the background color.
	Clear()
	// FillRect fills a rectangle, blending by the color's alpha.
	FillRect(x, y, w, h float64, c color.Color)
	// DrawImage draws the named sprite scaled to w x h at the given opacity.
	DrawImage(name assets.Name, x, y, w, h, alpha float64)
	// DrawText draws a single line of text. y is the baseline.
	DrawText(text string, x, y float64, align Align, c color.Color)
}

// Block characters used by the terminal canvas.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// toRGBA converts any color to premultiplied 8-bit RGBA.
func toRGBA(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// blend composites src over dst with an extra opacity multiplier.
// Both colors are premultiplied.
func blend(dst, src color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 && src.A == 0xff {
		return src
	}
	if alpha <= 0 || src.A == 0 {
		return dst
	}
	scale := func(v uint8) float64 { return float64(v) * alpha }
	sa := scale(src.A) / 0xff
	mix := func(s, d uint8) uint8 {
		return uint8(scale(s) + float64(d)*(1-sa) + 0.5)
	}
	return color.RGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: mix(src.A, dst.A),
	}
}
