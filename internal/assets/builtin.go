package assets

import (
	"image"
	"image/color"
	"math"
)

const builtinSize = 32

// Builtin renders placeholder sprites so the game runs without an asset
// directory.
func Builtin() *Library {
	return &Library{images: map[Name]image.Image{
		Player:         ship(color.RGBA{R: 100, G: 150, B: 255, A: 255}, false),
		Enemy:          ship(color.RGBA{R: 255, G: 100, B: 100, A: 255}, true),
		EnemyElite:     ship(color.RGBA{R: 200, G: 90, B: 255, A: 255}, true),
		PowerUpNormal:  orb(color.RGBA{R: 255, G: 255, B: 0, A: 255}),
		PowerUpScatter: orb(color.RGBA{R: 255, G: 165, B: 0, A: 255}),
		PowerUpLaser:   orb(color.RGBA{R: 0, G: 255, B: 255, A: 255}),
		PowerUpMissile: orb(color.RGBA{R: 255, G: 60, B: 60, A: 255}),
	}}
}

// ship draws a triangle with a dark outline, nose up unless pointing down.
func ship(clr color.RGBA, down bool) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, builtinSize, builtinSize))
	outline := color.RGBA{A: 255}
	half := float64(builtinSize) / 2

	for y := 0; y < builtinSize; y++ {
		// Fraction of the way from nose to tail.
		t := float64(y) / float64(builtinSize-1)
		if down {
			t = 1 - t
		}
		edge := half * t
		for x := 0; x < builtinSize; x++ {
			rel := math.Abs(float64(x) + 0.5 - half)
			switch {
			case rel < edge-1:
				img.SetRGBA(x, y, clr)
			case rel < edge:
				img.SetRGBA(x, y, outline)
			}
		}
	}
	return img
}

// orb draws a filled circle with a bright core.
func orb(clr color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, builtinSize, builtinSize))
	core := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	c := float64(builtinSize) / 2
	r := c - 1

	for y := 0; y < builtinSize; y++ {
		for x := 0; x < builtinSize; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c)
			switch {
			case d < r/3:
				img.SetRGBA(x, y, core)
			case d < r:
				img.SetRGBA(x, y, clr)
			}
		}
	}
	return img
}
